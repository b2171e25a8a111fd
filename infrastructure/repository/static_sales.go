package repository

import (
	"github.com/vfg2006/sales-dashboard-api/internal/domain"
)

// staticSalesRepository serve o conjunto fixo de vendas carregado em memória
type staticSalesRepository struct {
	records []domain.SalesRecord
}

// NewStaticSalesRepository cria o repositório com o conjunto padrão de vendas
func NewStaticSalesRepository() SalesRepository {
	return NewStaticSalesRepositoryWith(domain.SalesDataset())
}

// NewStaticSalesRepositoryWith cria o repositório com registros próprios (usado em testes)
func NewStaticSalesRepositoryWith(records []domain.SalesRecord) SalesRepository {
	owned := make([]domain.SalesRecord, len(records))
	copy(owned, records)
	return &staticSalesRepository{records: owned}
}

func (r *staticSalesRepository) ListRecords() ([]domain.SalesRecord, error) {
	out := make([]domain.SalesRecord, len(r.records))
	copy(out, r.records)
	return out, nil
}

func (r *staticSalesRepository) ListByYear(year int) ([]domain.SalesRecord, error) {
	return domain.DataByYear(r.records, year), nil
}

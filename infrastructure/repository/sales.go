// Package repository contém as implementações dos repositórios para acesso aos dados
package repository

//go:generate mockgen -source=sales.go -destination=mocks/sales.go -package=mocks

import (
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/vfg2006/sales-dashboard-api/infrastructure/database/postgres"
	"github.com/vfg2006/sales-dashboard-api/internal/domain"
)

const (
	salesRecordsTable = "sales_records sr"
)

// SalesRepository fornece os registros mensais de vendas
type SalesRepository interface {
	ListRecords() ([]domain.SalesRecord, error)
	ListByYear(year int) ([]domain.SalesRecord, error)
}

type salesRepository struct {
	conn postgres.Queryer
}

func NewSalesRepository(conn postgres.Queryer) SalesRepository {
	return &salesRepository{
		conn: conn,
	}
}

// salesSelect é a query base; a ordenação segue ano e posição do mês
func salesSelect() squirrel.SelectBuilder {
	return squirrel.
		Select(
			"sr.year",
			"sr.month",
			"sr.sales",
			"sr.orders",
			"sr.revenue",
		).
		From(salesRecordsTable).
		OrderBy("sr.year ASC", "sr.month_index ASC").
		PlaceholderFormat(squirrel.Dollar)
}

func (r *salesRepository) ListRecords() ([]domain.SalesRecord, error) {
	query, args, err := salesSelect().ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	return r.queryRecords(query, args...)
}

func (r *salesRepository) ListByYear(year int) ([]domain.SalesRecord, error) {
	query, args, err := salesSelect().
		Where(squirrel.Eq{"sr.year": year}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	return r.queryRecords(query, args...)
}

func (r *salesRepository) queryRecords(query string, args ...interface{}) ([]domain.SalesRecord, error) {
	rows, err := r.conn.Query(query, args...)
	if err != nil {
		if err == sql.ErrNoRows {
			return []domain.SalesRecord{}, nil
		}
		return nil, fmt.Errorf("erro ao executar a query: %w", err)
	}
	defer rows.Close()

	records := make([]domain.SalesRecord, 0)
	for rows.Next() {
		var record domain.SalesRecord
		if err := rows.Scan(
			&record.Year,
			&record.Month,
			&record.Sales,
			&record.Orders,
			&record.Revenue,
		); err != nil {
			return nil, fmt.Errorf("erro ao escanear registro de vendas: %w", err)
		}

		if err := domain.ValidateRecord(record); err != nil {
			return nil, fmt.Errorf("registro de vendas inválido no banco: %w", err)
		}

		records = append(records, record)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante a iteração de linhas: %w", err)
	}

	return records, nil
}

package repository

//go:generate mockgen -source=yearly_total.go -destination=mocks/yearly_total.go -package=mocks

import (
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/vfg2006/sales-dashboard-api/infrastructure/database/postgres"
	"github.com/vfg2006/sales-dashboard-api/internal/domain"
)

const (
	yearlyTotalsTable = "yearly_sales_totals yt"
)

// YearlyTotalSnapshot é um total anual persistido pelo agendador
type YearlyTotalSnapshot struct {
	domain.YearlyTotal
	UpdatedAt time.Time `json:"updated_at"`
}

type YearlyTotalRepository interface {
	SaveOrUpdate(totals []domain.YearlyTotal) error
	List() ([]*YearlyTotalSnapshot, error)
}

type yearlyTotalRepository struct {
	conn postgres.Queryer
}

func NewYearlyTotalRepository(conn postgres.Queryer) YearlyTotalRepository {
	return &yearlyTotalRepository{
		conn: conn,
	}
}

func buildYearlyTotalsUpsert(totals []domain.YearlyTotal) (string, []interface{}, error) {
	query := squirrel.StatementBuilder.
		Insert("yearly_sales_totals").
		Columns("year", "sales", "orders", "revenue").
		PlaceholderFormat(squirrel.Dollar)

	for _, total := range totals {
		query = query.Values(total.Year, total.Sales, total.Orders, total.Revenue)
	}

	query = query.Suffix(`
		ON CONFLICT (year) DO UPDATE SET
			sales = EXCLUDED.sales,
			orders = EXCLUDED.orders,
			revenue = EXCLUDED.revenue,
			updated_at = CURRENT_TIMESTAMP
	`)

	return query.ToSql()
}

func (r *yearlyTotalRepository) SaveOrUpdate(totals []domain.YearlyTotal) error {
	if len(totals) == 0 {
		return nil
	}

	sqlQuery, args, err := buildYearlyTotalsUpsert(totals)
	if err != nil {
		return fmt.Errorf("erro ao construir query de inserção: %w", err)
	}

	if _, err = r.conn.Exec(sqlQuery, args...); err != nil {
		return fmt.Errorf("erro ao executar query de inserção: %w", err)
	}

	return nil
}

func yearlyTotalsSelect() squirrel.SelectBuilder {
	return squirrel.
		Select("yt.year, yt.sales, yt.orders, yt.revenue, yt.updated_at").
		From(yearlyTotalsTable).
		OrderBy("yt.year ASC").
		PlaceholderFormat(squirrel.Dollar)
}

func (r *yearlyTotalRepository) List() ([]*YearlyTotalSnapshot, error) {
	query, args, err := yearlyTotalsSelect().ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	rows, err := r.conn.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("erro ao executar a query: %w", err)
	}
	defer rows.Close()

	snapshots := make([]*YearlyTotalSnapshot, 0)
	for rows.Next() {
		item := &YearlyTotalSnapshot{}
		if err := rows.Scan(&item.Year, &item.Sales, &item.Orders, &item.Revenue, &item.UpdatedAt); err != nil {
			return nil, fmt.Errorf("erro ao escanear total anual: %w", err)
		}
		snapshots = append(snapshots, item)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante a iteração de linhas: %w", err)
	}

	return snapshots, nil
}

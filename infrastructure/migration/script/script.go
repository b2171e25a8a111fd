package main

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/sales-dashboard-api/infrastructure/database/postgres"
	"github.com/vfg2006/sales-dashboard-api/internal/config"
	"github.com/vfg2006/sales-dashboard-api/internal/domain"
	"github.com/vfg2006/sales-dashboard-api/pkg/utils"
)

var schema = []string{
	`CREATE TABLE IF NOT EXISTS sales_records (
		id          VARCHAR(6) PRIMARY KEY,
		year        INTEGER NOT NULL,
		month       VARCHAR(3) NOT NULL,
		month_index SMALLINT NOT NULL CHECK (month_index BETWEEN 0 AND 11),
		sales       INTEGER NOT NULL CHECK (sales >= 0),
		orders      INTEGER NOT NULL CHECK (orders >= 0),
		revenue     INTEGER NOT NULL CHECK (revenue >= 0),
		created_at  TIMESTAMPTZ NOT NULL DEFAULT CURRENT_TIMESTAMP,
		UNIQUE (year, month)
	)`,
	`CREATE TABLE IF NOT EXISTS yearly_sales_totals (
		year       INTEGER PRIMARY KEY,
		sales      INTEGER NOT NULL,
		orders     INTEGER NOT NULL,
		revenue    INTEGER NOT NULL,
		updated_at TIMESTAMPTZ NOT NULL DEFAULT CURRENT_TIMESTAMP
	)`,
}

const insertSalesRecord = `
	INSERT INTO sales_records (id, year, month, month_index, sales, orders, revenue)
	VALUES ($1, $2, $3, $4, $5, $6, $7)
	ON CONFLICT (year, month) DO UPDATE SET
		month_index = EXCLUDED.month_index,
		sales = EXCLUDED.sales,
		orders = EXCLUDED.orders,
		revenue = EXCLUDED.revenue`

// seedRow é um registro de vendas pronto para inserção
type seedRow struct {
	ID         string
	MonthIndex int
	domain.SalesRecord
}

// buildSeedRows valida o conjunto e gera um ID curto para cada linha
func buildSeedRows(records []domain.SalesRecord, newID func() (string, error)) ([]seedRow, error) {
	rows := make([]seedRow, 0, len(records))
	for _, record := range records {
		if err := domain.ValidateRecord(record); err != nil {
			return nil, err
		}

		id, err := newID()
		if err != nil {
			return nil, fmt.Errorf("erro ao gerar ID para %s/%d: %w", record.Month, record.Year, err)
		}

		rows = append(rows, seedRow{
			ID:          id,
			MonthIndex:  domain.MonthIndex(record.Month),
			SalesRecord: record,
		})
	}
	return rows, nil
}

func createSchema(tx *sql.Tx) error {
	for _, statement := range schema {
		if _, err := tx.Exec(statement); err != nil {
			return fmt.Errorf("erro ao criar tabela: %w", err)
		}
	}
	return nil
}

func insertSalesRecords(tx *sql.Tx, rows []seedRow) error {
	logrus.Infof("Iniciando inserção de %d registros de vendas...", len(rows))
	startTime := time.Now()

	stmt, err := tx.Prepare(insertSalesRecord)
	if err != nil {
		return fmt.Errorf("erro ao preparar statement para sales_records: %w", err)
	}
	defer stmt.Close()

	for i, row := range rows {
		if _, err := stmt.Exec(row.ID, row.Year, row.Month, row.MonthIndex, row.Sales, row.Orders, row.Revenue); err != nil {
			return fmt.Errorf("erro ao inserir registro [%d/%d] %s/%d: %w", i+1, len(rows), row.Month, row.Year, err)
		}
	}

	logrus.Infof("Inserção de registros concluída em %v", time.Since(startTime))
	return nil
}

func main() {
	logrus.SetFormatter(&logrus.TextFormatter{FullTimestamp: true, TimestampFormat: time.RFC3339})
	logrus.Info("Iniciando script de migração...")

	cfg, err := config.NewConfig()
	if err != nil {
		logrus.WithError(err).Fatal("Erro ao carregar configuração")
	}

	ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
	defer cancel()

	conn, err := postgres.NewConnection(ctx, cfg.Database)
	if err != nil {
		logrus.WithError(err).Fatal("Erro ao conectar ao PostgreSQL")
	}
	defer conn.Close()

	rows, err := buildSeedRows(domain.SalesDataset(), utils.GenerateID)
	if err != nil {
		logrus.WithError(err).Fatal("Conjunto de vendas inválido")
	}

	err = conn.RunInTransaction(ctx, func(tx *sql.Tx) error {
		if err := createSchema(tx); err != nil {
			return err
		}
		return insertSalesRecords(tx, rows)
	})
	if err != nil {
		logrus.WithError(err).Fatal("Migração desfeita")
	}

	logrus.Info("Script de migração concluído com sucesso")
}

package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDataByYear(t *testing.T) {
	records := SalesDataset()

	tests := []struct {
		name     string
		year     int
		validate func(t *testing.T, got []SalesRecord)
	}{
		{
			name: "ano presente retorna os 12 meses em ordem",
			year: 2024,
			validate: func(t *testing.T, got []SalesRecord) {
				require.Len(t, got, 12)
				for i, r := range got {
					assert.Equal(t, 2024, r.Year)
					assert.Equal(t, Months[i], r.Month)
				}
			},
		},
		{
			name: "ano ausente retorna lista vazia",
			year: 1999,
			validate: func(t *testing.T, got []SalesRecord) {
				assert.NotNil(t, got)
				assert.Empty(t, got)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.validate(t, DataByYear(records, tt.year))
		})
	}
}

func TestYearlyTotals(t *testing.T) {
	records := SalesDataset()

	totals := YearlyTotals(records)

	assert.Equal(t, []YearlyTotal{
		{Year: 2022, Sales: 65400, Orders: 2431, Revenue: 1308000},
		{Year: 2023, Sales: 82400, Orders: 3063, Revenue: 1648000},
		{Year: 2024, Sales: 101900, Orders: 3790, Revenue: 2038000},
	}, totals)

	// soma por ano deve bater com a soma linear dos registros do ano
	for _, total := range totals {
		sales, orders, revenue := SumRecords(DataByYear(records, total.Year))
		assert.Equal(t, sales, total.Sales)
		assert.Equal(t, orders, total.Orders)
		assert.Equal(t, revenue, total.Revenue)
	}

	assert.Empty(t, YearlyTotals(nil))
}

func TestAverageOrderValue(t *testing.T) {
	assert.Equal(t, 0.0, AverageOrderValue(1000, 0))
	assert.InDelta(t, 537.73, AverageOrderValue(2038000, 3790), 0.01)
}

func TestGrowth(t *testing.T) {
	tests := []struct {
		name     string
		current  int
		previous int
		want     float64
		kind     ChangeType
	}{
		{name: "sem ano anterior", current: 65400, previous: 0, want: 0, kind: ChangeNeutral},
		{name: "crescimento", current: 101900, previous: 82400, want: 23.665, kind: ChangeIncrease},
		{name: "queda", current: 50, previous: 100, want: -50, kind: ChangeDecrease},
		{name: "estável", current: 100, previous: 100, want: 0, kind: ChangeNeutral},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Growth(tt.current, tt.previous)
			assert.InDelta(t, tt.want, got, 0.001)
			assert.Equal(t, tt.kind, ChangeTypeOf(got))
		})
	}
}

func TestCalculateYearStats(t *testing.T) {
	records := SalesDataset()

	t.Run("2024", func(t *testing.T) {
		stats := CalculateYearStats(records, 2024)
		assert.Equal(t, 101900, stats.TotalSales)
		assert.Equal(t, 3790, stats.TotalOrders)
		assert.Equal(t, 2038000, stats.TotalRevenue)
		assert.Equal(t, 82400, stats.PreviousSales)
		assert.InDelta(t, 537.7308, stats.AverageOrderValue, 0.0001)
		assert.InDelta(t, 23.6650, stats.SalesGrowth, 0.0001)
		assert.Equal(t, ChangeIncrease, stats.ChangeType)
	})

	t.Run("Rounded usa duas casas decimais", func(t *testing.T) {
		stats := CalculateYearStats(records, 2024).Rounded()
		assert.Equal(t, 537.73, stats.AverageOrderValue)
		assert.Equal(t, 23.67, stats.SalesGrowth)
		assert.Equal(t, 101900, stats.TotalSales)
	})

	t.Run("variação mínima ainda é aumento", func(t *testing.T) {
		tiny := []SalesRecord{
			{Year: 2023, Month: "Jan", Sales: 100000},
			{Year: 2024, Month: "Jan", Sales: 100004},
		}
		stats := CalculateYearStats(tiny, 2024)
		assert.Equal(t, ChangeIncrease, stats.ChangeType)
		assert.Equal(t, 0.0, stats.Rounded().SalesGrowth)
		assert.Equal(t, ChangeIncrease, stats.Rounded().ChangeType)
	})

	t.Run("primeiro ano não tem crescimento", func(t *testing.T) {
		stats := CalculateYearStats(records, 2022)
		assert.Equal(t, 0, stats.PreviousSales)
		assert.Equal(t, 0.0, stats.SalesGrowth)
		assert.Equal(t, ChangeNeutral, stats.ChangeType)
	})

	t.Run("ano desconhecido zera tudo", func(t *testing.T) {
		stats := CalculateYearStats(records, 2030)
		assert.Equal(t, YearStats{Year: 2030, ChangeType: ChangeNeutral}, stats)
	})
}

func TestFilterByThreshold(t *testing.T) {
	yearData := DataByYear(SalesDataset(), 2024)

	assert.Len(t, FilterByThreshold(yearData, 0), 12)

	filtered := FilterByThreshold(yearData, 8000)
	months := make([]string, 0, len(filtered))
	for _, r := range filtered {
		assert.GreaterOrEqual(t, r.Sales, 8000)
		months = append(months, r.Month)
	}
	assert.Equal(t, []string{"May", "Jul", "Sep", "Oct", "Nov", "Dec"}, months)

	// limite inclusivo
	assert.Len(t, FilterByThreshold(yearData, 13200), 1)
	assert.Empty(t, FilterByThreshold(yearData, 13201))
}

func TestBestMonth(t *testing.T) {
	assert.Equal(t, "Dec", BestMonth(DataByYear(SalesDataset(), 2024)))
	assert.Equal(t, "", BestMonth(nil))

	tie := []SalesRecord{
		{Year: 2020, Month: "Mar", Sales: 10},
		{Year: 2020, Month: "Apr", Sales: 10},
	}
	assert.Equal(t, "Mar", BestMonth(tie))
}

func TestAvailableYears(t *testing.T) {
	assert.Equal(t, []int{2022, 2023, 2024}, AvailableYears(SalesDataset()))
}

func TestValidateRecord(t *testing.T) {
	assert.NoError(t, ValidateRecord(SalesRecord{Year: 2024, Month: "Jan"}))
	assert.Error(t, ValidateRecord(SalesRecord{Year: 2024, Month: "January"}))
	assert.Error(t, ValidateRecord(SalesRecord{Year: 2024, Month: "Jan", Orders: -1}))

	for _, r := range SalesDataset() {
		assert.NoError(t, ValidateRecord(r))
	}
}

func TestSalesDatasetIsCopy(t *testing.T) {
	first := SalesDataset()
	first[0].Sales = 0

	assert.Equal(t, 4200, SalesDataset()[0].Sales)
	assert.Len(t, SalesDataset(), 36)
}

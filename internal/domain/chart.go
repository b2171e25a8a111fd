package domain

import (
	"fmt"
	"strings"

	"github.com/vfg2006/sales-dashboard-api/pkg/utils"
)

// ChartType é o tipo de visualização escolhido no painel
type ChartType string

const (
	ChartLine ChartType = "line"
	ChartBar  ChartType = "bar"
	ChartPie  ChartType = "pie"
)

// ChartTypes lista os tipos aceitos, na ordem dos controles do painel
var ChartTypes = []ChartType{ChartLine, ChartBar, ChartPie}

// ChartPalette é a paleta usada nas séries e fatias
var ChartPalette = []string{
	"#0ea5e9", // primary
	"#22c55e", // accent
	"#d946ef", // secondary
	"#f59e0b",
	"#ef4444",
	"#8b5cf6",
	"#06b6d4",
	"#84cc16",
	"#f97316",
	"#ec4899",
}

// ParseChartType converte o parâmetro recebido. Vazio é tratado pelo chamador.
func ParseChartType(value string) (ChartType, bool) {
	v := ChartType(strings.ToLower(strings.TrimSpace(value)))
	for _, t := range ChartTypes {
		if t == v {
			return t, true
		}
	}
	return "", false
}

// ChartSeries é uma série de valores alinhada aos rótulos do gráfico
type ChartSeries struct {
	Key    string `json:"key"`
	Label  string `json:"label"`
	Color  string `json:"color"`
	Values []int  `json:"values"`
}

// ChartSlice é uma fatia do gráfico de pizza
type ChartSlice struct {
	Name  string `json:"name"`
	Label string `json:"label"`
	Value int    `json:"value"`
	Color string `json:"color"`
}

// ChartSpec descreve o gráfico de forma independente da biblioteca de renderização
type ChartSpec struct {
	Type   ChartType     `json:"type"`
	Title  string        `json:"title"`
	Labels []string      `json:"labels"`
	Series []ChartSeries `json:"series,omitempty"`
	Slices []ChartSlice  `json:"slices,omitempty"`
	Empty  bool          `json:"empty"`
}

// BuildChart monta a especificação do gráfico para os registros filtrados
func BuildChart(records []SalesRecord, chartType ChartType, title string) ChartSpec {
	spec := ChartSpec{
		Type:   chartType,
		Title:  title,
		Labels: make([]string, 0, len(records)),
		Empty:  len(records) == 0,
	}

	for _, record := range records {
		spec.Labels = append(spec.Labels, record.Month)
	}

	if spec.Empty {
		return spec
	}

	switch chartType {
	case ChartPie:
		spec.Slices = make([]ChartSlice, 0, len(records))
		for i, record := range records {
			spec.Slices = append(spec.Slices, ChartSlice{
				Name:  record.Month,
				Label: fmt.Sprintf("%s: %s", record.Month, utils.FormatCurrency(record.Sales)),
				Value: record.Sales,
				Color: ChartPalette[i%len(ChartPalette)],
			})
		}
	default:
		sales := make([]int, 0, len(records))
		orders := make([]int, 0, len(records))
		for _, record := range records {
			sales = append(sales, record.Sales)
			orders = append(orders, record.Orders)
		}
		spec.Series = []ChartSeries{
			{Key: "sales", Label: "Sales", Color: ChartPalette[0], Values: sales},
			{Key: "orders", Label: "Orders", Color: ChartPalette[1], Values: orders},
		}
	}

	return spec
}

package handler

import (
	"bytes"
	"embed"
	"html/template"
	"net/http"
	"strings"

	"github.com/vfg2006/sales-dashboard-api/internal/domain"
	"github.com/vfg2006/sales-dashboard-api/internal/usecases/reporting"
	"github.com/vfg2006/sales-dashboard-api/pkg/apiErrors"
	"github.com/vfg2006/sales-dashboard-api/pkg/log"
	"github.com/vfg2006/sales-dashboard-api/pkg/utils"
)

//go:embed templates/*.html
var templateFS embed.FS

var pageTemplates = template.Must(template.New("pages").Funcs(template.FuncMap{
	"currency": utils.FormatCurrency,
	"number":   utils.FormatNumber,
	"deref":    func(v *int) int { return *v },
}).ParseFS(templateFS, "templates/*.html"))

const genericErrorMessage = "An unexpected error occurred while loading the dashboard."

type chartRow struct {
	Label   string
	Caption string
	Percent int
	Color   string
}

type dashboardPage struct {
	View       *domain.DashboardView
	Years      []int
	ChartTypes []domain.ChartType
	Rows       []chartRow
}

type errorPage struct {
	Message  string
	RetryURL string
}

// DashboardPage renderiza o painel em HTML no servidor
func DashboardPage(service reporting.Reporter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		filters, apiErr := parseDashboardFilters(r, service.DefaultFilters())
		if apiErr != nil {
			renderErrorPage(w, r, http.StatusBadRequest, apiErr.Message)
			return
		}

		view, err := service.GetDashboard(filters)
		if err != nil {
			log.ForContext(r.Context()).WithError(err).Error("painel: falha ao montar página")
			renderErrorPage(w, r, http.StatusInternalServerError, genericErrorMessage)
			return
		}

		years := make([]int, 0, len(view.YearlyComparison))
		for _, row := range view.YearlyComparison {
			years = append(years, row.Year)
		}

		page := dashboardPage{
			View:       view,
			Years:      years,
			ChartTypes: domain.ChartTypes,
			Rows:       chartRows(view.Chart),
		}

		render(w, r, http.StatusOK, "dashboard.html", page)
	}
}

// chartRows converte a especificação do gráfico em barras proporcionais ao maior valor
func chartRows(spec domain.ChartSpec) []chartRow {
	if spec.Empty {
		return nil
	}

	var (
		labels []string
		values []int
		colors []string
	)
	if spec.Type == domain.ChartPie {
		for _, slice := range spec.Slices {
			labels = append(labels, slice.Name)
			values = append(values, slice.Value)
			colors = append(colors, slice.Color)
		}
	} else if len(spec.Series) > 0 {
		sales := spec.Series[0]
		labels = spec.Labels
		values = sales.Values
		for range values {
			colors = append(colors, sales.Color)
		}
	}

	peak := 0
	for _, v := range values {
		if v > peak {
			peak = v
		}
	}

	rows := make([]chartRow, 0, len(values))
	for i, v := range values {
		percent := 0
		if peak > 0 {
			percent = v * 100 / peak
		}
		rows = append(rows, chartRow{
			Label:   labels[i],
			Caption: utils.FormatCurrency(v),
			Percent: percent,
			Color:   colors[i],
		})
	}
	return rows
}

func render(w http.ResponseWriter, r *http.Request, status int, name string, data any) {
	// renderiza em buffer para não enviar HTML pela metade
	var buf bytes.Buffer
	if err := pageTemplates.ExecuteTemplate(&buf, name, data); err != nil {
		log.ForContext(r.Context()).WithError(err).Error("painel: falha ao renderizar template")
		if name != "error.html" {
			renderErrorPage(w, r, http.StatusInternalServerError, genericErrorMessage)
			return
		}
		http.Error(w, genericErrorMessage, http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	_, _ = buf.WriteTo(w)
}

func renderErrorPage(w http.ResponseWriter, r *http.Request, status int, message string) {
	render(w, r, status, "error.html", errorPage{
		Message:  message,
		RetryURL: r.URL.RequestURI(),
	})
}

// ErrorFallback responde a um panic: página HTML para o painel, JSON para a API
func ErrorFallback(w http.ResponseWriter, r *http.Request) {
	if strings.HasPrefix(r.URL.Path, "/dashboard") {
		renderErrorPage(w, r, http.StatusInternalServerError, genericErrorMessage)
		return
	}
	apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro interno no servidor", nil)
}

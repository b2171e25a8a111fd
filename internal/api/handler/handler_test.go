package handler

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/sales-dashboard-api/infrastructure/repository"
	"github.com/vfg2006/sales-dashboard-api/infrastructure/repository/mocks"
	"github.com/vfg2006/sales-dashboard-api/internal/api/handler/router"
	"github.com/vfg2006/sales-dashboard-api/internal/config"
	"github.com/vfg2006/sales-dashboard-api/internal/domain"
	"github.com/vfg2006/sales-dashboard-api/internal/usecases/authenticating"
	"github.com/vfg2006/sales-dashboard-api/internal/usecases/reporting"
	"github.com/vfg2006/sales-dashboard-api/pkg/apiErrors"
	"github.com/vfg2006/sales-dashboard-api/pkg/log"
	"go.uber.org/mock/gomock"
)

func testConfig() *config.Config {
	return &config.Config{
		Dashboard: config.Dashboard{DefaultYear: 2024, DefaultChart: "bar"},
	}
}

func newTestRouter(reporter reporting.Reporter) http.Handler {
	log.SetupTestLogger()
	return router.New(
		router.WithRoutes(Sales(reporter)...),
		router.WithRoutes(Dashboard(reporter)...),
	)
}

func staticReporter() reporting.Reporter {
	return reporting.NewService(repository.NewStaticSalesRepository(), testConfig())
}

func do(t *testing.T, h http.Handler, method, target string) *httptest.ResponseRecorder {
	t.Helper()
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(method, target, nil))
	return rec
}

func decode[T any](t *testing.T, rec *httptest.ResponseRecorder) T {
	t.Helper()
	var out T
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &out))
	return out
}

func TestSalesRoutes(t *testing.T) {
	h := newTestRouter(staticReporter())

	tests := []struct {
		name     string
		target   string
		validate func(t *testing.T, rec *httptest.ResponseRecorder)
	}{
		{
			name:   "todos os registros",
			target: "/v1/sales",
			validate: func(t *testing.T, rec *httptest.ResponseRecorder) {
				require.Equal(t, http.StatusOK, rec.Code)
				assert.Len(t, decode[[]domain.SalesRecord](t, rec), 36)
			},
		},
		{
			name:   "registros de um ano",
			target: "/v1/sales?year=2023",
			validate: func(t *testing.T, rec *httptest.ResponseRecorder) {
				require.Equal(t, http.StatusOK, rec.Code)
				records := decode[[]domain.SalesRecord](t, rec)
				require.Len(t, records, 12)
				assert.Equal(t, "Jan", records[0].Month)
			},
		},
		{
			name:   "ano sem dados retorna lista vazia",
			target: "/v1/sales?year=1999",
			validate: func(t *testing.T, rec *httptest.ResponseRecorder) {
				require.Equal(t, http.StatusOK, rec.Code)
				assert.JSONEq(t, `[]`, rec.Body.String())
			},
		},
		{
			name:   "ano inválido",
			target: "/v1/sales?year=abc",
			validate: func(t *testing.T, rec *httptest.ResponseRecorder) {
				assert.Equal(t, http.StatusBadRequest, rec.Code)
				assert.Equal(t, apiErrors.ErrInvalidFormat, decode[apiErrors.APIError](t, rec).Code)
			},
		},
		{
			name:   "totais anuais",
			target: "/v1/sales/yearly-totals",
			validate: func(t *testing.T, rec *httptest.ResponseRecorder) {
				require.Equal(t, http.StatusOK, rec.Code)
				totals := decode[[]domain.YearlyTotal](t, rec)
				require.Len(t, totals, 3)
				assert.Equal(t, domain.YearlyTotal{Year: 2024, Sales: 101900, Orders: 3790, Revenue: 2038000}, totals[2])
			},
		},
		{
			name:   "anos disponíveis",
			target: "/v1/sales/years",
			validate: func(t *testing.T, rec *httptest.ResponseRecorder) {
				require.Equal(t, http.StatusOK, rec.Code)
				assert.JSONEq(t, `{"years":[2022,2023,2024],"default":2024}`, rec.Body.String())
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.validate(t, do(t, h, http.MethodGet, tt.target))
		})
	}
}

func TestDashboardRoutes(t *testing.T) {
	h := newTestRouter(staticReporter())

	tests := []struct {
		name     string
		target   string
		validate func(t *testing.T, rec *httptest.ResponseRecorder)
	}{
		{
			name:   "padrões configurados",
			target: "/v1/dashboard",
			validate: func(t *testing.T, rec *httptest.ResponseRecorder) {
				require.Equal(t, http.StatusOK, rec.Code)
				view := decode[domain.DashboardView](t, rec)
				assert.Equal(t, domain.DashboardFilters{Year: 2024, ChartType: domain.ChartBar}, view.Filters)
				assert.Equal(t, "$101,900", view.Cards[0].Value)
				assert.Equal(t, 24, view.GrowthRounded)
				assert.Equal(t, 538, view.AverageOrderValueRounded)
			},
		},
		{
			name:   "filtros da query",
			target: "/v1/dashboard?year=2024&threshold=8000&chart=pie",
			validate: func(t *testing.T, rec *httptest.ResponseRecorder) {
				require.Equal(t, http.StatusOK, rec.Code)
				view := decode[domain.DashboardView](t, rec)
				assert.Equal(t, 6, view.Insights.FilteredRecords)
				assert.Equal(t, "Dec", view.Insights.BestMonth)
				assert.Len(t, view.Chart.Slices, 6)
			},
		},
		{
			name:   "limite negativo",
			target: "/v1/dashboard?threshold=-1",
			validate: func(t *testing.T, rec *httptest.ResponseRecorder) {
				assert.Equal(t, http.StatusBadRequest, rec.Code)
				assert.Equal(t, apiErrors.ErrInvalidThreshold, decode[apiErrors.APIError](t, rec).Code)
			},
		},
		{
			name:   "limite não numérico",
			target: "/v1/dashboard?threshold=muito",
			validate: func(t *testing.T, rec *httptest.ResponseRecorder) {
				assert.Equal(t, http.StatusBadRequest, rec.Code)
				assert.Equal(t, apiErrors.ErrInvalidFormat, decode[apiErrors.APIError](t, rec).Code)
			},
		},
		{
			name:   "gráfico desconhecido",
			target: "/v1/dashboard?chart=area",
			validate: func(t *testing.T, rec *httptest.ResponseRecorder) {
				assert.Equal(t, http.StatusBadRequest, rec.Code)
				assert.Equal(t, apiErrors.ErrInvalidChartType, decode[apiErrors.APIError](t, rec).Code)
			},
		},
		{
			name:   "estatísticas do ano",
			target: "/v1/dashboard/stats?year=2023",
			validate: func(t *testing.T, rec *httptest.ResponseRecorder) {
				require.Equal(t, http.StatusOK, rec.Code)
				stats := decode[domain.YearStats](t, rec)
				assert.Equal(t, 82400, stats.TotalSales)
				assert.Equal(t, 65400, stats.PreviousSales)
				assert.Equal(t, domain.ChangeIncrease, stats.ChangeType)
			},
		},
		{
			name:   "gráfico isolado",
			target: "/v1/dashboard/chart?chart=line&threshold=50000",
			validate: func(t *testing.T, rec *httptest.ResponseRecorder) {
				require.Equal(t, http.StatusOK, rec.Code)
				spec := decode[domain.ChartSpec](t, rec)
				assert.True(t, spec.Empty)
				assert.Equal(t, domain.ChartLine, spec.Type)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.validate(t, do(t, h, http.MethodGet, tt.target))
		})
	}
}

func TestDashboardRoutes_RepositoryFailure(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := mocks.NewMockSalesRepository(ctrl)
	repo.EXPECT().ListRecords().Return(nil, errors.New("connection reset")).AnyTimes()

	h := newTestRouter(reporting.NewService(repo, testConfig()))

	rec := do(t, h, http.MethodGet, "/v1/dashboard")
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	apiErr := decode[apiErrors.APIError](t, rec)
	assert.Equal(t, apiErrors.ErrDatabaseOperation, apiErr.Code)
	assert.Equal(t, reporting.ErrRepository.Error(), apiErr.Message)

	page := do(t, h, http.MethodGet, "/dashboard?year=2024")
	assert.Equal(t, http.StatusInternalServerError, page.Code)
	assert.Contains(t, page.Body.String(), "Try again")
	assert.Contains(t, page.Body.String(), `href="/dashboard?year=2024"`)
}

func TestDashboardPage(t *testing.T) {
	h := newTestRouter(staticReporter())

	t.Run("renderiza cartões e comparativo", func(t *testing.T) {
		rec := do(t, h, http.MethodGet, "/dashboard?year=2024&threshold=8000&chart=line")

		require.Equal(t, http.StatusOK, rec.Code)
		assert.True(t, strings.HasPrefix(rec.Header().Get("Content-Type"), "text/html"))

		body := rec.Body.String()
		assert.Contains(t, body, "2024 Sales Performance")
		assert.Contains(t, body, "$101,900")
		assert.Contains(t, body, "$2,038,000")
		assert.Contains(t, body, "$538")
		assert.Contains(t, body, "Records shown: 6 of 12")
		assert.Contains(t, body, "Best month: <strong>Dec</strong>")
		assert.Contains(t, body, `<option value="2024" selected>`)
		assert.Contains(t, body, `<option value="line" selected>`)
	})

	t.Run("sem dados", func(t *testing.T) {
		rec := do(t, h, http.MethodGet, "/dashboard?threshold=999999")

		require.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Body.String(), "No data available")
		assert.Contains(t, rec.Body.String(), "Best month: <strong>N/A</strong>")
	})

	t.Run("filtro inválido mostra página de erro", func(t *testing.T) {
		rec := do(t, h, http.MethodGet, "/dashboard?chart=area")

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Contains(t, rec.Body.String(), "Try again")
	})
}

func TestChartRows(t *testing.T) {
	records := domain.FilterByThreshold(domain.DataByYear(domain.SalesDataset(), 2024), 8000)

	rows := chartRows(domain.BuildChart(records, domain.ChartBar, "t"))
	require.Len(t, rows, 6)
	assert.Equal(t, "Dec", rows[5].Label)
	assert.Equal(t, 100, rows[5].Percent)
	assert.Equal(t, "$13,200", rows[5].Caption)
	assert.Equal(t, 8300*100/13200, rows[0].Percent)

	pie := chartRows(domain.BuildChart(records, domain.ChartPie, "t"))
	require.Len(t, pie, 6)
	assert.Equal(t, domain.ChartPalette[1], pie[1].Color)

	assert.Nil(t, chartRows(domain.BuildChart(nil, domain.ChartBar, "t")))
}

func TestErrorFallback(t *testing.T) {
	log.SetupTestLogger()

	page := httptest.NewRecorder()
	ErrorFallback(page, httptest.NewRequest(http.MethodGet, "/dashboard?year=2023", nil))
	assert.Equal(t, http.StatusInternalServerError, page.Code)
	assert.Contains(t, page.Body.String(), "Try again")

	api := httptest.NewRecorder()
	ErrorFallback(api, httptest.NewRequest(http.MethodGet, "/v1/dashboard", nil))
	assert.Equal(t, http.StatusInternalServerError, api.Code)
	assert.Contains(t, api.Body.String(), apiErrors.ErrInternalServer)
}

type stubAuthenticator struct {
	token string
	err   error
}

func (a stubAuthenticator) LoginUser(_, _ string) (string, error) { return a.token, a.err }

func (a stubAuthenticator) ValidateToken(_ string) (*domain.Claims, error) { return nil, a.err }

func TestLogin(t *testing.T) {
	tests := []struct {
		name        string
		auth        stubAuthenticator
		body        string
		wantStatus  int
		wantCode    string
		wantMessage string
	}{
		{
			name:       "token emitido",
			auth:       stubAuthenticator{token: "abc.def.ghi"},
			body:       `{"email":"admin@example.com","password":"admin123"}`,
			wantStatus: http.StatusOK,
		},
		{
			name:        "credenciais inválidas não expõem o motivo",
			auth:        stubAuthenticator{err: authenticating.NewAuthError(authenticating.ErrInvalidCredentials, apiErrors.ErrInvalidCredentials, "senha")},
			body:        `{"email":"admin@example.com","password":"x"}`,
			wantStatus:  http.StatusUnauthorized,
			wantCode:    apiErrors.ErrInvalidCredentials,
			wantMessage: "Credenciais inválidas",
		},
		{
			name:        "dados ausentes repassam a mensagem do erro",
			auth:        stubAuthenticator{err: authenticating.NewAuthError(authenticating.ErrMissingRequiredData, apiErrors.ErrMissingRequiredData, "email")},
			body:        `{}`,
			wantStatus:  http.StatusBadRequest,
			wantCode:    apiErrors.ErrMissingRequiredData,
			wantMessage: authenticating.ErrMissingRequiredData.Error(),
		},
		{
			name:       "corpo inválido",
			body:       `{`,
			wantStatus: http.StatusBadRequest,
			wantCode:   apiErrors.ErrInvalidRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := router.New(router.WithRoutes(Authentication(tt.auth)...))

			rec := httptest.NewRecorder()
			h.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/v1/login", strings.NewReader(tt.body)))

			require.Equal(t, tt.wantStatus, rec.Code)
			if tt.wantCode == "" {
				assert.Equal(t, "abc.def.ghi", decode[LoginResponse](t, rec).Token)
				return
			}

			apiErr := decode[apiErrors.APIError](t, rec)
			assert.Equal(t, tt.wantCode, apiErr.Code)
			if tt.wantMessage != "" {
				assert.Equal(t, tt.wantMessage, apiErr.Message)
			}
		})
	}
}

package reporting

import (
	"errors"
	"fmt"
)

// Erros específicos do contexto de relatórios de vendas
var (
	// Erros de validação
	ErrInvalidThreshold = errors.New("threshold must be zero or greater")
	ErrInvalidChartType = errors.New("unknown chart type")

	// Erros de fonte de dados
	ErrRepository = errors.New("error reading sales records")
)

// ReportingError é um erro com contexto adicional para relatórios
type ReportingError struct {
	Err     error  // Erro base
	Code    string // Código de erro para API
	Details string // Detalhes adicionais
}

// Error implementa a interface error
func (e *ReportingError) Error() string {
	if e.Details != "" {
		return fmt.Sprintf("%s: %s", e.Err.Error(), e.Details)
	}
	return e.Err.Error()
}

// Unwrap retorna o erro subjacente
func (e *ReportingError) Unwrap() error {
	return e.Err
}

// NewReportingError cria um novo ReportingError
func NewReportingError(err error, code string, details string) *ReportingError {
	return &ReportingError{
		Err:     err,
		Code:    code,
		Details: details,
	}
}

// IsValidationError verifica se o erro veio de filtros inválidos
func IsValidationError(err error) bool {
	return errors.Is(err, ErrInvalidThreshold) || errors.Is(err, ErrInvalidChartType)
}

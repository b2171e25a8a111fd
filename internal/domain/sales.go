package domain

import "fmt"

// Meses aceitos nos registros de vendas, na ordem de exibição
var Months = []string{"Jan", "Feb", "Mar", "Apr", "May", "Jun", "Jul", "Aug", "Sep", "Oct", "Nov", "Dec"}

// SalesRecord representa a observação de vendas de um mês de um ano
type SalesRecord struct {
	Year    int    `json:"year"`
	Month   string `json:"month"`
	Sales   int    `json:"sales"`
	Orders  int    `json:"orders"`
	Revenue int    `json:"revenue"`
}

// YearlyTotal é a soma de cada campo de todos os meses de um ano
type YearlyTotal struct {
	Year    int `json:"year"`
	Sales   int `json:"sales"`
	Orders  int `json:"orders"`
	Revenue int `json:"revenue"`
}

// IsValidMonth verifica se o rótulo é um dos 12 meses conhecidos
func IsValidMonth(month string) bool {
	return MonthIndex(month) >= 0
}

// MonthIndex retorna a posição do mês (0 = Jan) ou -1
func MonthIndex(month string) int {
	for i, m := range Months {
		if m == month {
			return i
		}
	}
	return -1
}

// ValidateRecord garante que o registro respeita o modelo de dados
func ValidateRecord(record SalesRecord) error {
	if !IsValidMonth(record.Month) {
		return fmt.Errorf("mês inválido %q no ano %d", record.Month, record.Year)
	}
	if record.Sales < 0 || record.Orders < 0 || record.Revenue < 0 {
		return fmt.Errorf("valores negativos em %s/%d", record.Month, record.Year)
	}
	return nil
}

package utils

import "math"

// RoundWithTwoDecimalPlace arredonda para duas casas, meio para longe do zero
func RoundWithTwoDecimalPlace(f float64) float64 {
	if f == 0 || math.IsNaN(f) || math.IsInf(f, 0) {
		return 0
	}

	return math.Round(f*100) / 100
}

// RoundToInt arredonda para o inteiro mais próximo, usado nos cartões do painel
func RoundToInt(f float64) int {
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return 0
	}

	return int(math.Round(f))
}

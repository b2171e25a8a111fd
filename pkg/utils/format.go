package utils

import (
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

var printer = message.NewPrinter(language.AmericanEnglish)

// FormatNumber formata um inteiro com separador de milhar (12345 -> "12,345")
func FormatNumber(n int) string {
	return printer.Sprintf("%d", n)
}

// FormatCurrency formata um valor inteiro em dólares sem casas decimais
func FormatCurrency(n int) string {
	return "$" + FormatNumber(n)
}

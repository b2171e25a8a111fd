package utils

import gonanoid "github.com/matoous/go-nanoid/v2"

const (
	idAlphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz0123456789"

	// IDLength é o tamanho dos IDs gravados em sales_records.id (VARCHAR(6))
	IDLength = 6
)

// GenerateID gera um ID curto e alfanumérico para os registros semeados
func GenerateID() (string, error) {
	return gonanoid.Generate(idAlphabet, IDLength)
}

package utils

import (
	"net/http"

	jsoniter "github.com/json-iterator/go"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// WriteJSON serializa a resposta com o status informado
func WriteJSON(w http.ResponseWriter, status int, body any) error {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	return json.NewEncoder(w).Encode(body)
}

// PrettyJson serializa com indentação para logs de depuração.
// O jsoniter só aceita espaços como indentação.
func PrettyJson(in any) string {
	buffer, err := json.MarshalIndent(in, "", "  ")
	if err != nil {
		return ""
	}
	return string(buffer)
}

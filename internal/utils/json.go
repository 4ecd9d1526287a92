package utils

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"
)

func WriteJSON(w http.ResponseWriter, code int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	_ = json.NewEncoder(w).Encode(v)
}

// Envelope padrão de erro da API.
type ErrorResponse struct {
	StatusCode int    `json:"statusCode"`
	Timestamp  string `json:"timestamp"`
	Path       string `json:"path"`
	Error      string `json:"error"`
}

func WriteError(w http.ResponseWriter, r *http.Request, code int, msg string) {
	WriteJSON(w, code, ErrorResponse{
		StatusCode: code,
		Timestamp:  time.Now().UTC().Format(time.RFC3339),
		Path:       r.URL.Path,
		Error:      msg,
	})
}

/*
DecodeStrict decodifica JSON rejeitando chaves desconhecidas
e garantindo que exista exatamente UM objeto JSON.
*/
func DecodeStrict(r io.Reader, dst any) error {
	dec := json.NewDecoder(r)
	dec.DisallowUnknownFields()

	if err := dec.Decode(dst); err != nil {
		/*
			retorna mensagens refenre ao erro dos campos,
			como por exemplo (ex.: "json: unknown field \"foo\"")
		*/
		return err
	}
	/*
		Garante que não tenha lixo após o objeto JSON
		Uma forma de checar EOF seria tentar um segundo Decode em struct{} e exigir EOF.
	*/
	if dec.More() {
		return errors.New("unexpected additional JSON content")
	}

	return nil
}

// Traduz o erro de campo desconhecido do stdlib
// (`json: unknown field "foo"`) para a frase do envelope:
// "property foo should not exist". Outros erros de decode passam direto.
func FormatUnknownFieldError(err error) string {
	msg := err.Error()
	const prefix = `json: unknown field "`
	if rest, ok := strings.CutPrefix(msg, prefix); ok {
		if field, ok := strings.CutSuffix(rest, `"`); ok {
			return fmt.Sprintf("property %s should not exist", field)
		}
	}
	return msg
}

// Package validate implementa as regras de validação do cadastro de
// empresas: validação campo a campo (usada pela API nos patches) e a
// validação do formulário completo (usada no cadastro e no seed).
package validate

import (
	"fmt"
	"strconv"
	"strings"

	"gestorpro/internal/format"
)

// Mode distingue cadastro de edição: na edição o CNPJ é imutável e
// nunca entra no conjunto de campos obrigatórios.
type Mode int

const (
	Creating Mode = iota
	Editing
)

type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

type Result struct {
	Valid  bool         `json:"valid"`
	Errors []FieldError `json:"errors"`
}

// Form é o formulário completo de empresa + endereço, como strings
// cruas (antes da normalização).
type Form struct {
	Name        string
	CNPJ        string
	TradeName   string
	Street      string
	Number      string
	District    string
	City        string
	State       string
	PostalCode  string
	Complemento string
}

// Ordem fixa: os erros do Record saem nessa sequência.
var requiredFields = []string{
	"name",
	"cnpj",
	"tradeName",
	"street",
	"number",
	"district",
	"city",
	"state",
	"postalCode",
}

var fieldLabels = map[string]string{
	"name":        "Nome",
	"cnpj":        "CNPJ",
	"tradeName":   "Nome Fantasia",
	"street":      "Rua",
	"number":      "Número",
	"district":    "Bairro",
	"city":        "Cidade",
	"state":       "Estado",
	"postalCode":  "CEP",
	"complemento": "Complemento",
}

func label(field string) string {
	if l, ok := fieldLabels[field]; ok {
		return l
	}
	return field
}

func isRequired(field string) bool {
	for _, f := range requiredFields {
		if f == field {
			return true
		}
	}
	return false
}

// Field valida um único campo e devolve a mensagem de erro, ou ""
// quando o valor passa. Campo obrigatório vazio devolve a mensagem
// de obrigatoriedade e pula a regra específica; campo desconhecido
// nunca gera erro.
func Field(field, value string) string {
	if isRequired(field) && strings.TrimSpace(value) == "" {
		return fmt.Sprintf("%s é obrigatório", label(field))
	}

	switch field {
	case "name":
		return lengthRule(value, 2, 100, "Nome deve ter entre 2 e 100 caracteres")
	case "cnpj":
		return cnpjRule(value)
	case "tradeName":
		return lengthRule(value, 2, 100, "Nome fantasia deve ter entre 2 e 100 caracteres")
	case "street":
		return lengthRule(value, 2, 200, "Rua deve ter entre 2 e 200 caracteres")
	case "number":
		return numberRule(value)
	case "district":
		return lengthRule(value, 2, 100, "Bairro deve ter entre 2 e 100 caracteres")
	case "city":
		return lengthRule(value, 2, 100, "Cidade deve ter entre 2 e 100 caracteres")
	case "state":
		return stateRule(value)
	case "postalCode":
		return cepRule(value)
	case "complemento":
		if len([]rune(value)) > 100 {
			return "Complemento deve ter no máximo 100 caracteres"
		}
		return ""
	default:
		return ""
	}
}

// Record valida o formulário completo. Primeiro passa pelo conjunto
// de obrigatórios (sem cnpj no modo edição); depois revalida cnpj
// (só no cadastro), number, state e postalCode quando presentes.
// Cada campo reporta no máximo um erro: o vazio obrigatório
// curto-circuita a regra específica daquele campo.
func Record(f Form, mode Mode) Result {
	var errs []FieldError

	for _, field := range requiredFields {
		if mode == Editing && field == "cnpj" {
			continue
		}
		if strings.TrimSpace(fieldValue(f, field)) == "" {
			errs = append(errs, FieldError{
				Field:   field,
				Message: fmt.Sprintf("%s é obrigatório", label(field)),
			})
		}
	}

	if mode == Creating && f.CNPJ != "" {
		if msg := cnpjRule(f.CNPJ); msg != "" {
			errs = append(errs, FieldError{Field: "cnpj", Message: msg})
		}
	}
	if f.Number != "" {
		if msg := numberRule(f.Number); msg != "" {
			errs = append(errs, FieldError{Field: "number", Message: msg})
		}
	}
	if f.State != "" {
		if msg := stateRule(f.State); msg != "" {
			errs = append(errs, FieldError{Field: "state", Message: msg})
		}
	}
	if f.PostalCode != "" {
		if msg := cepRule(f.PostalCode); msg != "" {
			errs = append(errs, FieldError{Field: "postalCode", Message: msg})
		}
	}

	return Result{Valid: len(errs) == 0, Errors: errs}
}

func fieldValue(f Form, field string) string {
	switch field {
	case "name":
		return f.Name
	case "cnpj":
		return f.CNPJ
	case "tradeName":
		return f.TradeName
	case "street":
		return f.Street
	case "number":
		return f.Number
	case "district":
		return f.District
	case "city":
		return f.City
	case "state":
		return f.State
	case "postalCode":
		return f.PostalCode
	case "complemento":
		return f.Complemento
	default:
		return ""
	}
}

func lengthRule(value string, minLen, maxLen int, msg string) string {
	n := len([]rune(strings.TrimSpace(value)))
	if n < minLen || n > maxLen {
		return msg
	}
	return ""
}

func cnpjRule(cnpj string) string {
	clean := format.UnformatCNPJ(cnpj)
	if len(clean) != 14 {
		return "CNPJ deve ter exatamente 14 dígitos"
	}
	return ""
}

func numberRule(number string) string {
	clean := strings.TrimSpace(number)
	if !allDigits(clean) {
		return "Número deve conter apenas dígitos"
	}
	n, err := strconv.Atoi(clean)
	if err != nil || n <= 0 {
		return "Número deve ser maior que zero"
	}
	return ""
}

func stateRule(state string) string {
	clean := strings.ToUpper(strings.TrimSpace(state))
	if len(clean) != 2 {
		return "Estado deve ter exatamente 2 letras (ex: MG, SP)"
	}
	for _, r := range clean {
		if r < 'A' || r > 'Z' {
			return "Estado deve conter apenas letras"
		}
	}
	if !validStates[clean] {
		return "Estado deve ser uma sigla válida (ex: MG, SP, RJ)"
	}
	return ""
}

func cepRule(cep string) string {
	clean := format.UnformatCEP(cep)
	if len(clean) != 8 {
		return "CEP deve ter exatamente 8 dígitos"
	}
	return ""
}

func allDigits(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}

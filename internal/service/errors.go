package service

import (
	"fmt"
	"strings"

	"gestorpro/internal/validate"
)

// ValidationError agrega os erros de campo de um cadastro rejeitado.
type ValidationError struct {
	Errors []validate.FieldError
}

func (e *ValidationError) Error() string {
	msgs := make([]string, 0, len(e.Errors))
	for _, fe := range e.Errors {
		msgs = append(msgs, fe.Message)
	}
	return strings.Join(msgs, ", ")
}

// DuplicateCNPJError indica tentativa de cadastrar um CNPJ já existente.
type DuplicateCNPJError struct {
	CNPJ string
}

func (e *DuplicateCNPJError) Error() string {
	return fmt.Sprintf("CNPJ %s já cadastrado", e.CNPJ)
}

package validate

import (
	"reflect"
	"strings"
	"testing"
)

func validForm() Form {
	return Form{
		Name:       "Empresa X",
		CNPJ:       "12345678000199",
		TradeName:  "Emp X",
		Street:     "Rua A",
		Number:     "10",
		District:   "Bairro",
		City:       "Cidade",
		State:      "MG",
		PostalCode: "00000000",
	}
}

// 1) Field: campo a campo

func TestField_Required(t *testing.T) {
	if got := Field("name", ""); got != "Nome é obrigatório" {
		t.Fatalf("got %q", got)
	}
	if got := Field("name", "   "); got != "Nome é obrigatório" {
		t.Fatalf("espacos contam como vazio: got %q", got)
	}
	if got := Field("tradeName", ""); got != "Nome Fantasia é obrigatório" {
		t.Fatalf("got %q", got)
	}
	// obrigatório vazio curto-circuita a regra específica
	if got := Field("cnpj", ""); got != "CNPJ é obrigatório" {
		t.Fatalf("got %q", got)
	}
}

func TestField_CNPJ(t *testing.T) {
	if got := Field("cnpj", "12345678000199"); got != "" {
		t.Fatalf("got %q", got)
	}
	// pontuação é removida antes da contagem
	if got := Field("cnpj", "12.345.678/0001-99"); got != "" {
		t.Fatalf("got %q", got)
	}
	if got := Field("cnpj", "123"); got != "CNPJ deve ter exatamente 14 dígitos" {
		t.Fatalf("got %q", got)
	}
}

// Dígitos Unicode fora do 0-9 ASCII não contam: um CNPJ/CEP em
// algarismos árabe-índicos é rejeitado, não aceito por bytes
func TestField_NonASCIIDigitsRejected(t *testing.T) {
	// 7 caracteres ٣ = 14 bytes; ainda assim, 0 dígitos
	if got := Field("cnpj", strings.Repeat("٣", 7)); got != "CNPJ deve ter exatamente 14 dígitos" {
		t.Fatalf("got %q", got)
	}
	if got := Field("postalCode", strings.Repeat("٣", 4)); got != "CEP deve ter exatamente 8 dígitos" {
		t.Fatalf("got %q", got)
	}
	if got := Field("number", "١٢"); got != "Número deve conter apenas dígitos" {
		t.Fatalf("got %q", got)
	}
}

func TestField_Number(t *testing.T) {
	if got := Field("number", "10"); got != "" {
		t.Fatalf("got %q", got)
	}
	// "-5" falha no "apenas dígitos" antes de chegar na positividade
	if got := Field("number", "-5"); got != "Número deve conter apenas dígitos" {
		t.Fatalf("got %q", got)
	}
	if got := Field("number", "0"); got != "Número deve ser maior que zero" {
		t.Fatalf("got %q", got)
	}
	if got := Field("number", "12a"); got != "Número deve conter apenas dígitos" {
		t.Fatalf("got %q", got)
	}
}

func TestField_State(t *testing.T) {
	// válido sse o upper-case tem 2 letras e está entre as 27 UFs
	valid := []string{"MG", "mg", "Sp", " rj "}
	for _, s := range valid {
		if got := Field("state", s); got != "" {
			t.Fatalf("state %q: got %q", s, got)
		}
	}
	if got := Field("state", "M"); got != "Estado deve ter exatamente 2 letras (ex: MG, SP)" {
		t.Fatalf("got %q", got)
	}
	if got := Field("state", "M1"); got != "Estado deve conter apenas letras" {
		t.Fatalf("got %q", got)
	}
	if got := Field("state", "XX"); got != "Estado deve ser uma sigla válida (ex: MG, SP, RJ)" {
		t.Fatalf("got %q", got)
	}
}

func TestField_State_All27(t *testing.T) {
	ufs := []string{
		"AC", "AL", "AP", "AM", "BA", "CE", "DF", "ES", "GO",
		"MA", "MT", "MS", "MG", "PA", "PB", "PR", "PE", "PI",
		"RJ", "RN", "RS", "RO", "RR", "SC", "SP", "SE", "TO",
	}
	if len(ufs) != 27 {
		t.Fatalf("lista de UFs com %d itens", len(ufs))
	}
	for _, uf := range ufs {
		if got := Field("state", uf); got != "" {
			t.Fatalf("UF %s rejeitada: %q", uf, got)
		}
		if got := Field("state", strings.ToLower(uf)); got != "" {
			t.Fatalf("UF minúscula %s rejeitada: %q", uf, got)
		}
	}
}

func TestField_PostalCode(t *testing.T) {
	if got := Field("postalCode", "30110010"); got != "" {
		t.Fatalf("got %q", got)
	}
	if got := Field("postalCode", "30110-010"); got != "" {
		t.Fatalf("got %q", got)
	}
	if got := Field("postalCode", "123"); got != "CEP deve ter exatamente 8 dígitos" {
		t.Fatalf("got %q", got)
	}
}

func TestField_Lengths(t *testing.T) {
	if got := Field("name", "A"); got != "Nome deve ter entre 2 e 100 caracteres" {
		t.Fatalf("got %q", got)
	}
	if got := Field("street", strings.Repeat("r", 201)); got != "Rua deve ter entre 2 e 200 caracteres" {
		t.Fatalf("got %q", got)
	}
	if got := Field("street", strings.Repeat("r", 200)); got != "" {
		t.Fatalf("got %q", got)
	}
	if got := Field("complemento", ""); got != "" {
		t.Fatalf("complemento é opcional: got %q", got)
	}
	if got := Field("complemento", strings.Repeat("c", 101)); got != "Complemento deve ter no máximo 100 caracteres" {
		t.Fatalf("got %q", got)
	}
}

// campo desconhecido nunca gera erro
func TestField_UnknownField(t *testing.T) {
	if got := Field("foo", ""); got != "" {
		t.Fatalf("got %q", got)
	}
	if got := Field("foo", "qualquer coisa"); got != "" {
		t.Fatalf("got %q", got)
	}
}

// 2) Record: formulário completo

func TestRecord_Creating_Valid(t *testing.T) {
	res := Record(validForm(), Creating)
	if !res.Valid || len(res.Errors) != 0 {
		t.Fatalf("esperava válido: %#v", res.Errors)
	}
}

func TestRecord_Creating_AllMissing(t *testing.T) {
	res := Record(Form{}, Creating)
	if res.Valid {
		t.Fatal("esperava inválido")
	}
	// os nove obrigatórios, na ordem fixa
	if len(res.Errors) != 9 {
		t.Fatalf("esperava 9 erros, veio %d: %#v", len(res.Errors), res.Errors)
	}
	if res.Errors[0].Field != "name" || res.Errors[1].Field != "cnpj" {
		t.Fatalf("ordem inesperada: %#v", res.Errors[:2])
	}
	if res.Errors[8].Field != "postalCode" {
		t.Fatalf("ordem inesperada: %#v", res.Errors[8])
	}
}

// obrigatório ausente gera um erro só por campo (sem regra específica)
func TestRecord_OneErrorPerMissingField(t *testing.T) {
	f := validForm()
	f.CNPJ = ""
	res := Record(f, Creating)
	count := 0
	for _, e := range res.Errors {
		if e.Field == "cnpj" {
			count++
		}
	}
	if count != 1 {
		t.Fatalf("esperava 1 erro de cnpj, veio %d: %#v", count, res.Errors)
	}
	if res.Errors[0].Message != "CNPJ é obrigatório" {
		t.Fatalf("got %q", res.Errors[0].Message)
	}
}

// valor presente mas malformado é reportado pela segunda passada
func TestRecord_PresentButMalformed(t *testing.T) {
	f := validForm()
	f.CNPJ = "123"
	f.Number = "-5"
	f.State = "XX"
	f.PostalCode = "99"
	res := Record(f, Creating)
	if res.Valid {
		t.Fatal("esperava inválido")
	}
	want := map[string]string{
		"cnpj":       "CNPJ deve ter exatamente 14 dígitos",
		"number":     "Número deve conter apenas dígitos",
		"state":      "Estado deve ser uma sigla válida (ex: MG, SP, RJ)",
		"postalCode": "CEP deve ter exatamente 8 dígitos",
	}
	if len(res.Errors) != len(want) {
		t.Fatalf("erros: %#v", res.Errors)
	}
	for _, e := range res.Errors {
		if want[e.Field] != e.Message {
			t.Fatalf("campo %s: got %q want %q", e.Field, e.Message, want[e.Field])
		}
	}
}

func TestRecord_Editing_IgnoresCNPJ(t *testing.T) {
	f := validForm()
	f.CNPJ = "" // na edição o CNPJ nunca é exigido nem validado
	res := Record(f, Editing)
	if !res.Valid {
		t.Fatalf("esperava válido: %#v", res.Errors)
	}

	// mesmo presente e malformado, cnpj não é alvo de validação na edição
	f.CNPJ = "123"
	res = Record(f, Editing)
	if !res.Valid {
		t.Fatalf("esperava válido: %#v", res.Errors)
	}
}

func TestRecord_Editing_StillRequiresOthers(t *testing.T) {
	f := validForm()
	f.CNPJ = ""
	f.City = ""
	res := Record(f, Editing)
	if res.Valid || len(res.Errors) != 1 || res.Errors[0].Field != "city" {
		t.Fatalf("erros: %#v", res.Errors)
	}
}

// sem estado escondido: duas chamadas, mesmo resultado
func TestRecord_Idempotent(t *testing.T) {
	f := validForm()
	f.State = "xx"
	f.Number = "0"
	a := Record(f, Creating)
	b := Record(f, Creating)
	if !reflect.DeepEqual(a, b) {
		t.Fatalf("resultados diferentes:\n%#v\n%#v", a, b)
	}
}

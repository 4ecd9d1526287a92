// Package format concentra a formatação de dados brasileiros (CNPJ, CEP).
// Todas as funções são puras e totais: entrada inesperada volta como veio.
package format

// remove qualquer coisa que não seja dígito ASCII. Dígitos Unicode
// de outros alfabetos (ex: ٣) NÃO contam: o formato canônico é
// 0-9, e descartá-los mantém len == quantidade de dígitos.
func onlyDigits(s string) string {
	out := make([]byte, 0, len(s))
	for i := 0; i < len(s); i++ {
		if s[i] >= '0' && s[i] <= '9' {
			out = append(out, s[i])
		}
	}
	return string(out)
}

// UnformatCNPJ devolve o CNPJ canônico (apenas dígitos).
// É o formato de armazenamento e o usado antes da validação.
func UnformatCNPJ(cnpj string) string {
	return onlyDigits(cnpj)
}

// UnformatCEP devolve o CEP canônico (apenas dígitos).
func UnformatCEP(cep string) string {
	return onlyDigits(cep)
}

// FormatCNPJ pontua um CNPJ já canônico: NN.NNN.NNN/NNNN-NN.
// Entrada fora do tamanho canônico volta inalterada.
func FormatCNPJ(cnpj string) string {
	if len(cnpj) != 14 {
		return cnpj
	}
	return cnpj[0:2] + "." + cnpj[2:5] + "." + cnpj[5:8] + "/" + cnpj[8:12] + "-" + cnpj[12:14]
}

// FormatCEP pontua um CEP já canônico: NNNNN-NNN.
func FormatCEP(cep string) string {
	if len(cep) != 8 {
		return cep
	}
	return cep[0:5] + "-" + cep[5:8]
}

// MaskCNPJ aplica a máscara incremental usada durante a digitação:
// a saída é um prefixo válido de NN.NNN.NNN/NNNN-NN em qualquer
// tamanho de entrada; excedente além de 14 dígitos é truncado.
func MaskCNPJ(value string) string {
	n := onlyDigits(value)
	switch {
	case len(n) <= 2:
		return n
	case len(n) <= 5:
		return n[0:2] + "." + n[2:]
	case len(n) <= 8:
		return n[0:2] + "." + n[2:5] + "." + n[5:]
	case len(n) <= 12:
		return n[0:2] + "." + n[2:5] + "." + n[5:8] + "/" + n[8:]
	default:
		return n[0:2] + "." + n[2:5] + "." + n[5:8] + "/" + n[8:12] + "-" + n[12:min(len(n), 14)]
	}
}

// MaskCEP idem para CEP: NNNNN-NNN, truncado em 8 dígitos.
func MaskCEP(value string) string {
	n := onlyDigits(value)
	if len(n) <= 5 {
		return n
	}
	return n[0:5] + "-" + n[5:min(len(n), 8)]
}

package handlers

import "gestorpro/internal/service"

//	somente os campos do contrato
//
// id e timestamps NÃO vêm do cliente (gerados no servidor)
type CompanyCreateDTO struct {
	Name        string  `json:"name"`
	CNPJ        string  `json:"cnpj"`
	TradeName   string  `json:"tradeName"`
	Street      string  `json:"street"`
	Number      string  `json:"number"`
	District    string  `json:"district"`
	City        string  `json:"city"`
	State       string  `json:"state"`
	PostalCode  string  `json:"postalCode"`
	Complemento *string `json:"complemento,omitempty"`
}

// Update parcial; ponteiros distinguem "omitido" de "informado".
// CNPJ fica fora: não é aceito como alvo de alteração.
type CompanyUpdateDTO struct {
	Name        *string `json:"name,omitempty"`
	TradeName   *string `json:"tradeName,omitempty"`
	Street      *string `json:"street,omitempty"`
	Number      *string `json:"number,omitempty"`
	District    *string `json:"district,omitempty"`
	City        *string `json:"city,omitempty"`
	State       *string `json:"state,omitempty"`
	PostalCode  *string `json:"postalCode,omitempty"`
	Complemento *string `json:"complemento,omitempty"`
}

func (d CompanyCreateDTO) toInput() service.CreateCompanyInput {
	in := service.CreateCompanyInput{
		Name:       d.Name,
		CNPJ:       d.CNPJ,
		TradeName:  d.TradeName,
		Street:     d.Street,
		Number:     d.Number,
		District:   d.District,
		City:       d.City,
		State:      d.State,
		PostalCode: d.PostalCode,
	}
	if d.Complemento != nil {
		in.Complemento = *d.Complemento
	}
	return in
}

func (d CompanyUpdateDTO) toInput() service.UpdateCompanyInput {
	return service.UpdateCompanyInput{
		Name:        d.Name,
		TradeName:   d.TradeName,
		Street:      d.Street,
		Number:      d.Number,
		District:    d.District,
		City:        d.City,
		State:       d.State,
		PostalCode:  d.PostalCode,
		Complemento: d.Complemento,
	}
}

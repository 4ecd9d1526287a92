package models

import "time"

// Empresa + endereço são um documento só: o endereço nunca existe
// sem a empresa (composição 1:1).
type Company struct {
	ID        int64     `bson:"_id,omitempty" json:"id"`
	Name      string    `bson:"name" json:"name"`
	CNPJ      string    `bson:"cnpj" json:"cnpj"` // armazenado normalizado (apenas dígitos), imutável
	TradeName string    `bson:"trade_name" json:"tradeName"`
	Address   Address   `bson:"address" json:"address"`
	CreatedAt time.Time `bson:"created_at" json:"createdAt"`
	UpdatedAt time.Time `bson:"updated_at" json:"updatedAt"`
}

type Address struct {
	Street      string `bson:"street" json:"street"`
	Number      string `bson:"number" json:"number"`
	District    string `bson:"district" json:"district"`
	City        string `bson:"city" json:"city"`
	State       string `bson:"state" json:"state"`             // sigla UF, sempre maiúscula
	PostalCode  string `bson:"postal_code" json:"postalCode"`  // apenas dígitos
	Complemento string `bson:"complemento" json:"complemento"` // opcional
}

// Patch parcial; ponteiros distinguem "omitido" de "informado".
// CNPJ não aparece aqui: é imutável após o cadastro.
type CompanyPatch struct {
	Name      *string
	TradeName *string
	Address   AddressPatch
}

type AddressPatch struct {
	Street     *string
	Number     *string
	District   *string
	City       *string
	State      *string
	PostalCode *string
	// Complemento presente com "" significa "limpar o complemento".
	Complemento *string
}

// IsEmpty indica se o patch não altera campo algum.
func (p CompanyPatch) IsEmpty() bool {
	a := p.Address
	return p.Name == nil && p.TradeName == nil &&
		a.Street == nil && a.Number == nil && a.District == nil &&
		a.City == nil && a.State == nil && a.PostalCode == nil &&
		a.Complemento == nil
}

package admin

import (
	"context"
	_ "embed"
	"encoding/json"
	"errors"
	"log/slog"
	"strings"
	"time"

	"gestorpro/internal/format"
	"gestorpro/internal/models"
	"gestorpro/internal/repository"
	"gestorpro/internal/validate"
)

//go:embed seeds/companies.json
var companiesJSON []byte

type seedItem struct {
	Name        string `json:"name"`
	CNPJ        string `json:"cnpj"`
	TradeName   string `json:"tradeName"`
	Street      string `json:"street"`
	Number      string `json:"number"`
	District    string `json:"district"`
	City        string `json:"city"`
	State       string `json:"state"`
	PostalCode  string `json:"postalCode"`
	Complemento string `json:"complemento"`
}

// Idempotente: cria se não existir; se já existir, ignora.
func SeedCompanies(ctx context.Context, repo *repository.CompanyRepository, log *slog.Logger) error {
	var items []seedItem
	if err := json.Unmarshal(companiesJSON, &items); err != nil {
		return err
	}

	for _, s := range items {
		res := validate.Record(validate.Form{
			Name:        s.Name,
			CNPJ:        s.CNPJ,
			TradeName:   s.TradeName,
			Street:      s.Street,
			Number:      s.Number,
			District:    s.District,
			City:        s.City,
			State:       s.State,
			PostalCode:  s.PostalCode,
			Complemento: s.Complemento,
		}, validate.Creating)
		if !res.Valid {
			log.Warn("seed_skip_invalid", "cnpj", s.CNPJ, "errors", len(res.Errors))
			continue
		}

		c := models.Company{
			Name:      s.Name,
			CNPJ:      format.UnformatCNPJ(s.CNPJ),
			TradeName: s.TradeName,
			Address: models.Address{
				Street:      s.Street,
				Number:      s.Number,
				District:    s.District,
				City:        s.City,
				State:       strings.ToUpper(s.State),
				PostalCode:  format.UnformatCEP(s.PostalCode),
				Complemento: s.Complemento,
			},
		}

		// timeout curto por item pra não travar
		ictx, cancel := context.WithTimeout(ctx, 3*time.Second)
		_, err := repo.Create(ictx, &c)
		cancel()

		if err != nil {
			if errors.Is(err, repository.ErrDuplicateCNPJ) {
				log.Info("seed_company_exists", "cnpj", c.CNPJ)
				continue
			}
			return err
		}
		log.Info("seed_company_created", "cnpj", c.CNPJ, "id", c.ID)
	}

	log.Info("seed_companies_done", "count", len(items))
	return nil
}

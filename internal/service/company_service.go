// Package service orquestra o CRUD de empresas: validação, checagem
// de CNPJ duplicado, persistência e o evento de notificação.
package service

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"strings"
	"time"

	amqp "github.com/rabbitmq/amqp091-go"

	"gestorpro/internal/broker"
	"gestorpro/internal/format"
	"gestorpro/internal/models"
	"gestorpro/internal/repository"
	"gestorpro/internal/validate"
)

type Repository interface {
	Create(ctx context.Context, c *models.Company) (int64, error)
	GetByID(ctx context.Context, id int64) (*models.Company, error)
	FindByCNPJ(ctx context.Context, cnpj string) (*models.Company, error)
	GetAll(ctx context.Context, limit, skip int64) ([]models.Company, error)
	Update(ctx context.Context, id int64, p models.CompanyPatch) error
	Delete(ctx context.Context, id int64) error
}

type Publisher interface {
	Publish(ctx context.Context, body string, headers amqp.Table) error
	Close() error
}

type CreateCompanyInput struct {
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

// Update parcial: nil = omitido. Vazio é descartado ("sem mudança"),
// exceto Complemento, onde "" limpa o campo. CNPJ não existe aqui.
type UpdateCompanyInput struct {
	Name        *string
	TradeName   *string
	Street      *string
	Number      *string
	District    *string
	City        *string
	State       *string
	PostalCode  *string
	Complemento *string
}

type CompanyService struct {
	repo Repository
	pub  Publisher
	log  *slog.Logger
}

func NewCompanyService(repo Repository, pub Publisher, log *slog.Logger) *CompanyService {
	if log == nil {
		log = slog.Default()
	}
	return &CompanyService{repo: repo, pub: pub, log: log.With("cmp", "service")}
}

// Create valida, normaliza e persiste empresa + endereço como uma
// unidade. A pré-checagem de CNPJ é só otimização: o índice único é
// quem garante a unicidade, e um conflito no insert vira o mesmo
// erro de duplicidade. Falha na notificação não desfaz o cadastro.
func (s *CompanyService) Create(ctx context.Context, in CreateCompanyInput) (*models.Company, error) {
	res := validate.Record(validate.Form{
		Name:        in.Name,
		CNPJ:        in.CNPJ,
		TradeName:   in.TradeName,
		Street:      in.Street,
		Number:      in.Number,
		District:    in.District,
		City:        in.City,
		State:       in.State,
		PostalCode:  in.PostalCode,
		Complemento: in.Complemento,
	}, validate.Creating)
	if !res.Valid {
		return nil, &ValidationError{Errors: res.Errors}
	}

	// segunda passada campo a campo: aplica as regras de tamanho que
	// o Record não cobre (mesmas regras do patch de update)
	if verrs := validateCreateFields(in); len(verrs) > 0 {
		return nil, &ValidationError{Errors: verrs}
	}

	cnpj := format.UnformatCNPJ(in.CNPJ)

	if _, err := s.repo.FindByCNPJ(ctx, cnpj); err == nil {
		return nil, &DuplicateCNPJError{CNPJ: cnpj}
	} else if !errors.Is(err, repository.ErrNotFound) {
		return nil, err
	}

	c := models.Company{
		Name:      strings.TrimSpace(in.Name),
		CNPJ:      cnpj,
		TradeName: strings.TrimSpace(in.TradeName),
		Address: models.Address{
			Street:      strings.TrimSpace(in.Street),
			Number:      strings.TrimSpace(in.Number),
			District:    strings.TrimSpace(in.District),
			City:        strings.TrimSpace(in.City),
			State:       strings.ToUpper(strings.TrimSpace(in.State)),
			PostalCode:  format.UnformatCEP(in.PostalCode),
			Complemento: in.Complemento,
		},
	}

	if _, err := s.repo.Create(ctx, &c); err != nil {
		if errors.Is(err, repository.ErrDuplicateCNPJ) {
			return nil, &DuplicateCNPJError{CNPJ: cnpj}
		}
		return nil, err
	}

	s.publishEvent(broker.ActionCreated, &c)
	return &c, nil
}

func (s *CompanyService) List(ctx context.Context, limit, skip int64) ([]models.Company, error) {
	return s.repo.GetAll(ctx, limit, skip)
}

func (s *CompanyService) Get(ctx context.Context, id int64) (*models.Company, error) {
	return s.repo.GetByID(ctx, id)
}

// Update aplica um patch parcial. Só os campos presentes e não
// vazios entram (Complemento "" é mantido para limpar o campo);
// cada valor presente passa pela regra específica do campo.
func (s *CompanyService) Update(ctx context.Context, id int64, in UpdateCompanyInput) (*models.Company, error) {
	if _, err := s.repo.GetByID(ctx, id); err != nil {
		return nil, err
	}

	patch, verrs := buildPatch(in)
	if len(verrs) > 0 {
		return nil, &ValidationError{Errors: verrs}
	}

	if !patch.IsEmpty() {
		if err := s.repo.Update(ctx, id, patch); err != nil {
			return nil, err
		}
	}

	updated, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	s.publishEvent(broker.ActionUpdated, updated)
	return updated, nil
}

// Delete remove empresa e endereço juntos (documento único) e
// devolve o último snapshot do registro.
func (s *CompanyService) Delete(ctx context.Context, id int64) (*models.Company, error) {
	c, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := s.repo.Delete(ctx, id); err != nil {
		return nil, err
	}

	s.publishEvent(broker.ActionDeleted, c)
	return c, nil
}

// validateCreateFields roda a regra específica de cada campo do
// cadastro, na ordem do formulário. Pressupõe que o Record já passou:
// cnpj/number/state/postalCode voltam limpos e só as regras de
// tamanho (nome, fantasia, rua, bairro, cidade, complemento) podem
// acusar erro aqui.
func validateCreateFields(in CreateCompanyInput) []validate.FieldError {
	fields := []struct {
		name  string
		value string
	}{
		{"name", in.Name},
		{"cnpj", in.CNPJ},
		{"tradeName", in.TradeName},
		{"street", in.Street},
		{"number", in.Number},
		{"district", in.District},
		{"city", in.City},
		{"state", in.State},
		{"postalCode", in.PostalCode},
		{"complemento", in.Complemento},
	}

	var verrs []validate.FieldError
	for _, f := range fields {
		if msg := validate.Field(f.name, f.value); msg != "" {
			verrs = append(verrs, validate.FieldError{Field: f.name, Message: msg})
		}
	}
	return verrs
}

// buildPatch descarta campos omitidos ou vazios e valida os que
// ficaram. Normaliza estado (maiúsculas) e CEP (apenas dígitos).
func buildPatch(in UpdateCompanyInput) (models.CompanyPatch, []validate.FieldError) {
	var p models.CompanyPatch
	var verrs []validate.FieldError

	keep := func(field string, v *string) *string {
		if v == nil || strings.TrimSpace(*v) == "" {
			return nil
		}
		if msg := validate.Field(field, *v); msg != "" {
			verrs = append(verrs, validate.FieldError{Field: field, Message: msg})
			return nil
		}
		s := strings.TrimSpace(*v)
		return &s
	}

	p.Name = keep("name", in.Name)
	p.TradeName = keep("tradeName", in.TradeName)
	p.Address.Street = keep("street", in.Street)
	p.Address.Number = keep("number", in.Number)
	p.Address.District = keep("district", in.District)
	p.Address.City = keep("city", in.City)

	if v := keep("state", in.State); v != nil {
		up := strings.ToUpper(*v)
		p.Address.State = &up
	}
	if v := keep("postalCode", in.PostalCode); v != nil {
		clean := format.UnformatCEP(*v)
		p.Address.PostalCode = &clean
	}

	// Complemento: "" explícito significa "limpar".
	if in.Complemento != nil {
		if msg := validate.Field("complemento", *in.Complemento); msg != "" {
			verrs = append(verrs, validate.FieldError{Field: "complemento", Message: msg})
		} else {
			p.Address.Complemento = in.Complemento
		}
	}

	return p, verrs
}

// publishEvent faz uma única tentativa de notificação; erro é logado
// como warning e nunca bloqueia ou desfaz a operação que o gerou.
func (s *CompanyService) publishEvent(action string, c *models.Company) {
	if s.pub == nil || c == nil {
		return
	}

	ev := broker.CompanyEvent{
		Action:    action,
		ID:        c.ID,
		CNPJ:      c.CNPJ,
		Name:      c.Name,
		TradeName: c.TradeName,
		Timestamp: time.Now().UTC(),
	}
	body, err := json.Marshal(ev)
	if err != nil {
		s.log.Warn("notify_encode_failed", "action", action, "id", c.ID, "err", err)
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()

	err = s.pub.Publish(ctx, string(body), amqp.Table{
		"action":     action,
		"company_id": c.ID,
		"cnpj":       c.CNPJ,
		"nome":       c.Name,
		"timestamp":  ev.Timestamp.Format(time.RFC3339),
	})
	if err != nil {
		s.log.Warn("notify_failed", "action", action, "id", c.ID, "err", err)
	}
}

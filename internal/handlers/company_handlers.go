package handlers

import (
	"context"
	"errors"
	"net/http"
	"strconv"
	"strings"
	"time"

	"gestorpro/internal/models"
	"gestorpro/internal/repository"
	"gestorpro/internal/service"
	"gestorpro/internal/utils"
)

// Mensagem do 400 para id não numérico na rota.
const msgMalformedID = "Validation failed (numeric string is expected)"

type Service interface {
	Create(ctx context.Context, in service.CreateCompanyInput) (*models.Company, error)
	List(ctx context.Context, limit, skip int64) ([]models.Company, error)
	Get(ctx context.Context, id int64) (*models.Company, error)
	Update(ctx context.Context, id int64, in service.UpdateCompanyInput) (*models.Company, error)
	Delete(ctx context.Context, id int64) (*models.Company, error)
}

type CompanyHandler struct {
	Svc Service
}

func NewCompanyHandler(svc Service) *CompanyHandler {
	return &CompanyHandler{Svc: svc}
}

// garantir que a requisição venha no padrão /companies/{id}
func parseIDFromPath(path string) (string, bool) {
	parts := strings.Split(strings.Trim(path, "/"), "/")
	if len(parts) == 2 && parts[0] == "companies" && parts[1] != "" {
		return parts[1], true
	}
	return "", false
}

func (h *CompanyHandler) Health(w http.ResponseWriter, r *http.Request) {
	utils.WriteJSON(w, http.StatusOK, map[string]string{
		"status":    "ok",
		"timestamp": time.Now().UTC().Format(time.RFC3339),
	})
}

// Documentação mínima das rotas disponíveis.
func (h *CompanyHandler) APIInfo(w http.ResponseWriter, r *http.Request) {
	utils.WriteJSON(w, http.StatusOK, map[string]any{
		"name":    "GestorPro API",
		"version": "1.0.0",
		"endpoints": map[string]any{
			"companies": map[string]string{
				"list":   "GET /companies",
				"create": "POST /companies",
				"get":    "GET /companies/:id",
				"update": "PUT /companies/:id",
				"delete": "DELETE /companies/:id",
			},
			"health": "GET /health",
			"info":   "GET /api",
		},
	})
}

func (h *CompanyHandler) Companies(w http.ResponseWriter, r *http.Request) {

	switch r.Method {

	// "getAll" (limit/skip opcionais; sem limit vem tudo)
	case http.MethodGet:
		q := r.URL.Query()
		limit := int64(0)
		skip := int64(0)
		if l := q.Get("limit"); l != "" {
			if v, err := strconv.ParseInt(l, 10, 64); err == nil && v > 0 && v <= 200 {
				limit = v
			}
		}
		if s := q.Get("skip"); s != "" {
			if v, err := strconv.ParseInt(s, 10, 64); err == nil && v >= 0 {
				skip = v
			}
		}
		ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
		defer cancel()
		list, err := h.Svc.List(ctx, limit, skip)
		if err != nil {
			utils.WriteError(w, r, http.StatusInternalServerError, "Erro ao buscar empresas")
			return
		}
		utils.WriteJSON(w, http.StatusOK, list)

	// create
	case http.MethodPost:
		var dto CompanyCreateDTO
		if err := utils.DecodeStrict(r.Body, &dto); err != nil {
			utils.WriteError(w, r, http.StatusBadRequest, utils.FormatUnknownFieldError(err))
			return
		}

		ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
		defer cancel()
		c, err := h.Svc.Create(ctx, dto.toInput())
		if err != nil {
			h.writeServiceError(w, r, err, "Erro ao criar empresa")
			return
		}
		utils.WriteJSON(w, http.StatusCreated, c)

	default:
		w.WriteHeader(http.StatusMethodNotAllowed)
	}
}

func (h *CompanyHandler) CompanyByID(w http.ResponseWriter, r *http.Request) {
	raw, ok := parseIDFromPath(r.URL.Path)
	if !ok {
		utils.WriteError(w, r, http.StatusNotFound, "Empresa não encontrada")
		return
	}
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		utils.WriteError(w, r, http.StatusBadRequest, msgMalformedID)
		return
	}

	switch r.Method {
	case http.MethodGet:
		ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
		defer cancel()
		c, err := h.Svc.Get(ctx, id)
		if err != nil {
			h.writeServiceError(w, r, err, "Erro ao buscar empresa")
			return
		}
		utils.WriteJSON(w, http.StatusOK, c)

	case http.MethodPut:
		var dto CompanyUpdateDTO
		if err := utils.DecodeStrict(r.Body, &dto); err != nil {
			utils.WriteError(w, r, http.StatusBadRequest, utils.FormatUnknownFieldError(err))
			return
		}

		ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
		defer cancel()
		c, err := h.Svc.Update(ctx, id, dto.toInput())
		if err != nil {
			h.writeServiceError(w, r, err, "Erro ao atualizar empresa")
			return
		}
		utils.WriteJSON(w, http.StatusOK, c)

	case http.MethodDelete:
		ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
		defer cancel()
		if _, err := h.Svc.Delete(ctx, id); err != nil {
			h.writeServiceError(w, r, err, "Erro ao remover empresa")
			return
		}
		w.WriteHeader(http.StatusNoContent)

	default:
		w.WriteHeader(http.StatusMethodNotAllowed)
	}
}

// writeServiceError traduz a taxonomia do service para o envelope
// HTTP. Erro inesperado vira 500 genérico, sem detalhe interno.
func (h *CompanyHandler) writeServiceError(w http.ResponseWriter, r *http.Request, err error, internalMsg string) {
	var verr *service.ValidationError
	var derr *service.DuplicateCNPJError

	switch {
	case errors.As(err, &verr):
		utils.WriteError(w, r, http.StatusBadRequest, verr.Error())
	case errors.As(err, &derr):
		utils.WriteError(w, r, http.StatusBadRequest, derr.Error())
	case errors.Is(err, repository.ErrNotFound):
		utils.WriteError(w, r, http.StatusNotFound, "Empresa não encontrada")
	default:
		utils.WriteError(w, r, http.StatusInternalServerError, internalMsg)
	}
}

package service

import (
	"context"
	"errors"

	"gestorpro/internal/models"

	"github.com/rabbitmq/amqp091-go"
)

type repoMock struct {
	CreateFn     func(ctx context.Context, c *models.Company) (int64, error)
	GetByIDFn    func(ctx context.Context, id int64) (*models.Company, error)
	FindByCNPJFn func(ctx context.Context, cnpj string) (*models.Company, error)
	GetAllFn     func(ctx context.Context, limit, skip int64) ([]models.Company, error)
	UpdateFn     func(ctx context.Context, id int64, p models.CompanyPatch) error
	DeleteFn     func(ctx context.Context, id int64) error
}

func (m *repoMock) Create(ctx context.Context, c *models.Company) (int64, error) {
	if m.CreateFn == nil {
		return 0, errors.New("CreateFn not set")
	}
	return m.CreateFn(ctx, c)
}
func (m *repoMock) GetByID(ctx context.Context, id int64) (*models.Company, error) {
	if m.GetByIDFn == nil {
		return nil, errors.New("GetByIDFn not set")
	}
	return m.GetByIDFn(ctx, id)
}
func (m *repoMock) FindByCNPJ(ctx context.Context, cnpj string) (*models.Company, error) {
	if m.FindByCNPJFn == nil {
		return nil, errors.New("FindByCNPJFn not set")
	}
	return m.FindByCNPJFn(ctx, cnpj)
}
func (m *repoMock) GetAll(ctx context.Context, limit, skip int64) ([]models.Company, error) {
	if m.GetAllFn == nil {
		return nil, errors.New("GetAllFn not set")
	}
	return m.GetAllFn(ctx, limit, skip)
}
func (m *repoMock) Update(ctx context.Context, id int64, p models.CompanyPatch) error {
	if m.UpdateFn == nil {
		return errors.New("UpdateFn not set")
	}
	return m.UpdateFn(ctx, id, p)
}
func (m *repoMock) Delete(ctx context.Context, id int64) error {
	if m.DeleteFn == nil {
		return errors.New("DeleteFn not set")
	}
	return m.DeleteFn(ctx, id)
}

type pubMock struct {
	PublishFn func(ctx context.Context, body string, headers amqp091.Table) error
	CloseFn   func() error
}

func (p *pubMock) Publish(ctx context.Context, body string, headers amqp091.Table) error {
	if p.PublishFn == nil {
		return nil
	}
	return p.PublishFn(ctx, body, headers)
}
func (p *pubMock) Close() error {
	if p.CloseFn == nil {
		return nil
	}
	return p.CloseFn()
}

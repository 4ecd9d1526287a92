package handlers

import (
	"context"
	"errors"

	"gestorpro/internal/models"
	"gestorpro/internal/service"
)

type svcMock struct {
	CreateFn func(ctx context.Context, in service.CreateCompanyInput) (*models.Company, error)
	ListFn   func(ctx context.Context, limit, skip int64) ([]models.Company, error)
	GetFn    func(ctx context.Context, id int64) (*models.Company, error)
	UpdateFn func(ctx context.Context, id int64, in service.UpdateCompanyInput) (*models.Company, error)
	DeleteFn func(ctx context.Context, id int64) (*models.Company, error)
}

func (m *svcMock) Create(ctx context.Context, in service.CreateCompanyInput) (*models.Company, error) {
	if m.CreateFn == nil {
		return nil, errors.New("CreateFn not set")
	}
	return m.CreateFn(ctx, in)
}
func (m *svcMock) List(ctx context.Context, limit, skip int64) ([]models.Company, error) {
	if m.ListFn == nil {
		return nil, errors.New("ListFn not set")
	}
	return m.ListFn(ctx, limit, skip)
}
func (m *svcMock) Get(ctx context.Context, id int64) (*models.Company, error) {
	if m.GetFn == nil {
		return nil, errors.New("GetFn not set")
	}
	return m.GetFn(ctx, id)
}
func (m *svcMock) Update(ctx context.Context, id int64, in service.UpdateCompanyInput) (*models.Company, error) {
	if m.UpdateFn == nil {
		return nil, errors.New("UpdateFn not set")
	}
	return m.UpdateFn(ctx, id, in)
}
func (m *svcMock) Delete(ctx context.Context, id int64) (*models.Company, error) {
	if m.DeleteFn == nil {
		return nil, errors.New("DeleteFn not set")
	}
	return m.DeleteFn(ctx, id)
}

package jsonfile

import (
	"context"
	"slices"

	"github.com/dtroode/marketmanager-server/internal/model"
)

var _ model.LicenseStore = (*LicenseRepository)(nil)

type LicenseRepository struct {
	licenses *collection[model.License]
}

func NewLicenseRepository(storage model.Storage) *LicenseRepository {
	return &LicenseRepository{
		licenses: newCollection[model.License](storage, LicensesObject),
	}
}

func (r *LicenseRepository) List(ctx context.Context) ([]model.License, error) {
	licenses, _, err := r.licenses.read(ctx)
	if err != nil {
		return nil, err
	}
	if licenses == nil {
		licenses = []model.License{}
	}

	return licenses, nil
}

func (r *LicenseRepository) GetByKey(ctx context.Context, key string) (model.License, error) {
	licenses, exists, err := r.licenses.read(ctx)
	if err != nil {
		return model.License{}, err
	}
	if !exists {
		return model.License{}, model.ErrStoreMissing
	}

	i := slices.IndexFunc(licenses, func(l model.License) bool { return l.LicenseKey == key })
	if i < 0 {
		return model.License{}, model.ErrNotFound
	}

	return licenses[i], nil
}

func (r *LicenseRepository) GetByID(ctx context.Context, id string) (model.License, error) {
	licenses, _, err := r.licenses.read(ctx)
	if err != nil {
		return model.License{}, err
	}

	i := slices.IndexFunc(licenses, func(l model.License) bool { return l.ID == id })
	if i < 0 {
		return model.License{}, model.ErrNotFound
	}

	return licenses[i], nil
}

func (r *LicenseRepository) Create(ctx context.Context, license model.License) error {
	return r.licenses.update(ctx, func(licenses []model.License, _ bool) ([]model.License, error) {
		if slices.ContainsFunc(licenses, func(l model.License) bool {
			return l.LicenseKey == license.LicenseKey || l.ID == license.ID
		}) {
			return nil, model.ErrConflict
		}
		return append(licenses, license), nil
	})
}

func (r *LicenseRepository) Update(ctx context.Context, license model.License) error {
	return r.licenses.update(ctx, func(licenses []model.License, _ bool) ([]model.License, error) {
		i := slices.IndexFunc(licenses, func(l model.License) bool { return l.ID == license.ID })
		if i < 0 {
			return nil, model.ErrNotFound
		}
		licenses[i] = license
		return licenses, nil
	})
}

func (r *LicenseRepository) Delete(ctx context.Context, id string) error {
	return r.licenses.update(ctx, func(licenses []model.License, _ bool) ([]model.License, error) {
		i := slices.IndexFunc(licenses, func(l model.License) bool { return l.ID == id })
		if i < 0 {
			return nil, model.ErrNotFound
		}
		return slices.Delete(licenses, i, i+1), nil
	})
}

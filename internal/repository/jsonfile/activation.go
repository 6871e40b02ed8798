package jsonfile

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sync"

	"github.com/dtroode/marketmanager-server/internal/model"
)

var _ model.ActivationStore = (*ActivationRepository)(nil)

// ActivationRepository keeps the per-installation activation marker as a single JSON object.
type ActivationRepository struct {
	mu      sync.Mutex
	storage model.Storage
}

func NewActivationRepository(storage model.Storage) *ActivationRepository {
	return &ActivationRepository{storage: storage}
}

func (r *ActivationRepository) Load(ctx context.Context) (model.Activation, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	rc, err := r.storage.Download(ctx, ActivationObject)
	if err != nil {
		if errors.Is(err, model.ErrNotFound) {
			return model.Activation{}, model.ErrNotFound
		}
		return model.Activation{}, fmt.Errorf("failed to read %s: %w", ActivationObject, err)
	}
	defer rc.Close()

	var a model.Activation
	if err := json.NewDecoder(rc).Decode(&a); err != nil {
		return model.Activation{}, fmt.Errorf("failed to decode %s: %w", ActivationObject, err)
	}

	return a, nil
}

func (r *ActivationRepository) Save(ctx context.Context, activation model.Activation) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	return writeJSON(ctx, r.storage, ActivationObject, activation)
}

func (r *ActivationRepository) Clear(ctx context.Context) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if err := r.storage.Delete(ctx, ActivationObject); err != nil && !errors.Is(err, model.ErrNotFound) {
		return fmt.Errorf("failed to delete %s: %w", ActivationObject, err)
	}

	return nil
}

package services

import (
	"context"
	"sync"

	"task-viewer/internal/domain"
	"task-viewer/internal/errors"
	"task-viewer/internal/logging"
	"task-viewer/internal/repository"
)

// overrideServiceImpl implements the OverrideService interface
type overrideServiceImpl struct {
	store  repository.Store
	mapper *domain.Mapper

	// serialises read-modify-write cycles from concurrent web requests
	mu sync.Mutex
}

// NewOverrideService creates a new OverrideService backed by store
func NewOverrideService(store repository.Store) OverrideService {
	return &overrideServiceImpl{
		store:  store,
		mapper: domain.NewMapper(),
	}
}

// Load reads the override map from the store
func (o *overrideServiceImpl) Load(ctx context.Context) (domain.Overrides, error) {
	stored, ok, err := o.store.Get(ctx, repository.KeyTaskOverrides)
	if err != nil {
		return nil, err
	}
	if !ok {
		return make(domain.Overrides), nil
	}
	return o.mapper.Overrides.FromStorage(stored), nil
}

// Set records completed for id and persists the whole map
func (o *overrideServiceImpl) Set(ctx context.Context, id int64, completed bool) (domain.Overrides, error) {
	if id <= 0 {
		return nil, errors.NewInvalidInputError("id", id, "task id must be positive")
	}

	o.mu.Lock()
	defer o.mu.Unlock()

	overrides, err := o.Load(ctx)
	if err != nil {
		return nil, err
	}
	overrides[id] = completed

	encoded, err := o.mapper.Overrides.ToStorage(overrides)
	if err != nil {
		return nil, errors.WrapError(err, errors.ErrorTypeDatabase, "failed to encode overrides")
	}
	if err := o.store.Set(ctx, repository.KeyTaskOverrides, encoded); err != nil {
		return nil, err
	}

	logging.Debugf("override task %d completed=%t (%d overrides)\n", id, completed, len(overrides))
	return overrides, nil
}

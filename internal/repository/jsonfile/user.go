package jsonfile

import (
	"context"
	"fmt"
	"slices"

	"github.com/dtroode/marketmanager-server/internal/model"
)

var _ model.UserStore = (*UserRepository)(nil)

// SeedFunc builds the record written when the users document does not exist yet.
type SeedFunc func() (model.User, error)

type UserRepository struct {
	users *collection[model.User]
	seed  SeedFunc
}

// UserOption configures a UserRepository.
type UserOption func(*UserRepository)

// WithSeed bootstraps a missing users document with the record returned by seed.
func WithSeed(seed SeedFunc) UserOption {
	return func(r *UserRepository) {
		r.seed = seed
	}
}

func NewUserRepository(storage model.Storage, opts ...UserOption) *UserRepository {
	r := &UserRepository{
		users: newCollection[model.User](storage, UsersObject),
	}
	for _, opt := range opts {
		opt(r)
	}

	return r
}

// all returns the users, writing the seed record first when the document is missing.
// The caller must hold the collection lock.
func (r *UserRepository) all(ctx context.Context) ([]model.User, error) {
	users, exists, err := r.users.load(ctx)
	if err != nil {
		return nil, err
	}
	if exists || r.seed == nil {
		return users, nil
	}

	admin, err := r.seed()
	if err != nil {
		return nil, fmt.Errorf("failed to build default user: %w", err)
	}
	users = []model.User{admin}
	if err := r.users.save(ctx, users); err != nil {
		return nil, err
	}

	return users, nil
}

func (r *UserRepository) mutate(ctx context.Context, fn func([]model.User) ([]model.User, error)) error {
	r.users.mu.Lock()
	defer r.users.mu.Unlock()

	users, err := r.all(ctx)
	if err != nil {
		return err
	}
	users, err = fn(users)
	if err != nil {
		return err
	}

	return r.users.save(ctx, users)
}

func (r *UserRepository) List(ctx context.Context) ([]model.User, error) {
	r.users.mu.Lock()
	defer r.users.mu.Unlock()

	return r.all(ctx)
}

func (r *UserRepository) GetByID(ctx context.Context, id string) (model.User, error) {
	users, err := r.List(ctx)
	if err != nil {
		return model.User{}, err
	}

	i := slices.IndexFunc(users, func(u model.User) bool { return u.ID == id })
	if i < 0 {
		return model.User{}, model.ErrNotFound
	}

	return users[i], nil
}

func (r *UserRepository) Create(ctx context.Context, user model.User) error {
	return r.mutate(ctx, func(users []model.User) ([]model.User, error) {
		if err := checkUnique(users, user); err != nil {
			return nil, err
		}
		return append(users, user), nil
	})
}

func (r *UserRepository) Update(ctx context.Context, user model.User) error {
	return r.mutate(ctx, func(users []model.User) ([]model.User, error) {
		i := slices.IndexFunc(users, func(u model.User) bool { return u.ID == user.ID })
		if i < 0 {
			return nil, model.ErrNotFound
		}
		if err := checkUnique(users, user); err != nil {
			return nil, err
		}
		users[i] = user
		return users, nil
	})
}

func (r *UserRepository) Delete(ctx context.Context, id string) error {
	return r.mutate(ctx, func(users []model.User) ([]model.User, error) {
		i := slices.IndexFunc(users, func(u model.User) bool { return u.ID == id })
		if i < 0 {
			return nil, model.ErrNotFound
		}
		return slices.Delete(users, i, i+1), nil
	})
}

func (r *UserRepository) ReplaceAdmins(ctx context.Context, admin model.User) error {
	return r.mutate(ctx, func(users []model.User) ([]model.User, error) {
		users = slices.DeleteFunc(users, func(u model.User) bool { return u.Role == model.RoleAdmin })
		if err := checkUnique(users, admin); err != nil {
			return nil, err
		}
		return append([]model.User{admin}, users...), nil
	})
}

// checkUnique rejects user when a different record holds its username or email.
func checkUnique(users []model.User, user model.User) error {
	if slices.ContainsFunc(users, func(u model.User) bool { return u.ID != user.ID && u.Username == user.Username }) {
		return model.ErrUsernameTaken
	}
	if slices.ContainsFunc(users, func(u model.User) bool { return u.ID != user.ID && u.Email == user.Email }) {
		return model.ErrEmailTaken
	}
	return nil
}

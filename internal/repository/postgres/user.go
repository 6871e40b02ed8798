package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/dtroode/marketmanager-server/internal/model"
)

var _ model.UserStore = (*UserRepository)(nil)

const userColumns = `id, username, email, full_name, role, is_active, password_hash, password_salt, created_at, last_login, updated_at`

type UserRepository struct {
	db *Connection
}

func NewUserRepository(db *Connection) *UserRepository {
	return &UserRepository{
		db: db,
	}
}

func scanUser(row pgx.Row) (model.User, error) {
	var user model.User
	err := row.Scan(
		&user.ID, &user.Username, &user.Email, &user.FullName, &user.Role, &user.IsActive,
		&user.PasswordHash, &user.PasswordSalt, &user.CreatedAt, &user.LastLogin, &user.UpdatedAt,
	)
	return user, err
}

// userConflict maps a unique violation on users to the matching sentinel.
func userConflict(err error) error {
	constraint, ok := uniqueViolation(err)
	if !ok {
		return nil
	}
	switch constraint {
	case "users_username_key":
		return model.ErrUsernameTaken
	case "users_email_key":
		return model.ErrEmailTaken
	default:
		return model.ErrConflict
	}
}

func (r *UserRepository) List(ctx context.Context) ([]model.User, error) {
	rows, err := r.db.Query(ctx, `SELECT `+userColumns+` FROM users ORDER BY position`)
	if err != nil {
		return nil, fmt.Errorf("failed to list users: %w", err)
	}
	defer rows.Close()

	users := make([]model.User, 0)
	for rows.Next() {
		user, err := scanUser(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan user: %w", err)
		}
		users = append(users, user)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to list users: %w", err)
	}

	return users, nil
}

func (r *UserRepository) GetByID(ctx context.Context, id string) (model.User, error) {
	user, err := scanUser(r.db.QueryRow(ctx, `SELECT `+userColumns+` FROM users WHERE id = $1`, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return model.User{}, model.ErrNotFound
		}
		return model.User{}, fmt.Errorf("failed to get user by id: %w", err)
	}

	return user, nil
}

func (r *UserRepository) Create(ctx context.Context, user model.User) error {
	query := `INSERT INTO users (` + userColumns + `)
			  VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)`

	_, err := r.db.Exec(ctx, query,
		user.ID, user.Username, user.Email, user.FullName, user.Role, user.IsActive,
		user.PasswordHash, user.PasswordSalt, user.CreatedAt, user.LastLogin, user.UpdatedAt,
	)
	if conflict := userConflict(err); conflict != nil {
		return conflict
	}
	if err != nil {
		return fmt.Errorf("failed to create user: %w", err)
	}

	return nil
}

func (r *UserRepository) Update(ctx context.Context, user model.User) error {
	query := `UPDATE users
			  SET username = $2, email = $3, full_name = $4, role = $5, is_active = $6,
			      password_hash = $7, password_salt = $8, last_login = $9, updated_at = $10
			  WHERE id = $1`

	cmd, err := r.db.Exec(ctx, query,
		user.ID, user.Username, user.Email, user.FullName, user.Role, user.IsActive,
		user.PasswordHash, user.PasswordSalt, user.LastLogin, user.UpdatedAt,
	)
	if conflict := userConflict(err); conflict != nil {
		return conflict
	}
	if err != nil {
		return fmt.Errorf("failed to update user: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return model.ErrNotFound
	}

	return nil
}

func (r *UserRepository) Delete(ctx context.Context, id string) error {
	cmd, err := r.db.Exec(ctx, `DELETE FROM users WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete user: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return model.ErrNotFound
	}

	return nil
}

// ReplaceAdmins deletes every admin and inserts admin ahead of the remaining users.
func (r *UserRepository) ReplaceAdmins(ctx context.Context, admin model.User) error {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer func() {
		_ = tx.Rollback(ctx)
	}()

	if _, err := tx.Exec(ctx, `DELETE FROM users WHERE role = $1`, model.RoleAdmin); err != nil {
		return fmt.Errorf("failed to delete admins: %w", err)
	}

	query := `INSERT INTO users (position, ` + userColumns + `)
			  VALUES ((SELECT COALESCE(MIN(position), 1) - 1 FROM users), $1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)`
	_, err = tx.Exec(ctx, query,
		admin.ID, admin.Username, admin.Email, admin.FullName, admin.Role, admin.IsActive,
		admin.PasswordHash, admin.PasswordSalt, admin.CreatedAt, admin.LastLogin, admin.UpdatedAt,
	)
	if conflict := userConflict(err); conflict != nil {
		return conflict
	}
	if err != nil {
		return fmt.Errorf("failed to insert admin: %w", err)
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}

	return nil
}

package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/dtroode/marketmanager-server/internal/model"
)

var _ model.LicenseStore = (*LicenseRepository)(nil)

const licenseColumns = `id, license_key, customer_name, customer_email, created_at, expires_at,
	duration_days, is_active, activated_at, activated_by, updated_at`

type LicenseRepository struct {
	db *Connection
}

func NewLicenseRepository(db *Connection) *LicenseRepository {
	return &LicenseRepository{
		db: db,
	}
}

func scanLicense(row pgx.Row) (model.License, error) {
	var l model.License
	err := row.Scan(
		&l.ID, &l.LicenseKey, &l.CustomerName, &l.CustomerEmail, &l.CreatedAt, &l.ExpiresAt,
		&l.DurationDays, &l.IsActive, &l.ActivatedAt, &l.ActivatedBy, &l.UpdatedAt,
	)
	return l, err
}

func (r *LicenseRepository) List(ctx context.Context) ([]model.License, error) {
	rows, err := r.db.Query(ctx, `SELECT `+licenseColumns+` FROM licenses ORDER BY position`)
	if err != nil {
		return nil, fmt.Errorf("failed to list licenses: %w", err)
	}
	defer rows.Close()

	licenses := make([]model.License, 0)
	for rows.Next() {
		l, err := scanLicense(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan license: %w", err)
		}
		licenses = append(licenses, l)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to list licenses: %w", err)
	}

	return licenses, nil
}

// GetByKey never reports model.ErrStoreMissing: the table exists once migrations ran.
func (r *LicenseRepository) GetByKey(ctx context.Context, key string) (model.License, error) {
	return r.getOne(ctx, `SELECT `+licenseColumns+` FROM licenses WHERE license_key = $1`, key)
}

func (r *LicenseRepository) GetByID(ctx context.Context, id string) (model.License, error) {
	return r.getOne(ctx, `SELECT `+licenseColumns+` FROM licenses WHERE id = $1`, id)
}

func (r *LicenseRepository) getOne(ctx context.Context, query string, arg string) (model.License, error) {
	l, err := scanLicense(r.db.QueryRow(ctx, query, arg))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return model.License{}, model.ErrNotFound
		}
		return model.License{}, fmt.Errorf("failed to get license: %w", err)
	}

	return l, nil
}

func (r *LicenseRepository) Create(ctx context.Context, l model.License) error {
	query := `INSERT INTO licenses (` + licenseColumns + `)
			  VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)`

	_, err := r.db.Exec(ctx, query,
		l.ID, l.LicenseKey, l.CustomerName, l.CustomerEmail, l.CreatedAt, l.ExpiresAt,
		l.DurationDays, l.IsActive, l.ActivatedAt, l.ActivatedBy, l.UpdatedAt,
	)
	if _, ok := uniqueViolation(err); ok {
		return model.ErrConflict
	}
	if err != nil {
		return fmt.Errorf("failed to create license: %w", err)
	}

	return nil
}

func (r *LicenseRepository) Update(ctx context.Context, l model.License) error {
	query := `UPDATE licenses
			  SET customer_name = $2, customer_email = $3, expires_at = $4, duration_days = $5,
			      is_active = $6, activated_at = $7, activated_by = $8, updated_at = $9
			  WHERE id = $1`

	cmd, err := r.db.Exec(ctx, query,
		l.ID, l.CustomerName, l.CustomerEmail, l.ExpiresAt, l.DurationDays,
		l.IsActive, l.ActivatedAt, l.ActivatedBy, l.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to update license: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return model.ErrNotFound
	}

	return nil
}

func (r *LicenseRepository) Delete(ctx context.Context, id string) error {
	cmd, err := r.db.Exec(ctx, `DELETE FROM licenses WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete license: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return model.ErrNotFound
	}

	return nil
}

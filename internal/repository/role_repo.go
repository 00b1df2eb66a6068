package repository

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"amara-match/internal/domain"
)

// RoleRepository define el contrato de persistencia para roles personalizados.
// Los roles se crean una sola vez y son solo lectura para el matching.
type RoleRepository interface {
	Create(ctx context.Context, role domain.CustomRole) error
	GetByID(ctx context.Context, id string) (domain.CustomRole, error)
	List(ctx context.Context) ([]domain.CustomRole, error)
}

// PgRoleRepository implementa RoleRepository usando pgxpool.
type PgRoleRepository struct {
	pool *pgxpool.Pool
}

func NewPgRoleRepository(pool *pgxpool.Pool) *PgRoleRepository {
	return &PgRoleRepository{pool: pool}
}

func (r *PgRoleRepository) Create(ctx context.Context, role domain.CustomRole) error {
	const query = `
		INSERT INTO custom_roles (
			id, title, description, trait_weights, ideal_ranges,
			culture_preference, minimum_cognitive, is_ai_generated, created_at
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
	`

	weights, err := json.Marshal(role.TraitWeights)
	if err != nil {
		return fmt.Errorf("marshal trait weights: %w", err)
	}
	ranges, err := json.Marshal(role.IdealRanges)
	if err != nil {
		return fmt.Errorf("marshal ideal ranges: %w", err)
	}

	var description interface{}
	if role.Description != "" {
		description = role.Description
	}

	_, err = r.pool.Exec(ctx, query,
		role.ID,
		role.Title,
		description,
		weights,
		ranges,
		role.CulturePreference,
		role.MinimumCognitive,
		role.IsAIGenerated,
		role.CreatedAt,
	)
	return err
}

func (r *PgRoleRepository) GetByID(ctx context.Context, id string) (domain.CustomRole, error) {
	const query = `
		SELECT id, title, description, trait_weights, ideal_ranges,
		       culture_preference, minimum_cognitive, is_ai_generated, created_at
		FROM custom_roles
		WHERE id = $1
	`
	return scanRole(r.pool.QueryRow(ctx, query, id))
}

func (r *PgRoleRepository) List(ctx context.Context) ([]domain.CustomRole, error) {
	const query = `
		SELECT id, title, description, trait_weights, ideal_ranges,
		       culture_preference, minimum_cognitive, is_ai_generated, created_at
		FROM custom_roles
		ORDER BY created_at DESC
	`

	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var roles []domain.CustomRole
	for rows.Next() {
		role, err := scanRole(rows)
		if err != nil {
			return nil, err
		}
		roles = append(roles, role)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return roles, nil
}

func scanRole(row pgx.Row) (domain.CustomRole, error) {
	var role domain.CustomRole
	var description sql.NullString
	var weights, ranges []byte

	if err := row.Scan(
		&role.ID,
		&role.Title,
		&description,
		&weights,
		&ranges,
		&role.CulturePreference,
		&role.MinimumCognitive,
		&role.IsAIGenerated,
		&role.CreatedAt,
	); err != nil {
		return domain.CustomRole{}, err
	}
	if description.Valid {
		role.Description = description.String
	}
	if err := json.Unmarshal(weights, &role.TraitWeights); err != nil {
		return domain.CustomRole{}, fmt.Errorf("unmarshal trait weights: %w", err)
	}
	if err := json.Unmarshal(ranges, &role.IdealRanges); err != nil {
		return domain.CustomRole{}, fmt.Errorf("unmarshal ideal ranges: %w", err)
	}
	return role, nil
}

package repository

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	pgvector "github.com/pgvector/pgvector-go"

	"amara-match/internal/domain"
)

// AssessmentRepository define el contrato de persistencia para resultados de
// evaluacion. El resultado es el registro autoritativo de los insumos (rasgos);
// los role fits guardados son solo una foto informativa.
type AssessmentRepository interface {
	Create(ctx context.Context, result domain.AssessmentResult) error
	GetByID(ctx context.Context, id string) (domain.AssessmentResult, error)
	List(ctx context.Context) ([]domain.AssessmentResult, error)
	FindSimilar(ctx context.Context, traitVec pgvector.Vector, k int, excludeID string) ([]domain.AssessmentResult, error)
}

// PgAssessmentRepository implementa AssessmentRepository usando pgxpool.
type PgAssessmentRepository struct {
	pool *pgxpool.Pool
}

func NewPgAssessmentRepository(pool *pgxpool.Pool) *PgAssessmentRepository {
	return &PgAssessmentRepository{pool: pool}
}

const assessmentColumns = `
	id, created_at, ext, con, emo, risk, dec, mot, cog,
	work_values, work_style, composite_insights, role_fits,
	strengths, risk_areas, consistency_score, avg_response_time
`

func (r *PgAssessmentRepository) Create(ctx context.Context, result domain.AssessmentResult) error {
	const query = `
		INSERT INTO assessment_results (
			id, created_at, ext, con, emo, risk, dec, mot, cog,
			work_values, work_style, composite_insights, role_fits,
			strengths, risk_areas, consistency_score, avg_response_time, trait_vec
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18)
	`

	workValues, err := json.Marshal(result.WorkValues)
	if err != nil {
		return fmt.Errorf("marshal work values: %w", err)
	}
	workStyle, err := json.Marshal(result.WorkStyle)
	if err != nil {
		return fmt.Errorf("marshal work style: %w", err)
	}
	composites, err := json.Marshal(result.CompositeInsights)
	if err != nil {
		return fmt.Errorf("marshal composite insights: %w", err)
	}
	roleFits, err := json.Marshal(result.RoleFits)
	if err != nil {
		return fmt.Errorf("marshal role fits: %w", err)
	}

	_, err = r.pool.Exec(ctx, query,
		result.ID,
		result.CreatedAt,
		result.Traits.EXT,
		result.Traits.CON,
		result.Traits.EMO,
		result.Traits.RISK,
		result.Traits.DEC,
		result.Traits.MOT,
		result.Traits.COG,
		workValues,
		workStyle,
		composites,
		roleFits,
		result.Strengths,
		result.RiskAreas,
		result.QualityMetrics.Consistency,
		result.QualityMetrics.AvgResponseTime,
		pgvector.NewVector(result.Traits.Vector()),
	)
	return err
}

func (r *PgAssessmentRepository) GetByID(ctx context.Context, id string) (domain.AssessmentResult, error) {
	query := `SELECT ` + assessmentColumns + ` FROM assessment_results WHERE id = $1`
	row := r.pool.QueryRow(ctx, query, id)
	return scanAssessment(row)
}

func (r *PgAssessmentRepository) List(ctx context.Context) ([]domain.AssessmentResult, error) {
	query := `SELECT ` + assessmentColumns + ` FROM assessment_results ORDER BY created_at DESC`

	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return collectAssessments(rows)
}

// FindSimilar devuelve los k resultados con el vector de rasgos mas cercano
// (distancia L2), excluyendo al propio candidato.
func (r *PgAssessmentRepository) FindSimilar(ctx context.Context, traitVec pgvector.Vector, k int, excludeID string) ([]domain.AssessmentResult, error) {
	query := `
		SELECT ` + assessmentColumns + `
		FROM assessment_results
		WHERE id <> $2
		ORDER BY trait_vec <-> $1
		LIMIT $3
	`

	rows, err := r.pool.Query(ctx, query, traitVec, excludeID, k)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return collectAssessments(rows)
}

func collectAssessments(rows pgx.Rows) ([]domain.AssessmentResult, error) {
	var results []domain.AssessmentResult
	for rows.Next() {
		result, err := scanAssessment(rows)
		if err != nil {
			return nil, err
		}
		results = append(results, result)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return results, nil
}

func scanAssessment(row pgx.Row) (domain.AssessmentResult, error) {
	var result domain.AssessmentResult
	var workValues, workStyle, composites, roleFits []byte

	if err := row.Scan(
		&result.ID,
		&result.CreatedAt,
		&result.Traits.EXT,
		&result.Traits.CON,
		&result.Traits.EMO,
		&result.Traits.RISK,
		&result.Traits.DEC,
		&result.Traits.MOT,
		&result.Traits.COG,
		&workValues,
		&workStyle,
		&composites,
		&roleFits,
		&result.Strengths,
		&result.RiskAreas,
		&result.QualityMetrics.Consistency,
		&result.QualityMetrics.AvgResponseTime,
	); err != nil {
		return domain.AssessmentResult{}, err
	}

	if err := json.Unmarshal(workValues, &result.WorkValues); err != nil {
		return domain.AssessmentResult{}, fmt.Errorf("unmarshal work values: %w", err)
	}
	if err := json.Unmarshal(workStyle, &result.WorkStyle); err != nil {
		return domain.AssessmentResult{}, fmt.Errorf("unmarshal work style: %w", err)
	}
	if err := json.Unmarshal(composites, &result.CompositeInsights); err != nil {
		return domain.AssessmentResult{}, fmt.Errorf("unmarshal composite insights: %w", err)
	}
	if err := json.Unmarshal(roleFits, &result.RoleFits); err != nil {
		return domain.AssessmentResult{}, fmt.Errorf("unmarshal role fits: %w", err)
	}

	return result, nil
}

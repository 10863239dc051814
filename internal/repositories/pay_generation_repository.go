package repositories

import (
	"context"
	"fmt"

	"school-backend/internal/models"

	"github.com/jackc/pgx/v5/pgxpool"
)

type PayGenerationRepository struct {
	DB *pgxpool.Pool
}

func NewPayGenerationRepository(db *pgxpool.Pool) *PayGenerationRepository {
	return &PayGenerationRepository{DB: db}
}

func (r *PayGenerationRepository) Create(ctx context.Context, gen *models.GenerateTeacherPay) error {
	query := `
		INSERT INTO generate_teacher_pays (month)
		VALUES ($1)
		RETURNING id, created_at
	`

	err := r.DB.QueryRow(ctx, query, gen.Month).Scan(&gen.ID, &gen.CreatedAt)
	if err != nil {
		return fmt.Errorf("failed to create pay generation: %w", err)
	}
	return nil
}

func (r *PayGenerationRepository) GetByID(ctx context.Context, id int) (*models.GenerateTeacherPay, error) {
	query := `
		SELECT id, month, created_at
		FROM generate_teacher_pays
		WHERE id = $1
	`

	gen := &models.GenerateTeacherPay{}
	err := r.DB.QueryRow(ctx, query, id).Scan(&gen.ID, &gen.Month, &gen.CreatedAt)
	if err != nil {
		return nil, err
	}

	return gen, nil
}

func (r *PayGenerationRepository) List(ctx context.Context) ([]*models.GenerateTeacherPay, error) {
	query := `
		SELECT id, month, created_at
		FROM generate_teacher_pays
		ORDER BY month DESC, id DESC
	`

	rows, err := r.DB.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var gens []*models.GenerateTeacherPay
	for rows.Next() {
		gen := &models.GenerateTeacherPay{}
		if err := rows.Scan(&gen.ID, &gen.Month, &gen.CreatedAt); err != nil {
			return nil, err
		}
		gens = append(gens, gen)
	}

	return gens, nil
}

// Update edits the trigger record itself. It never regenerates pay records.
func (r *PayGenerationRepository) Update(ctx context.Context, gen *models.GenerateTeacherPay) error {
	result, err := r.DB.Exec(ctx, `UPDATE generate_teacher_pays SET month = $1 WHERE id = $2`, gen.Month, gen.ID)
	if err != nil {
		return fmt.Errorf("failed to update pay generation %d: %w", gen.ID, err)
	}
	if result.RowsAffected() == 0 {
		return fmt.Errorf("pay generation %d not found", gen.ID)
	}
	return nil
}

func (r *PayGenerationRepository) Delete(ctx context.Context, id int) error {
	result, err := r.DB.Exec(ctx, `DELETE FROM generate_teacher_pays WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete pay generation %d: %w", id, err)
	}
	if result.RowsAffected() == 0 {
		return fmt.Errorf("pay generation %d not found", id)
	}
	return nil
}

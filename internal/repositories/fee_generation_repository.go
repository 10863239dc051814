package repositories

import (
	"context"
	"fmt"

	"school-backend/internal/models"

	"github.com/jackc/pgx/v5/pgxpool"
)

type FeeGenerationRepository struct {
	DB *pgxpool.Pool
}

func NewFeeGenerationRepository(db *pgxpool.Pool) *FeeGenerationRepository {
	return &FeeGenerationRepository{DB: db}
}

func (r *FeeGenerationRepository) Create(ctx context.Context, gen *models.FeeGeneration) error {
	query := `
		INSERT INTO fee_generations (month, exam_fee, ac_charges, stationary_charges, lab_charges)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING serial, created_at
	`

	err := r.DB.QueryRow(ctx, query,
		gen.Month,
		gen.ExamFee,
		gen.ACCharges,
		gen.StationaryCharges,
		gen.LabCharges,
	).Scan(&gen.Serial, &gen.CreatedAt)

	if err != nil {
		return fmt.Errorf("failed to create fee generation: %w", err)
	}
	return nil
}

func (r *FeeGenerationRepository) GetBySerial(ctx context.Context, serial int) (*models.FeeGeneration, error) {
	query := `
		SELECT serial, month, exam_fee, ac_charges, stationary_charges, lab_charges, created_at
		FROM fee_generations
		WHERE serial = $1
	`

	gen := &models.FeeGeneration{}
	err := r.DB.QueryRow(ctx, query, serial).Scan(
		&gen.Serial,
		&gen.Month,
		&gen.ExamFee,
		&gen.ACCharges,
		&gen.StationaryCharges,
		&gen.LabCharges,
		&gen.CreatedAt,
	)
	if err != nil {
		return nil, err
	}

	return gen, nil
}

func (r *FeeGenerationRepository) List(ctx context.Context) ([]*models.FeeGeneration, error) {
	query := `
		SELECT serial, month, exam_fee, ac_charges, stationary_charges, lab_charges, created_at
		FROM fee_generations
		ORDER BY month DESC, serial DESC
	`

	rows, err := r.DB.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var gens []*models.FeeGeneration
	for rows.Next() {
		gen := &models.FeeGeneration{}
		err := rows.Scan(
			&gen.Serial,
			&gen.Month,
			&gen.ExamFee,
			&gen.ACCharges,
			&gen.StationaryCharges,
			&gen.LabCharges,
			&gen.CreatedAt,
		)
		if err != nil {
			return nil, err
		}
		gens = append(gens, gen)
	}

	return gens, nil
}

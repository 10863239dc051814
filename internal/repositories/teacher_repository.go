package repositories

import (
	"context"
	"fmt"

	"school-backend/internal/models"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type TeacherRepository struct {
	DB *pgxpool.Pool
}

func NewTeacherRepository(db *pgxpool.Pool) *TeacherRepository {
	return &TeacherRepository{DB: db}
}

const teacherColumns = `
	id, name, contact, cnic, qualification, pay, joining_date, enrolled, created_at, updated_at`

func scanTeacher(row pgx.Row) (*models.Teacher, error) {
	t := &models.Teacher{}
	err := row.Scan(
		&t.ID,
		&t.Name,
		&t.Contact,
		&t.CNIC,
		&t.Qualification,
		&t.Pay,
		&t.JoiningDate,
		&t.Enrolled,
		&t.CreatedAt,
		&t.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return t, nil
}

func (r *TeacherRepository) Create(ctx context.Context, teacher *models.Teacher) error {
	query := `
		INSERT INTO teachers (name, contact, cnic, qualification, pay, joining_date, enrolled)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id, created_at, updated_at
	`

	err := r.DB.QueryRow(ctx, query,
		teacher.Name,
		teacher.Contact,
		teacher.CNIC,
		teacher.Qualification,
		teacher.Pay,
		teacher.JoiningDate,
		teacher.Enrolled,
	).Scan(&teacher.ID, &teacher.CreatedAt, &teacher.UpdatedAt)

	if err != nil {
		return fmt.Errorf("failed to create teacher: %w", err)
	}
	return nil
}

func (r *TeacherRepository) GetByID(ctx context.Context, id int) (*models.Teacher, error) {
	query := `SELECT` + teacherColumns + `
		FROM teachers
		WHERE id = $1
	`
	return scanTeacher(r.DB.QueryRow(ctx, query, id))
}

func (r *TeacherRepository) List(ctx context.Context) ([]*models.Teacher, error) {
	query := `SELECT` + teacherColumns + `
		FROM teachers
		ORDER BY id
	`
	return r.queryTeachers(ctx, query)
}

// ListEnrolled returns the teachers a bulk pay generation targets.
func (r *TeacherRepository) ListEnrolled(ctx context.Context) ([]*models.Teacher, error) {
	query := `SELECT` + teacherColumns + `
		FROM teachers
		WHERE enrolled
		ORDER BY id
	`
	return r.queryTeachers(ctx, query)
}

func (r *TeacherRepository) queryTeachers(ctx context.Context, query string, args ...interface{}) ([]*models.Teacher, error) {
	rows, err := r.DB.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var teachers []*models.Teacher
	for rows.Next() {
		teacher, err := scanTeacher(rows)
		if err != nil {
			return nil, err
		}
		teachers = append(teachers, teacher)
	}

	return teachers, nil
}

func (r *TeacherRepository) Update(ctx context.Context, teacher *models.Teacher) error {
	query := `
		UPDATE teachers
		SET name = $1, contact = $2, cnic = $3, qualification = $4, pay = $5,
		    enrolled = $6, updated_at = NOW()
		WHERE id = $7
		RETURNING updated_at
	`

	err := r.DB.QueryRow(ctx, query,
		teacher.Name,
		teacher.Contact,
		teacher.CNIC,
		teacher.Qualification,
		teacher.Pay,
		teacher.Enrolled,
		teacher.ID,
	).Scan(&teacher.UpdatedAt)

	if err != nil {
		return fmt.Errorf("failed to update teacher %d: %w", teacher.ID, err)
	}
	return nil
}

func (r *TeacherRepository) Delete(ctx context.Context, id int) error {
	result, err := r.DB.Exec(ctx, `DELETE FROM teachers WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete teacher %d: %w", id, err)
	}
	if result.RowsAffected() == 0 {
		return fmt.Errorf("teacher %d not found", id)
	}
	return nil
}

package repositories

import (
	"context"
	"fmt"

	"school-backend/internal/models"
	"school-backend/internal/timeutil"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type StudentRepository struct {
	DB *pgxpool.Pool
}

func NewStudentRepository(db *pgxpool.Pool) *StudentRepository {
	return &StudentRepository{DB: db}
}

const studentColumns = `
	roll_no, name, grade, father_name, contact, dob, admission_date, address,
	tuition_fee, security_fee, admission_fee, pending_fee, enrolled, created_at, updated_at`

func scanStudent(row pgx.Row) (*models.Student, error) {
	s := &models.Student{}
	err := row.Scan(
		&s.RollNo,
		&s.Name,
		&s.Grade,
		&s.FatherName,
		&s.Contact,
		&s.DOB,
		&s.AdmissionDate,
		&s.Address,
		&s.TuitionFee,
		&s.SecurityFee,
		&s.AdmissionFee,
		&s.PendingFee,
		&s.Enrolled,
		&s.CreatedAt,
		&s.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return s, nil
}

func (r *StudentRepository) Create(ctx context.Context, student *models.Student) error {
	query := `
		INSERT INTO students (name, grade, father_name, contact, dob, admission_date, address,
		                      tuition_fee, security_fee, admission_fee, enrolled)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
		RETURNING roll_no, pending_fee, created_at, updated_at
	`

	err := r.DB.QueryRow(ctx, query,
		student.Name,
		student.Grade,
		student.FatherName,
		student.Contact,
		student.DOB,
		student.AdmissionDate,
		student.Address,
		student.TuitionFee,
		student.SecurityFee,
		student.AdmissionFee,
		student.Enrolled,
	).Scan(&student.RollNo, &student.PendingFee, &student.CreatedAt, &student.UpdatedAt)

	if err != nil {
		return fmt.Errorf("failed to create student: %w", err)
	}
	return nil
}

func (r *StudentRepository) GetByRollNo(ctx context.Context, rollNo int) (*models.Student, error) {
	query := `SELECT` + studentColumns + `
		FROM students
		WHERE roll_no = $1
	`
	return scanStudent(r.DB.QueryRow(ctx, query, rollNo))
}

func (r *StudentRepository) List(ctx context.Context) ([]*models.Student, error) {
	query := `SELECT` + studentColumns + `
		FROM students
		ORDER BY roll_no
	`
	return r.queryStudents(ctx, query)
}

// ListEnrolled returns the students a bulk fee generation targets.
func (r *StudentRepository) ListEnrolled(ctx context.Context) ([]*models.Student, error) {
	query := `SELECT` + studentColumns + `
		FROM students
		WHERE enrolled
		ORDER BY roll_no
	`
	return r.queryStudents(ctx, query)
}

func (r *StudentRepository) queryStudents(ctx context.Context, query string, args ...interface{}) ([]*models.Student, error) {
	rows, err := r.DB.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var students []*models.Student
	for rows.Next() {
		student, err := scanStudent(rows)
		if err != nil {
			return nil, err
		}
		students = append(students, student)
	}

	return students, nil
}

// Update writes the editable fields. pending_fee is deliberately excluded:
// only the fee engine maintains it.
func (r *StudentRepository) Update(ctx context.Context, student *models.Student) error {
	query := `
		UPDATE students
		SET name = $1, grade = $2, father_name = $3, contact = $4, dob = $5,
		    admission_date = $6, address = $7, tuition_fee = $8, security_fee = $9,
		    admission_fee = $10, enrolled = $11, updated_at = NOW()
		WHERE roll_no = $12
		RETURNING pending_fee, updated_at
	`

	err := r.DB.QueryRow(ctx, query,
		student.Name,
		student.Grade,
		student.FatherName,
		student.Contact,
		student.DOB,
		student.AdmissionDate,
		student.Address,
		student.TuitionFee,
		student.SecurityFee,
		student.AdmissionFee,
		student.Enrolled,
		student.RollNo,
	).Scan(&student.PendingFee, &student.UpdatedAt)

	if err != nil {
		return fmt.Errorf("failed to update student %d: %w", student.RollNo, err)
	}
	return nil
}

func (r *StudentRepository) Delete(ctx context.Context, rollNo int) error {
	result, err := r.DB.Exec(ctx, `DELETE FROM students WHERE roll_no = $1`, rollNo)
	if err != nil {
		return fmt.Errorf("failed to delete student %d: %w", rollNo, err)
	}
	if result.RowsAffected() == 0 {
		return fmt.Errorf("student %d not found", rollNo)
	}
	return nil
}

// Graduate archives a student into alumni and removes the student row in one
// transaction. The fee history goes with the student via ON DELETE CASCADE.
func (r *StudentRepository) Graduate(ctx context.Context, rollNo int) (*models.Alumni, error) {
	tx, err := r.DB.Begin(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback(ctx)

	query := `
		INSERT INTO alumni (roll_no, name, grade, father_name, contact, dob, admission_date, address, graduated_on)
		SELECT roll_no, name, grade, father_name, contact, dob, admission_date, address, $2
		FROM students
		WHERE roll_no = $1
		RETURNING roll_no, name, grade, father_name, contact, dob, admission_date, address, graduated_on
	`

	alumni := &models.Alumni{}
	err = tx.QueryRow(ctx, query, rollNo, timeutil.Today()).Scan(
		&alumni.RollNo,
		&alumni.Name,
		&alumni.Grade,
		&alumni.FatherName,
		&alumni.Contact,
		&alumni.DOB,
		&alumni.AdmissionDate,
		&alumni.Address,
		&alumni.GraduatedOn,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to archive student %d: %w", rollNo, err)
	}

	if _, err := tx.Exec(ctx, `DELETE FROM students WHERE roll_no = $1`, rollNo); err != nil {
		return nil, fmt.Errorf("failed to remove graduated student %d: %w", rollNo, err)
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, fmt.Errorf("failed to commit graduation: %w", err)
	}

	return alumni, nil
}

func (r *StudentRepository) ListAlumni(ctx context.Context) ([]*models.Alumni, error) {
	query := `
		SELECT roll_no, name, grade, father_name, contact, dob, admission_date, address, graduated_on
		FROM alumni
		ORDER BY graduated_on DESC, roll_no
	`

	rows, err := r.DB.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var alumni []*models.Alumni
	for rows.Next() {
		a := &models.Alumni{}
		err := rows.Scan(
			&a.RollNo,
			&a.Name,
			&a.Grade,
			&a.FatherName,
			&a.Contact,
			&a.DOB,
			&a.AdmissionDate,
			&a.Address,
			&a.GraduatedOn,
		)
		if err != nil {
			return nil, err
		}
		alumni = append(alumni, a)
	}

	return alumni, nil
}

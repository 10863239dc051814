package services

import (
	"context"
	"fmt"

	"school-backend/internal/cache"
	"school-backend/internal/models"
	"school-backend/internal/repositories"
	"school-backend/internal/timeutil"
)

type TeacherService struct {
	Repo    *repositories.TeacherRepository
	PayRepo *repositories.TeacherPayRepository
}

func NewTeacherService(repo *repositories.TeacherRepository, payRepo *repositories.TeacherPayRepository) *TeacherService {
	return &TeacherService{
		Repo:    repo,
		PayRepo: payRepo,
	}
}

// HireTeacher creates a teacher and their joining-month pay record at the
// agreed rate, not yet disbursed.
func (s *TeacherService) HireTeacher(ctx context.Context, req *models.CreateTeacherRequest) (*models.Teacher, error) {
	teacher := &models.Teacher{
		Name:          req.Name,
		Contact:       req.Contact,
		CNIC:          req.CNIC,
		Qualification: req.Qualification,
		Pay:           req.Pay,
		Enrolled:      true,
	}

	if req.JoiningDate != "" {
		jd, err := timeutil.ParseDate(req.JoiningDate)
		if err != nil {
			return nil, fmt.Errorf("invalid joining_date: %w", err)
		}
		teacher.JoiningDate = &jd
	}

	if err := s.Repo.Create(ctx, teacher); err != nil {
		return nil, err
	}

	pay := &models.TeacherPay{
		TeacherID: teacher.ID,
		Month:     timeutil.TruncateMonth(timeutil.Now()),
		Pay:       teacher.Pay,
	}
	if err := s.PayRepo.Create(ctx, pay); err != nil {
		return nil, fmt.Errorf("teacher %d hired but first pay failed: %w", teacher.ID, err)
	}

	cache.InvalidatePayrollCaches(ctx)
	return teacher, nil
}

func (s *TeacherService) GetTeacher(ctx context.Context, id int) (*models.Teacher, error) {
	return s.Repo.GetByID(ctx, id)
}

func (s *TeacherService) ListTeachers(ctx context.Context) ([]*models.Teacher, error) {
	return s.Repo.List(ctx)
}

func (s *TeacherService) UpdateTeacher(ctx context.Context, id int, req *models.UpdateTeacherRequest) (*models.Teacher, error) {
	teacher, err := s.Repo.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("teacher %d not found", id)
	}

	teacher.Name = req.Name
	teacher.Contact = req.Contact
	teacher.CNIC = req.CNIC
	teacher.Qualification = req.Qualification
	teacher.Pay = req.Pay
	teacher.Enrolled = req.Enrolled

	if err := s.Repo.Update(ctx, teacher); err != nil {
		return nil, err
	}
	return teacher, nil
}

func (s *TeacherService) DeleteTeacher(ctx context.Context, id int) error {
	if err := s.Repo.Delete(ctx, id); err != nil {
		return err
	}
	cache.InvalidatePayrollCaches(ctx)
	return nil
}

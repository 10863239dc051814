package services

import (
	"context"
	"fmt"
	"log"

	"school-backend/internal/cache"
	"school-backend/internal/metrics"
	"school-backend/internal/models"
	"school-backend/internal/repositories"
	"school-backend/internal/timeutil"
)

type StudentService struct {
	Repo    *repositories.StudentRepository
	FeeRepo *repositories.StudentFeeRepository
}

func NewStudentService(repo *repositories.StudentRepository, feeRepo *repositories.StudentFeeRepository) *StudentService {
	return &StudentService{
		Repo:    repo,
		FeeRepo: feeRepo,
	}
}

// AdmitStudent creates a student and their admission-month fee record. The
// first record carries the tuition, security and admission amounts from the
// student profile with nothing paid yet.
func (s *StudentService) AdmitStudent(ctx context.Context, req *models.CreateStudentRequest) (*models.Student, error) {
	student := &models.Student{
		Name:         req.Name,
		Grade:        req.Grade,
		FatherName:   req.FatherName,
		Contact:      req.Contact,
		Address:      req.Address,
		TuitionFee:   req.TuitionFee,
		SecurityFee:  req.SecurityFee,
		AdmissionFee: req.AdmissionFee,
		Enrolled:     true,
	}

	if req.DOB != "" {
		dob, err := timeutil.ParseDate(req.DOB)
		if err != nil {
			return nil, fmt.Errorf("invalid dob: %w", err)
		}
		student.DOB = &dob
	}
	if req.AdmissionDate != "" {
		ad, err := timeutil.ParseDate(req.AdmissionDate)
		if err != nil {
			return nil, fmt.Errorf("invalid admission_date: %w", err)
		}
		student.AdmissionDate = &ad
	}

	if err := s.Repo.Create(ctx, student); err != nil {
		return nil, err
	}

	fee := &models.StudentFee{
		StudentRollNo: student.RollNo,
		Month:         timeutil.TruncateMonth(timeutil.Now()),
		TuitionFee:    student.TuitionFee,
		SecurityFee:   student.SecurityFee,
		AdmissionFee:  student.AdmissionFee,
	}
	fee.Recalculate()

	if err := s.FeeRepo.Create(ctx, fee); err != nil {
		return nil, fmt.Errorf("student %d admitted but first fee failed: %w", student.RollNo, err)
	}

	metrics.FeeRecordsCreated.Inc()
	cache.InvalidateFeeCaches(ctx)
	return s.Repo.GetByRollNo(ctx, student.RollNo)
}

func (s *StudentService) GetStudent(ctx context.Context, rollNo int) (*models.Student, error) {
	return s.Repo.GetByRollNo(ctx, rollNo)
}

func (s *StudentService) ListStudents(ctx context.Context) ([]*models.Student, error) {
	return s.Repo.List(ctx)
}

// buildRefundFee builds the security deposit refund record written when a
// student disenrolls. The refund is modelled as a negative security charge
// matched by a negative payment, so the record balances to zero and the
// student's cached pending fee resets.
func buildRefundFee(student *models.Student) *models.StudentFee {
	fee := &models.StudentFee{
		StudentRollNo: student.RollNo,
		Month:         timeutil.TruncateMonth(timeutil.Now()),
		SecurityFee:   -student.SecurityFee,
		AmountPaid:    -student.SecurityFee,
		Description:   "Security refund",
	}
	fee.Recalculate()
	return fee
}

// UpdateStudent edits a student profile. Flipping enrolled from true to
// false refunds the security deposit exactly once; re-submitting an update
// for an already disenrolled student never writes a second refund.
func (s *StudentService) UpdateStudent(ctx context.Context, rollNo int, req *models.UpdateStudentRequest) (*models.Student, error) {
	student, err := s.Repo.GetByRollNo(ctx, rollNo)
	if err != nil {
		return nil, fmt.Errorf("student %d not found", rollNo)
	}

	disenrolling := student.Enrolled && !req.Enrolled

	student.Name = req.Name
	student.Grade = req.Grade
	student.FatherName = req.FatherName
	student.Contact = req.Contact
	student.Address = req.Address
	student.TuitionFee = req.TuitionFee
	student.SecurityFee = req.SecurityFee
	student.AdmissionFee = req.AdmissionFee
	student.Enrolled = req.Enrolled

	if req.DOB != "" {
		dob, err := timeutil.ParseDate(req.DOB)
		if err != nil {
			return nil, fmt.Errorf("invalid dob: %w", err)
		}
		student.DOB = &dob
	}
	if req.AdmissionDate != "" {
		ad, err := timeutil.ParseDate(req.AdmissionDate)
		if err != nil {
			return nil, fmt.Errorf("invalid admission_date: %w", err)
		}
		student.AdmissionDate = &ad
	}

	if err := s.Repo.Update(ctx, student); err != nil {
		return nil, err
	}

	if disenrolling && student.SecurityFee != 0 {
		refund := buildRefundFee(student)
		if err := s.FeeRepo.Create(ctx, refund); err != nil {
			return nil, fmt.Errorf("student %d disenrolled but refund failed: %w", rollNo, err)
		}
		log.Printf("[Students] Security refund of %.2f recorded for student %d", student.SecurityFee, rollNo)
		cache.InvalidateFeeCaches(ctx)
	}

	return s.Repo.GetByRollNo(ctx, rollNo)
}

func (s *StudentService) DeleteStudent(ctx context.Context, rollNo int) error {
	if err := s.Repo.Delete(ctx, rollNo); err != nil {
		return err
	}
	cache.InvalidateFeeCaches(ctx)
	return nil
}

// GraduateStudent archives a student into alumni. The student row and fee
// history are removed.
func (s *StudentService) GraduateStudent(ctx context.Context, rollNo int) (*models.Alumni, error) {
	alumni, err := s.Repo.Graduate(ctx, rollNo)
	if err != nil {
		return nil, err
	}
	log.Printf("[Students] Student %d graduated to alumni", rollNo)
	cache.InvalidateFeeCaches(ctx)
	return alumni, nil
}

func (s *StudentService) ListAlumni(ctx context.Context) ([]*models.Alumni, error) {
	return s.Repo.ListAlumni(ctx)
}

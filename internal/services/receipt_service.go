package services

import (
	"bytes"
	"context"
	"fmt"

	"school-backend/internal/models"
	"school-backend/internal/repositories"
	"school-backend/internal/timeutil"

	"github.com/jung-kurt/gofpdf/v2"
)

// ReceiptService generates printable PDFs for fee records
type ReceiptService struct {
	SchoolName  string
	FeeRepo     *repositories.StudentFeeRepository
	StudentRepo *repositories.StudentRepository
}

func NewReceiptService(schoolName string, feeRepo *repositories.StudentFeeRepository, studentRepo *repositories.StudentRepository) *ReceiptService {
	return &ReceiptService{
		SchoolName:  schoolName,
		FeeRepo:     feeRepo,
		StudentRepo: studentRepo,
	}
}

func chargeRows(fee *models.StudentFee) [][2]string {
	rows := [][2]string{}
	add := func(label string, amount float64) {
		if amount != 0 {
			rows = append(rows, [2]string{label, fmt.Sprintf("%.2f", amount)})
		}
	}
	add("Tuition Fee", fee.TuitionFee)
	add("Exam Fee", fee.ExamFee)
	add("AC Charges", fee.ACCharges)
	add("Stationary Charges", fee.StationaryCharges)
	add("Admission Fee", fee.AdmissionFee)
	add("Lab Charges", fee.LabCharges)
	add("Security Fee", fee.SecurityFee)
	add("Miscellaneous", fee.Misc)
	add("Previous Balance", fee.Pending)
	return rows
}

// GenerateFeeReceipt builds a one-page receipt for a fee record
func (s *ReceiptService) GenerateFeeReceipt(ctx context.Context, feeID int) ([]byte, error) {
	fee, err := s.FeeRepo.GetByID(ctx, feeID)
	if err != nil {
		return nil, fmt.Errorf("fee %d not found", feeID)
	}

	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetMargins(10, 10, 10)
	pdf.AddPage()

	// Header
	pdf.SetFont("Arial", "B", 16)
	pdf.CellFormat(190, 10, s.SchoolName, "", 1, "C", false, 0, "")
	pdf.SetFont("Arial", "B", 12)
	pdf.CellFormat(190, 8, fmt.Sprintf("Fee Receipt - %s", fee.Month.Format(timeutil.MonthLayout)), "", 1, "C", false, 0, "")
	pdf.SetFont("Arial", "", 10)
	pdf.CellFormat(190, 6, fmt.Sprintf("Generated: %s", timeutil.Now().Format("02-Jan-2006 03:04 PM")), "", 1, "C", false, 0, "")
	pdf.Ln(5)

	// Student Info Box
	pdf.SetFillColor(240, 240, 240)
	pdf.SetFont("Arial", "B", 12)
	pdf.CellFormat(190, 8, "Student Information", "1", 1, "L", true, 0, "")

	pdf.SetFont("Arial", "", 11)
	pdf.CellFormat(95, 7, fmt.Sprintf("Name: %s", fee.StudentName), "LB", 0, "L", false, 0, "")
	pdf.CellFormat(95, 7, fmt.Sprintf("Roll No: %d", fee.StudentRollNo), "RB", 1, "L", false, 0, "")
	pdf.CellFormat(95, 7, fmt.Sprintf("Grade: %d", fee.StudentGrade), "LB", 0, "L", false, 0, "")
	pdf.CellFormat(95, 7, fmt.Sprintf("Receipt No: %d", fee.ID), "RB", 1, "L", false, 0, "")
	pdf.Ln(5)

	// Charges Table
	pdf.SetFont("Arial", "B", 12)
	pdf.CellFormat(190, 8, "Charges", "1", 1, "L", true, 0, "")

	pdf.SetFont("Arial", "", 11)
	for _, row := range chargeRows(fee) {
		pdf.CellFormat(120, 7, row[0], "LB", 0, "L", false, 0, "")
		pdf.CellFormat(70, 7, row[1], "RB", 1, "R", false, 0, "")
	}

	pdf.SetFont("Arial", "B", 11)
	pdf.CellFormat(120, 8, "Total Fee", "1", 0, "L", true, 0, "")
	pdf.CellFormat(70, 8, fmt.Sprintf("%.2f", fee.TotalFee), "1", 1, "R", true, 0, "")
	pdf.CellFormat(120, 8, "Amount Paid", "1", 0, "L", false, 0, "")
	pdf.CellFormat(70, 8, fmt.Sprintf("%.2f", fee.AmountPaid), "1", 1, "R", false, 0, "")
	pdf.CellFormat(120, 8, "Balance", "1", 0, "L", false, 0, "")
	pdf.CellFormat(70, 8, fmt.Sprintf("%.2f", fee.Balance), "1", 1, "R", false, 0, "")

	if fee.Description != "" {
		pdf.Ln(3)
		pdf.SetFont("Arial", "I", 10)
		pdf.CellFormat(190, 6, fmt.Sprintf("Note: %s", fee.Description), "", 1, "L", false, 0, "")
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("failed to render receipt: %w", err)
	}
	return buf.Bytes(), nil
}

// GenerateStudentStatement builds a PDF of a student's full fee history
func (s *ReceiptService) GenerateStudentStatement(ctx context.Context, rollNo int) ([]byte, error) {
	student, err := s.StudentRepo.GetByRollNo(ctx, rollNo)
	if err != nil {
		return nil, fmt.Errorf("student %d not found", rollNo)
	}
	fees, err := s.FeeRepo.ListByStudent(ctx, rollNo)
	if err != nil {
		return nil, err
	}

	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetMargins(10, 10, 10)
	pdf.AddPage()

	pdf.SetFont("Arial", "B", 16)
	pdf.CellFormat(190, 10, s.SchoolName, "", 1, "C", false, 0, "")
	pdf.SetFont("Arial", "B", 12)
	pdf.CellFormat(190, 8, "Student Fee Statement", "", 1, "C", false, 0, "")
	pdf.SetFont("Arial", "", 10)
	pdf.CellFormat(190, 6, fmt.Sprintf("%s (Roll No %d, Grade %d)", student.Name, student.RollNo, student.Grade), "", 1, "C", false, 0, "")
	pdf.CellFormat(190, 6, fmt.Sprintf("Generated: %s", timeutil.Now().Format("02-Jan-2006 03:04 PM")), "", 1, "C", false, 0, "")
	pdf.Ln(5)

	// Table header
	pdf.SetFillColor(240, 240, 240)
	pdf.SetFont("Arial", "B", 10)
	pdf.CellFormat(40, 8, "Month", "1", 0, "L", true, 0, "")
	pdf.CellFormat(40, 8, "Total Fee", "1", 0, "R", true, 0, "")
	pdf.CellFormat(40, 8, "Paid", "1", 0, "R", true, 0, "")
	pdf.CellFormat(40, 8, "Balance", "1", 0, "R", true, 0, "")
	pdf.CellFormat(30, 8, "Status", "1", 1, "C", true, 0, "")

	pdf.SetFont("Arial", "", 10)
	for _, fee := range fees {
		status := "Unpaid"
		if fee.Paid {
			status = "Paid"
		}
		pdf.CellFormat(40, 7, fee.Month.Format(timeutil.MonthLayout), "1", 0, "L", false, 0, "")
		pdf.CellFormat(40, 7, fmt.Sprintf("%.2f", fee.TotalFee), "1", 0, "R", false, 0, "")
		pdf.CellFormat(40, 7, fmt.Sprintf("%.2f", fee.AmountPaid), "1", 0, "R", false, 0, "")
		pdf.CellFormat(40, 7, fmt.Sprintf("%.2f", fee.Balance), "1", 0, "R", false, 0, "")
		pdf.CellFormat(30, 7, status, "1", 1, "C", false, 0, "")
	}

	pdf.Ln(3)
	pdf.SetFont("Arial", "B", 11)
	pdf.CellFormat(190, 8, fmt.Sprintf("Current Pending Fee: %.2f", student.PendingFee), "", 1, "R", false, 0, "")

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("failed to render statement: %w", err)
	}
	return buf.Bytes(), nil
}

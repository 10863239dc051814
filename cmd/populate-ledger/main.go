package main

import (
	"context"
	"fmt"
	"log"
	"time"

	"school-backend/internal/config"
	"school-backend/internal/db"
	"school-backend/internal/repositories"
	"school-backend/internal/services"
)

// Recomputes the monthly profit ledger from fee, salary and expense records.
// The same logic runs behind POST /api/ledger/populate; this command exists
// for cron jobs and one-off runs.
func main() {
	cfg := config.Load()

	pool, err := db.Connect(cfg)
	if err != nil {
		log.Fatalf("Database connection failed: %v", err)
	}
	defer pool.Close()

	studentFeeRepo := repositories.NewStudentFeeRepository(pool)
	teacherPayRepo := repositories.NewTeacherPayRepository(pool)
	expenseRepo := repositories.NewExpenseRepository(pool)
	ledgerRepo := repositories.NewLedgerRepository(pool)

	ledgerService := services.NewLedgerService(ledgerRepo, studentFeeRepo, teacherPayRepo, expenseRepo)

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancel()

	breakdowns, err := ledgerService.Populate(ctx)
	if err != nil {
		log.Fatalf("Ledger populate failed: %v", err)
	}

	fmt.Printf("%-10s %12s %12s %12s %12s\n", "Month", "Fees", "Salaries", "Expenses", "Profit")
	for _, b := range breakdowns {
		fmt.Printf("%-10s %12.2f %12.2f %12.2f %12.2f\n",
			b.Month.Format("2006-01"), b.TotalStudentFees, b.TotalTeacherPays, b.TotalExpenses, b.MonthlyProfit)
	}
	fmt.Printf("\nPopulated %d month(s)\n", len(breakdowns))
}

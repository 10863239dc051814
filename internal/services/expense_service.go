package services

import (
	"context"
	"fmt"

	"school-backend/internal/cache"
	"school-backend/internal/models"
	"school-backend/internal/repositories"
	"school-backend/internal/timeutil"
)

type ExpenseService struct {
	Repo *repositories.ExpenseRepository
}

func NewExpenseService(repo *repositories.ExpenseRepository) *ExpenseService {
	return &ExpenseService{Repo: repo}
}

func (s *ExpenseService) RecordExpense(ctx context.Context, req *models.CreateExpenseRequest) (*models.Expense, error) {
	date, err := timeutil.ParseDate(req.Date)
	if err != nil {
		return nil, fmt.Errorf("invalid date: %w", err)
	}

	expense := &models.Expense{
		Category:    models.ExpenseCategory(req.Category),
		Amount:      req.Amount,
		Description: req.Description,
		Date:        date,
	}
	if err := s.Repo.Create(ctx, expense); err != nil {
		return nil, err
	}

	cache.InvalidateExpenseCaches(ctx)
	return expense, nil
}

func (s *ExpenseService) GetExpense(ctx context.Context, id int) (*models.Expense, error) {
	return s.Repo.GetByID(ctx, id)
}

func (s *ExpenseService) ListExpenses(ctx context.Context) ([]*models.Expense, error) {
	return s.Repo.List(ctx)
}

func (s *ExpenseService) UpdateExpense(ctx context.Context, id int, req *models.UpdateExpenseRequest) (*models.Expense, error) {
	expense, err := s.Repo.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("expense %d not found", id)
	}

	date, err := timeutil.ParseDate(req.Date)
	if err != nil {
		return nil, fmt.Errorf("invalid date: %w", err)
	}

	expense.Category = models.ExpenseCategory(req.Category)
	expense.Amount = req.Amount
	expense.Description = req.Description
	expense.Date = date

	if err := s.Repo.Update(ctx, expense); err != nil {
		return nil, err
	}

	cache.InvalidateExpenseCaches(ctx)
	return expense, nil
}

func (s *ExpenseService) DeleteExpense(ctx context.Context, id int) error {
	if err := s.Repo.Delete(ctx, id); err != nil {
		return err
	}
	cache.InvalidateExpenseCaches(ctx)
	return nil
}

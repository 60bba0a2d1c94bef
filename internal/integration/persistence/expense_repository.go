// Package persistence implements repository interfaces for database operations.
package persistence

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/finance-dashboard/backend/internal/application/adapter"
	"github.com/finance-dashboard/backend/internal/domain/entity"
	domainerror "github.com/finance-dashboard/backend/internal/domain/error"
	"github.com/finance-dashboard/backend/internal/integration/persistence/model"
)

// expenseRepository implements the adapter.ExpenseRepository interface.
type expenseRepository struct {
	db *gorm.DB
}

// NewExpenseRepository creates a new expense repository instance.
func NewExpenseRepository(db *gorm.DB) adapter.ExpenseRepository {
	return &expenseRepository{
		db: db,
	}
}

// Create creates a new expense in the database.
func (r *expenseRepository) Create(ctx context.Context, expense *entity.Expense) error {
	return r.db.WithContext(ctx).Create(model.ExpenseFromEntity(expense)).Error
}

// CreateMany stores several expenses in a single transaction.
func (r *expenseRepository) CreateMany(ctx context.Context, expenses []*entity.Expense) error {
	if len(expenses) == 0 {
		return nil
	}

	models := make([]*model.ExpenseModel, len(expenses))
	for i, e := range expenses {
		models[i] = model.ExpenseFromEntity(e)
	}

	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return tx.Create(&models).Error
	})
}

// FindByID retrieves an expense by its ID.
func (r *expenseRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Expense, error) {
	var expenseModel model.ExpenseModel
	result := r.db.WithContext(ctx).Where("id = ?", id).First(&expenseModel)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, domainerror.ErrExpenseNotFound
		}
		return nil, result.Error
	}
	return expenseModel.ToEntity(), nil
}

// FindByUser retrieves the user's expenses ordered by date descending.
func (r *expenseRepository) FindByUser(ctx context.Context, userID uuid.UUID, filter adapter.ExpenseFilter) ([]*entity.Expense, error) {
	query := r.db.WithContext(ctx).Where("user_id = ?", userID)

	if filter.StartDate != nil {
		query = query.Where("date >= ?", filter.StartDate.UTC())
	}
	if filter.EndDate != nil {
		query = query.Where("date < ?", filter.EndDate.UTC())
	}
	if filter.Category != "" {
		query = query.Where("category = ?", filter.Category)
	}

	var expenseModels []model.ExpenseModel
	if err := query.Order("date DESC, created_at DESC").Find(&expenseModels).Error; err != nil {
		return nil, err
	}

	expenses := make([]*entity.Expense, len(expenseModels))
	for i := range expenseModels {
		expenses[i] = expenseModels[i].ToEntity()
	}
	return expenses, nil
}

// Update updates an existing expense in the database.
func (r *expenseRepository) Update(ctx context.Context, expense *entity.Expense) error {
	return r.db.WithContext(ctx).Save(model.ExpenseFromEntity(expense)).Error
}

// Delete soft-deletes an expense.
func (r *expenseRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := r.db.WithContext(ctx).Delete(&model.ExpenseModel{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domainerror.ErrExpenseNotFound
	}
	return nil
}

// recurringExpenseRepository implements the adapter.RecurringExpenseRepository interface.
type recurringExpenseRepository struct {
	db *gorm.DB
}

// NewRecurringExpenseRepository creates a new recurring expense repository instance.
func NewRecurringExpenseRepository(db *gorm.DB) adapter.RecurringExpenseRepository {
	return &recurringExpenseRepository{
		db: db,
	}
}

// Create stores a new template.
func (r *recurringExpenseRepository) Create(ctx context.Context, tpl *entity.RecurringExpense) error {
	return r.db.WithContext(ctx).Create(model.RecurringExpenseFromEntity(tpl)).Error
}

// FindByUser retrieves all templates for a user, newest first.
func (r *recurringExpenseRepository) FindByUser(ctx context.Context, userID uuid.UUID) ([]*entity.RecurringExpense, error) {
	var models []model.RecurringExpenseModel
	result := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&models)
	if result.Error != nil {
		return nil, result.Error
	}

	templates := make([]*entity.RecurringExpense, len(models))
	for i := range models {
		templates[i] = models[i].ToEntity()
	}
	return templates, nil
}

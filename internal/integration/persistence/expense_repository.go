// Package persistence implements repository interfaces for database operations.
package persistence

import (
	"context"
	"errors"
	"math"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/lankagrow/backend/internal/application/adapter"
	"github.com/lankagrow/backend/internal/domain/entity"
	domainerror "github.com/lankagrow/backend/internal/domain/error"
	"github.com/lankagrow/backend/internal/integration/persistence/model"
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
	expenseModel := model.ExpenseFromEntity(expense)
	result := r.db.WithContext(ctx).Create(expenseModel)
	if result.Error != nil {
		return result.Error
	}
	return nil
}

// FindByID retrieves an expense by its ID, scoped to the owner.
func (r *expenseRepository) FindByID(ctx context.Context, id, userID uuid.UUID) (*entity.Expense, error) {
	var expenseModel model.ExpenseModel
	result := r.db.WithContext(ctx).
		Where("id = ? AND user_id = ?", id, userID).
		First(&expenseModel)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, domainerror.NewExpenseError(
				domainerror.ErrCodeExpenseNotFound,
				"expense not found",
				domainerror.ErrExpenseNotFound,
			)
		}
		return nil, result.Error
	}
	return expenseModel.ToEntity(), nil
}

// FindByFilter retrieves expenses based on filter criteria with pagination.
func (r *expenseRepository) FindByFilter(ctx context.Context, filter adapter.ExpenseFilter, pagination adapter.Pagination) (*adapter.ExpenseListResult, error) {
	query := r.db.WithContext(ctx).Model(&model.ExpenseModel{}).Where("user_id = ?", filter.UserID)

	if filter.Category != "" {
		query = query.Where("category = ?", filter.Category)
	}
	if filter.StartDate != nil {
		query = query.Where("date >= ?", *filter.StartDate)
	}
	if filter.EndDate != nil {
		query = query.Where("date <= ?", *filter.EndDate)
	}
	if filter.Search != "" {
		query = query.Where("description ILIKE ?", "%"+filter.Search+"%")
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, err
	}

	var expenseModels []model.ExpenseModel
	offset := (pagination.Page - 1) * pagination.Limit
	err := query.
		Order("date DESC").
		Limit(pagination.Limit).
		Offset(offset).
		Find(&expenseModels).Error
	if err != nil {
		return nil, err
	}

	expenses := make([]*entity.Expense, 0, len(expenseModels))
	for i := range expenseModels {
		expenses = append(expenses, expenseModels[i].ToEntity())
	}

	return &adapter.ExpenseListResult{
		Expenses:   expenses,
		Total:      total,
		Page:       pagination.Page,
		Limit:      pagination.Limit,
		TotalPages: int(math.Ceil(float64(total) / float64(pagination.Limit))),
	}, nil
}

// Update updates an existing expense in the database.
func (r *expenseRepository) Update(ctx context.Context, expense *entity.Expense) error {
	expense.UpdatedAt = time.Now().UTC()
	expenseModel := model.ExpenseFromEntity(expense)
	result := r.db.WithContext(ctx).Save(expenseModel)
	if result.Error != nil {
		return result.Error
	}
	return nil
}

// Delete soft-deletes an expense from the database.
func (r *expenseRepository) Delete(ctx context.Context, id, userID uuid.UUID) error {
	result := r.db.WithContext(ctx).
		Where("id = ? AND user_id = ?", id, userID).
		Delete(&model.ExpenseModel{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domainerror.NewExpenseError(
			domainerror.ErrCodeExpenseNotFound,
			"expense not found",
			domainerror.ErrExpenseNotFound,
		)
	}
	return nil
}

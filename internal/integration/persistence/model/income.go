// Package model defines database models for persistence layer.
package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/finance-dashboard/backend/internal/domain/entity"
)

// IncomeModel represents the incomes table in the database.
type IncomeModel struct {
	ID        uuid.UUID       `gorm:"type:uuid;primaryKey"`
	UserID    uuid.UUID       `gorm:"type:uuid;not null;index:idx_incomes_user_date"`
	Date      time.Time       `gorm:"not null;index:idx_incomes_user_date"`
	Category  string          `gorm:"type:varchar(50);not null"`
	Amount    decimal.Decimal `gorm:"type:decimal(15,2);not null"`
	Source    string          `gorm:"type:varchar(100)"`
	Note      string          `gorm:"type:text"`
	CreatedAt time.Time       `gorm:"not null"`
	UpdatedAt time.Time       `gorm:"not null"`
	DeletedAt gorm.DeletedAt  `gorm:"index"`
}

// TableName returns the table name for the IncomeModel.
func (IncomeModel) TableName() string {
	return "incomes"
}

// ToEntity converts an IncomeModel to a domain Income entity.
func (m *IncomeModel) ToEntity() *entity.Income {
	var deletedAt *time.Time
	if m.DeletedAt.Valid {
		deletedAt = &m.DeletedAt.Time
	}

	return &entity.Income{
		ID:        m.ID,
		UserID:    m.UserID,
		Category:  m.Category,
		Amount:    m.Amount,
		Date:      m.Date.UTC(),
		Source:    m.Source,
		Note:      m.Note,
		CreatedAt: m.CreatedAt,
		UpdatedAt: m.UpdatedAt,
		DeletedAt: deletedAt,
	}
}

// IncomeFromEntity creates an IncomeModel from a domain Income entity.
func IncomeFromEntity(income *entity.Income) *IncomeModel {
	var deletedAt gorm.DeletedAt
	if income.DeletedAt != nil {
		deletedAt = gorm.DeletedAt{Time: *income.DeletedAt, Valid: true}
	}

	return &IncomeModel{
		ID:        income.ID,
		UserID:    income.UserID,
		Date:      income.Date.UTC(),
		Category:  income.Category,
		Amount:    income.Amount,
		Source:    income.Source,
		Note:      income.Note,
		CreatedAt: income.CreatedAt,
		UpdatedAt: income.UpdatedAt,
		DeletedAt: deletedAt,
	}
}

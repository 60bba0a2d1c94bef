// Package model defines database models for persistence layer.
package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/finance-dashboard/backend/internal/domain/entity"
)

// ExpenseModel represents the expenses table in the database.
type ExpenseModel struct {
	ID                 uuid.UUID       `gorm:"type:uuid;primaryKey"`
	UserID             uuid.UUID       `gorm:"type:uuid;not null;index:idx_expenses_user_date"`
	Date               time.Time       `gorm:"not null;index:idx_expenses_user_date"`
	Category           string          `gorm:"type:varchar(50);not null;index"`
	Subcategory        string          `gorm:"type:varchar(50)"`
	Amount             decimal.Decimal `gorm:"type:decimal(15,2);not null"`
	PaymentMethod      string          `gorm:"type:varchar(20);not null"`
	Installments       *int            `gorm:"type:integer"`
	InstallmentNumber  *int            `gorm:"type:integer"`
	CreditCardID       *uuid.UUID      `gorm:"type:uuid;index"`
	Note               string          `gorm:"type:text"`
	Fixed              bool            `gorm:"default:false"`
	RecurringExpenseID *uuid.UUID      `gorm:"type:uuid;index"`
	CreatedAt          time.Time       `gorm:"not null"`
	UpdatedAt          time.Time       `gorm:"not null"`
	DeletedAt          gorm.DeletedAt  `gorm:"index"` // Soft-delete support
}

// TableName returns the table name for the ExpenseModel.
func (ExpenseModel) TableName() string {
	return "expenses"
}

// ToEntity converts an ExpenseModel to a domain Expense entity.
func (m *ExpenseModel) ToEntity() *entity.Expense {
	var deletedAt *time.Time
	if m.DeletedAt.Valid {
		deletedAt = &m.DeletedAt.Time
	}

	return &entity.Expense{
		ID:                 m.ID,
		UserID:             m.UserID,
		Category:           m.Category,
		Subcategory:        m.Subcategory,
		Amount:             m.Amount,
		PaymentMethod:      entity.PaymentMethod(m.PaymentMethod),
		Installments:       m.Installments,
		InstallmentNumber:  m.InstallmentNumber,
		CreditCardID:       m.CreditCardID,
		Note:               m.Note,
		Fixed:              m.Fixed,
		RecurringExpenseID: m.RecurringExpenseID,
		Date:               m.Date.UTC(),
		CreatedAt:          m.CreatedAt,
		UpdatedAt:          m.UpdatedAt,
		DeletedAt:          deletedAt,
	}
}

// ExpenseFromEntity creates an ExpenseModel from a domain Expense entity.
func ExpenseFromEntity(expense *entity.Expense) *ExpenseModel {
	var deletedAt gorm.DeletedAt
	if expense.DeletedAt != nil {
		deletedAt = gorm.DeletedAt{Time: *expense.DeletedAt, Valid: true}
	}

	return &ExpenseModel{
		ID:                 expense.ID,
		UserID:             expense.UserID,
		Date:               expense.Date.UTC(),
		Category:           expense.Category,
		Subcategory:        expense.Subcategory,
		Amount:             expense.Amount,
		PaymentMethod:      string(expense.PaymentMethod),
		Installments:       expense.Installments,
		InstallmentNumber:  expense.InstallmentNumber,
		CreditCardID:       expense.CreditCardID,
		Note:               expense.Note,
		Fixed:              expense.Fixed,
		RecurringExpenseID: expense.RecurringExpenseID,
		CreatedAt:          expense.CreatedAt,
		UpdatedAt:          expense.UpdatedAt,
		DeletedAt:          deletedAt,
	}
}

// RecurringExpenseModel represents the recurring_expenses table in the database.
type RecurringExpenseModel struct {
	ID            uuid.UUID       `gorm:"type:uuid;primaryKey"`
	UserID        uuid.UUID       `gorm:"type:uuid;not null;index"`
	Category      string          `gorm:"type:varchar(50);not null"`
	Subcategory   string          `gorm:"type:varchar(50)"`
	Amount        decimal.Decimal `gorm:"type:decimal(15,2);not null"`
	DayOfMonth    int             `gorm:"type:integer;not null"`
	PaymentMethod string          `gorm:"type:varchar(20);not null"`
	Installments  *int            `gorm:"type:integer"`
	CreditCardID  *uuid.UUID      `gorm:"type:uuid"`
	Note          string          `gorm:"type:text"`
	StartDate     time.Time       `gorm:"not null"`
	CreatedAt     time.Time       `gorm:"not null"`
	UpdatedAt     time.Time       `gorm:"not null"`
}

// TableName returns the table name for the RecurringExpenseModel.
func (RecurringExpenseModel) TableName() string {
	return "recurring_expenses"
}

// ToEntity converts a RecurringExpenseModel to a domain RecurringExpense entity.
func (m *RecurringExpenseModel) ToEntity() *entity.RecurringExpense {
	return &entity.RecurringExpense{
		ID:            m.ID,
		UserID:        m.UserID,
		Category:      m.Category,
		Subcategory:   m.Subcategory,
		Amount:        m.Amount,
		DayOfMonth:    m.DayOfMonth,
		PaymentMethod: entity.PaymentMethod(m.PaymentMethod),
		Installments:  m.Installments,
		CreditCardID:  m.CreditCardID,
		Note:          m.Note,
		StartDate:     m.StartDate.UTC(),
		CreatedAt:     m.CreatedAt,
		UpdatedAt:     m.UpdatedAt,
	}
}

// RecurringExpenseFromEntity creates a RecurringExpenseModel from a domain entity.
func RecurringExpenseFromEntity(tpl *entity.RecurringExpense) *RecurringExpenseModel {
	return &RecurringExpenseModel{
		ID:            tpl.ID,
		UserID:        tpl.UserID,
		Category:      tpl.Category,
		Subcategory:   tpl.Subcategory,
		Amount:        tpl.Amount,
		DayOfMonth:    tpl.DayOfMonth,
		PaymentMethod: string(tpl.PaymentMethod),
		Installments:  tpl.Installments,
		CreditCardID:  tpl.CreditCardID,
		Note:          tpl.Note,
		StartDate:     tpl.StartDate.UTC(),
		CreatedAt:     tpl.CreatedAt,
		UpdatedAt:     tpl.UpdatedAt,
	}
}

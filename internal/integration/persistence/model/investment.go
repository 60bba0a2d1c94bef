package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/finance-dashboard/backend/internal/domain/entity"
)

// InvestmentModel represents the investments table in the database.
type InvestmentModel struct {
	ID          uuid.UUID       `gorm:"type:uuid;primaryKey"`
	UserID      uuid.UUID       `gorm:"type:uuid;not null;index"`
	Type        string          `gorm:"type:varchar(50);not null"`
	Name        string          `gorm:"type:varchar(100);not null"`
	Amount      decimal.Decimal `gorm:"type:decimal(15,2);not null"`
	Date        time.Time       `gorm:"not null"`
	IsCrypto    bool            `gorm:"default:false"`
	Description string          `gorm:"type:text"`
	CreatedAt   time.Time       `gorm:"not null"`
	UpdatedAt   time.Time       `gorm:"not null"`
}

// TableName returns the table name for the InvestmentModel.
func (InvestmentModel) TableName() string {
	return "investments"
}

// ToEntity converts an InvestmentModel to a domain Investment entity.
func (m *InvestmentModel) ToEntity() *entity.Investment {
	return &entity.Investment{
		ID:          m.ID,
		UserID:      m.UserID,
		Type:        m.Type,
		Name:        m.Name,
		Amount:      m.Amount,
		Date:        m.Date.UTC(),
		IsCrypto:    m.IsCrypto,
		Description: m.Description,
		CreatedAt:   m.CreatedAt,
		UpdatedAt:   m.UpdatedAt,
	}
}

// InvestmentFromEntity creates an InvestmentModel from a domain Investment entity.
func InvestmentFromEntity(investment *entity.Investment) *InvestmentModel {
	return &InvestmentModel{
		ID:          investment.ID,
		UserID:      investment.UserID,
		Type:        investment.Type,
		Name:        investment.Name,
		Amount:      investment.Amount,
		Date:        investment.Date.UTC(),
		IsCrypto:    investment.IsCrypto,
		Description: investment.Description,
		CreatedAt:   investment.CreatedAt,
		UpdatedAt:   investment.UpdatedAt,
	}
}

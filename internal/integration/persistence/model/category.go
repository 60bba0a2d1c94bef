// Package model defines database models for persistence layer.
package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/finance-dashboard/backend/internal/domain/entity"
)

// CategoryModel represents the categories table in the database.
type CategoryModel struct {
	ID            uuid.UUID      `gorm:"type:uuid;primaryKey"`
	UserID        uuid.UUID      `gorm:"type:uuid;not null;index"`
	Name          string         `gorm:"type:varchar(50);not null"`
	Subcategories []string       `gorm:"type:text;serializer:json"`
	Color         string         `gorm:"type:varchar(7);default:'#6366F1'"`
	Kind          string         `gorm:"type:varchar(10);not null;index"`
	CreatedAt     time.Time      `gorm:"not null"`
	UpdatedAt     time.Time      `gorm:"not null"`
	DeletedAt     gorm.DeletedAt `gorm:"index"` // Soft-delete support
}

// TableName returns the table name for the CategoryModel.
func (CategoryModel) TableName() string {
	return "categories"
}

// ToEntity converts a CategoryModel to a domain Category entity.
func (m *CategoryModel) ToEntity() *entity.Category {
	subcategories := m.Subcategories
	if subcategories == nil {
		subcategories = []string{}
	}

	return &entity.Category{
		ID:            m.ID,
		UserID:        m.UserID,
		Name:          m.Name,
		Subcategories: subcategories,
		Color:         m.Color,
		Kind:          entity.CategoryKind(m.Kind),
		CreatedAt:     m.CreatedAt,
		UpdatedAt:     m.UpdatedAt,
	}
}

// CategoryFromEntity creates a CategoryModel from a domain Category entity.
func CategoryFromEntity(category *entity.Category) *CategoryModel {
	return &CategoryModel{
		ID:            category.ID,
		UserID:        category.UserID,
		Name:          category.Name,
		Subcategories: category.Subcategories,
		Color:         category.Color,
		Kind:          string(category.Kind),
		CreatedAt:     category.CreatedAt,
		UpdatedAt:     category.UpdatedAt,
	}
}

package adapter

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/finance-dashboard/backend/internal/domain/entity"
)

// UserRepository persists accounts. Emails are compared in normalized form.
type UserRepository interface {
	Create(ctx context.Context, user *entity.User) error
	FindByID(ctx context.Context, id uuid.UUID) (*entity.User, error)
	FindByEmail(ctx context.Context, email string) (*entity.User, error)
	ExistsByEmail(ctx context.Context, email string) (bool, error)
	Update(ctx context.Context, user *entity.User) error

	// RecordLogin stamps the last successful login.
	RecordLogin(ctx context.Context, id uuid.UUID, at time.Time) error

	// Delete removes the user together with every record they own.
	Delete(ctx context.Context, id uuid.UUID) error
}

package adapters

import (
	"fmt"
	"unicode"

	"golang.org/x/crypto/bcrypt"

	"github.com/finance-dashboard/backend/internal/application/adapter"
)

const (
	minPasswordLength = 8
	// bcrypt ignores everything past 72 bytes.
	maxPasswordBytes = 72
)

type passwordService struct {
	cost int
}

// NewPasswordService creates a bcrypt password service. Costs outside
// bcrypt's accepted range fall back to bcrypt.DefaultCost.
func NewPasswordService(cost int) adapter.PasswordService {
	if cost < bcrypt.MinCost || cost > bcrypt.MaxCost {
		cost = bcrypt.DefaultCost
	}
	return &passwordService{cost: cost}
}

func (s *passwordService) HashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), s.cost)
	if err != nil {
		return "", fmt.Errorf("failed to hash password: %w", err)
	}
	return string(hash), nil
}

func (s *passwordService) VerifyPassword(hash, password string) error {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password))
}

func (s *passwordService) CheckStrength(password string) []string {
	var problems []string
	if len([]rune(password)) < minPasswordLength {
		problems = append(problems, fmt.Sprintf("at least %d characters", minPasswordLength))
	}
	if len(password) > maxPasswordBytes {
		problems = append(problems, fmt.Sprintf("at most %d bytes", maxPasswordBytes))
	}

	var letter, digit bool
	for _, r := range password {
		switch {
		case unicode.IsLetter(r):
			letter = true
		case unicode.IsDigit(r):
			digit = true
		}
	}
	if !letter {
		problems = append(problems, "a letter")
	}
	if !digit {
		problems = append(problems, "a digit")
	}
	return problems
}

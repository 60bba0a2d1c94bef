package adapter

// PasswordService hashes and checks account passwords.
type PasswordService interface {
	HashPassword(password string) (string, error)

	// VerifyPassword returns nil when password matches hash.
	VerifyPassword(hash, password string) error

	// CheckStrength returns the unmet rules, empty when the password is acceptable.
	CheckStrength(password string) []string
}

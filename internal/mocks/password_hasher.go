package mocks

import "github.com/phrazzld/bookmark-api/internal/service/auth"

// MockPasswordHasher implements auth.PasswordHasher without any real hashing.
// By default Hash returns "hashed:"+password and Verify compares against that form.
type MockPasswordHasher struct {
	HashFn   func(password string) (string, error)
	VerifyFn func(encoded, password string) bool

	// HashCallCount tracks how many times Hash was called
	HashCallCount int
	// VerifyCallCount tracks how many times Verify was called
	VerifyCallCount int
}

var _ auth.PasswordHasher = (*MockPasswordHasher)(nil)

// Hash implements auth.PasswordHasher
func (m *MockPasswordHasher) Hash(password string) (string, error) {
	m.HashCallCount++
	if m.HashFn != nil {
		return m.HashFn(password)
	}
	return "hashed:" + password, nil
}

// Verify implements auth.PasswordHasher
func (m *MockPasswordHasher) Verify(encoded, password string) bool {
	m.VerifyCallCount++
	if m.VerifyFn != nil {
		return m.VerifyFn(encoded, password)
	}
	return encoded == "hashed:"+password
}

// Package password hashes and verifies account passwords.
package password

import (
	"golang.org/x/crypto/bcrypt"
)

// Bcrypt hashes passwords with x/crypto's bcrypt.
type Bcrypt struct {
	// Cost of hashing. Zero means bcrypt.DefaultCost.
	Cost int
}

func (b Bcrypt) cost() int {
	if b.Cost == 0 {
		return bcrypt.DefaultCost
	}
	return b.Cost
}

func (b Bcrypt) Hash(password string) (string, error) {
	hashed, err := bcrypt.GenerateFromPassword([]byte(password), b.cost())
	if err != nil {
		return "", err
	}
	return string(hashed), nil
}

// Compare reports nil when password matches hashed.
func (b Bcrypt) Compare(hashed string, password string) error {
	return bcrypt.CompareHashAndPassword([]byte(hashed), []byte(password))
}

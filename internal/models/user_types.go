package models

import (
	"errors"
	"time"

	"golang.org/x/crypto/bcrypt"
)

// Role values for User.Role. Self-registration always produces a regular
// user; only the promote/demote endpoints flip the flag.
const (
	RoleRegular = 0
	RoleAdmin   = 1
)

// User defines the struct for the 'User' table
type User struct {
	ID           int64     `json:"id" db:"id"`
	Name         string    `json:"name" db:"name"`
	TaxID        string    `json:"taxId" db:"tax_id"`
	Phone        string    `json:"phone" db:"phone"`
	Email        string    `json:"email" db:"email"`
	BirthDate    time.Time `json:"birthDate" db:"birth_date"`
	PasswordHash string    `json:"-" db:"password_hash"`
	Role         int       `json:"role" db:"role"`
}

// IsAdmin reports whether the role flag marks this user as an administrator.
func (u *User) IsAdmin() bool {
	return u.Role == RoleAdmin
}

// Password Helper (Standard)
type Password struct {
	Plaintext *string
	Hash      string
}

func (p *Password) Set(plaintextPassword string) error {
	hash, err := bcrypt.GenerateFromPassword([]byte(plaintextPassword), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	p.Hash = string(hash)
	p.Plaintext = &plaintextPassword
	return nil
}

func (p *Password) Matches(plaintextPassword string) (bool, error) {
	err := bcrypt.CompareHashAndPassword([]byte(p.Hash), []byte(plaintextPassword))
	if err != nil {
		if errors.Is(err, bcrypt.ErrMismatchedHashAndPassword) {
			return false, nil
		}
		return false, err
	}
	return true, nil
}

// Package auth covers the credential boundary: password hashing,
// email/password verification and the session payload attached to a
// logged-in request.
package auth

import (
	"github.com/ebarbosa/loja-virtual/internal/models"
	"github.com/ebarbosa/loja-virtual/internal/repository"
)

// HashPassword produces the salted bcrypt hash stored for a user.
// Callers never parse the output; it only ever flows back into Matches.
func HashPassword(plaintext string) (string, error) {
	var password models.Password
	if err := password.Set(plaintext); err != nil {
		return "", err
	}
	return password.Hash, nil
}

// Authenticate looks the user up by email and verifies the plaintext
// against the stored hash. Unknown email and wrong password both come
// back as (nil, nil) so the caller cannot tell them apart; only storage
// faults surface as errors.
func Authenticate(users *repository.UserRepository, email, plaintext string) (*models.User, error) {
	user, err := users.GetByEmail(email)
	if err != nil {
		return nil, err
	}
	if user == nil || user.PasswordHash == "" {
		return nil, nil
	}

	password := models.Password{Hash: user.PasswordHash}
	ok, err := password.Matches(plaintext)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, nil
	}
	return user, nil
}

package repository

import (
	"database/sql"
	"errors"
	"log"
	"time"

	"github.com/ebarbosa/loja-virtual/internal/models"
)

// birthDateLayout is how dates of birth are persisted in the TEXT column.
const birthDateLayout = "2006-01-02"

// UserRepository provides CRUD operations for the 'User' table plus the
// narrow queries the authentication and admin flows need.
type UserRepository struct {
	db *sql.DB
}

func NewUserRepository(db *sql.DB) *UserRepository {
	return &UserRepository{db: db}
}

// EnsureTable issues the idempotent create statement. Faults are logged
// and converted to false.
func (r *UserRepository) EnsureTable() bool {
	if _, err := r.db.Exec(createUserTable); err != nil {
		log.Printf("Error creating User table: %v", err)
		return false
	}
	return true
}

// Insert stores a new user and returns the id assigned by the store.
// PasswordHash must already be populated; the role column defaults to
// regular and is only changed through UpdateRole.
func (r *UserRepository) Insert(user *models.User) (int64, error) {
	result, err := r.db.Exec(insertUser,
		user.Name, user.TaxID, user.Phone, user.Email,
		user.BirthDate.Format(birthDateLayout), user.PasswordHash)
	if err != nil {
		return 0, err
	}
	return result.LastInsertId()
}

// Update overwrites the profile fields of the row matching user.ID.
// Role and password hash have their own statements.
func (r *UserRepository) Update(user *models.User) (bool, error) {
	result, err := r.db.Exec(updateUser,
		user.Name, user.TaxID, user.Phone, user.Email,
		user.BirthDate.Format(birthDateLayout), user.ID)
	if err != nil {
		return false, err
	}
	return affected(result)
}

// UpdateRole sets the role flag for one user.
func (r *UserRepository) UpdateRole(id int64, role int) (bool, error) {
	result, err := r.db.Exec(updateUserRole, role, id)
	if err != nil {
		return false, err
	}
	return affected(result)
}

// UpdatePassword replaces the stored hash for one user. It only ever
// receives a hash; plaintext never crosses this boundary.
func (r *UserRepository) UpdatePassword(id int64, passwordHash string) (bool, error) {
	result, err := r.db.Exec(updateUserPassword, passwordHash, id)
	if err != nil {
		return false, err
	}
	return affected(result)
}

func (r *UserRepository) Delete(id int64) (bool, error) {
	result, err := r.db.Exec(deleteUser, id)
	if err != nil {
		return false, err
	}
	return affected(result)
}

// GetByID returns (nil, nil) when no row matches. The password hash is
// not selected here; only GetByEmail, which feeds the credential check,
// reads it back.
func (r *UserRepository) GetByID(id int64) (*models.User, error) {
	var user models.User
	var birthDate string
	err := r.db.QueryRow(getUserByID, id).Scan(
		&user.ID, &user.Name, &user.TaxID, &user.Phone, &user.Email, &birthDate, &user.Role)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	if user.BirthDate, err = time.Parse(birthDateLayout, birthDate); err != nil {
		return nil, err
	}
	return &user, nil
}

// GetByEmail is the login lookup: exact match on the unique email column,
// hash included.
func (r *UserRepository) GetByEmail(email string) (*models.User, error) {
	var user models.User
	var birthDate string
	err := r.db.QueryRow(getUserByEmail, email).Scan(
		&user.ID, &user.Name, &user.TaxID, &user.Phone, &user.Email,
		&birthDate, &user.PasswordHash, &user.Role)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	if user.BirthDate, err = time.Parse(birthDateLayout, birthDate); err != nil {
		return nil, err
	}
	return &user, nil
}

// GetPage returns one page of users ordered by name ascending, without
// password hashes.
func (r *UserRepository) GetPage(page, size int) ([]*models.User, error) {
	offset := (page - 1) * size

	rows, err := r.db.Query(getUsersByPage, size, offset)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var users []*models.User
	for rows.Next() {
		var user models.User
		var birthDate string
		if err := rows.Scan(
			&user.ID, &user.Name, &user.TaxID, &user.Phone, &user.Email, &birthDate, &user.Role,
		); err != nil {
			return nil, err
		}
		if user.BirthDate, err = time.Parse(birthDateLayout, birthDate); err != nil {
			return nil, err
		}
		users = append(users, &user)
	}
	return users, rows.Err()
}

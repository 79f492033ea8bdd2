package repository

import (
	"database/sql"
	"errors"
	"log"

	"github.com/ebarbosa/loja-virtual/internal/models"
)

// AddressRepository provides CRUD operations for the 'Address' table.
// Addresses always belong to a user.
type AddressRepository struct {
	db *sql.DB
}

func NewAddressRepository(db *sql.DB) *AddressRepository {
	return &AddressRepository{db: db}
}

// EnsureTable issues the idempotent create statement. Faults are logged
// and converted to false.
func (r *AddressRepository) EnsureTable() bool {
	if _, err := r.db.Exec(createAddressTable); err != nil {
		log.Printf("Error creating Address table: %v", err)
		return false
	}
	return true
}

// Insert stores a new address and returns the id assigned by the store.
// The owner must already exist; the foreign key rejects anything else.
func (r *AddressRepository) Insert(address *models.Address) (int64, error) {
	result, err := r.db.Exec(insertAddress,
		address.Street, address.Number, address.Complement, address.Neighborhood,
		address.City, address.State, address.PostalCode, address.OwnerID)
	if err != nil {
		return 0, err
	}
	return result.LastInsertId()
}

// Update overwrites all mutable fields of the row matching address.ID.
func (r *AddressRepository) Update(address *models.Address) (bool, error) {
	result, err := r.db.Exec(updateAddress,
		address.Street, address.Number, address.Complement, address.Neighborhood,
		address.City, address.State, address.PostalCode, address.OwnerID,
		address.ID)
	if err != nil {
		return false, err
	}
	return affected(result)
}

func (r *AddressRepository) Delete(id int64) (bool, error) {
	result, err := r.db.Exec(deleteAddress, id)
	if err != nil {
		return false, err
	}
	return affected(result)
}

// GetByID returns (nil, nil) when no row matches.
func (r *AddressRepository) GetByID(id int64) (*models.Address, error) {
	address, err := scanAddress(r.db.QueryRow(getAddressByID, id))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return address, nil
}

// GetByOwner returns every address belonging to one user, in insertion
// order.
func (r *AddressRepository) GetByOwner(ownerID int64) ([]*models.Address, error) {
	return r.queryAddresses(getAddressesByOwner, ownerID)
}

// GetPage returns one page of addresses ordered by street ascending.
func (r *AddressRepository) GetPage(page, size int) ([]*models.Address, error) {
	offset := (page - 1) * size
	return r.queryAddresses(getAddressesByPage, size, offset)
}

func (r *AddressRepository) queryAddresses(query string, args ...any) ([]*models.Address, error) {
	rows, err := r.db.Query(query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var addresses []*models.Address
	for rows.Next() {
		address, err := scanAddress(rows)
		if err != nil {
			return nil, err
		}
		addresses = append(addresses, address)
	}
	return addresses, rows.Err()
}

func scanAddress(row rowScanner) (*models.Address, error) {
	var address models.Address
	if err := row.Scan(
		&address.ID,
		&address.Street,
		&address.Number,
		&address.Complement,
		&address.Neighborhood,
		&address.City,
		&address.State,
		&address.PostalCode,
		&address.OwnerID,
	); err != nil {
		return nil, err
	}
	return &address, nil
}

// Package repository contains the data-access modules, one per entity.
// Every operation is a direct parameterized statement against the shared
// *sql.DB handle; expected absence comes back as a nil/false sentinel and
// unexpected storage faults propagate as errors.
package repository

import (
	"database/sql"
	"errors"
	"log"

	"github.com/ebarbosa/loja-virtual/internal/models"
)

// CategoryRepository provides CRUD operations for the 'Category' table.
type CategoryRepository struct {
	db   *sql.DB
	seed string
}

func NewCategoryRepository(db *sql.DB) *CategoryRepository {
	return &CategoryRepository{db: db}
}

// WithSeed configures the SQL script that EnsureTable loads when it finds
// the table empty.
func (r *CategoryRepository) WithSeed(script string) *CategoryRepository {
	r.seed = script
	return r
}

// EnsureTable issues the idempotent create statement and, when a seed
// script is configured and the table is empty, loads the seed data.
// Storage faults are logged and converted to false; they never escape
// this boundary.
func (r *CategoryRepository) EnsureTable() bool {
	if _, err := r.db.Exec(createCategoryTable); err != nil {
		log.Printf("Error creating Category table: %v", err)
		return false
	}
	if err := seedIfEmpty(r.db, countCategories, r.seed); err != nil {
		log.Printf("Error seeding Category table: %v", err)
		return false
	}
	return true
}

// Insert stores a new category and returns the id assigned by the store.
func (r *CategoryRepository) Insert(category *models.Category) (int64, error) {
	result, err := r.db.Exec(insertCategory, category.Name)
	if err != nil {
		return 0, err
	}
	return result.LastInsertId()
}

// Update overwrites the mutable fields of the row matching category.ID.
// It returns false when no row matched, which is "not found", not an error.
func (r *CategoryRepository) Update(category *models.Category) (bool, error) {
	result, err := r.db.Exec(updateCategory, category.Name, category.ID)
	if err != nil {
		return false, err
	}
	return affected(result)
}

// Delete removes the row by id with the same affected-row contract as Update.
func (r *CategoryRepository) Delete(id int64) (bool, error) {
	result, err := r.db.Exec(deleteCategory, id)
	if err != nil {
		return false, err
	}
	return affected(result)
}

// GetByID returns (nil, nil) when no row matches.
func (r *CategoryRepository) GetByID(id int64) (*models.Category, error) {
	var category models.Category
	err := r.db.QueryRow(getCategoryByID, id).Scan(&category.ID, &category.Name)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &category, nil
}

// GetPage returns one page of categories ordered by name ascending.
// Pages are 1-based; an empty page is a valid result.
func (r *CategoryRepository) GetPage(page, size int) ([]*models.Category, error) {
	offset := (page - 1) * size

	rows, err := r.db.Query(getCategoriesByPage, size, offset)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var categories []*models.Category
	for rows.Next() {
		var category models.Category
		if err := rows.Scan(&category.ID, &category.Name); err != nil {
			return nil, err
		}
		categories = append(categories, &category)
	}
	return categories, rows.Err()
}

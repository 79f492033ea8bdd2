package repository

import (
	"database/sql"
	"errors"
	"log"

	"github.com/ebarbosa/loja-virtual/internal/models"
)

// ProductRepository provides CRUD operations for the 'Product' table.
// Read paths join the category so callers always get the category name
// alongside the product.
type ProductRepository struct {
	db   *sql.DB
	seed string
}

func NewProductRepository(db *sql.DB) *ProductRepository {
	return &ProductRepository{db: db}
}

// WithSeed configures the SQL script that EnsureTable loads when it finds
// the table empty. The product seed references the category seed ids, so
// it must only be wired together with the category seed.
func (r *ProductRepository) WithSeed(script string) *ProductRepository {
	r.seed = script
	return r
}

// EnsureTable issues the idempotent create statement and optionally loads
// the seed data. Faults are logged and converted to false.
func (r *ProductRepository) EnsureTable() bool {
	if _, err := r.db.Exec(createProductTable); err != nil {
		log.Printf("Error creating Product table: %v", err)
		return false
	}
	if err := seedIfEmpty(r.db, countProducts, r.seed); err != nil {
		log.Printf("Error seeding Product table: %v", err)
		return false
	}
	return true
}

// Insert stores a new product and returns the id assigned by the store.
// The category must already exist; the foreign key rejects anything else.
func (r *ProductRepository) Insert(product *models.Product) (int64, error) {
	result, err := r.db.Exec(insertProduct,
		product.Name, product.Description, product.Price, product.Stock, product.Image, product.CategoryID)
	if err != nil {
		return 0, err
	}
	return result.LastInsertId()
}

// Update overwrites all mutable fields of the row matching product.ID.
func (r *ProductRepository) Update(product *models.Product) (bool, error) {
	result, err := r.db.Exec(updateProduct,
		product.Name, product.Description, product.Price, product.Stock, product.Image, product.CategoryID,
		product.ID)
	if err != nil {
		return false, err
	}
	return affected(result)
}

func (r *ProductRepository) Delete(id int64) (bool, error) {
	result, err := r.db.Exec(deleteProduct, id)
	if err != nil {
		return false, err
	}
	return affected(result)
}

// GetByID returns (nil, nil) when no row matches. The embedded Category is
// resolved from the join.
func (r *ProductRepository) GetByID(id int64) (*models.Product, error) {
	product, err := scanProduct(r.db.QueryRow(getProductByID, id))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return product, nil
}

// GetPage returns one page of products ordered by name ascending, each
// with its category embedded.
func (r *ProductRepository) GetPage(page, size int) ([]*models.Product, error) {
	offset := (page - 1) * size

	rows, err := r.db.Query(getProductsByPage, size, offset)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var products []*models.Product
	for rows.Next() {
		product, err := scanProduct(rows)
		if err != nil {
			return nil, err
		}
		products = append(products, product)
	}
	return products, rows.Err()
}

// rowScanner lets scanProduct read from both QueryRow and Query results.
type rowScanner interface {
	Scan(dest ...any) error
}

func scanProduct(row rowScanner) (*models.Product, error) {
	var product models.Product
	var categoryName string
	if err := row.Scan(
		&product.ID,
		&product.Name,
		&product.Description,
		&product.Price,
		&product.Stock,
		&product.Image,
		&product.CategoryID,
		&categoryName,
	); err != nil {
		return nil, err
	}
	product.Category = &models.Category{ID: product.CategoryID, Name: categoryName}
	return &product, nil
}

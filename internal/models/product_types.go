package models

// Product defines the struct for the 'Product' table.
// Category is populated from the join when the product is read back;
// it is never written through this struct.
type Product struct {
	ID          int64   `json:"id" db:"id"`
	Name        string  `json:"name" db:"name"`
	Description string  `json:"description" db:"description"`
	Price       float64 `json:"price" db:"price"`
	Stock       int     `json:"stock" db:"stock"`
	Image       string  `json:"image" db:"image"`
	CategoryID  int64   `json:"categoryId" db:"category_id"`

	Category *Category `json:"category,omitempty" db:"-"`
}

package models

// Address defines the struct for the 'Address' table.
// Every address belongs to a user. Complement is the only nullable
// column, so it gets a pointer (NULL maps to nil).
type Address struct {
	ID           int64   `json:"id" db:"id"`
	Street       string  `json:"street" db:"street"`
	Number       string  `json:"number" db:"number"`
	Complement   *string `json:"complement,omitempty" db:"complement"`
	Neighborhood string  `json:"neighborhood" db:"neighborhood"`
	City         string  `json:"city" db:"city"`
	State        string  `json:"state" db:"state"`
	PostalCode   string  `json:"postalCode" db:"postal_code"`
	OwnerID      int64   `json:"ownerId" db:"owner_id"`
}

package repository

import _ "embed"

// Seed scripts run by EnsureTable when the target table is created empty.
// They are embedded so the bootstrap does not depend on the working
// directory of the process.

//go:embed data/seed_categories.sql
var CategorySeed string

//go:embed data/seed_products.sql
var ProductSeed string

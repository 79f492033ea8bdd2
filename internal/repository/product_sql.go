package repository

const createProductTable = `
CREATE TABLE IF NOT EXISTS Product (
	id INTEGER PRIMARY KEY AUTOINCREMENT,
	name TEXT NOT NULL,
	description TEXT NOT NULL,
	price REAL NOT NULL,
	stock INTEGER NOT NULL,
	image TEXT NOT NULL,
	category_id INTEGER NOT NULL,
	FOREIGN KEY (category_id) REFERENCES Category(id)
);`

const countProducts = `
SELECT COUNT(id) FROM Product;`

const insertProduct = `
INSERT INTO Product (name, description, price, stock, image, category_id)
VALUES (?, ?, ?, ?, ?, ?);`

const updateProduct = `
UPDATE Product
SET name = ?, description = ?, price = ?, stock = ?, image = ?, category_id = ?
WHERE id = ?;`

const deleteProduct = `
DELETE FROM Product
WHERE id = ?;`

const getProductByID = `
SELECT p.id, p.name, p.description, p.price, p.stock, p.image, p.category_id, c.name AS category_name
FROM Product p
INNER JOIN Category c ON p.category_id = c.id
WHERE p.id = ?;`

const getProductsByPage = `
SELECT p.id, p.name, p.description, p.price, p.stock, p.image, p.category_id, c.name AS category_name
FROM Product p
INNER JOIN Category c ON p.category_id = c.id
ORDER BY p.name ASC
LIMIT ? OFFSET ?;`

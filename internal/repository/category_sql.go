package repository

const createCategoryTable = `
CREATE TABLE IF NOT EXISTS Category (
	id INTEGER PRIMARY KEY AUTOINCREMENT,
	name TEXT NOT NULL
);`

const countCategories = `
SELECT COUNT(id) FROM Category;`

const insertCategory = `
INSERT INTO Category (name)
VALUES (?);`

const updateCategory = `
UPDATE Category
SET name = ?
WHERE id = ?;`

const deleteCategory = `
DELETE FROM Category
WHERE id = ?;`

const getCategoryByID = `
SELECT id, name
FROM Category
WHERE id = ?;`

const getCategoriesByPage = `
SELECT id, name
FROM Category
ORDER BY name ASC
LIMIT ? OFFSET ?;`

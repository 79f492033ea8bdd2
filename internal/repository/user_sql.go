package repository

const createUserTable = `
CREATE TABLE IF NOT EXISTS User (
	id INTEGER PRIMARY KEY AUTOINCREMENT,
	name TEXT NOT NULL,
	tax_id TEXT NOT NULL,
	phone TEXT NOT NULL,
	email TEXT NOT NULL UNIQUE,
	birth_date TEXT NOT NULL,
	password_hash TEXT NOT NULL,
	role INTEGER NOT NULL DEFAULT 0
);`

const insertUser = `
INSERT INTO User (name, tax_id, phone, email, birth_date, password_hash)
VALUES (?, ?, ?, ?, ?, ?);`

const updateUser = `
UPDATE User
SET name = ?, tax_id = ?, phone = ?, email = ?, birth_date = ?
WHERE id = ?;`

const updateUserRole = `
UPDATE User
SET role = ?
WHERE id = ?;`

const updateUserPassword = `
UPDATE User
SET password_hash = ?
WHERE id = ?;`

const deleteUser = `
DELETE FROM User
WHERE id = ?;`

const getUserByID = `
SELECT id, name, tax_id, phone, email, birth_date, role
FROM User
WHERE id = ?;`

const getUserByEmail = `
SELECT id, name, tax_id, phone, email, birth_date, password_hash, role
FROM User
WHERE email = ?;`

const getUsersByPage = `
SELECT id, name, tax_id, phone, email, birth_date, role
FROM User
ORDER BY name ASC
LIMIT ? OFFSET ?;`

package repository

const createAddressTable = `
CREATE TABLE IF NOT EXISTS Address (
	id INTEGER PRIMARY KEY AUTOINCREMENT,
	street TEXT NOT NULL,
	number TEXT NOT NULL,
	complement TEXT,
	neighborhood TEXT NOT NULL,
	city TEXT NOT NULL,
	state TEXT NOT NULL,
	postal_code TEXT NOT NULL,
	owner_id INTEGER NOT NULL,
	FOREIGN KEY (owner_id) REFERENCES User(id)
);`

const insertAddress = `
INSERT INTO Address (street, number, complement, neighborhood, city, state, postal_code, owner_id)
VALUES (?, ?, ?, ?, ?, ?, ?, ?);`

const updateAddress = `
UPDATE Address
SET street = ?, number = ?, complement = ?, neighborhood = ?, city = ?, state = ?, postal_code = ?, owner_id = ?
WHERE id = ?;`

const deleteAddress = `
DELETE FROM Address
WHERE id = ?;`

const getAddressByID = `
SELECT id, street, number, complement, neighborhood, city, state, postal_code, owner_id
FROM Address
WHERE id = ?;`

const getAddressesByOwner = `
SELECT id, street, number, complement, neighborhood, city, state, postal_code, owner_id
FROM Address
WHERE owner_id = ?
ORDER BY id ASC;`

const getAddressesByPage = `
SELECT id, street, number, complement, neighborhood, city, state, postal_code, owner_id
FROM Address
ORDER BY street ASC
LIMIT ? OFFSET ?;`

package persons

const (
	personColumns = `id, name, active, street, number, complement, district, zip_code, city, state, created_at, updated_at`

	queryList = `
		SELECT ` + personColumns + `
		FROM persons
		ORDER BY name
	`

	queryGet = `
		SELECT ` + personColumns + `
		FROM persons
		WHERE id = $1
	`

	queryCreate = `
		INSERT INTO persons (name, active, street, number, complement, district, zip_code, city, state)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		RETURNING ` + personColumns

	queryUpdate = `
		UPDATE persons
		SET name = $1, active = $2, street = $3, number = $4, complement = $5,
		    district = $6, zip_code = $7, city = $8, state = $9, updated_at = NOW()
		WHERE id = $10
		RETURNING ` + personColumns

	querySetActive = `
		UPDATE persons
		SET active = $1, updated_at = NOW()
		WHERE id = $2
	`

	queryDelete = `
		DELETE FROM persons
		WHERE id = $1
	`
)

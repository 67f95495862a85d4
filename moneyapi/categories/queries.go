package categories

const (
	queryList = `
		SELECT id, name
		FROM categories
		ORDER BY name
	`

	queryGet = `
		SELECT id, name
		FROM categories
		WHERE id = $1
	`

	queryCreate = `
		INSERT INTO categories (name)
		VALUES ($1)
		RETURNING id, name
	`

	queryDelete = `
		DELETE FROM categories
		WHERE id = $1
	`
)

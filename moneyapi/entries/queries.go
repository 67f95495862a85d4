package entries

const (
	entryColumns = `id, description, due_date, payment_date, amount_cents, notes, type, category_id, person_id, created_at`

	queryList = `
		SELECT ` + entryColumns + `
		FROM entries
		ORDER BY due_date DESC, id DESC
		LIMIT $1 OFFSET $2
	`

	queryGet = `
		SELECT ` + entryColumns + `
		FROM entries
		WHERE id = $1
	`

	queryCreate = `
		INSERT INTO entries (description, due_date, payment_date, amount_cents, notes, type, category_id, person_id)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING ` + entryColumns

	queryDelete = `
		DELETE FROM entries
		WHERE id = $1
	`
)

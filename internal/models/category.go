package models

// Category is the row shape of the categories table.
type Category struct {
	CategoryID string `db:"category_id"`
	UserID     string `db:"user_id"`
	Name       string `db:"name"`
	Type       string `db:"type"` // INCOME or EXPENSE
	Color      string `db:"color"`
	AuditFields
}

package entity

// CategoryAll is the sentinel filter value meaning "no category filter".
const CategoryAll = "all"

type Product struct {
	Base
	Name        string  `db:"name"`
	Description string  `db:"description"`
	Price       float64 `db:"price"`
	Image       string  `db:"image"`
	Category    string  `db:"category"`
	Stock       int     `db:"stock"`
	Featured    bool    `db:"featured"`
}

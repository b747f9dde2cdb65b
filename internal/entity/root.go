package entity

import (
	"database/sql"
	"time"
)

// Audit holds the soft-delete and audit columns carried by every table.
type Audit struct {
	Active    bool           `db:"active"`
	Deleted   bool           `db:"deleted"`
	DeletedAt sql.NullTime   `db:"deleted_at"`
	DeletedBy sql.NullString `db:"deleted_by"`
	CreatedAt time.Time      `db:"created_at"`
	CreatedBy sql.NullString `db:"created_by"`
	UpdatedAt sql.NullTime   `db:"updated_at"`
	UpdatedBy sql.NullString `db:"updated_by"`
}

// PageQuery is the body of every POST /all request.
type PageQuery struct {
	Page       int
	Pages      int
	LanguageId string
	Input      string
}

// Page is one page of parents together with the computed page count.
type Page[T any] struct {
	Items []T
	Page  int
	Pages int
}

package entity

type PositionInsert struct {
	Published bool `db:"published"`
}

type Position struct {
	Id string `db:"id"`
	PositionInsert
	Audit
}

type PositionLanguageInsert struct {
	PositionId     string `db:"position_id"`
	LanguageId     string `db:"language_id"`
	Title          string `db:"title"`
	Slug           string `db:"slug"`
	NormalizedSlug string `db:"normalized_slug"`
}

type PositionLanguage struct {
	Id string `db:"id"`
	PositionLanguageInsert
	Audit
}

type PositionLanguageFull struct {
	PositionLanguage
	Position Position `db:"position"`
}

type PositionListItem struct {
	Position
	Language PositionLanguage `db:"language"`
}

type PositionInput struct {
	Published  bool
	Title      string
	LanguageId string
	Deleted    bool
}

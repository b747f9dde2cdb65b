package entity

// LanguageInsert is the writable part of a language row.
type LanguageInsert struct {
	Code           string `db:"code"`
	Name           string `db:"name"`
	Slug           string `db:"slug"`
	NormalizedSlug string `db:"normalized_slug"`
	Published      bool   `db:"published"`
}

// Language is a content language. The default one is configured, not flagged.
type Language struct {
	Id string `db:"id"`
	LanguageInsert
	Audit
}

type LanguageInput struct {
	Name      string
	Published bool
}

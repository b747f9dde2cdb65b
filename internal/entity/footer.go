package entity

// Content is free text attached to another row through source_id.
type Content struct {
	Id       string `db:"id"`
	SourceId string `db:"source_id"`
	Content  string `db:"content"`
	Audit
}

type FooterLanguage struct {
	Id         string `db:"id"`
	LanguageId string `db:"language_id"`
	Audit
}

// FooterFull is a footer row with its content.
type FooterFull struct {
	FooterLanguage
	Content Content `db:"content"`
}

type FooterInput struct {
	Content    string
	LanguageId string
}

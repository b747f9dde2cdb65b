package entity

type LinkLanguage struct {
	Id         string `db:"id"`
	LanguageId string `db:"language_id"`
	Title      string `db:"title"`
	URL        string `db:"url"`
	Audit
}

// LinkUpdate changes the url of an existing link.
type LinkUpdate struct {
	Id  string
	URL string
}

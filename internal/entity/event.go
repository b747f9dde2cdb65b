package entity

import "time"

type EventInsert struct {
	StartDate time.Time `db:"start_date"`
	EndDate   time.Time `db:"end_date"`
	Published bool      `db:"published"`
}

type Event struct {
	Id string `db:"id"`
	EventInsert
	Audit
}

type EventLanguageInsert struct {
	EventId        string `db:"event_id"`
	LanguageId     string `db:"language_id"`
	Title          string `db:"title"`
	Slug           string `db:"slug"`
	NormalizedSlug string `db:"normalized_slug"`
	FileId         string `db:"file_id"`
}

type EventLanguage struct {
	Id string `db:"id"`
	EventLanguageInsert
	Audit
}

type EventLanguageFull struct {
	EventLanguage
	Event Event `db:"event"`
	File  File  `db:"file"`
}

type EventListItem struct {
	Event
	Language EventLanguage `db:"language"`
}

type EventInput struct {
	StartDate  time.Time
	EndDate    time.Time
	Published  bool
	Title      string
	FileId     string
	LanguageId string
	Deleted    bool
}

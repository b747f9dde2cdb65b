package entity

import "time"

type ScheduleInsert struct {
	Timeframe time.Time `db:"timeframe"`
	Published bool      `db:"published"`
}

type Schedule struct {
	Id string `db:"id"`
	ScheduleInsert
	Audit
}

type ScheduleLanguageInsert struct {
	ScheduleId     string `db:"schedule_id"`
	LanguageId     string `db:"language_id"`
	Title          string `db:"title"`
	Slug           string `db:"slug"`
	NormalizedSlug string `db:"normalized_slug"`
	Content        string `db:"content"`
	Location       string `db:"location"`
	Attendee       string `db:"attendee"`
}

type ScheduleLanguage struct {
	Id string `db:"id"`
	ScheduleLanguageInsert
	Audit
}

type ScheduleLanguageFull struct {
	ScheduleLanguage
	Schedule Schedule `db:"schedule"`
}

type ScheduleListItem struct {
	Schedule
	Language ScheduleLanguage `db:"language"`
}

type ScheduleInput struct {
	Timeframe  time.Time
	Published  bool
	Title      string
	Content    string
	Location   string
	Attendee   string
	LanguageId string
	Deleted    bool
}

package entity

import "time"

type BannerInsert struct {
	StartDate time.Time `db:"start_date"`
	EndDate   time.Time `db:"end_date"`
	Published bool      `db:"published"`
}

// Banner is the language independent part of a banner.
type Banner struct {
	Id string `db:"id"`
	BannerInsert
	Audit
}

type BannerLanguageInsert struct {
	BannerId       string `db:"banner_id"`
	LanguageId     string `db:"language_id"`
	Title          string `db:"title"`
	Slug           string `db:"slug"`
	NormalizedSlug string `db:"normalized_slug"`
	FileId         string `db:"file_id"`
}

type BannerLanguage struct {
	Id string `db:"id"`
	BannerLanguageInsert
	Audit
}

// BannerLanguageFull is a translation joined with its banner and file.
type BannerLanguageFull struct {
	BannerLanguage
	Banner Banner `db:"banner"`
	File   File   `db:"file"`
}

// BannerListItem is a banner with its translation in the listed language.
type BannerListItem struct {
	Banner
	Language BannerLanguage `db:"language"`
}

// BannerInput is a validated create or update request.
type BannerInput struct {
	StartDate  time.Time
	EndDate    time.Time
	Published  bool
	Title      string
	FileId     string
	LanguageId string
	Deleted    bool
}

package dto

import "github.com/lkphuong/api-homepage/internal/entity"

// DatedItem is the list shape shared by banners and events.
type DatedItem struct {
	Id        string `json:"id"`
	Title     string `json:"title"`
	Slug      string `json:"slug"`
	Published bool   `json:"published"`
	StartDate string `json:"start_date"`
	EndDate   string `json:"end_date"`
}

type Banner struct {
	Id               string `json:"id"`
	BannerLanguageId string `json:"banner_language_id"`
	Title            string `json:"title"`
	Slug             string `json:"slug"`
	File             *File  `json:"file"`
	StartDate        string `json:"start_date"`
	EndDate          string `json:"end_date"`
	Published        bool   `json:"published"`
}

func ConvertBannerListItem(b entity.BannerListItem) DatedItem {
	return DatedItem{
		Id:        b.Id,
		Title:     b.Language.Title,
		Slug:      b.Language.Slug,
		Published: b.Published,
		StartDate: formatDate(b.StartDate),
		EndDate:   formatDate(b.EndDate),
	}
}

func ConvertBanner(b *entity.BannerLanguageFull) *Banner {
	if b == nil {
		return nil
	}
	return &Banner{
		Id:               b.Banner.Id,
		BannerLanguageId: b.Id,
		Title:            b.Title,
		Slug:             b.Slug,
		File:             ConvertEntityToFile(b.File),
		StartDate:        formatDate(b.Banner.StartDate),
		EndDate:          formatDate(b.Banner.EndDate),
		Published:        b.Banner.Published,
	}
}

type Event struct {
	Id              string `json:"id"`
	EventLanguageId string `json:"event_language_id"`
	Title           string `json:"title"`
	Slug            string `json:"slug"`
	File            *File  `json:"file"`
	StartDate       string `json:"start_date"`
	EndDate         string `json:"end_date"`
	Published       bool   `json:"published"`
}

func ConvertEventListItem(e entity.EventListItem) DatedItem {
	return DatedItem{
		Id:        e.Id,
		Title:     e.Language.Title,
		Slug:      e.Language.Slug,
		Published: e.Published,
		StartDate: formatDate(e.StartDate),
		EndDate:   formatDate(e.EndDate),
	}
}

func ConvertEvent(e *entity.EventLanguageFull) *Event {
	if e == nil {
		return nil
	}
	return &Event{
		Id:              e.Event.Id,
		EventLanguageId: e.Id,
		Title:           e.Title,
		Slug:            e.Slug,
		File:            ConvertEntityToFile(e.File),
		StartDate:       formatDate(e.Event.StartDate),
		EndDate:         formatDate(e.Event.EndDate),
		Published:       e.Event.Published,
	}
}

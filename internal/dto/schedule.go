package dto

import (
	"time"

	"github.com/lkphuong/api-homepage/internal/entity"
)

type ScheduleItem struct {
	Id        string    `json:"id"`
	Title     string    `json:"title"`
	Slug      string    `json:"slug"`
	Published bool      `json:"published"`
	Timeframe time.Time `json:"timeframe"`
	Date      string    `json:"date"`
	Hour      string    `json:"hour"`
}

type Schedule struct {
	Id                 string    `json:"id"`
	ScheduleLanguageId string    `json:"schedule_language_id"`
	Title              string    `json:"title"`
	Slug               string    `json:"slug"`
	Published          bool      `json:"published"`
	Content            string    `json:"content"`
	Date               string    `json:"date"`
	Hour               string    `json:"hour"`
	Timeframe          time.Time `json:"timeframe"`
	Location           string    `json:"location"`
	Attendee           string    `json:"attendee"`
}

func ConvertScheduleListItem(s entity.ScheduleListItem) ScheduleItem {
	return ScheduleItem{
		Id:        s.Id,
		Title:     s.Language.Title,
		Slug:      s.Language.Slug,
		Published: s.Published,
		Timeframe: s.Timeframe.UTC(),
		Date:      formatDate(s.Timeframe),
		Hour:      formatHour(s.Timeframe),
	}
}

func ConvertSchedule(s *entity.ScheduleLanguageFull) *Schedule {
	if s == nil {
		return nil
	}
	tf := s.Schedule.Timeframe
	return &Schedule{
		Id:                 s.Schedule.Id,
		ScheduleLanguageId: s.Id,
		Title:              s.Title,
		Slug:               s.Slug,
		Published:          s.Schedule.Published,
		Content:            s.Content,
		Date:               formatDate(tf),
		Hour:               formatHour(tf),
		Timeframe:          tf.UTC(),
		Location:           s.Location,
		Attendee:           s.Attendee,
	}
}

package dto

import (
	"database/sql"
	"encoding/json"
	"testing"
	"time"

	"github.com/lkphuong/api-homepage/internal/entity"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var created = time.Date(2024, 1, 1, 8, 0, 0, 0, time.UTC)

func TestConvertBanner(t *testing.T) {
	b := &entity.BannerLanguageFull{
		BannerLanguage: entity.BannerLanguage{
			Id: "bl-1",
			BannerLanguageInsert: entity.BannerLanguageInsert{
				BannerId: "b-1",
				Title:    "Spring",
				Slug:     "spring",
				FileId:   "f-1",
			},
		},
		Banner: entity.Banner{
			Id: "b-1",
			BannerInsert: entity.BannerInsert{
				StartDate: time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC),
				EndDate:   time.Date(2024, 3, 31, 0, 0, 0, 0, time.UTC),
				Published: true,
			},
		},
		File: entity.File{
			Id: "f-1",
			FileInsert: entity.FileInsert{
				OriginalName: "spring.png",
				URL:          "https://cdn.example.com/files/spring.png",
				Extension:    ".png",
			},
		},
	}

	raw, err := json.Marshal(ConvertBanner(b))
	require.NoError(t, err)
	assert.JSONEq(t, `{
		"id": "b-1",
		"banner_language_id": "bl-1",
		"title": "Spring",
		"slug": "spring",
		"file": {"id": "f-1", "name": "spring.png", "url": "https://cdn.example.com/files/spring.png", "type": "png"},
		"start_date": "2024-03-01",
		"end_date": "2024-03-31",
		"published": true
	}`, string(raw))

	assert.Nil(t, ConvertBanner(nil))
}

func TestConvertEntityToFileMissing(t *testing.T) {
	assert.Nil(t, ConvertEntityToFile(entity.File{}))
}

func TestConvertScheduleHour(t *testing.T) {
	tf := time.Date(2024, 5, 6, 14, 30, 0, 0, time.UTC)
	s := ConvertScheduleListItem(entity.ScheduleListItem{
		Schedule: entity.Schedule{
			Id:             "s-1",
			ScheduleInsert: entity.ScheduleInsert{Timeframe: tf},
		},
		Language: entity.ScheduleLanguage{
			ScheduleLanguageInsert: entity.ScheduleLanguageInsert{Title: "Họp", Slug: "hop"},
		},
	})
	assert.Equal(t, "2024-05-06", s.Date)
	assert.Equal(t, "2:30:00 PM", s.Hour)
	assert.Equal(t, "Họp", s.Title)

	// A non UTC timeframe is rendered in UTC.
	ict := time.FixedZone("ICT", 7*3600)
	full := ConvertSchedule(&entity.ScheduleLanguageFull{
		Schedule: entity.Schedule{
			ScheduleInsert: entity.ScheduleInsert{Timeframe: time.Date(2024, 5, 7, 6, 0, 0, 0, ict)},
		},
	})
	assert.Equal(t, "2024-05-06", full.Date)
	assert.Equal(t, "11:00:00 PM", full.Hour)
}

func TestConvertNotificationUpdatedAt(t *testing.T) {
	n := entity.NotificationListItem{
		Notification: entity.Notification{
			Id:    "n-1",
			Audit: entity.Audit{CreatedAt: created},
		},
	}
	assert.Nil(t, ConvertNotificationListItem(n).UpdatedAt)

	n.UpdatedAt = sql.NullTime{Time: created.Add(time.Hour), Valid: true}
	item := ConvertNotificationListItem(n)
	require.NotNil(t, item.UpdatedAt)
	assert.Equal(t, created.Add(time.Hour), *item.UpdatedAt)
}

func TestConvertUserHidesPassword(t *testing.T) {
	u := &entity.UserFull{
		User: entity.User{
			Id:       "u-1",
			Username: "admin",
			Password: "$2a$10$hash",
			Audit:    entity.Audit{Active: true, CreatedAt: created},
		},
		Permissions: []entity.Permission{{Id: "p-1", Code: "BANNER", Name: "Banner"}},
	}
	raw, err := json.Marshal(ConvertUser(u))
	require.NoError(t, err)
	assert.NotContains(t, string(raw), "hash")
	assert.JSONEq(t, `{
		"id": "u-1",
		"username": "admin",
		"created_at": "2024-01-01T08:00:00Z",
		"updated_at": null,
		"active": true,
		"permissions": [{"id": "p-1", "code": "BANNER", "name": "Banner"}]
	}`, string(raw))
}

func TestConvertFooterAndLinks(t *testing.T) {
	f := ConvertFooter(&entity.FooterFull{
		FooterLanguage: entity.FooterLanguage{Id: "fl-1", LanguageId: "vi"},
		Content:        entity.Content{Id: "c-1", SourceId: "fl-1", Content: "<p>Hi</p>"},
	})
	assert.Equal(t, &Footer{Id: "fl-1", ContentId: "c-1", Content: "<p>Hi</p>", LanguageId: "vi"}, f)

	links := ConvertLinks(nil)
	assert.NotNil(t, links)
	assert.Empty(t, links)

	links = ConvertLinks([]entity.LinkLanguage{{Id: "l-1", Title: "Facebook", URL: "https://fb.com"}})
	assert.Equal(t, []Link{{Id: "l-1", Title: "Facebook", URL: "https://fb.com"}}, links)
}

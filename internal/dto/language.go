package dto

import (
	"time"

	"github.com/lkphuong/api-homepage/internal/entity"
)

type Language struct {
	Id        string     `json:"id"`
	Code      string     `json:"code"`
	Name      string     `json:"name"`
	Slug      string     `json:"slug"`
	Published bool       `json:"published"`
	CreatedAt time.Time  `json:"created_at"`
	UpdatedAt *time.Time `json:"updated_at"`
}

func ConvertLanguage(l entity.Language) Language {
	return Language{
		Id:        l.Id,
		Code:      l.Code,
		Name:      l.Name,
		Slug:      l.Slug,
		Published: l.Published,
		CreatedAt: l.CreatedAt.UTC(),
		UpdatedAt: nullTime(l.UpdatedAt),
	}
}

// ConvertLanguagePtr is ConvertLanguage for single object responses.
func ConvertLanguagePtr(l *entity.Language) *Language {
	if l == nil {
		return nil
	}
	out := ConvertLanguage(*l)
	return &out
}

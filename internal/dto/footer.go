package dto

import "github.com/lkphuong/api-homepage/internal/entity"

type Footer struct {
	Id         string `json:"id"`
	ContentId  string `json:"content_id"`
	Content    string `json:"content"`
	LanguageId string `json:"language_id"`
}

func ConvertFooter(f *entity.FooterFull) *Footer {
	if f == nil {
		return nil
	}
	return &Footer{
		Id:         f.Id,
		ContentId:  f.Content.Id,
		Content:    f.Content.Content,
		LanguageId: f.LanguageId,
	}
}

type Link struct {
	Id    string `json:"id"`
	Title string `json:"title"`
	URL   string `json:"url"`
}

func ConvertLinks(links []entity.LinkLanguage) []Link {
	out := make([]Link, 0, len(links))
	for _, l := range links {
		out = append(out, Link{
			Id:    l.Id,
			Title: l.Title,
			URL:   l.URL,
		})
	}
	return out
}

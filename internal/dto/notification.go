package dto

import (
	"time"

	"github.com/lkphuong/api-homepage/internal/entity"
)

type NotificationItem struct {
	Id        string     `json:"id"`
	Title     string     `json:"title"`
	Published bool       `json:"published"`
	CreatedAt time.Time  `json:"created_at"`
	UpdatedAt *time.Time `json:"updated_at"`
}

type Notification struct {
	Id                     string     `json:"id"`
	NotificationLanguageId string     `json:"notification_language_id"`
	Title                  string     `json:"title"`
	Slug                   string     `json:"slug"`
	Published              bool       `json:"published"`
	CreatedAt              time.Time  `json:"created_at"`
	UpdatedAt              *time.Time `json:"updated_at"`
}

func ConvertNotificationListItem(n entity.NotificationListItem) NotificationItem {
	return NotificationItem{
		Id:        n.Id,
		Title:     n.Language.Title,
		Published: n.Published,
		CreatedAt: n.CreatedAt.UTC(),
		UpdatedAt: nullTime(n.UpdatedAt),
	}
}

func ConvertNotification(n *entity.NotificationLanguageFull) *Notification {
	if n == nil {
		return nil
	}
	return &Notification{
		Id:                     n.Notification.Id,
		NotificationLanguageId: n.Id,
		Title:                  n.Title,
		Slug:                   n.Slug,
		Published:              n.Notification.Published,
		CreatedAt:              n.Notification.CreatedAt.UTC(),
		UpdatedAt:              nullTime(n.Notification.UpdatedAt),
	}
}

type PositionItem struct {
	Id        string     `json:"id"`
	Title     string     `json:"title"`
	Slug      string     `json:"slug"`
	Published bool       `json:"published"`
	CreatedAt time.Time  `json:"created_at"`
	UpdatedAt *time.Time `json:"updated_at"`
}

type Position struct {
	Id                 string     `json:"id"`
	PositionLanguageId string     `json:"position_language_id"`
	Title              string     `json:"title"`
	Slug               string     `json:"slug"`
	Published          bool       `json:"published"`
	CreatedAt          time.Time  `json:"created_at"`
	UpdatedAt          *time.Time `json:"updated_at"`
}

func ConvertPositionListItem(p entity.PositionListItem) PositionItem {
	return PositionItem{
		Id:        p.Id,
		Title:     p.Language.Title,
		Slug:      p.Language.Slug,
		Published: p.Published,
		CreatedAt: p.CreatedAt.UTC(),
		UpdatedAt: nullTime(p.UpdatedAt),
	}
}

func ConvertPosition(p *entity.PositionLanguageFull) *Position {
	if p == nil {
		return nil
	}
	return &Position{
		Id:                 p.Position.Id,
		PositionLanguageId: p.Id,
		Title:              p.Title,
		Slug:               p.Slug,
		Published:          p.Position.Published,
		CreatedAt:          p.Position.CreatedAt.UTC(),
		UpdatedAt:          nullTime(p.Position.UpdatedAt),
	}
}

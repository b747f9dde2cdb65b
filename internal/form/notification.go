package form

import (
	"net/http"

	v "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/lkphuong/api-homepage/internal/entity"
)

// TitleRequest is the create and update body of notifications and positions.
type TitleRequest struct {
	Published  Flag   `json:"published"`
	Title      string `json:"title"`
	LanguageId string `json:"language_id"`
	Deleted    Flag   `json:"deleted"`
}

func (r *TitleRequest) Bind(*http.Request) error {
	trim(&r.Title)
	trim(&r.LanguageId)
	return r.Validate()
}

func (r *TitleRequest) Validate() error {
	return ValidateStruct(r,
		v.Field(&r.Published, validFlag(msgPublished)),
		v.Field(&r.Title, v.Required.Error(msgTitleEmpty), v.RuneLength(1, 255).Error(msgTitleLength)),
		v.Field(&r.LanguageId, isUUID.Error(msgLanguageInvalid)),
		v.Field(&r.Deleted, validFlag(msgDeleted)),
	)
}

func (r *TitleRequest) ToNotificationInput() *entity.NotificationInput {
	return &entity.NotificationInput{
		Published:  r.Published.Bool(),
		Title:      r.Title,
		LanguageId: r.LanguageId,
		Deleted:    r.Deleted.Bool(),
	}
}

func (r *TitleRequest) ToPositionInput() *entity.PositionInput {
	return &entity.PositionInput{
		Published:  r.Published.Bool(),
		Title:      r.Title,
		LanguageId: r.LanguageId,
		Deleted:    r.Deleted.Bool(),
	}
}

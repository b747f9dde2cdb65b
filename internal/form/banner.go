package form

import (
	"net/http"

	v "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/lkphuong/api-homepage/internal/entity"
)

// DatedRequest is the create and update body of banners and events.
type DatedRequest struct {
	Published  Flag   `json:"published"`
	StartDate  string `json:"start_date"`
	EndDate    string `json:"end_date"`
	Title      string `json:"title"`
	FileId     string `json:"file_id"`
	LanguageId string `json:"language_id"`
	Deleted    Flag   `json:"deleted"`
}

func (r *DatedRequest) Bind(*http.Request) error {
	trim(&r.Title)
	trim(&r.FileId)
	trim(&r.LanguageId)
	return r.Validate()
}

func (r *DatedRequest) Validate() error {
	return ValidateStruct(r,
		v.Field(&r.Published, validFlag(msgPublished)),
		v.Field(&r.StartDate,
			v.Required.Error("Bạn vui lòng nhập [ngày bắt đầu]."),
			isDate.Error("Giá trị [ngày bắt đầu] không hợp lệ.")),
		v.Field(&r.EndDate,
			v.Required.Error("Bạn vui lòng nhập [ngày kết thúc]."),
			isDate.Error("Giá trị [ngày kết thúc] không hợp lệ.")),
		v.Field(&r.Title, v.Required.Error(msgTitleEmpty), v.RuneLength(1, 255).Error(msgTitleLength)),
		v.Field(&r.FileId, v.Required.Error(msgImageEmpty), isUUID.Error(msgImageInvalid)),
		v.Field(&r.LanguageId, isUUID.Error(msgLanguageInvalid)),
		v.Field(&r.Deleted, validFlag(msgDeleted)),
	)
}

// ToBannerInput must only be called after Validate succeeded.
func (r *DatedRequest) ToBannerInput() *entity.BannerInput {
	s, _ := ParseDate(r.StartDate)
	e, _ := ParseDate(r.EndDate)
	return &entity.BannerInput{
		StartDate:  s,
		EndDate:    e,
		Published:  r.Published.Bool(),
		Title:      r.Title,
		FileId:     r.FileId,
		LanguageId: r.LanguageId,
		Deleted:    r.Deleted.Bool(),
	}
}

func (r *DatedRequest) ToEventInput() *entity.EventInput {
	s, _ := ParseDate(r.StartDate)
	e, _ := ParseDate(r.EndDate)
	return &entity.EventInput{
		StartDate:  s,
		EndDate:    e,
		Published:  r.Published.Bool(),
		Title:      r.Title,
		FileId:     r.FileId,
		LanguageId: r.LanguageId,
		Deleted:    r.Deleted.Bool(),
	}
}

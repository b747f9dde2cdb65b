package form

import (
	"net/http"

	v "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/lkphuong/api-homepage/internal/entity"
)

type ScheduleRequest struct {
	Published  Flag   `json:"published"`
	Timeframe  string `json:"timeframe"`
	Title      string `json:"title"`
	Content    string `json:"content"`
	Location   string `json:"location"`
	Attendee   string `json:"attendee"`
	LanguageId string `json:"language_id"`
	Deleted    Flag   `json:"deleted"`
}

func (r *ScheduleRequest) Bind(*http.Request) error {
	trim(&r.Title)
	trim(&r.Location)
	trim(&r.Attendee)
	trim(&r.LanguageId)
	return r.Validate()
}

func (r *ScheduleRequest) Validate() error {
	return ValidateStruct(r,
		v.Field(&r.Published, validFlag(msgPublished)),
		v.Field(&r.Timeframe,
			v.Required.Error("Bạn vui lòng chọn [thời gian diễn ra]."),
			isDate.Error("[Thời gian diễn ra] không hợp lệ.")),
		v.Field(&r.Title, v.Required.Error(msgTitleEmpty), v.RuneLength(1, 255).Error(msgTitleLength)),
		v.Field(&r.Content,
			v.Required.Error("Bạn vui lòng nhập [nội dung]."),
			v.RuneLength(1, 500).Error("[Nội dung] độ dài tối đa 500 kí tự.")),
		v.Field(&r.Location,
			v.Required.Error("Bạn vui lòng nhập [địa điểm]."),
			v.RuneLength(1, 500).Error("[Địa điểm] độ dài tối đa 500 kí tự.")),
		v.Field(&r.Attendee,
			v.Required.Error("Bạn vui lòng nhập [thành phần tham dự]."),
			v.RuneLength(1, 500).Error("[Thành phần tham dự] độ dài tối đa 500 kí tự.")),
		v.Field(&r.LanguageId, isUUID.Error(msgLanguageInvalid)),
		v.Field(&r.Deleted, validFlag(msgDeleted)),
	)
}

// ToInput must only be called after Validate succeeded.
func (r *ScheduleRequest) ToInput() *entity.ScheduleInput {
	tf, _ := ParseDate(r.Timeframe)
	return &entity.ScheduleInput{
		Timeframe:  tf,
		Published:  r.Published.Bool(),
		Title:      r.Title,
		Content:    r.Content,
		Location:   r.Location,
		Attendee:   r.Attendee,
		LanguageId: r.LanguageId,
		Deleted:    r.Deleted.Bool(),
	}
}

package form

import (
	"net/http"

	v "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/go-ozzo/ozzo-validation/v4/is"
	"github.com/lkphuong/api-homepage/internal/entity"
)

type FooterRequest struct {
	Content    string `json:"content"`
	LanguageId string `json:"language_id"`
}

func (r *FooterRequest) Bind(*http.Request) error {
	trim(&r.LanguageId)
	return r.Validate()
}

func (r *FooterRequest) Validate() error {
	return ValidateStruct(r,
		v.Field(&r.Content, v.Required.Error("Bạn vui lòng nhập [nội dung].")),
		v.Field(&r.LanguageId, isUUID.Error(msgLanguageInvalid)),
	)
}

func (r *FooterRequest) ToInput() *entity.FooterInput {
	return &entity.FooterInput{
		Content:    r.Content,
		LanguageId: r.LanguageId,
	}
}

type LinkItem struct {
	Id  string `json:"id"`
	URL string `json:"url"`
}

func (l LinkItem) Validate() error {
	return v.ValidateStruct(&l,
		v.Field(&l.Id, v.Required.Error("Bạn vui lòng chọn [liên kết]."), isUUID.Error("Giá trị [liên kết] không hợp lệ.")),
		v.Field(&l.URL,
			v.Required.Error("Bạn vui lòng nhập [đường dẫn]."),
			is.URL.Error("[Đường dẫn] không hợp lệ."),
			v.RuneLength(1, 500).Error("[Đường dẫn] độ dài tối đa 500 kí tự.")),
	)
}

type LinksRequest struct {
	Links []LinkItem `json:"links"`
}

func (r *LinksRequest) Bind(*http.Request) error {
	for i := range r.Links {
		trim(&r.Links[i].Id)
		trim(&r.Links[i].URL)
	}
	return r.Validate()
}

func (r *LinksRequest) Validate() error {
	return ValidateStruct(r,
		v.Field(&r.Links, v.Required.Error("[Liên kết] không được để trống.")),
	)
}

func (r *LinksRequest) ToUpdates() []entity.LinkUpdate {
	out := make([]entity.LinkUpdate, 0, len(r.Links))
	for _, l := range r.Links {
		out = append(out, entity.LinkUpdate{Id: l.Id, URL: l.URL})
	}
	return out
}

package form

import (
	"net/http"

	v "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/lkphuong/api-homepage/internal/entity"
)

const (
	msgLanguageInvalid = "Giá trị [ngôn ngữ] không hợp lệ."
	msgPublished       = "Giá trị [published] không hợp lệ."
	msgDeleted         = "Giá trị [deleted] không hợp lệ."
	msgTitleEmpty      = "Bạn vui lòng nhập [tiêu đề]."
	msgTitleLength     = "[Tiêu đề] độ dài tối đa 255 kí tự."
	msgImageEmpty      = "Bạn vui lòng chọn [hình ảnh]."
	msgImageInvalid    = "[Hình ảnh] không hợp lệ."
)

// PageRequest is the body of every POST /all request.
type PageRequest struct {
	Page       int    `json:"page"`
	Pages      int    `json:"pages"`
	LanguageId string `json:"language_id"`
	Input      string `json:"input"`
}

func (r *PageRequest) Bind(*http.Request) error {
	trim(&r.Input)
	trim(&r.LanguageId)
	return r.Validate()
}

func (r *PageRequest) Validate() error {
	return ValidateStruct(r,
		v.Field(&r.Page, v.Required.Error("Bạn vui lòng nhập [page]."), v.Min(1).Error("Giá trị [page] tối thiểu bằng 1.")),
		v.Field(&r.Pages, v.Min(0).Error("Giá trị [pages] tối thiểu bằng 0.")),
		v.Field(&r.LanguageId, isUUID.Error(msgLanguageInvalid)),
		v.Field(&r.Input, v.RuneLength(0, 255).Error("[Từ khóa] độ dài tối đa 255 kí tự.")),
	)
}

func (r *PageRequest) ToQuery() entity.PageQuery {
	return entity.PageQuery{
		Page:       r.Page,
		Pages:      r.Pages,
		LanguageId: r.LanguageId,
		Input:      r.Input,
	}
}

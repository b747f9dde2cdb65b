package form

import (
	"net/http"

	v "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/lkphuong/api-homepage/internal/entity"
)

type LanguageRequest struct {
	Name      string `json:"name"`
	Published Flag   `json:"published"`
}

func (r *LanguageRequest) Bind(*http.Request) error {
	trim(&r.Name)
	return r.Validate()
}

func (r *LanguageRequest) Validate() error {
	return ValidateStruct(r,
		v.Field(&r.Name,
			v.Required.Error("Bạn vui lòng nhập [ngôn ngữ]."),
			v.RuneLength(1, 255).Error("[Ngôn ngữ] độ dài tối đa 255 kí tự.")),
		v.Field(&r.Published, validFlag(msgPublished)),
	)
}

func (r *LanguageRequest) ToInput() *entity.LanguageInput {
	return &entity.LanguageInput{
		Name:      r.Name,
		Published: r.Published.Bool(),
	}
}

package form

import (
	"net/http"

	v "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/lkphuong/api-homepage/internal/entity"
)

type EmployeeRequest struct {
	Published      Flag   `json:"published"`
	Name           string `json:"name"`
	AcademicDegree string `json:"academic_degree"`
	FileId         string `json:"file_id"`
	LanguageId     string `json:"language_id"`
	Deleted        Flag   `json:"deleted"`
}

func (r *EmployeeRequest) Bind(*http.Request) error {
	trim(&r.Name)
	trim(&r.AcademicDegree)
	trim(&r.FileId)
	trim(&r.LanguageId)
	return r.Validate()
}

func (r *EmployeeRequest) Validate() error {
	return ValidateStruct(r,
		v.Field(&r.Published, validFlag(msgPublished)),
		v.Field(&r.Name,
			v.Required.Error("Bạn vui lòng nhập [tên nhân sự]."),
			v.RuneLength(1, 255).Error("[Tên nhân sự] độ dài tối đa 255 kí tự.")),
		v.Field(&r.AcademicDegree,
			v.Required.Error("Bạn vui lòng nhập [học vị]."),
			v.RuneLength(1, 255).Error("[Học vị] có độ dài tối đa 255 kí tự.")),
		v.Field(&r.FileId, v.Required.Error(msgImageEmpty), isUUID.Error(msgImageInvalid)),
		v.Field(&r.LanguageId, isUUID.Error(msgLanguageInvalid)),
		v.Field(&r.Deleted, validFlag(msgDeleted)),
	)
}

func (r *EmployeeRequest) ToInput() *entity.EmployeeInput {
	return &entity.EmployeeInput{
		Published:      r.Published.Bool(),
		Name:           r.Name,
		AcademicDegree: r.AcademicDegree,
		FileId:         r.FileId,
		LanguageId:     r.LanguageId,
		Deleted:        r.Deleted.Bool(),
	}
}

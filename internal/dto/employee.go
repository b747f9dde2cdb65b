package dto

import (
	"time"

	"github.com/lkphuong/api-homepage/internal/entity"
)

type EmployeeItem struct {
	Id             string    `json:"id"`
	Name           string    `json:"name"`
	Slug           string    `json:"slug"`
	AcademicDegree string    `json:"academic_degree"`
	Published      bool      `json:"published"`
	CreatedAt      time.Time `json:"created_at"`
}

type Employee struct {
	Id                 string `json:"id"`
	EmployeeLanguageId string `json:"employee_language_id"`
	Name               string `json:"name"`
	Slug               string `json:"slug"`
	File               *File  `json:"file"`
	Published          bool   `json:"published"`
	AcademicDegree     string `json:"academic_degree"`
}

func ConvertEmployeeListItem(e entity.EmployeeListItem) EmployeeItem {
	return EmployeeItem{
		Id:             e.Id,
		Name:           e.Language.Name,
		Slug:           e.Language.Slug,
		AcademicDegree: e.Language.AcademicDegree,
		Published:      e.Published,
		CreatedAt:      e.CreatedAt.UTC(),
	}
}

func ConvertEmployee(e *entity.EmployeeLanguageFull) *Employee {
	if e == nil {
		return nil
	}
	return &Employee{
		Id:                 e.Employee.Id,
		EmployeeLanguageId: e.Id,
		Name:               e.Name,
		Slug:               e.Slug,
		File:               ConvertEntityToFile(e.File),
		Published:          e.Employee.Published,
		AcademicDegree:     e.AcademicDegree,
	}
}

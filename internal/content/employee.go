package content

import (
	"context"

	"github.com/lkphuong/api-homepage/internal/dependency"
	"github.com/lkphuong/api-homepage/internal/entity"
	"github.com/lkphuong/api-homepage/internal/slug"
	"github.com/lkphuong/api-homepage/log"
)

var employeeLabel = label{where: "employee", name: "[nhân sự]", title: "[Nhân sự]"}

// GetEmployee resolves a employee in languageId, falling back to the default language.
func (s *Service) GetEmployee(ctx context.Context, id, languageId string) (*entity.EmployeeLanguageFull, error) {
	el, err := s.repo.Employee().ResolveEmployeeLanguage(ctx, id, languageId, s.c.DefaultLanguage)
	if err != nil {
		return nil, internal(ctx, log.MethodGet, employeeLabel.where, err)
	}
	if el == nil {
		return nil, employeeLabel.notFound(id)
	}
	return el, nil
}

func (s *Service) ListEmployees(ctx context.Context, q entity.PageQuery) (*entity.Page[entity.EmployeeListItem], error) {
	languageId := s.language(q.LanguageId)
	return listPage(ctx, s, employeeLabel.where, q,
		func() (int, error) {
			return s.repo.Employee().CountEmployees(ctx, languageId, q.Input)
		},
		func(offset, limit int) ([]entity.EmployeeListItem, error) {
			return s.repo.Employee().GetEmployeesPaged(ctx, offset, limit, languageId, q.Input)
		})
}

func (s *Service) CreateEmployee(ctx context.Context, in *entity.EmployeeInput, actor string) (*entity.EmployeeLanguageFull, error) {
	if err := s.requireFile(ctx, employeeLabel.where, in.FileId); err != nil {
		return nil, err
	}

	var id string
	err := s.repo.Tx(ctx, func(ctx context.Context, rep dependency.Repository) error {
		var err error
		id, err = rep.Employee().AddEmployee(ctx, &entity.EmployeeInsert{
			Published: in.Published,
		}, actor)
		if err != nil {
			return err
		}
		if _, err := rep.Employee().AddEmployeeLanguage(ctx, s.employeeLanguage(id, in), actor); err != nil {
			return err
		}
		return publishFile(ctx, rep, in.FileId, actor)
	})
	if err != nil {
		return nil, fail(ctx, log.MethodCreate, employeeLabel, err)
	}
	return s.GetEmployee(ctx, id, in.LanguageId)
}

// UpdateEmployee updates the employee and upserts or deletes its translation in
// in.LanguageId. The result is nil when the translation was deleted.
func (s *Service) UpdateEmployee(ctx context.Context, id string, in *entity.EmployeeInput, actor string) (*entity.EmployeeLanguageFull, error) {
	e, err := s.repo.Employee().GetEmployeeById(ctx, id)
	if err != nil {
		return nil, internal(ctx, log.MethodUpdate, employeeLabel.where, err)
	}
	if e == nil {
		return nil, employeeLabel.notFound(id)
	}
	if err := s.requireFile(ctx, employeeLabel.where, in.FileId); err != nil {
		return nil, err
	}

	var deleted bool
	err = s.repo.Tx(ctx, func(ctx context.Context, rep dependency.Repository) error {
		err := rep.Employee().UpdateEmployee(ctx, id, &entity.EmployeeInsert{
			Published: in.Published,
		}, actor)
		if err != nil {
			return err
		}

		el, err := rep.Employee().GetEmployeeLanguage(ctx, id, s.language(in.LanguageId))
		if err != nil {
			return err
		}
		switch {
		case el != nil && in.Deleted:
			deleted = true
			return dropTranslation(ctx, rep, func() (int64, error) {
				return rep.Employee().DeleteEmployeeLanguageById(ctx, el.Id, actor)
			}, el.FileId, actor)
		case el != nil:
			if err := rep.Employee().UpdateEmployeeLanguage(ctx, el.Id, s.employeeLanguage(id, in), actor); err != nil {
				return err
			}
			return swapFile(ctx, rep, el.FileId, in.FileId, actor)
		default:
			if _, err := rep.Employee().AddEmployeeLanguage(ctx, s.employeeLanguage(id, in), actor); err != nil {
				return err
			}
			return publishFile(ctx, rep, in.FileId, actor)
		}
	})
	if err != nil {
		return nil, fail(ctx, log.MethodUpdate, employeeLabel, err)
	}
	if deleted {
		return nil, nil
	}
	return s.GetEmployee(ctx, id, in.LanguageId)
}

// DeleteEmployee soft-deletes a employee and all of its translations.
func (s *Service) DeleteEmployee(ctx context.Context, id, actor string) error {
	if err := validateId(id); err != nil {
		return err
	}
	e, err := s.repo.Employee().GetEmployeeById(ctx, id)
	if err != nil {
		return internal(ctx, log.MethodDelete, employeeLabel.where, err)
	}
	if e == nil {
		return employeeLabel.notFound(id)
	}
	err = s.repo.Tx(ctx, func(ctx context.Context, rep dependency.Repository) error {
		return cascade(
			func() (int64, error) { return rep.Employee().DeleteEmployeeById(ctx, id, actor) },
			func() (int64, error) { return rep.Employee().DeleteEmployeeLanguages(ctx, id, actor) },
		)
	})
	if err != nil {
		return fail(ctx, log.MethodDelete, employeeLabel, err)
	}
	return nil
}

func (s *Service) employeeLanguage(employeeId string, in *entity.EmployeeInput) *entity.EmployeeLanguageInsert {
	return &entity.EmployeeLanguageInsert{
		EmployeeId:     employeeId,
		LanguageId:     s.language(in.LanguageId),
		Name:           in.Name,
		Slug:           slug.Make(in.Name),
		NormalizedSlug: slug.Normalize(in.Name),
		AcademicDegree: in.AcademicDegree,
		FileId:         in.FileId,
	}
}

package store

import (
	"context"
	"fmt"

	"github.com/lkphuong/api-homepage/internal/dependency"
	"github.com/lkphuong/api-homepage/internal/entity"
)

var employeeTables = translatable{
	parent:       "employees",
	translation:  "employee_languages",
	parentKey:    "employee_id",
	prefix:       "employee",
	languageCols: []string{"name", "academic_degree"},
	withFile:     true,
}

type employeeStore struct {
	*MYSQLStore
}

// Employee returns an object implementing employee interface
func (ms *MYSQLStore) Employee() dependency.Employee {
	return &employeeStore{
		MYSQLStore: ms,
	}
}

func (es *employeeStore) GetEmployeeById(ctx context.Context, id string) (*entity.Employee, error) {
	return getParent[entity.Employee](ctx, es.DB(), employeeTables, id)
}

func (es *employeeStore) GetEmployeesPaged(ctx context.Context, offset, limit int, languageId, input string) ([]entity.EmployeeListItem, error) {
	return getPaged[entity.EmployeeListItem](ctx, es.DB(), employeeTables, offset, limit, languageId, input)
}

func (es *employeeStore) CountEmployees(ctx context.Context, languageId, input string) (int, error) {
	return countPaged(ctx, es.DB(), employeeTables, languageId, input)
}

func (es *employeeStore) AddEmployee(ctx context.Context, e *entity.EmployeeInsert, actor string) (string, error) {
	return es.insertRow(ctx, employeeTables.parent, map[string]any{
		"published": e.Published,
	}, actor)
}

func (es *employeeStore) UpdateEmployee(ctx context.Context, id string, e *entity.EmployeeInsert, actor string) error {
	query := `
	UPDATE employees SET
		published = :published,
		updated_at = :updatedAt,
		updated_by = :updatedBy
	WHERE id = :id AND deleted = FALSE`
	err := ExecNamed(ctx, es.DB(), query, es.updateParams(id, actor, map[string]any{
		"published": e.Published,
	}))
	if err != nil {
		return fmt.Errorf("can't update employee: %w", err)
	}
	return nil
}

func (es *employeeStore) DeleteEmployeeById(ctx context.Context, id, actor string) (int64, error) {
	return es.softDelete(ctx, employeeTables.parent, "id", id, actor)
}

func (es *employeeStore) ResolveEmployeeLanguage(ctx context.Context, employeeId, languageId, defaultLanguageId string) (*entity.EmployeeLanguageFull, error) {
	return resolveLanguage[entity.EmployeeLanguageFull](ctx, es.DB(), employeeTables, employeeId, languageId, defaultLanguageId)
}

func (es *employeeStore) GetEmployeeLanguage(ctx context.Context, employeeId, languageId string) (*entity.EmployeeLanguage, error) {
	return getLanguage[entity.EmployeeLanguage](ctx, es.DB(), employeeTables, employeeId, languageId)
}

func (es *employeeStore) AddEmployeeLanguage(ctx context.Context, el *entity.EmployeeLanguageInsert, actor string) (string, error) {
	return es.insertRow(ctx, employeeTables.translation, map[string]any{
		"employee_id":     el.EmployeeId,
		"language_id":     el.LanguageId,
		"name":            el.Name,
		"academic_degree": el.AcademicDegree,
		"slug":            el.Slug,
		"normalized_slug": el.NormalizedSlug,
		"file_id":         el.FileId,
	}, actor)
}

func (es *employeeStore) UpdateEmployeeLanguage(ctx context.Context, id string, el *entity.EmployeeLanguageInsert, actor string) error {
	query := `
	UPDATE employee_languages SET
		name = :name,
		academic_degree = :academicDegree,
		slug = :slug,
		normalized_slug = :normalizedSlug,
		file_id = :fileId,
		updated_at = :updatedAt,
		updated_by = :updatedBy
	WHERE id = :id AND deleted = FALSE`
	err := ExecNamed(ctx, es.DB(), query, es.updateParams(id, actor, map[string]any{
		"name":           el.Name,
		"academicDegree": el.AcademicDegree,
		"slug":           el.Slug,
		"normalizedSlug": el.NormalizedSlug,
		"fileId":         el.FileId,
	}))
	if err != nil {
		return fmt.Errorf("can't update employee language: %w", err)
	}
	return nil
}

func (es *employeeStore) DeleteEmployeeLanguageById(ctx context.Context, id, actor string) (int64, error) {
	return es.softDelete(ctx, employeeTables.translation, "id", id, actor)
}

func (es *employeeStore) DeleteEmployeeLanguages(ctx context.Context, employeeId, actor string) (int64, error) {
	return es.unlinkAll(ctx, employeeTables.translation, employeeTables.parentKey, employeeId, actor)
}

package store

import (
	"context"
	"fmt"

	"github.com/lkphuong/api-homepage/internal/dependency"
	"github.com/lkphuong/api-homepage/internal/entity"
	"github.com/lkphuong/api-homepage/internal/slug"
)

var languageColumns = append([]string{"id", "code", "name", "slug", "normalized_slug", "published"}, auditColumns...)

type languageStore struct {
	*MYSQLStore
}

// Language returns an object implementing language interface
func (ms *MYSQLStore) Language() dependency.Language {
	return &languageStore{
		MYSQLStore: ms,
	}
}

func (ls *languageStore) GetLanguageById(ctx context.Context, id string) (*entity.Language, error) {
	query := fmt.Sprintf(`SELECT %s FROM languages l WHERE l.id = :id AND %s`,
		columns("l", "", languageColumns...), notDeleted("l"))
	l, err := QueryNamedOptional[entity.Language](ctx, ls.DB(), query, map[string]any{"id": id})
	if err != nil {
		return nil, fmt.Errorf("failed to get language by id %s: %w", id, err)
	}
	return l, nil
}

func (ls *languageStore) GetLanguageBySlug(ctx context.Context, normalizedSlug string) (*entity.Language, error) {
	query := fmt.Sprintf(`SELECT %s FROM languages l WHERE l.normalized_slug = :slug AND %s LIMIT 1`,
		columns("l", "", languageColumns...), notDeleted("l"))
	l, err := QueryNamedOptional[entity.Language](ctx, ls.DB(), query, map[string]any{"slug": normalizedSlug})
	if err != nil {
		return nil, fmt.Errorf("failed to get language by slug %s: %w", normalizedSlug, err)
	}
	return l, nil
}

func languageWhere(input string) string {
	where := " WHERE " + notDeleted("l")
	if input != "" {
		where += " AND l.normalized_slug LIKE :search"
	}
	return where
}

func (ls *languageStore) GetLanguagesPaged(ctx context.Context, offset, limit int, input string) ([]entity.Language, error) {
	query := fmt.Sprintf(`SELECT %s FROM languages l`, columns("l", "", languageColumns...)) +
		languageWhere(input) + ` ORDER BY l.created_at DESC LIMIT :limit OFFSET :offset`
	languages, err := QueryListNamed[entity.Language](ctx, ls.DB(), query, map[string]any{
		"search": slug.Pattern(input),
		"limit":  limit,
		"offset": offset,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to get languages: %w", err)
	}
	return languages, nil
}

func (ls *languageStore) CountLanguages(ctx context.Context, input string) (int, error) {
	n, err := QueryCountNamed(ctx, ls.DB(), `SELECT COUNT(*) FROM languages l`+languageWhere(input), map[string]any{
		"search": slug.Pattern(input),
	})
	if err != nil {
		return 0, fmt.Errorf("failed to count languages: %w", err)
	}
	return n, nil
}

func (ls *languageStore) CountAllLanguages(ctx context.Context) (int, error) {
	n, err := QueryCountNamed(ctx, ls.DB(), `SELECT COUNT(*) FROM languages`, nil)
	if err != nil {
		return 0, fmt.Errorf("failed to count all languages: %w", err)
	}
	return n, nil
}

func (ls *languageStore) AddLanguage(ctx context.Context, l *entity.LanguageInsert, actor string) (string, error) {
	return ls.insertRow(ctx, "languages", map[string]any{
		"code":            l.Code,
		"name":            l.Name,
		"slug":            l.Slug,
		"normalized_slug": l.NormalizedSlug,
		"published":       l.Published,
	}, actor)
}

// UpdateLanguage changes name, slugs and published. The code never changes.
func (ls *languageStore) UpdateLanguage(ctx context.Context, id string, l *entity.LanguageInsert, actor string) error {
	query := `
	UPDATE languages SET
		name = :name,
		slug = :slug,
		normalized_slug = :normalizedSlug,
		published = :published,
		updated_at = :updatedAt,
		updated_by = :updatedBy
	WHERE id = :id AND deleted = FALSE`
	err := ExecNamed(ctx, ls.DB(), query, ls.updateParams(id, actor, map[string]any{
		"name":           l.Name,
		"slug":           l.Slug,
		"normalizedSlug": l.NormalizedSlug,
		"published":      l.Published,
	}))
	if err != nil {
		return fmt.Errorf("failed to update language: %w", err)
	}
	return nil
}

func (ls *languageStore) DeleteLanguageById(ctx context.Context, id, actor string) (int64, error) {
	return ls.softDelete(ctx, "languages", "id", id, actor)
}

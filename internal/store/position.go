package store

import (
	"context"
	"fmt"

	"github.com/lkphuong/api-homepage/internal/dependency"
	"github.com/lkphuong/api-homepage/internal/entity"
)

var positionTables = translatable{
	parent:       "positions",
	translation:  "position_languages",
	parentKey:    "position_id",
	prefix:       "position",
	languageCols: []string{"title"},
}

type positionStore struct {
	*MYSQLStore
}

// Position returns an object implementing position interface
func (ms *MYSQLStore) Position() dependency.Position {
	return &positionStore{
		MYSQLStore: ms,
	}
}

func (ps *positionStore) GetPositionById(ctx context.Context, id string) (*entity.Position, error) {
	return getParent[entity.Position](ctx, ps.DB(), positionTables, id)
}

func (ps *positionStore) GetPositionsPaged(ctx context.Context, offset, limit int, languageId, input string) ([]entity.PositionListItem, error) {
	return getPaged[entity.PositionListItem](ctx, ps.DB(), positionTables, offset, limit, languageId, input)
}

func (ps *positionStore) CountPositions(ctx context.Context, languageId, input string) (int, error) {
	return countPaged(ctx, ps.DB(), positionTables, languageId, input)
}

func (ps *positionStore) AddPosition(ctx context.Context, p *entity.PositionInsert, actor string) (string, error) {
	return ps.insertRow(ctx, positionTables.parent, map[string]any{
		"published": p.Published,
	}, actor)
}

func (ps *positionStore) UpdatePosition(ctx context.Context, id string, p *entity.PositionInsert, actor string) error {
	query := `
	UPDATE positions SET
		published = :published,
		updated_at = :updatedAt,
		updated_by = :updatedBy
	WHERE id = :id AND deleted = FALSE`
	err := ExecNamed(ctx, ps.DB(), query, ps.updateParams(id, actor, map[string]any{
		"published": p.Published,
	}))
	if err != nil {
		return fmt.Errorf("can't update position: %w", err)
	}
	return nil
}

func (ps *positionStore) DeletePositionById(ctx context.Context, id, actor string) (int64, error) {
	return ps.softDelete(ctx, positionTables.parent, "id", id, actor)
}

func (ps *positionStore) ResolvePositionLanguage(ctx context.Context, positionId, languageId, defaultLanguageId string) (*entity.PositionLanguageFull, error) {
	return resolveLanguage[entity.PositionLanguageFull](ctx, ps.DB(), positionTables, positionId, languageId, defaultLanguageId)
}

func (ps *positionStore) GetPositionLanguage(ctx context.Context, positionId, languageId string) (*entity.PositionLanguage, error) {
	return getLanguage[entity.PositionLanguage](ctx, ps.DB(), positionTables, positionId, languageId)
}

func (ps *positionStore) AddPositionLanguage(ctx context.Context, pl *entity.PositionLanguageInsert, actor string) (string, error) {
	return ps.insertRow(ctx, positionTables.translation, map[string]any{
		"position_id":     pl.PositionId,
		"language_id":     pl.LanguageId,
		"title":           pl.Title,
		"slug":            pl.Slug,
		"normalized_slug": pl.NormalizedSlug,
	}, actor)
}

func (ps *positionStore) UpdatePositionLanguage(ctx context.Context, id string, pl *entity.PositionLanguageInsert, actor string) error {
	query := `
	UPDATE position_languages SET
		title = :title,
		slug = :slug,
		normalized_slug = :normalizedSlug,
		updated_at = :updatedAt,
		updated_by = :updatedBy
	WHERE id = :id AND deleted = FALSE`
	err := ExecNamed(ctx, ps.DB(), query, ps.updateParams(id, actor, map[string]any{
		"title":          pl.Title,
		"slug":           pl.Slug,
		"normalizedSlug": pl.NormalizedSlug,
	}))
	if err != nil {
		return fmt.Errorf("can't update position language: %w", err)
	}
	return nil
}

func (ps *positionStore) DeletePositionLanguageById(ctx context.Context, id, actor string) (int64, error) {
	return ps.softDelete(ctx, positionTables.translation, "id", id, actor)
}

func (ps *positionStore) DeletePositionLanguages(ctx context.Context, positionId, actor string) (int64, error) {
	return ps.unlinkAll(ctx, positionTables.translation, positionTables.parentKey, positionId, actor)
}

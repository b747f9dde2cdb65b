package store

import (
	"context"
	"fmt"

	"github.com/lkphuong/api-homepage/internal/dependency"
	"github.com/lkphuong/api-homepage/internal/entity"
)

var linkColumns = append([]string{"id", "language_id", "title", "url"}, auditColumns...)

type linkStore struct {
	*MYSQLStore
}

// Link returns an object implementing link interface
func (ms *MYSQLStore) Link() dependency.Link {
	return &linkStore{
		MYSQLStore: ms,
	}
}

func (ls *linkStore) GetLinks(ctx context.Context, languageId string) ([]entity.LinkLanguage, error) {
	query := fmt.Sprintf(`
	SELECT %s FROM link_languages l
	WHERE l.language_id = :languageId AND %s
	ORDER BY l.created_at ASC, l.id ASC`,
		columns("l", "", linkColumns...), notDeleted("l"))
	links, err := QueryListNamed[entity.LinkLanguage](ctx, ls.DB(), query, map[string]any{"languageId": languageId})
	if err != nil {
		return nil, fmt.Errorf("can't get links: %w", err)
	}
	return links, nil
}

func (ls *linkStore) GetLinksByIds(ctx context.Context, ids []string) ([]entity.LinkLanguage, error) {
	if len(ids) == 0 {
		return []entity.LinkLanguage{}, nil
	}
	query := fmt.Sprintf(`SELECT %s FROM link_languages l WHERE l.id IN (:ids) AND %s`,
		columns("l", "", linkColumns...), notDeleted("l"))
	links, err := QueryListNamed[entity.LinkLanguage](ctx, ls.DB(), query, map[string]any{"ids": ids})
	if err != nil {
		return nil, fmt.Errorf("can't get links by ids: %w", err)
	}
	return links, nil
}

func (ls *linkStore) UpdateLinkURL(ctx context.Context, id, url, actor string) error {
	query := `
	UPDATE link_languages SET
		url = :url,
		updated_at = :updatedAt,
		updated_by = :updatedBy
	WHERE id = :id AND deleted = FALSE`
	err := ExecNamed(ctx, ls.DB(), query, ls.updateParams(id, actor, map[string]any{
		"url": url,
	}))
	if err != nil {
		return fmt.Errorf("can't update link: %w", err)
	}
	return nil
}

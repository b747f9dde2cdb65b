package store

import (
	"context"
	"fmt"

	"github.com/lkphuong/api-homepage/internal/dependency"
	"github.com/lkphuong/api-homepage/internal/entity"
)

var contentColumns = append([]string{"id", "source_id", "content"}, auditColumns...)

type footerStore struct {
	*MYSQLStore
}

// Footer returns an object implementing footer interface
func (ms *MYSQLStore) Footer() dependency.Footer {
	return &footerStore{
		MYSQLStore: ms,
	}
}

// GetFooter returns the oldest live footer of a language with its content.
func (fs *footerStore) GetFooter(ctx context.Context, languageId string) (*entity.FooterFull, error) {
	query := fmt.Sprintf(`
	SELECT %s, %s
	FROM footer_languages fl
	INNER JOIN contents c ON c.source_id = fl.id AND %s
	WHERE fl.language_id = :languageId AND %s
	ORDER BY fl.created_at ASC LIMIT 1`,
		columns("fl", "", append([]string{"id", "language_id"}, auditColumns...)...),
		columns("c", "content", contentColumns...),
		notDeleted("c"), notDeleted("fl"))
	f, err := QueryNamedOptional[entity.FooterFull](ctx, fs.DB(), query, map[string]any{"languageId": languageId})
	if err != nil {
		return nil, fmt.Errorf("can't get footer: %w", err)
	}
	return f, nil
}

// AddFooter inserts a footer row and its content row.
func (fs *footerStore) AddFooter(ctx context.Context, languageId, content, actor string) (string, error) {
	id, err := fs.insertRow(ctx, "footer_languages", map[string]any{
		"language_id": languageId,
	}, actor)
	if err != nil {
		return "", err
	}
	if _, err := fs.insertRow(ctx, "contents", map[string]any{
		"source_id": id,
		"content":   content,
	}, actor); err != nil {
		return "", err
	}
	return id, nil
}

func (fs *footerStore) UpdateFooterContent(ctx context.Context, contentId, content, actor string) error {
	query := `
	UPDATE contents SET
		content = :content,
		updated_at = :updatedAt,
		updated_by = :updatedBy
	WHERE id = :id AND deleted = FALSE`
	err := ExecNamed(ctx, fs.DB(), query, fs.updateParams(contentId, actor, map[string]any{
		"content": content,
	}))
	if err != nil {
		return fmt.Errorf("can't update footer content: %w", err)
	}
	return nil
}

package store

import (
	"context"
	"fmt"

	"github.com/lkphuong/api-homepage/internal/dependency"
	"github.com/lkphuong/api-homepage/internal/entity"
)

type fileStore struct {
	*MYSQLStore
}

// Files returns an object implementing files interface
func (ms *MYSQLStore) Files() dependency.Files {
	return &fileStore{
		MYSQLStore: ms,
	}
}

func (fls *fileStore) AddFile(ctx context.Context, f *entity.FileInsert, actor string) (string, error) {
	return fls.insertRow(ctx, "files", map[string]any{
		"original_name": f.OriginalName,
		"file_name":     f.FileName,
		"path":          f.Path,
		"url":           f.URL,
		"extension":     f.Extension,
		"drafted":       f.Drafted,
	}, actor)
}

func (fls *fileStore) GetFileById(ctx context.Context, id string) (*entity.File, error) {
	query := fmt.Sprintf(`SELECT %s FROM files f WHERE f.id = :id AND %s`,
		columns("f", "", append(fileColumns, auditColumns...)...), notDeleted("f"))
	f, err := QueryNamedOptional[entity.File](ctx, fls.DB(), query, map[string]any{"id": id})
	if err != nil {
		return nil, fmt.Errorf("can't get file by id: %w", err)
	}
	return f, nil
}

// UpdateFiles writes drafted/deleted flags for every state. Callers run it
// inside a transaction so the batch lands together.
func (fls *fileStore) UpdateFiles(ctx context.Context, states []entity.FileState, actor string) error {
	now := fls.Now()
	for _, s := range states {
		query := `
		UPDATE files SET
			drafted = :drafted,
			updated_at = :updatedAt,
			updated_by = :updatedBy
		WHERE id = :id AND deleted = FALSE`
		params := fls.updateParams(s.Id, actor, map[string]any{"drafted": s.Drafted})
		if s.Deleted {
			query = `
			UPDATE files SET
				drafted = :drafted,
				deleted = TRUE,
				deleted_at = :deletedAt,
				deleted_by = :deletedBy,
				updated_at = :updatedAt,
				updated_by = :updatedBy
			WHERE id = :id AND deleted = FALSE`
			params["deletedAt"] = now
			params["deletedBy"] = actor
		}
		if err := ExecNamed(ctx, fls.DB(), query, params); err != nil {
			return fmt.Errorf("can't update file %s: %w", s.Id, err)
		}
	}
	return nil
}

func (fls *fileStore) DeleteFileById(ctx context.Context, id, actor string) (int64, error) {
	return fls.softDelete(ctx, "files", "id", id, actor)
}

package store

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/lkphuong/api-homepage/internal/dependency"
	"github.com/lkphuong/api-homepage/internal/slug"
)

// auditColumns are present on every table.
var auditColumns = []string{
	"active", "deleted", "deleted_at", "deleted_by",
	"created_at", "created_by", "updated_at", "updated_by",
}

var fileColumns = []string{"id", "original_name", "file_name", "path", "url", "extension", "drafted"}

// notDeleted is the default scope every query applies to every joined table.
func notDeleted(alias string) string {
	return alias + ".deleted = FALSE"
}

// columns renders a select list. A non-empty prefix nests the columns
// into the struct field tagged with it, e.g. `banner.id`.
func columns(alias, prefix string, cols ...string) string {
	out := make([]string, 0, len(cols))
	for _, c := range cols {
		if prefix == "" {
			out = append(out, fmt.Sprintf("%s.%s AS %s", alias, c, c))
			continue
		}
		out = append(out, fmt.Sprintf("%s.%s AS `%s.%s`", alias, c, prefix, c))
	}
	return strings.Join(out, ", ")
}

// translatable describes a parent table and its per-language table.
type translatable struct {
	parent      string
	translation string
	// parentKey is the translation column referencing the parent.
	parentKey string
	// prefix nests the parent into the full translation row.
	prefix       string
	parentCols   []string
	languageCols []string
	withFile     bool
}

func (t translatable) parentColumns() []string {
	cols := append([]string{"id"}, t.parentCols...)
	cols = append(cols, "published")
	return append(cols, auditColumns...)
}

func (t translatable) languageColumns() []string {
	cols := append([]string{"id", t.parentKey, "language_id"}, t.languageCols...)
	cols = append(cols, "slug", "normalized_slug")
	if t.withFile {
		cols = append(cols, "file_id")
	}
	return append(cols, auditColumns...)
}

func (t translatable) parentQuery() string {
	return fmt.Sprintf(`SELECT %s FROM %s p WHERE p.id = :id AND %s`,
		columns("p", "", t.parentColumns()...), t.parent, notDeleted("p"))
}

func (t translatable) languageQuery() string {
	return fmt.Sprintf(`
	SELECT %s FROM %s tl
	WHERE tl.%s = :parentId AND tl.language_id = :languageId AND %s
	ORDER BY tl.created_at ASC LIMIT 1`,
		columns("tl", "", t.languageColumns()...), t.translation, t.parentKey, notDeleted("tl"))
}

// fullQuery selects a translation joined with its live parent and live file.
func (t translatable) fullQuery() string {
	sel := columns("tl", "", t.languageColumns()...) + ", " + columns("p", t.prefix, t.parentColumns()...)
	join := fmt.Sprintf("INNER JOIN %s p ON p.id = tl.%s AND %s", t.parent, t.parentKey, notDeleted("p"))
	if t.withFile {
		sel += ", " + columns("f", "file", append(fileColumns, auditColumns...)...)
		join += fmt.Sprintf(" INNER JOIN files f ON f.id = tl.file_id AND %s", notDeleted("f"))
	}
	return fmt.Sprintf(`
	SELECT %s FROM %s tl %s
	WHERE tl.%s = :parentId AND tl.language_id = :languageId AND %s
	ORDER BY tl.created_at ASC LIMIT 1`,
		sel, t.translation, join, t.parentKey, notDeleted("tl"))
}

func (t translatable) pagedFrom(search bool) string {
	from := fmt.Sprintf(`
	FROM %s p
	INNER JOIN %s tl ON tl.%s = p.id AND tl.language_id = :languageId AND %s
	WHERE %s`, t.parent, t.translation, t.parentKey, notDeleted("tl"), notDeleted("p"))
	if search {
		from += " AND tl.normalized_slug LIKE :search"
	}
	return from
}

func (t translatable) pagedQuery(search bool) string {
	return fmt.Sprintf(`SELECT %s, %s %s ORDER BY p.created_at DESC LIMIT :limit OFFSET :offset`,
		columns("p", "", t.parentColumns()...),
		columns("tl", "language", t.languageColumns()...),
		t.pagedFrom(search))
}

func (t translatable) countQuery(search bool) string {
	return "SELECT COUNT(*) " + t.pagedFrom(search)
}

func getParent[T any](ctx context.Context, conn dependency.DB, t translatable, id string) (*T, error) {
	p, err := QueryNamedOptional[T](ctx, conn, t.parentQuery(), map[string]any{"id": id})
	if err != nil {
		return nil, fmt.Errorf("can't get %s by id: %w", t.parent, err)
	}
	return p, nil
}

func getLanguage[T any](ctx context.Context, conn dependency.DB, t translatable, parentId, languageId string) (*T, error) {
	l, err := QueryNamedOptional[T](ctx, conn, t.languageQuery(), map[string]any{
		"parentId":   parentId,
		"languageId": languageId,
	})
	if err != nil {
		return nil, fmt.Errorf("can't get %s: %w", t.translation, err)
	}
	return l, nil
}

// resolveLanguage returns the translation in languageId and falls back to
// defaultLanguageId when there is none. A nil result means neither exists
// or the parent is deleted.
func resolveLanguage[T any](ctx context.Context, conn dependency.DB, t translatable, parentId, languageId, defaultLanguageId string) (*T, error) {
	if languageId == "" {
		languageId = defaultLanguageId
	}
	query := t.fullQuery()
	l, err := QueryNamedOptional[T](ctx, conn, query, map[string]any{
		"parentId":   parentId,
		"languageId": languageId,
	})
	if err != nil {
		return nil, fmt.Errorf("can't resolve %s: %w", t.translation, err)
	}
	if l != nil || languageId == defaultLanguageId {
		return l, nil
	}
	l, err = QueryNamedOptional[T](ctx, conn, query, map[string]any{
		"parentId":   parentId,
		"languageId": defaultLanguageId,
	})
	if err != nil {
		return nil, fmt.Errorf("can't resolve default %s: %w", t.translation, err)
	}
	return l, nil
}

func pagedParams(languageId, input string) map[string]any {
	return map[string]any{
		"languageId": languageId,
		"search":     slug.Pattern(input),
	}
}

func getPaged[T any](ctx context.Context, conn dependency.DB, t translatable, offset, limit int, languageId, input string) ([]T, error) {
	params := pagedParams(languageId, input)
	params["limit"] = limit
	params["offset"] = offset
	items, err := QueryListNamed[T](ctx, conn, t.pagedQuery(input != ""), params)
	if err != nil {
		return nil, fmt.Errorf("can't get %s paged: %w", t.parent, err)
	}
	return items, nil
}

func countPaged(ctx context.Context, conn dependency.DB, t translatable, languageId, input string) (int, error) {
	n, err := QueryCountNamed(ctx, conn, t.countQuery(input != ""), pagedParams(languageId, input))
	if err != nil {
		return 0, fmt.Errorf("can't count %s: %w", t.parent, err)
	}
	return n, nil
}

// insertRow adds a row with a fresh id and the insert audit columns.
func (ms *MYSQLStore) insertRow(ctx context.Context, table string, row map[string]any, actor string) (string, error) {
	id := uuid.NewString()
	row["id"] = id
	if _, ok := row["active"]; !ok {
		row["active"] = true
	}
	row["deleted"] = false
	row["created_at"] = ms.Now()
	row["created_by"] = actor
	if err := BulkInsert(ctx, ms.DB(), table, []map[string]any{row}); err != nil {
		return "", fmt.Errorf("can't insert into %s: %w", table, err)
	}
	return id, nil
}

// updateParams adds the update audit columns to params.
func (ms *MYSQLStore) updateParams(id, actor string, params map[string]any) map[string]any {
	params["id"] = id
	params["updatedAt"] = ms.Now()
	params["updatedBy"] = actor
	return params
}

// softDelete flags every live row of table with column = value as deleted.
func (ms *MYSQLStore) softDelete(ctx context.Context, table, column, value, actor string) (int64, error) {
	query := fmt.Sprintf(`
	UPDATE %s SET deleted = TRUE, deleted_at = :deletedAt, deleted_by = :deletedBy
	WHERE %s = :value AND deleted = FALSE`, table, column)
	n, err := ExecNamedAffected(ctx, ms.DB(), query, map[string]any{
		"deletedAt": ms.Now(),
		"deletedBy": actor,
		"value":     value,
	})
	if err != nil {
		return 0, fmt.Errorf("can't soft delete from %s: %w", table, err)
	}
	return n, nil
}

// unlinkAll flags every row of table with column = value as deleted,
// including rows that already were. The affected count is the number of rows
// ever linked to value, and earlier delete audit columns are kept.
func (ms *MYSQLStore) unlinkAll(ctx context.Context, table, column, value, actor string) (int64, error) {
	query := fmt.Sprintf(`
	UPDATE %s SET deleted = TRUE,
		deleted_at = COALESCE(deleted_at, :deletedAt),
		deleted_by = COALESCE(deleted_by, :deletedBy)
	WHERE %s = :value`, table, column)
	n, err := ExecNamedAffected(ctx, ms.DB(), query, map[string]any{
		"deletedAt": ms.Now(),
		"deletedBy": actor,
		"value":     value,
	})
	if err != nil {
		return 0, fmt.Errorf("can't unlink rows of %s: %w", table, err)
	}
	return n, nil
}

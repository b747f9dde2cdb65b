package store

import (
	"context"
	"fmt"

	"github.com/lkphuong/api-homepage/internal/dependency"
	"github.com/lkphuong/api-homepage/internal/entity"
)

var eventTables = translatable{
	parent:       "events",
	translation:  "event_languages",
	parentKey:    "event_id",
	prefix:       "event",
	parentCols:   []string{"start_date", "end_date"},
	languageCols: []string{"title"},
	withFile:     true,
}

type eventStore struct {
	*MYSQLStore
}

// Event returns an object implementing event interface
func (ms *MYSQLStore) Event() dependency.Event {
	return &eventStore{
		MYSQLStore: ms,
	}
}

func (es *eventStore) GetEventById(ctx context.Context, id string) (*entity.Event, error) {
	return getParent[entity.Event](ctx, es.DB(), eventTables, id)
}

func (es *eventStore) GetEventsPaged(ctx context.Context, offset, limit int, languageId, input string) ([]entity.EventListItem, error) {
	return getPaged[entity.EventListItem](ctx, es.DB(), eventTables, offset, limit, languageId, input)
}

func (es *eventStore) CountEvents(ctx context.Context, languageId, input string) (int, error) {
	return countPaged(ctx, es.DB(), eventTables, languageId, input)
}

func (es *eventStore) AddEvent(ctx context.Context, e *entity.EventInsert, actor string) (string, error) {
	return es.insertRow(ctx, eventTables.parent, map[string]any{
		"start_date": e.StartDate,
		"end_date":   e.EndDate,
		"published":  e.Published,
	}, actor)
}

func (es *eventStore) UpdateEvent(ctx context.Context, id string, e *entity.EventInsert, actor string) error {
	query := `
	UPDATE events SET
		start_date = :startDate,
		end_date = :endDate,
		published = :published,
		updated_at = :updatedAt,
		updated_by = :updatedBy
	WHERE id = :id AND deleted = FALSE`
	err := ExecNamed(ctx, es.DB(), query, es.updateParams(id, actor, map[string]any{
		"startDate": e.StartDate,
		"endDate":   e.EndDate,
		"published": e.Published,
	}))
	if err != nil {
		return fmt.Errorf("can't update event: %w", err)
	}
	return nil
}

func (es *eventStore) DeleteEventById(ctx context.Context, id, actor string) (int64, error) {
	return es.softDelete(ctx, eventTables.parent, "id", id, actor)
}

func (es *eventStore) ResolveEventLanguage(ctx context.Context, eventId, languageId, defaultLanguageId string) (*entity.EventLanguageFull, error) {
	return resolveLanguage[entity.EventLanguageFull](ctx, es.DB(), eventTables, eventId, languageId, defaultLanguageId)
}

func (es *eventStore) GetEventLanguage(ctx context.Context, eventId, languageId string) (*entity.EventLanguage, error) {
	return getLanguage[entity.EventLanguage](ctx, es.DB(), eventTables, eventId, languageId)
}

func (es *eventStore) AddEventLanguage(ctx context.Context, el *entity.EventLanguageInsert, actor string) (string, error) {
	return es.insertRow(ctx, eventTables.translation, map[string]any{
		"event_id":        el.EventId,
		"language_id":     el.LanguageId,
		"title":           el.Title,
		"slug":            el.Slug,
		"normalized_slug": el.NormalizedSlug,
		"file_id":         el.FileId,
	}, actor)
}

func (es *eventStore) UpdateEventLanguage(ctx context.Context, id string, el *entity.EventLanguageInsert, actor string) error {
	query := `
	UPDATE event_languages SET
		title = :title,
		slug = :slug,
		normalized_slug = :normalizedSlug,
		file_id = :fileId,
		updated_at = :updatedAt,
		updated_by = :updatedBy
	WHERE id = :id AND deleted = FALSE`
	err := ExecNamed(ctx, es.DB(), query, es.updateParams(id, actor, map[string]any{
		"title":          el.Title,
		"slug":           el.Slug,
		"normalizedSlug": el.NormalizedSlug,
		"fileId":         el.FileId,
	}))
	if err != nil {
		return fmt.Errorf("can't update event language: %w", err)
	}
	return nil
}

func (es *eventStore) DeleteEventLanguageById(ctx context.Context, id, actor string) (int64, error) {
	return es.softDelete(ctx, eventTables.translation, "id", id, actor)
}

func (es *eventStore) DeleteEventLanguages(ctx context.Context, eventId, actor string) (int64, error) {
	return es.unlinkAll(ctx, eventTables.translation, eventTables.parentKey, eventId, actor)
}

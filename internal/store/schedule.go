package store

import (
	"context"
	"fmt"

	"github.com/lkphuong/api-homepage/internal/dependency"
	"github.com/lkphuong/api-homepage/internal/entity"
)

var scheduleTables = translatable{
	parent:       "schedules",
	translation:  "schedule_languages",
	parentKey:    "schedule_id",
	prefix:       "schedule",
	parentCols:   []string{"timeframe"},
	languageCols: []string{"title", "content", "location", "attendee"},
}

type scheduleStore struct {
	*MYSQLStore
}

// Schedule returns an object implementing schedule interface
func (ms *MYSQLStore) Schedule() dependency.Schedule {
	return &scheduleStore{
		MYSQLStore: ms,
	}
}

func (ss *scheduleStore) GetScheduleById(ctx context.Context, id string) (*entity.Schedule, error) {
	return getParent[entity.Schedule](ctx, ss.DB(), scheduleTables, id)
}

func (ss *scheduleStore) GetSchedulesPaged(ctx context.Context, offset, limit int, languageId, input string) ([]entity.ScheduleListItem, error) {
	return getPaged[entity.ScheduleListItem](ctx, ss.DB(), scheduleTables, offset, limit, languageId, input)
}

func (ss *scheduleStore) CountSchedules(ctx context.Context, languageId, input string) (int, error) {
	return countPaged(ctx, ss.DB(), scheduleTables, languageId, input)
}

func (ss *scheduleStore) AddSchedule(ctx context.Context, s *entity.ScheduleInsert, actor string) (string, error) {
	return ss.insertRow(ctx, scheduleTables.parent, map[string]any{
		"timeframe": s.Timeframe,
		"published": s.Published,
	}, actor)
}

func (ss *scheduleStore) UpdateSchedule(ctx context.Context, id string, s *entity.ScheduleInsert, actor string) error {
	query := `
	UPDATE schedules SET
		timeframe = :timeframe,
		published = :published,
		updated_at = :updatedAt,
		updated_by = :updatedBy
	WHERE id = :id AND deleted = FALSE`
	err := ExecNamed(ctx, ss.DB(), query, ss.updateParams(id, actor, map[string]any{
		"timeframe": s.Timeframe,
		"published": s.Published,
	}))
	if err != nil {
		return fmt.Errorf("can't update schedule: %w", err)
	}
	return nil
}

func (ss *scheduleStore) DeleteScheduleById(ctx context.Context, id, actor string) (int64, error) {
	return ss.softDelete(ctx, scheduleTables.parent, "id", id, actor)
}

func (ss *scheduleStore) ResolveScheduleLanguage(ctx context.Context, scheduleId, languageId, defaultLanguageId string) (*entity.ScheduleLanguageFull, error) {
	return resolveLanguage[entity.ScheduleLanguageFull](ctx, ss.DB(), scheduleTables, scheduleId, languageId, defaultLanguageId)
}

func (ss *scheduleStore) GetScheduleLanguage(ctx context.Context, scheduleId, languageId string) (*entity.ScheduleLanguage, error) {
	return getLanguage[entity.ScheduleLanguage](ctx, ss.DB(), scheduleTables, scheduleId, languageId)
}

func (ss *scheduleStore) AddScheduleLanguage(ctx context.Context, sl *entity.ScheduleLanguageInsert, actor string) (string, error) {
	return ss.insertRow(ctx, scheduleTables.translation, map[string]any{
		"schedule_id":     sl.ScheduleId,
		"language_id":     sl.LanguageId,
		"title":           sl.Title,
		"content":         sl.Content,
		"location":        sl.Location,
		"attendee":        sl.Attendee,
		"slug":            sl.Slug,
		"normalized_slug": sl.NormalizedSlug,
	}, actor)
}

func (ss *scheduleStore) UpdateScheduleLanguage(ctx context.Context, id string, sl *entity.ScheduleLanguageInsert, actor string) error {
	query := `
	UPDATE schedule_languages SET
		title = :title,
		content = :content,
		location = :location,
		attendee = :attendee,
		slug = :slug,
		normalized_slug = :normalizedSlug,
		updated_at = :updatedAt,
		updated_by = :updatedBy
	WHERE id = :id AND deleted = FALSE`
	err := ExecNamed(ctx, ss.DB(), query, ss.updateParams(id, actor, map[string]any{
		"title":          sl.Title,
		"content":        sl.Content,
		"location":       sl.Location,
		"attendee":       sl.Attendee,
		"slug":           sl.Slug,
		"normalizedSlug": sl.NormalizedSlug,
	}))
	if err != nil {
		return fmt.Errorf("can't update schedule language: %w", err)
	}
	return nil
}

func (ss *scheduleStore) DeleteScheduleLanguageById(ctx context.Context, id, actor string) (int64, error) {
	return ss.softDelete(ctx, scheduleTables.translation, "id", id, actor)
}

func (ss *scheduleStore) DeleteScheduleLanguages(ctx context.Context, scheduleId, actor string) (int64, error) {
	return ss.unlinkAll(ctx, scheduleTables.translation, scheduleTables.parentKey, scheduleId, actor)
}

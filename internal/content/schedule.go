package content

import (
	"context"

	"github.com/lkphuong/api-homepage/internal/dependency"
	"github.com/lkphuong/api-homepage/internal/entity"
	"github.com/lkphuong/api-homepage/internal/slug"
	"github.com/lkphuong/api-homepage/log"
)

var scheduleLabel = label{where: "schedule", name: "[lịch công tác]", title: "[Lịch công tác]"}

func (s *Service) GetSchedule(ctx context.Context, id, languageId string) (*entity.ScheduleLanguageFull, error) {
	sl, err := s.repo.Schedule().ResolveScheduleLanguage(ctx, id, languageId, s.c.DefaultLanguage)
	if err != nil {
		return nil, internal(ctx, log.MethodGet, scheduleLabel.where, err)
	}
	if sl == nil {
		return nil, scheduleLabel.notFound(id)
	}
	return sl, nil
}

func (s *Service) ListSchedules(ctx context.Context, q entity.PageQuery) (*entity.Page[entity.ScheduleListItem], error) {
	languageId := s.language(q.LanguageId)
	return listPage(ctx, s, scheduleLabel.where, q,
		func() (int, error) {
			return s.repo.Schedule().CountSchedules(ctx, languageId, q.Input)
		},
		func(offset, limit int) ([]entity.ScheduleListItem, error) {
			return s.repo.Schedule().GetSchedulesPaged(ctx, offset, limit, languageId, q.Input)
		})
}

func (s *Service) CreateSchedule(ctx context.Context, in *entity.ScheduleInput, actor string) (*entity.ScheduleLanguageFull, error) {
	var id string
	err := s.repo.Tx(ctx, func(ctx context.Context, rep dependency.Repository) error {
		var err error
		id, err = rep.Schedule().AddSchedule(ctx, &entity.ScheduleInsert{Timeframe: in.Timeframe, Published: in.Published}, actor)
		if err != nil {
			return err
		}
		_, err = rep.Schedule().AddScheduleLanguage(ctx, s.scheduleLanguage(id, in), actor)
		return err
	})
	if err != nil {
		return nil, fail(ctx, log.MethodCreate, scheduleLabel, err)
	}
	return s.GetSchedule(ctx, id, in.LanguageId)
}

// UpdateSchedule updates the schedule and upserts or deletes its
// translation in in.LanguageId.
func (s *Service) UpdateSchedule(ctx context.Context, id string, in *entity.ScheduleInput, actor string) (*entity.ScheduleLanguageFull, error) {
	sch, err := s.repo.Schedule().GetScheduleById(ctx, id)
	if err != nil {
		return nil, internal(ctx, log.MethodUpdate, scheduleLabel.where, err)
	}
	if sch == nil {
		return nil, scheduleLabel.notFound(id)
	}

	var deleted bool
	err = s.repo.Tx(ctx, func(ctx context.Context, rep dependency.Repository) error {
		if err := rep.Schedule().UpdateSchedule(ctx, id, &entity.ScheduleInsert{Timeframe: in.Timeframe, Published: in.Published}, actor); err != nil {
			return err
		}
		sl, err := rep.Schedule().GetScheduleLanguage(ctx, id, s.language(in.LanguageId))
		if err != nil {
			return err
		}
		switch {
		case sl != nil && in.Deleted:
			deleted = true
			return dropTranslation(ctx, rep, func() (int64, error) {
				return rep.Schedule().DeleteScheduleLanguageById(ctx, sl.Id, actor)
			}, "", actor)
		case sl != nil:
			return rep.Schedule().UpdateScheduleLanguage(ctx, sl.Id, s.scheduleLanguage(id, in), actor)
		default:
			_, err := rep.Schedule().AddScheduleLanguage(ctx, s.scheduleLanguage(id, in), actor)
			return err
		}
	})
	if err != nil {
		return nil, fail(ctx, log.MethodUpdate, scheduleLabel, err)
	}
	if deleted {
		return nil, nil
	}
	return s.GetSchedule(ctx, id, in.LanguageId)
}

func (s *Service) DeleteSchedule(ctx context.Context, id, actor string) error {
	if err := validateId(id); err != nil {
		return err
	}
	sch, err := s.repo.Schedule().GetScheduleById(ctx, id)
	if err != nil {
		return internal(ctx, log.MethodDelete, scheduleLabel.where, err)
	}
	if sch == nil {
		return scheduleLabel.notFound(id)
	}
	err = s.repo.Tx(ctx, func(ctx context.Context, rep dependency.Repository) error {
		return cascade(
			func() (int64, error) { return rep.Schedule().DeleteScheduleById(ctx, id, actor) },
			func() (int64, error) { return rep.Schedule().DeleteScheduleLanguages(ctx, id, actor) },
		)
	})
	if err != nil {
		return fail(ctx, log.MethodDelete, scheduleLabel, err)
	}
	return nil
}

func (s *Service) scheduleLanguage(scheduleId string, in *entity.ScheduleInput) *entity.ScheduleLanguageInsert {
	return &entity.ScheduleLanguageInsert{
		ScheduleId:     scheduleId,
		LanguageId:     s.language(in.LanguageId),
		Title:          in.Title,
		Slug:           slug.Make(in.Title),
		NormalizedSlug: slug.Normalize(in.Title),
		Content:        s.sanitize.Sanitize(in.Content),
		Location:       in.Location,
		Attendee:       in.Attendee,
	}
}

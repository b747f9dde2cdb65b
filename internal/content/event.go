package content

import (
	"context"
	"time"

	"github.com/lkphuong/api-homepage/internal/dependency"
	"github.com/lkphuong/api-homepage/internal/entity"
	gerr "github.com/lkphuong/api-homepage/internal/errors"
	"github.com/lkphuong/api-homepage/internal/slug"
	"github.com/lkphuong/api-homepage/log"
)

var eventLabel = label{where: "event", name: "[sự kiện]", title: "[Sự kiện]"}

// GetEvent resolves an event in languageId, falling back to the default language.
func (s *Service) GetEvent(ctx context.Context, id, languageId string) (*entity.EventLanguageFull, error) {
	el, err := s.repo.Event().ResolveEventLanguage(ctx, id, languageId, s.c.DefaultLanguage)
	if err != nil {
		return nil, internal(ctx, log.MethodGet, eventLabel.where, err)
	}
	if el == nil {
		return nil, eventLabel.notFound(id)
	}
	return el, nil
}

func (s *Service) ListEvents(ctx context.Context, q entity.PageQuery) (*entity.Page[entity.EventListItem], error) {
	languageId := s.language(q.LanguageId)
	return listPage(ctx, s, eventLabel.where, q,
		func() (int, error) {
			return s.repo.Event().CountEvents(ctx, languageId, q.Input)
		},
		func(offset, limit int) ([]entity.EventListItem, error) {
			return s.repo.Event().GetEventsPaged(ctx, offset, limit, languageId, q.Input)
		})
}

func (s *Service) CreateEvent(ctx context.Context, in *entity.EventInput, actor string) (*entity.EventLanguageFull, error) {
	if err := s.requireFile(ctx, eventLabel.where, in.FileId); err != nil {
		return nil, err
	}
	if err := s.checkEventTime(in.StartDate, in.EndDate); err != nil {
		return nil, err
	}

	var id string
	err := s.repo.Tx(ctx, func(ctx context.Context, rep dependency.Repository) error {
		var err error
		id, err = rep.Event().AddEvent(ctx, &entity.EventInsert{
			StartDate: in.StartDate,
			EndDate:   in.EndDate,
			Published: in.Published,
		}, actor)
		if err != nil {
			return err
		}
		if _, err := rep.Event().AddEventLanguage(ctx, s.eventLanguage(id, in), actor); err != nil {
			return err
		}
		return publishFile(ctx, rep, in.FileId, actor)
	})
	if err != nil {
		return nil, fail(ctx, log.MethodCreate, eventLabel, err)
	}
	return s.GetEvent(ctx, id, in.LanguageId)
}

// UpdateEvent updates the event and upserts or deletes its translation in
// in.LanguageId. The result is nil when the translation was deleted.
func (s *Service) UpdateEvent(ctx context.Context, id string, in *entity.EventInput, actor string) (*entity.EventLanguageFull, error) {
	e, err := s.repo.Event().GetEventById(ctx, id)
	if err != nil {
		return nil, internal(ctx, log.MethodUpdate, eventLabel.where, err)
	}
	if e == nil {
		return nil, eventLabel.notFound(id)
	}
	if err := s.requireFile(ctx, eventLabel.where, in.FileId); err != nil {
		return nil, err
	}
	if err := s.checkEventTime(in.StartDate, in.EndDate); err != nil {
		return nil, err
	}

	var deleted bool
	err = s.repo.Tx(ctx, func(ctx context.Context, rep dependency.Repository) error {
		err := rep.Event().UpdateEvent(ctx, id, &entity.EventInsert{
			StartDate: in.StartDate,
			EndDate:   in.EndDate,
			Published: in.Published,
		}, actor)
		if err != nil {
			return err
		}

		el, err := rep.Event().GetEventLanguage(ctx, id, s.language(in.LanguageId))
		if err != nil {
			return err
		}
		switch {
		case el != nil && in.Deleted:
			deleted = true
			return dropTranslation(ctx, rep, func() (int64, error) {
				return rep.Event().DeleteEventLanguageById(ctx, el.Id, actor)
			}, el.FileId, actor)
		case el != nil:
			if err := rep.Event().UpdateEventLanguage(ctx, el.Id, s.eventLanguage(id, in), actor); err != nil {
				return err
			}
			return swapFile(ctx, rep, el.FileId, in.FileId, actor)
		default:
			if _, err := rep.Event().AddEventLanguage(ctx, s.eventLanguage(id, in), actor); err != nil {
				return err
			}
			return publishFile(ctx, rep, in.FileId, actor)
		}
	})
	if err != nil {
		return nil, fail(ctx, log.MethodUpdate, eventLabel, err)
	}
	if deleted {
		return nil, nil
	}
	return s.GetEvent(ctx, id, in.LanguageId)
}

// DeleteEvent soft-deletes an event and all of its translations.
func (s *Service) DeleteEvent(ctx context.Context, id, actor string) error {
	if err := validateId(id); err != nil {
		return err
	}
	e, err := s.repo.Event().GetEventById(ctx, id)
	if err != nil {
		return internal(ctx, log.MethodDelete, eventLabel.where, err)
	}
	if e == nil {
		return eventLabel.notFound(id)
	}
	err = s.repo.Tx(ctx, func(ctx context.Context, rep dependency.Repository) error {
		return cascade(
			func() (int64, error) { return rep.Event().DeleteEventById(ctx, id, actor) },
			func() (int64, error) { return rep.Event().DeleteEventLanguages(ctx, id, actor) },
		)
	})
	if err != nil {
		return fail(ctx, log.MethodDelete, eventLabel, err)
	}
	return nil
}

func (s *Service) eventLanguage(eventId string, in *entity.EventInput) *entity.EventLanguageInsert {
	return &entity.EventLanguageInsert{
		EventId:        eventId,
		LanguageId:     s.language(in.LanguageId),
		Title:          in.Title,
		Slug:           slug.Make(in.Title),
		NormalizedSlug: slug.Normalize(in.Title),
		FileId:         in.FileId,
	}
}

// checkEventTime requires start before end and neither in the past.
func (s *Service) checkEventTime(start, end time.Time) error {
	now := s.repo.Now()
	if !start.Before(end) || start.Before(now) || end.Before(now) {
		return gerr.Validation(gerr.ExitInvalidFormat, msgTimeInvalid)
	}
	return nil
}

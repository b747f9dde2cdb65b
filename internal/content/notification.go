package content

import (
	"context"

	"github.com/lkphuong/api-homepage/internal/dependency"
	"github.com/lkphuong/api-homepage/internal/entity"
	"github.com/lkphuong/api-homepage/internal/slug"
	"github.com/lkphuong/api-homepage/log"
)

var notificationLabel = label{where: "notification", name: "[thông báo]", title: "[Thông báo]"}

func (s *Service) GetNotification(ctx context.Context, id, languageId string) (*entity.NotificationLanguageFull, error) {
	nl, err := s.repo.Notification().ResolveNotificationLanguage(ctx, id, languageId, s.c.DefaultLanguage)
	if err != nil {
		return nil, internal(ctx, log.MethodGet, notificationLabel.where, err)
	}
	if nl == nil {
		return nil, notificationLabel.notFound(id)
	}
	return nl, nil
}

func (s *Service) ListNotifications(ctx context.Context, q entity.PageQuery) (*entity.Page[entity.NotificationListItem], error) {
	languageId := s.language(q.LanguageId)
	return listPage(ctx, s, notificationLabel.where, q,
		func() (int, error) {
			return s.repo.Notification().CountNotifications(ctx, languageId, q.Input)
		},
		func(offset, limit int) ([]entity.NotificationListItem, error) {
			return s.repo.Notification().GetNotificationsPaged(ctx, offset, limit, languageId, q.Input)
		})
}

func (s *Service) CreateNotification(ctx context.Context, in *entity.NotificationInput, actor string) (*entity.NotificationLanguageFull, error) {
	var id string
	err := s.repo.Tx(ctx, func(ctx context.Context, rep dependency.Repository) error {
		var err error
		id, err = rep.Notification().AddNotification(ctx, &entity.NotificationInsert{Published: in.Published}, actor)
		if err != nil {
			return err
		}
		_, err = rep.Notification().AddNotificationLanguage(ctx, s.notificationLanguage(id, in), actor)
		return err
	})
	if err != nil {
		return nil, fail(ctx, log.MethodCreate, notificationLabel, err)
	}
	return s.GetNotification(ctx, id, in.LanguageId)
}

// UpdateNotification updates the notification and upserts or deletes its
// translation in in.LanguageId.
func (s *Service) UpdateNotification(ctx context.Context, id string, in *entity.NotificationInput, actor string) (*entity.NotificationLanguageFull, error) {
	n, err := s.repo.Notification().GetNotificationById(ctx, id)
	if err != nil {
		return nil, internal(ctx, log.MethodUpdate, notificationLabel.where, err)
	}
	if n == nil {
		return nil, notificationLabel.notFound(id)
	}

	var deleted bool
	err = s.repo.Tx(ctx, func(ctx context.Context, rep dependency.Repository) error {
		if err := rep.Notification().UpdateNotification(ctx, id, &entity.NotificationInsert{Published: in.Published}, actor); err != nil {
			return err
		}
		nl, err := rep.Notification().GetNotificationLanguage(ctx, id, s.language(in.LanguageId))
		if err != nil {
			return err
		}
		switch {
		case nl != nil && in.Deleted:
			deleted = true
			return dropTranslation(ctx, rep, func() (int64, error) {
				return rep.Notification().DeleteNotificationLanguageById(ctx, nl.Id, actor)
			}, "", actor)
		case nl != nil:
			return rep.Notification().UpdateNotificationLanguage(ctx, nl.Id, s.notificationLanguage(id, in), actor)
		default:
			_, err := rep.Notification().AddNotificationLanguage(ctx, s.notificationLanguage(id, in), actor)
			return err
		}
	})
	if err != nil {
		return nil, fail(ctx, log.MethodUpdate, notificationLabel, err)
	}
	if deleted {
		return nil, nil
	}
	return s.GetNotification(ctx, id, in.LanguageId)
}

func (s *Service) DeleteNotification(ctx context.Context, id, actor string) error {
	if err := validateId(id); err != nil {
		return err
	}
	n, err := s.repo.Notification().GetNotificationById(ctx, id)
	if err != nil {
		return internal(ctx, log.MethodDelete, notificationLabel.where, err)
	}
	if n == nil {
		return notificationLabel.notFound(id)
	}
	err = s.repo.Tx(ctx, func(ctx context.Context, rep dependency.Repository) error {
		return cascade(
			func() (int64, error) { return rep.Notification().DeleteNotificationById(ctx, id, actor) },
			func() (int64, error) { return rep.Notification().DeleteNotificationLanguages(ctx, id, actor) },
		)
	})
	if err != nil {
		return fail(ctx, log.MethodDelete, notificationLabel, err)
	}
	return nil
}

func (s *Service) notificationLanguage(notificationId string, in *entity.NotificationInput) *entity.NotificationLanguageInsert {
	return &entity.NotificationLanguageInsert{
		NotificationId: notificationId,
		LanguageId:     s.language(in.LanguageId),
		Title:          in.Title,
		Slug:           slug.Make(in.Title),
		NormalizedSlug: slug.Normalize(in.Title),
	}
}

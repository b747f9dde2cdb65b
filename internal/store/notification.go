package store

import (
	"context"
	"fmt"

	"github.com/lkphuong/api-homepage/internal/dependency"
	"github.com/lkphuong/api-homepage/internal/entity"
)

var notificationTables = translatable{
	parent:       "notifications",
	translation:  "notification_languages",
	parentKey:    "notification_id",
	prefix:       "notification",
	languageCols: []string{"title"},
}

type notificationStore struct {
	*MYSQLStore
}

// Notification returns an object implementing notification interface
func (ms *MYSQLStore) Notification() dependency.Notification {
	return &notificationStore{
		MYSQLStore: ms,
	}
}

func (ns *notificationStore) GetNotificationById(ctx context.Context, id string) (*entity.Notification, error) {
	return getParent[entity.Notification](ctx, ns.DB(), notificationTables, id)
}

func (ns *notificationStore) GetNotificationsPaged(ctx context.Context, offset, limit int, languageId, input string) ([]entity.NotificationListItem, error) {
	return getPaged[entity.NotificationListItem](ctx, ns.DB(), notificationTables, offset, limit, languageId, input)
}

func (ns *notificationStore) CountNotifications(ctx context.Context, languageId, input string) (int, error) {
	return countPaged(ctx, ns.DB(), notificationTables, languageId, input)
}

func (ns *notificationStore) AddNotification(ctx context.Context, n *entity.NotificationInsert, actor string) (string, error) {
	return ns.insertRow(ctx, notificationTables.parent, map[string]any{
		"published": n.Published,
	}, actor)
}

func (ns *notificationStore) UpdateNotification(ctx context.Context, id string, n *entity.NotificationInsert, actor string) error {
	query := `
	UPDATE notifications SET
		published = :published,
		updated_at = :updatedAt,
		updated_by = :updatedBy
	WHERE id = :id AND deleted = FALSE`
	err := ExecNamed(ctx, ns.DB(), query, ns.updateParams(id, actor, map[string]any{
		"published": n.Published,
	}))
	if err != nil {
		return fmt.Errorf("can't update notification: %w", err)
	}
	return nil
}

func (ns *notificationStore) DeleteNotificationById(ctx context.Context, id, actor string) (int64, error) {
	return ns.softDelete(ctx, notificationTables.parent, "id", id, actor)
}

func (ns *notificationStore) ResolveNotificationLanguage(ctx context.Context, notificationId, languageId, defaultLanguageId string) (*entity.NotificationLanguageFull, error) {
	return resolveLanguage[entity.NotificationLanguageFull](ctx, ns.DB(), notificationTables, notificationId, languageId, defaultLanguageId)
}

func (ns *notificationStore) GetNotificationLanguage(ctx context.Context, notificationId, languageId string) (*entity.NotificationLanguage, error) {
	return getLanguage[entity.NotificationLanguage](ctx, ns.DB(), notificationTables, notificationId, languageId)
}

func (ns *notificationStore) AddNotificationLanguage(ctx context.Context, nl *entity.NotificationLanguageInsert, actor string) (string, error) {
	return ns.insertRow(ctx, notificationTables.translation, map[string]any{
		"notification_id": nl.NotificationId,
		"language_id":     nl.LanguageId,
		"title":           nl.Title,
		"slug":            nl.Slug,
		"normalized_slug": nl.NormalizedSlug,
	}, actor)
}

func (ns *notificationStore) UpdateNotificationLanguage(ctx context.Context, id string, nl *entity.NotificationLanguageInsert, actor string) error {
	query := `
	UPDATE notification_languages SET
		title = :title,
		slug = :slug,
		normalized_slug = :normalizedSlug,
		updated_at = :updatedAt,
		updated_by = :updatedBy
	WHERE id = :id AND deleted = FALSE`
	err := ExecNamed(ctx, ns.DB(), query, ns.updateParams(id, actor, map[string]any{
		"title":          nl.Title,
		"slug":           nl.Slug,
		"normalizedSlug": nl.NormalizedSlug,
	}))
	if err != nil {
		return fmt.Errorf("can't update notification language: %w", err)
	}
	return nil
}

func (ns *notificationStore) DeleteNotificationLanguageById(ctx context.Context, id, actor string) (int64, error) {
	return ns.softDelete(ctx, notificationTables.translation, "id", id, actor)
}

func (ns *notificationStore) DeleteNotificationLanguages(ctx context.Context, notificationId, actor string) (int64, error) {
	return ns.unlinkAll(ctx, notificationTables.translation, notificationTables.parentKey, notificationId, actor)
}

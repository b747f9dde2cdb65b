package store

import (
	"context"
	"testing"
	"time"

	"github.com/lkphuong/api-homepage/internal/entity"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestScheduleLanguageFallback(t *testing.T) {
	db := newTestDB(t)
	ctx := context.Background()

	timeframe := time.Date(2024, 5, 20, 14, 30, 0, 0, time.UTC)
	id, err := db.Schedule().AddSchedule(ctx, &entity.ScheduleInsert{Timeframe: timeframe, Published: true}, testActor)
	require.NoError(t, err)

	_, err = db.Schedule().AddScheduleLanguage(ctx, &entity.ScheduleLanguageInsert{
		ScheduleId:     id,
		LanguageId:     testLanguageVI,
		Title:          "Họp hội đồng",
		Slug:           "hop-hoi-dong",
		NormalizedSlug: "hophoidong",
		Content:        "<p>Nội dung</p>",
		Location:       "Phòng A1",
		Attendee:       "Ban giám hiệu",
	}, testActor)
	require.NoError(t, err)

	sl, err := db.Schedule().ResolveScheduleLanguage(ctx, id, testLanguageEN, testLanguageVI)
	require.NoError(t, err)
	require.NotNil(t, sl)
	assert.Equal(t, "Phòng A1", sl.Location)
	assert.True(t, timeframe.Equal(sl.Schedule.Timeframe))

	items, err := db.Schedule().GetSchedulesPaged(ctx, 0, 10, testLanguageEN, "")
	require.NoError(t, err)
	assert.Empty(t, items, "listing joins only the requested language")
}

func TestEmployeeNotificationPosition(t *testing.T) {
	db := newTestDB(t)
	ctx := context.Background()

	fileId, err := db.Files().AddFile(ctx, testFile("avatar.png"), testActor)
	require.NoError(t, err)

	empId, err := db.Employee().AddEmployee(ctx, &entity.EmployeeInsert{Published: true}, testActor)
	require.NoError(t, err)
	_, err = db.Employee().AddEmployeeLanguage(ctx, &entity.EmployeeLanguageInsert{
		EmployeeId:     empId,
		LanguageId:     testLanguageVI,
		Name:           "Nguyễn Văn A",
		Slug:           "nguyen-van-a",
		NormalizedSlug: "nguyenvana",
		AcademicDegree: "Tiến sĩ",
		FileId:         fileId,
	}, testActor)
	require.NoError(t, err)

	el, err := db.Employee().ResolveEmployeeLanguage(ctx, empId, testLanguageVI, testLanguageVI)
	require.NoError(t, err)
	require.NotNil(t, el)
	assert.Equal(t, "Tiến sĩ", el.AcademicDegree)
	assert.Equal(t, fileId, el.File.Id)

	notifId, err := db.Notification().AddNotification(ctx, &entity.NotificationInsert{Published: true}, testActor)
	require.NoError(t, err)
	_, err = db.Notification().AddNotificationLanguage(ctx, &entity.NotificationLanguageInsert{
		NotificationId: notifId,
		LanguageId:     testLanguageEN,
		Title:          "Holiday",
		Slug:           "holiday",
		NormalizedSlug: "holiday",
	}, testActor)
	require.NoError(t, err)

	nl, err := db.Notification().ResolveNotificationLanguage(ctx, notifId, testLanguageVI, testLanguageVI)
	require.NoError(t, err)
	assert.Nil(t, nl, "no translation in the requested or default language")

	posId, err := db.Position().AddPosition(ctx, &entity.PositionInsert{Published: false}, testActor)
	require.NoError(t, err)
	n, err := db.Position().DeletePositionLanguages(ctx, posId, testActor)
	require.NoError(t, err)
	assert.Equal(t, int64(0), n)
}

func TestFooter(t *testing.T) {
	db := newTestDB(t)
	ctx := context.Background()

	f, err := db.Footer().GetFooter(ctx, testLanguageVI)
	require.NoError(t, err)
	assert.Nil(t, f)

	id, err := db.Footer().AddFooter(ctx, testLanguageVI, "<p>Địa chỉ</p>", testActor)
	require.NoError(t, err)

	f, err = db.Footer().GetFooter(ctx, testLanguageVI)
	require.NoError(t, err)
	require.NotNil(t, f)
	assert.Equal(t, id, f.Id)
	assert.Equal(t, id, f.Content.SourceId)
	assert.Equal(t, "<p>Địa chỉ</p>", f.Content.Content)

	require.NoError(t, db.Footer().UpdateFooterContent(ctx, f.Content.Id, "<p>Mới</p>", testActor))

	f, err = db.Footer().GetFooter(ctx, testLanguageVI)
	require.NoError(t, err)
	require.NotNil(t, f)
	assert.Equal(t, "<p>Mới</p>", f.Content.Content)
}

func TestLinks(t *testing.T) {
	db := newTestDB(t)
	ctx := context.Background()

	links, err := db.Link().GetLinks(ctx, testLanguageVI)
	require.NoError(t, err)
	require.Len(t, links, 4)

	ids := []string{links[0].Id, links[1].Id}
	byIds, err := db.Link().GetLinksByIds(ctx, ids)
	require.NoError(t, err)
	assert.Len(t, byIds, 2)

	require.NoError(t, db.Link().UpdateLinkURL(ctx, links[0].Id, "https://facebook.com/school", testActor))

	byIds, err = db.Link().GetLinksByIds(ctx, []string{links[0].Id})
	require.NoError(t, err)
	require.Len(t, byIds, 1)
	assert.Equal(t, "https://facebook.com/school", byIds[0].URL)

	empty, err := db.Link().GetLinksByIds(ctx, nil)
	require.NoError(t, err)
	assert.Empty(t, empty)
}

func TestLanguages(t *testing.T) {
	db := newTestDB(t)
	ctx := context.Background()

	id, err := db.Language().AddLanguage(ctx, &entity.LanguageInsert{
		Code:           "3",
		Name:           "Français",
		Slug:           "francais",
		NormalizedSlug: "francais",
		Published:      true,
	}, testActor)
	require.NoError(t, err)

	l, err := db.Language().GetLanguageBySlug(ctx, "francais")
	require.NoError(t, err)
	require.NotNil(t, l)
	assert.Equal(t, id, l.Id)

	n, err := db.Language().CountLanguages(ctx, "fran")
	require.NoError(t, err)
	assert.Equal(t, 1, n)

	langs, err := db.Language().GetLanguagesPaged(ctx, 0, 10, "")
	require.NoError(t, err)
	require.Len(t, langs, 3)
	assert.Equal(t, id, langs[0].Id)

	deleted, err := db.Language().DeleteLanguageById(ctx, id, testActor)
	require.NoError(t, err)
	assert.Equal(t, int64(1), deleted)

	n, err = db.Language().CountLanguages(ctx, "")
	require.NoError(t, err)
	assert.Equal(t, 2, n)

	n, err = db.Language().CountAllLanguages(ctx)
	require.NoError(t, err)
	assert.Equal(t, 3, n, "deleted languages still count towards the next code")
}

func TestUsersAndPermissions(t *testing.T) {
	db := newTestDB(t)
	ctx := context.Background()

	id, err := db.Users().AddUser(ctx, "admin", "hash", true, testActor)
	require.NoError(t, err)

	u, err := db.Users().GetUserByUsername(ctx, "admin")
	require.NoError(t, err)
	require.NotNil(t, u)
	assert.Equal(t, id, u.Id)
	assert.True(t, u.Active)

	perms, err := db.Permissions().GetPermissions(ctx)
	require.NoError(t, err)
	require.Len(t, perms, 11)

	require.NoError(t, db.Permissions().AddUserPermissions(ctx, id, []string{perms[0].Id, perms[1].Id}, testActor))
	granted, err := db.Permissions().GetUserPermissions(ctx, id)
	require.NoError(t, err)
	assert.Len(t, granted, 2)

	n, err := db.Permissions().DeleteUserPermissions(ctx, id, testActor)
	require.NoError(t, err)
	assert.Equal(t, int64(2), n)

	require.NoError(t, db.Users().UpdateUser(ctx, id, "hash2", false, testActor))
	u, err = db.Users().GetUserById(ctx, id)
	require.NoError(t, err)
	require.NotNil(t, u)
	assert.False(t, u.Active)
	assert.Equal(t, "hash2", u.Password)

	count, err := db.Users().CountUsers(ctx, "adm")
	require.NoError(t, err)
	assert.Equal(t, 1, count)

	users, err := db.Users().GetUsersPaged(ctx, 0, 10, "")
	require.NoError(t, err)
	assert.Len(t, users, 1)

	deleted, err := db.Users().DeleteUserById(ctx, id, testActor)
	require.NoError(t, err)
	assert.Equal(t, int64(1), deleted)
}

package content

import (
	"context"
	"testing"
	"time"

	"github.com/lkphuong/api-homepage/internal/entity"
	gerr "github.com/lkphuong/api-homepage/internal/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEventTime(t *testing.T) {
	db := newTestStore(t)
	s := newTestService(t, db, nil)
	ctx := context.Background()

	future := time.Date(2030, 6, 1, 0, 0, 0, 0, time.UTC)
	cases := []struct {
		name       string
		start, end time.Time
		ok         bool
	}{
		{"future range", future, future.AddDate(0, 0, 1), true},
		{"empty range", future, future, false},
		{"reversed", future.AddDate(0, 0, 1), future, false},
		{"start in the past", time.Date(2020, 1, 1, 0, 0, 0, 0, time.UTC), future, false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			el, err := s.CreateEvent(ctx, &entity.EventInput{
				StartDate:  tc.start,
				EndDate:    tc.end,
				Title:      "Hội thảo",
				FileId:     addFile(t, db, "event.png"),
				LanguageId: languageVI,
				Published:  true,
			}, actor)
			if tc.ok {
				require.NoError(t, err)
				assert.Equal(t, "hoi-thao", el.Slug)
				assert.True(t, el.Event.Published)
				return
			}
			e, ok := gerr.As(err)
			require.True(t, ok)
			assert.Equal(t, msgTimeInvalid, e.Message)
		})
	}
}

func TestEmployeeCRUD(t *testing.T) {
	db := newTestStore(t)
	s := newTestService(t, db, nil)
	ctx := context.Background()

	el, err := s.CreateEmployee(ctx, &entity.EmployeeInput{
		Name:           "Trần Thị B",
		AcademicDegree: "Thạc sĩ",
		FileId:         addFile(t, db, "b.png"),
		LanguageId:     languageVI,
	}, actor)
	require.NoError(t, err)
	assert.Equal(t, "tran-thi-b", el.Slug)

	page, err := s.ListEmployees(ctx, entity.PageQuery{Page: 1, Input: "thi b"})
	require.NoError(t, err)
	require.Len(t, page.Items, 1)
	assert.Equal(t, "Thạc sĩ", page.Items[0].Language.AcademicDegree)

	require.NoError(t, s.DeleteEmployee(ctx, el.Employee.Id, actor))
	_, err = s.ListEmployees(ctx, entity.PageQuery{Page: 1})
	assert.True(t, gerr.Is(err, gerr.KindNoContent))
}

func TestNotificationAndPosition(t *testing.T) {
	db := newTestStore(t)
	s := newTestService(t, db, nil)
	ctx := context.Background()

	nl, err := s.CreateNotification(ctx, &entity.NotificationInput{Title: "Nghỉ lễ", LanguageId: languageVI}, actor)
	require.NoError(t, err)

	got, err := s.UpdateNotification(ctx, nl.Notification.Id, &entity.NotificationInput{
		Title:      "Holiday",
		LanguageId: languageEN,
		Published:  true,
	}, actor)
	require.NoError(t, err)
	assert.Equal(t, "Holiday", got.Title)

	_, err = s.UpdateNotification(ctx, "00000000-0000-4000-8000-000000000000", &entity.NotificationInput{Title: "x"}, actor)
	e, ok := gerr.As(err)
	require.True(t, ok)
	assert.Equal(t, "[Thông báo] không tồn tại (id: 00000000-0000-4000-8000-000000000000)", e.Message)

	pl, err := s.CreatePosition(ctx, &entity.PositionInput{Title: "Giảng viên", LanguageId: languageVI}, actor)
	require.NoError(t, err)
	assert.Equal(t, "giang-vien", pl.Slug)
	require.NoError(t, s.DeletePosition(ctx, pl.Position.Id, actor))

	// deleted positions are no longer found
	err = s.DeletePosition(ctx, pl.Position.Id, actor)
	assert.True(t, gerr.Is(err, gerr.KindNotFound))
}

func TestScheduleSanitizesContent(t *testing.T) {
	db := newTestStore(t)
	s := newTestService(t, db, nil)
	ctx := context.Background()

	sl, err := s.CreateSchedule(ctx, &entity.ScheduleInput{
		Timeframe:  time.Date(2024, 5, 20, 14, 30, 0, 0, time.UTC),
		Title:      "Họp giao ban",
		Content:    `<p>Nội dung</p><script>alert(1)</script>`,
		Location:   "Phòng họp",
		Attendee:   "Toàn thể",
		LanguageId: languageVI,
	}, actor)
	require.NoError(t, err)
	assert.Equal(t, "<p>Nội dung</p>", sl.Content)
	assert.Equal(t, "Phòng họp", sl.Location)
}

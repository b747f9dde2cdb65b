package form

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	gerr "github.com/lkphuong/api-homepage/internal/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	fileId     = "0b8f1a52-2f4c-4f61-9d3e-6a1b2c3d4e5f"
	languageId = "d3f0b8c2-4e1a-4c7b-8f2e-9b5a6c7d8e02"
)

func fieldsOf(t *testing.T, err error) map[string]string {
	t.Helper()
	require.Error(t, err)
	e, ok := gerr.As(err)
	require.True(t, ok, "expected typed error, got %v", err)
	assert.Equal(t, gerr.KindValidation, e.Kind)
	return e.Fields
}

func TestFlagUnmarshal(t *testing.T) {
	cases := []struct {
		in      string
		want    bool
		set     bool
		invalid bool
	}{
		{`true`, true, true, false},
		{`false`, false, true, false},
		{`1`, true, true, false},
		{`0`, false, true, false},
		{`"1"`, true, true, false},
		{`null`, false, false, false},
		{`2`, false, true, true},
		{`"yes"`, false, true, true},
	}
	for _, c := range cases {
		t.Run(c.in, func(t *testing.T) {
			var f Flag
			require.NoError(t, json.Unmarshal([]byte(c.in), &f))
			assert.Equal(t, c.want, f.Bool())
			assert.Equal(t, c.set, f.set)
			assert.Equal(t, c.invalid, f.invalid)
		})
	}

	var absent struct {
		Active Flag `json:"active"`
	}
	require.NoError(t, json.Unmarshal([]byte(`{}`), &absent))
	assert.True(t, absent.Active.Or(true))
}

func TestParseDate(t *testing.T) {
	want := time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)
	for _, s := range []string{"2024-03-01", "2024-03-01T00:00:00Z", "2024-03-01T07:00:00+07:00", "2024-03-01 00:00:00"} {
		got, err := ParseDate(s)
		require.NoError(t, err, s)
		assert.True(t, want.Equal(got), s)
	}
	_, err := ParseDate("01/03/2024")
	assert.Error(t, err)
}

func TestPageRequest(t *testing.T) {
	r := &PageRequest{Page: 1, Pages: 0, LanguageId: languageId}
	assert.NoError(t, r.Validate())

	r = &PageRequest{Page: 0, Pages: -1, LanguageId: "en"}
	fields := fieldsOf(t, r.Validate())
	assert.Equal(t, "Bạn vui lòng nhập [page].", fields["page"])
	assert.Equal(t, "Giá trị [pages] tối thiểu bằng 0.", fields["pages"])
	assert.Equal(t, msgLanguageInvalid, fields["language_id"])
}

func TestDatedRequest(t *testing.T) {
	body := `{"published": 1, "start_date": "2024-03-01", "end_date": "2024-03-31", "title": "  Spring  ", "file_id": "` + fileId + `"}`
	var r DatedRequest
	require.NoError(t, json.Unmarshal([]byte(body), &r))
	require.NoError(t, r.Bind(httptest.NewRequest(http.MethodPost, "/", nil)))

	in := r.ToBannerInput()
	assert.Equal(t, "Spring", in.Title)
	assert.True(t, in.Published)
	assert.False(t, in.Deleted)
	assert.Equal(t, time.Date(2024, 3, 31, 0, 0, 0, 0, time.UTC), in.EndDate)
	assert.Empty(t, in.LanguageId)

	t.Run("first failing rule gives the message", func(t *testing.T) {
		r := &DatedRequest{StartDate: "tomorrow", FileId: "nope", Deleted: Flag{set: true, invalid: true}}
		err := r.Validate()
		fields := fieldsOf(t, err)
		assert.Equal(t, "Giá trị [ngày bắt đầu] không hợp lệ.", err.Error())
		assert.Equal(t, "Bạn vui lòng nhập [ngày kết thúc].", fields["end_date"])
		assert.Equal(t, msgTitleEmpty, fields["title"])
		assert.Equal(t, msgImageInvalid, fields["file_id"])
		assert.Equal(t, msgDeleted, fields["deleted"])
		assert.NotContains(t, fields, "published")
	})
}

func TestScheduleRequestLengths(t *testing.T) {
	long := make([]rune, 501)
	for i := range long {
		long[i] = 'ư'
	}
	r := &ScheduleRequest{
		Timeframe: "2024-05-06T14:30:00Z",
		Title:     "Họp giao ban",
		Content:   string(long),
		Location:  "Phòng 1",
		Attendee:  "Ban giám hiệu",
	}
	fields := fieldsOf(t, r.Validate())
	assert.Equal(t, map[string]string{"content": "[Nội dung] độ dài tối đa 500 kí tự."}, fields)

	r.Content = string(long[:500])
	require.NoError(t, r.Validate())
	assert.Equal(t, time.Date(2024, 5, 6, 14, 30, 0, 0, time.UTC), r.ToInput().Timeframe)
}

func TestLinksRequestNested(t *testing.T) {
	r := &LinksRequest{}
	fields := fieldsOf(t, r.Validate())
	assert.Equal(t, "[Liên kết] không được để trống.", fields["links"])

	r = &LinksRequest{Links: []LinkItem{
		{Id: fileId, URL: "https://example.com"},
		{Id: "x", URL: "not a url"},
	}}
	fields = fieldsOf(t, r.Validate())
	assert.Equal(t, "Giá trị [liên kết] không hợp lệ.", fields["links.1.id"])
	assert.Equal(t, "[Đường dẫn] không hợp lệ.", fields["links.1.url"])
	assert.NotContains(t, fields, "links.0.url")
}

func TestUserRequest(t *testing.T) {
	create := httptest.NewRequest(http.MethodPost, "/", nil)
	update := httptest.NewRequest(http.MethodPut, "/", nil)

	r := &UserRequest{Permissions: []string{fileId}}
	fields := fieldsOf(t, r.Bind(create))
	assert.Equal(t, msgUsernameEmpty, fields["username"])
	assert.Equal(t, msgPasswordEmpty, fields["password"])

	r = &UserRequest{Permissions: []string{fileId}}
	require.NoError(t, r.Bind(update))
	assert.True(t, r.ToInput().Active)

	r = &UserRequest{Username: "admin", Password: "secret", Active: NewFlag(false), Permissions: []string{"BANNER"}}
	fields = fieldsOf(t, r.Bind(create))
	assert.Equal(t, msgPermissionUnknow, fields["permissions.0"])

	r.Permissions = []string{fileId}
	require.NoError(t, r.Bind(create))
	assert.False(t, r.ToInput().Active)
}

func TestLoginRequest(t *testing.T) {
	r := &LoginRequest{Username: " admin "}
	fields := fieldsOf(t, r.Bind(httptest.NewRequest(http.MethodPost, "/", nil)))
	assert.Equal(t, "admin", r.Username)
	assert.Equal(t, map[string]string{"password": msgPasswordEmpty}, fields)

	assert.Error(t, (&RenewRequest{}).Validate())
}

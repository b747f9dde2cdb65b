package content

import (
	"context"
	"errors"
	"io"
	"strings"
	"sync"
	"testing"

	"github.com/lkphuong/api-homepage/internal/entity"
	gerr "github.com/lkphuong/api-homepage/internal/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type memoryFiles struct {
	mu      sync.Mutex
	objects map[string]string
	fail    bool
}

func newMemoryFiles() *memoryFiles {
	return &memoryFiles{objects: map[string]string{}}
}

func (m *memoryFiles) Upload(ctx context.Context, folder, name, contentType string, r io.Reader, size int64) (*entity.StoredObject, error) {
	if m.fail {
		return nil, errors.New("bucket unavailable")
	}
	b, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	path := folder + "/" + name
	m.objects[path] = string(b)
	return &entity.StoredObject{Path: path, URL: "https://cdn.example.com/" + path}, nil
}

func (m *memoryFiles) Remove(ctx context.Context, path string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.objects, path)
	return nil
}

func TestUploadFile(t *testing.T) {
	db := newTestStore(t)
	files := newMemoryFiles()
	s := newTestService(t, db, files)
	ctx := context.Background()

	f, err := s.UploadFile(ctx, "Ảnh Bìa.PNG", "image/png", strings.NewReader("png"), 3, actor)
	require.NoError(t, err)
	assert.True(t, f.Drafted)
	assert.Equal(t, ".png", f.Extension)
	assert.Equal(t, "Ảnh Bìa.PNG", f.OriginalName)
	assert.True(t, strings.HasPrefix(f.FileName, "anh-bia-"))
	assert.Equal(t, "png", files.objects[f.Path])

	got, err := s.GetFile(ctx, f.Id)
	require.NoError(t, err)
	assert.Equal(t, f.URL, got.URL)

	require.NoError(t, s.DeleteFile(ctx, f.Id, actor))
	assert.Empty(t, files.objects)
	_, err = s.GetFile(ctx, f.Id)
	assert.True(t, gerr.Is(err, gerr.KindNotFound))
}

func TestUploadFileValidation(t *testing.T) {
	db := newTestStore(t)
	files := newMemoryFiles()
	s := newTestService(t, db, files)
	ctx := context.Background()

	cases := []struct {
		name string
		file string
		size int64
		code gerr.ExitCode
	}{
		{"empty", "a.png", 0, gerr.ExitEmpty},
		{"extension", "a.exe", 10, gerr.ExitInvalidFormat},
		{"too large", "a.jpg", 2 << 20, gerr.ExitTooLarge},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := s.UploadFile(ctx, tc.file, "application/octet-stream", strings.NewReader("x"), tc.size, actor)
			e, ok := gerr.As(err)
			require.True(t, ok)
			assert.Equal(t, tc.code, e.Code)
		})
	}

	files.fail = true
	_, err := s.UploadFile(ctx, "a.png", "image/png", strings.NewReader("x"), 1, actor)
	assert.True(t, gerr.Is(err, gerr.KindFailed))
}

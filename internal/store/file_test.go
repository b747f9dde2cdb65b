package store

import (
	"context"
	"testing"

	"github.com/lkphuong/api-homepage/internal/entity"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testFile(name string) *entity.FileInsert {
	return &entity.FileInsert{
		OriginalName: name,
		FileName:     "1704096000-" + name,
		Path:         "banners/1704096000-" + name,
		URL:          "https://cdn.example.com/banners/1704096000-" + name,
		Extension:    ".png",
		Drafted:      true,
	}
}

func TestFiles(t *testing.T) {
	db := newTestDB(t)
	ctx := context.Background()

	id, err := db.Files().AddFile(ctx, testFile("a.png"), testActor)
	require.NoError(t, err)

	f, err := db.Files().GetFileById(ctx, id)
	require.NoError(t, err)
	require.NotNil(t, f)
	assert.Equal(t, "a.png", f.OriginalName)
	assert.True(t, f.Drafted)
	assert.Equal(t, testActor, f.CreatedBy.String)

	err = db.Files().UpdateFiles(ctx, []entity.FileState{{Id: id, Drafted: false}}, testActor)
	require.NoError(t, err)

	f, err = db.Files().GetFileById(ctx, id)
	require.NoError(t, err)
	require.NotNil(t, f)
	assert.False(t, f.Drafted)
	assert.True(t, f.UpdatedAt.Valid)

	err = db.Files().UpdateFiles(ctx, []entity.FileState{{Id: id, Drafted: true, Deleted: true}}, "replacer")
	require.NoError(t, err)

	f, err = db.Files().GetFileById(ctx, id)
	require.NoError(t, err)
	assert.Nil(t, f)

	var updatedBy, deletedBy string
	err = db.DB().QueryRowxContext(ctx, "SELECT updated_by, deleted_by FROM files WHERE id = ?", id).Scan(&updatedBy, &deletedBy)
	require.NoError(t, err)
	assert.Equal(t, "replacer", updatedBy)
	assert.Equal(t, "replacer", deletedBy)
}

func TestDeleteFileById(t *testing.T) {
	db := newTestDB(t)
	ctx := context.Background()

	id, err := db.Files().AddFile(ctx, testFile("b.png"), testActor)
	require.NoError(t, err)

	n, err := db.Files().DeleteFileById(ctx, id, testActor)
	require.NoError(t, err)
	assert.Equal(t, int64(1), n)

	n, err = db.Files().DeleteFileById(ctx, id, testActor)
	require.NoError(t, err)
	assert.Equal(t, int64(0), n)
}

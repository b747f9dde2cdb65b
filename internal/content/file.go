package content

import (
	"context"
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"log/slog"

	"github.com/google/uuid"
	"github.com/lkphuong/api-homepage/internal/entity"
	gerr "github.com/lkphuong/api-homepage/internal/errors"
	"github.com/lkphuong/api-homepage/internal/slug"
	"github.com/lkphuong/api-homepage/log"
)

const fileFolder = "files"

var fileLabel = label{where: "file", name: "[file]", title: "[File]"}

func (s *Service) extensionAllowed(ext string) bool {
	if len(s.c.AllowedExtensions) == 0 {
		return true
	}
	for _, a := range s.c.AllowedExtensions {
		a = strings.ToLower(a)
		if !strings.HasPrefix(a, ".") {
			a = "." + a
		}
		if a == ext {
			return true
		}
	}
	return false
}

// UploadFile stores the object and registers it as a drafted file.
func (s *Service) UploadFile(ctx context.Context, name, contentType string, r io.Reader, size int64, actor string) (*entity.File, error) {
	if s.files == nil {
		return nil, internal(ctx, log.MethodUpload, fileLabel.where, fmt.Errorf("file storage is not configured"))
	}
	if name == "" || size <= 0 {
		return nil, gerr.Validation(gerr.ExitEmpty, "Bạn vui lòng chọn [file].")
	}
	ext := strings.ToLower(filepath.Ext(name))
	if !s.extensionAllowed(ext) {
		return nil, gerr.Validation(gerr.ExitInvalidFormat, "[File] không đúng định dạng.")
	}
	if s.c.MaxFileSize > 0 && size > s.c.MaxFileSize {
		return nil, gerr.Validation(gerr.ExitTooLarge, "[File] vượt quá dung lượng cho phép.")
	}

	base := slug.Make(strings.TrimSuffix(filepath.Base(name), filepath.Ext(name)))
	fileName := fmt.Sprintf("%s-%s%s", base, uuid.NewString()[:8], ext)
	obj, err := s.files.Upload(ctx, fileFolder, fileName, contentType, r, size)
	if err != nil {
		return nil, fail(ctx, log.MethodUpload, fileLabel, err)
	}

	id, err := s.repo.Files().AddFile(ctx, &entity.FileInsert{
		OriginalName: name,
		FileName:     fileName,
		Path:         obj.Path,
		URL:          obj.URL,
		Extension:    ext,
		Drafted:      true,
	}, actor)
	if err != nil {
		if rmErr := s.files.Remove(ctx, obj.Path); rmErr != nil {
			log.WriteLog(ctx, slog.LevelWarn, log.MethodUpload, fileLabel.where, rmErr)
		}
		return nil, fail(ctx, log.MethodUpload, fileLabel, err)
	}
	return s.GetFile(ctx, id)
}

func (s *Service) GetFile(ctx context.Context, id string) (*entity.File, error) {
	f, err := s.repo.Files().GetFileById(ctx, id)
	if err != nil {
		return nil, internal(ctx, log.MethodGet, fileLabel.where, err)
	}
	if f == nil {
		return nil, gerr.NotFound(msgFileNotFound)
	}
	return f, nil
}

// DeleteFile soft-deletes the row and removes the stored object.
func (s *Service) DeleteFile(ctx context.Context, id, actor string) error {
	if err := validateId(id); err != nil {
		return err
	}
	f, err := s.GetFile(ctx, id)
	if err != nil {
		return err
	}
	err = cascade(func() (int64, error) { return s.repo.Files().DeleteFileById(ctx, id, actor) })
	if err != nil {
		return fail(ctx, log.MethodDelete, fileLabel, err)
	}
	if s.files != nil {
		if err := s.files.Remove(ctx, f.Path); err != nil {
			log.WriteLog(ctx, slog.LevelWarn, log.MethodDelete, fileLabel.where, err)
		}
	}
	return nil
}

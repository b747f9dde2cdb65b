// Package content orchestrates reads and transactional writes of every
// translatable content type.
package content

import (
	"context"
	"errors"
	"fmt"
	"math"
	"time"

	"log/slog"

	"github.com/asaskevich/govalidator"
	"github.com/lkphuong/api-homepage/internal/dependency"
	"github.com/lkphuong/api-homepage/internal/entity"
	gerr "github.com/lkphuong/api-homepage/internal/errors"
	"github.com/lkphuong/api-homepage/log"
	"github.com/microcosm-cc/bluemonday"
	"golang.org/x/sync/errgroup"
)

const (
	msgNoContent    = "Không có dữ liệu hiển thị."
	msgFileNotFound = "Không tìm thấy file."
	msgTimeInvalid  = "[Thời gian] không hợp lệ."
	msgIdInvalid    = "Giá trị [id] không hợp lệ."
)

// Config holds the content settings.
type Config struct {
	DefaultLanguage   string   `mapstructure:"default_language"`
	ItemsPerPage      int      `mapstructure:"items_per_page"`
	MaxFileSize       int64    `mapstructure:"max_file_size"`
	AllowedExtensions []string `mapstructure:"allowed_extensions"`
}

// Service implements every content operation on top of a repository.
type Service struct {
	c        Config
	repo     dependency.Repository
	files    dependency.FileStore
	sanitize *bluemonday.Policy
	hashCost int
}

// New returns a Service. files may be nil when uploads are not served.
func New(c Config, repo dependency.Repository, files dependency.FileStore) *Service {
	if c.ItemsPerPage <= 0 {
		c.ItemsPerPage = 10
	}
	return &Service{
		c:        c,
		repo:     repo,
		files:    files,
		sanitize: bluemonday.UGCPolicy(),
	}
}

// DefaultLanguage is the language every read falls back to.
func (s *Service) DefaultLanguage() string {
	return s.c.DefaultLanguage
}

func (s *Service) language(languageId string) string {
	if languageId == "" {
		return s.c.DefaultLanguage
	}
	return languageId
}

// label names a content type in user facing messages.
type label struct {
	where string
	// name is used inside sentences, title starts them.
	name  string
	title string
}

func (l label) failed() *gerr.Error {
	return gerr.Failed(fmt.Sprintf("Lưu thông tin %s thất bại.", l.name))
}

func (l label) notFound(id string) *gerr.Error {
	return gerr.NotFound("%s không tồn tại (id: %s)", l.title, id)
}

var errNothingDeleted = errors.New("no rows affected")

func fail(ctx context.Context, method log.Method, l label, err error) error {
	log.WriteLog(ctx, slog.LevelError, method, l.where, err)
	return gerr.Wrap(err, l.failed())
}

func internal(ctx context.Context, method log.Method, where string, err error) error {
	log.WriteLog(ctx, slog.LevelError, method, where, err)
	return gerr.Internal()
}

func validateId(id string) error {
	if !govalidator.IsUUID(id) {
		return gerr.Validation(gerr.ExitInvalidFormat, msgIdInvalid)
	}
	return nil
}

// requireFile fails unless the file exists and is not deleted.
func (s *Service) requireFile(ctx context.Context, where string, id string) error {
	if id == "" {
		return gerr.NotFound(msgFileNotFound)
	}
	f, err := s.repo.Files().GetFileById(ctx, id)
	if err != nil {
		return internal(ctx, log.MethodGet, where, err)
	}
	if f == nil {
		return gerr.NotFound(msgFileNotFound)
	}
	return nil
}

// checkRange rejects a start after the end.
func checkRange(start, end time.Time) error {
	if start.After(end) {
		return gerr.Validation(gerr.ExitInvalidFormat, msgTimeInvalid)
	}
	return nil
}

// publishFile marks a file as attached.
func publishFile(ctx context.Context, rep dependency.Repository, fileId, actor string) error {
	if fileId == "" {
		return nil
	}
	return rep.Files().UpdateFiles(ctx, []entity.FileState{{Id: fileId}}, actor)
}

// swapFile publishes newId and drops oldId in one bulk update when they differ.
func swapFile(ctx context.Context, rep dependency.Repository, oldId, newId, actor string) error {
	if oldId == newId {
		return nil
	}
	states := []entity.FileState{{Id: newId}}
	if oldId != "" {
		states = append(states, entity.FileState{Id: oldId, Drafted: true, Deleted: true})
	}
	return rep.Files().UpdateFiles(ctx, states, actor)
}

// dropTranslation soft-deletes a translation together with its attached file.
func dropTranslation(ctx context.Context, rep dependency.Repository, del func() (int64, error), fileId, actor string) error {
	n, err := del()
	if err != nil {
		return err
	}
	if n == 0 {
		return errNothingDeleted
	}
	if fileId == "" {
		return nil
	}
	return rep.Files().UpdateFiles(ctx, []entity.FileState{{Id: fileId, Drafted: true, Deleted: true}}, actor)
}

// cascade runs the delete steps in order and fails when one of them affects nothing.
func cascade(steps ...func() (int64, error)) error {
	for _, step := range steps {
		n, err := step()
		if err != nil {
			return err
		}
		if n == 0 {
			return errNothingDeleted
		}
	}
	return nil
}

// listPage loads one page, counting the total in parallel when the caller sent no page count.
func listPage[T any](
	ctx context.Context,
	s *Service,
	where string,
	q entity.PageQuery,
	count func() (int, error),
	page func(offset, limit int) ([]T, error),
) (*entity.Page[T], error) {
	if q.Page < 1 {
		q.Page = 1
	}
	pages := q.Pages
	var items []T
	g := errgroup.Group{}
	if pages == 0 {
		g.Go(func() error {
			n, err := count()
			if err != nil {
				return err
			}
			pages = pageCount(n, s.c.ItemsPerPage)
			return nil
		})
	}
	g.Go(func() error {
		var err error
		items, err = page((q.Page-1)*s.c.ItemsPerPage, s.c.ItemsPerPage)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, internal(ctx, log.MethodList, where, err)
	}
	if len(items) == 0 {
		return nil, gerr.NoContent(msgNoContent)
	}
	return &entity.Page[T]{Items: items, Page: q.Page, Pages: pages}, nil
}

func pageCount(count, perPage int) int {
	if count <= 0 || perPage <= 0 {
		return 0
	}
	return int(math.Ceil(float64(count) / float64(perPage)))
}

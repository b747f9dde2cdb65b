package dependency

import (
	"context"
	"database/sql"
	"io"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/lkphuong/api-homepage/internal/entity"
)

type (
	ContextStore interface {
		Tx(ctx context.Context, fn func(ctx context.Context, store Repository) error) error
	}

	Banner interface {
		// GetBannerById returns a non-deleted banner or nil.
		GetBannerById(ctx context.Context, id string) (*entity.Banner, error)
		// GetBannersPaged lists banners translated into languageId, newest first.
		GetBannersPaged(ctx context.Context, offset, limit int, languageId, input string) ([]entity.BannerListItem, error)
		// CountBanners counts the rows GetBannersPaged would page over.
		CountBanners(ctx context.Context, languageId, input string) (int, error)
		AddBanner(ctx context.Context, b *entity.BannerInsert, actor string) (string, error)
		UpdateBanner(ctx context.Context, id string, b *entity.BannerInsert, actor string) error
		// DeleteBannerById soft-deletes the banner row only.
		DeleteBannerById(ctx context.Context, id, actor string) (int64, error)
		// ResolveBannerLanguage returns the translation in languageId, falling back to defaultLanguageId.
		ResolveBannerLanguage(ctx context.Context, bannerId, languageId, defaultLanguageId string) (*entity.BannerLanguageFull, error)
		// GetBannerLanguage returns the translation for exactly this language, without fallback.
		GetBannerLanguage(ctx context.Context, bannerId, languageId string) (*entity.BannerLanguage, error)
		AddBannerLanguage(ctx context.Context, bl *entity.BannerLanguageInsert, actor string) (string, error)
		UpdateBannerLanguage(ctx context.Context, id string, bl *entity.BannerLanguageInsert, actor string) error
		DeleteBannerLanguageById(ctx context.Context, id, actor string) (int64, error)
		// DeleteBannerLanguages soft-deletes every translation of a banner, already
		// deleted ones included, and returns how many the banner ever had.
		DeleteBannerLanguages(ctx context.Context, bannerId, actor string) (int64, error)
	}

	Employee interface {
		GetEmployeeById(ctx context.Context, id string) (*entity.Employee, error)
		GetEmployeesPaged(ctx context.Context, offset, limit int, languageId, input string) ([]entity.EmployeeListItem, error)
		CountEmployees(ctx context.Context, languageId, input string) (int, error)
		AddEmployee(ctx context.Context, e *entity.EmployeeInsert, actor string) (string, error)
		UpdateEmployee(ctx context.Context, id string, e *entity.EmployeeInsert, actor string) error
		DeleteEmployeeById(ctx context.Context, id, actor string) (int64, error)
		ResolveEmployeeLanguage(ctx context.Context, employeeId, languageId, defaultLanguageId string) (*entity.EmployeeLanguageFull, error)
		GetEmployeeLanguage(ctx context.Context, employeeId, languageId string) (*entity.EmployeeLanguage, error)
		AddEmployeeLanguage(ctx context.Context, el *entity.EmployeeLanguageInsert, actor string) (string, error)
		UpdateEmployeeLanguage(ctx context.Context, id string, el *entity.EmployeeLanguageInsert, actor string) error
		DeleteEmployeeLanguageById(ctx context.Context, id, actor string) (int64, error)
		DeleteEmployeeLanguages(ctx context.Context, employeeId, actor string) (int64, error)
	}

	Event interface {
		GetEventById(ctx context.Context, id string) (*entity.Event, error)
		GetEventsPaged(ctx context.Context, offset, limit int, languageId, input string) ([]entity.EventListItem, error)
		CountEvents(ctx context.Context, languageId, input string) (int, error)
		AddEvent(ctx context.Context, e *entity.EventInsert, actor string) (string, error)
		UpdateEvent(ctx context.Context, id string, e *entity.EventInsert, actor string) error
		DeleteEventById(ctx context.Context, id, actor string) (int64, error)
		ResolveEventLanguage(ctx context.Context, eventId, languageId, defaultLanguageId string) (*entity.EventLanguageFull, error)
		GetEventLanguage(ctx context.Context, eventId, languageId string) (*entity.EventLanguage, error)
		AddEventLanguage(ctx context.Context, el *entity.EventLanguageInsert, actor string) (string, error)
		UpdateEventLanguage(ctx context.Context, id string, el *entity.EventLanguageInsert, actor string) error
		DeleteEventLanguageById(ctx context.Context, id, actor string) (int64, error)
		DeleteEventLanguages(ctx context.Context, eventId, actor string) (int64, error)
	}

	Notification interface {
		GetNotificationById(ctx context.Context, id string) (*entity.Notification, error)
		GetNotificationsPaged(ctx context.Context, offset, limit int, languageId, input string) ([]entity.NotificationListItem, error)
		CountNotifications(ctx context.Context, languageId, input string) (int, error)
		AddNotification(ctx context.Context, n *entity.NotificationInsert, actor string) (string, error)
		UpdateNotification(ctx context.Context, id string, n *entity.NotificationInsert, actor string) error
		DeleteNotificationById(ctx context.Context, id, actor string) (int64, error)
		ResolveNotificationLanguage(ctx context.Context, notificationId, languageId, defaultLanguageId string) (*entity.NotificationLanguageFull, error)
		GetNotificationLanguage(ctx context.Context, notificationId, languageId string) (*entity.NotificationLanguage, error)
		AddNotificationLanguage(ctx context.Context, nl *entity.NotificationLanguageInsert, actor string) (string, error)
		UpdateNotificationLanguage(ctx context.Context, id string, nl *entity.NotificationLanguageInsert, actor string) error
		DeleteNotificationLanguageById(ctx context.Context, id, actor string) (int64, error)
		DeleteNotificationLanguages(ctx context.Context, notificationId, actor string) (int64, error)
	}

	Position interface {
		GetPositionById(ctx context.Context, id string) (*entity.Position, error)
		GetPositionsPaged(ctx context.Context, offset, limit int, languageId, input string) ([]entity.PositionListItem, error)
		CountPositions(ctx context.Context, languageId, input string) (int, error)
		AddPosition(ctx context.Context, p *entity.PositionInsert, actor string) (string, error)
		UpdatePosition(ctx context.Context, id string, p *entity.PositionInsert, actor string) error
		DeletePositionById(ctx context.Context, id, actor string) (int64, error)
		ResolvePositionLanguage(ctx context.Context, positionId, languageId, defaultLanguageId string) (*entity.PositionLanguageFull, error)
		GetPositionLanguage(ctx context.Context, positionId, languageId string) (*entity.PositionLanguage, error)
		AddPositionLanguage(ctx context.Context, pl *entity.PositionLanguageInsert, actor string) (string, error)
		UpdatePositionLanguage(ctx context.Context, id string, pl *entity.PositionLanguageInsert, actor string) error
		DeletePositionLanguageById(ctx context.Context, id, actor string) (int64, error)
		DeletePositionLanguages(ctx context.Context, positionId, actor string) (int64, error)
	}

	Schedule interface {
		GetScheduleById(ctx context.Context, id string) (*entity.Schedule, error)
		GetSchedulesPaged(ctx context.Context, offset, limit int, languageId, input string) ([]entity.ScheduleListItem, error)
		CountSchedules(ctx context.Context, languageId, input string) (int, error)
		AddSchedule(ctx context.Context, s *entity.ScheduleInsert, actor string) (string, error)
		UpdateSchedule(ctx context.Context, id string, s *entity.ScheduleInsert, actor string) error
		DeleteScheduleById(ctx context.Context, id, actor string) (int64, error)
		ResolveScheduleLanguage(ctx context.Context, scheduleId, languageId, defaultLanguageId string) (*entity.ScheduleLanguageFull, error)
		GetScheduleLanguage(ctx context.Context, scheduleId, languageId string) (*entity.ScheduleLanguage, error)
		AddScheduleLanguage(ctx context.Context, sl *entity.ScheduleLanguageInsert, actor string) (string, error)
		UpdateScheduleLanguage(ctx context.Context, id string, sl *entity.ScheduleLanguageInsert, actor string) error
		DeleteScheduleLanguageById(ctx context.Context, id, actor string) (int64, error)
		DeleteScheduleLanguages(ctx context.Context, scheduleId, actor string) (int64, error)
	}

	Footer interface {
		// GetFooter returns the footer of exactly this language, or nil.
		GetFooter(ctx context.Context, languageId string) (*entity.FooterFull, error)
		AddFooter(ctx context.Context, languageId, content, actor string) (string, error)
		UpdateFooterContent(ctx context.Context, contentId, content, actor string) error
	}

	Link interface {
		GetLinks(ctx context.Context, languageId string) ([]entity.LinkLanguage, error)
		// GetLinksByIds returns the non-deleted links among ids.
		GetLinksByIds(ctx context.Context, ids []string) ([]entity.LinkLanguage, error)
		UpdateLinkURL(ctx context.Context, id, url, actor string) error
	}

	Language interface {
		GetLanguageById(ctx context.Context, id string) (*entity.Language, error)
		// GetLanguageBySlug finds a non-deleted language by its normalized slug.
		GetLanguageBySlug(ctx context.Context, normalizedSlug string) (*entity.Language, error)
		GetLanguagesPaged(ctx context.Context, offset, limit int, input string) ([]entity.Language, error)
		CountLanguages(ctx context.Context, input string) (int, error)
		// CountAllLanguages counts every language row, deleted ones included.
		CountAllLanguages(ctx context.Context) (int, error)
		AddLanguage(ctx context.Context, l *entity.LanguageInsert, actor string) (string, error)
		UpdateLanguage(ctx context.Context, id string, l *entity.LanguageInsert, actor string) error
		DeleteLanguageById(ctx context.Context, id, actor string) (int64, error)
	}

	Files interface {
		AddFile(ctx context.Context, f *entity.FileInsert, actor string) (string, error)
		// GetFileById returns a non-deleted file or nil.
		GetFileById(ctx context.Context, id string) (*entity.File, error)
		// UpdateFiles applies every state in one call.
		UpdateFiles(ctx context.Context, states []entity.FileState, actor string) error
		DeleteFileById(ctx context.Context, id, actor string) (int64, error)
	}

	Users interface {
		GetUserById(ctx context.Context, id string) (*entity.User, error)
		GetUserByUsername(ctx context.Context, username string) (*entity.User, error)
		GetUsersPaged(ctx context.Context, offset, limit int, input string) ([]entity.User, error)
		CountUsers(ctx context.Context, input string) (int, error)
		AddUser(ctx context.Context, username, passwordHash string, active bool, actor string) (string, error)
		UpdateUser(ctx context.Context, id string, passwordHash string, active bool, actor string) error
		DeleteUserById(ctx context.Context, id, actor string) (int64, error)
	}

	Permissions interface {
		GetPermissions(ctx context.Context) ([]entity.Permission, error)
		GetPermissionsByIds(ctx context.Context, ids []string) ([]entity.Permission, error)
		GetUserPermissions(ctx context.Context, userId string) ([]entity.Permission, error)
		AddUserPermissions(ctx context.Context, userId string, permissionIds []string, actor string) error
		// DeleteUserPermissions soft-deletes every grant of a user.
		DeleteUserPermissions(ctx context.Context, userId, actor string) (int64, error)
	}

	Repository interface {
		Banner() Banner
		Employee() Employee
		Event() Event
		Notification() Notification
		Position() Position
		Schedule() Schedule
		Footer() Footer
		Link() Link
		Language() Language
		Files() Files
		Users() Users
		Permissions() Permissions
		Tx(ctx context.Context, f func(context.Context, Repository) error) error
		TxBegin(ctx context.Context) (Repository, error)
		TxCommit(ctx context.Context) error
		TxRollback(ctx context.Context) error
		Now() time.Time
		InTx() bool
		Close()
		Ping(ctx context.Context) error
		DB() DB
	}

	// DB represents database interface.
	DB interface {
		BeginTxx(ctx context.Context, opts *sql.TxOptions) (*sqlx.Tx, error)
		ExecContext(ctx context.Context, query string, args ...interface{}) (sql.Result, error)

		// sqlx methods
		GetContext(ctx context.Context, dest interface{}, query string, args ...interface{}) error
		NamedExecContext(ctx context.Context, query string, arg interface{}) (sql.Result, error)
		QueryRowxContext(ctx context.Context, query string, args ...interface{}) *sqlx.Row
		QueryxContext(ctx context.Context, query string, args ...interface{}) (*sqlx.Rows, error)
		SelectContext(ctx context.Context, dest interface{}, query string, args ...interface{}) error
	}

	FileStore interface {
		// Upload stores r under folder/name and returns where it landed.
		Upload(ctx context.Context, folder, name, contentType string, r io.Reader, size int64) (*entity.StoredObject, error)
		// Remove deletes the object at path.
		Remove(ctx context.Context, path string) error
	}
)

package content

import (
	"context"
	"fmt"

	"github.com/lkphuong/api-homepage/internal/dependency"
	"github.com/lkphuong/api-homepage/internal/entity"
	gerr "github.com/lkphuong/api-homepage/internal/errors"
	"github.com/lkphuong/api-homepage/log"
	"golang.org/x/crypto/bcrypt"
)

const (
	msgPermissionNotFound = "Tính năng truy cập không tồn tại."
	msgBadCredentials     = "Tên đăng nhập hoặc mật khẩu không đúng."
)

var userLabel = label{where: "user", name: "người dùng", title: "[Người dùng]"}

func (s *Service) hashPassword(password string) (string, error) {
	cost := s.hashCost
	if cost == 0 {
		cost = bcrypt.DefaultCost
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(password), cost)
	if err != nil {
		return "", fmt.Errorf("can't hash password: %w", err)
	}
	return string(hash), nil
}

// requirePermissions deduplicates ids and fails unless all of them exist.
func (s *Service) requirePermissions(ctx context.Context, ids []string) ([]string, error) {
	unique := make([]string, 0, len(ids))
	seen := map[string]bool{}
	for _, id := range ids {
		if !seen[id] {
			seen[id] = true
			unique = append(unique, id)
		}
	}
	perms, err := s.repo.Permissions().GetPermissionsByIds(ctx, unique)
	if err != nil {
		return nil, internal(ctx, log.MethodGet, userLabel.where, err)
	}
	if len(perms) != len(unique) {
		return nil, gerr.NotFound(msgPermissionNotFound)
	}
	return unique, nil
}

// GetUser returns a user with its granted permissions.
func (s *Service) GetUser(ctx context.Context, id string) (*entity.UserFull, error) {
	u, err := s.repo.Users().GetUserById(ctx, id)
	if err != nil {
		return nil, internal(ctx, log.MethodGet, userLabel.where, err)
	}
	if u == nil {
		return nil, userLabel.notFound(id)
	}
	perms, err := s.repo.Permissions().GetUserPermissions(ctx, id)
	if err != nil {
		return nil, internal(ctx, log.MethodGet, userLabel.where, err)
	}
	return &entity.UserFull{User: *u, Permissions: perms}, nil
}

func (s *Service) ListUsers(ctx context.Context, q entity.PageQuery) (*entity.Page[entity.User], error) {
	return listPage(ctx, s, userLabel.where, q,
		func() (int, error) {
			return s.repo.Users().CountUsers(ctx, q.Input)
		},
		func(offset, limit int) ([]entity.User, error) {
			return s.repo.Users().GetUsersPaged(ctx, offset, limit, q.Input)
		})
}

func (s *Service) CreateUser(ctx context.Context, in *entity.UserInput, actor string) (*entity.UserFull, error) {
	existing, err := s.repo.Users().GetUserByUsername(ctx, in.Username)
	if err != nil {
		return nil, internal(ctx, log.MethodCreate, userLabel.where, err)
	}
	if existing != nil {
		return nil, gerr.AlreadyExists(fmt.Sprintf("[Tên đăng nhập] đã tồn tại (username: %s)", in.Username))
	}
	perms, err := s.requirePermissions(ctx, in.Permissions)
	if err != nil {
		return nil, err
	}
	hash, err := s.hashPassword(in.Password)
	if err != nil {
		return nil, internal(ctx, log.MethodCreate, userLabel.where, err)
	}

	var id string
	err = s.repo.Tx(ctx, func(ctx context.Context, rep dependency.Repository) error {
		var err error
		id, err = rep.Users().AddUser(ctx, in.Username, hash, in.Active, actor)
		if err != nil {
			return err
		}
		return rep.Permissions().AddUserPermissions(ctx, id, perms, actor)
	})
	if err != nil {
		return nil, fail(ctx, log.MethodCreate, userLabel, err)
	}
	return s.GetUser(ctx, id)
}

// UpdateUser replaces the permission set of a user. The password changes
// only when a new one is given.
func (s *Service) UpdateUser(ctx context.Context, id string, in *entity.UserInput, actor string) (*entity.UserFull, error) {
	u, err := s.repo.Users().GetUserById(ctx, id)
	if err != nil {
		return nil, internal(ctx, log.MethodUpdate, userLabel.where, err)
	}
	if u == nil {
		return nil, userLabel.notFound(id)
	}
	perms, err := s.requirePermissions(ctx, in.Permissions)
	if err != nil {
		return nil, err
	}
	hash := u.Password
	if in.Password != "" {
		if hash, err = s.hashPassword(in.Password); err != nil {
			return nil, internal(ctx, log.MethodUpdate, userLabel.where, err)
		}
	}

	err = s.repo.Tx(ctx, func(ctx context.Context, rep dependency.Repository) error {
		if err := rep.Users().UpdateUser(ctx, id, hash, in.Active, actor); err != nil {
			return err
		}
		if _, err := rep.Permissions().DeleteUserPermissions(ctx, id, actor); err != nil {
			return err
		}
		return rep.Permissions().AddUserPermissions(ctx, id, perms, actor)
	})
	if err != nil {
		return nil, fail(ctx, log.MethodUpdate, userLabel, err)
	}
	return s.GetUser(ctx, id)
}

func (s *Service) DeleteUser(ctx context.Context, id, actor string) error {
	if err := validateId(id); err != nil {
		return err
	}
	u, err := s.repo.Users().GetUserById(ctx, id)
	if err != nil {
		return internal(ctx, log.MethodDelete, userLabel.where, err)
	}
	if u == nil {
		return userLabel.notFound(id)
	}
	err = s.repo.Tx(ctx, func(ctx context.Context, rep dependency.Repository) error {
		if err := cascade(func() (int64, error) { return rep.Users().DeleteUserById(ctx, id, actor) }); err != nil {
			return err
		}
		_, err := rep.Permissions().DeleteUserPermissions(ctx, id, actor)
		return err
	})
	if err != nil {
		return fail(ctx, log.MethodDelete, userLabel, err)
	}
	return nil
}

func (s *Service) ListPermissions(ctx context.Context) ([]entity.Permission, error) {
	perms, err := s.repo.Permissions().GetPermissions(ctx)
	if err != nil {
		return nil, internal(ctx, log.MethodList, "permission", err)
	}
	if len(perms) == 0 {
		return nil, gerr.NoContent(msgNoContent)
	}
	return perms, nil
}

// Authenticate checks the credentials of an active user.
func (s *Service) Authenticate(ctx context.Context, username, password string) (*entity.UserFull, error) {
	u, err := s.repo.Users().GetUserByUsername(ctx, username)
	if err != nil {
		return nil, internal(ctx, log.MethodLogin, userLabel.where, err)
	}
	if u == nil || !u.Active {
		return nil, gerr.Unauthenticated(msgBadCredentials)
	}
	if err := bcrypt.CompareHashAndPassword([]byte(u.Password), []byte(password)); err != nil {
		return nil, gerr.Unauthenticated(msgBadCredentials)
	}
	return s.GetUser(ctx, u.Id)
}

// ActiveUser returns the user behind a token subject when it still may sign in.
func (s *Service) ActiveUser(ctx context.Context, id string) (*entity.UserFull, error) {
	u, err := s.GetUser(ctx, id)
	if err != nil {
		if gerr.Is(err, gerr.KindNotFound) {
			return nil, gerr.Unauthenticated(msgBadCredentials)
		}
		return nil, err
	}
	if !u.Active {
		return nil, gerr.Unauthenticated(msgBadCredentials)
	}
	return u, nil
}

package store

import (
	"context"
	"fmt"

	"github.com/lkphuong/api-homepage/internal/dependency"
	"github.com/lkphuong/api-homepage/internal/entity"
)

var userColumns = append([]string{"id", "username", "password"}, auditColumns...)

type userStore struct {
	*MYSQLStore
}

// Users returns an object implementing dependency.Users interface
func (ms *MYSQLStore) Users() dependency.Users {
	return &userStore{
		MYSQLStore: ms,
	}
}

func (us *userStore) GetUserById(ctx context.Context, id string) (*entity.User, error) {
	query := fmt.Sprintf(`SELECT %s FROM users u WHERE u.id = :id AND %s`,
		columns("u", "", userColumns...), notDeleted("u"))
	u, err := QueryNamedOptional[entity.User](ctx, us.DB(), query, map[string]any{"id": id})
	if err != nil {
		return nil, fmt.Errorf("can't get user by id: %w", err)
	}
	return u, nil
}

func (us *userStore) GetUserByUsername(ctx context.Context, username string) (*entity.User, error) {
	query := fmt.Sprintf(`SELECT %s FROM users u WHERE u.username = :username AND %s LIMIT 1`,
		columns("u", "", userColumns...), notDeleted("u"))
	u, err := QueryNamedOptional[entity.User](ctx, us.DB(), query, map[string]any{"username": username})
	if err != nil {
		return nil, fmt.Errorf("can't get user by username: %w", err)
	}
	return u, nil
}

func userWhere(input string) string {
	where := " WHERE " + notDeleted("u")
	if input != "" {
		where += " AND u.username LIKE :search"
	}
	return where
}

func (us *userStore) GetUsersPaged(ctx context.Context, offset, limit int, input string) ([]entity.User, error) {
	query := fmt.Sprintf(`SELECT %s FROM users u`, columns("u", "", userColumns...)) +
		userWhere(input) + ` ORDER BY u.created_at DESC LIMIT :limit OFFSET :offset`
	users, err := QueryListNamed[entity.User](ctx, us.DB(), query, map[string]any{
		"search": "%" + input + "%",
		"limit":  limit,
		"offset": offset,
	})
	if err != nil {
		return nil, fmt.Errorf("can't get users: %w", err)
	}
	return users, nil
}

func (us *userStore) CountUsers(ctx context.Context, input string) (int, error) {
	n, err := QueryCountNamed(ctx, us.DB(), `SELECT COUNT(*) FROM users u`+userWhere(input), map[string]any{
		"search": "%" + input + "%",
	})
	if err != nil {
		return 0, fmt.Errorf("can't count users: %w", err)
	}
	return n, nil
}

func (us *userStore) AddUser(ctx context.Context, username, passwordHash string, active bool, actor string) (string, error) {
	return us.insertRow(ctx, "users", map[string]any{
		"username": username,
		"password": passwordHash,
		"active":   active,
	}, actor)
}

// UpdateUser sets the password hash and the active flag.
func (us *userStore) UpdateUser(ctx context.Context, id string, passwordHash string, active bool, actor string) error {
	query := `
	UPDATE users SET
		password = :password,
		active = :active,
		updated_at = :updatedAt,
		updated_by = :updatedBy
	WHERE id = :id AND deleted = FALSE`
	err := ExecNamed(ctx, us.DB(), query, us.updateParams(id, actor, map[string]any{
		"password": passwordHash,
		"active":   active,
	}))
	if err != nil {
		return fmt.Errorf("can't update user: %w", err)
	}
	return nil
}

func (us *userStore) DeleteUserById(ctx context.Context, id, actor string) (int64, error) {
	return us.softDelete(ctx, "users", "id", id, actor)
}

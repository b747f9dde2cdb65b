package store

import (
	"context"
	"fmt"

	"github.com/lkphuong/api-homepage/internal/dependency"
	"github.com/lkphuong/api-homepage/internal/entity"
)

var permissionColumns = append([]string{"id", "code", "name"}, auditColumns...)

type permissionStore struct {
	*MYSQLStore
}

// Permissions returns an object implementing permissions interface
func (ms *MYSQLStore) Permissions() dependency.Permissions {
	return &permissionStore{
		MYSQLStore: ms,
	}
}

func (ps *permissionStore) GetPermissions(ctx context.Context) ([]entity.Permission, error) {
	query := fmt.Sprintf(`SELECT %s FROM permissions p WHERE %s ORDER BY p.code ASC`,
		columns("p", "", permissionColumns...), notDeleted("p"))
	perms, err := QueryListNamed[entity.Permission](ctx, ps.DB(), query, nil)
	if err != nil {
		return nil, fmt.Errorf("can't get permissions: %w", err)
	}
	return perms, nil
}

func (ps *permissionStore) GetPermissionsByIds(ctx context.Context, ids []string) ([]entity.Permission, error) {
	if len(ids) == 0 {
		return []entity.Permission{}, nil
	}
	query := fmt.Sprintf(`SELECT %s FROM permissions p WHERE p.id IN (:ids) AND %s`,
		columns("p", "", permissionColumns...), notDeleted("p"))
	perms, err := QueryListNamed[entity.Permission](ctx, ps.DB(), query, map[string]any{"ids": ids})
	if err != nil {
		return nil, fmt.Errorf("can't get permissions by ids: %w", err)
	}
	return perms, nil
}

func (ps *permissionStore) GetUserPermissions(ctx context.Context, userId string) ([]entity.Permission, error) {
	query := fmt.Sprintf(`
	SELECT %s FROM permissions p
	INNER JOIN user_permissions up ON up.permission_id = p.id AND %s
	WHERE up.user_id = :userId AND %s
	ORDER BY p.code ASC`,
		columns("p", "", permissionColumns...), notDeleted("up"), notDeleted("p"))
	perms, err := QueryListNamed[entity.Permission](ctx, ps.DB(), query, map[string]any{"userId": userId})
	if err != nil {
		return nil, fmt.Errorf("can't get user permissions: %w", err)
	}
	return perms, nil
}

func (ps *permissionStore) AddUserPermissions(ctx context.Context, userId string, permissionIds []string, actor string) error {
	for _, pid := range permissionIds {
		if _, err := ps.insertRow(ctx, "user_permissions", map[string]any{
			"user_id":       userId,
			"permission_id": pid,
		}, actor); err != nil {
			return fmt.Errorf("can't add user permission: %w", err)
		}
	}
	return nil
}

func (ps *permissionStore) DeleteUserPermissions(ctx context.Context, userId, actor string) (int64, error) {
	return ps.softDelete(ctx, "user_permissions", "user_id", userId, actor)
}

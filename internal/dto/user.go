package dto

import (
	"time"

	"github.com/lkphuong/api-homepage/internal/entity"
)

type Permission struct {
	Id   string `json:"id"`
	Code string `json:"code"`
	Name string `json:"name"`
}

func ConvertPermissions(perms []entity.Permission) []Permission {
	out := make([]Permission, 0, len(perms))
	for _, p := range perms {
		out = append(out, Permission{Id: p.Id, Code: p.Code, Name: p.Name})
	}
	return out
}

// UserItem never carries the password hash.
type UserItem struct {
	Id        string     `json:"id"`
	Username  string     `json:"username"`
	CreatedAt time.Time  `json:"created_at"`
	UpdatedAt *time.Time `json:"updated_at"`
	Active    bool       `json:"active"`
}

type User struct {
	UserItem
	Permissions []Permission `json:"permissions"`
}

func ConvertUserListItem(u entity.User) UserItem {
	return UserItem{
		Id:        u.Id,
		Username:  u.Username,
		CreatedAt: u.CreatedAt.UTC(),
		UpdatedAt: nullTime(u.UpdatedAt),
		Active:    u.Active,
	}
}

func ConvertUser(u *entity.UserFull) *User {
	if u == nil {
		return nil
	}
	return &User{
		UserItem:    ConvertUserListItem(u.User),
		Permissions: ConvertPermissions(u.Permissions),
	}
}

// Login is returned by login and renew.
type Login struct {
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
	User         *User  `json:"user"`
}

func ConvertLogin(accessToken, refreshToken string, u *entity.UserFull) *Login {
	return &Login{
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
		User:         ConvertUser(u),
	}
}

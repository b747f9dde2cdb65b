package entity

type User struct {
	Id       string `db:"id"`
	Username string `db:"username"`
	Password string `db:"password"`
	Audit
}

type Permission struct {
	Id   string `db:"id"`
	Code string `db:"code"`
	Name string `db:"name"`
	Audit
}

type UserPermission struct {
	Id           string `db:"id"`
	UserId       string `db:"user_id"`
	PermissionId string `db:"permission_id"`
	Audit
}

// UserFull is a user with its granted permissions.
type UserFull struct {
	User
	Permissions []Permission
}

type UserInput struct {
	Username    string
	Password    string
	Active      bool
	Permissions []string
}

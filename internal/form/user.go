package form

import (
	"net/http"

	v "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/lkphuong/api-homepage/internal/entity"
)

const (
	msgUsernameEmpty    = "Bạn vui lòng nhập [tên đăng nhập]."
	msgUsernameLength   = "[Tên đăng nhập] độ dài tối đa 255 kí tự."
	msgPasswordEmpty    = "Bạn vui lòng nhập [mật khẩu]."
	msgPasswordLength   = "[Mật khẩu] độ dài tối đa 100 kí tự."
	msgPermissionEmpty  = "Bạn vui lòng chọn [tính năng truy cập]."
	msgPermissionUnknow = "[Tính năng truy cập] không tồn tại."
)

// UserRequest creates a user. On update the username is ignored and an
// empty password keeps the current one.
type UserRequest struct {
	Username    string   `json:"username"`
	Password    string   `json:"password"`
	Active      Flag     `json:"active"`
	Permissions []string `json:"permissions"`

	update bool
}

func (r *UserRequest) Bind(req *http.Request) error {
	r.update = req.Method == http.MethodPut
	trim(&r.Username)
	return r.Validate()
}

func (r *UserRequest) Validate() error {
	return ValidateStruct(r,
		v.Field(&r.Username,
			v.When(!r.update,
				v.Required.Error(msgUsernameEmpty),
				v.RuneLength(1, 255).Error(msgUsernameLength))),
		v.Field(&r.Password,
			v.When(!r.update, v.Required.Error(msgPasswordEmpty)),
			v.RuneLength(0, 100).Error(msgPasswordLength)),
		v.Field(&r.Active, validFlag("Giá trị [active] không hợp lệ.")),
		v.Field(&r.Permissions,
			v.Required.Error(msgPermissionEmpty),
			v.Each(v.Required.Error(msgPermissionEmpty), isUUID.Error(msgPermissionUnknow))),
	)
}

// ToInput defaults active to true.
func (r *UserRequest) ToInput() *entity.UserInput {
	return &entity.UserInput{
		Username:    r.Username,
		Password:    r.Password,
		Active:      r.Active.Or(true),
		Permissions: r.Permissions,
	}
}

type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

func (r *LoginRequest) Bind(*http.Request) error {
	trim(&r.Username)
	return r.Validate()
}

func (r *LoginRequest) Validate() error {
	return ValidateStruct(r,
		v.Field(&r.Username, v.Required.Error(msgUsernameEmpty), v.RuneLength(1, 255).Error(msgUsernameLength)),
		v.Field(&r.Password, v.Required.Error(msgPasswordEmpty), v.RuneLength(1, 100).Error(msgPasswordLength)),
	)
}

type RenewRequest struct {
	RefreshToken string `json:"refresh_token"`
}

func (r *RenewRequest) Bind(*http.Request) error {
	trim(&r.RefreshToken)
	return r.Validate()
}

func (r *RenewRequest) Validate() error {
	return ValidateStruct(r,
		v.Field(&r.RefreshToken, v.Required.Error("Bạn vui lòng nhập [refresh_token].")),
	)
}

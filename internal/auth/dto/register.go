package dto

import (
	validation "github.com/go-ozzo/ozzo-validation"
	"github.com/go-ozzo/ozzo-validation/is"
)

type RegisterInput struct {
	FullName string `json:"fullName" form:"fullName"`
	Username string `json:"username" form:"username"`
	Email    string `json:"email" form:"email"`
	Password string `json:"password" form:"password"`
}

func (i RegisterInput) Validate() error {
	return validation.ValidateStruct(&i,
		validation.Field(&i.FullName, validation.Required),
		validation.Field(&i.Username, validation.Required, validation.Length(3, 32)),
		validation.Field(&i.Email, validation.Required, is.Email),
		validation.Field(&i.Password, validation.Required, validation.Length(8, 72)),
	)
}

type ChangePasswordInput struct {
	OldPassword string `json:"oldPassword"`
	NewPassword string `json:"newPassword"`
}

func (i ChangePasswordInput) Validate() error {
	return validation.ValidateStruct(&i,
		validation.Field(&i.OldPassword, validation.Required),
		validation.Field(&i.NewPassword, validation.Required, validation.Length(8, 72)),
	)
}

type UpdateAccountInput struct {
	FullName string `json:"fullName"`
	Email    string `json:"email"`
}

func (i UpdateAccountInput) Validate() error {
	return validation.ValidateStruct(&i,
		validation.Field(&i.FullName, validation.Required),
		validation.Field(&i.Email, validation.Required, is.Email),
	)
}

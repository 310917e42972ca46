package dto

import (
	"errors"

	validation "github.com/go-ozzo/ozzo-validation"
)

type LoginInput struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

func (i LoginInput) Validate() error {
	return validation.ValidateStruct(&i,
		validation.Field(&i.Password, validation.Required),
		validation.Field(&i.Username, validation.By(func(interface{}) error {
			if i.Username == "" && i.Email == "" {
				return errors.New("username or email is required")
			}
			return nil
		})),
	)
}

// Identifier returns whichever identity field the caller supplied.
func (i LoginInput) Identifier() string {
	if i.Username != "" {
		return i.Username
	}
	return i.Email
}

type LoginOutput struct {
	User         *UserOutput `json:"user"`
	AccessToken  string      `json:"accessToken"`
	RefreshToken string      `json:"refreshToken"`
}

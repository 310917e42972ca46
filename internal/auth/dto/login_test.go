package dto

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLoginInput_Validate(t *testing.T) {
	tests := []struct {
		name    string
		input   LoginInput
		wantErr bool
	}{
		{name: "username and password", input: LoginInput{Username: "testuser", Password: "password123"}},
		{name: "email and password", input: LoginInput{Email: "test@example.com", Password: "password123"}},
		{name: "both identifiers", input: LoginInput{Username: "testuser", Email: "test@example.com", Password: "password123"}},
		{name: "no identifier", input: LoginInput{Password: "password123"}, wantErr: true},
		{name: "no password", input: LoginInput{Username: "testuser"}, wantErr: true},
		{name: "empty input", input: LoginInput{}, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.input.Validate()
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestLoginInput_Identifier(t *testing.T) {
	assert.Equal(t, "testuser", LoginInput{Username: "testuser", Email: "test@example.com"}.Identifier())
	assert.Equal(t, "test@example.com", LoginInput{Email: "test@example.com"}.Identifier())
	assert.Empty(t, LoginInput{}.Identifier())
}

package user

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidateLogin(t *testing.T) {
	v := NewPasswordValidator()

	tests := []struct {
		name    string
		login   string
		wantErr bool
	}{
		{name: "valid", login: "alice_01", wantErr: false},
		{name: "with dots and dashes", login: "a.b-c", wantErr: false},
		{name: "too short", login: "ab", wantErr: true},
		{name: "too long", login: "aaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaa", wantErr: true},
		{name: "forbidden characters", login: "alice!", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := v.ValidateLogin(tt.login)
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestValidatePassword(t *testing.T) {
	v := NewPasswordValidator()

	tests := []struct {
		name     string
		password string
		wantErr  bool
	}{
		{name: "valid", password: "Str0ngPass", wantErr: false},
		{name: "too short", password: "S0rt", wantErr: true},
		{name: "no uppercase", password: "weakpass1", wantErr: true},
		{name: "no lowercase", password: "WEAKPASS1", wantErr: true},
		{name: "no digit", password: "WeakPassword", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := v.ValidatePassword(tt.password)
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

package user

import "time"

type User struct {
	ID        int
	Login     string
	Password  string // bcrypt hash
	CreatedAt time.Time
}

type BaseRequest struct {
	Login    string `json:"login" doc:"Login name" minLength:"3" maxLength:"32"`
	Password string `json:"password" doc:"Password" minLength:"8"`
}

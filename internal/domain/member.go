package domain

import (
	"time"
)

type Role string

const (
	RoleUser    Role = "USER"
	RoleAdmin   Role = "ADMIN"
	RoleTeacher Role = "TEACHER"
)

// AllRoles lists every role the application knows about, used by the
// access policy when a rule means "any logged-in member".
var AllRoles = []Role{RoleUser, RoleAdmin, RoleTeacher}

type Member struct {
	ID           int64     `json:"id"`
	Email        string    `json:"email"`
	Username     string    `json:"username"`
	Name         string    `json:"name"`
	PasswordHash string    `json:"-"`
	Role         Role      `json:"role"`
	CreatedAt    time.Time `json:"createdAt"`
}

package domain

import (
	"time"
)

type Role string

const (
	RoleCandidate Role = "candidate"
	RoleEmployer  Role = "employer"
	RoleAdmin     Role = "admin"
	RoleGuest     Role = "guest"
)

type User struct {
	ID           int64     `json:"id"`
	FullName     string    `json:"fullName"`
	Email        string    `json:"email"`
	Phone        string    `json:"phone"`
	PasswordHash string    `json:"-"`
	Avatar       string    `json:"avatar,omitempty"`
	Role         Role      `json:"role"`
	Headline     string    `json:"headline,omitempty"`
	Location     string    `json:"location,omitempty"`
	Skills       []string  `json:"skills"`
	Resume       string    `json:"resume,omitempty"`
	IsActive     bool      `json:"isActive"`
	CreatedAt    time.Time `json:"createdAt"`
	Version      int32     `json:"-"`
}

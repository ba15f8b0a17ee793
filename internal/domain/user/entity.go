package user

import (
	"time"
)

type User struct {
	id           int64
	email        Email
	passwordHash string
	name         Name
	role         Role
	lastLogin    *time.Time
	isActive     bool
	createdAt    time.Time
	updatedAt    time.Time
}

// NewUser builds an unsaved account. The store assigns the id; new accounts start as clients.
func NewUser(email Email, passwordHash string, name Name) *User {
	return &User{
		email:        email,
		passwordHash: passwordHash,
		name:         name,
		role:         RoleClient,
		isActive:     true,
	}
}

func ReconstructUser(id int64, email Email, passwordHash string, name Name, role Role, isActive bool, lastLogin *time.Time, createdAt, updatedAt time.Time) *User {
	return &User{
		id:           id,
		email:        email,
		passwordHash: passwordHash,
		name:         name,
		role:         role,
		lastLogin:    lastLogin,
		isActive:     isActive,
		createdAt:    createdAt,
		updatedAt:    updatedAt,
	}
}

func (u *User) ID() int64             { return u.id }
func (u *User) Email() Email          { return u.email }
func (u *User) PasswordHash() string  { return u.passwordHash }
func (u *User) Name() Name            { return u.name }
func (u *User) Role() Role            { return u.role }
func (u *User) LastLogin() *time.Time { return u.lastLogin }
func (u *User) IsActive() bool        { return u.isActive }
func (u *User) CreatedAt() time.Time  { return u.createdAt }
func (u *User) UpdatedAt() time.Time  { return u.updatedAt }

package models

import (
	"strings"
	"time"
)

// User is an account of the app. PasswordHash never leaves the store layer.
type User struct {
	ID           string    `bson:"_id" json:"id"`
	Name         string    `bson:"name" json:"name"`
	Email        string    `bson:"email" json:"email"`
	AvatarURL    string    `bson:"avatarUrl,omitempty" json:"avatarUrl,omitempty"`
	PasswordHash string    `bson:"passwordHash" json:"-"`
	CreatedAt    time.Time `bson:"createdAt" json:"createdAt"`
	UpdatedAt    time.Time `bson:"updatedAt" json:"updatedAt"`
}

// Public returns a copy without credentials.
func (u User) Public() User {
	u.PasswordHash = ""
	return u
}

type LoginInput struct {
	Email    string `json:"email" validate:"required,simple_email"`
	Password string `json:"password" validate:"required"`
}

type RegisterInput struct {
	Name     string `json:"name" validate:"required,min=3"`
	Email    string `json:"email" validate:"required,simple_email"`
	Password string `json:"password" validate:"required,min=4"`
}

// Normalize trims the name and trims and lowercases the email.
func (in *RegisterInput) Normalize() {
	in.Name = strings.TrimSpace(in.Name)
	in.Email = NormalizeEmail(in.Email)
}

// UpdateProfileInput carries the profile fields to change; nil means unchanged.
type UpdateProfileInput struct {
	Name      *string `json:"name,omitempty" validate:"omitempty,min=3"`
	Email     *string `json:"email,omitempty" validate:"omitempty,simple_email"`
	AvatarURL *string `json:"avatarUrl,omitempty"`
	Password  *string `json:"password,omitempty" validate:"omitempty,min=4"`
}

// AuthResult is what login and register hand back to the caller.
type AuthResult struct {
	User  User   `json:"user"`
	Token string `json:"token"`
}

func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

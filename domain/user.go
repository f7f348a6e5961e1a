package domain

import (
	"context"
	"fmt"
	"time"
)

// DefaultImageURL is used as the profile picture of users who didn't provide one.
const DefaultImageURL = "/static/images/default-pic.png"

// DefaultHeaderImageURL is used as the profile header of users who didn't provide one.
const DefaultHeaderImageURL = "/static/images/warbler-hero.jpg"

// User represents a registered user of the app. The Password field only ever
// holds an incoming plaintext password during signup / login / profile edit.
// It is never stored, only its bcrypt hash is.
type User struct {
	ID       int    `json:"id"`
	Username string `json:"username" gorm:"uniqueIndex;not null"`
	Email    string `json:"email" gorm:"uniqueIndex;not null"`

	Password     string `json:"password,omitempty" gorm:"-"`
	PasswordHash string `json:"-" gorm:"not null"`

	ImageURL       string `json:"image_url"`
	HeaderImageURL string `json:"header_image_url"`
	Bio            string `json:"bio"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	Messages  []Message `json:"messages,omitempty" gorm:"constraint:OnDelete:CASCADE"`
	Likes     []Like    `json:"likes,omitempty" gorm:"constraint:OnDelete:CASCADE"`
	Followers []Follow  `json:"followers,omitempty" gorm:"foreignKey:FollowedID;constraint:OnDelete:CASCADE"`
	Following []Follow  `json:"following,omitempty" gorm:"foreignKey:FollowerID;constraint:OnDelete:CASCADE"`
}

// String renders a short human-readable summary of the user.
func (u User) String() string {
	return fmt.Sprintf("<User #%d: %s, %s>", u.ID, u.Username, u.Email)
}

// UserService is a set of methods to manipulate and work with the User model.
type UserService interface {
	ByID(id int) (*User, error)
	ByUsername(username string) (*User, error)
	ByEmail(email string) (*User, error)
	Search(term string) ([]User, error)
	Authenticate(username, password string) (*User, error)
	Create(ctx context.Context, user *User) error
	Update(ctx context.Context, user *User) error
	Delete(ctx context.Context, user *User) error
}

package domain

import (
	"time"
)

// MessageMaxLength is the maximum number of characters a message may have.
const MessageMaxLength = 140

// Message represents a short text message ("warble") posted by a user.
// A Message belongs to exactly one User and cannot outlive it.
type Message struct {
	ID     int    `json:"id"`
	UserID int    `json:"user_id" gorm:"not null;index"`
	User   User   `json:"user"`
	Text   string `json:"text" gorm:"not null"`

	Likes []Like `json:"likes,omitempty" gorm:"foreignKey:MessageID;constraint:OnDelete:CASCADE"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// MessageService is a set of methods to manipulate and work with the Message model.
type MessageService interface {
	ByID(id int) (*Message, error)
	ByUserID(userId int) ([]Message, error)
	FeedByUserID(userId int) ([]Message, error)
	LikedByUserID(userId int) ([]Message, error)
	CountByUserID(userId int) (int, error)
	Create(message *Message) error
	Delete(message *Message) error
}

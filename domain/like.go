package domain

import (
	"time"
)

// Like represents a many-to-many relationship between a User and a Message.
// A Like is created when a user decides to like a message. It's destroyed when
// a user decides to unlike a previously liked message, or when the message
// gets deleted. A user cannot like the same message twice.
type Like struct {
	ID        int     `json:"id"`
	UserID    int     `json:"user_id" gorm:"not null;index;uniqueIndex:idx_user_message"`
	MessageID int     `json:"message_id" gorm:"not null;uniqueIndex:idx_user_message"`
	Message   Message `json:"message"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// LikeService is a set of methods to manipulate and work with the Like model.
type LikeService interface {
	ByUserID(userId int) ([]Like, error)
	Likes(userId, messageId int) bool
	Create(like *Like) error
	Delete(like *Like) error
}

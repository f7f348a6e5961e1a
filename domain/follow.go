package domain

import "time"

// Follow represents a self-referential many-to-many relationship between two users.
// A Follow is created when one user decides to follow another user.
// The FollowerID is the ID of the user that follows, and the FollowedID is the ID
// of the user that is being followed. The same edge cannot exist twice and a user
// cannot follow themselves.
type Follow struct {
	ID         int       `json:"id"`
	FollowerID int       `json:"follower_id" gorm:"not null;index;uniqueIndex:idx_follower_followed"`
	Follower   User      `json:"follower"`
	FollowedID int       `json:"followed_id" gorm:"not null;index;uniqueIndex:idx_follower_followed"`
	Followed   User      `json:"followed"`
	CreatedAt  time.Time `json:"created_at"`
}

// FollowService is a set of methods to manipulate and work with the Follow model.
type FollowService interface {
	Create(follow *Follow) error
	Delete(follow *Follow) error
	IsFollowedBy(userId, otherId int) bool
	FollowingByUserID(userId int) ([]User, error)
	FollowersByUserID(userId int) ([]User, error)
	CountFollowing(userId int) (int, error)
	CountFollowers(userId int) (int, error)
}

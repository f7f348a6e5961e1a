package crud

import (
	"errors"

	"gorm.io/gorm"

	"github.com/ptam11/warbler/domain"
	"github.com/ptam11/warbler/errs"
)

// FollowService manages Follows.
// It implements the domain.FollowService interface.
type FollowService struct {
	followValidator
}

// followValidator runs validations on incoming Follow data.
// On success, it passes the data on to followGorm.
// Otherwise, it returns the error of the validation that has failed.
type followValidator struct {
	followGorm
}

// followGorm runs CRUD operations on the database using incoming Follow data.
// It assumes that data has been validated. On success, it returns nil.
// Otherwise, it returns the error of the operation that has failed.
type followGorm struct {
	db *gorm.DB
}

// NewFollowService returns an instance of FollowService.
func NewFollowService(db *gorm.DB) *FollowService {
	return &FollowService{
		followValidator{
			followGorm{
				db: db,
			},
		},
	}
}

// Ensure the FollowService struct properly implements the domain.FollowService interface.
// If it does not, then this expression becomes invalid and won't compile.
var _ domain.FollowService = &FollowService{}

// Create runs validations needed for creating new Follow database records.
func (fv *followValidator) Create(follow *domain.Follow) error {
	err := runFollowValFns(follow,
		fv.followerIdValid,
		fv.followedUserExists,
		fv.followedIsNotFollower,
		fv.notAlreadyFollowed)
	if err != nil {
		return err
	}
	return fv.followGorm.Create(follow)
}

// Delete runs validations needed for deleting existing Follow database records.
func (fv *followValidator) Delete(follow *domain.Follow) error {
	err := runFollowValFns(follow, fv.followExists)
	if err != nil {
		return err
	}
	return fv.followGorm.Delete(follow)
}

// runFollowValFns runs any number of functions of type followValFn on the passed in Follow object.
// If none of them returns an error, it returns nil. Otherwise, it returns the respective error.
func runFollowValFns(follow *domain.Follow, fns ...followValFn) error {
	for _, fn := range fns {
		if err := fn(follow); err != nil {
			return err
		}
	}
	return nil
}

// A followValFn is any function that takes in a pointer to a domain.Follow object and returns an error.
type followValFn func(follow *domain.Follow) error

// followerIdValid ensures that the follower's user ID is not empty.
func (fv *followValidator) followerIdValid(follow *domain.Follow) error {
	if follow.FollowerID <= 0 {
		return errs.UserIdRequired
	}
	return nil
}

// followedUserExists makes sure that the user to be followed actually exists.
func (fv *followValidator) followedUserExists(follow *domain.Follow) error {
	err := fv.db.First(&domain.User{}, "id = ?", follow.FollowedID).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return errs.Errorf(errs.ENOTFOUND, "The user to be followed does not exist.")
		}
		return err
	}
	return nil
}

// followedIsNotFollower makes sure that a user is not following themselves.
func (fv *followValidator) followedIsNotFollower(follow *domain.Follow) error {
	if follow.FollowedID == follow.FollowerID {
		return errs.Errorf(errs.EINVALID, "You cannot follow yourself.")
	}
	return nil
}

// notAlreadyFollowed makes sure that the follow edge does not already exist.
func (fv *followValidator) notAlreadyFollowed(follow *domain.Follow) error {
	err := fv.db.
		Where("follower_id = ? AND followed_id = ?", follow.FollowerID, follow.FollowedID).
		First(&domain.Follow{}).Error
	if err == nil {
		return errs.Errorf(errs.ECONFLICT, "You are already following that user.")
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return err
	}
	return nil
}

// followExists makes sure that the Follow record to be deleted actually exists.
// It fills in the record's ID so that followGorm.Delete targets the right row.
func (fv *followValidator) followExists(follow *domain.Follow) error {
	var existing domain.Follow
	err := fv.db.
		Where("follower_id = ? AND followed_id = ?", follow.FollowerID, follow.FollowedID).
		First(&existing).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return errs.Errorf(errs.ENOTFOUND, "You are not following that user.")
		}
		return err
	}
	follow.ID = existing.ID
	return nil
}

// IsFollowedBy returns true if the user identified by otherId follows
// the user identified by userId.
func (fg *followGorm) IsFollowedBy(userId, otherId int) bool {
	err := fg.db.
		Where("follower_id = ? AND followed_id = ?", otherId, userId).
		First(&domain.Follow{}).Error
	return err == nil
}

// FollowingByUserID retrieves all users that the given user follows.
func (fg *followGorm) FollowingByUserID(userId int) ([]domain.User, error) {
	var users []domain.User
	err := fg.db.
		Joins("JOIN follows ON follows.followed_id = users.id").
		Where("follows.follower_id = ?", userId).
		Find(&users).Error
	if err != nil {
		return nil, err
	}
	return users, nil
}

// FollowersByUserID retrieves all users following the given user.
func (fg *followGorm) FollowersByUserID(userId int) ([]domain.User, error) {
	var users []domain.User
	err := fg.db.
		Joins("JOIN follows ON follows.follower_id = users.id").
		Where("follows.followed_id = ?", userId).
		Find(&users).Error
	if err != nil {
		return nil, err
	}
	return users, nil
}

// CountFollowing returns the number of users the given user follows.
func (fg *followGorm) CountFollowing(userId int) (int, error) {
	var count int64
	err := fg.db.Model(&domain.Follow{}).Where("follower_id = ?", userId).Count(&count).Error
	if err != nil {
		return 0, err
	}
	return int(count), nil
}

// CountFollowers returns the number of users following the given user.
func (fg *followGorm) CountFollowers(userId int) (int, error) {
	var count int64
	err := fg.db.Model(&domain.Follow{}).Where("followed_id = ?", userId).Count(&count).Error
	if err != nil {
		return 0, err
	}
	return int(count), nil
}

// Create stores the data from the Follow object in a new database record.
func (fg *followGorm) Create(follow *domain.Follow) error {
	return fg.db.Create(follow).Error
}

// Delete permanently deletes the database record matching the data from the Follow object.
func (fg *followGorm) Delete(follow *domain.Follow) error {
	return fg.db.Delete(follow).Error
}

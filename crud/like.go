package crud

import (
	"errors"

	"gorm.io/gorm"

	"github.com/ptam11/warbler/domain"
	"github.com/ptam11/warbler/errs"
)

// LikeService manages Likes.
// It implements the domain.LikeService interface.
type LikeService struct {
	likeValidator
}

// likeValidator runs validations on incoming Like data.
// On success, it passes the data on to likeGorm.
// Otherwise, it returns the error of the validation that has failed.
type likeValidator struct {
	likeGorm
}

// likeGorm runs CRUD operations on the database using incoming Like data.
// It assumes that data has been validated. On success, it returns nil.
// Otherwise, it returns the error of the operation that has failed.
type likeGorm struct {
	db *gorm.DB
}

// NewLikeService returns an instance of LikeService.
func NewLikeService(db *gorm.DB) *LikeService {
	return &LikeService{
		likeValidator{
			likeGorm{
				db: db,
			},
		},
	}
}

// Ensure the LikeService struct properly implements the domain.LikeService interface.
// If it does not, then this expression becomes invalid and won't compile.
var _ domain.LikeService = &LikeService{}

// Create runs validations needed for creating new Like database records.
func (lv *likeValidator) Create(like *domain.Like) error {
	err := runLikeValFns(like,
		lv.userIdValid,
		lv.likedMessageExists,
		lv.notOwnMessage,
		lv.notAlreadyLiked)
	if err != nil {
		return err
	}
	return lv.likeGorm.Create(like)
}

// Delete runs validations needed for deleting existing Like database records.
func (lv *likeValidator) Delete(like *domain.Like) error {
	err := runLikeValFns(like, lv.likeExists)
	if err != nil {
		return err
	}
	return lv.likeGorm.Delete(like)
}

// runLikeValFns runs any number of functions of type likeValFn on the passed in Like object.
// If none of them returns an error, it returns nil. Otherwise, it returns the respective error.
func runLikeValFns(like *domain.Like, fns ...likeValFn) error {
	for _, fn := range fns {
		if err := fn(like); err != nil {
			return err
		}
	}
	return nil
}

// A likeValFn is any function that takes in a pointer to a domain.Like object and returns an error.
type likeValFn func(like *domain.Like) error

// userIdValid ensures that the userId is not empty.
func (lv *likeValidator) userIdValid(like *domain.Like) error {
	if like.UserID <= 0 {
		return errs.UserIdRequired
	}
	return nil
}

// likedMessageExists makes sure that the message to be liked actually exists.
func (lv *likeValidator) likedMessageExists(like *domain.Like) error {
	err := lv.db.First(&domain.Message{}, "id = ?", like.MessageID).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return errs.Errorf(errs.ENOTFOUND, "The liked message does not exist.")
		}
		return err
	}
	return nil
}

// notOwnMessage makes sure that users don't like their own messages.
func (lv *likeValidator) notOwnMessage(like *domain.Like) error {
	var message domain.Message
	if err := lv.db.First(&message, "id = ?", like.MessageID).Error; err != nil {
		return err
	}
	if message.UserID == like.UserID {
		return errs.Errorf(errs.EINVALID, "You cannot like your own message.")
	}
	return nil
}

// notAlreadyLiked makes sure that the user doesn't already like the message.
func (lv *likeValidator) notAlreadyLiked(like *domain.Like) error {
	err := lv.db.
		Where("user_id = ? AND message_id = ?", like.UserID, like.MessageID).
		First(&domain.Like{}).Error
	if err == nil {
		return errs.Errorf(errs.ECONFLICT, "You already like that message.")
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return err
	}
	return nil
}

// likeExists makes sure that the Like record to be deleted actually exists.
// It fills in the record's ID so that likeGorm.Delete targets the right row.
func (lv *likeValidator) likeExists(like *domain.Like) error {
	var existing domain.Like
	err := lv.db.
		Where("user_id = ? AND message_id = ?", like.UserID, like.MessageID).
		First(&existing).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return errs.Errorf(errs.ENOTFOUND, "You cannot unlike a message you have not liked.")
		}
		return err
	}
	like.ID = existing.ID
	return nil
}

// ByUserID retrieves all likes of a user, along with the Message belonging to each Like.
func (lg *likeGorm) ByUserID(userId int) ([]domain.Like, error) {
	var likes []domain.Like
	err := lg.db.
		Where("user_id = ?", userId).
		Preload("Message.User").
		Find(&likes).Error
	if err != nil {
		return nil, err
	}
	return likes, nil
}

// Likes takes a user ID and a message ID and returns a boolean expressing
// whether the given user likes the given message or not.
func (lg *likeGorm) Likes(userId, messageId int) bool {
	err := lg.db.
		Where("user_id = ? AND message_id = ?", userId, messageId).
		First(&domain.Like{}).Error
	return err == nil
}

// Create stores the data from the Like object in a new database record.
func (lg *likeGorm) Create(like *domain.Like) error {
	return lg.db.Create(like).Error
}

// Delete permanently deletes the database record matching the data from the Like object.
func (lg *likeGorm) Delete(like *domain.Like) error {
	return lg.db.Delete(like).Error
}

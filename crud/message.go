package crud

import (
	"errors"
	"strings"
	"unicode/utf8"

	"gorm.io/gorm"

	"github.com/ptam11/warbler/domain"
	"github.com/ptam11/warbler/errs"
)

// MessageService manages Messages.
// It implements the domain.MessageService interface.
type MessageService struct {
	messageValidator
}

// messageValidator runs validations on incoming Message data.
// On success, it passes the data on to messageGorm.
// Otherwise, it returns the error of the validation that has failed.
type messageValidator struct {
	messageGorm
}

// messageGorm runs CRUD operations on the database using incoming Message data.
// It assumes that data has been validated. On success, it returns nil.
// Otherwise, it returns the error of the operation that has failed.
type messageGorm struct {
	db *gorm.DB
}

// NewMessageService returns an instance of MessageService.
func NewMessageService(db *gorm.DB) *MessageService {
	return &MessageService{
		messageValidator{
			messageGorm{
				db: db,
			},
		},
	}
}

// Ensure the MessageService struct properly implements the domain.MessageService interface.
// If it does not, then this expression becomes invalid and won't compile.
var _ domain.MessageService = &MessageService{}

// Create runs validations needed for creating new Message database records.
func (mv *messageValidator) Create(message *domain.Message) error {
	err := runMessageValFns(message,
		mv.userIdValid,
		mv.textMinLength,
		mv.textMaxLength)
	if err != nil {
		return err
	}
	return mv.messageGorm.Create(message)
}

// Delete runs validations needed for deleting existing Message database records.
func (mv *messageValidator) Delete(message *domain.Message) error {
	err := runMessageValFns(message, mv.idValid)
	if err != nil {
		return err
	}
	return mv.messageGorm.Delete(message)
}

// runMessageValFns runs any number of functions of type messageValFn on the passed in Message object.
// If none of them returns an error, it returns nil. Otherwise, it returns the respective error.
func runMessageValFns(message *domain.Message, fns ...messageValFn) error {
	for _, fn := range fns {
		if err := fn(message); err != nil {
			return err
		}
	}
	return nil
}

// A messageValFn is any function that takes in a pointer to a domain.Message object and returns an error.
type messageValFn func(message *domain.Message) error

// idValid makes sure that the passed in ID of a Message to be deleted is greater than 0.
func (mv *messageValidator) idValid(message *domain.Message) error {
	if message.ID <= 0 {
		return errs.IdInvalid
	}
	return nil
}

// userIdValid ensures that the userId is not empty.
func (mv *messageValidator) userIdValid(message *domain.Message) error {
	if message.UserID <= 0 {
		return errs.UserIdRequired
	}
	return nil
}

// textMinLength makes sure that the message's text is not empty.
func (mv *messageValidator) textMinLength(message *domain.Message) error {
	textStripped := strings.ReplaceAll(message.Text, " ", "")
	if textStripped == "" {
		return errs.Errorf(errs.EINVALID, "Message text must not be empty.")
	}
	return nil
}

// textMaxLength makes sure that the message's text does not exceed the maximum length.
func (mv *messageValidator) textMaxLength(message *domain.Message) error {
	if utf8.RuneCountInString(message.Text) > domain.MessageMaxLength {
		return errs.Errorf(errs.EINVALID, "Message text max length is %d characters.", domain.MessageMaxLength)
	}
	return nil
}

// ByID retrieves a single Message by ID, along with its author.
// If the record doesn't exist, it returns errs.ENOTFOUND.
func (mg *messageGorm) ByID(id int) (*domain.Message, error) {
	var message domain.Message
	err := mg.db.
		Preload("User").
		First(&message, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.Errorf(errs.ENOTFOUND, "The message does not exist.")
		}
		return nil, err
	}
	return &message, nil
}

// ByUserID retrieves all messages of a user, newest first.
func (mg *messageGorm) ByUserID(userId int) ([]domain.Message, error) {
	var messages []domain.Message
	err := mg.db.
		Where("user_id = ?", userId).
		Preload("User").
		Order("created_at desc").
		Find(&messages).Error
	if err != nil {
		return nil, err
	}
	return messages, nil
}

// FeedByUserID retrieves the user's home feed: their own messages plus
// those of everyone they follow, newest first.
func (mg *messageGorm) FeedByUserID(userId int) ([]domain.Message, error) {
	var followedIds []int
	err := mg.db.Model(&domain.Follow{}).
		Where("follower_id = ?", userId).
		Pluck("followed_id", &followedIds).Error
	if err != nil {
		return nil, err
	}
	followedIds = append(followedIds, userId)

	var messages []domain.Message
	err = mg.db.
		Where("user_id IN ?", followedIds).
		Preload("User").
		Order("created_at desc").
		Limit(100).
		Find(&messages).Error
	if err != nil {
		return nil, err
	}
	return messages, nil
}

// LikedByUserID retrieves all messages a user has liked, newest first.
func (mg *messageGorm) LikedByUserID(userId int) ([]domain.Message, error) {
	var messages []domain.Message
	err := mg.db.
		Joins("JOIN likes ON likes.message_id = messages.id").
		Where("likes.user_id = ?", userId).
		Preload("User").
		Order("messages.created_at desc").
		Find(&messages).Error
	if err != nil {
		return nil, err
	}
	return messages, nil
}

// CountByUserID returns the number of messages a user has posted.
func (mg *messageGorm) CountByUserID(userId int) (int, error) {
	var count int64
	err := mg.db.Model(&domain.Message{}).Where("user_id = ?", userId).Count(&count).Error
	if err != nil {
		return 0, err
	}
	return int(count), nil
}

// Create stores the data from the Message object in a new database record.
func (mg *messageGorm) Create(message *domain.Message) error {
	return mg.db.Create(message).Error
}

// Delete permanently deletes a Message record from the database,
// along with its associated Likes.
func (mg *messageGorm) Delete(message *domain.Message) error {
	return mg.db.Select("Likes").Delete(message).Error
}

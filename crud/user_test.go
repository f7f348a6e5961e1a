package crud

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ptam11/warbler/domain"
	"github.com/ptam11/warbler/errs"
)

func TestUserService_Create(t *testing.T) {
	us := NewUserService(testDB(t), testPepper)

	user := &domain.User{
		Username: "testuser",
		Email:    "test@test.com",
		Password: "testuser",
	}
	require.NoError(t, us.Create(context.Background(), user))

	found, err := us.ByID(user.ID)
	require.NoError(t, err)
	assert.Equal(t, "testuser", found.Username)
	assert.Equal(t, "test@test.com", found.Email)
	assert.Equal(t, "<User #1: testuser, test@test.com>", found.String())

	// The plaintext password must be gone, only the hash stored.
	assert.Empty(t, user.Password)
	assert.NotEmpty(t, found.PasswordHash)
	assert.NotEqual(t, "testuser", found.PasswordHash)

	// Default profile images were filled in.
	assert.Equal(t, domain.DefaultImageURL, found.ImageURL)
	assert.Equal(t, domain.DefaultHeaderImageURL, found.HeaderImageURL)
}

func TestUserService_Create_Rejections(t *testing.T) {
	db := testDB(t)
	us := NewUserService(db, testPepper)
	createTestUser(t, us, "testuser", "test@test.com")

	tests := []struct {
		name string
		user domain.User
		code string
	}{
		{
			name: "duplicate username",
			user: domain.User{Username: "testuser", Email: "uu@test.com", Password: "password"},
			code: errs.ECONFLICT,
		},
		{
			name: "duplicate email",
			user: domain.User{Username: "UE", Email: "test@test.com", Password: "password"},
			code: errs.ECONFLICT,
		},
		{
			name: "missing username",
			user: domain.User{Email: "mu@test.com", Password: "password"},
			code: errs.EINVALID,
		},
		{
			name: "missing email",
			user: domain.User{Username: "ME", Password: "password"},
			code: errs.EINVALID,
		},
		{
			name: "missing password",
			user: domain.User{Username: "MP", Email: "mp@test.com"},
			code: errs.EINVALID,
		},
		{
			name: "password too short",
			user: domain.User{Username: "PS", Email: "ps@test.com", Password: "short"},
			code: errs.EINVALID,
		},
		{
			name: "invalid email format",
			user: domain.User{Username: "EF", Email: "not-an-email", Password: "password"},
			code: errs.EINVALID,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := us.Create(context.Background(), &tt.user)
			require.Error(t, err)
			assert.Equal(t, tt.code, errs.ErrorCode(err))
		})
	}

	// No rejected attempt left a row behind.
	var count int64
	require.NoError(t, db.Model(&domain.User{}).Count(&count).Error)
	assert.EqualValues(t, 1, count)
}

func TestUserService_Authenticate(t *testing.T) {
	us := NewUserService(testDB(t), testPepper)

	user := &domain.User{
		Username: "valid",
		Email:    "valid@test.com",
		Password: "password",
	}
	require.NoError(t, us.Create(context.Background(), user))

	found, err := us.Authenticate("valid", "password")
	require.NoError(t, err)
	assert.Equal(t, user.ID, found.ID)

	// A wrong password and an unknown username return the exact same
	// error, so callers cannot tell which of the two failed.
	found, err = us.Authenticate("valid", "Invalid")
	assert.Nil(t, found)
	assert.Equal(t, errs.InvalidCredentials, err)

	found, err = us.Authenticate("Invalid", "password")
	assert.Nil(t, found)
	assert.Equal(t, errs.InvalidCredentials, err)
}

func TestUserService_Update(t *testing.T) {
	us := NewUserService(testDB(t), testPepper)
	user := createTestUser(t, us, "testuser", "test@test.com")

	user.Bio = "Just warbling."
	user.Email = "new@test.com"
	require.NoError(t, us.Update(context.Background(), user))

	found, err := us.ByID(user.ID)
	require.NoError(t, err)
	assert.Equal(t, "Just warbling.", found.Bio)
	assert.Equal(t, "new@test.com", found.Email)

	// Updating must not steal another user's email.
	other := createTestUser(t, us, "other", "other@test.com")
	other.Email = "new@test.com"
	err = us.Update(context.Background(), other)
	assert.Equal(t, errs.ECONFLICT, errs.ErrorCode(err))
}

func TestUserService_Search(t *testing.T) {
	us := NewUserService(testDB(t), testPepper)
	createTestUser(t, us, "warble-fan", "fan@test.com")
	createTestUser(t, us, "other", "other@test.com")

	users, err := us.Search("warble")
	require.NoError(t, err)
	require.Len(t, users, 1)
	assert.Equal(t, "warble-fan", users[0].Username)
}

package crud

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ptam11/warbler/domain"
	"github.com/ptam11/warbler/errs"
)

func TestFollowService_FollowUnfollow(t *testing.T) {
	db := testDB(t)
	us := NewUserService(db, testPepper)
	fs := NewFollowService(db)

	u1 := createTestUser(t, us, "u1", "u1@test.com")
	u2 := createTestUser(t, us, "u2", "u2@test.com")

	require.NoError(t, fs.Create(&domain.Follow{FollowerID: u1.ID, FollowedID: u2.ID}))

	assert.True(t, fs.IsFollowedBy(u2.ID, u1.ID))
	assert.False(t, fs.IsFollowedBy(u1.ID, u2.ID))

	following, err := fs.FollowingByUserID(u1.ID)
	require.NoError(t, err)
	require.Len(t, following, 1)
	assert.Equal(t, u2.ID, following[0].ID)

	followers, err := fs.FollowersByUserID(u2.ID)
	require.NoError(t, err)
	require.Len(t, followers, 1)
	assert.Equal(t, u1.ID, followers[0].ID)

	require.NoError(t, fs.Delete(&domain.Follow{FollowerID: u1.ID, FollowedID: u2.ID}))

	assert.False(t, fs.IsFollowedBy(u2.ID, u1.ID))
	following, err = fs.FollowingByUserID(u1.ID)
	require.NoError(t, err)
	assert.Empty(t, following)
}

func TestFollowService_Create_Rejections(t *testing.T) {
	db := testDB(t)
	us := NewUserService(db, testPepper)
	fs := NewFollowService(db)

	u1 := createTestUser(t, us, "u1", "u1@test.com")
	u2 := createTestUser(t, us, "u2", "u2@test.com")

	// Following yourself is rejected.
	err := fs.Create(&domain.Follow{FollowerID: u1.ID, FollowedID: u1.ID})
	assert.Equal(t, errs.EINVALID, errs.ErrorCode(err))

	// Following a nonexistent user is rejected.
	err = fs.Create(&domain.Follow{FollowerID: u1.ID, FollowedID: 999})
	assert.Equal(t, errs.ENOTFOUND, errs.ErrorCode(err))

	// The same edge cannot exist twice.
	require.NoError(t, fs.Create(&domain.Follow{FollowerID: u1.ID, FollowedID: u2.ID}))
	err = fs.Create(&domain.Follow{FollowerID: u1.ID, FollowedID: u2.ID})
	assert.Equal(t, errs.ECONFLICT, errs.ErrorCode(err))

	// The reverse edge is a different edge and still allowed.
	require.NoError(t, fs.Create(&domain.Follow{FollowerID: u2.ID, FollowedID: u1.ID}))
}

func TestFollowService_Delete_NotFollowing(t *testing.T) {
	db := testDB(t)
	us := NewUserService(db, testPepper)
	fs := NewFollowService(db)

	u1 := createTestUser(t, us, "u1", "u1@test.com")
	u2 := createTestUser(t, us, "u2", "u2@test.com")

	err := fs.Delete(&domain.Follow{FollowerID: u1.ID, FollowedID: u2.ID})
	assert.Equal(t, errs.ENOTFOUND, errs.ErrorCode(err))
}

func TestFollowService_Counts(t *testing.T) {
	db := testDB(t)
	us := NewUserService(db, testPepper)
	fs := NewFollowService(db)

	u1 := createTestUser(t, us, "u1", "u1@test.com")
	u2 := createTestUser(t, us, "u2", "u2@test.com")
	u3 := createTestUser(t, us, "u3", "u3@test.com")

	require.NoError(t, fs.Create(&domain.Follow{FollowerID: u1.ID, FollowedID: u3.ID}))
	require.NoError(t, fs.Create(&domain.Follow{FollowerID: u2.ID, FollowedID: u3.ID}))

	following, err := fs.CountFollowing(u1.ID)
	require.NoError(t, err)
	assert.Equal(t, 1, following)

	followers, err := fs.CountFollowers(u3.ID)
	require.NoError(t, err)
	assert.Equal(t, 2, followers)
}

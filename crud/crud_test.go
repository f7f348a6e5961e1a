package crud

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/ptam11/warbler/domain"
)

const testPepper = "test-pepper"

// testDB opens a fresh in-memory database with all tables migrated.
// The pool is capped at one connection so every query sees the same
// in-memory store.
func testDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	sqlDb, err := db.DB()
	require.NoError(t, err)
	sqlDb.SetMaxOpenConns(1)
	t.Cleanup(func() { sqlDb.Close() })

	err = db.AutoMigrate(domain.User{}, domain.Message{}, domain.Follow{}, domain.Like{})
	require.NoError(t, err)
	return db
}

// createTestUser signs up a user with a valid default password.
func createTestUser(t *testing.T, us *UserService, username, email string) *domain.User {
	t.Helper()
	user := &domain.User{
		Username: username,
		Email:    email,
		Password: "password",
	}
	require.NoError(t, us.Create(context.Background(), user))
	return user
}

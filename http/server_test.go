package http

import (
	"net/http"
	"net/http/cookiejar"
	"net/url"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/ptam11/warbler/crud"
	"github.com/ptam11/warbler/domain"
)

// newTestServer builds a server on top of a fresh in-memory database.
// The returned gorm handle lets tests inspect what the routes persisted.
func newTestServer(t *testing.T) (*Server, *gorm.DB) {
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

	services, err := crud.NewServices(db,
		crud.WithUser("test-pepper"),
		crud.WithMessage(),
		crud.WithFollow(),
		crud.WithLike(),
	)
	require.NoError(t, err)

	return NewServer(false, "test-session-key", services), db
}

// newTestClient returns a client that carries the session cookie but does
// not follow redirects, so tests can assert on the 302 responses themselves.
func newTestClient(t *testing.T) *http.Client {
	t.Helper()
	jar, err := cookiejar.New(nil)
	require.NoError(t, err)
	return &http.Client{
		Jar: jar,
		CheckRedirect: func(req *http.Request, via []*http.Request) error {
			return http.ErrUseLastResponse
		},
	}
}

// postForm performs a form-encoded POST and returns the response.
func postForm(t *testing.T, client *http.Client, target string, form url.Values) *http.Response {
	t.Helper()
	req, err := http.NewRequest("POST", target, strings.NewReader(form.Encode()))
	require.NoError(t, err)
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	resp, err := client.Do(req)
	require.NoError(t, err)
	resp.Body.Close()
	return resp
}

// get performs a GET and returns the response.
func get(t *testing.T, client *http.Client, target string) *http.Response {
	t.Helper()
	resp, err := client.Get(target)
	require.NoError(t, err)
	resp.Body.Close()
	return resp
}

// signup registers a user through the signup route. The session cookie set
// on the response logs the client in.
func signup(t *testing.T, client *http.Client, baseURL, username, email, password string) {
	t.Helper()
	resp := postForm(t, client, baseURL+"/signup", url.Values{
		"username": {username},
		"email":    {email},
		"password": {password},
	})
	require.Equal(t, http.StatusFound, resp.StatusCode)
}

package http

import (
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ptam11/warbler/domain"
)

func TestMessageRoutes_LoggedInAndOut(t *testing.T) {
	srv, db := newTestServer(t)
	ts := httptest.NewServer(srv)
	defer ts.Close()

	client := newTestClient(t)
	signup(t, client, ts.URL, "testuser", "test@test.com", "testuser")

	// A logged in user can add a message.
	resp := postForm(t, client, ts.URL+"/messages/new", url.Values{"text": {"Hello"}})
	assert.Equal(t, http.StatusFound, resp.StatusCode)

	var messages []domain.Message
	require.NoError(t, db.Find(&messages).Error)
	require.Len(t, messages, 1)
	assert.Equal(t, "Hello", messages[0].Text)

	// And delete it again.
	resp = postForm(t, client, ts.URL+"/messages/1/delete", nil)
	assert.Equal(t, http.StatusFound, resp.StatusCode)

	var count int64
	require.NoError(t, db.Model(&domain.Message{}).Count(&count).Error)
	assert.EqualValues(t, 0, count)

	// Without a session both actions still redirect, but nothing happens.
	anon := newTestClient(t)

	resp = postForm(t, anon, ts.URL+"/messages/new", url.Values{"text": {"Hello"}})
	assert.Equal(t, http.StatusFound, resp.StatusCode)

	require.NoError(t, db.Model(&domain.Message{}).Count(&count).Error)
	assert.EqualValues(t, 0, count)

	resp = postForm(t, anon, ts.URL+"/messages/1/delete", nil)
	assert.Equal(t, http.StatusFound, resp.StatusCode)

	require.NoError(t, db.Model(&domain.Message{}).Count(&count).Error)
	assert.EqualValues(t, 0, count)
}

func TestMessageRoutes_EmptyTextRejected(t *testing.T) {
	srv, db := newTestServer(t)
	ts := httptest.NewServer(srv)
	defer ts.Close()

	client := newTestClient(t)
	signup(t, client, ts.URL, "testuser", "test@test.com", "testuser")

	resp := postForm(t, client, ts.URL+"/messages/new", url.Values{"text": {""}})
	assert.Equal(t, http.StatusFound, resp.StatusCode)

	var count int64
	require.NoError(t, db.Model(&domain.Message{}).Count(&count).Error)
	assert.EqualValues(t, 0, count)
}

func TestMessageRoutes_DeleteRequiresOwnership(t *testing.T) {
	srv, db := newTestServer(t)
	ts := httptest.NewServer(srv)
	defer ts.Close()

	owner := newTestClient(t)
	signup(t, owner, ts.URL, "owner", "owner@test.com", "password")
	resp := postForm(t, owner, ts.URL+"/messages/new", url.Values{"text": {"mine"}})
	require.Equal(t, http.StatusFound, resp.StatusCode)

	// A different logged in user cannot delete it. They still just get
	// a redirect, never an error page.
	intruder := newTestClient(t)
	signup(t, intruder, ts.URL, "intruder", "intruder@test.com", "password")

	resp = postForm(t, intruder, ts.URL+"/messages/1/delete", nil)
	assert.Equal(t, http.StatusFound, resp.StatusCode)

	var count int64
	require.NoError(t, db.Model(&domain.Message{}).Count(&count).Error)
	assert.EqualValues(t, 1, count)

	// Deleting an absent message is idempotent for the owner as well.
	resp = postForm(t, owner, ts.URL+"/messages/1/delete", nil)
	assert.Equal(t, http.StatusFound, resp.StatusCode)
	resp = postForm(t, owner, ts.URL+"/messages/1/delete", nil)
	assert.Equal(t, http.StatusFound, resp.StatusCode)
}

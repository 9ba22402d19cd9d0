package userdirectory

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestLogger() *logrus.Logger {
	logger := logrus.New()
	logger.SetLevel(logrus.PanicLevel)
	return logger
}

func TestLookup_Found(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/users/abc", r.URL.Path)
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"id":"abc","name":"Ann","email":"ann@x.com"}`))
	}))
	defer srv.Close()

	c := NewClient(srv.URL, time.Second, newTestLogger())
	res := c.Lookup(context.Background(), "abc")

	require.Equal(t, StatusFound, res.Status)
	require.NotNil(t, res.User)
	assert.Equal(t, "abc", res.User.ID)
	assert.Equal(t, "Ann", res.User.Name)
	assert.Equal(t, "ann@x.com", res.User.Email)
}

func TestLookup_NotFound(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))
	defer srv.Close()

	c := NewClient(srv.URL, time.Second, newTestLogger())
	res := c.Lookup(context.Background(), "missing")

	assert.Equal(t, StatusNotFound, res.Status)
	assert.Nil(t, res.User)
}

func TestLookup_UnexpectedStatusIsMalfunction(t *testing.T) {
	for _, status := range []int{http.StatusBadRequest, http.StatusInternalServerError, http.StatusTeapot} {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(status)
		}))

		c := NewClient(srv.URL, time.Second, newTestLogger())
		res := c.Lookup(context.Background(), "abc")
		assert.Equal(t, StatusMalfunction, res.Status, "status %d must classify as malfunction", status)

		srv.Close()
	}
}

func TestLookup_UndecodableBodyIsMalfunction(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{{not json`))
	}))
	defer srv.Close()

	c := NewClient(srv.URL, time.Second, newTestLogger())
	res := c.Lookup(context.Background(), "abc")

	assert.Equal(t, StatusMalfunction, res.Status)
}

func TestLookup_MissingIDInBodyIsMalfunction(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"name":"Ann"}`))
	}))
	defer srv.Close()

	c := NewClient(srv.URL, time.Second, newTestLogger())
	res := c.Lookup(context.Background(), "abc")

	assert.Equal(t, StatusMalfunction, res.Status)
}

func TestLookup_ConnectionRefusedIsUnreachable(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	srv.Close() // nothing listens anymore

	c := NewClient(srv.URL, time.Second, newTestLogger())
	res := c.Lookup(context.Background(), "abc")

	assert.Equal(t, StatusUnreachable, res.Status)
}

func TestLookup_TimeoutIsUnreachable(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		time.Sleep(300 * time.Millisecond)
	}))
	defer srv.Close()

	c := NewClient(srv.URL, 50*time.Millisecond, newTestLogger())
	res := c.Lookup(context.Background(), "abc")

	assert.Equal(t, StatusUnreachable, res.Status)
}

func TestLookup_RepeatedLookupIsIdempotent(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"id":"abc","name":"Ann","email":"ann@x.com"}`))
	}))
	defer srv.Close()

	c := NewClient(srv.URL, time.Second, newTestLogger())
	first := c.Lookup(context.Background(), "abc")
	second := c.Lookup(context.Background(), "abc")

	require.Equal(t, StatusFound, first.Status)
	require.Equal(t, StatusFound, second.Status)
	assert.Equal(t, *first.User, *second.User)
}

func TestCreateUser_Created(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/users", r.URL.Path)
		w.WriteHeader(http.StatusCreated)
		_, _ = w.Write([]byte(`{"id":"u-1","name":"Ann","email":"ann@x.com"}`))
	}))
	defer srv.Close()

	c := NewClient(srv.URL, time.Second, newTestLogger())
	out := c.CreateUser(context.Background(), "Ann", "ann@x.com")

	require.False(t, out.Unreachable)
	require.NotNil(t, out.User)
	assert.Equal(t, "u-1", out.User.ID)
}

func TestCreateUser_FailureForwardsStatusAndBody(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnprocessableEntity)
		_, _ = w.Write([]byte(`{"error":"invalid payload"}`))
	}))
	defer srv.Close()

	c := NewClient(srv.URL, time.Second, newTestLogger())
	out := c.CreateUser(context.Background(), "", "not-an-email")

	require.False(t, out.Unreachable)
	assert.Nil(t, out.User)
	assert.Equal(t, http.StatusUnprocessableEntity, out.StatusCode)
	assert.JSONEq(t, `{"error":"invalid payload"}`, string(out.Body))
}

func TestCreateUser_Unreachable(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	srv.Close()

	c := NewClient(srv.URL, time.Second, newTestLogger())
	out := c.CreateUser(context.Background(), "Ann", "ann@x.com")

	assert.True(t, out.Unreachable)
}

package userdirectory

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/sirupsen/logrus"
)

// Status classifies the result of a directory lookup. The four variants are
// mutually exclusive; callers branch on the value instead of unwrapping
// transport errors.
type Status int

const (
	// StatusFound means the directory returned a well-formed user record.
	StatusFound Status = iota
	// StatusNotFound means the directory affirmatively reported no such user.
	StatusNotFound
	// StatusUnreachable means the request never completed: connection refused,
	// DNS failure, timeout. Nothing can be concluded about the user.
	StatusUnreachable
	// StatusMalfunction means the directory answered, but with a status or
	// body this client does not understand.
	StatusMalfunction
)

func (s Status) String() string {
	switch s {
	case StatusFound:
		return "found"
	case StatusNotFound:
		return "not_found"
	case StatusUnreachable:
		return "unreachable"
	default:
		return "malfunction"
	}
}

// User is the directory's wire representation of a user record.
type User struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}

// Result is the outcome of a single lookup. User is non-nil only when
// Status is StatusFound.
type Result struct {
	Status Status
	User   *User
}

// CreateOutcome carries the directory's raw answer to a create call so the
// proxy can forward status and body verbatim. Unreachable is flagged
// separately because there is no status to forward.
type CreateOutcome struct {
	Unreachable bool
	StatusCode  int
	Body        []byte
	User        *User
}

// Client talks to the user directory over HTTP. The embedded http.Client
// carries the request timeout and is safe for concurrent use; one Client is
// shared by every request handler.
type Client struct {
	baseURL string
	http    *http.Client
	logger  *logrus.Logger
}

func NewClient(baseURL string, timeout time.Duration, logger *logrus.Logger) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{Timeout: timeout},
		logger:  logger,
	}
}

// Lookup asks the directory whether id denotes an existing user and maps the
// answer onto exactly one Status. No caching, no retries.
func (c *Client) Lookup(ctx context.Context, id string) Result {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/users/"+id, nil)
	if err != nil {
		return Result{Status: StatusMalfunction}
	}

	resp, err := c.http.Do(req)
	if err != nil {
		c.logger.WithError(err).WithField("user_id", id).Warn("user directory unreachable")
		return Result{Status: StatusUnreachable}
	}
	defer func() { _ = resp.Body.Close() }()

	switch resp.StatusCode {
	case http.StatusOK:
		var u User
		if err := json.NewDecoder(resp.Body).Decode(&u); err != nil || u.ID == "" {
			c.logger.WithError(err).WithField("user_id", id).Error("user directory returned undecodable user")
			return Result{Status: StatusMalfunction}
		}
		return Result{Status: StatusFound, User: &u}
	case http.StatusNotFound:
		return Result{Status: StatusNotFound}
	default:
		c.logger.WithFields(logrus.Fields{"user_id": id, "status": resp.StatusCode}).Error("unexpected user directory response")
		return Result{Status: StatusMalfunction}
	}
}

// CreateUser forwards a create request and reports the directory's response
// without reinterpreting it; the proxy handler decides what to surface.
func (c *Client) CreateUser(ctx context.Context, name, email string) CreateOutcome {
	payload, _ := json.Marshal(map[string]string{"name": name, "email": email})

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/users", bytes.NewReader(payload))
	if err != nil {
		return CreateOutcome{Unreachable: true}
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		c.logger.WithError(err).Warn("user directory unreachable")
		return CreateOutcome{Unreachable: true}
	}
	defer func() { _ = resp.Body.Close() }()

	body, _ := io.ReadAll(resp.Body)
	out := CreateOutcome{StatusCode: resp.StatusCode, Body: body}

	if resp.StatusCode == http.StatusOK || resp.StatusCode == http.StatusCreated {
		var u User
		if err := json.Unmarshal(body, &u); err != nil || u.ID == "" {
			c.logger.WithError(err).Error("user directory returned undecodable created user")
			return CreateOutcome{StatusCode: http.StatusBadGateway}
		}
		out.User = &u
	}
	return out
}

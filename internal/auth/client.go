// Package auth implements the client for the account server. Credential
// errors surface the server-provided message verbatim; only transport
// failures produce a generic error.
package auth

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/go-resty/resty/v2"

	"github.com/pavannsshetty7022/abbrevify/internal/log"
)

// DefaultBaseURL is the local development address of the auth server.
const DefaultBaseURL = "http://localhost:3000"

const requestTimeout = 15 * time.Second

// ErrUnavailable is returned when the auth server cannot be reached.
var ErrUnavailable = errors.New("authentication server unavailable")

// User is the account record returned on a successful login.
type User struct {
	FullName string `json:"full_name"`
	Email    string `json:"email"`
}

type registerRequest struct {
	FullName string `json:"fullName"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type serverResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
	User    *User  `json:"user"`
}

// Client talks to the account server.
type Client struct {
	http *resty.Client
}

// NewClient creates a client for the given base URL.
func NewClient(baseURL string) *Client {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	return &Client{http: resty.New().SetBaseURL(baseURL).SetTimeout(requestTimeout)}
}

// Register creates an account. A duplicate email or other rejection returns
// the server's message as the error text.
func (c *Client) Register(ctx context.Context, fullName, email, password string) (string, error) {
	return c.post(ctx, "/api/register", registerRequest{FullName: fullName, Email: email, Password: password})
}

// Login checks credentials and returns the account on success. Invalid
// credentials return the server's message as the error text.
func (c *Client) Login(ctx context.Context, email, password string) (*User, string, error) {
	res, err := c.http.R().
		SetContext(ctx).
		SetBody(loginRequest{Email: email, Password: password}).
		Post("/api/login")
	if err != nil {
		log.Error(log.CatAuth, "login request failed", "error", err)
		return nil, "", ErrUnavailable
	}

	var body serverResponse
	if err := json.Unmarshal(res.Body(), &body); err != nil {
		log.Error(log.CatAuth, "error parsing login response", "status_code", res.StatusCode(), "error", err)
		return nil, "", ErrUnavailable
	}
	if !res.IsSuccess() || !body.Success {
		return nil, "", errors.New(messageOrDefault(body.Message, "login failed"))
	}
	return body.User, body.Message, nil
}

func (c *Client) post(ctx context.Context, path string, payload any) (string, error) {
	res, err := c.http.R().
		SetContext(ctx).
		SetBody(payload).
		Post(path)
	if err != nil {
		log.Error(log.CatAuth, "auth request failed", "path", path, "error", err)
		return "", ErrUnavailable
	}

	var body serverResponse
	if err := json.Unmarshal(res.Body(), &body); err != nil {
		log.Error(log.CatAuth, "error parsing auth response", "path", path, "status_code", res.StatusCode(), "error", err)
		return "", ErrUnavailable
	}
	if !res.IsSuccess() || !body.Success {
		return "", errors.New(messageOrDefault(body.Message, "request rejected"))
	}
	return body.Message, nil
}

func messageOrDefault(message, fallback string) string {
	if message == "" {
		return fallback
	}
	return message
}

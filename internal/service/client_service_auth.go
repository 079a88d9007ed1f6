package service

import (
	"context"
	"strings"

	"github.com/paveldk/go-blog-api/internal/adapter"
	"github.com/paveldk/go-blog-api/models"
)

type clientAuthService struct {
	blogClient adapter.BlogClient

	currentUser models.UserInfo
	loggedIn    bool
}

func NewClientAuthService(blogClient adapter.BlogClient) ClientAuthService {
	return &clientAuthService{blogClient: blogClient}
}

// Register implements [ClientAuthService]. It validates the required fields
// locally and forwards the registration to the server. The created account is
// returned but not logged in.
func (c *clientAuthService) Register(ctx context.Context, username, email, password string, role models.Role) (models.UserInfo, error) {
	username = strings.TrimSpace(username)
	email = strings.TrimSpace(email)

	if username == "" || email == "" || password == "" {
		return models.UserInfo{}, ErrInvalidDataProvided
	}
	if role != "" && !role.Valid() {
		return models.UserInfo{}, ErrInvalidDataProvided
	}

	user, err := c.blogClient.Register(ctx, models.RegisterRequest{
		Username: username,
		Email:    email,
		Password: password,
		Role:     role,
	})
	if err != nil {
		return models.UserInfo{}, mapAdapterError(err)
	}

	return user, nil
}

// Login implements [ClientAuthService]. On success the adapter holds the
// bearer token and the account is remembered as the current user.
func (c *clientAuthService) Login(ctx context.Context, email, password string) (models.UserInfo, error) {
	email = strings.TrimSpace(email)
	if email == "" || password == "" {
		return models.UserInfo{}, ErrInvalidCredentials
	}

	user, err := c.blogClient.Login(ctx, models.LoginRequest{Email: email, Password: password})
	if err != nil {
		return models.UserInfo{}, mapAdapterError(err)
	}

	c.currentUser = user
	c.loggedIn = true

	return user, nil
}

func (c *clientAuthService) CurrentUser() (models.UserInfo, bool) {
	return c.currentUser, c.loggedIn
}

// Logout implements [ClientAuthService].
func (c *clientAuthService) Logout() {
	c.currentUser = models.UserInfo{}
	c.loggedIn = false
	c.blogClient.SetToken("")
}

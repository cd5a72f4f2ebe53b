package services

import (
	"context"
	"fmt"
	"strings"

	"github.com/dmitrijs2005/storefront/internal/client/client"
	"github.com/dmitrijs2005/storefront/internal/client/models"
	"github.com/dmitrijs2005/storefront/internal/common"
)

// Sessioner is the part of session.Manager the services drive.
type Sessioner interface {
	Login(ctx context.Context, identity models.Identity, token string) error
	Logout(ctx context.Context) error
	Identity() (models.Identity, bool)
}

// AuthService defines authentication operations for the CLI.
//
// Contract:
//   - SignIn: authenticate against the server and install the session.
//   - SignUp: create a customer account.
//   - CheckEmail: report whether an email is already registered.
//   - SignOut: end the session locally.
//
// All methods must honor context cancellation/timeouts.
type AuthService interface {
	SignIn(ctx context.Context, username, password string) (models.Identity, error)
	SignUp(ctx context.Context, req models.SignUpRequest) error
	CheckEmail(ctx context.Context, email string) (bool, error)
	SignOut(ctx context.Context) error
}

type authService struct {
	client  client.Client
	session Sessioner
}

func NewAuthService(c client.Client, s Sessioner) AuthService {
	return &authService{client: c, session: s}
}

// SignIn posts the credentials and hands the returned token to the session.
// Transport and server errors are returned as they are; a token that is
// already expired is rejected by the session without being installed.
func (a *authService) SignIn(ctx context.Context, username, password string) (models.Identity, error) {
	if strings.TrimSpace(username) == "" || password == "" {
		return models.Identity{}, fmt.Errorf("%w: username and password are required", common.ErrValidation)
	}

	res, err := a.client.Login(ctx, username, password)
	if err != nil {
		return models.Identity{}, err
	}
	if err := a.session.Login(ctx, res.User, res.Token); err != nil {
		return models.Identity{}, err
	}
	return res.User, nil
}

func (a *authService) SignUp(ctx context.Context, req models.SignUpRequest) error {
	if strings.TrimSpace(req.Username) == "" || strings.TrimSpace(req.Email) == "" || req.Password == "" {
		return fmt.Errorf("%w: username, email and password are required", common.ErrValidation)
	}
	return a.client.SignUp(ctx, req)
}

func (a *authService) CheckEmail(ctx context.Context, email string) (bool, error) {
	if strings.TrimSpace(email) == "" {
		return false, fmt.Errorf("%w: email is required", common.ErrValidation)
	}
	return a.client.CheckEmail(ctx, email)
}

func (a *authService) SignOut(ctx context.Context) error {
	return a.session.Logout(ctx)
}

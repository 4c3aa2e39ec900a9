package auth

import (
	"context"
	"errors"

	"go.uber.org/zap"
)

// Service signs users in and keeps the outcome in the session
type Service struct {
	client  Client
	session *Session
	logger  *zap.SugaredLogger
}

func NewService(client Client, session *Session, logger *zap.SugaredLogger) *Service {
	return &Service{
		client:  client,
		session: session,
		logger:  logger,
	}
}

func (s *Service) Session() *Session {
	return s.session
}

// SignIn validates the input and exchanges it for an access token. Invalid input is returned
// as ValidationErrors without calling the auth api and without touching the session.
func (s *Service) SignIn(ctx context.Context, login, password string) (*LoginResponse, error) {
	if errs := ValidateSignIn(login, password); errs != nil {
		return nil, errs
	}

	s.session.Begin()
	res, err := s.client.SignInWithEmail(ctx, Credentials{Username: login, Password: password})
	if err != nil {
		if !errors.Is(err, ErrInvalidCredentials) {
			err = errors.Join(ErrInvalidCredentials, err)
		}
		s.session.Fail(ErrInvalidCredentials.Error())
		s.logger.Infow("sign in failed", "error", err)
		return nil, err
	}

	s.session.Succeed(*res)
	s.logger.Infow("signed in", "profileType", res.ProfileType, "expiry", s.session.Expiry())
	return res, nil
}

func (s *Service) SignOut() {
	s.session.Logout()
	s.logger.Debugw("signed out")
}

package auth

import (
	"errors"
	"sync"
	"time"

	"github.com/golang-jwt/jwt/v4"
	"golang.org/x/oauth2"
)

var (
	ErrNotAuthenticated = errors.New("not authenticated")
	ErrSessionExpired   = errors.New("session expired")
)

var _ oauth2.TokenSource = &Session{}

// Session holds the authentication state of one user. It is owned by the caller
// and safe for concurrent use.
type Session struct {
	mu            sync.RWMutex
	accessToken   string
	refreshToken  string
	profileType   string
	expiry        time.Time
	authenticated bool
	loading       bool
	failure       string
}

func NewSession() *Session {
	return &Session{}
}

// Begin marks a sign in attempt as in progress and clears the previous failure
func (s *Session) Begin() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.loading = true
	s.failure = ""
}

func (s *Session) Succeed(login LoginResponse) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.accessToken = login.AccessToken
	s.refreshToken = login.RefreshToken
	s.profileType = login.ProfileType
	s.expiry = tokenExpiry(login.AccessToken)
	s.authenticated = true
	s.loading = false
	s.failure = ""
}

// Fail records a failed sign in. A previously obtained token is kept.
func (s *Session) Fail(message string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.loading = false
	s.authenticated = false
	s.failure = message
}

func (s *Session) Logout() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.accessToken = ""
	s.refreshToken = ""
	s.profileType = ""
	s.expiry = time.Time{}
	s.authenticated = false
	s.loading = false
	s.failure = ""
}

func (s *Session) IsAuthenticated() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.authenticated
}

func (s *Session) IsLoading() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.loading
}

// Failure returns the message of the last failed sign in
func (s *Session) Failure() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.failure
}

func (s *Session) ProfileType() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.profileType
}

func (s *Session) AccessToken() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.accessToken
}

// Expiry is zero when the access token does not carry an exp claim
func (s *Session) Expiry() time.Time {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.expiry
}

// Token returns the access token as a bearer token
func (s *Session) Token() (*oauth2.Token, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if !s.authenticated || s.accessToken == "" {
		return nil, ErrNotAuthenticated
	}
	if !s.expiry.IsZero() && time.Now().After(s.expiry) {
		return nil, ErrSessionExpired
	}

	return &oauth2.Token{
		AccessToken:  s.accessToken,
		TokenType:    "Bearer",
		RefreshToken: s.refreshToken,
		Expiry:       s.expiry,
	}, nil
}

// tokenExpiry reads the exp claim of a JWT access token. The token was just issued
// by the auth api so the signature is not verified.
func tokenExpiry(token string) time.Time {
	claims := jwt.RegisteredClaims{}
	if _, _, err := jwt.NewParser().ParseUnverified(token, &claims); err != nil {
		return time.Time{}
	}
	if claims.ExpiresAt == nil {
		return time.Time{}
	}
	return claims.ExpiresAt.Time
}

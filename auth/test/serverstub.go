package test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync"
	"time"

	"github.com/labstack/echo/v4"

	errs "github.com/sosportal/portal/errors"
)

const ProfileTypePatient = "Patient"

type SignInRequest struct {
	Credentials struct {
		Username string `json:"username"`
		Password string `json:"password"`
	} `json:"credentials"`
	Device struct {
		Id      string `json:"id"`
		Name    string `json:"name"`
		Model   string `json:"model"`
		System  string `json:"system"`
		Version string `json:"version"`
	} `json:"device"`
}

// AuthServer accepts the sign in of a single known user
type AuthServer struct {
	*httptest.Server

	Username string
	Password string
	Expiry   time.Time

	mu       sync.Mutex
	requests []SignInRequest
	tokens   []string
}

func ServerStub(username, password string) *AuthServer {
	stub := &AuthServer{
		Username: username,
		Password: password,
		Expiry:   time.Now().Add(time.Hour),
	}

	e := echo.New()
	e.HideBanner = true
	e.HTTPErrorHandler = errs.CustomHTTPErrorHandler
	e.POST("/signin/email", stub.signIn)

	stub.Server = httptest.NewServer(e)
	return stub
}

// Requests returns the decoded sign in requests
func (a *AuthServer) Requests() []SignInRequest {
	a.mu.Lock()
	defer a.mu.Unlock()
	return append([]SignInRequest{}, a.requests...)
}

// Tokens returns the issued access tokens
func (a *AuthServer) Tokens() []string {
	a.mu.Lock()
	defer a.mu.Unlock()
	return append([]string{}, a.tokens...)
}

func (a *AuthServer) signIn(c echo.Context) error {
	req := SignInRequest{}
	if err := json.NewDecoder(c.Request().Body).Decode(&req); err != nil {
		return errs.BadRequest
	}

	a.mu.Lock()
	defer a.mu.Unlock()
	a.requests = append(a.requests, req)

	if req.Credentials.Username != a.Username || req.Credentials.Password != a.Password {
		return errs.Unauthorized
	}

	token := AccessToken(a.Username, a.Expiry)
	a.tokens = append(a.tokens, token)
	return c.JSON(http.StatusOK, map[string]string{
		"accessToken":  token,
		"profileType":  ProfileTypePatient,
		"refreshToken": "refresh-" + req.Device.Id,
	})
}

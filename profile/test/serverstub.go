package test

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"

	"github.com/labstack/echo/v4"

	errs "github.com/sosportal/portal/errors"
	"github.com/sosportal/portal/profile"
)

// CoreServer serves the profile of the patient owning Token
type CoreServer struct {
	*httptest.Server

	mu      sync.Mutex
	token   string
	patient profile.Patient
	headers []http.Header
}

func ServerStub(token string, patient profile.Patient) *CoreServer {
	stub := &CoreServer{
		token:   token,
		patient: patient,
	}

	e := echo.New()
	e.HideBanner = true
	e.HTTPErrorHandler = errs.CustomHTTPErrorHandler
	e.GET("/Patients/me", stub.me)

	stub.Server = httptest.NewServer(e)
	return stub
}

// Headers returns the headers of every received request
func (c *CoreServer) Headers() []http.Header {
	c.mu.Lock()
	defer c.mu.Unlock()
	return append([]http.Header{}, c.headers...)
}

func (c *CoreServer) me(ctx echo.Context) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.headers = append(c.headers, ctx.Request().Header.Clone())

	token, ok := strings.CutPrefix(ctx.Request().Header.Get(echo.HeaderAuthorization), "Bearer ")
	if !ok || token != c.token {
		return errs.Unauthorized
	}

	return ctx.JSON(http.StatusOK, c.patient)
}

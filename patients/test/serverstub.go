package test

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"sync"

	"github.com/labstack/echo/v4"
	errs "github.com/sosportal/portal/errors"
	"github.com/sosportal/portal/patients"
)

// PatientsServer is an in-memory stand-in for the patients REST resource
type PatientsServer struct {
	*httptest.Server

	mu       sync.Mutex
	patients []patients.Patient
	failures map[string]int
	requests []string
}

func ServerStub(initial ...patients.Patient) *PatientsServer {
	stub := &PatientsServer{
		patients: append([]patients.Patient{}, initial...),
		failures: make(map[string]int),
	}

	e := echo.New()
	e.HideBanner = true
	e.HTTPErrorHandler = errs.CustomHTTPErrorHandler
	e.Use(stub.record, stub.fail)
	e.GET("/patients", stub.list)
	e.POST("/patients", stub.create)
	e.DELETE("/patients/:id", stub.delete)

	stub.Server = httptest.NewServer(e)
	return stub
}

// FailWith makes every request with the given method respond with status
func (p *PatientsServer) FailWith(method string, status int) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.failures[method] = status
}

// Requests returns the received requests as "METHOD /path"
func (p *PatientsServer) Requests() []string {
	p.mu.Lock()
	defer p.mu.Unlock()
	return append([]string{}, p.requests...)
}

func (p *PatientsServer) Patients() []patients.Patient {
	p.mu.Lock()
	defer p.mu.Unlock()
	return append([]patients.Patient{}, p.patients...)
}

func (p *PatientsServer) record(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		p.mu.Lock()
		p.requests = append(p.requests, fmt.Sprintf("%s %s", c.Request().Method, c.Request().URL.Path))
		p.mu.Unlock()
		return next(c)
	}
}

func (p *PatientsServer) fail(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		p.mu.Lock()
		status, ok := p.failures[c.Request().Method]
		p.mu.Unlock()
		if ok {
			return errs.New(status, fmt.Errorf("stubbed %s failure", c.Request().Method))
		}
		return next(c)
	}
}

func (p *PatientsServer) list(c echo.Context) error {
	return c.JSON(http.StatusOK, p.Patients())
}

func (p *PatientsServer) create(c echo.Context) error {
	patient := patients.Patient{}
	if err := c.Bind(&patient); err != nil {
		return errs.BadRequest
	}

	p.mu.Lock()
	p.patients = append(p.patients, patient)
	p.mu.Unlock()

	return c.JSON(http.StatusCreated, patient)
}

func (p *PatientsServer) delete(c echo.Context) error {
	id := c.Param("id")

	p.mu.Lock()
	defer p.mu.Unlock()
	for i, patient := range p.patients {
		if patient.Id == id {
			p.patients = append(p.patients[:i], p.patients[i+1:]...)
			return c.NoContent(http.StatusOK)
		}
	}

	return errs.NotFound
}

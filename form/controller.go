package form

import (
	"context"
	"errors"
	"sync"

	"github.com/sosportal/portal/patients"
	"github.com/sosportal/portal/validation"
	"go.uber.org/zap"
)

var (
	ErrSubmissionInProgress = errors.New("a submission is already in progress")
	ErrInvalid              = errors.New("the form has invalid fields")
)

type StateType string

const (
	StateIdle       StateType = "idle"
	StateSubmitting StateType = "submitting"
	StateSuccess    StateType = "success"
	StateError      StateType = "error"
)

type State struct {
	Type    StateType
	Message string
}

// Controller owns one registration form session: its values, its per field errors
// and the submission lifecycle. The lock is never held while the service is called.
type Controller struct {
	service patients.Service
	logger  *zap.SugaredLogger

	mu     sync.Mutex
	data   Data
	errors Errors
	state  State
}

func NewController(service patients.Service, logger *zap.SugaredLogger) *Controller {
	return &Controller{
		service: service,
		logger:  logger,
		errors:  Errors{},
		state:   State{Type: StateIdle},
	}
}

func (c *Controller) Data() Data {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.data
}

func (c *Controller) Errors() Errors {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.errors.clone()
}

func (c *Controller) State() State {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.state
}

func (c *Controller) IsSubmitting() bool {
	return c.State().Type == StateSubmitting
}

// Change stores a new value for field, masking CPF and birth date input. The field error is
// cleared and a finished submission (success or error) goes back to idle.
// Input is ignored while a submission is in flight.
func (c *Controller) Change(field Field, value string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.change(field, value)
}

// Fill applies Change to every field present in values
func (c *Controller) Fill(values map[string]interface{}) error {
	data, err := DecodeData(values)
	if err != nil {
		return err
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	for _, field := range Fields {
		if _, ok := values[string(field)]; ok {
			c.change(field, data.Get(field))
		}
	}
	return nil
}

func (c *Controller) change(field Field, value string) {
	if c.state.Type == StateSubmitting {
		c.logger.Debugw("ignoring change during submission", "field", field)
		return
	}

	switch field {
	case FieldCpf:
		value = validation.FormatCPF(value)
	case FieldBirthDate:
		value = validation.FormatDate(value)
	}

	c.data.set(field, value)
	delete(c.errors, field)

	if c.state.Type == StateSuccess || c.state.Type == StateError {
		c.transition(State{Type: StateIdle})
	}
}

// Blur validates the current value of field and returns its message, empty when valid
func (c *Controller) Blur(field Field) string {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.state.Type == StateSubmitting {
		return c.errors[field]
	}

	message := ValidateField(field, c.data.Get(field))
	if message == "" {
		delete(c.errors, field)
	} else {
		c.errors[field] = message
	}
	return message
}

// Reset returns a finished submission to idle without touching the form values
func (c *Controller) Reset() {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.state.Type != StateSubmitting {
		c.transition(State{Type: StateIdle})
	}
}

// Submit validates every field and, when the form is valid, creates the patient.
// It returns ErrSubmissionInProgress while another submission is in flight and
// ErrInvalid when a field fails validation.
func (c *Controller) Submit(ctx context.Context) error {
	c.mu.Lock()
	if c.state.Type == StateSubmitting {
		c.mu.Unlock()
		return ErrSubmissionInProgress
	}

	c.errors = Validate(c.data)
	if c.errors.HasErrors() {
		c.transition(State{Type: StateIdle})
		c.mu.Unlock()
		return ErrInvalid
	}

	data := c.data
	c.transition(State{Type: StateSubmitting})
	c.mu.Unlock()

	_, err := c.service.Create(ctx, patients.NewPatient{
		FullName:  data.FullName,
		Cpf:       data.Cpf,
		BirthDate: validation.DateToISO(data.BirthDate),
		Email:     data.Email,
	})

	c.mu.Lock()
	defer c.mu.Unlock()

	if err != nil {
		field := fieldForError(err)
		c.errors[field] = err.Error()
		c.logger.Infow("patient registration failed", "field", field, "error", err)
		c.transition(State{Type: StateError, Message: err.Error()})
		return err
	}

	c.data = Data{}
	c.errors = Errors{}
	c.transition(State{Type: StateSuccess, Message: MessageCreated})
	return nil
}

func (c *Controller) transition(next State) {
	if c.state == next {
		return
	}
	c.logger.Debugw("form state changed", "from", c.state.Type, "to", next.Type)
	c.state = next
}

// fieldForError picks the field that displays a submission error. Errors that do not
// concern the CPF are shown under the e-mail field.
func fieldForError(err error) Field {
	if errors.Is(err, patients.ErrDuplicateCPF) {
		return FieldCpf
	}
	return FieldEmail
}

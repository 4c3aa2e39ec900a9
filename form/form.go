package form

import (
	"strings"

	"github.com/mitchellh/mapstructure"
	"github.com/sosportal/portal/validation"
)

type Field string

const (
	FieldFullName  Field = "fullName"
	FieldCpf       Field = "cpf"
	FieldBirthDate Field = "birthDate"
	FieldEmail     Field = "email"
)

// Fields lists the form fields in display order
var Fields = []Field{FieldFullName, FieldCpf, FieldBirthDate, FieldEmail}

const (
	MessageFullNameRequired   = "Nome completo é obrigatório"
	MessageFullNameIncomplete = "Digite o nome completo"
	MessageCpfRequired        = "CPF é obrigatório"
	MessageCpfInvalid         = "CPF inválido"
	MessageBirthDateRequired  = "Data de nascimento é obrigatória"
	MessageBirthDateInvalid   = "Data inválida"
	MessageEmailRequired      = "E-mail é obrigatório"
	MessageEmailInvalid       = "E-mail inválido"

	MessageCreated = "Paciente cadastrado com sucesso!"
)

// Data holds the raw values of the registration form. Cpf and BirthDate are kept in their masked form.
type Data struct {
	FullName  string `mapstructure:"fullName"`
	Cpf       string `mapstructure:"cpf"`
	BirthDate string `mapstructure:"birthDate"`
	Email     string `mapstructure:"email"`
}

func (d Data) Get(field Field) string {
	switch field {
	case FieldFullName:
		return d.FullName
	case FieldCpf:
		return d.Cpf
	case FieldBirthDate:
		return d.BirthDate
	case FieldEmail:
		return d.Email
	default:
		return ""
	}
}

func (d *Data) set(field Field, value string) {
	switch field {
	case FieldFullName:
		d.FullName = value
	case FieldCpf:
		d.Cpf = value
	case FieldBirthDate:
		d.BirthDate = value
	case FieldEmail:
		d.Email = value
	}
}

// DecodeData builds form data from loosely typed key/value input keyed by field name
func DecodeData(values map[string]interface{}) (data Data, err error) {
	if len(values) == 0 {
		return
	}

	err = mapstructure.Decode(values, &data)
	return
}

// Errors maps a field to its message. Fields without errors are absent.
type Errors map[Field]string

func (e Errors) HasErrors() bool {
	return len(e) > 0
}

func (e Errors) clone() Errors {
	c := make(Errors, len(e))
	for k, v := range e {
		c[k] = v
	}
	return c
}

// ValidateField returns the message for the first rule value breaks, or an empty string
func ValidateField(field Field, value string) string {
	switch field {
	case FieldFullName:
		trimmed := strings.TrimSpace(value)
		if trimmed == "" {
			return MessageFullNameRequired
		}
		if len(strings.Split(trimmed, " ")) < 2 {
			return MessageFullNameIncomplete
		}
	case FieldCpf:
		if value == "" {
			return MessageCpfRequired
		}
		if !validation.IsValidCPF(value) {
			return MessageCpfInvalid
		}
	case FieldBirthDate:
		if value == "" {
			return MessageBirthDateRequired
		}
		if !validation.IsValidDate(value) {
			return MessageBirthDateInvalid
		}
	case FieldEmail:
		if value == "" {
			return MessageEmailRequired
		}
		if !validation.IsValidEmail(value) {
			return MessageEmailInvalid
		}
	}
	return ""
}

// Validate checks every field of data
func Validate(data Data) Errors {
	errs := Errors{}
	for _, field := range Fields {
		if message := ValidateField(field, data.Get(field)); message != "" {
			errs[field] = message
		}
	}
	return errs
}

package auth

import (
	"sort"
	"strings"

	"github.com/sosportal/portal/validation"
)

type Field string

const (
	FieldLogin    Field = "email"
	FieldPassword Field = "password"
)

const (
	MessageLoginRequired    = "Informe seu e-mail ou CPF"
	MessageLoginInvalid     = "Informe um e-mail ou CPF válido"
	MessagePasswordRequired = "Informe sua senha"
	MessageSignedIn         = "Login realizado com sucesso!"
)

// ValidationErrors maps a sign in field to its message
type ValidationErrors map[Field]string

func (v ValidationErrors) Error() string {
	messages := make([]string, 0, len(v))
	for _, message := range v {
		messages = append(messages, message)
	}
	sort.Strings(messages)
	return strings.Join(messages, "; ")
}

// ValidateSignIn checks the sign in input. The login is either an e-mail or a CPF,
// with or without punctuation. It returns nil when the input is valid.
func ValidateSignIn(login, password string) ValidationErrors {
	errs := ValidationErrors{}
	if login == "" {
		errs[FieldLogin] = MessageLoginRequired
	} else if !validation.IsValidEmail(login) && !validation.IsCPFShaped(login) {
		errs[FieldLogin] = MessageLoginInvalid
	}
	if password == "" {
		errs[FieldPassword] = MessagePasswordRequired
	}

	if len(errs) == 0 {
		return nil
	}
	return errs
}

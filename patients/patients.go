package patients

import (
	"context"
	"errors"
)

var (
	ErrDuplicateCPF   = errors.New("Paciente já cadastrado com este CPF")
	ErrDuplicateEmail = errors.New("Paciente já cadastrado com este e-mail")

	ErrList   = errors.New("Erro ao carregar pacientes")
	ErrCreate = errors.New("Erro ao cadastrar paciente")
	ErrDelete = errors.New("Erro ao deletar paciente")
)

//go:generate mockgen --build_flags=--mod=mod -source=./patients.go -destination=./test/mock_service.go -package test MockService

type Service interface {
	List(ctx context.Context) ([]Patient, error)
	Create(ctx context.Context, patient NewPatient) (*Patient, error)
	Delete(ctx context.Context, id string) error
}

type Patient struct {
	Id        string    `json:"id"`
	FullName  string    `json:"fullName"`
	Cpf       string    `json:"cpf"`
	BirthDate string    `json:"birthDate"`
	Email     string    `json:"email"`
	CreatedAt Timestamp `json:"createdAt"`
}

// NewPatient holds the fields submitted by the registration form. BirthDate must already be in ISO format.
type NewPatient struct {
	FullName  string `json:"fullName"`
	Cpf       string `json:"cpf"`
	BirthDate string `json:"birthDate"`
	Email     string `json:"email"`
}

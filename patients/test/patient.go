package test

import (
	"time"

	"github.com/sosportal/portal/patients"
	"github.com/sosportal/portal/test"
	"github.com/sosportal/portal/validation"
)

var (
	oldestBirthDate = time.Date(1930, time.January, 1, 0, 0, 0, 0, time.UTC)
)

// RandomCpf returns an unmasked CPF with valid check digits
func RandomCpf() string {
	for {
		cpf := validation.CompleteCPF(test.Faker.Numerify("#########"))
		if validation.IsValidCPF(cpf) {
			return cpf
		}
	}
}

func RandomBirthDate() time.Time {
	return test.Faker.Time().TimeBetween(oldestBirthDate, time.Now().AddDate(0, 0, -1))
}

func RandomNewPatient() patients.NewPatient {
	return patients.NewPatient{
		FullName:  test.Faker.Person().FirstName() + " " + test.Faker.Person().LastName(),
		Cpf:       RandomCpf(),
		BirthDate: RandomBirthDate().Format(time.DateOnly),
		Email:     test.Faker.Internet().Email(),
	}
}

func RandomPatient() patients.Patient {
	create := RandomNewPatient()
	return patients.Patient{
		Id:        test.Faker.UUID().V4(),
		FullName:  create.FullName,
		Cpf:       create.Cpf,
		BirthDate: create.BirthDate,
		Email:     create.Email,
		CreatedAt: patients.NewTimestamp(test.Faker.Time().TimeBetween(time.Now().AddDate(-1, 0, 0), time.Now()).UTC().Truncate(time.Second)),
	}
}

func RandomPatients(count int) []patients.Patient {
	list := make([]patients.Patient, 0, count)
	for i := 0; i < count; i++ {
		list = append(list, RandomPatient())
	}
	return list
}

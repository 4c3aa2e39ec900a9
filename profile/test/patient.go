package test

import (
	"time"

	patientsTest "github.com/sosportal/portal/patients/test"
	"github.com/sosportal/portal/profile"
	"github.com/sosportal/portal/test"
)

func RandomPatient() profile.Patient {
	person := test.Faker.Person()
	address := test.Faker.Address()

	return profile.Patient{
		FirstName:   person.FirstName(),
		LastName:    person.LastName(),
		Cpf:         patientsTest.RandomCpf(),
		Phone:       test.Faker.Phone().Number(),
		MothersName: person.FirstNameFemale() + " " + person.LastName(),
		Gender:      profile.Gender(test.Faker.RandomStringElement([]string{"Unknown", "Male", "Female", "Other"})),
		DateBirth:   patientsTest.RandomBirthDate().Format(time.DateOnly),
		City:        address.City(),
		ZipCode:     address.PostCode(),
		Street:      address.StreetName(),
		Number:      address.BuildingNumber(),
	}
}

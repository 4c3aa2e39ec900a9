package profile

import (
	"context"

	"github.com/sosportal/portal/auth"
)

var ErrNotAuthenticated = auth.ErrNotAuthenticated

type Gender string

const (
	GenderUnknown Gender = "Unknown"
	GenderMale    Gender = "Male"
	GenderFemale  Gender = "Female"
	GenderOther   Gender = "Other"
)

//go:generate mockgen --build_flags=--mod=mod -source=./profile.go -destination=./test/mock_client.go -package test MockClient

type Client interface {
	// Me returns the profile of the signed in patient
	Me(ctx context.Context) (*Patient, error)
}

// Patient is the profile of the signed in patient as returned by the core api
type Patient struct {
	FirstName          string `json:"first_name"`
	LastName           string `json:"last_name"`
	Cpf                string `json:"cpf"`
	Cns                string `json:"cns,omitempty"`
	Phone              string `json:"phone,omitempty"`
	MothersName        string `json:"mothers_name,omitempty"`
	Gender             Gender `json:"gender"`
	DateBirth          string `json:"date_birth,omitempty"`
	NationalHealthCard string `json:"national_health_card,omitempty"`
	CountryId          string `json:"country_id,omitempty"`
	StateId            string `json:"state_id,omitempty"`
	City               string `json:"city,omitempty"`
	ZipCode            string `json:"zip_code,omitempty"`
	Address            string `json:"address,omitempty"`
	Street             string `json:"street,omitempty"`
	District           string `json:"district,omitempty"`
	Number             string `json:"number,omitempty"`
	Complement         string `json:"complement,omitempty"`
	Tag                string `json:"tag,omitempty"`
}

func (p Patient) FullName() string {
	if p.LastName == "" {
		return p.FirstName
	}
	return p.FirstName + " " + p.LastName
}

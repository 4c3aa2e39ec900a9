package patients

import (
	"context"
	"time"

	mapset "github.com/deckarep/golang-set/v2"
	"github.com/google/uuid"
	"github.com/sosportal/portal/validation"
	"go.uber.org/zap"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

type service struct {
	repo   Repository
	logger *zap.SugaredLogger
}

var _ Service = &service{}

func NewService(repo Repository, logger *zap.SugaredLogger) (Service, error) {
	return &service{
		repo:   repo,
		logger: logger,
	}, nil
}

func (s *service) List(ctx context.Context) ([]Patient, error) {
	return s.repo.List(ctx)
}

// Create rejects the patient without contacting the create endpoint when another record
// already uses the same CPF or e-mail. The CPF is checked first.
func (s *service) Create(ctx context.Context, create NewPatient) (*Patient, error) {
	existing, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}

	index := newUniquenessIndex(existing)
	if index.hasCpf(create.Cpf) {
		s.logger.Infow("patient with the same cpf already exists")
		return nil, ErrDuplicateCPF
	}
	if index.hasEmail(create.Email) {
		s.logger.Infow("patient with the same email already exists")
		return nil, ErrDuplicateEmail
	}

	patient := Patient{
		Id:        uuid.NewString(),
		FullName:  create.FullName,
		Cpf:       validation.NormalizeCPF(create.Cpf),
		BirthDate: create.BirthDate,
		Email:     create.Email,
		CreatedAt: NewTimestamp(time.Now().UTC()),
	}

	return s.repo.Insert(ctx, patient)
}

func (s *service) Delete(ctx context.Context, id string) error {
	return s.repo.Delete(ctx, id)
}

type uniquenessIndex struct {
	cpfs   mapset.Set[string]
	emails mapset.Set[string]
}

func newUniquenessIndex(patients []Patient) uniquenessIndex {
	index := uniquenessIndex{
		cpfs:   mapset.NewThreadUnsafeSet[string](),
		emails: mapset.NewThreadUnsafeSet[string](),
	}
	for _, p := range patients {
		index.cpfs.Add(validation.NormalizeCPF(p.Cpf))
		index.emails.Add(lowerEmail(p.Email))
	}
	return index
}

func (u uniquenessIndex) hasCpf(cpf string) bool {
	return u.cpfs.Contains(validation.NormalizeCPF(cpf))
}

func (u uniquenessIndex) hasEmail(email string) bool {
	return u.emails.Contains(lowerEmail(email))
}

// lowerEmail compares addresses case insensitively without folding, so "ß" and "ss" stay distinct
func lowerEmail(email string) string {
	return cases.Lower(language.Und).String(email)
}

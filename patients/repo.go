package patients

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"

	"github.com/oapi-codegen/runtime"
	"github.com/sosportal/portal/config"
	errs "github.com/sosportal/portal/errors"
	"github.com/sosportal/portal/httpclient"
	"go.uber.org/zap"
)

const (
	patientsPath = "/patients"
	contentType  = "application/json"
)

//go:generate mockgen --build_flags=--mod=mod -source=./repo.go -destination=./test/mock_repository.go -package test -aux_files=github.com/sosportal/portal/patients=patients.go MockRepository

// Repository is the raw REST resource. It performs no validation or uniqueness checks.
type Repository interface {
	List(ctx context.Context) ([]Patient, error)
	Insert(ctx context.Context, patient Patient) (*Patient, error)
	Delete(ctx context.Context, id string) error
}

type Config struct {
	BaseUrl string `envconfig:"PORTAL_PATIENTS_API_URL" default:"http://localhost:3001"`
}

func NewConfig() (*Config, error) {
	cfg := &Config{}
	if err := config.Process(cfg); err != nil {
		return nil, err
	}

	return cfg, nil
}

func NewRepository(cfg *Config, httpClient *http.Client, logger *zap.SugaredLogger) (Repository, error) {
	serverUrl, err := httpclient.ServerUrl(cfg.BaseUrl)
	if err != nil {
		return nil, fmt.Errorf("invalid patients api url: %w", err)
	}

	return &repository{
		serverUrl: serverUrl,
		client:    httpClient,
		logger:    logger,
	}, nil
}

type repository struct {
	serverUrl *url.URL
	client    *http.Client
	logger    *zap.SugaredLogger
}

func (r *repository) List(ctx context.Context) ([]Patient, error) {
	res, err := r.do(ctx, http.MethodGet, patientsPath, nil, ErrList)
	if err != nil {
		return nil, err
	}
	defer res.Body.Close()

	var list []Patient
	if err := json.NewDecoder(res.Body).Decode(&list); err != nil {
		r.logger.Errorw("unable to decode patients list", "error", err)
		return nil, errs.HttpError{Code: res.StatusCode, Err: ErrList, Cause: err}
	}

	return list, nil
}

func (r *repository) Insert(ctx context.Context, patient Patient) (*Patient, error) {
	body, err := json.Marshal(patient)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrCreate, err)
	}

	res, err := r.do(ctx, http.MethodPost, patientsPath, bytes.NewReader(body), ErrCreate)
	if err != nil {
		return nil, err
	}
	defer res.Body.Close()

	created := &Patient{}
	if err := json.NewDecoder(res.Body).Decode(created); err != nil {
		r.logger.Errorw("unable to decode created patient", "id", patient.Id, "error", err)
		return nil, errs.HttpError{Code: res.StatusCode, Err: ErrCreate, Cause: err}
	}

	r.logger.Debugw("patient created", "id", created.Id)
	return created, nil
}

func (r *repository) Delete(ctx context.Context, id string) error {
	pathParam, err := runtime.StyleParamWithLocation("simple", false, "id", runtime.ParamLocationPath, id)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrDelete, err)
	}

	res, err := r.do(ctx, http.MethodDelete, fmt.Sprintf("%s/%s", patientsPath, pathParam), nil, ErrDelete)
	if err != nil {
		return err
	}
	defer res.Body.Close()
	_, _ = io.Copy(io.Discard, res.Body)

	r.logger.Debugw("patient deleted", "id", id)
	return nil
}

// do sends the request and maps transport failures and non 2xx responses to failure
func (r *repository) do(ctx context.Context, method string, operationPath string, body io.Reader, failure error) (*http.Response, error) {
	queryUrl, err := httpclient.OperationUrl(r.serverUrl, operationPath)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", failure, err)
	}

	req, err := http.NewRequestWithContext(ctx, method, queryUrl.String(), body)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", failure, err)
	}
	req.Header.Set("Accept", contentType)
	if body != nil {
		req.Header.Set("Content-Type", contentType)
	}

	res, err := r.client.Do(req)
	if err != nil {
		r.logger.Errorw("patients api request failed", "method", method, "url", queryUrl.String(), "error", err)
		return nil, errs.Transport(err, failure)
	}

	if err := errs.FromResponse(res, failure); err != nil {
		r.logger.Errorw("patients api returned an error", "method", method, "url", queryUrl.String(), "status", res.StatusCode)
		res.Body.Close()
		return nil, err
	}

	return res, nil
}

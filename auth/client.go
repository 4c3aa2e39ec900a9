package auth

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"runtime"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/sosportal/portal/config"
	errs "github.com/sosportal/portal/errors"
	"github.com/sosportal/portal/httpclient"
)

const (
	signInEmailPath = "/signin/email"
	contentType     = "application/json"
)

var ErrInvalidCredentials = errors.New("Login e senha inválidos, verifique e tente novamente!")

//go:generate mockgen --build_flags=--mod=mod -source=./client.go -destination=./test/mock_client.go -package test MockClient

type Client interface {
	SignInWithEmail(ctx context.Context, credentials Credentials) (*LoginResponse, error)
}

type Credentials struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// Device identifies the installation signing in
type Device struct {
	Id      string `json:"id"`
	Name    string `json:"name"`
	Model   string `json:"model"`
	System  string `json:"system"`
	Version string `json:"version"`
}

type LoginResponse struct {
	AccessToken  string `json:"accessToken"`
	ProfileType  string `json:"profileType"`
	RefreshToken string `json:"refreshToken,omitempty"`
}

type signInRequest struct {
	Credentials Credentials `json:"credentials"`
	Device      Device      `json:"device"`
}

type Config struct {
	BaseUrl       string `envconfig:"PORTAL_AUTH_API_URL" required:"true"`
	DeviceId      string `envconfig:"PORTAL_DEVICE_ID"`
	DeviceName    string `envconfig:"PORTAL_DEVICE_NAME" default:"portal-cli"`
	DeviceModel   string `envconfig:"PORTAL_DEVICE_MODEL" default:"CLI"`
	DeviceSystem  string `envconfig:"PORTAL_DEVICE_SYSTEM"`
	DeviceVersion string `envconfig:"PORTAL_DEVICE_VERSION" default:"1.0.0"`
}

// NewConfig loads the auth configuration. A device id is generated for the
// process when none is configured.
func NewConfig() (*Config, error) {
	cfg := &Config{}
	if err := config.Process(cfg); err != nil {
		return nil, err
	}
	if cfg.DeviceId == "" {
		cfg.DeviceId = uuid.NewString()
	}
	if cfg.DeviceSystem == "" {
		cfg.DeviceSystem = runtime.GOOS
	}

	return cfg, nil
}

func (c *Config) Device() Device {
	return Device{
		Id:      c.DeviceId,
		Name:    c.DeviceName,
		Model:   c.DeviceModel,
		System:  c.DeviceSystem,
		Version: c.DeviceVersion,
	}
}

func NewClient(cfg *Config, httpClient *http.Client, logger *zap.SugaredLogger) (Client, error) {
	serverUrl, err := httpclient.ServerUrl(cfg.BaseUrl)
	if err != nil {
		return nil, fmt.Errorf("invalid auth api url: %w", err)
	}

	return &client{
		serverUrl: serverUrl,
		device:    cfg.Device(),
		client:    httpClient,
		logger:    logger,
	}, nil
}

type client struct {
	serverUrl *url.URL
	device    Device
	client    *http.Client
	logger    *zap.SugaredLogger
}

// SignInWithEmail exchanges the credentials for an access token. Every failure,
// including transport errors, is reported as ErrInvalidCredentials.
func (c *client) SignInWithEmail(ctx context.Context, credentials Credentials) (*LoginResponse, error) {
	body, err := json.Marshal(signInRequest{
		Credentials: credentials,
		Device:      c.device,
	})
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidCredentials, err)
	}

	queryUrl, err := httpclient.OperationUrl(c.serverUrl, signInEmailPath)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidCredentials, err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, queryUrl.String(), bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidCredentials, err)
	}
	req.Header.Set("Accept", contentType)
	req.Header.Set("Content-Type", contentType)

	res, err := c.client.Do(req)
	if err != nil {
		c.logger.Errorw("auth api request failed", "url", queryUrl.String(), "error", err)
		return nil, errs.Transport(err, ErrInvalidCredentials)
	}
	defer res.Body.Close()

	if err := errs.FromResponse(res, ErrInvalidCredentials); err != nil {
		c.logger.Infow("sign in rejected", "status", res.StatusCode, "deviceId", c.device.Id)
		return nil, err
	}

	login := &LoginResponse{}
	if err := json.NewDecoder(res.Body).Decode(login); err != nil {
		c.logger.Errorw("unable to decode sign in response", "error", err)
		return nil, errs.HttpError{Code: res.StatusCode, Err: ErrInvalidCredentials, Cause: err}
	}
	if login.AccessToken == "" {
		c.logger.Errorw("sign in response has no access token", "status", res.StatusCode)
		return nil, errs.HttpError{Code: res.StatusCode, Err: ErrInvalidCredentials}
	}

	return login, nil
}

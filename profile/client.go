package profile

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"sync"
	"time"

	"github.com/hashicorp/golang-lru/simplelru"
	"go.uber.org/zap"
	"golang.org/x/oauth2"

	"github.com/sosportal/portal/auth"
	"github.com/sosportal/portal/config"
	errs "github.com/sosportal/portal/errors"
	"github.com/sosportal/portal/httpclient"
)

const mePath = "/Patients/me"

var (
	ErrProfile = errors.New("Erro ao carregar perfil")

	DefaultCacheSize            = 100
	DefaultCacheEntryExpiration = time.Minute
)

type Config struct {
	BaseUrl string `envconfig:"PORTAL_CORE_API_URL" required:"true"`
}

func NewConfig() (*Config, error) {
	cfg := &Config{}
	if err := config.Process(cfg); err != nil {
		return nil, err
	}

	return cfg, nil
}

// NewClient returns a core api client authenticated by session. Profiles are cached
// per access token.
func NewClient(cfg *Config, httpClient *http.Client, session *auth.Session, logger *zap.SugaredLogger) (Client, error) {
	serverUrl, err := httpclient.ServerUrl(cfg.BaseUrl)
	if err != nil {
		return nil, fmt.Errorf("invalid core api url: %w", err)
	}

	delegate := &client{
		serverUrl: serverUrl,
		client: &http.Client{
			Timeout: httpClient.Timeout,
			Transport: &oauth2.Transport{
				Source: session,
				Base:   httpClient.Transport,
			},
		},
		logger: logger,
	}

	caching, err := NewCachingClient(DefaultCacheSize, DefaultCacheEntryExpiration, delegate, session)
	if err != nil {
		return nil, err
	}
	return caching, nil
}

type client struct {
	serverUrl *url.URL
	client    *http.Client
	logger    *zap.SugaredLogger
}

func (c *client) Me(ctx context.Context) (*Patient, error) {
	queryUrl, err := httpclient.OperationUrl(c.serverUrl, mePath)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrProfile, err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, queryUrl.String(), nil)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrProfile, err)
	}
	req.Header.Set("Accept", "text/plain")

	res, err := c.client.Do(req)
	if err != nil {
		if errors.Is(err, auth.ErrNotAuthenticated) || errors.Is(err, auth.ErrSessionExpired) {
			return nil, err
		}
		c.logger.Errorw("core api request failed", "url", queryUrl.String(), "error", err)
		return nil, errs.Transport(err, ErrProfile)
	}
	defer res.Body.Close()

	if err := errs.FromResponse(res, ErrProfile); err != nil {
		c.logger.Errorw("core api returned an error", "url", queryUrl.String(), "status", res.StatusCode)
		return nil, err
	}

	patient := &Patient{}
	if err := json.NewDecoder(res.Body).Decode(patient); err != nil {
		c.logger.Errorw("unable to decode profile", "error", err)
		return nil, errs.HttpError{Code: res.StatusCode, Err: ErrProfile, Cause: err}
	}

	return patient, nil
}

type CacheEntry struct {
	token   string
	patient Patient
	expiry  time.Time
}

func (c CacheEntry) IsExpired() bool {
	return time.Now().After(c.expiry)
}

// CachingClient serves repeated Me calls for the same access token from memory
type CachingClient struct {
	delegate   Client
	session    *auth.Session
	expiration time.Duration
	lru        *simplelru.LRU
	mu         *sync.Mutex
}

var _ Client = &CachingClient{}

func NewCachingClient(size int, expiration time.Duration, delegate Client, session *auth.Session) (*CachingClient, error) {
	var onEvict simplelru.EvictCallback
	lru, err := simplelru.NewLRU(size, onEvict)
	if err != nil {
		return nil, err
	}

	return &CachingClient{
		delegate:   delegate,
		session:    session,
		expiration: expiration,
		lru:        lru,
		mu:         &sync.Mutex{},
	}, nil
}

func (c *CachingClient) Me(ctx context.Context) (*Patient, error) {
	// an expired session must not be served from the cache
	current, err := c.session.Token()
	if err != nil {
		return nil, err
	}

	token := current.AccessToken
	if entry := c.getCachedEntry(token); entry != nil {
		patient := entry.patient
		return &patient, nil
	}

	patient, err := c.delegate.Me(ctx)
	if err != nil {
		return nil, err
	}

	c.setCacheEntry(CacheEntry{
		token:   token,
		patient: *patient,
		expiry:  time.Now().Add(c.expiration),
	})
	return patient, nil
}

func (c *CachingClient) getCachedEntry(token string) *CacheEntry {
	c.mu.Lock()
	defer c.mu.Unlock()

	if e, ok := c.lru.Get(token); ok {
		entry := e.(CacheEntry)
		if entry.IsExpired() {
			c.lru.Remove(token)
			return nil
		}
		return &entry
	}

	return nil
}

func (c *CachingClient) setCacheEntry(entry CacheEntry) {
	c.mu.Lock()
	defer c.mu.Unlock()

	_ = c.lru.Add(entry.token, entry)
}

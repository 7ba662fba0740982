package adapter

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/cookiejar"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"
	"github.com/google/uuid"

	"dogfetch/internal/logger"
	"dogfetch/models"
)

// MaxBatchSize is the catalog's hard cap on ids per batch request
// (dog record and location lookups).
const MaxBatchSize = 100

// DefaultBaseURL is the public catalog service endpoint.
const DefaultBaseURL = "https://frontend-take-home-service.fetch.com"

// HTTPClientConfig configures the HTTP catalog adapter.
type HTTPClientConfig struct {
	BaseURL string
	Timeout time.Duration
}

type httpCatalogAdapter struct {
	client *resty.Client
	log    *logger.Logger
}

// NewHTTPCatalogAdapter builds the REST implementation of [CatalogAdapter].
// The catalog authenticates with an HttpOnly session cookie, so the client
// carries a cookie jar; every request gets a bounded timeout and an
// X-Request-Id header for log correlation.
func NewHTTPCatalogAdapter(cfg HTTPClientConfig, log *logger.Logger) (CatalogAdapter, error) {
	if cfg.BaseURL == "" {
		cfg.BaseURL = DefaultBaseURL
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = 15 * time.Second
	}

	jar, err := cookiejar.New(nil)
	if err != nil {
		return nil, fmt.Errorf("create cookie jar: %w", err)
	}

	cli := resty.New().
		SetBaseURL(strings.TrimRight(cfg.BaseURL, "/")).
		SetTimeout(cfg.Timeout).
		SetCookieJar(jar)

	return &httpCatalogAdapter{client: cli, log: log}, nil
}

func (h *httpCatalogAdapter) Login(ctx context.Context, user models.User) error {
	resp, err := h.request(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(user).
		Post("/auth/login")
	if err != nil {
		return fmt.Errorf("login request: %w", err)
	}
	return h.mapHTTPError(resp)
}

func (h *httpCatalogAdapter) Logout(ctx context.Context) error {
	resp, err := h.request(ctx).Post("/auth/logout")
	if err != nil {
		return fmt.Errorf("logout request: %w", err)
	}
	return h.mapHTTPError(resp)
}

func (h *httpCatalogAdapter) Breeds(ctx context.Context) ([]string, error) {
	resp, err := h.request(ctx).Get("/dogs/breeds")
	if err != nil {
		return nil, fmt.Errorf("breeds request: %w", err)
	}
	if err = h.mapHTTPError(resp); err != nil {
		return nil, err
	}

	var breeds []string
	if err = json.Unmarshal(resp.Body(), &breeds); err != nil {
		return nil, fmt.Errorf("decode breeds response: %w", err)
	}
	return breeds, nil
}

func (h *httpCatalogAdapter) SearchDogs(ctx context.Context, query models.DogSearchQuery) (models.DogSearchResult, error) {
	resp, err := h.request(ctx).
		SetQueryParamsFromValues(query.Values()).
		Get("/dogs/search")
	if err != nil {
		return models.DogSearchResult{}, fmt.Errorf("dog search request: %w", err)
	}
	if err = h.mapHTTPError(resp); err != nil {
		return models.DogSearchResult{}, err
	}

	var result models.DogSearchResult
	if err = json.Unmarshal(resp.Body(), &result); err != nil {
		return models.DogSearchResult{}, fmt.Errorf("decode dog search response: %w", err)
	}
	return result, nil
}

func (h *httpCatalogAdapter) Dogs(ctx context.Context, ids []string) ([]models.Dog, error) {
	if len(ids) == 0 {
		return []models.Dog{}, nil
	}
	if len(ids) > MaxBatchSize {
		return nil, fmt.Errorf("%w: %d ids, limit %d", ErrBatchTooLarge, len(ids), MaxBatchSize)
	}

	resp, err := h.request(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(ids).
		Post("/dogs")
	if err != nil {
		return nil, fmt.Errorf("dog batch request: %w", err)
	}
	if err = h.mapHTTPError(resp); err != nil {
		return nil, err
	}

	var dogs []models.Dog
	if err = json.Unmarshal(resp.Body(), &dogs); err != nil {
		return nil, fmt.Errorf("decode dog batch response: %w", err)
	}
	return dogs, nil
}

func (h *httpCatalogAdapter) Match(ctx context.Context, ids []string) (string, error) {
	resp, err := h.request(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(ids).
		Post("/dogs/match")
	if err != nil {
		return "", fmt.Errorf("match request: %w", err)
	}
	if err = h.mapHTTPError(resp); err != nil {
		return "", err
	}

	var result models.MatchResult
	if err = json.Unmarshal(resp.Body(), &result); err != nil {
		return "", fmt.Errorf("decode match response: %w", err)
	}
	return result.Match, nil
}

func (h *httpCatalogAdapter) Locations(ctx context.Context, zipCodes []string) ([]models.Location, error) {
	if len(zipCodes) == 0 {
		return []models.Location{}, nil
	}
	if len(zipCodes) > MaxBatchSize {
		return nil, fmt.Errorf("%w: %d zip codes, limit %d", ErrBatchTooLarge, len(zipCodes), MaxBatchSize)
	}

	resp, err := h.request(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(zipCodes).
		Post("/locations")
	if err != nil {
		return nil, fmt.Errorf("location batch request: %w", err)
	}
	if err = h.mapHTTPError(resp); err != nil {
		return nil, err
	}

	var locations []models.Location
	if err = json.Unmarshal(resp.Body(), &locations); err != nil {
		return nil, fmt.Errorf("decode location batch response: %w", err)
	}
	return locations, nil
}

func (h *httpCatalogAdapter) SearchLocations(ctx context.Context, query models.LocationSearchQuery) (models.LocationSearchResult, error) {
	resp, err := h.request(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(query).
		Post("/locations/search")
	if err != nil {
		return models.LocationSearchResult{}, fmt.Errorf("location search request: %w", err)
	}
	if err = h.mapHTTPError(resp); err != nil {
		return models.LocationSearchResult{}, err
	}

	var result models.LocationSearchResult
	if err = json.Unmarshal(resp.Body(), &result); err != nil {
		return models.LocationSearchResult{}, fmt.Errorf("decode location search response: %w", err)
	}
	return result, nil
}

func (h *httpCatalogAdapter) request(ctx context.Context) *resty.Request {
	return h.client.R().
		SetContext(ctx).
		SetHeader("X-Request-Id", uuid.NewString())
}

func (h *httpCatalogAdapter) mapHTTPError(resp *resty.Response) error {
	status := resp.StatusCode()
	h.log.Debug().
		Str("request_id", resp.Request.Header.Get("X-Request-Id")).
		Str("method", resp.Request.Method).
		Str("url", resp.Request.URL).
		Int("status", status).
		Dur("elapsed", resp.Time()).
		Msg("catalog request")

	if status >= http.StatusOK && status < http.StatusMultipleChoices {
		return nil
	}
	if status == http.StatusUnauthorized {
		return ErrUnauthorized
	}

	body := strings.TrimSpace(string(resp.Body()))
	if body == "" {
		body = http.StatusText(status)
	}
	return fmt.Errorf("http %d: %s", status, body)
}

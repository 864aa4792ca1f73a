// Package tmdb implements the read-only client for the external
// catalog provider and the cross-provider identifier resolver.
package tmdb

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"streamvault/internal/constants"
	apperrors "streamvault/internal/errors"
	"streamvault/internal/models"
	"streamvault/pkg/httputil"
	"streamvault/pkg/logger"
	"streamvault/pkg/ratelimiter"
)

const requestTimeout = 10 * time.Second

// Client is a rate-respecting passthrough over the catalog provider's
// read endpoints. It performs no retries and no response caching;
// resiliency decisions belong to the caller.
type Client struct {
	baseURL     string
	token       string
	language    string
	httpClient  *http.Client
	rateLimiter *ratelimiter.TokenBucket
	logger      logger.Logger
}

// NewClient creates a catalog client authenticated with the given
// bearer token. language is the default locale parameter attached to
// every request.
func NewClient(token, language string, log logger.Logger) *Client {
	if language == "" {
		language = constants.DefaultLanguage
	}
	return &Client{
		baseURL:     constants.TMDBAPIBaseURL,
		token:       token,
		language:    language,
		httpClient:  httputil.NewHTTPClient(requestTimeout),
		rateLimiter: ratelimiter.NewTokenBucket(constants.TMDBRateLimit, constants.TMDBRateRefill),
		logger:      log,
	}
}

// SetBaseURL overrides the provider base URL. Used by tests.
func (c *Client) SetBaseURL(baseURL string) {
	c.baseURL = baseURL
}

// FetchJSON issues an authenticated GET against the provider. The
// default locale parameter is merged with the caller's query; caller
// values win on key collision. Non-success statuses and transport
// failures surface as *errors.UpstreamError.
func (c *Client) FetchJSON(path string, query url.Values) (json.RawMessage, error) {
	values := url.Values{"language": {c.language}}
	for key, vals := range query {
		values[key] = vals
	}

	apiURL := c.baseURL + path + "?" + values.Encode()

	c.rateLimiter.Wait()
	c.logger.Debugf("[TMDB] GET %s", path)

	req, err := http.NewRequest(http.MethodGet, apiURL, nil)
	if err != nil {
		return nil, apperrors.NewUpstreamFailure("failed to build request", err)
	}
	req.Header.Set("Authorization", "Bearer "+c.token)
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, apperrors.NewUpstreamFailure(fmt.Sprintf("request to %s failed", path), err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, apperrors.NewUpstreamFailure(fmt.Sprintf("failed to read response from %s", path), err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, apperrors.NewUpstreamError(resp.StatusCode, fmt.Sprintf("catalog provider rejected %s", path))
	}

	return json.RawMessage(body), nil
}

// FetchPage fetches one page of a paginated listing endpoint and
// decodes the envelope.
func (c *Client) FetchPage(path string, query url.Values, page int) (*models.PagedResponse, error) {
	values := url.Values{}
	for key, vals := range query {
		values[key] = vals
	}
	values.Set("page", fmt.Sprintf("%d", page))

	raw, err := c.FetchJSON(path, values)
	if err != nil {
		return nil, err
	}

	var result models.PagedResponse
	if err := json.Unmarshal(raw, &result); err != nil {
		return nil, apperrors.NewUpstreamFailure(fmt.Sprintf("failed to decode page from %s", path), err)
	}

	return &result, nil
}

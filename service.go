package wordsapi

import (
	"context"
	"crypto/tls"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"resty.dev/v3"
)

// DefaultHost is the RapidAPI host serving WordsAPI.
const DefaultHost = "wordsapiv1.p.rapidapi.com"

// DefaultTimeout bounds each API request unless Config.Timeout overrides it.
const DefaultTimeout = 5 * time.Second

// Config holds the credentials and request configuration for a Service.
type Config struct {
	// APIKey is the RapidAPI key sent on every request.
	APIKey string
	// Host is the RapidAPI host. Defaults to DefaultHost.
	Host string
	// Timeout bounds each request. Defaults to DefaultTimeout.
	Timeout time.Duration
	// BaseURL overrides the request target, keeping the host headers.
	// Intended for tests against a local stub server.
	BaseURL string
	// InsecureSkipVerify disables TLS certificate verification. The
	// original client always skipped verification; here it is opt-in.
	InsecureSkipVerify bool
	// Cache, when set, stores raw response bodies so repeated lookups
	// skip the network. Failed lookups are never stored.
	Cache ResponseCache
}

// Service executes word lookups against the API and normalizes responses.
// It holds no per-word state and is safe for concurrent use.
type Service struct {
	client *resty.Client
	cache  ResponseCache
}

// NewService creates a Service from cfg, applying defaults for the host
// and timeout.
func NewService(cfg Config) *Service {
	host := cfg.Host
	if host == "" {
		host = DefaultHost
	}
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	baseURL := cfg.BaseURL
	if baseURL == "" {
		baseURL = "https://" + host
	}

	client := resty.New()
	client.SetBaseURL(baseURL)
	client.SetTimeout(timeout)
	client.SetHeader("x-rapidapi-host", host)
	client.SetHeader("x-rapidapi-key", cfg.APIKey)
	client.SetHeader("Accept", "application/json")
	if cfg.InsecureSkipVerify {
		client.SetTLSClientConfig(&tls.Config{InsecureSkipVerify: true})
	}

	return &Service{
		client: client,
		cache:  cfg.Cache,
	}
}

// Close releases the underlying HTTP client.
func (s *Service) Close() error {
	return s.client.Close()
}

// Word returns a Word bound to this service. When prefetchDetails is true
// the word's first accessor call performs a full-detail fetch populating
// every attribute the full response carries. Use WordContext to run that
// fetch eagerly.
func (s *Service) Word(text string, prefetchDetails bool) *Word {
	return &Word{
		text:            text,
		service:         s,
		prefetchDetails: prefetchDetails,
		cache:           make(map[Verb]Value),
	}
}

// WordContext returns a Word like Word does, and when prefetchDetails is
// true it performs the full-detail fetch before returning.
func (s *Service) WordContext(ctx context.Context, text string, prefetchDetails bool) (*Word, error) {
	word := s.Word(text, prefetchDetails)
	if prefetchDetails {
		if _, err := word.Definitions(ctx); err != nil {
			return nil, fmt.Errorf("word.Definitions > %w", err)
		}
	}
	return word, nil
}

// Search is declared by the API but not implemented by this client.
func (s *Service) Search(ctx context.Context, query string) ([]string, error) {
	return nil, fmt.Errorf("search %q: %w", query, ErrNotImplemented)
}

// Fetch performs one lookup for (word, verb) and returns the transformed
// attribute mapping. Hidden verbs and prefetchAll requests hit the word's
// full-detail endpoint and return every attribute that response carries;
// other verbs hit the per-attribute endpoint and return a single entry.
//
// A non-200 status or empty body is reported as ErrNotFound. A verb
// outside the fixed set is reported as ErrUnknownVerb.
func (s *Service) Fetch(ctx context.Context, word string, verb Verb, prefetchAll bool) (map[Verb]Value, error) {
	if word == "" {
		return nil, fmt.Errorf("empty word: %w", ErrNotFound)
	}

	if _, ok := flatRules[verb]; !ok {
		if _, ok := groupRules[verb]; !ok {
			return nil, fmt.Errorf("verb %q: %w", verb, ErrUnknownVerb)
		}
	}
	full := prefetchAll || hiddenVerbs[verb]

	requestPath := "/words/" + url.PathEscape(word)
	cacheKey := ResponseKey(word, "")
	if !full {
		requestPath += "/" + string(verb)
		cacheKey = ResponseKey(word, verb)
	}

	body, err := s.request(ctx, cacheKey, requestPath)
	if err != nil {
		return nil, err
	}

	var decoded map[string]any
	if err := json.Unmarshal(body, &decoded); err != nil {
		return nil, fmt.Errorf("json.Unmarshal > %w", err)
	}

	if full {
		return transformFull(decoded), nil
	}
	value, err := transform(verb, decoded)
	if err != nil {
		return nil, err
	}
	return map[Verb]Value{verb: value}, nil
}

func (s *Service) request(ctx context.Context, cacheKey, requestPath string) ([]byte, error) {
	fill := func() ([]byte, error) {
		response, err := s.client.R().
			SetContext(ctx).
			Get(requestPath)
		if err != nil {
			return nil, fmt.Errorf("client.R.Get > %w", err)
		}
		if response.StatusCode() != http.StatusOK {
			return nil, fmt.Errorf("status code %d: %w", response.StatusCode(), ErrNotFound)
		}
		body := response.Bytes()
		if len(body) == 0 {
			return nil, fmt.Errorf("empty response body: %w", ErrNotFound)
		}
		return body, nil
	}

	if s.cache == nil {
		return fill()
	}
	return s.cache.Do(cacheKey, fill)
}

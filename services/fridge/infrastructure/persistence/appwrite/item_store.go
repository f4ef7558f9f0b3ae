// Package appwrite implements the fridge DocumentStore on top of the
// Appwrite Databases REST API.
package appwrite

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/sethvargo/go-retry"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"

	fridgedomain "github.com/ghuser/fridgepal/services/fridge/domain"
	"github.com/ghuser/fridgepal/services/fridge/domain/models"
	"github.com/ghuser/fridgepal/services/fridge/domain/repositories"
)

const (
	defaultTimeout = 10 * time.Second
	// pageSize is the number of documents requested per list call. Appwrite
	// returns 25 documents when no limit is given.
	pageSize = 100
	// uniqueID asks Appwrite to generate the document id.
	uniqueID = "unique()"
	// maxErrorBody caps how much of an error response is read.
	maxErrorBody = 4 << 10

	defaultMaxRetries   = 3
	defaultRetryBackoff = 100 * time.Millisecond
	maxRetryBackoff     = 2 * time.Second
)

// Config holds the connection settings of an Appwrite collection.
type Config struct {
	Endpoint     string // e.g. https://cloud.appwrite.io/v1
	ProjectID    string
	APIKey       string
	DatabaseID   string
	CollectionID string
}

// Option configures an ItemStore.
type Option func(*ItemStore)

// WithHTTPClient replaces the default instrumented client.
func WithHTTPClient(c *http.Client) Option {
	return func(s *ItemStore) {
		s.client = c
	}
}

// WithPageSize overrides the number of documents fetched per list request.
func WithPageSize(n int) Option {
	return func(s *ItemStore) {
		if n > 0 {
			s.pageSize = n
		}
	}
}

// WithRetries sets how often an idempotent request is retried after a
// transport error, 429 or 5xx, and the first backoff between attempts.
// Zero retries disables retrying.
func WithRetries(maxRetries uint64, base time.Duration) Option {
	return func(s *ItemStore) {
		s.maxRetries = maxRetries
		s.retryBase = base
	}
}

// ItemStore talks to one Appwrite collection.
type ItemStore struct {
	cfg        Config
	baseURL    string
	client     *http.Client
	pageSize   int
	maxRetries uint64
	retryBase  time.Duration
}

// NewItemStore returns a store for the collection described by cfg.
func NewItemStore(cfg Config, opts ...Option) *ItemStore {
	s := &ItemStore{
		cfg: cfg,
		baseURL: strings.TrimRight(cfg.Endpoint, "/") +
			"/databases/" + url.PathEscape(cfg.DatabaseID) +
			"/collections/" + url.PathEscape(cfg.CollectionID) +
			"/documents",
		client: &http.Client{
			Timeout:   defaultTimeout,
			Transport: otelhttp.NewTransport(http.DefaultTransport),
		},
		pageSize:   pageSize,
		maxRetries: defaultMaxRetries,
		retryBase:  defaultRetryBackoff,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// document is the wire form of an item. Appwrite adds system attributes
// prefixed with '$' which are ignored apart from $id.
type document struct {
	ID         string   `json:"$id,omitempty"`
	Name       string   `json:"name"`
	Quantity   float64  `json:"quantity"`
	Unit       string   `json:"unit"`
	Category   string   `json:"category"`
	Tags       []string `json:"tags"`
	ExpiryDate string   `json:"expiry_date"`
	Threshold  *float64 `json:"threshold"`
	Deleted    bool     `json:"deleted"`
}

type documentList struct {
	Total     int        `json:"total"`
	Documents []document `json:"documents"`
}

// apiError is the body Appwrite returns on failure.
type apiError struct {
	Message string `json:"message"`
	Code    int    `json:"code"`
	Type    string `json:"type"`
}

func (e *apiError) Error() string {
	return fmt.Sprintf("appwrite %d %s: %s", e.Code, e.Type, e.Message)
}

// query is one entry of the queries[] parameter.
type query struct {
	Method    string `json:"method"`
	Attribute string `json:"attribute,omitempty"`
	Values    []any  `json:"values,omitempty"`
}

func (q query) String() string {
	raw, _ := json.Marshal(q) //nolint:errchkjson // only scalars
	return string(raw)
}

// List pages through the collection. Deleted and category are filtered
// server side; the name search is applied here so it is case-insensitive
// regardless of the collection's index configuration.
func (s *ItemStore) List(ctx context.Context, f repositories.Filter) ([]*models.Item, error) {
	base := make([]query, 0, 4)
	if f.Deleted != nil {
		base = append(base, query{Method: "equal", Attribute: "deleted", Values: []any{*f.Deleted}})
	}
	if f.Category != "" {
		base = append(base, query{Method: "equal", Attribute: "category", Values: []any{f.Category}})
	}
	search := strings.ToLower(f.Search)

	items := make([]*models.Item, 0)
	for offset := 0; ; offset += s.pageSize {
		params := url.Values{}
		for _, q := range base {
			params.Add("queries[]", q.String())
		}
		params.Add("queries[]", query{Method: "limit", Values: []any{s.pageSize}}.String())
		params.Add("queries[]", query{Method: "offset", Values: []any{offset}}.String())

		var page documentList
		if err := s.do(ctx, http.MethodGet, s.baseURL+"?"+params.Encode(), nil, &page); err != nil {
			return nil, fmt.Errorf("list documents: %w", err)
		}

		for _, d := range page.Documents {
			if search != "" && !strings.Contains(strings.ToLower(d.Name), search) {
				continue
			}
			it, err := d.toItem()
			if err != nil {
				return nil, err
			}
			items = append(items, it)
		}

		if len(page.Documents) < s.pageSize || offset+len(page.Documents) >= page.Total {
			break
		}
	}
	return items, nil
}

func (s *ItemStore) Get(ctx context.Context, id string) (*models.Item, error) {
	var d document
	if err := s.do(ctx, http.MethodGet, s.documentURL(id), nil, &d); err != nil {
		return nil, mapError("get document", err)
	}
	return d.toItem()
}

// Create stores item under an Appwrite-generated id.
func (s *ItemStore) Create(ctx context.Context, item *models.Item) (*models.Item, error) {
	d := fromItem(item)
	d.ID = ""
	body := map[string]any{
		"documentId": uniqueID,
		"data":       d,
	}

	var created document
	if err := s.do(ctx, http.MethodPost, s.baseURL, body, &created); err != nil {
		return nil, mapError("create document", err)
	}
	return created.toItem()
}

// Update sends only the set fields of p.
func (s *ItemStore) Update(ctx context.Context, id string, p repositories.Patch) (*models.Item, error) {
	body := map[string]any{"data": patchData(p)}

	var updated document
	if err := s.do(ctx, http.MethodPatch, s.documentURL(id), body, &updated); err != nil {
		return nil, mapError("update document", err)
	}
	return updated.toItem()
}

func (s *ItemStore) Delete(ctx context.Context, id string) error {
	if err := s.do(ctx, http.MethodDelete, s.documentURL(id), nil, nil); err != nil {
		return mapError("delete document", err)
	}
	return nil
}

// Ping lists a single document to verify credentials and reachability.
func (s *ItemStore) Ping(ctx context.Context) error {
	params := url.Values{}
	params.Add("queries[]", query{Method: "limit", Values: []any{1}}.String())
	if err := s.do(ctx, http.MethodGet, s.baseURL+"?"+params.Encode(), nil, nil); err != nil {
		return fmt.Errorf("appwrite ping: %w", err)
	}
	return nil
}

func (s *ItemStore) documentURL(id string) string {
	return s.baseURL + "/" + url.PathEscape(id)
}

// do sends one request, retrying GET and PATCH with exponential backoff.
// POST is never retried since a lost response would create a duplicate;
// DELETE is not either, as a retry after success reports not found.
func (s *ItemStore) do(ctx context.Context, method, target string, in, out any) error {
	var raw []byte
	if in != nil {
		var err error
		if raw, err = json.Marshal(in); err != nil {
			return fmt.Errorf("encode request: %w", err)
		}
	}

	if s.maxRetries == 0 || (method != http.MethodGet && method != http.MethodPatch) {
		return s.attempt(ctx, method, target, raw, out)
	}

	b := retry.NewExponential(s.retryBase)
	b = retry.WithCappedDuration(maxRetryBackoff, b)
	b = retry.WithJitterPercent(10, b)
	b = retry.WithMaxRetries(s.maxRetries, b)
	return retry.Do(ctx, b, func(ctx context.Context) error {
		err := s.attempt(ctx, method, target, raw, out)
		if retryable(ctx, err) {
			return retry.RetryableError(err)
		}
		return err
	})
}

// retryable reports whether err is a transport failure, 429 or 5xx.
func retryable(ctx context.Context, err error) bool {
	if err == nil || ctx.Err() != nil {
		return false
	}
	var apiErr *apiError
	if errors.As(err, &apiErr) {
		return apiErr.Code == http.StatusTooManyRequests || apiErr.Code >= http.StatusInternalServerError
	}
	var urlErr *url.Error
	return errors.As(err, &urlErr)
}

func (s *ItemStore) attempt(ctx context.Context, method, target string, raw []byte, out any) error {
	var body io.Reader
	if raw != nil {
		body = bytes.NewReader(raw)
	}

	req, err := http.NewRequestWithContext(ctx, method, target, body)
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("X-Appwrite-Project", s.cfg.ProjectID)
	req.Header.Set("X-Appwrite-Key", s.cfg.APIKey)
	req.Header.Set("Accept", "application/json")
	if raw != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := s.client.Do(req)
	if err != nil {
		return fmt.Errorf("%s %s: %w", method, req.URL.Path, err)
	}
	defer resp.Body.Close() //nolint:errcheck

	if resp.StatusCode >= http.StatusBadRequest {
		apiErr := &apiError{Code: resp.StatusCode}
		raw, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
		if json.Unmarshal(raw, apiErr) != nil || apiErr.Message == "" {
			apiErr.Message = strings.TrimSpace(string(raw))
		}
		apiErr.Code = resp.StatusCode
		return apiErr
	}

	if out == nil {
		_, _ = io.Copy(io.Discard, resp.Body)
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	return nil
}

// mapError translates Appwrite status codes into domain errors.
func mapError(op string, err error) error {
	var apiErr *apiError
	if errors.As(err, &apiErr) {
		switch apiErr.Code {
		case http.StatusNotFound:
			return fridgedomain.ErrItemNotFound
		case http.StatusConflict:
			return fridgedomain.ErrItemAlreadyExists
		case http.StatusBadRequest:
			return fmt.Errorf("%s: %w: %s", op, fridgedomain.ErrInvalidItem, apiErr.Message)
		}
	}
	return fmt.Errorf("%s: %w", op, err)
}

func fromItem(it *models.Item) document {
	tags := it.Tags
	if tags == nil {
		tags = []string{}
	}
	return document{
		ID:         it.ID,
		Name:       it.Name,
		Quantity:   it.Quantity,
		Unit:       it.Unit,
		Category:   it.Category,
		Tags:       tags,
		ExpiryDate: models.FormatExpiryDate(it.ExpiryDate),
		Threshold:  it.Threshold,
		Deleted:    it.Deleted,
	}
}

func (d document) toItem() (*models.Item, error) {
	expiry, err := models.ParseExpiryDate(d.ExpiryDate)
	if err != nil {
		return nil, fmt.Errorf("document %s: %w", d.ID, err)
	}
	tags := d.Tags
	if tags == nil {
		tags = []string{}
	}
	return &models.Item{
		ID:         d.ID,
		Name:       d.Name,
		Quantity:   d.Quantity,
		Unit:       d.Unit,
		Category:   d.Category,
		Tags:       tags,
		ExpiryDate: expiry,
		Threshold:  d.Threshold,
		Deleted:    d.Deleted,
	}, nil
}

func patchData(p repositories.Patch) map[string]any {
	data := make(map[string]any, 8)
	if p.Name != nil {
		data["name"] = *p.Name
	}
	if p.Quantity != nil {
		data["quantity"] = *p.Quantity
	}
	if p.Unit != nil {
		data["unit"] = *p.Unit
	}
	if p.Category != nil {
		data["category"] = *p.Category
	}
	if p.Tags != nil {
		data["tags"] = *p.Tags
	}
	if p.ExpiryDate != nil {
		data["expiry_date"] = models.FormatExpiryDate(*p.ExpiryDate)
	}
	if p.Threshold != nil {
		data["threshold"] = *p.Threshold
	}
	if p.Deleted != nil {
		data["deleted"] = *p.Deleted
	}
	return data
}

package shutterstock

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/url"

	"github.com/vadimtrunov/stockmedia/internal/query"
)

// Endpoint serves one resource family. R is the list/search record type,
// D the detail record returned by Get.
type Endpoint[R, D any] struct {
	client   *Client
	resource string
	keys     []string
}

func newEndpoint[R, D any](c *Client, resource string, keys []string) *Endpoint[R, D] {
	return &Endpoint[R, D]{client: c, resource: resource, keys: keys}
}

// Resource returns the resource name ("images" or "videos").
func (e *Endpoint[R, D]) Resource() string { return e.resource }

func (e *Endpoint[R, D]) path() string { return "/v2/" + e.resource }

// List fetches records by id: GET /v2/{resource}?id=a&id=b.
// Ids that match nothing simply produce fewer (or zero) records.
func (e *Endpoint[R, D]) List(ctx context.Context, ids []string) (*ListResult[R], error) {
	var params query.Params
	params.Add("id", ids...)

	resp, body, err := e.client.get(ctx, e.path(), &params)
	if err != nil {
		return nil, err
	}
	if err := checkData(resp.StatusCode, body, nil, e.keys); err != nil {
		return nil, err
	}

	var result ListResult[R]
	if err := decodeJSON(resp.StatusCode, body, &result); err != nil {
		return nil, err
	}
	if result.Data == nil {
		result.Data = []R{}
	}
	return &result, nil
}

// Get fetches one detail record: GET /v2/{resource}/{id}.
// An empty id fails with ErrEmptyID before any request is sent.
// On 404 it returns a nil record, the raw response and an *APIError matching ErrNotFound.
func (e *Endpoint[R, D]) Get(ctx context.Context, id string) (*D, *Response, error) {
	if id == "" {
		return nil, nil, ErrEmptyID
	}
	resp, body, err := e.client.get(ctx, e.path()+"/"+url.PathEscape(id), nil)
	if err != nil {
		if resp != nil {
			e.client.logger.Debug("get failed",
				slog.String("resource", e.resource),
				slog.String("id", id),
				slog.Int("status", resp.StatusCode),
			)
		}
		return nil, resp, err
	}

	var raw json.RawMessage
	if err := decodeJSON(resp.StatusCode, body, &raw); err != nil {
		return nil, resp, err
	}
	if err := checkRecord(resp.StatusCode, raw, e.keys); err != nil {
		return nil, resp, err
	}

	var details D
	if err := decodeJSON(resp.StatusCode, raw, &details); err != nil {
		return nil, resp, err
	}
	return &details, resp, nil
}

// Search runs a keyword search: GET /v2/{resource}/search[?query=...].
func (e *Endpoint[R, D]) Search(ctx context.Context, opts SearchOptions) (*SearchResult[R], error) {
	var params query.Params
	params.AddString("query", opts.Query)
	params.AddInt("page", opts.Page)
	params.AddInt("per_page", opts.PerPage)
	params.AddString("sort", opts.Sort)

	resp, body, err := e.client.get(ctx, e.path()+"/search", &params)
	if err != nil {
		return nil, err
	}
	if err := checkData(resp.StatusCode, body, searchKeys, e.keys); err != nil {
		return nil, err
	}

	var result SearchResult[R]
	if err := decodeJSON(resp.StatusCode, body, &result); err != nil {
		return nil, err
	}
	if result.Page < 1 {
		return nil, &DecodeError{HTTPStatus: resp.StatusCode, Err: fmt.Errorf("page is %d, want >= 1", result.Page)}
	}
	if result.Data == nil {
		result.Data = []R{}
	}
	return &result, nil
}

// ListAsync runs List on a new goroutine and calls cb exactly once with its outcome.
func (e *Endpoint[R, D]) ListAsync(ctx context.Context, ids []string, cb func(*ListResult[R], error)) {
	ids = append([]string(nil), ids...)
	go func() {
		cb(e.List(ctx, ids))
	}()
}

// GetAsync runs Get on a new goroutine and calls cb exactly once with its outcome.
func (e *Endpoint[R, D]) GetAsync(ctx context.Context, id string, cb func(*D, *Response, error)) {
	go func() {
		cb(e.Get(ctx, id))
	}()
}

// SearchAsync runs Search on a new goroutine and calls cb exactly once with its outcome.
func (e *Endpoint[R, D]) SearchAsync(ctx context.Context, opts SearchOptions, cb func(*SearchResult[R], error)) {
	go func() {
		cb(e.Search(ctx, opts))
	}()
}

package fetcher

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"actresses/internal/models"
)

// Lookup fetches GET /actresses/{id} and reports what happened.
func (c *Client) Lookup(ctx context.Context, id int) Result {
	u := c.actressURL(id)
	requestID := uuid.NewString()

	raw, err := c.getJSON(ctx, u, requestID)
	if err == nil {
		var actress models.Actress

		actress, err = c.processor.Process(raw)
		if err == nil {
			return Result{ID: id, Kind: Found, Actress: &actress}
		}

		err = fmt.Errorf("%w: %w", ErrInvalidFormat, err)
	}

	res := Result{ID: id, Kind: classify(err), Err: err}

	args := []any{"id", id, "url", u, "request_id", requestID, "kind", res.Kind.String(), "error", err}
	if res.Kind == NotFound {
		c.sink.Warn("actress not found", args...)
	} else {
		c.sink.Error("failed to fetch actress", args...)
	}

	return res
}

// FetchOne returns the actress with the given id, or nil on any failure.
func (c *Client) FetchOne(ctx context.Context, id int) *models.Actress {
	return c.Lookup(ctx, id).Actress
}

// FetchAll returns every valid actress from GET /actresses. Elements that fail
// validation are dropped. Any request failure yields an empty slice.
func (c *Client) FetchAll(ctx context.Context) []models.Actress {
	u := c.collectionURL()
	requestID := uuid.NewString()

	raw, err := c.getJSON(ctx, u, requestID)
	if err != nil {
		c.sink.Error("failed to fetch actresses", "url", u, "request_id", requestID, "kind", classify(err).String(), "error", err)
		return []models.Actress{}
	}

	items, ok := raw.([]any)
	if !ok {
		c.sink.Error("failed to fetch actresses", "url", u, "request_id", requestID, "kind", Invalid.String(), "error", ErrNotArray)
		return []models.Actress{}
	}

	actresses := make([]models.Actress, 0, len(items))

	var firstErr error

	for _, item := range items {
		actress, err := c.processor.Process(item)
		if err != nil {
			if firstErr == nil {
				firstErr = err
			}

			continue
		}

		actresses = append(actresses, actress)
	}

	if dropped := len(items) - len(actresses); dropped > 0 {
		c.sink.Warn("dropped invalid actresses", "url", u, "request_id", requestID,
			"dropped", dropped, "kept", len(actresses), "error", firstErr)
	}

	return actresses
}

// LookupMany looks up every id with at most MaxConcurrency requests in flight.
// The result has the same length and order as ids.
func (c *Client) LookupMany(ctx context.Context, ids []int) []Result {
	results, err := c.lookupMany(ctx, ids)
	if err != nil {
		c.sink.Error("failed to fetch actresses batch", "count", len(ids), "error", err)
		return []Result{}
	}

	return results
}

func (c *Client) lookupMany(ctx context.Context, ids []int) ([]Result, error) {
	results := make([]Result, len(ids))

	// A plain Group: one failed lookup must not cancel its siblings.
	var g errgroup.Group
	g.SetLimit(c.maxConcurrency)

	for i, id := range ids {
		i, id := i, id
		g.Go(func() (err error) {
			defer func() {
				if r := recover(); r != nil {
					err = fmt.Errorf("lookup of actress %d panicked: %v", id, r)
				}
			}()

			results[i] = c.Lookup(ctx, id)

			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	return results, nil
}

// FetchMany fetches every id and returns the records positionally aligned
// with ids. Failed lookups leave a nil slot.
func (c *Client) FetchMany(ctx context.Context, ids []int) []*models.Actress {
	results := c.LookupMany(ctx, ids)
	if len(results) != len(ids) {
		return []*models.Actress{}
	}

	actresses := make([]*models.Actress, len(results))
	for i, res := range results {
		actresses[i] = res.Actress
	}

	return actresses
}

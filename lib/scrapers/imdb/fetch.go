package imdb

import (
	"context"
	"fmt"
	"net/http"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
)

// FetchPage performs one blocking page retrieval. There is no retry
// here: a transport failure or a non-OK status is surfaced as
// ErrFetchFailed and the caller is expected to abort the run.
func (c *Client) FetchPage(ctx context.Context, target string) (string, error) {
	ctx, span := tracer.Start(ctx, "client:FetchPage")
	defer span.End()
	span.SetAttributes(attribute.String("target", target))

	res, err := c.Http.R().
		SetContext(ctx).
		Get(target)
	if err != nil {
		span.SetStatus(codes.Error, "transport failure")
		span.RecordError(err)
		return "", fmt.Errorf("%w: %v", ErrFetchFailed, err)
	}
	if res.StatusCode() != http.StatusOK {
		span.SetStatus(codes.Error, "unexpected status")
		return "", fmt.Errorf("%w: status %s", ErrFetchFailed, res.Status())
	}

	page := res.String()
	if !LooksLikeSearchPage(page) {
		span.SetStatus(codes.Error, "response is not a search results document")
		return "", fmt.Errorf("%w: response is not a search results document (bad company identifier?)", ErrFetchFailed)
	}

	return page, nil
}

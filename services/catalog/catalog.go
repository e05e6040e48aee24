package catalog

import (
	"context"
	"fmt"
	"log/slog"

	"studiocat/lib/scrapers/imdb"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
)

var tracer = otel.Tracer("services/catalog")

var (
	// a parsed count at or past the ceiling is treated as a caller
	// mistake (likely a bad identifier), not a transient fault
	ErrTooManyItems = fmt.Errorf("too many titles to process")
	ErrInvariant    = fmt.Errorf("internal invariant violation")
)

const DefaultMaxItems = 20000

// Query is the immutable input of one run.
type Query struct {
	Studio   string
	FromYear int
	ToYear   int
	// defaults to DefaultMaxItems when <= 0
	MaxItems int
	// raw mode skips record reshaping entirely
	Raw bool
}

// ResultSet is the full output of a run: every pass concatenated in
// identifier order, then page order, then in-page order.
type ResultSet struct {
	Records []imdb.Record
	// raw-mode output, one entry per fetched page
	RawText []string
}

type Runner struct {
	Client   *imdb.Client
	Resolver imdb.Resolver
}

// Run resolves the studio and executes one fetch-and-normalize pass
// per company identifier. Any pass failure aborts the whole run with
// no partial output: partial catalog data would be silently
// misleading.
func (r Runner) Run(ctx context.Context, query Query) (*ResultSet, error) {
	ctx, span := tracer.Start(ctx, "catalog:Run")
	defer span.End()

	if query.MaxItems <= 0 {
		query.MaxItems = DefaultMaxItems
	}

	ids := r.Resolver.Resolve(query.Studio)
	if len(ids) == 0 {
		return nil, fmt.Errorf("%w: resolver produced no identifiers for %q", ErrInvariant, query.Studio)
	}
	slog.Debug("resolved studio", "studio", query.Studio, "identifiers", ids)

	seen := map[string]bool{}
	result := &ResultSet{}
	for _, id := range ids {
		if seen[id] {
			return nil, fmt.Errorf("%w: duplicate identifier %q in resolver output", ErrInvariant, id)
		}
		seen[id] = true

		pass, err := r.runPass(ctx, query, id)
		if err != nil {
			span.SetStatus(codes.Error, "pass failed")
			span.RecordError(err)
			return nil, fmt.Errorf("pass %q: %w", id, err)
		}
		result.Records = append(result.Records, pass.records...)
		result.RawText = append(result.RawText, pass.rawText...)
	}

	return result, nil
}

type passResult struct {
	records []imdb.Record
	rawText []string
}

// runPass drives one company identifier from first fetch to the last
// page. The final partial page is always fetched, even when it holds
// zero items past the last real one; that matches the upstream
// service's observed paging behavior.
func (r Runner) runPass(ctx context.Context, query Query, company string) (passResult, error) {
	ctx, span := tracer.Start(ctx, "catalog:pass")
	defer span.End()
	span.SetAttributes(attribute.String("company", company))

	target := imdb.BuildQuery(r.Client.BaseUrl, company, query.FromYear, query.ToYear, 1)
	slog.Info("fetching catalog", "company", company, "from", query.FromYear, "to", query.ToYear)
	page, err := r.Client.FetchPage(ctx, target)
	if err != nil {
		return passResult{}, err
	}

	count, err := imdb.ExtractCount(page)
	if err != nil {
		return passResult{}, err
	}
	span.SetAttributes(attribute.Int("title_count", count))
	slog.Info("found titles", "company", company, "count", count)

	if count >= query.MaxItems {
		return passResult{}, fmt.Errorf(
			"%w: found %d titles, ceiling is %d", ErrTooManyItems, count, query.MaxItems,
		)
	}

	var pass passResult
	appendPage := func(page string) {
		text := imdb.StripPage(page)
		if query.Raw {
			pass.rawText = append(pass.rawText, text)
			return
		}
		pass.records = append(pass.records, imdb.NormalizeRecords(text)...)
	}
	appendPage(page)

	for offset := 1; offset+imdb.PageSize <= count; {
		offset += imdb.PageSize
		if err := ctx.Err(); err != nil {
			return passResult{}, err
		}

		target := imdb.BuildQuery(r.Client.BaseUrl, company, query.FromYear, query.ToYear, offset)
		slog.Debug("fetching page", "company", company, "offset", offset)
		page, err := r.Client.FetchPage(ctx, target)
		if err != nil {
			return passResult{}, err
		}
		appendPage(page)
	}

	// a cancellation that lands after the last fetch still voids the
	// pass; no partial (or full) ResultSet is delivered on interrupt
	if err := ctx.Err(); err != nil {
		return passResult{}, err
	}

	return pass, nil
}

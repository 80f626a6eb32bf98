package series

import (
	"context"
	"fmt"
	"strings"

	"github.com/honeycarbs/sonarr-mcp/pkg/sonarr"
)

// MissingRefMessage is returned when neither an id nor a title was supplied.
const MissingRefMessage = "Either seriesId or seriesTitle must be provided."

// Lister fetches the full series library in listing order.
type Lister interface {
	ListSeries(ctx context.Context) ([]sonarr.Series, error)
}

// Ref identifies a series either directly or by a fuzzy title.
type Ref struct {
	ID    *int
	Title string
}

// Resolution is either a resolved series id or a soft failure message
// meant to be returned to the caller as-is.
type Resolution struct {
	ID      int
	Failure string
}

// Resolved reports whether an id was found
func (r Resolution) Resolved() bool {
	return r.Failure == ""
}

// Resolver turns a Ref into exactly one Sonarr series id
type Resolver struct {
	lister Lister
}

// NewResolver builds a Resolver backed by the given series lister
func NewResolver(lister Lister) *Resolver {
	return &Resolver{lister: lister}
}

// Resolve applies the lookup rules: an explicit id wins without a
// round trip; otherwise the first series whose title contains the
// query (case-insensitive) in listing order is used.
func (r *Resolver) Resolve(ctx context.Context, ref Ref) (Resolution, error) {
	if ref.ID != nil && *ref.ID != 0 {
		return Resolution{ID: *ref.ID}, nil
	}

	if ref.Title == "" {
		return Resolution{Failure: MissingRefMessage}, nil
	}

	if r == nil || r.lister == nil {
		return Resolution{}, fmt.Errorf("series resolver: lister not configured")
	}

	all, err := r.lister.ListSeries(ctx)
	if err != nil {
		return Resolution{}, fmt.Errorf("list series: %w", err)
	}

	needle := strings.ToLower(ref.Title)
	for _, s := range all {
		if strings.Contains(strings.ToLower(s.Title), needle) {
			return Resolution{ID: s.ID}, nil
		}
	}

	return Resolution{Failure: fmt.Sprintf(`No series found matching title: "%s"`, ref.Title)}, nil
}

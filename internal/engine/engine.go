// Package engine defines the page fetcher contract shared by the browser
// and HTTP engines.
package engine

import (
	"context"

	"github.com/law-makers/selectorfinder/pkg/models"
)

// Fetcher is the interface that all page fetching engines must implement
type Fetcher interface {
	// Fetch loads opts.URL and returns the rendered HTML. It must honour
	// opts.Timeout and release every resource it acquired before returning.
	Fetch(ctx context.Context, opts models.RequestOptions) (*models.PageData, error)

	// Name returns the name of the fetcher implementation
	Name() string
}

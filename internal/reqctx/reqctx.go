// Package reqctx carries per-analysis identity through a context.
package reqctx

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

type key int

const analysisKey key = 0

// Analysis identifies one run of the analyzer
type Analysis struct {
	ID        string
	URL       string
	StartTime time.Time
}

// WithAnalysis returns a context carrying a fresh Analysis for url
func WithAnalysis(ctx context.Context, url string) context.Context {
	return context.WithValue(ctx, analysisKey, &Analysis{
		ID:        generateID(),
		URL:       url,
		StartTime: time.Now(),
	})
}

// FromContext returns the Analysis stored in ctx, or a placeholder
func FromContext(ctx context.Context) *Analysis {
	if a, ok := ctx.Value(analysisKey).(*Analysis); ok {
		return a
	}
	return &Analysis{
		ID:        "unknown",
		StartTime: time.Now(),
	}
}

// Logger returns the global logger tagged with the analysis fields
func Logger(ctx context.Context) zerolog.Logger {
	a := FromContext(ctx)
	return log.With().Str("analysis_id", a.ID).Str("url", a.URL).Logger()
}

// Elapsed returns the time since the analysis started
func (a *Analysis) Elapsed() time.Duration {
	return time.Since(a.StartTime)
}

func generateID() string {
	b := make([]byte, 8)
	rand.Read(b)
	return hex.EncodeToString(b)
}

// AnalysisError wraps an error with the analysis it belongs to
type AnalysisError struct {
	AnalysisID string
	Err        error
}

// Error implements the error interface
func (e *AnalysisError) Error() string {
	return fmt.Sprintf("[%s] %v", e.AnalysisID, e.Err)
}

// Unwrap returns the underlying error
func (e *AnalysisError) Unwrap() error {
	return e.Err
}

// NewAnalysisError wraps err with the analysis ID found in ctx
func NewAnalysisError(ctx context.Context, err error) error {
	return &AnalysisError{
		AnalysisID: FromContext(ctx).ID,
		Err:        err,
	}
}

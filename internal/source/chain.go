package source

import (
	"context"
	"fmt"
	"log"
	"strings"

	"votd-notion-sync/internal/model"
)

// FetchError records a single source's failure during a fallback run.
type FetchError struct {
	Source string
	Err    error
}

func (e *FetchError) Error() string {
	return fmt.Sprintf("%s: %v", e.Source, e.Err)
}

func (e *FetchError) Unwrap() error {
	return e.Err
}

// ExhaustedError is returned when every source in the chain has failed.
type ExhaustedError struct {
	Attempts []*FetchError
}

func (e *ExhaustedError) Error() string {
	reasons := make([]string, len(e.Attempts))
	for i, a := range e.Attempts {
		reasons[i] = a.Error()
	}
	return fmt.Sprintf("all %d sources failed: %s", len(e.Attempts), strings.Join(reasons, "; "))
}

// Chain tries sources in a fixed priority order and returns the first
// successful result. The cheapest, most reliable source goes first.
type Chain struct {
	sources []Source
}

// NewChain creates a fallback chain over the given sources, in order.
func NewChain(sources ...Source) *Chain {
	return &Chain{sources: sources}
}

// Sources returns the ordered list of sources in the chain.
func (c *Chain) Sources() []Source {
	return c.sources
}

// Fetch tries each source in order and returns the first verse fetched,
// together with the name of the source that produced it. Individual failures
// are logged and suppressed; once a source succeeds, the remaining sources
// are never invoked. If every source fails, Fetch returns an ExhaustedError
// aggregating the per-source reasons.
func (c *Chain) Fetch(ctx context.Context) (model.Verse, string, error) {
	var attempts []*FetchError

	for _, s := range c.sources {
		verse, err := s.FetchToday(ctx)
		if err != nil {
			log.Printf("source %s failed: %v", s.Name(), err)
			attempts = append(attempts, &FetchError{Source: s.Name(), Err: err})
			continue
		}
		return verse, s.Name(), nil
	}

	return model.Verse{}, "", &ExhaustedError{Attempts: attempts}
}

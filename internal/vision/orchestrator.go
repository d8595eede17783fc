package vision

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog/log"
)

const defaultAttemptTimeout = 90 * time.Second

// OrchestratorOpts configures an Orchestrator.
type OrchestratorOpts struct {
	// AttemptTimeout bounds each provider attempt. Zero means the default.
	AttemptTimeout time.Duration
}

// Orchestrator runs an ordered provider fallback chain: each provider gets
// exactly one attempt with the identical prompt and images, any failure
// (network, HTTP or unparseable response) advances to the next provider,
// and the first normalized result wins. There are no per-provider retries
// and no backoff.
type Orchestrator struct {
	providers      []Provider
	attemptTimeout time.Duration
}

// NewOrchestrator creates an orchestrator over the given providers, tried
// in order.
func NewOrchestrator(providers []Provider, opts OrchestratorOpts) *Orchestrator {
	timeout := opts.AttemptTimeout
	if timeout <= 0 {
		timeout = defaultAttemptTimeout
	}
	return &Orchestrator{providers: providers, attemptTimeout: timeout}
}

// Analyze implements the Analyzer interface. It returns the first
// successfully normalized record, or an ExhaustedError carrying the last
// attempt's error once every provider has failed. Token usage is
// accumulated across attempts, including failed ones.
func (o *Orchestrator) Analyze(ctx context.Context, images []Image) (*AnalysisRecord, Usage, error) {
	if len(images) == 0 {
		return nil, Usage{}, fmt.Errorf("no images provided")
	}
	if len(o.providers) == 0 {
		return nil, Usage{}, fmt.Errorf("no providers configured")
	}

	var total Usage
	var lastErr error

	for _, p := range o.providers {
		if err := ctx.Err(); err != nil {
			return nil, total, err
		}

		rec, usage, err := o.attempt(ctx, p, images)
		total.Add(usage)
		if err != nil {
			lastErr = err
			log.Warn().Err(err).Str("provider", p.Name()).Msg("provider attempt failed")
			continue
		}
		return rec, total, nil
	}

	return nil, total, &ExhaustedError{Attempts: len(o.providers), Last: lastErr}
}

func (o *Orchestrator) attempt(ctx context.Context, p Provider, images []Image) (*AnalysisRecord, Usage, error) {
	attemptCtx, cancel := context.WithTimeout(ctx, o.attemptTimeout)
	defer cancel()

	resp, err := p.Describe(attemptCtx, analysisPrompt, images)
	if err != nil {
		return nil, Usage{}, &ProviderError{Provider: p.Name(), Err: err}
	}

	rec, err := Normalize(resp.Text)
	if err != nil {
		return nil, resp.Usage, err
	}
	return rec, resp.Usage, nil
}

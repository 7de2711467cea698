package bitcoin

import (
	"context"
	"fmt"
	"time"

	"github.com/goodnatureofminers/blockinsight7000-verifier/internal/clock"
	"go.uber.org/zap"
)

// maxProbeBackoff caps the doubling delay between readiness attempts.
const maxProbeBackoff = 30 * time.Second

// NodeProbe waits for the node to answer RPC calls.
type NodeProbe struct {
	client   BlockCounter
	logger   *zap.Logger
	sleep    func(context.Context, time.Duration) error
	attempts int
	backoff  time.Duration
}

// NewNodeProbe constructs a probe that polls getblockcount up to attempts times,
// doubling backoff after each failure.
func NewNodeProbe(client BlockCounter, logger *zap.Logger, attempts int, backoff time.Duration) *NodeProbe {
	if attempts < 1 {
		attempts = 1
	}
	return &NodeProbe{
		client:   client,
		logger:   logger,
		sleep:    clock.SleepWithContext,
		attempts: attempts,
		backoff:  backoff,
	}
}

// Wait returns the node's block count once it responds.
func (p *NodeProbe) Wait(ctx context.Context) (int64, error) {
	var lastErr error
	for attempt := 1; attempt <= p.attempts; attempt++ {
		count, err := p.client.GetBlockCount()
		if err == nil {
			return count, nil
		}
		lastErr = err
		delay := clock.Backoff(p.backoff, maxProbeBackoff, attempt)
		p.logger.Warn("node not ready",
			zap.Int("attempt", attempt),
			zap.Int("attempts", p.attempts),
			zap.Duration("backoff", delay),
			zap.Error(err),
		)
		if attempt == p.attempts {
			break
		}
		if err := p.sleep(ctx, delay); err != nil {
			return 0, err
		}
	}
	return 0, fmt.Errorf("node not reachable after %d attempts: %w", p.attempts, lastErr)
}

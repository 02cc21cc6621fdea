package events

import (
	"context"

	"github.com/niksmo/storefront/internal/core/domain"
	"github.com/niksmo/storefront/internal/core/port"
)

var _ port.EventProducer = (*NopProducer)(nil)

// A NopProducer discards events. Wired when no seed brokers are
// configured, so the storefront runs without a broker.
type NopProducer struct{}

func (NopProducer) ProduceEvent(context.Context, domain.ClientEvent) error {
	return nil
}

func (NopProducer) Close() {}

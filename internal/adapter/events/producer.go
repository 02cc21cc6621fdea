package events

import (
	"context"
	"log/slog"
	"strconv"

	"github.com/niksmo/storefront/internal/core/domain"
	"github.com/niksmo/storefront/internal/core/port"
	"github.com/niksmo/storefront/pkg/schema"
	"github.com/twmb/franz-go/pkg/kgo"
)

var _ port.EventProducer = (*ClientEventsProducer)(nil)

// A ClientEventsProducer publishes [domain.ClientEvent] values,
// Avro-encoded, keyed by product id.
type ClientEventsProducer struct {
	cl       ProducerClient
	encoder  Encoder
	opPrefix string
}

func NewClientEventsProducer(
	opts ...ProducerOpt,
) (ClientEventsProducer, error) {
	const op = "NewClientEventsProducer"

	if len(opts) != 2 {
		return ClientEventsProducer{}, opErr(ErrTooFewOpts, op)
	}

	var options producerOpts
	for _, opt := range opts {
		if err := opt(&options); err != nil {
			return ClientEventsProducer{}, opErr(err, op)
		}
	}

	return ClientEventsProducer{
		cl:       options.cl,
		encoder:  options.encoder,
		opPrefix: "ClientEventsProducer",
	}, nil
}

func (p ClientEventsProducer) ProduceEvent(
	ctx context.Context, e domain.ClientEvent,
) error {
	const op = "ProduceEvent"

	if err := ctx.Err(); err != nil {
		return opErr(err, p.opPrefix, op)
	}

	b, err := p.encoder.Encode(p.toSchema(e))
	if err != nil {
		return opErr(err, p.opPrefix, op)
	}

	r := &kgo.Record{
		Key:   []byte(strconv.Itoa(e.ProductID)),
		Value: b,
	}
	res := p.cl.ProduceSync(ctx, r)
	if err := res.FirstErr(); err != nil {
		return opErr(err, p.opPrefix, op)
	}
	return nil
}

func (p ClientEventsProducer) Close() {
	const op = "Close"
	log := slog.With("op", makeOp(p.opPrefix, op))

	log.Info("closing producer...")
	p.cl.Close()
	log.Info("producer is closed")
}

func (ClientEventsProducer) toSchema(
	e domain.ClientEvent,
) schema.ClientEventV1 {
	return schema.ClientEventV1{
		EventID:    e.EventID,
		EventType:  e.Type,
		ProductID:  int64(e.ProductID),
		Quantity:   int64(e.Quantity),
		OccurredAt: e.OccurredAt.UnixMilli(),
	}
}

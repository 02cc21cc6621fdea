// Package schema defines the Avro records exchanged with the
// analytics pipeline.
package schema

import (
	"fmt"

	"github.com/hamba/avro/v2"
)

type Serde interface {
	Encode(v any) ([]byte, error)
	Decode(data []byte, v any) error
}

type avroSerde struct {
	schema avro.Schema
}

func (s avroSerde) Encode(v any) ([]byte, error) {
	return avro.Marshal(s.schema, v)
}

func (s avroSerde) Decode(data []byte, v any) error {
	return avro.Unmarshal(s.schema, data, v)
}

func newSerde(schemaText, op string) (Serde, error) {
	avroSchema, err := avro.Parse(schemaText)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return avroSerde{avroSchema}, nil
}

package schema

const ClientEventSchemaTextV1 = `{
	"type": "record",
	"namespace": "storefront",
	"name": "client_event",
	"fields" : [
		{"name": "event_id", "type": "string"},
		{"name": "event_type", "type": "string"},
		{"name": "product_id", "type": "long"},
		{"name": "quantity", "type": "long"},
		{"name": "occurred_at", "type": "long"}
	]
}`

// A ClientEventV1 is one shopper action. OccurredAt is unix
// milliseconds.
type ClientEventV1 struct {
	EventID    string `avro:"event_id"`
	EventType  string `avro:"event_type"`
	ProductID  int64  `avro:"product_id"`
	Quantity   int64  `avro:"quantity"`
	OccurredAt int64  `avro:"occurred_at"`
}

func NewSerdeClientEventV1() (Serde, error) {
	const op = "NewSerdeClientEventV1"
	return newSerde(ClientEventSchemaTextV1, op)
}

package schema

import (
	"fmt"

	"github.com/hamba/avro/v2"
)

type Serde interface {
	Encode(v any) ([]byte, error)
	Decode(data []byte, v any) error
}

type serde struct {
	avroSchema avro.Schema
}

func (s serde) Encode(v any) ([]byte, error) {
	return avro.Marshal(s.avroSchema, v)
}

func (s serde) Decode(data []byte, v any) error {
	return avro.Unmarshal(s.avroSchema, data, v)
}

// NewSerdeCartStateV1 builds the codec for durable cart snapshots.
// The schema is local to the process: snapshots never cross a wire,
// so no registry is involved.
func NewSerdeCartStateV1() (Serde, error) {
	const op = "NewSerdeCartStateV1"

	avroSchema, err := avro.Parse(CartStateSchemaTextV1)
	if err != nil {
		return serde{}, fmt.Errorf("%s: %w", op, err)
	}
	return serde{avroSchema: avroSchema}, nil
}

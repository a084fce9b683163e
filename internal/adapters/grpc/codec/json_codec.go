// Package codec registers a JSON wire codec for gRPC, used in place of
// protobuf message encoding: every RPC here exchanges plain Go structs
// (the same ones the HTTP layer binds to), JSON-encoded, rather than
// requiring a separate .proto-generated message set.
package codec

import (
	"encoding/json"

	"google.golang.org/grpc/encoding"
)

func init() {
	encoding.RegisterCodec(JSONCodec{})
}

// Name is the gRPC content-subtype this codec registers under
// ("application/grpc+json").
const Name = "json"

// JSONCodec implements google.golang.org/grpc/encoding.Codec.
type JSONCodec struct{}

// Marshal encodes v as JSON.
func (JSONCodec) Marshal(v any) ([]byte, error) {
	return json.Marshal(v)
}

// Unmarshal decodes JSON data into v.
func (JSONCodec) Unmarshal(data []byte, v any) error {
	return json.Unmarshal(data, v)
}

// Name returns the codec's registered name.
func (JSONCodec) Name() string {
	return Name
}

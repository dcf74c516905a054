package rpc

import "encoding/json"

// jsonCodec is a grpc encoding.Codec that carries plain JSON frames.
// Clients must dial with the json content-subtype.
type jsonCodec struct{}

func (jsonCodec) Marshal(v any) ([]byte, error) {
	return json.Marshal(v)
}

func (jsonCodec) Unmarshal(data []byte, v any) error {
	return json.Unmarshal(data, v)
}

func (jsonCodec) Name() string { return "json" }

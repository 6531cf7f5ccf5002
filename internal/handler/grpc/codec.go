// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package grpc

import (
	"encoding/json"
	"fmt"

	"google.golang.org/grpc/encoding"
)

// CodecName is the content-subtype of recipe RPCs: application/grpc+json.
const CodecName = "json"

// Codec marshals RPC messages as JSON so the service needs no generated
// protobuf types. Messages are the plain structs in messages.go.
type Codec struct{}

func init() {
	encoding.RegisterCodec(Codec{})
}

func (Codec) Marshal(v any) ([]byte, error) {
	b, err := json.Marshal(v)
	if err != nil {
		return nil, fmt.Errorf("json codec marshal %T: %w", v, err)
	}
	return b, nil
}

func (Codec) Unmarshal(data []byte, v any) error {
	if len(data) == 0 {
		return nil
	}
	if err := json.Unmarshal(data, v); err != nil {
		return fmt.Errorf("json codec unmarshal %T: %w", v, err)
	}
	return nil
}

func (Codec) Name() string {
	return CodecName
}

// Package wire defines the messages of mindlink.v1.SessionService and their
// protobuf encoding. Messages marshal themselves with protowire, so the
// native gRPC codec and the gRPC-Web bridge share one implementation.
package wire

import (
	"errors"
	"fmt"

	"google.golang.org/protobuf/encoding/protowire"
	"google.golang.org/protobuf/types/known/timestamppb"
)

var errParse = errors.New("wire: parse error")

// Message is any request or response on the service.
type Message interface {
	MarshalWire() []byte
	UnmarshalWire(data []byte) error
}

// Codec plugs the wire messages into grpc. It replaces the generated-proto
// codec on both the server and the bridge client.
type Codec struct{}

func (Codec) Marshal(v any) ([]byte, error) {
	m, ok := v.(Message)
	if !ok {
		return nil, fmt.Errorf("wire: cannot marshal %T", v)
	}
	return m.MarshalWire(), nil
}

func (Codec) Unmarshal(data []byte, v any) error {
	m, ok := v.(Message)
	if !ok {
		return fmt.Errorf("wire: cannot unmarshal into %T", v)
	}
	return m.UnmarshalWire(data)
}

func (Codec) Name() string { return "proto" }

// walk iterates top-level fields. fn returns how many payload bytes it
// consumed; zero means the field was not recognized and is skipped whole.
func walk(data []byte, fn func(num protowire.Number, typ protowire.Type, data []byte) (int, error)) error {
	for len(data) > 0 {
		num, typ, n := protowire.ConsumeTag(data)
		if n < 0 {
			return errParse
		}
		data = data[n:]

		used, err := fn(num, typ, data)
		if err != nil {
			return err
		}
		if used == 0 {
			used = protowire.ConsumeFieldValue(num, typ, data)
			if used < 0 {
				return errParse
			}
		}
		data = data[used:]
	}
	return nil
}

func consumeString(data []byte) (string, int, error) {
	v, n := protowire.ConsumeBytes(data)
	if n < 0 {
		return "", 0, errParse
	}
	return string(v), n, nil
}

func consumeBool(data []byte) (bool, int, error) {
	v, n := protowire.ConsumeVarint(data)
	if n < 0 {
		return false, 0, errParse
	}
	return v != 0, n, nil
}

func consumeInt64(data []byte) (int64, int, error) {
	v, n := protowire.ConsumeVarint(data)
	if n < 0 {
		return 0, 0, errParse
	}
	return int64(v), n, nil
}

// zero values are omitted, proto3 style
func appendString(out []byte, num protowire.Number, s string) []byte {
	if s == "" {
		return out
	}
	out = protowire.AppendTag(out, num, protowire.BytesType)
	return protowire.AppendString(out, s)
}

func appendBool(out []byte, num protowire.Number, v bool) []byte {
	if !v {
		return out
	}
	out = protowire.AppendTag(out, num, protowire.VarintType)
	return protowire.AppendVarint(out, 1)
}

func appendInt64(out []byte, num protowire.Number, v int64) []byte {
	if v == 0 {
		return out
	}
	out = protowire.AppendTag(out, num, protowire.VarintType)
	return protowire.AppendVarint(out, uint64(v))
}

func appendMessage(out []byte, num protowire.Number, m Message) []byte {
	out = protowire.AppendTag(out, num, protowire.BytesType)
	return protowire.AppendBytes(out, m.MarshalWire())
}

func parseTimestamp(b []byte) *timestamppb.Timestamp {
	ts := &timestamppb.Timestamp{}
	_ = walk(b, func(num protowire.Number, typ protowire.Type, data []byte) (int, error) {
		if typ != protowire.VarintType {
			return 0, nil
		}
		v, n := protowire.ConsumeVarint(data)
		if n < 0 {
			return 0, errParse
		}
		switch num {
		case 1:
			ts.Seconds = int64(v)
		case 2:
			ts.Nanos = int32(v)
		default:
			return 0, nil
		}
		return n, nil
	})
	return ts
}

func appendTimestamp(out []byte, num protowire.Number, ts *timestamppb.Timestamp) []byte {
	if ts == nil {
		return out
	}
	var inner []byte
	if ts.Seconds != 0 {
		inner = protowire.AppendTag(inner, 1, protowire.VarintType)
		inner = protowire.AppendVarint(inner, uint64(ts.Seconds))
	}
	if ts.Nanos != 0 {
		inner = protowire.AppendTag(inner, 2, protowire.VarintType)
		inner = protowire.AppendVarint(inner, uint64(ts.Nanos))
	}
	out = protowire.AppendTag(out, num, protowire.BytesType)
	return protowire.AppendBytes(out, inner)
}

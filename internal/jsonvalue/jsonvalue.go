// Package jsonvalue provides a collections value codec for plain Go structs
// that have no protobuf definition.
package jsonvalue

import (
	"encoding/json"
	"fmt"

	collcodec "cosmossdk.io/collections/codec"
)

// Codec stores values of T as their JSON encoding.
type Codec[T any] struct {
	typeName string
}

var _ collcodec.ValueCodec[struct{}] = Codec[struct{}]{}

// New returns a JSON value codec reporting typeName as its value type.
func New[T any](typeName string) Codec[T] {
	return Codec[T]{typeName: typeName}
}

func (c Codec[T]) Encode(value T) ([]byte, error) {
	bz, err := json.Marshal(value)
	if err != nil {
		return nil, fmt.Errorf("%s: encode: %w", c.typeName, err)
	}
	return bz, nil
}

func (c Codec[T]) Decode(bz []byte) (T, error) {
	var v T
	if err := json.Unmarshal(bz, &v); err != nil {
		return v, fmt.Errorf("%s: decode: %w", c.typeName, err)
	}
	return v, nil
}

func (c Codec[T]) EncodeJSON(value T) ([]byte, error) { return c.Encode(value) }
func (c Codec[T]) DecodeJSON(bz []byte) (T, error)    { return c.Decode(bz) }

func (c Codec[T]) Stringify(value T) string {
	bz, err := json.Marshal(value)
	if err != nil {
		return fmt.Sprintf("%+v", value)
	}
	return string(bz)
}

func (c Codec[T]) ValueType() string { return c.typeName }

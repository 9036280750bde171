package datapath

import (
	"context"
	"time"
)

// Codec provides content-type aware marshaling.
//
// The codecs in this module (json, yaml, msgpack, bson) decode into ordered
// trees when Unmarshal is given a *any: objects become *Map in document
// order, arrays become []any. Any other target is decoded as usual.
type Codec interface {
	// ContentType returns the MIME type for this codec (e.g., "application/json").
	ContentType() string

	// Marshal encodes v into bytes.
	Marshal(v any) ([]byte, error)

	// Unmarshal decodes data into v.
	Unmarshal(data []byte, v any) error
}

// Load decodes a document into a tree ready for path access.
func Load(codec Codec, data []byte) (any, error) {
	start := time.Now()
	var doc any
	err := codec.Unmarshal(data, &doc)
	if err != nil {
		err = newCodecError(ErrUnmarshal, codec.ContentType(), err)
		doc = nil
	}
	emitLoad(context.Background(), codec.ContentType(), len(data), time.Since(start), err)
	return doc, err
}

// Dump encodes a tree, keeping *Map key order.
func Dump(codec Codec, v any) ([]byte, error) {
	start := time.Now()
	data, err := codec.Marshal(v)
	if err != nil {
		err = newCodecError(ErrMarshal, codec.ContentType(), err)
		data = nil
	}
	emitDump(context.Background(), codec.ContentType(), len(data), time.Since(start), err)
	return data, err
}

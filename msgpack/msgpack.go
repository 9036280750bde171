// Package msgpack provides a MessagePack codec implementation.
package msgpack

import (
	"bytes"
	"encoding/json"
	"fmt"
	"sort"

	"github.com/vmihailenco/msgpack/v5"
	"github.com/vmihailenco/msgpack/v5/msgpcode"
	"github.com/zoobzio/datapath"
)

// msgpackCodec implements datapath.Codec for MessagePack.
type msgpackCodec struct{}

// New returns a MessagePack codec.
func New() datapath.Codec {
	return &msgpackCodec{}
}

// ContentType returns the MIME type for MessagePack.
func (c *msgpackCodec) ContentType() string {
	return "application/msgpack"
}

// Marshal encodes v as MessagePack. *datapath.Map keeps its key order.
func (c *msgpackCodec) Marshal(v any) ([]byte, error) {
	var buf bytes.Buffer
	enc := msgpack.NewEncoder(&buf)
	if err := encodeValue(enc, v); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// Unmarshal decodes MessagePack data into v. A *any receives an ordered tree.
func (c *msgpackCodec) Unmarshal(data []byte, v any) error {
	out, ok := v.(*any)
	if !ok {
		return msgpack.Unmarshal(data, v)
	}
	dec := msgpack.NewDecoder(bytes.NewReader(data))
	val, err := decodeValue(dec)
	if err != nil {
		return err
	}
	*out = val
	return nil
}

func encodeValue(enc *msgpack.Encoder, v any) error {
	switch t := v.(type) {
	case *datapath.Map:
		if t == nil {
			return enc.EncodeNil()
		}
		if err := enc.EncodeMapLen(t.Len()); err != nil {
			return err
		}
		for _, e := range t.Entries() {
			if err := enc.EncodeString(e.Key); err != nil {
				return err
			}
			if err := encodeValue(enc, e.Value); err != nil {
				return err
			}
		}
		return nil
	case map[string]any:
		keys := make([]string, 0, len(t))
		for k := range t {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		if err := enc.EncodeMapLen(len(keys)); err != nil {
			return err
		}
		for _, k := range keys {
			if err := enc.EncodeString(k); err != nil {
				return err
			}
			if err := encodeValue(enc, t[k]); err != nil {
				return err
			}
		}
		return nil
	case []any:
		if err := enc.EncodeArrayLen(len(t)); err != nil {
			return err
		}
		for _, item := range t {
			if err := encodeValue(enc, item); err != nil {
				return err
			}
		}
		return nil
	case json.Number:
		if i, err := t.Int64(); err == nil {
			return enc.EncodeInt(i)
		}
		f, err := t.Float64()
		if err != nil {
			return err
		}
		return enc.EncodeFloat64(f)
	default:
		return enc.Encode(v)
	}
}

func decodeValue(dec *msgpack.Decoder) (any, error) {
	code, err := dec.PeekCode()
	if err != nil {
		return nil, err
	}
	switch {
	case msgpcode.IsFixedMap(code) || code == msgpcode.Map16 || code == msgpcode.Map32:
		n, err := dec.DecodeMapLen()
		if err != nil {
			return nil, err
		}
		m := datapath.NewMap()
		for i := 0; i < n; i++ {
			k, err := dec.DecodeInterfaceLoose()
			if err != nil {
				return nil, err
			}
			val, err := decodeValue(dec)
			if err != nil {
				return nil, err
			}
			m.Store(fmt.Sprint(k), val)
		}
		return m, nil
	case msgpcode.IsFixedArray(code) || code == msgpcode.Array16 || code == msgpcode.Array32:
		n, err := dec.DecodeArrayLen()
		if err != nil {
			return nil, err
		}
		list := make([]any, 0, n)
		for i := 0; i < n; i++ {
			val, err := decodeValue(dec)
			if err != nil {
				return nil, err
			}
			list = append(list, val)
		}
		return list, nil
	default:
		return dec.DecodeInterfaceLoose()
	}
}

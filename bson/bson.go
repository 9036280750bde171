// Package bson provides a BSON codec implementation.
package bson

import (
	"encoding/json"
	"sort"

	"github.com/zoobzio/datapath"
	"go.mongodb.org/mongo-driver/bson"
)

// bsonCodec implements datapath.Codec for BSON.
type bsonCodec struct{}

// New returns a BSON codec.
func New() datapath.Codec {
	return &bsonCodec{}
}

// ContentType returns the MIME type for BSON.
func (c *bsonCodec) ContentType() string {
	return "application/bson"
}

// Marshal encodes v as BSON. The top level must be a document;
// *datapath.Map keeps its key order.
func (c *bsonCodec) Marshal(v any) ([]byte, error) {
	return bson.Marshal(toBSON(v))
}

// Unmarshal decodes BSON data into v. A *any receives an ordered tree.
func (c *bsonCodec) Unmarshal(data []byte, v any) error {
	out, ok := v.(*any)
	if !ok {
		return bson.Unmarshal(data, v)
	}
	var doc bson.D
	if err := bson.Unmarshal(data, &doc); err != nil {
		return err
	}
	*out = fromBSON(doc)
	return nil
}

func toBSON(v any) any {
	switch t := v.(type) {
	case *datapath.Map:
		if t == nil {
			return nil
		}
		d := make(bson.D, 0, t.Len())
		for _, e := range t.Entries() {
			d = append(d, bson.E{Key: e.Key, Value: toBSON(e.Value)})
		}
		return d
	case map[string]any:
		keys := make([]string, 0, len(t))
		for k := range t {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		d := make(bson.D, 0, len(keys))
		for _, k := range keys {
			d = append(d, bson.E{Key: k, Value: toBSON(t[k])})
		}
		return d
	case []any:
		a := make(bson.A, len(t))
		for i, item := range t {
			a[i] = toBSON(item)
		}
		return a
	case json.Number:
		if i, err := t.Int64(); err == nil {
			return i
		}
		if f, err := t.Float64(); err == nil {
			return f
		}
		return t.String()
	default:
		return v
	}
}

func fromBSON(v any) any {
	switch t := v.(type) {
	case bson.D:
		m := datapath.NewMap()
		for _, e := range t {
			m.Store(e.Key, fromBSON(e.Value))
		}
		return m
	case bson.M:
		keys := make([]string, 0, len(t))
		for k := range t {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		m := datapath.NewMap()
		for _, k := range keys {
			m.Store(k, fromBSON(t[k]))
		}
		return m
	case bson.A:
		list := make([]any, len(t))
		for i, item := range t {
			list[i] = fromBSON(item)
		}
		return list
	default:
		return v
	}
}

package cayennelpp

import (
	"bytes"
	"encoding/json"
)

// DecodedPayload holds the decoded values of one payload, keyed by
// "<Name>_<channel>". Keys keep the order in which the frames appeared in
// the payload. Writing an existing key overwrites its value in place
// (last write wins).
type DecodedPayload struct {
	keys   []string
	values map[string]interface{}
}

// NewDecodedPayload creates an empty DecodedPayload.
func NewDecodedPayload() *DecodedPayload {
	return &DecodedPayload{
		values: make(map[string]interface{}),
	}
}

// Set stores the value under the given key.
func (p *DecodedPayload) Set(key string, value interface{}) {
	if _, ok := p.values[key]; !ok {
		p.keys = append(p.keys, key)
	}
	p.values[key] = value
}

// Get returns the value stored under the given key.
func (p *DecodedPayload) Get(key string) (interface{}, bool) {
	v, ok := p.values[key]
	return v, ok
}

// Keys returns all keys in insertion order.
func (p *DecodedPayload) Keys() []string {
	out := make([]string, len(p.keys))
	copy(out, p.keys)
	return out
}

// Len returns the number of stored values.
func (p *DecodedPayload) Len() int {
	return len(p.values)
}

// MarshalJSON implements json.Marshaler. Keys are written in insertion order.
func (p DecodedPayload) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, k := range p.keys {
		if i > 0 {
			buf.WriteByte(',')
		}
		kb, err := json.Marshal(k)
		if err != nil {
			return nil, err
		}
		buf.Write(kb)
		buf.WriteByte(':')
		vb, err := json.Marshal(p.values[k])
		if err != nil {
			return nil, err
		}
		buf.Write(vb)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

package cayennelpp

import (
	"encoding/binary"
	"strconv"

	"github.com/pkg/errors"
)

// Decoder decodes Cayenne LPP encoded payloads.
//
// Each Decoder owns its own Registry; custom types registered on one decoder
// are never visible to another.
type Decoder struct {
	registry *Registry
}

// NewDecoder creates a new Decoder with a fresh registry holding the
// standard data types.
func NewDecoder() *Decoder {
	return &Decoder{
		registry: NewRegistry(),
	}
}

// NewDecoderWithRegistry creates a new Decoder using the given registry.
func NewDecoderWithRegistry(r *Registry) *Decoder {
	return &Decoder{
		registry: r,
	}
}

// Registry returns the registry used by the decoder.
func (d *Decoder) Registry() *Registry {
	return d.registry
}

// RegisterCustomType registers a custom data type on the decoder's registry.
func (d *Decoder) RegisterCustomType(typeID uint8, name string, size int, fn DecodeFunc) bool {
	return d.registry.RegisterCustom(typeID, name, size, fn)
}

// UnregisterCustomType removes a custom data type from the decoder's registry.
func (d *Decoder) UnregisterCustomType(typeID uint8) bool {
	return d.registry.UnregisterCustom(typeID)
}

// HasType returns true when the decoder's registry knows the given type id.
func (d *Decoder) HasType(typeID uint8) bool {
	return d.registry.Contains(typeID)
}

// Decode decodes the given payload. The payload must consist of complete
// (channel, type, data) frames; the first malformed frame aborts the whole
// decode and no partial result is returned.
func (d *Decoder) Decode(data []byte) (*DecodedPayload, error) {
	if len(data) == 0 {
		return nil, ErrPayloadEmpty
	}

	out := NewDecodedPayload()
	var i int

	for i+2 <= len(data) {
		channel := data[i]
		typeID := data[i+1]
		i += 2

		dt, ok := d.registry.Lookup(typeID)
		if !ok {
			return nil, UnknownDataTypeError{TypeID: typeID}
		}

		if i+dt.Size > len(data) {
			return nil, BadPayloadFormatError{Reason: "insufficient bytes for data type " + strconv.Quote(dt.Name)}
		}

		fieldData := data[i : i+dt.Size]
		key := dt.Name + "_" + strconv.Itoa(int(channel))

		var value interface{}
		var err error
		if dt.Standard {
			value = decodeStandard(typeID, fieldData)
		} else {
			if dt.DecodeFunc == nil {
				return nil, ErrUnexpected
			}
			value, err = dt.DecodeFunc(fieldData)
			if err != nil {
				return nil, errors.Wrapf(err, "cayennelpp: decode custom type 0x%02x error", typeID)
			}
		}

		out.Set(key, value)
		i += dt.Size
	}

	if i != len(data) {
		return nil, BadPayloadFormatError{Reason: "unprocessed trailing bytes"}
	}

	return out, nil
}

// decodeStandard decodes one field of a standard data type. The data slice
// is guaranteed to hold exactly the size registered for the type id.
func decodeStandard(typeID uint8, data []byte) interface{} {
	switch typeID {
	case TypeDigitalInput, TypeDigitalOutput, TypePresence:
		return data[0]
	case TypeAnalogInput, TypeAnalogOutput:
		return float64(bytesToInt16(data)) / 100.0
	case TypeLuminosity:
		return binary.BigEndian.Uint16(data)
	case TypeTemperature:
		return float64(bytesToInt16(data)) / 10.0
	case TypeHumidity, TypeBarometer:
		return float64(binary.BigEndian.Uint16(data)) / 10.0
	case TypeAccelerometer:
		return map[string]interface{}{
			"x": float64(bytesToInt16(data[0:2])) / 1000.0,
			"y": float64(bytesToInt16(data[2:4])) / 1000.0,
			"z": float64(bytesToInt16(data[4:6])) / 1000.0,
		}
	case TypeGyrometer:
		return map[string]interface{}{
			"x": float64(bytesToInt16(data[0:2])) / 100.0,
			"y": float64(bytesToInt16(data[2:4])) / 100.0,
			"z": float64(bytesToInt16(data[4:6])) / 100.0,
		}
	case TypeGPS:
		return map[string]interface{}{
			"latitude":  float64(bytesToInt24(data[0:3])) / 10000.0,
			"longitude": float64(bytesToInt24(data[3:6])) / 10000.0,
			"altitude":  float64(bytesToInt24(data[6:9])) / 100.0,
		}
	}

	// unreachable, the registry only holds the type ids above as standard
	return nil
}

// bytesToInt16 reads a big-endian two's-complement 16-bit integer.
func bytesToInt16(data []byte) int16 {
	return int16(binary.BigEndian.Uint16(data))
}

// bytesToUint24 reads a big-endian 24-bit unsigned integer.
func bytesToUint24(data []byte) uint32 {
	return uint32(data[0])<<16 | uint32(data[1])<<8 | uint32(data[2])
}

// bytesToInt24 reads a big-endian two's-complement 24-bit integer.
func bytesToInt24(data []byte) int32 {
	v := bytesToUint24(data)
	if v > 0x7fffff {
		return int32(v) - 0x1000000
	}
	return int32(v)
}

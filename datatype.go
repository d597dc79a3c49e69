package cayennelpp

// Standard Cayenne LPP v1 data type identifiers.
const (
	TypeDigitalInput  uint8 = 0x00
	TypeDigitalOutput uint8 = 0x01
	TypeAnalogInput   uint8 = 0x02
	TypeAnalogOutput  uint8 = 0x03
	TypeLuminosity    uint8 = 0x65
	TypePresence      uint8 = 0x66
	TypeTemperature   uint8 = 0x67
	TypeHumidity      uint8 = 0x68
	TypeAccelerometer uint8 = 0x71
	TypeBarometer     uint8 = 0x73
	TypeGyrometer     uint8 = 0x86
	TypeGPS           uint8 = 0x88
)

// DecodeFunc decodes the payload bytes of a custom data type into a value.
// The data slice is guaranteed to contain exactly the number of bytes the
// type was registered with. A non-nil error aborts decoding of the whole
// payload.
type DecodeFunc func(data []byte) (interface{}, error)

// TypeDescriptor describes a single data type known to a Registry.
type TypeDescriptor struct {
	TypeID   uint8
	Name     string
	Size     int
	Standard bool

	// DecodeFunc is set for custom types only. Standard types are decoded
	// by a fixed internal dispatch.
	DecodeFunc DecodeFunc
}

// standardTypeDescriptors returns the 12 Cayenne LPP v1 data types.
func standardTypeDescriptors() []TypeDescriptor {
	return []TypeDescriptor{
		{TypeID: TypeDigitalInput, Name: "Digital Input", Size: 1, Standard: true},
		{TypeID: TypeDigitalOutput, Name: "Digital Output", Size: 1, Standard: true},
		{TypeID: TypeAnalogInput, Name: "Analog Input", Size: 2, Standard: true},
		{TypeID: TypeAnalogOutput, Name: "Analog Output", Size: 2, Standard: true},
		{TypeID: TypeLuminosity, Name: "Luminosity", Size: 2, Standard: true},
		{TypeID: TypePresence, Name: "Presence", Size: 1, Standard: true},
		{TypeID: TypeTemperature, Name: "Temperature", Size: 2, Standard: true},
		{TypeID: TypeHumidity, Name: "Humidity", Size: 2, Standard: true},
		{TypeID: TypeAccelerometer, Name: "Accelerometer", Size: 6, Standard: true},
		{TypeID: TypeBarometer, Name: "Barometer", Size: 2, Standard: true},
		{TypeID: TypeGyrometer, Name: "Gyrometer", Size: 6, Standard: true},
		{TypeID: TypeGPS, Name: "GPS", Size: 9, Standard: true},
	}
}

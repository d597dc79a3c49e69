package cayennelpp

import (
	"testing"

	. "github.com/smartystreets/goconvey/convey"
)

func TestNewRegistry(t *testing.T) {
	Convey("Given a new registry", t, func() {
		r := NewRegistry()

		Convey("Then the 12 standard types are registered", func() {
			tests := []struct {
				TypeID uint8
				Name   string
				Size   int
			}{
				{TypeDigitalInput, "Digital Input", 1},
				{TypeDigitalOutput, "Digital Output", 1},
				{TypeAnalogInput, "Analog Input", 2},
				{TypeAnalogOutput, "Analog Output", 2},
				{TypeLuminosity, "Luminosity", 2},
				{TypePresence, "Presence", 1},
				{TypeTemperature, "Temperature", 2},
				{TypeHumidity, "Humidity", 2},
				{TypeAccelerometer, "Accelerometer", 6},
				{TypeBarometer, "Barometer", 2},
				{TypeGyrometer, "Gyrometer", 6},
				{TypeGPS, "GPS", 9},
			}

			for _, test := range tests {
				dt, ok := r.Lookup(test.TypeID)
				So(ok, ShouldBeTrue)
				So(dt.Name, ShouldEqual, test.Name)
				So(dt.Size, ShouldEqual, test.Size)
				So(dt.Standard, ShouldBeTrue)
				So(dt.DecodeFunc, ShouldBeNil)
			}
		})

		Convey("Then an unregistered id is not found", func() {
			So(r.Contains(0xff), ShouldBeFalse)
			_, ok := r.Lookup(0xff)
			So(ok, ShouldBeFalse)
		})
	})
}

func TestRegisterCustom(t *testing.T) {
	Convey("Given a new registry", t, func() {
		r := NewRegistry()
		fn := func(data []byte) (interface{}, error) {
			return data[0], nil
		}

		Convey("When registering a valid custom type", func() {
			So(r.RegisterCustom(0xa0, "Battery", 2, fn), ShouldBeTrue)

			Convey("Then it can be looked up", func() {
				dt, ok := r.Lookup(0xa0)
				So(ok, ShouldBeTrue)
				So(dt.Name, ShouldEqual, "Battery")
				So(dt.Size, ShouldEqual, 2)
				So(dt.Standard, ShouldBeFalse)
				So(dt.DecodeFunc, ShouldNotBeNil)
			})

			Convey("Then registering the same id again fails", func() {
				So(r.RegisterCustom(0xa0, "Battery2", 4, fn), ShouldBeFalse)

				dt, _ := r.Lookup(0xa0)
				So(dt.Name, ShouldEqual, "Battery")
			})
		})

		Convey("When registering at a standard type id", func() {
			So(r.RegisterCustom(TypeTemperature, "Shadow", 2, fn), ShouldBeFalse)

			Convey("Then the standard descriptor is untouched", func() {
				dt, ok := r.Lookup(TypeTemperature)
				So(ok, ShouldBeTrue)
				So(dt.Name, ShouldEqual, "Temperature")
				So(dt.Standard, ShouldBeTrue)
			})
		})

		Convey("When registering with a zero size", func() {
			So(r.RegisterCustom(0xa0, "Battery", 0, fn), ShouldBeFalse)
			So(r.Contains(0xa0), ShouldBeFalse)
		})

		Convey("When registering without a decode function", func() {
			So(r.RegisterCustom(0xa0, "Battery", 2, nil), ShouldBeFalse)
			So(r.Contains(0xa0), ShouldBeFalse)
		})
	})
}

func TestUnregisterCustom(t *testing.T) {
	Convey("Given a registry with a custom type", t, func() {
		r := NewRegistry()
		So(r.RegisterCustom(0xa0, "Battery", 2, func(data []byte) (interface{}, error) {
			return data[0], nil
		}), ShouldBeTrue)

		Convey("Then removing a standard type fails", func() {
			So(r.UnregisterCustom(TypeGPS), ShouldBeFalse)
			So(r.Contains(TypeGPS), ShouldBeTrue)
		})

		Convey("Then removing an unregistered id fails", func() {
			So(r.UnregisterCustom(0xb0), ShouldBeFalse)
		})

		Convey("Then removing the custom type succeeds once", func() {
			So(r.UnregisterCustom(0xa0), ShouldBeTrue)
			So(r.Contains(0xa0), ShouldBeFalse)
			So(r.UnregisterCustom(0xa0), ShouldBeFalse)
		})
	})
}

func TestRegistryIsolation(t *testing.T) {
	Convey("Given two registries", t, func() {
		r1 := NewRegistry()
		r2 := NewRegistry()

		Convey("When mutating the first", func() {
			So(r1.RegisterCustom(0xa0, "Battery", 2, func(data []byte) (interface{}, error) {
				return data[0], nil
			}), ShouldBeTrue)

			Convey("Then the second is unaffected", func() {
				So(r1.Contains(0xa0), ShouldBeTrue)
				So(r2.Contains(0xa0), ShouldBeFalse)
			})
		})
	})
}

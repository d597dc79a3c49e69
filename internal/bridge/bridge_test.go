package bridge

import (
	"testing"
	"text/template"

	"github.com/stretchr/testify/require"

	"github.com/lpwan-io/cayennelpp"
)

func testBridge(t *testing.T) *Bridge {
	tmpl, err := template.New("event").Parse("application/{{ .ApplicationID }}/device/{{ .DevEUI }}/object")
	require.NoError(t, err)

	return &Bridge{
		decoder:       cayennelpp.NewDecoder(),
		eventTemplate: tmpl,
	}
}

func TestHandleUplinkEvent(t *testing.T) {
	assert := require.New(t)
	b := testBridge(t)

	// data = base64([0x01, 0x67, 0x01, 0x10])
	event := []byte(`{"applicationID":"123","devEUI":"0102030405060708","fPort":2,"data":"AWcBEA=="}`)

	topic, object, err := b.handleUplinkEvent(event)
	assert.NoError(err)
	assert.Equal("application/123/device/0102030405060708/object", topic)
	assert.Equal(`{"Temperature_1":27.2}`, string(object))
}

func TestHandleUplinkEventCustomType(t *testing.T) {
	assert := require.New(t)
	b := testBridge(t)

	ok := b.decoder.RegisterCustomType(0xa0, "Battery", 2, func(data []byte) (interface{}, error) {
		raw := uint16(data[0])<<8 | uint16(data[1])
		return float64(raw) / 1000.0, nil
	})
	assert.True(ok)

	// data = base64([0x01, 0xa0, 0x0e, 0xd8])
	event := []byte(`{"applicationID":"123","devEUI":"0102030405060708","fPort":2,"data":"AaAO2A=="}`)

	_, object, err := b.handleUplinkEvent(event)
	assert.NoError(err)
	assert.Equal(`{"Battery_1":3.8}`, string(object))
}

func TestHandleUplinkEventErrors(t *testing.T) {
	tests := []struct {
		name  string
		event string
		label string
	}{
		{
			name:  "invalid event json",
			event: `{"devEUI":`,
			label: "other",
		},
		{
			name:  "empty payload",
			event: `{"applicationID":"123","devEUI":"0102030405060708","data":""}`,
			label: "payload_empty",
		},
		{
			name: "unknown data type",
			// data = base64([0x01, 0xff, 0x00])
			event: `{"applicationID":"123","devEUI":"0102030405060708","data":"Af8A"}`,
			label: "unknown_data_type",
		},
		{
			name: "truncated field",
			// data = base64([0x01, 0x67, 0x01])
			event: `{"applicationID":"123","devEUI":"0102030405060708","data":"AWcB"}`,
			label: "bad_payload_format",
		},
	}

	for _, tst := range tests {
		t.Run(tst.name, func(t *testing.T) {
			assert := require.New(t)
			b := testBridge(t)

			_, _, err := b.handleUplinkEvent([]byte(tst.event))
			assert.Error(err)
			assert.Equal(tst.label, errorLabel(err))
		})
	}
}

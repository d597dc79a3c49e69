package bridge

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	ec = promauto.NewCounter(prometheus.CounterOpts{
		Name: "bridge_mqtt_event_count",
		Help: "The number of received uplink events by the MQTT bridge.",
	})

	dec = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "bridge_decode_error_count",
		Help: "The number of uplink events that could not be decoded (per error).",
	}, []string{"error"})

	pc = promauto.NewCounter(prometheus.CounterOpts{
		Name: "bridge_mqtt_publish_count",
		Help: "The number of decoded objects published by the MQTT bridge.",
	})

	mqttc = promauto.NewCounter(prometheus.CounterOpts{
		Name: "bridge_mqtt_connect_count",
		Help: "The number of times the bridge connected to the MQTT broker.",
	})

	mqttd = promauto.NewCounter(prometheus.CounterOpts{
		Name: "bridge_mqtt_disconnect_count",
		Help: "The number of times the bridge disconnected from the MQTT broker.",
	})
)

func eventCounter() prometheus.Counter {
	return ec
}

func decodeErrorCounter(e string) prometheus.Counter {
	return dec.With(prometheus.Labels{"error": e})
}

func publishCounter() prometheus.Counter {
	return pc
}

func mqttConnectCounter() prometheus.Counter {
	return mqttc
}

func mqttDisconnectCounter() prometheus.Counter {
	return mqttd
}

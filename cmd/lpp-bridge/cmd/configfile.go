package cmd

import (
	"os"
	"text/template"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/lpwan-io/cayennelpp/internal/config"
)

const configTemplate = `[general]
# Log level
#
# debug=5, info=4, warning=3, error=2, fatal=1, panic=0
log_level={{ .General.LogLevel }}


# Bridge settings.
[bridge]

  # MQTT settings.
  [bridge.mqtt]
  # MQTT broker (e.g. scheme://host:port where scheme is tcp, ssl or ws)
  server="{{ .Bridge.MQTT.Server }}"

  # Connect with the given username (optional)
  username="{{ .Bridge.MQTT.Username }}"

  # Connect with the given password (optional)
  password="{{ .Bridge.MQTT.Password }}"

  # Quality of service level
  #
  # 0: at most once
  # 1: at least once
  # 2: exactly once
  #
  # Note: an increase of this value will decrease the performance.
  # For more information: https://www.hivemq.com/blog/mqtt-essentials-part-6-mqtt-quality-of-service-levels
  qos={{ .Bridge.MQTT.QOS }}

  # Clean session
  #
  # Set the "clean session" flag in the connect message when this client
  # connects to an MQTT broker. By setting this flag you are indicating
  # that no messages saved by the broker for this client should be delivered.
  clean_session={{ .Bridge.MQTT.CleanSession }}

  # Client ID
  #
  # Set the client id to be used by this client when connecting to the MQTT
  # broker. A client id must be no longer than 23 characters.
  client_id="{{ .Bridge.MQTT.ClientID }}"

  # CA certificate file (optional)
  #
  # Use this when setting up a secure connection (when server uses ssl://...)
  # but the certificate used by the server is not trusted by any CA certificate
  # on the server (e.g. when self generated).
  ca_cert="{{ .Bridge.MQTT.CACert }}"

  # TLS certificate file (optional)
  tls_cert="{{ .Bridge.MQTT.TLSCert }}"

  # TLS key file (optional)
  tls_key="{{ .Bridge.MQTT.TLSKey }}"

  # Uplink topic
  #
  # The topic on which the bridge consumes uplink events holding the
  # base64 encoded Cayenne LPP payload.
  uplink_topic="{{ .Bridge.MQTT.UplinkTopic }}"

  # Event topic template
  #
  # The topic to which the bridge publishes the decoded object.
  event_topic_template="{{ .Bridge.MQTT.EventTopicTemplate }}"

  # Max reconnect interval
  #
  # Valid units are 'ms', 's', 'm', 'h'. E.g. '5m' or '2h45m'.
  max_reconnect_interval="{{ .Bridge.MQTT.MaxReconnectInterval }}"


# Monitoring settings.
[monitoring]
# Bind
#
# The ip:port to bind the monitoring endpoint to. When left blank, the
# monitoring endpoint will be disabled.
bind="{{ .Monitoring.Bind }}"

# Prometheus metrics endpoint.
#
# When set to true, Prometheus metrics will be served at '/metrics'.
prometheus_endpoint={{ .Monitoring.PrometheusEndpoint }}

# Health check endpoint.
#
# When set to true, the healthcheck endpoint will be served at '/health'.
healthcheck_endpoint={{ .Monitoring.HealthcheckEndpoint }}
`

var configCmd = &cobra.Command{
	Use:   "configfile",
	Short: "Print the lpp-bridge configuration file",
	RunE: func(cmd *cobra.Command, args []string) error {
		t := template.Must(template.New("config").Parse(configTemplate))
		err := t.Execute(os.Stdout, &config.C)
		if err != nil {
			return errors.Wrap(err, "execute config template error")
		}
		return nil
	},
}

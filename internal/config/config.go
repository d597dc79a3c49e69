package config

import (
	"time"
)

// Version defines the lpp-bridge version.
var Version string

// Config defines the configuration structure.
type Config struct {
	General struct {
		LogLevel int `mapstructure:"log_level"`
	} `mapstructure:"general"`

	Bridge struct {
		MQTT struct {
			Server               string        `mapstructure:"server"`
			Username             string        `mapstructure:"username"`
			Password             string        `mapstructure:"password"`
			QOS                  uint8         `mapstructure:"qos"`
			CleanSession         bool          `mapstructure:"clean_session"`
			ClientID             string        `mapstructure:"client_id"`
			CACert               string        `mapstructure:"ca_cert"`
			TLSCert              string        `mapstructure:"tls_cert"`
			TLSKey               string        `mapstructure:"tls_key"`
			UplinkTopic          string        `mapstructure:"uplink_topic"`
			EventTopicTemplate   string        `mapstructure:"event_topic_template"`
			MaxReconnectInterval time.Duration `mapstructure:"max_reconnect_interval"`
		} `mapstructure:"mqtt"`
	} `mapstructure:"bridge"`

	Monitoring struct {
		Bind                string `mapstructure:"bind"`
		PrometheusEndpoint  bool   `mapstructure:"prometheus_endpoint"`
		HealthcheckEndpoint bool   `mapstructure:"healthcheck_endpoint"`
	} `mapstructure:"monitoring"`
}

// C holds the global configuration.
var C Config

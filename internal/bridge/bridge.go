package bridge

import (
	"bytes"
	"crypto/tls"
	"crypto/x509"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"io/ioutil"
	"sync"
	"text/template"
	"time"

	"github.com/brocaar/lorawan"
	paho "github.com/eclipse/paho.mqtt.golang"
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"

	"github.com/lpwan-io/cayennelpp"
	"github.com/lpwan-io/cayennelpp/internal/config"
)

// UplinkEvent is the uplink event consumed from the uplink topic. Data holds
// the raw Cayenne LPP payload (base64 encoded on the wire).
type UplinkEvent struct {
	ApplicationID string        `json:"applicationID"`
	DevEUI        lorawan.EUI64 `json:"devEUI"`
	FPort         uint8         `json:"fPort"`
	Data          []byte        `json:"data"`
}

// Bridge subscribes to uplink events, decodes the Cayenne LPP payload and
// publishes the decoded object to a per-device topic.
type Bridge struct {
	wg sync.WaitGroup

	conn    paho.Client
	decoder *cayennelpp.Decoder

	qos           uint8
	uplinkTopic   string
	eventTemplate *template.Template
}

// NewBridge creates a new Bridge using the given decoder.
func NewBridge(c config.Config, decoder *cayennelpp.Decoder) (*Bridge, error) {
	conf := c.Bridge.MQTT

	b := Bridge{
		decoder:     decoder,
		qos:         conf.QOS,
		uplinkTopic: conf.UplinkTopic,
	}

	var err error
	b.eventTemplate, err = template.New("event").Parse(conf.EventTopicTemplate)
	if err != nil {
		return nil, errors.Wrap(err, "bridge: parse event-topic template error")
	}

	opts := paho.NewClientOptions()
	opts.AddBroker(conf.Server)
	opts.SetUsername(conf.Username)
	opts.SetPassword(conf.Password)
	opts.SetCleanSession(conf.CleanSession)
	opts.SetClientID(conf.ClientID)
	opts.SetMaxReconnectInterval(conf.MaxReconnectInterval)
	opts.SetOnConnectHandler(b.onConnected)
	opts.SetConnectionLostHandler(b.onConnectionLost)

	tlsconfig, err := newTLSConfig(conf.CACert, conf.TLSCert, conf.TLSKey)
	if err != nil {
		log.WithError(err).WithFields(log.Fields{
			"ca_cert":  conf.CACert,
			"tls_cert": conf.TLSCert,
			"tls_key":  conf.TLSKey,
		}).Fatal("bridge: error loading mqtt certificate files")
	}
	if tlsconfig != nil {
		opts.SetTLSConfig(tlsconfig)
	}

	log.WithField("server", conf.Server).Info("bridge: connecting to mqtt broker")
	b.conn = paho.NewClient(opts)
	for {
		if token := b.conn.Connect(); token.Wait() && token.Error() != nil {
			log.Errorf("bridge: connecting to mqtt broker failed, will retry in 2s: %s", token.Error())
			time.Sleep(2 * time.Second)
		} else {
			break
		}
	}

	return &b, nil
}

// Close unsubscribes from the uplink topic and waits for in-flight handlers
// to finish before disconnecting.
func (b *Bridge) Close() error {
	log.WithField("topic", b.uplinkTopic).Info("bridge: unsubscribing from uplink topic")
	if token := b.conn.Unsubscribe(b.uplinkTopic); token.Wait() && token.Error() != nil {
		return fmt.Errorf("bridge: unsubscribe from %s error: %s", b.uplinkTopic, token.Error())
	}

	log.Info("bridge: handling last messages")
	b.wg.Wait()
	b.conn.Disconnect(250)
	return nil
}

func (b *Bridge) uplinkEventHandler(c paho.Client, msg paho.Message) {
	b.wg.Add(1)
	defer b.wg.Done()

	eventCounter().Inc()

	topic, object, err := b.handleUplinkEvent(msg.Payload())
	if err != nil {
		decodeErrorCounter(errorLabel(err)).Inc()
		log.WithFields(log.Fields{
			"data_base64": base64.StdEncoding.EncodeToString(msg.Payload()),
		}).WithError(err).Error("bridge: handle uplink event error")
		return
	}

	log.WithFields(log.Fields{
		"topic": topic,
		"qos":   b.qos,
	}).Info("bridge: publishing decoded object")

	if token := b.conn.Publish(topic, b.qos, false, object); token.Wait() && token.Error() != nil {
		log.WithField("topic", topic).Errorf("bridge: publish decoded object error: %s", token.Error())
		return
	}
	publishCounter().Inc()
}

// handleUplinkEvent decodes one uplink event and returns the topic and JSON
// object to publish.
func (b *Bridge) handleUplinkEvent(event []byte) (string, []byte, error) {
	var ue UplinkEvent
	if err := json.Unmarshal(event, &ue); err != nil {
		return "", nil, errors.Wrap(err, "unmarshal uplink event error")
	}

	decoded, err := b.decoder.Decode(ue.Data)
	if err != nil {
		return "", nil, errors.Wrap(err, "decode payload error")
	}

	object, err := json.Marshal(decoded)
	if err != nil {
		return "", nil, errors.Wrap(err, "marshal decoded object error")
	}

	topic := bytes.NewBuffer(nil)
	if err := b.eventTemplate.Execute(topic, struct {
		ApplicationID string
		DevEUI        lorawan.EUI64
	}{ue.ApplicationID, ue.DevEUI}); err != nil {
		return "", nil, errors.Wrap(err, "execute event-topic template error")
	}

	return topic.String(), object, nil
}

func (b *Bridge) onConnected(c paho.Client) {
	mqttConnectCounter().Inc()
	log.Info("bridge: connected to mqtt broker")

	for {
		log.WithFields(log.Fields{
			"topic": b.uplinkTopic,
			"qos":   b.qos,
		}).Info("bridge: subscribing to uplink topic")
		if token := b.conn.Subscribe(b.uplinkTopic, b.qos, b.uplinkEventHandler); token.Wait() && token.Error() != nil {
			log.WithFields(log.Fields{
				"topic": b.uplinkTopic,
				"qos":   b.qos,
			}).Errorf("bridge: subscribe error: %s", token.Error())
			time.Sleep(time.Second)
			continue
		}
		break
	}
}

func (b *Bridge) onConnectionLost(c paho.Client, reason error) {
	mqttDisconnectCounter().Inc()
	log.Errorf("bridge: mqtt connection error: %s", reason)
}

// errorLabel maps a handler error to a metrics label.
func errorLabel(err error) string {
	var utErr cayennelpp.UnknownDataTypeError
	var bpErr cayennelpp.BadPayloadFormatError

	switch {
	case errors.Is(err, cayennelpp.ErrPayloadEmpty):
		return "payload_empty"
	case errors.As(err, &utErr):
		return "unknown_data_type"
	case errors.As(err, &bpErr):
		return "bad_payload_format"
	default:
		return "other"
	}
}

func newTLSConfig(cafile, certFile, certKeyFile string) (*tls.Config, error) {
	if cafile == "" && certFile == "" && certKeyFile == "" {
		return nil, nil
	}

	tlsConfig := &tls.Config{}

	if cafile != "" {
		cacert, err := ioutil.ReadFile(cafile)
		if err != nil {
			return nil, errors.Wrap(err, "could not load ca certificate")
		}
		certpool := x509.NewCertPool()
		certpool.AppendCertsFromPEM(cacert)
		tlsConfig.RootCAs = certpool
	}

	if certFile != "" && certKeyFile != "" {
		kp, err := tls.LoadX509KeyPair(certFile, certKeyFile)
		if err != nil {
			return nil, errors.Wrap(err, "could not load mqtt tls key-pair")
		}
		tlsConfig.Certificates = []tls.Certificate{kp}
	}

	return tlsConfig, nil
}

package bus

import (
	"fmt"

	mqtt "github.com/eclipse/paho.mqtt.golang"
	"github.com/rs/zerolog/log"
)

// MQTTMirror republishes every bus event to a per-screen MQTT topic
// (screens/<id>/events) so MQTT-capable players can skip the HTTP event
// stream. Purely additive: the bus stays the source of truth and mirror
// failures never block a publish.
type MQTTMirror struct {
	client mqtt.Client
}

func NewMQTTMirror(brokerURL, clientID string) (*MQTTMirror, error) {
	opts := mqtt.NewClientOptions()
	opts.AddBroker(brokerURL)
	opts.SetClientID(clientID)
	opts.SetAutoReconnect(true)
	opts.OnConnect = func(mqtt.Client) {
		log.Info().Str("broker", brokerURL).Msg("connected to MQTT broker")
	}
	opts.OnConnectionLost = func(_ mqtt.Client, err error) {
		log.Error().Err(err).Msg("MQTT connection lost")
	}

	client := mqtt.NewClient(opts)
	if token := client.Connect(); token.Wait() && token.Error() != nil {
		return nil, fmt.Errorf("failed to connect to MQTT broker: %w", token.Error())
	}
	return &MQTTMirror{client: client}, nil
}

func (m *MQTTMirror) topic(channel string) string {
	// "screen:7" -> "screens/7/events"
	var screenID int
	if _, err := fmt.Sscanf(channel, "screen:%d", &screenID); err != nil {
		return ""
	}
	return fmt.Sprintf("screens/%d/events", screenID)
}

// Publish mirrors one event; delivery problems are logged and swallowed.
func (m *MQTTMirror) Publish(channel string, payload []byte) {
	topic := m.topic(channel)
	if topic == "" {
		return
	}
	token := m.client.Publish(topic, 1, false, payload)
	token.Wait()
	if err := token.Error(); err != nil {
		log.Error().Err(err).Str("topic", topic).Msg("failed to mirror event to MQTT")
	}
}

func (m *MQTTMirror) Close() {
	m.client.Disconnect(250)
}

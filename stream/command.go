package stream

import (
	"encoding/json"
	"log"
	"os"

	"github.com/eclipse/paho.mqtt.golang"
)

// ControlMessage selects playback behaviour for the streamer.
type ControlMessage struct {
	Type      string  `json:"type"`      // "cycle" or "flick"
	Animation string  `json:"animation"` // target animation for "cycle"
	Velocity  float64 `json:"velocity"`  // flick strength in units per second
}

// Control receives playback commands for the Controller over MQTT.
type Control struct {
	config   Config
	client   mqtt.Client
	Commands chan ControlMessage
}

// NewControl creates an instance of a Control object.
func NewControl(config Config, client mqtt.Client) *Control {
	c := new(Control)
	c.config = config
	c.client = client
	c.Commands = make(chan ControlMessage)
	return c
}

func (c *Control) handleClientMessages(client mqtt.Client, msg mqtt.Message) {
	log.Printf("Received msg %d on %s: %s\n", msg.MessageID(), msg.Topic(), msg.Payload())

	var message ControlMessage
	if err := json.Unmarshal(msg.Payload(), &message); err != nil {
		log.Printf("Discarding bad control message: %v", err)
		return
	}

	c.Commands <- message
}

// Subscribe attaches the control topic handler.
func (c *Control) Subscribe() {
	if token := c.client.Subscribe(c.config.Mqtt.Topics.Control, 0, c.handleClientMessages); token.Wait() && token.Error() != nil {
		log.Println(token.Error())
		os.Exit(1)
	}
}

package stream

import (
	"time"

	"github.com/eclipse/paho.mqtt.golang"
)

// Streamer that streams RGB data frames to an ledrx device.
type Streamer struct {
	config     Config
	client     mqtt.Client
	control    *Control
	controller *Controller
	start      time.Time
}

// NewStreamer creates an instance of a Streamer.
func NewStreamer(config Config, client mqtt.Client) *Streamer {
	s := new(Streamer)
	s.config = config
	s.client = client
	s.start = time.Now()
	s.control = NewControl(config, client)
	s.controller = NewController(config, 0, s.control)

	return s
}

// Subscribe attaches the Streamer's MQTT handlers.
func (s *Streamer) Subscribe() {
	s.control.Subscribe()
}

// SendFrame sends a frame as binary over MQTT to an ledrx device.
func (s *Streamer) SendFrame(runtimeMs int64) {
	f := s.controller.CalculateFrame(runtimeMs)
	b, _ := f.MarshalBinary()
	token := s.client.Publish(s.config.Mqtt.Topics.Stream, 2, false, b)
	token.Wait()
}

// Run causes the Streamer to send Frames continuously.
func (s *Streamer) Run() {
	go s.controller.Run()

	publishTimer := time.NewTicker(33 * time.Millisecond)
	for {
		<-publishTimer.C
		s.SendFrame(time.Since(s.start).Milliseconds())
	}
}

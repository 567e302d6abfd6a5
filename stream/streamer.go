package stream

import (
	"log"
	"os"

	mqtt "github.com/eclipse/paho.mqtt.golang"
	"github.com/matt-g-everett/animator/anim"
	"github.com/matt-g-everett/animator/entity"
)

var logger = log.New(os.Stdout, "(STREAM) ", log.LstdFlags)

// Streamer publishes entity frames over MQTT.
type Streamer struct {
	config Config
	client mqtt.Client
	entity *entity.Animated
}

// NewStreamer creates an instance of a Streamer.
func NewStreamer(config Config, client mqtt.Client, e *entity.Animated) *Streamer {
	s := new(Streamer)
	s.config = config
	s.client = client
	s.entity = e
	return s
}

// SendFrame publishes the entity's current state.
func (s *Streamer) SendFrame() error {
	f := NewFrame(s.entity)
	b, _ := f.MarshalBinary()
	token := s.client.Publish(s.config.Mqtt.Topics.Stream, 0, false, b)
	token.Wait()
	return token.Error()
}

// Animation returns an animation that sends a frame every tick.
func (s *Streamer) Animation() anim.Animation {
	return anim.NewFuncAnimation(s.entity, func(anim.Target, float64) {
		if err := s.SendFrame(); err != nil {
			logger.Println(err)
		}
	})
}

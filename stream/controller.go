package stream

import (
	"encoding/json"
	"errors"
	"fmt"
	"time"

	mqtt "github.com/eclipse/paho.mqtt.golang"
	"github.com/lucasb-eyer/go-colorful"
	"github.com/matt-g-everett/animator/anim"
	"github.com/matt-g-everett/animator/entity"
)

// ErrUnknownCommand is returned for commands with an unrecognised type.
var ErrUnknownCommand = errors.New("unknown command")

// Command is a JSON message received on the command topic.
type Command struct {
	Type     string  `json:"type"`
	Dx       float64 `json:"dx,omitempty"`
	Dy       float64 `json:"dy,omitempty"`
	Duration float64 `json:"duration,omitempty"` // seconds
	Hex      string  `json:"hex,omitempty"`
}

func (c Command) duration() time.Duration {
	return time.Duration(c.Duration * float64(time.Second))
}

// Controller applies commands from MQTT to an entity. Commands are queued and
// applied by the controller's own animation, so the entity is only touched
// from the goroutine that ticks it.
type Controller struct {
	config   Config
	client   mqtt.Client
	entity   *entity.Animated
	easing   anim.Easing
	clock    anim.Clock
	commands chan Command
	blend    anim.Animation
}

// NewController creates an instance of a Controller.
func NewController(config Config, client mqtt.Client, e *entity.Animated, easing anim.Easing, clock anim.Clock) *Controller {
	c := new(Controller)
	c.config = config
	c.client = client
	c.entity = e
	c.easing = easing
	c.clock = clock
	c.commands = make(chan Command, 16)
	return c
}

// Subscribe listens on the command topic.
func (c *Controller) Subscribe() error {
	token := c.client.Subscribe(c.config.Mqtt.Topics.Command, 0, c.handleMessage)
	token.Wait()
	return token.Error()
}

func (c *Controller) handleMessage(client mqtt.Client, msg mqtt.Message) {
	logger.Printf("Received msg %d on %s: %s\n", msg.MessageID(), msg.Topic(), msg.Payload())

	var cmd Command
	if err := json.Unmarshal(msg.Payload(), &cmd); err != nil {
		logger.Printf("dropping command: %v", err)
		return
	}
	c.Enqueue(cmd)
}

// Enqueue queues a command, dropping it if the queue is full.
func (c *Controller) Enqueue(cmd Command) bool {
	select {
	case c.commands <- cmd:
		return true
	default:
		logger.Printf("command queue full, dropping %q", cmd.Type)
		return false
	}
}

// Animation returns an animation that applies queued commands every tick.
func (c *Controller) Animation() anim.Animation {
	return anim.NewFuncAnimation(c.entity, func(anim.Target, float64) {
		for {
			select {
			case cmd := <-c.commands:
				if err := c.Apply(cmd); err != nil {
					logger.Println(err)
				}
			default:
				return
			}
		}
	}, anim.WithClock(c.clock))
}

// Apply executes one command against the entity.
func (c *Controller) Apply(cmd Command) error {
	switch cmd.Type {
	case "move":
		return c.entity.Move(cmd.Dx, cmd.Dy, cmd.duration())
	case "stop":
		n := c.entity.Stop()
		logger.Printf("stopped %d moves on %v", n, c.entity)
		return nil
	case "colour":
		to, err := colorful.Hex(cmd.Hex)
		if err != nil {
			return fmt.Errorf("colour command: %w", err)
		}
		if !c.entity.Has("colour") {
			c.entity.Set("colour", colorful.Color{})
		}
		if c.blend != nil {
			// A newer blend replaces the old one.
			_ = c.entity.Remove(c.blend)
		}
		c.blend = anim.NewPropertyAnimation(c.entity, "colour", anim.BlendTo(to, cmd.duration(), c.easing), anim.WithClock(c.clock))
		return c.entity.Add(c.blend)
	}
	return fmt.Errorf("%w: %q", ErrUnknownCommand, cmd.Type)
}

package stream

import (
	"encoding/binary"
	"errors"
	"math"
	"os"
	"path/filepath"
	"testing"
	"time"

	mqtt "github.com/eclipse/paho.mqtt.golang"
	"github.com/lucasb-eyer/go-colorful"
	"github.com/matt-g-everett/animator/anim"
	"github.com/matt-g-everett/animator/entity"
)

var epoch = time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)

type doneToken struct {
	mqtt.Token
	err error
}

func (t *doneToken) Wait() bool { return true }
func (t *doneToken) WaitTimeout(time.Duration) bool { return true }
func (t *doneToken) Error() error { return t.err }

type published struct {
	topic   string
	payload []byte
}

type fakeClient struct {
	mqtt.Client
	published  []published
	subscribed map[string]mqtt.MessageHandler
	err        error
}

func (c *fakeClient) Publish(topic string, qos byte, retained bool, payload interface{}) mqtt.Token {
	c.published = append(c.published, published{topic, payload.([]byte)})
	return &doneToken{err: c.err}
}

func (c *fakeClient) Subscribe(topic string, qos byte, callback mqtt.MessageHandler) mqtt.Token {
	if c.subscribed == nil {
		c.subscribed = make(map[string]mqtt.MessageHandler)
	}
	c.subscribed[topic] = callback
	return &doneToken{err: c.err}
}

type fakeMessage struct {
	mqtt.Message
	topic   string
	payload []byte
}

func (m *fakeMessage) Topic() string { return m.topic }
func (m *fakeMessage) Payload() []byte { return m.payload }
func (m *fakeMessage) MessageID() uint16 { return 1 }

func newSprite(t *testing.T, clock anim.Clock) *entity.Animated {
	t.Helper()
	e, err := entity.New("sprite", map[string]any{"x": 0.0, "y": 0.0}, entity.WithClock(clock))
	if err != nil {
		t.Fatal(err)
	}
	return e
}

func TestFrameMarshalBinary(t *testing.T) {
	red, _ := colorful.Hex("#ff0000")
	f := &Frame{X: 1.5, Y: -2, Colour: red}
	data, err := f.MarshalBinary()
	if err != nil {
		t.Fatal(err)
	}
	if len(data) != FrameSize {
		t.Fatalf("Expected %d bytes, got %d", FrameSize, len(data))
	}
	if x := math.Float32frombits(binary.LittleEndian.Uint32(data[0:])); x != 1.5 {
		t.Errorf("Expected x 1.5, got %v", x)
	}
	if y := math.Float32frombits(binary.LittleEndian.Uint32(data[4:])); y != -2 {
		t.Errorf("Expected y -2, got %v", y)
	}
	if data[8] != 255 || data[9] != 0 || data[10] != 0 {
		t.Errorf("Expected red, got %v", data[8:])
	}
}

func TestStreamerPublishesEachTick(t *testing.T) {
	config := DefaultConfig()
	client := &fakeClient{}
	e := newSprite(t, anim.SystemClock)
	e.Set("x", 4.0)
	s := NewStreamer(config, client, e)

	a := s.Animation()
	a.Update()
	a.Update()

	if len(client.published) != 2 {
		t.Fatalf("Expected 2 frames, got %d", len(client.published))
	}
	p := client.published[1]
	if p.topic != config.Mqtt.Topics.Stream {
		t.Errorf("Expected topic %s, got %s", config.Mqtt.Topics.Stream, p.topic)
	}
	if x := math.Float32frombits(binary.LittleEndian.Uint32(p.payload)); x != 4 {
		t.Errorf("Expected x 4, got %v", x)
	}
}

func TestStreamerReportsPublishError(t *testing.T) {
	client := &fakeClient{err: errors.New("broker gone")}
	s := NewStreamer(DefaultConfig(), client, newSprite(t, anim.SystemClock))
	if err := s.SendFrame(); err == nil {
		t.Errorf("Expected publish error")
	}
}

func TestControllerCommands(t *testing.T) {
	clock := anim.NewManualClock(epoch)
	config := DefaultConfig()
	client := &fakeClient{}
	e := newSprite(t, clock)
	c := NewController(config, client, e, nil, clock)

	if err := c.Subscribe(); err != nil {
		t.Fatal(err)
	}
	handler := client.subscribed[config.Mqtt.Topics.Command]
	if handler == nil {
		t.Fatalf("Expected subscription on %s", config.Mqtt.Topics.Command)
	}

	handler(client, &fakeMessage{payload: []byte(`{"type":"move","dx":10,"dy":0,"duration":1}`)})
	handler(client, &fakeMessage{payload: []byte(`not json`)})

	pump := c.Animation()
	e.Add(pump)
	e.Update()
	if e.Len() != 2 {
		t.Fatalf("Expected pump and move, got %d animations", e.Len())
	}

	clock.Advance(500 * time.Millisecond)
	e.Update()
	if x, _ := e.Position(); x != 5 {
		t.Errorf("Expected x 5, got %v", x)
	}

	c.Enqueue(Command{Type: "stop"})
	e.Update()
	if e.Len() != 1 {
		t.Errorf("Expected only the pump after stop, got %d", e.Len())
	}
}

func TestControllerColourReplacesBlend(t *testing.T) {
	clock := anim.NewManualClock(epoch)
	e := newSprite(t, clock)
	c := NewController(DefaultConfig(), &fakeClient{}, e, nil, clock)

	if err := c.Apply(Command{Type: "colour", Hex: "#00ff00", Duration: 1}); err != nil {
		t.Fatal(err)
	}
	if err := c.Apply(Command{Type: "colour", Hex: "#0000ff", Duration: 1}); err != nil {
		t.Fatal(err)
	}
	if e.Len() != 1 {
		t.Errorf("Expected a single blend, got %d", e.Len())
	}

	clock.Advance(2 * time.Second)
	e.Update()
	blue, _ := colorful.Hex("#0000ff")
	got, ok := e.Get("colour").(colorful.Color)
	if !ok || !got.AlmostEqualRgb(blue) {
		t.Errorf("Expected blue, got %v", e.Get("colour"))
	}
}

func TestControllerRejects(t *testing.T) {
	c := NewController(DefaultConfig(), &fakeClient{}, newSprite(t, anim.SystemClock), nil, nil)
	if err := c.Apply(Command{Type: "spin"}); !errors.Is(err, ErrUnknownCommand) {
		t.Errorf("Expected ErrUnknownCommand, got %v", err)
	}
	if err := c.Apply(Command{Type: "colour", Hex: "nope"}); err == nil {
		t.Errorf("Expected bad colour to fail")
	}
	for i := 0; i < cap(c.commands); i++ {
		c.Enqueue(Command{Type: "stop"})
	}
	if c.Enqueue(Command{Type: "stop"}) {
		t.Errorf("Expected full queue to drop the command")
	}
}

func TestReadConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	data := []byte("mqtt:\n  url: tcp://broker:1883\nanimation:\n  tickMs: 33\n")
	if err := os.WriteFile(path, data, 0o600); err != nil {
		t.Fatal(err)
	}

	c, err := ReadConfig(path)
	if err != nil {
		t.Fatal(err)
	}
	if c.Mqtt.URL != "tcp://broker:1883" {
		t.Errorf("Expected broker url, got %s", c.Mqtt.URL)
	}
	if c.Animation.TickMs == nil || *c.Animation.TickMs != 33 {
		t.Errorf("Expected tickMs 33, got %v", c.Animation.TickMs)
	}
	if c.Mqtt.Topics.Command != "animator/command" {
		t.Errorf("Expected default command topic, got %s", c.Mqtt.Topics.Command)
	}

	if _, err := ReadConfig(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Errorf("Expected error for missing file")
	}
}

package stream

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v2"
)

// Config is the YAML configuration of the animator service.
type Config struct {
	Mqtt struct {
		URL      string `yaml:"url"`
		ClientID string `yaml:"clientID"`
		Username string `yaml:"username"`
		Password string `yaml:"password"`
		Topics   struct {
			Stream  string `yaml:"stream"`
			Command string `yaml:"command"`
		} `yaml:"topics"`
	} `yaml:"mqtt"`
	Animation struct {
		// TickMs is the pause between ticks. Leave it out to tick without pausing.
		TickMs     *int   `yaml:"tickMs"`
		MaxDrivers int    `yaml:"maxDrivers"`
		Easing     string `yaml:"easing"`
	} `yaml:"animation"`
	Entity struct {
		Name   string  `yaml:"name"`
		X      float64 `yaml:"x"`
		Y      float64 `yaml:"y"`
		Colour string  `yaml:"colour"`
	} `yaml:"entity"`
	API struct {
		Addr string `yaml:"addr"`
	} `yaml:"api"`
}

// DefaultConfig returns the values used for anything a config file leaves out.
func DefaultConfig() Config {
	var c Config
	c.Mqtt.URL = "tcp://localhost:1883"
	c.Mqtt.ClientID = "animator"
	c.Mqtt.Topics.Stream = "animator/stream"
	c.Mqtt.Topics.Command = "animator/command"
	c.Animation.MaxDrivers = 8
	c.Entity.Name = "sprite"
	c.Entity.Colour = "#000000"
	c.API.Addr = ":3000"
	return c
}

// ReadConfig decodes a YAML config file over the defaults.
func ReadConfig(path string) (Config, error) {
	c := DefaultConfig()
	f, err := os.Open(path)
	if err != nil {
		return c, err
	}
	defer f.Close()

	if err := yaml.NewDecoder(f).Decode(&c); err != nil {
		return c, fmt.Errorf("decoding %s: %w", path, err)
	}
	return c, nil
}

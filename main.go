package main

import (
	"context"
	"flag"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	mqtt "github.com/eclipse/paho.mqtt.golang"
	"github.com/lucasb-eyer/go-colorful"
	"github.com/matt-g-everett/animator/anim"
	"github.com/matt-g-everett/animator/api"
	"github.com/matt-g-everett/animator/entity"
	"github.com/matt-g-everett/animator/stream"
	"github.com/matt-g-everett/animator/util"
)

const clockTickMs = 100

type app struct {
	Config     stream.Config
	Client     mqtt.Client
	Entity     *entity.Animated
	Streamer   *stream.Streamer
	Controller *stream.Controller
	Pool       *anim.Pool
}

func newApp(config stream.Config) *app {
	a := new(app)
	a.Config = config
	return a
}

func (a *app) handleOnConnect(client mqtt.Client) {
	log.Println("Connected")
	if err := a.Controller.Subscribe(); err != nil {
		log.Println(err)
	}
}

func (a *app) setup() {
	colour, err := colorful.Hex(a.Config.Entity.Colour)
	if err != nil {
		panic(err)
	}
	easing, err := util.Easing(a.Config.Animation.Easing)
	if err != nil {
		panic(err)
	}

	a.Entity, err = entity.New(a.Config.Entity.Name, map[string]any{
		"x":      a.Config.Entity.X,
		"y":      a.Config.Entity.Y,
		"colour": colour,
		"now":    time.Now(),
	})
	if err != nil {
		panic(err)
	}

	options := mqtt.NewClientOptions().
		AddBroker(a.Config.Mqtt.URL).
		SetClientID(a.Config.Mqtt.ClientID).
		SetUsername(a.Config.Mqtt.Username).
		SetPassword(a.Config.Mqtt.Password).
		SetKeepAlive(30 * time.Second).
		SetPingTimeout(5 * time.Second).
		SetOnConnectHandler(a.handleOnConnect)
	a.Client = mqtt.NewClient(options)

	a.Streamer = stream.NewStreamer(a.Config, a.Client, a.Entity)
	a.Controller = stream.NewController(a.Config, a.Client, a.Entity, easing, anim.SystemClock)
	a.Pool = anim.NewPool(a.Config.Animation.MaxDrivers)
}

func (a *app) run(ctx context.Context) {
	if token := a.Client.Connect(); token.Wait() && token.Error() != nil {
		panic(token.Error())
	}
	defer a.Client.Disconnect(250)

	chain, err := anim.NewChain([]anim.Animation{
		a.Controller.Animation(),
		a.Entity,
		a.Streamer.Animation(),
	})
	if err != nil {
		panic(err)
	}

	// Keeps the entity's "now" attribute fresh, independent of the frame loop.
	clockTick := clockTickMs
	updater := anim.NewFuncAnimation(a.Entity, func(t anim.Target, _ float64) {
		t.Set("now", time.Now())
	}, anim.WithTickMs(&clockTick))

	if _, err := a.Pool.Run(ctx, chain, anim.WithTickMs(a.Config.Animation.TickMs)); err != nil {
		panic(err)
	}
	if _, err := a.Pool.Run(ctx, updater); err != nil {
		panic(err)
	}

	<-ctx.Done()
	a.Pool.StopAll()
}

func main() {
	// mqtt.DEBUG = log.New(os.Stdout, "", 0)
	mqtt.ERROR = log.New(os.Stdout, "", 0)

	// Parse command line parameters
	configPath := flag.String("config", "config.yaml", "YAML config file.")
	flag.Parse()

	// Read the config
	config, err := stream.ReadConfig(*configPath)
	if err != nil {
		panic(err)
	}
	log.Printf("Config: broker %s, topics %+v", config.Mqtt.URL, config.Mqtt.Topics)

	a := newApp(config)
	a.setup()

	go func() {
		if err := api.NewApi(a.Entity).Serve(a.Config.API.Addr); err != nil {
			log.Println(err)
		}
	}()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	a.run(ctx)
}

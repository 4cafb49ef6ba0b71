package gateway

import (
	"context"
	"fmt"
	"time"

	mqtt "github.com/eclipse/paho.mqtt.golang"
	"github.com/sirupsen/logrus"

	"github.com/d21d3q/goruuvi/internal/config"
)

// Handler receives every successfully decoded reading. Messages that fail
// to decode are logged and dropped; the stream is lossy by design.
type Handler func(Reading)

// Listener subscribes to a Ruuvi Gateway MQTT topic and feeds decoded
// readings to a handler.
type Listener struct {
	client mqtt.Client
	cfg    config.MQTT
	log    *logrus.Logger
}

// NewListener builds the MQTT client. Connection is deferred to Run.
func NewListener(cfg config.MQTT, log *logrus.Logger) *Listener {
	opts := mqtt.NewClientOptions()
	opts.AddBroker(fmt.Sprintf("tcp://%s:%d", cfg.Broker, cfg.Port))
	opts.SetClientID(cfg.ClientID)
	opts.SetCleanSession(true)
	opts.SetAutoReconnect(true)
	opts.SetConnectRetry(true)
	opts.SetConnectRetryInterval(5 * time.Second)
	opts.SetMaxReconnectInterval(60 * time.Second)
	opts.SetKeepAlive(30 * time.Second)
	opts.SetPingTimeout(10 * time.Second)
	if cfg.Username != "" {
		opts.SetUsername(cfg.Username)
		opts.SetPassword(cfg.Password)
	}
	opts.SetOnConnectHandler(func(_ mqtt.Client) {
		log.WithFields(logrus.Fields{"broker": cfg.Broker, "port": cfg.Port}).Info("mqtt connected")
	})
	opts.SetConnectionLostHandler(func(_ mqtt.Client, err error) {
		log.WithError(err).Warn("mqtt connection lost")
	})
	return &Listener{client: mqtt.NewClient(opts), cfg: cfg, log: log}
}

// Run connects, subscribes and blocks until ctx is cancelled. Decode
// failures do not stop the listener.
func (l *Listener) Run(ctx context.Context, handler Handler) error {
	if err := l.connect(ctx); err != nil {
		return err
	}
	defer l.client.Disconnect(250)

	token := l.client.Subscribe(l.cfg.Topic, 1, func(_ mqtt.Client, msg mqtt.Message) {
		reading, err := ParseMessage(msg.Payload())
		if err != nil {
			l.log.WithError(err).WithField("topic", msg.Topic()).Debug("discarding gateway message")
			return
		}
		handler(reading)
	})
	if !token.WaitTimeout(10 * time.Second) {
		return fmt.Errorf("subscribe timeout for topic %s", l.cfg.Topic)
	}
	if err := token.Error(); err != nil {
		return fmt.Errorf("subscribe %s: %w", l.cfg.Topic, err)
	}
	l.log.WithField("topic", l.cfg.Topic).Info("listening for gateway messages")

	<-ctx.Done()
	return ctx.Err()
}

// connect waits for the initial broker connection in a ctx-aware loop.
func (l *Listener) connect(ctx context.Context) error {
	token := l.client.Connect()
	const poll = 200 * time.Millisecond
	for {
		if token.WaitTimeout(poll) {
			if err := token.Error(); err != nil {
				return fmt.Errorf("mqtt connect: %w", err)
			}
			return nil
		}
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}
	}
}

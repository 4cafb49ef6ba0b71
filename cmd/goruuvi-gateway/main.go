package main

import (
	"context"
	"errors"
	"os"
	"os/signal"
	"syscall"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/d21d3q/goruuvi/internal/config"
	"github.com/d21d3q/goruuvi/internal/gateway"
)

var (
	rootCmd = &cobra.Command{
		Use:   "goruuvi-gateway",
		Short: "Listen for Ruuvi Gateway MQTT messages and decode them",
		Long: "goruuvi-gateway subscribes to a Ruuvi Gateway MQTT topic, unwraps each " +
			"relay envelope and logs the decoded sensor values.",
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return run(cmd.Context(), configPath)
		},
	}

	configPath string
)

func init() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "goruuvi-gateway.yaml",
		"path to the YAML configuration file")
}

func main() {
	logrus.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	if err := rootCmd.ExecuteContext(ctx); err != nil && !errors.Is(err, context.Canceled) {
		logrus.Fatal(err)
	}
}

func run(ctx context.Context, path string) error {
	cfg, err := config.Load(path)
	if err != nil {
		return err
	}
	level, err := logrus.ParseLevel(cfg.LogLevel)
	if err != nil {
		return err
	}
	log := logrus.StandardLogger()
	log.SetLevel(level)

	listener := gateway.NewListener(cfg.MQTT, log)
	return listener.Run(ctx, func(reading gateway.Reading) {
		logReading(log, reading)
	})
}

func logReading(log *logrus.Logger, reading gateway.Reading) {
	fields := logrus.Fields{
		"gw_mac": reading.Envelope.GatewayMAC,
		"rssi":   reading.Envelope.RSSI,
	}
	v := reading.Values
	if mac := v.MACString(); mac != "" {
		fields["mac"] = mac
	}
	if v.Temperature != nil {
		fields["temperature_c"] = float64(*v.Temperature) / 1000
	}
	if v.Humidity != nil {
		fields["humidity_pct"] = float64(*v.Humidity) / 10000
	}
	if v.Pressure != nil {
		fields["pressure_pa"] = *v.Pressure
	}
	if v.BatteryVoltage != nil {
		fields["battery_mv"] = *v.BatteryVoltage
	}
	if v.SequenceNumber != nil {
		fields["sequence"] = *v.SequenceNumber
	}
	log.WithFields(fields).Info("sensor reading")
}

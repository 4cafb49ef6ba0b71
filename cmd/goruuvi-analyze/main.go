package main

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/d21d3q/goruuvi/pkg/goruuvi"
)

var (
	rootCmd = &cobra.Command{
		Use:   "goruuvi-analyze [hex]",
		Short: "Decode RuuviTag advertisements",
		Long: "goruuvi-analyze decodes RuuviTag manufacturer data (or, with --adv, " +
			"a full raw advertisement) using the goruuvi library.",
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			opts := goruuvi.AnalyzeOptions{Advertisement: advertisement}
			if len(args) == 0 {
				return runInteractive(opts)
			}
			return runAnalyze(opts, args[0])
		},
	}

	advertisement bool
)

func init() {
	rootCmd.PersistentFlags().BoolVar(&advertisement, "adv", false,
		"input is a full raw advertisement, not bare manufacturer data")
}

func main() {
	logrus.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	if err := rootCmd.Execute(); err != nil {
		logrus.Fatal(err)
	}
}

func runInteractive(opts goruuvi.AnalyzeOptions) error {
	scanner := bufio.NewScanner(os.Stdin)
	logrus.Info("goruuvi analyze mode. Paste a hex payload and press Enter (Ctrl+D to exit).")
	for {
		fmt.Print("> ")
		if !scanner.Scan() {
			break
		}
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		if err := runAnalyze(opts, line); err != nil {
			logrus.WithError(err).Error("failed to decode payload")
		}
	}
	return scanner.Err()
}

func runAnalyze(opts goruuvi.AnalyzeOptions, hex string) error {
	result, err := goruuvi.AnalyzeHex(hex, opts)
	if err != nil {
		return err
	}
	fmt.Println(result.String())
	return nil
}

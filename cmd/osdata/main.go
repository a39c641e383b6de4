package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/urfave/cli/v3"

	osclient "github.com/robert-malhotra/go-osdatahub/client"
	"github.com/robert-malhotra/go-osdatahub/internal/logging"
	"github.com/robert-malhotra/go-osdatahub/pkg/spatial"
)

var (
	keyFlag = &cli.StringFlag{
		Name:    "key",
		Aliases: []string{"k"},
		Usage:   "OS Data Hub API key",
		Sources: cli.EnvVars("OS_API_KEY"),
	}
	urlFlag = &cli.StringFlag{
		Name:  "url",
		Usage: "Features API base URL",
		Value: osclient.DefaultBaseURL,
	}
	srsFlag = &cli.StringFlag{
		Name:  "srs",
		Usage: "Spatial reference system (EPSG:4326 or EPSG:27700)",
		Value: string(spatial.EPSG4326),
	}
	timeoutFlag = &cli.DurationFlag{
		Name:    "timeout",
		Aliases: []string{"t"},
		Usage:   "HTTP client timeout (e.g. 30s, 1m)",
		Value:   30 * time.Second,
	}
	premiumFlag = &cli.BoolFlag{
		Name:  "premium",
		Usage: "Allow queries against premium products",
	}
	logLevelFlag = &cli.StringFlag{
		Name:  "log-level",
		Usage: "Log level (debug, info, warn, error)",
		Value: "info",
	}
)

func main() {
	cmd := &cli.Command{
		Name:  "osdata",
		Usage: "Query the OS Data Hub Features API",
		Flags: []cli.Flag{keyFlag, urlFlag, srsFlag, timeoutFlag, premiumFlag, logLevelFlag},
		Commands: []*cli.Command{
			newFeaturesCommand(),
			newProductsCommand(),
		},
	}

	if err := cmd.Run(context.Background(), os.Args); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func clientFromCommand(cmd *cli.Command) (*osclient.Client, error) {
	logger := logging.New(logging.Config{Level: cmd.String(logLevelFlag.Name), Console: true}, os.Stderr)

	opts := []osclient.ClientOption{
		osclient.WithBaseURL(cmd.String(urlFlag.Name)),
		osclient.WithSRS(spatial.SRS(cmd.String(srsFlag.Name))),
		osclient.WithTimeout(cmd.Duration(timeoutFlag.Name)),
		osclient.WithPremium(cmd.Bool(premiumFlag.Name)),
		osclient.WithLogger(logging.ClientLogger{Z: logger}),
	}
	if key := cmd.String(keyFlag.Name); key != "" {
		opts = append(opts, osclient.WithAPIKey(key))
	}
	return osclient.New(opts...)
}

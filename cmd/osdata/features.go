package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	geojson "github.com/paulmach/go.geojson"
	"github.com/urfave/cli/v3"
)

func newFeaturesCommand() *cli.Command {
	return &cli.Command{
		Name:  "features",
		Usage: "Query WFS features",
		Commands: []*cli.Command{
			{
				Name:      "bbox",
				Usage:     "Fetch features within a bounding box",
				ArgsUsage: "<type-name> <bbox>",
				Action:    bboxAction,
			},
			{
				Name:      "intersects",
				Usage:     "Fetch features intersecting a GeoJSON polygon",
				ArgsUsage: "<type-name> <polygon.geojson>",
				Action:    intersectsAction,
			},
		},
	}
}

func bboxAction(ctx context.Context, cmd *cli.Command) error {
	if cmd.Args().Len() != 2 {
		return fmt.Errorf("expected 2 arguments: type name and bbox")
	}

	client, err := clientFromCommand(cmd)
	if err != nil {
		return err
	}

	seq := client.Features().Within(ctx, cmd.Args().Get(0), cmd.Args().Get(1))
	entries, err := collectForCLI(seq, marshalFeature)
	if err != nil {
		return err
	}
	return printJSONArray(entries)
}

func intersectsAction(ctx context.Context, cmd *cli.Command) error {
	if cmd.Args().Len() != 2 {
		return fmt.Errorf("expected 2 arguments: type name and polygon file")
	}

	data, err := os.ReadFile(cmd.Args().Get(1))
	if err != nil {
		return err
	}
	polygon, err := geojson.UnmarshalFeature(data)
	if err != nil {
		return fmt.Errorf("parse polygon file: %w", err)
	}

	client, err := clientFromCommand(cmd)
	if err != nil {
		return err
	}

	seq := client.Features().Intersecting(ctx, cmd.Args().Get(0), polygon)
	entries, err := collectForCLI(seq, marshalFeature)
	if err != nil {
		return err
	}
	return printJSONArray(entries)
}

func marshalFeature(f *geojson.Feature) ([]byte, error) {
	return json.MarshalIndent(f, "", "  ")
}

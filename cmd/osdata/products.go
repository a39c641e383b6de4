package main

import (
	"context"
	"fmt"
	"os"

	"github.com/urfave/cli/v3"

	"github.com/robert-malhotra/go-osdatahub/pkg/products"
)

func newProductsCommand() *cli.Command {
	return &cli.Command{
		Name:  "products",
		Usage: "Inspect product catalogs",
		Commands: []*cli.Command{
			{
				Name:  "list",
				Usage: "List the products an API service offers",
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:  "service",
						Usage: "API service (wfs, wmts, vts, zxy)",
						Value: "wfs",
					},
				},
				Action: listProductsAction,
			},
		},
	}
}

func listProductsAction(ctx context.Context, cmd *cli.Command) error {
	service, err := products.ParseService(cmd.String("service"))
	if err != nil {
		return err
	}

	catalog := products.Lookup(service)
	for _, name := range catalog.Open {
		fmt.Fprintf(os.Stdout, "%s\topen\n", name)
	}
	if cmd.Bool(premiumFlag.Name) {
		for _, name := range catalog.Premium {
			fmt.Fprintf(os.Stdout, "%s\tpremium\n", name)
		}
	}
	return nil
}

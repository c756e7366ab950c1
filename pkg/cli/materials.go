/*
Copyright © 2025 Plateful Authors
SPDX-License-Identifier: Apache-2.0
*/
package cli

import (
	"context"
	"fmt"

	"github.com/urfave/cli/v3"

	"github.com/plateful/mealgen/pkg/dietary"
	"github.com/plateful/mealgen/pkg/material"
	"github.com/plateful/mealgen/pkg/serializer"
)

func materialsCmd() *cli.Command {
	return &cli.Command{
		Name:  "materials",
		Usage: "Inspect and validate a materials catalog",
		Commands: []*cli.Command{
			{
				Name:  "list",
				Usage: "List catalog materials, optionally filtered by dietary restrictions",
				Flags: []cli.Flag{
					catalogFlag,
					restrictFlag,
					outputFlag,
					formatFlag,
					&cli.BoolFlag{
						Name:  "available",
						Usage: "list only materials marked as available",
					},
				},
				Action: listMaterialsAction,
			},
			{
				Name:   "validate",
				Usage:  "Validate a catalog file (unique ids, known categories)",
				Flags:  []cli.Flag{catalogFlag},
				Action: validateMaterialsAction,
			},
		},
	}
}

func loadCatalog(cmd *cli.Command) (*material.Catalog, error) {
	if path := cmd.String("catalog"); path != "" {
		return material.LoadCatalog(path)
	}
	return material.DefaultCatalog()
}

func listMaterialsAction(ctx context.Context, cmd *cli.Command) error {
	catalog, err := loadCatalog(cmd)
	if err != nil {
		return err
	}

	pool := catalog.Materials
	if cmd.Bool("available") {
		pool = catalog.Available()
	}

	restrictions := dietary.Parse(cmd.StringSlice("restrict"))
	pool = dietary.Filter(pool, restrictions)

	writer := serializer.NewFileWriterOrStdout(
		serializer.Format(cmd.String("format")), cmd.String("output"))
	defer writer.Close()

	return writer.Serialize(ctx, pool)
}

func validateMaterialsAction(_ context.Context, cmd *cli.Command) error {
	catalog, err := loadCatalog(cmd)
	if err != nil {
		return err
	}
	if err := catalog.Validate(); err != nil {
		return err
	}
	fmt.Printf("catalog is valid (%d materials, %d available)\n",
		len(catalog.Materials), len(catalog.Available()))
	return nil
}

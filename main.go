// Copyright (c) 2026 Benjamin Borbe All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/bborbe/pom-updater/pkg/config"
	"github.com/bborbe/pom-updater/pkg/factory"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	configPath := flag.String("config", ".pom-updater.yaml", "path to the configuration file")
	flag.Parse()

	ctx := context.Background()
	cfg, err := config.NewLoader(*configPath).Load(ctx)
	if err != nil {
		return err
	}
	return factory.CreateRunner(cfg).Run(ctx)
}

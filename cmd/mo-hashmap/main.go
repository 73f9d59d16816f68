// Copyright 2024 Matrix Origin
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"
	"runtime"

	"github.com/spf13/afero"
	"go.uber.org/zap"

	"github.com/4Looped/hash-map/pkg/common/moerr"
	"github.com/4Looped/hash-map/pkg/config"
	"github.com/4Looped/hash-map/pkg/container/array"
	"github.com/4Looped/hash-map/pkg/logutil"
	"github.com/4Looped/hash-map/pkg/wordfreq"
)

const usage = "usage: mo-hashmap [-cfg file] [-dump] <mode|stats> files..."

var (
	configFile = flag.String("cfg", "", "toml or json configuration, built-in defaults when empty")
	version    = flag.Bool("version", false, "print version information")
	dump       = flag.Bool("dump", false, "print every bucket of the map built by stats")
)

var (
	// Version is set at link time.
	Version = "unknown"

	osExit           = os.Exit
	stdout io.Writer = os.Stdout
	stderr io.Writer = os.Stderr
	appFS            = afero.NewOsFs()
)

func main() {
	flag.Parse()
	if err := run(context.Background(), flag.Args()); err != nil {
		fmt.Fprintf(stderr, "mo-hashmap: %s\n", err)
		osExit(1)
	}
}

func run(ctx context.Context, args []string) error {
	if *version {
		fmt.Fprintf(stdout, "mo-hashmap %s (%s)\n", Version, runtime.Version())
		return nil
	}

	cfg, err := loadConfig(ctx)
	if err != nil {
		return err
	}
	setupLogger(cfg)
	ctx = config.WithConfig(ctx, cfg)

	if len(args) < 2 {
		return moerr.NewInvalidInput(ctx, usage)
	}
	if stop := startCPUProfile(); stop != nil {
		defer stop()
	}
	defer writeAllocsProfile()

	loader, err := wordfreq.NewLoader(ctx, appFS, cfg.Workers)
	if err != nil {
		return err
	}
	tokens, err := loader.Load(ctx, args[1:])
	if err != nil {
		return err
	}
	logutil.Debug("input loaded",
		zap.String("command", args[0]),
		zap.Int("files", len(args)-1),
		zap.Int("tokens", tokens.Length()))

	switch args[0] {
	case "mode":
		return runMode(ctx, tokens)
	case "stats":
		return runStats(ctx, tokens)
	default:
		return moerr.NewNotSupported(ctx, "command %s", args[0])
	}
}

func loadConfig(ctx context.Context) (*config.Config, error) {
	if *configFile == "" {
		return config.Default(), nil
	}
	return config.LoadFromFile(ctx, appFS, *configFile)
}

func setupLogger(cfg *config.Config) {
	logutil.SetupMOLogger(&cfg.Log)
}

func runMode(ctx context.Context, tokens *array.DynamicArray[string]) error {
	_, err := wordfreq.NewModeReport(tokens).WriteTo(stdout)
	return err
}

func runStats(ctx context.Context, tokens *array.DynamicArray[string]) error {
	cfg := config.GetConfig(ctx)
	m, err := wordfreq.BuildMap(ctx, cfg.Map, tokens)
	if err != nil {
		return err
	}
	if _, err := wordfreq.NewStatsReport(cfg.Map.Kind, m, tokens).WriteTo(stdout); err != nil {
		return err
	}
	if *dump {
		_, err = io.WriteString(stdout, m.String())
	}
	return err
}

package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"sort"
	"syscall"

	"github.com/dustin/go-humanize"
	"github.com/spf13/pflag"

	desktopapp "github.com/stratmaster/desktopd/internal/app/desktop"
	"github.com/stratmaster/desktopd/internal/config"
	"github.com/stratmaster/desktopd/internal/domain"
)

// errServicesDown makes `desktopd check` exit non-zero.
var errServicesDown = errors.New("one or more local services are down")

func main() {
	if err := run(os.Args[1:]); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func run(args []string) error {
	var (
		configPath string
		listen     string
		baseURL    string
		debug      bool
		version    bool
	)

	flagSet := pflag.NewFlagSet("desktopd", pflag.ContinueOnError)
	flagSet.StringVarP(&configPath, "config", "c", "", "path to the YAML settings file (default: $STRATMASTER_CONFIG)")
	flagSet.StringVar(&listen, "listen", "", "loopback address of the command API")
	flagSet.StringVar(&baseURL, "api-base-url", "", "initial base URL of the StratMaster API")
	flagSet.BoolVar(&debug, "debug", false, "enable debug logging")
	flagSet.BoolVar(&version, "version", false, "print version and exit")

	if err := flagSet.Parse(args); err != nil {
		if errors.Is(err, pflag.ErrHelp) {
			return nil
		}
		return err
	}

	if version {
		fmt.Printf("desktopd %s (built %s)\n", config.Version, config.BuildTime)
		return nil
	}

	cfg, err := config.Load(configPath)
	if err != nil {
		return err
	}
	if listen != "" {
		cfg.Listen = listen
	}
	if baseURL != "" {
		cfg.APIBaseURL = baseURL
	}
	if debug {
		cfg.Debug = true
	}

	logger, err := config.NewLogger(cfg, "desktopd")
	if err != nil {
		return fmt.Errorf("logger: %w", err)
	}

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	app := desktopapp.NewApplication(cfg, logger)

	switch rest := flagSet.Args(); {
	case len(rest) == 0:
	case rest[0] == "check":
		return check(ctx, app, os.Stdout)
	default:
		return fmt.Errorf("unknown command %q", rest[0])
	}

	logger.Info("starting desktopd",
		"version", config.Version,
		"build_time", config.BuildTime,
		"debug", cfg.Debug,
	)

	if err := app.Run(ctx); err != nil {
		logger.Error("desktopd exited with error", "err", err)
		return err
	}

	logger.Info("desktopd stopped cleanly")
	return nil
}

// check prints the host profile and local service status once.
func check(ctx context.Context, app *desktopapp.Application, out io.Writer) error {
	info := app.Profile.SystemInfo(ctx)
	fmt.Fprintf(out, "platform:    %s/%s\n", info.Platform, info.Arch)
	fmt.Fprintf(out, "cpus:        %d %s\n", info.CPUCount, info.CPUModel)
	fmt.Fprintf(out, "memory:      %s\n", humanize.Bytes(info.MemoryTotal))
	fmt.Fprintf(out, "gpu:         %t (from environment)\n", info.HasGPU)
	fmt.Fprintf(out, "recommended: %s\n", info.RecommendedConfig)
	if info.ConfiguredProfile != nil {
		fmt.Fprintf(out, "configured:  %s\n", info.ConfiguredProfile.Name())
	}

	status := app.Health.LocalServerStatus(ctx)
	return printStatus(out, status)
}

func printStatus(out io.Writer, status domain.ServiceHealthMap) error {
	names := make([]string, 0, len(status))
	for name := range status {
		names = append(names, name)
	}
	sort.Strings(names)

	down := 0
	fmt.Fprintln(out, "services:")
	for _, name := range names {
		state := "up"
		if !status[name] {
			state = "down"
			down++
		}
		fmt.Fprintf(out, "  %-14s %s\n", name, state)
	}

	if down > 0 {
		return errServicesDown
	}
	return nil
}

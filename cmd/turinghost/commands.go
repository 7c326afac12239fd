package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"text/tabwriter"

	"go.uber.org/zap"

	"github.com/reglet-dev/turing-sdk/config"
	"github.com/reglet-dev/turing-sdk/domain/catalog"
	"github.com/reglet-dev/turing-sdk/domain/entities"
	"github.com/reglet-dev/turing-sdk/host"
	"github.com/reglet-dev/turing-sdk/host/world"
)

func loadConfig(path string) (config.Config, error) {
	if path == "" {
		return config.Default(), nil
	}
	return config.Load(path)
}

// runPlugins runs each plugin in order against one shared world, then shows the world.
func runPlugins(ctx context.Context, configPath string, paths []string, interactive bool, stdout io.Writer) error {
	cfg, err := loadConfig(configPath)
	if err != nil {
		return err
	}

	logger, err := cfg.Logger()
	if err != nil {
		return err
	}
	defer func() { _ = logger.Sync() }()

	store, err := cfg.OpenStore()
	if err != nil {
		return err
	}

	exec, err := host.NewExecutor(ctx,
		host.WithLogger(logger),
		host.WithStore(store),
		host.WithWorld(world.New(cfg.WorldOptions()...)),
		host.WithMaxStringSize(cfg.Limits.MaxStringSize),
		host.WithOutput(stdout, os.Stderr),
	)
	if err != nil {
		return err
	}
	defer exec.Close(ctx)

	for _, path := range paths {
		data, err := os.ReadFile(path)
		if err != nil {
			return fmt.Errorf("read plugin: %w", err)
		}
		name := strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
		logger.Info("running plugin", zap.String("plugin", name), zap.String("path", path))
		if err := exec.Run(ctx, name, data); err != nil {
			return err
		}
	}

	snapshot := exec.World().Snapshot()
	if interactive && isTerminal(stdout) {
		return browse(snapshot)
	}
	return printWorld(stdout, snapshot)
}

// printWorld writes one line per object, beatmap objects marked with '*'.
func printWorld(w io.Writer, views []world.ObjectView) error {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "\tBEAT\tKIND\tHANDLE\tPOSITION\tORIENTATION\tCOLOR")
	for _, v := range views {
		mark := ""
		if v.InBeatmap {
			mark = "*"
		}
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%s\t%s\t%s\n",
			mark, formatBeat(v), v.Kind, v.Handle,
			formatFloats(v.Position[:]), formatFloats(v.Orientation[:]), formatFloats(v.Color[:]))
	}
	return tw.Flush()
}

func formatBeat(v world.ObjectView) string {
	if v.Kind == entities.KindSaber {
		return "-"
	}
	return fmt.Sprintf("%g", v.Beat)
}

func formatFloats(fs []float32) string {
	parts := make([]string, len(fs))
	for i, f := range fs {
		parts[i] = fmt.Sprintf("%.3g", f)
	}
	return "(" + strings.Join(parts, ", ") + ")"
}

// printCatalog lists entry points, optionally only those of one kind.
func printCatalog(w io.Writer, kindName string) error {
	var filter entities.Kind
	if kindName != "" {
		k, ok := entities.ParseKind(kindName)
		if !ok {
			return fmt.Errorf("unknown kind %q", kindName)
		}
		filter = k
	}

	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "MODULE\tSIGNATURE")
	for _, ep := range catalog.EntryPoints() {
		if filter != entities.KindInvalid && ep.Kind != filter {
			continue
		}
		fmt.Fprintf(tw, "%s\t%s\n", catalog.HostModule, ep.Signature())
	}
	for _, ex := range catalog.GuestExports() {
		if filter != entities.KindInvalid {
			break
		}
		sig := catalog.EntryPoint{Name: ex.Name, Params: ex.Params, Results: ex.Results}.Signature()
		fmt.Fprintf(tw, "(export)\t%s\n", sig)
	}
	return tw.Flush()
}

func printSchema(w io.Writer) error {
	data, err := config.Schema()
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(w, string(data))
	return err
}

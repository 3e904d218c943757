// Copyright (c) 2026 Khramtsov Aleksei (seniorGolang@gmail.com).
// conditions defined in file 'LICENSE', which is part of this project source code.
package commands

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"sdkgen/internal/config"
	"sdkgen/internal/logger"
	"sdkgen/internal/telemetry"
)

// Version версия сборки, задаётся через -ldflags "-X".
var Version = "dev"

var (
	ErrNoInput = errors.New("type graph document is not set, use --input")
	ErrStale   = errors.New("generated files are out of date")
)

type app struct {
	v        *viper.Viper
	cfgFile  string
	cfg      *config.Config
	shutdown func(context.Context) error
}

// Execute разбирает аргументы и выполняет команду.
func Execute(ctx context.Context, args []string) error {
	return run(ctx, args, os.Stdout, os.Stderr)
}

func run(ctx context.Context, args []string, stdout, stderr io.Writer) (err error) {

	a := &app{v: config.New()}
	root := a.rootCmd()
	root.SetArgs(args)
	root.SetOut(stdout)
	root.SetErr(stderr)

	err = root.ExecuteContext(ctx)
	if a.shutdown != nil {
		if shutdownErr := a.shutdown(context.WithoutCancel(ctx)); shutdownErr != nil {
			err = errors.Join(err, fmt.Errorf("shutdown telemetry: %w", shutdownErr))
		}
	}
	return err
}

func (a *app) rootCmd() *cobra.Command {

	root := &cobra.Command{
		Use:   "sdkgen",
		Short: "Generate a typed TypeScript client from route-annotated endpoint classes",
		Long: `sdkgen reads a type graph document exported from a TypeScript project and
generates a single client module: a makeSdk factory with one async stub per
endpoint method plus the declarations of every type the stubs reference.

Examples:
  sdkgen generate -i graph.json -o src/sdk.gen.ts
  sdkgen generate -c sdkgen.yaml --docs SDK.md
  sdkgen check -i graph.json -o src/sdk.gen.ts`,
		SilenceUsage:      true,
		SilenceErrors:     true,
		PersistentPreRunE: a.setup,
	}

	flags := root.PersistentFlags()
	flags.StringVarP(&a.cfgFile, "config", "c", "", "Config file (default: sdkgen.{yaml,json,toml} in the working directory)")
	flags.StringP("input", "i", "", "Type graph document (.json, .yaml)")
	flags.StringP("out", "o", "sdk.gen.ts", "Generated client file")
	flags.String("docs", "", "Markdown reference file for the client; empty disables it")
	flags.String("project-root", "", "Project root, overrides the one recorded in the document")
	flags.StringSlice("allowed-modules", nil, "node_modules packages whose declarations may be emitted")
	flags.StringSlice("endpoints", nil, "Endpoint class name patterns to include (default: all)")
	flags.StringSlice("skip-files", []string{"*.gen.ts"}, "Source file patterns whose endpoint classes are skipped")
	flags.StringSlice("void-types", nil, "Type names treated as an empty response")
	flags.Bool("widen-enum-members", true, "Emit the whole enum for enum members referenced in unions")
	flags.String("name-pattern", "", "Regexp applied to class names to build group keys")
	flags.String("name-replace", "", "Replacement for --name-pattern")
	flags.String("log-level", "info", "Log level: debug, info, warn, error")
	flags.String("log-format", "text", "Log format: text, json")
	flags.String("telemetry-endpoint", "", "OTLP/gRPC collector address; empty disables tracing")
	flags.Bool("telemetry-insecure", false, "Use a plaintext connection to the collector")

	for key, name := range map[string]string{
		config.KeyInput:            "input",
		config.KeyOut:              "out",
		config.KeyDocs:             "docs",
		config.KeyProjectRoot:      "project-root",
		config.KeyAllowedModules:   "allowed-modules",
		config.KeyEndpoints:        "endpoints",
		config.KeySkipFiles:        "skip-files",
		config.KeyVoidTypes:        "void-types",
		config.KeyWidenEnumMembers: "widen-enum-members",
		config.KeyNamePattern:      "name-pattern",
		config.KeyNameReplace:      "name-replace",
		config.KeyLogLevel:         "log-level",
		config.KeyLogFormat:        "log-format",
		config.KeyTelemetryAddr:    "telemetry-endpoint",
		config.KeyTelemetryInsec:   "telemetry-insecure",
	} {
		// Lookup не возвращает nil: флаги объявлены выше.
		_ = a.v.BindPFlag(key, flags.Lookup(name))
	}

	root.AddCommand(a.generateCmd(), a.checkCmd(), versionCmd())
	return root
}

// setup загружает конфигурацию, устанавливает логгер и трассировку.
func (a *app) setup(cmd *cobra.Command, _ []string) (err error) {

	if cmd.Name() == "version" {
		return nil
	}
	if a.cfg, err = config.Load(a.v, a.cfgFile, "."); err != nil {
		return err
	}

	var log *slog.Logger
	if log, err = logger.New(cmd.ErrOrStderr(), a.cfg.LogLevel, a.cfg.LogFormat); err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}
	slog.SetDefault(log)

	if a.shutdown, err = telemetry.Setup(cmd.Context(), telemetry.Options{
		Endpoint: a.cfg.Telemetry.Endpoint,
		Insecure: a.cfg.Telemetry.Insecure,
		Version:  Version,
	}); err != nil {
		return err
	}
	if file := a.v.ConfigFileUsed(); file != "" {
		slog.Debug("config loaded", slog.String("path", file))
	}
	return nil
}

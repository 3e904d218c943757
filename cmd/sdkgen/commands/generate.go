// Copyright (c) 2026 Khramtsov Aleksei (seniorGolang@gmail.com).
// conditions defined in file 'LICENSE', which is part of this project source code.
package commands

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"

	"sdkgen/internal/introspect/document"
	"sdkgen/plugins/client-ts/generator"
)

func (a *app) generateCmd() *cobra.Command {

	return &cobra.Command{
		Use:   "generate",
		Short: "Generate the TypeScript client",
		Long: `Generate the client module from the type graph document.

The output file is rewritten only when its content changes. Nothing is
written if any endpoint method fails validation.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) (err error) {

			var result *generator.Result
			if result, err = a.generate(cmd.Context()); err != nil {
				return err
			}
			var changed bool
			if changed, err = generator.WriteClient(result, a.cfg.Out, a.docs()); err != nil {
				return err
			}
			if changed {
				fmt.Fprintf(cmd.OutOrStdout(), "generated %s\n", a.cfg.Out)
			} else {
				fmt.Fprintf(cmd.OutOrStdout(), "%s is up to date\n", a.cfg.Out)
			}
			return nil
		},
	}
}

func (a *app) generate(ctx context.Context) (result *generator.Result, err error) {

	if a.cfg.Input == "" {
		return nil, ErrNoInput
	}
	var graph *document.Graph
	if graph, err = document.Load(a.cfg.Input, document.Options{
		ProjectRoot:    a.cfg.ProjectRoot,
		EndpointFilter: a.cfg.EndpointFilter(),
		SkipFile:       a.cfg.SkipFile(),
	}); err != nil {
		return nil, err
	}

	slog.Info("generating client",
		slog.String("input", a.cfg.Input),
		slog.String("out", a.cfg.Out),
		slog.String("projectRoot", graph.ProjectRoot()),
	)
	return generator.Generate(ctx, graph, graph, generator.Options{
		ProjectRoot:      graph.ProjectRoot(),
		AllowedModules:   a.cfg.AllowedModules,
		VoidTypes:        a.cfg.VoidTypes,
		WidenEnumMembers: a.cfg.WidenEnumMembers,
		NameFormatter:    a.cfg.NameFormatter(),
		Docs:             a.docs(),
	})
}

func (a *app) docs() generator.DocOptions {
	return generator.DocOptions{Enabled: a.cfg.Docs != "", FilePath: a.cfg.Docs}
}

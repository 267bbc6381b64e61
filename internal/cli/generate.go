package cli

import (
	"context"
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/matzehuels/iconforge/pkg/config"
	"github.com/matzehuels/iconforge/pkg/errors"
	"github.com/matzehuels/iconforge/pkg/icongen"
	"github.com/matzehuels/iconforge/pkg/manifest"
)

// generateOpts holds the command-line flags for the generate command.
type generateOpts struct {
	output  string // output directory (overrides config)
	cfgPath string // optional TOML config file
	strict  bool   // exit non-zero when any target failed
}

// newGenerateCmd creates the generate command, the main entry point of
// the tool. It renders the source SVG at every target size, writes the
// PNGs, and prints the manifest.json icons snippet.
//
// Without arguments, flags, or a config file it reproduces the
// conventional layout: icons/icon.svg rendered into icons/.
func newGenerateCmd() *cobra.Command {
	opts := generateOpts{}

	cmd := &cobra.Command{
		Use:   "generate [svg]",
		Short: "Render the source SVG at every target size",
		Long: `Generate renders one source SVG into the full extension icon set.

Each target is processed independently: a failing size is reported and
skipped while the remaining sizes are still written. Existing files are
overwritten. The command only aborts early when the source SVG itself
is missing.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			source := ""
			if len(args) == 1 {
				source = args[0]
			}
			return runGenerate(cmd.Context(), source, &opts)
		},
	}

	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "output directory (default from config, icons/)")
	cmd.Flags().StringVarP(&opts.cfgPath, "config", "c", "", "TOML config file overriding source, output, and targets")
	cmd.Flags().BoolVar(&opts.strict, "strict", false, "exit non-zero when any target failed")

	return cmd
}

// runGenerate resolves the configuration, runs the batch, and prints
// per-target status lines plus the manifest snippet.
func runGenerate(ctx context.Context, source string, opts *generateOpts) error {
	logger := loggerFromContext(ctx)

	cfg, err := config.LoadOrDefault(opts.cfgPath)
	if err != nil {
		return err
	}
	if source == "" {
		source = cfg.Source
	}
	outDir := cfg.Output
	if opts.output != "" {
		outDir = opts.output
	}

	printTitle("Generating extension icons")
	printKeyValue("source", source)
	printKeyValue("output", outDir)
	fmt.Println()

	gen := icongen.New(logger)
	gen.OnResult = func(res icongen.Result) {
		if res.OK() {
			printSuccess("Generated %s (%dx%d)", res.Path, res.Target.Size, res.Target.Size)
		} else {
			printError("Failed to generate %s: %s", res.Target.Filename, errors.UserMessage(res.Err))
		}
	}

	prog := newProgress(logger)
	report, err := gen.Generate(ctx, source, cfg.Targets, outDir)
	if err != nil {
		return err
	}
	prog.done(fmt.Sprintf("Generated %d of %d icons", report.Succeeded(), len(cfg.Targets)))

	fmt.Println()
	printInfo("manifest.json icon configuration:")
	snippet, err := manifest.Snippet(manifest.FromTargets(cfg.Targets, filepath.ToSlash(outDir)))
	if err != nil {
		return err
	}
	fmt.Println(snippet)

	if opts.strict && report.Failed() > 0 {
		return fmt.Errorf("%d of %d icons failed", report.Failed(), len(cfg.Targets))
	}
	return nil
}

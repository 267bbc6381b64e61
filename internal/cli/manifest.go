package cli

import (
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/matzehuels/iconforge/pkg/config"
	"github.com/matzehuels/iconforge/pkg/manifest"
)

// newManifestCmd creates the manifest command, which prints the
// manifest.json icons snippet without generating anything.
func newManifestCmd() *cobra.Command {
	var cfgPath, output string

	cmd := &cobra.Command{
		Use:   "manifest",
		Short: "Print the manifest.json icons snippet",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.LoadOrDefault(cfgPath)
			if err != nil {
				return err
			}
			dir := cfg.Output
			if output != "" {
				dir = output
			}

			snippet, err := manifest.Snippet(manifest.FromTargets(cfg.Targets, filepath.ToSlash(dir)))
			if err != nil {
				return err
			}
			fmt.Println(snippet)
			return nil
		},
	}

	cmd.Flags().StringVarP(&cfgPath, "config", "c", "", "TOML config file overriding output and targets")
	cmd.Flags().StringVarP(&output, "output", "o", "", "icon directory referenced in the snippet")

	return cmd
}

// newTargetsCmd creates the targets command, which prints the active
// target table in generation order.
func newTargetsCmd() *cobra.Command {
	var cfgPath string

	cmd := &cobra.Command{
		Use:   "targets",
		Short: "Print the active target table",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.LoadOrDefault(cfgPath)
			if err != nil {
				return err
			}
			for _, tgt := range cfg.Targets {
				printKeyValue(fmt.Sprintf("%dx%d", tgt.Size, tgt.Size), tgt.Filename)
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&cfgPath, "config", "c", "", "TOML config file overriding targets")

	return cmd
}

package main

import (
	"os"
	"path/filepath"
	"strconv"

	"github.com/google/uuid"
	"github.com/rotisserie/eris"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/sells-group/placegen/internal/place"
)

var generateSeed uint64

var generateCmd = &cobra.Command{
	Use:   "generate [count]",
	Short: "Generate place fixture files",
	Long:  "Write one markdown document per generated place into the output directory. The optional count defaults to the configured value.",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		count, err := parseCount(args, cfg.Generator.DefaultCount)
		if err != nil {
			return err
		}

		dir, err := resolveOutputDir(cfg.Generator.OutputDir)
		if err != nil {
			return err
		}

		log := zap.L().With(
			zap.String("command", "generate"),
			zap.String("run_id", uuid.NewString()),
		)
		log.Info("starting run", zap.Int("count", count), zap.String("dir", dir))

		g := place.NewGenerator(generateSeed)
		written, err := g.GenerateAll(dir, count)
		if err != nil {
			log.Error("run aborted", zap.Int("written", written), zap.Error(err))
			return eris.Wrap(err, "generate")
		}

		p := message.NewPrinter(language.English)
		_, _ = p.Fprintf(cmd.OutOrStdout(), "✓ Generated %d files in %s\n", written, dir)
		return nil
	},
}

// parseCount interprets the single positional count argument, defaulting
// when absent. Non-integer or non-positive values are user errors.
func parseCount(args []string, def int) (int, error) {
	if len(args) == 0 {
		return def, nil
	}
	n, err := strconv.Atoi(args[0])
	if err != nil {
		return 0, eris.Errorf("invalid count %q: must be an integer", args[0])
	}
	if n < 1 {
		return 0, eris.Errorf("invalid count %d: must be positive", n)
	}
	return n, nil
}

// resolveOutputDir anchors a relative output directory at the executable's
// own location, which is where consumers look for the fixture set.
func resolveOutputDir(dir string) (string, error) {
	if filepath.IsAbs(dir) {
		return dir, nil
	}
	exe, err := os.Executable()
	if err != nil {
		return "", eris.Wrap(err, "locate executable")
	}
	return filepath.Join(filepath.Dir(exe), dir), nil
}

func init() {
	generateCmd.Flags().Uint64Var(&generateSeed, "seed", 0, "RNG seed for reproducible runs (0 = derive from clock)")
	rootCmd.AddCommand(generateCmd)
}

package cli

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"yethangul/internal/common"
	"yethangul/internal/palette"
	"yethangul/pkg/config"
)

type app struct {
	configPath  string
	palettePath string
	verbose     bool

	cfg    config.Config
	logger *zap.Logger
}

// NewRootCommand builds the yethangul command tree. Running it without a
// subcommand opens the interactive palette.
func NewRootCommand() *cobra.Command {
	a := &app{logger: zap.NewNop()}

	root := &cobra.Command{
		Use:   "yethangul",
		Short: "Compose modern and archaic Hangul syllables from a jamo palette",
		Long: `yethangul assembles Korean syllable blocks from individually picked jamo.

Picks drawn entirely from the modern alphabet become one precomposed syllable.
Any archaic letter keeps the syllable as a run of conjoining jamo that a font
with Old Hangul support renders as one block.

Run without arguments to open the interactive palette.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.setup(cmd)
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			_ = a.logger.Sync()
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.runPalette(cmd)
		},
	}

	flags := root.PersistentFlags()
	flags.StringVar(&a.configPath, "config", "", "path to the ini config (default "+common.DefaultConfigPath()+")")
	flags.StringVar(&a.palettePath, "palette", "", "YAML palette override")
	flags.BoolVarP(&a.verbose, "verbose", "v", false, "enable debug logging")

	root.AddCommand(
		a.paletteCommand(),
		a.composeCommand(),
		a.decomposeCommand(),
		a.classifyCommand(),
		a.glyphsCommand(),
		a.pickCommand(),
	)
	return root
}

func (a *app) setup(cmd *cobra.Command) error {
	path := a.configPath
	if path == "" {
		path = common.DefaultConfigPath()
	}
	cfg, err := config.Load(path)
	if err != nil {
		return err
	}
	if a.palettePath != "" {
		cfg.PaletteFile = a.palettePath
	}
	a.cfg = cfg

	logger, err := a.buildLogger(interactive(cmd), cmd.ErrOrStderr())
	if err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}
	a.logger = logger
	a.logger.Debug("config loaded", zap.String("path", path), zap.String("palette", cfg.PaletteFile))
	return nil
}

// buildLogger logs to the configured file, or to stderr for one-shot
// commands. The interactive palette owns the terminal, so without a log file
// it stays silent.
func (a *app) buildLogger(interactive bool, stderr io.Writer) (*zap.Logger, error) {
	level, err := zapcore.ParseLevel(a.cfg.LogLevel)
	if err != nil {
		return nil, err
	}
	if a.verbose {
		level = zapcore.DebugLevel
	}

	if a.cfg.LogFile != "" {
		if err := common.EnsureParentDir(a.cfg.LogFile); err != nil {
			return nil, err
		}
		zcfg := zap.NewProductionConfig()
		zcfg.Level = zap.NewAtomicLevelAt(level)
		zcfg.OutputPaths = []string{a.cfg.LogFile}
		zcfg.ErrorOutputPaths = []string{a.cfg.LogFile}
		return zcfg.Build()
	}
	if interactive {
		return zap.NewNop(), nil
	}
	encoder := zapcore.NewConsoleEncoder(zap.NewDevelopmentEncoderConfig())
	core := zapcore.NewCore(encoder, zapcore.AddSync(stderr), level)
	return zap.New(core), nil
}

func (a *app) loadPalette() (*palette.Palette, error) {
	return palette.Load(a.cfg.PaletteFile)
}

func interactive(cmd *cobra.Command) bool {
	return cmd.Name() == "palette" || !cmd.HasParent()
}

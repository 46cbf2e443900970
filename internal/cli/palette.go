package cli

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/pterm/pterm"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"yethangul/internal/emitter"
	"yethangul/internal/engine"
	"yethangul/internal/types"
)

func (a *app) paletteCommand() *cobra.Command {
	var useX11 bool
	cmd := &cobra.Command{
		Use:   "palette",
		Short: "Open the interactive jamo palette",
		Long: `Shows the palette on the terminal. Keys pick glyphs of the current section,
tab and the up/down arrows change section, enter picks the highlighted glyph,
space closes the syllable, backspace deletes, ctrl+y copies the highlighted
glyph and esc quits.

With --x11 every emission is also typed into the focused X window.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if useX11 {
				a.cfg.X11 = true
			}
			return a.runPalette(cmd)
		},
	}
	cmd.Flags().BoolVar(&useX11, "x11", false, "also type emissions into the focused X window")
	return cmd
}

func (a *app) runPalette(cmd *cobra.Command) error {
	p, err := a.loadPalette()
	if err != nil {
		return err
	}
	section, err := types.ParseSection(a.cfg.Section)
	if err != nil {
		return err
	}

	opts := engine.Options{
		Palette: p,
		Section: section,
		Copier:  emitter.Clipboard{},
		Screen:  emitter.NewTerminal(cmd.OutOrStdout(), pterm.GetTerminalWidth()),
		Logger:  a.logger,
	}
	if a.cfg.X11 {
		x11, err := emitter.OpenX11("")
		if err != nil {
			return err
		}
		defer x11.Close()
		opts.Output = x11
		if target, err := x11.Target(); err == nil {
			opts.Status = "typing into " + target
		} else {
			a.logger.Warn("x11 target unknown", zap.Error(err))
		}
	}

	ctx, stop := signal.NotifyContext(cmdContext(cmd), os.Interrupt, syscall.SIGTERM)
	defer stop()

	eng := engine.New(opts)
	a.logger.Info("palette started", zap.Stringer("section", section), zap.Bool("x11", a.cfg.X11))
	if err := eng.Run(ctx, engine.Keyboard{}); err != nil && !errors.Is(err, context.Canceled) {
		return err
	}

	text := eng.Text()
	fmt.Fprintln(cmd.OutOrStdout())
	fmt.Fprintln(cmd.OutOrStdout(), text)
	if a.cfg.CopyOnExit && text != "" {
		if err := (emitter.Clipboard{}).Copy(text); err != nil {
			a.logger.Warn("copy on exit failed", zap.Error(err))
		}
	}
	return nil
}

func cmdContext(cmd *cobra.Command) context.Context {
	if ctx := cmd.Context(); ctx != nil {
		return ctx
	}
	return context.Background()
}

package cli

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/pterm/pterm"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"yethangul/internal/emitter"
	"yethangul/pkg/hangul"
	"yethangul/pkg/ime"
)

type pick struct {
	role  hangul.Role
	glyph string
	// auto picks carry no role; hangul.Combine infers the slot from the code
	// point and merges the glyph into the previous fragment.
	auto bool
}

func (a *app) pickCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "pick <role:glyph>...",
		Short: "Replay palette picks and show every emission",
		Long: `Feeds picks through a composition session and a text buffer. A role is
one of i, m, f (or initial, medial, final); w inserts the glyph as is and a
(auto) infers the slot from the glyph and merges it into the previous one.

Examples:
  yethangul pick i:ㄱ m:ㅏ f:ㄴ
  yethangul pick a:ㄱ a:ㅏ a:ㄴ`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			picks, err := parsePicks(args)
			if err != nil {
				return err
			}
			buffer := emitter.NewBuffer()
			session := emitter.NewSession(buffer)
			data := pterm.TableData{{"Pick", "Emitted", "Replace", "Units", "Buffer"}}
			for i, p := range picks {
				var (
					e   ime.Emission
					err error
				)
				if p.auto {
					e, err = session.Combine(p.glyph)
				} else {
					e, err = session.Pick(p.role, p.glyph)
				}
				if err != nil {
					if !errors.Is(err, emitter.ErrReplaceOverrun) {
						return err
					}
					a.logger.Warn("replace overrun", zap.Int("pick", i), zap.Int("units", e.ReplaceUnits))
				}
				data = append(data, []string{
					args[i],
					e.Text,
					strconv.FormatBool(e.ReplaceLast),
					strconv.Itoa(e.ReplaceUnits),
					buffer.Text(),
				})
			}
			session.Complete()
			if err := renderTable(cmd.OutOrStdout(), data); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), buffer.Text())
			return nil
		},
	}
}

func parsePicks(args []string) ([]pick, error) {
	picks := make([]pick, 0, len(args))
	for _, arg := range args {
		name, glyph, ok := strings.Cut(arg, ":")
		if !ok || glyph == "" {
			return nil, fmt.Errorf("invalid pick %q (want role:glyph)", arg)
		}
		if isAutoRole(name) {
			picks = append(picks, pick{glyph: glyph, auto: true})
			continue
		}
		role := hangul.ParseRole(name)
		if role == hangul.RoleNone && !isWordRole(name) {
			return nil, fmt.Errorf("unknown role %q in pick %q", name, arg)
		}
		picks = append(picks, pick{role: role, glyph: glyph})
	}
	return picks, nil
}

func isWordRole(name string) bool {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "w", "word", "none":
		return true
	default:
		return false
	}
}

func isAutoRole(name string) bool {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "a", "auto":
		return true
	default:
		return false
	}
}

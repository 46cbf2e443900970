package cli

import (
	"fmt"
	"io"
	"strings"

	"github.com/pterm/pterm"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"yethangul/internal/palette"
	"yethangul/internal/types"
	"yethangul/pkg/hangul"
)

func (a *app) composeCommand() *cobra.Command {
	var normalize bool
	cmd := &cobra.Command{
		Use:   "compose <initial> <medial> [final]",
		Short: "Compose one syllable from its jamo",
		Args:  cobra.RangeArgs(2, 3),
		RunE: func(cmd *cobra.Command, args []string) error {
			final := ""
			if len(args) == 3 {
				final = args[2]
			}
			text := hangul.Compose(args[0], args[1], final)
			if normalize {
				text = hangul.Normalize(text)
			}
			a.logger.Debug("compose",
				zap.Stringer("initial", hangul.Classify(args[0], hangul.RoleInitial)),
				zap.Stringer("medial", hangul.Classify(args[1], hangul.RoleMedial)),
				zap.Stringer("final", hangul.Classify(final, hangul.RoleFinal)),
			)
			out := cmd.OutOrStdout()
			fmt.Fprintln(out, text)
			fmt.Fprintln(out, palette.CodePoints(text))
			return nil
		},
	}
	cmd.Flags().BoolVar(&normalize, "nfc", false, "apply canonical composition to the result")
	return cmd
}

func (a *app) decomposeCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "decompose <syllable>",
		Short: "Split a precomposed syllable into its jamo",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			initial, medial, final, ok := hangul.Decompose(args[0])
			if !ok {
				return fmt.Errorf("%q is not a single precomposed syllable", args[0])
			}
			data := pterm.TableData{
				{"Slot", "Letter", "Code"},
				{"initial", initial, palette.CodePoints(initial)},
				{"medial", medial, palette.CodePoints(medial)},
				{"final", final, palette.CodePoints(final)},
				{"conjoining", "", palette.CodePoints(hangul.DecomposeConjoining(args[0]))},
			}
			return renderTable(cmd.OutOrStdout(), data)
		},
	}
}

func (a *app) classifyCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "classify <text>",
		Short: "Show slot role, repertoire and name of every character",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			data := pterm.TableData{{"Char", "Code", "Slot", "Basic as", "Alias", "Name"}}
			for _, r := range strings.Join(args, " ") {
				alias := ""
				if modern, ok := hangul.LegacyAlias(r); ok {
					alias = string(modern)
				}
				data = append(data, []string{
					string(r),
					fmt.Sprintf("U+%04X", r),
					hangul.SlotRole(r).String(),
					basicRoles(string(r)),
					alias,
					palette.Describe(string(r)),
				})
			}
			return renderTable(cmd.OutOrStdout(), data)
		},
	}
}

func (a *app) glyphsCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "glyphs [section]",
		Short: "List the palette glyphs",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := a.loadPalette()
			if err != nil {
				return err
			}
			sections := types.Sections
			if len(args) == 1 {
				section, err := types.ParseSection(args[0])
				if err != nil {
					return err
				}
				sections = []types.Section{section}
			}
			data := pterm.TableData{{"Section", "Key", "Glyph", "Repertoire", "Name"}}
			for _, section := range sections {
				for _, entry := range p.Entries(section) {
					key := ""
					if entry.Key != 0 {
						key = string(entry.Key)
					}
					data = append(data, []string{
						section.String(),
						key,
						entry.Text,
						entry.Repertoire().String(),
						palette.Describe(entry.Text),
					})
				}
			}
			return renderTable(cmd.OutOrStdout(), data)
		},
	}
}

func basicRoles(glyph string) string {
	var roles []string
	for _, role := range []hangul.Role{hangul.RoleInitial, hangul.RoleMedial, hangul.RoleFinal} {
		switch hangul.Classify(glyph, role) {
		case hangul.RepertoireBasic:
			roles = append(roles, role.String())
		case hangul.RepertoireLegacy:
			roles = append(roles, role.String()+" (legacy)")
		}
	}
	return strings.Join(roles, ", ")
}

func renderTable(w io.Writer, data pterm.TableData) error {
	table, err := pterm.DefaultTable.WithHasHeader().WithData(data).Srender()
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(w, table)
	return err
}

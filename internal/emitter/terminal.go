package emitter

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/mattn/go-runewidth"

	"yethangul/internal/palette"
	"yethangul/internal/types"
)

const (
	ansiClear   = "\x1b[H\x1b[2J"
	ansiReverse = "\x1b[7m"
	ansiBold    = "\x1b[1m"
	ansiReset   = "\x1b[0m"
	// The terminal is in raw mode while the palette is shown.
	crlf = "\r\n"
)

// Frame is one screenful of the interactive palette.
type Frame struct {
	Section types.Section
	Entries []palette.Entry
	Cursor  int
	Text    string
	Pending string
	Status  string
}

// Terminal draws frames onto a raw-mode terminal.
type Terminal struct {
	w       io.Writer
	columns int
}

func NewTerminal(w io.Writer, columns int) *Terminal {
	if columns <= 0 {
		columns = 80
	}
	return &Terminal{w: w, columns: columns}
}

func (t *Terminal) Render(f Frame) error {
	bw := bufio.NewWriter(t.w)
	bw.WriteString(ansiClear)

	for i, section := range types.Sections {
		if i > 0 {
			bw.WriteString("  ")
		}
		label := fmt.Sprintf("%s %s", section.Title(), section)
		if section == f.Section {
			bw.WriteString(ansiReverse + label + ansiReset)
		} else {
			bw.WriteString(label)
		}
	}
	bw.WriteString(crlf + crlf)

	cell := cellWidth(f.Entries)
	perRow := t.columns / (cell + 1)
	if perRow < 1 {
		perRow = 1
	}
	for i, entry := range f.Entries {
		text := runewidth.FillRight(cellLabel(entry), cell)
		if i == f.Cursor {
			text = ansiReverse + text + ansiReset
		}
		bw.WriteString(text)
		if (i+1)%perRow == 0 || i == len(f.Entries)-1 {
			bw.WriteString(crlf)
		} else {
			bw.WriteString(" ")
		}
	}

	bw.WriteString(crlf)
	bw.WriteString(ansiBold + "> " + ansiReset + sanitize(f.Text))
	if f.Pending != "" {
		fmt.Fprintf(bw, "   [%s]", sanitize(f.Pending))
	}
	bw.WriteString(crlf)
	if f.Status != "" {
		bw.WriteString(f.Status + crlf)
	}
	bw.WriteString("tab/arrows: section  key/enter: pick  space: commit  bksp: delete  ctrl+y: copy  esc: quit" + crlf)
	return bw.Flush()
}

func cellLabel(entry palette.Entry) string {
	key := " "
	if entry.Key != 0 {
		key = string(entry.Key)
	}
	return key + " " + entry.Text
}

func cellWidth(entries []palette.Entry) int {
	width := 0
	for _, entry := range entries {
		if w := runewidth.StringWidth(cellLabel(entry)); w > width {
			width = w
		}
	}
	return width
}

// sanitize keeps raw-mode line discipline intact when the text holds newlines.
func sanitize(text string) string {
	return strings.ReplaceAll(text, "\n", crlf)
}

// Package main is a small terminal form demonstrating typedtext fields: a
// number, a percentage, and a hex color, each validated per keystroke.
package main

import (
	"fmt"
	"os"

	"github.com/gdamore/tcell/v2"

	"github.com/dshills/typedtext/diff"
	"github.com/dshills/typedtext/fields"
)

func main() {
	os.Exit(run())
}

func run() int {
	screen, err := tcell.NewScreen()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: failed to create screen: %v\n", err)
		return 1
	}
	if err := screen.Init(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: failed to init screen: %v\n", err)
		return 1
	}
	defer screen.Fini()

	form := newForm()
	form.loop(screen)
	return 0
}

// editor is the slice of a typedtext state the form needs, independent of
// the parsed value type.
type editor interface {
	Text() string
	Len() int
	IsValid() bool
	LastError() error
	Insert(text string, index int) bool
	Delete(start, end int)
	SetText(text string)
}

type formField struct {
	label    string
	state    editor
	describe func() string
	cursor   int
}

type form struct {
	fields []*formField
	active int
}

func newForm() *form {
	number := fields.Number[float64]()
	pct := fields.Percentage()
	color := fields.HexColor()

	return &form{
		fields: []*formField{
			{
				label: "Number    ",
				state: number,
				describe: func() string {
					if v, ok := number.Value(); ok {
						return fmt.Sprintf("= %v", v)
					}
					return ""
				},
			},
			{
				label: "Percent   ",
				state: pct,
				describe: func() string {
					if v, ok := pct.Value(); ok {
						return fmt.Sprintf("= %v%%", v)
					}
					return ""
				},
			},
			{
				label: "Hex color ",
				state: color,
				describe: func() string {
					if v, ok := color.Value(); ok {
						return fmt.Sprintf("= rgb(%.0f, %.0f, %.0f)", v.R*255, v.G*255, v.B*255)
					}
					return ""
				},
			},
		},
	}
}

func (f *form) loop(screen tcell.Screen) {
	for {
		f.render(screen)

		switch ev := screen.PollEvent().(type) {
		case *tcell.EventResize:
			screen.Sync()
		case *tcell.EventKey:
			if !f.handleKey(ev) {
				return
			}
		}
	}
}

// handleKey translates a key event into field edits. Returns false to quit.
func (f *form) handleKey(ev *tcell.EventKey) bool {
	fld := f.fields[f.active]
	text := fld.state.Text()

	switch ev.Key() {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return false

	case tcell.KeyTab, tcell.KeyDown:
		f.active = (f.active + 1) % len(f.fields)

	case tcell.KeyBacktab, tcell.KeyUp:
		f.active = (f.active + len(f.fields) - 1) % len(f.fields)

	case tcell.KeyLeft:
		fld.cursor = diff.PrevBoundary(text, fld.cursor)

	case tcell.KeyRight:
		fld.cursor = diff.NextBoundary(text, fld.cursor)

	case tcell.KeyHome:
		fld.cursor = 0

	case tcell.KeyEnd:
		fld.cursor = fld.state.Len()

	case tcell.KeyBackspace, tcell.KeyBackspace2:
		start := diff.PrevBoundary(text, fld.cursor)
		fld.state.Delete(start, fld.cursor)
		fld.cursor = start

	case tcell.KeyDelete:
		end := diff.NextBoundary(text, fld.cursor)
		fld.state.Delete(fld.cursor, end)

	case tcell.KeyCtrlU:
		fld.state.SetText("")
		fld.cursor = 0

	case tcell.KeyRune:
		// A rejected keystroke has no visible effect at all.
		if fld.state.Insert(string(ev.Rune()), fld.cursor) {
			fld.cursor++
		}
	}

	return true
}

func (f *form) render(screen tcell.Screen) {
	screen.Clear()

	normal := tcell.StyleDefault
	invalid := tcell.StyleDefault.Foreground(tcell.ColorRed)
	dim := tcell.StyleDefault.Dim(true)

	drawString(screen, 0, 0, normal.Bold(true), "typedtext demo")
	drawString(screen, 0, 1, dim, "Tab: next field  Ctrl+U: clear  Esc: quit")

	for i, fld := range f.fields {
		y := 3 + i*2
		marker := "  "
		if i == f.active {
			marker = "> "
		}
		drawString(screen, 0, y, normal, marker+fld.label)

		textStyle := normal
		if fld.state.LastError() != nil {
			textStyle = invalid
		}
		textX := len(marker) + len(fld.label)
		drawString(screen, textX, y, textStyle, fld.state.Text())

		if desc := fld.describe(); desc != "" {
			drawString(screen, textX+fld.state.Len()+2, y, dim, desc)
		} else if err := fld.state.LastError(); err != nil && fld.state.Text() != "" {
			drawString(screen, textX+fld.state.Len()+2, y, invalid, err.Error())
		}

		if i == f.active {
			screen.ShowCursor(textX+fld.cursor, y)
		}
	}

	screen.Show()
}

func drawString(screen tcell.Screen, x, y int, style tcell.Style, s string) {
	for _, r := range s {
		screen.SetContent(x, y, r, nil, style)
		x++
	}
}

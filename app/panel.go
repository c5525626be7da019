package app

import (
	"github.com/gdamore/tcell/v2"
	"github.com/mattn/go-runewidth"

	"github.com/lixenwraith/termfolio/chat"
	"github.com/lixenwraith/termfolio/parameter"
	"github.com/lixenwraith/termfolio/parameter/visual"
	"github.com/lixenwraith/termfolio/render"
	"github.com/lixenwraith/termfolio/shell"
)

const (
	chatTitle      = " AI Assistant "
	shellTitle     = " visitor@portfolio:~ "
	userPrefix     = "you: "
	assistantLabel = "ai:  "

	// Smallest panel worth drawing, below this the panel stays hidden
	panelMinWidth  = 16
	panelMinHeight = 5
)

// Panel is a boxed overlay with a transcript and an input line
// The chat panel sits bottom-right, the shell panel bottom-left
type Panel struct {
	open  bool
	input []rune

	title         string
	prompt        string
	cursor        rune
	width, height int
	left          bool

	border    tcell.Style
	user      tcell.Style
	assistant tcell.Style
	accent    tcell.Style
	failure   tcell.Style
}

func newPanel(title, prompt string, cursor rune, width, height int, left bool) *Panel {
	bg := render.MustHex(visual.ChatPanelBgHex)
	return &Panel{
		title:     title,
		prompt:    prompt,
		cursor:    cursor,
		width:     width,
		height:    height,
		left:      left,
		border:    render.StyleOf(render.MustHex(visual.ChatBorderHex), bg),
		user:      render.StyleOf(render.MustHex(visual.ChatUserHex), bg),
		assistant: render.StyleOf(render.MustHex(visual.ChatAssistantHex), bg),
		accent:    render.StyleOf(render.MustHex(visual.ChatAccentHex), bg),
		failure:   render.StyleOf(render.MustHex(visual.ShellErrorHex), bg),
	}
}

// NewPanel creates a closed chat panel
func NewPanel() *Panel {
	return newPanel(chatTitle, parameter.ChatPrompt, parameter.ChatCursorChar,
		parameter.ChatPanelWidth, parameter.ChatPanelHeight, false)
}

// NewShellPanel creates a closed shell panel
func NewShellPanel() *Panel {
	return newPanel(shellTitle, shell.Prompt, parameter.ShellCursorChar,
		parameter.ShellPanelWidth, parameter.ShellPanelHeight, true)
}

// Toggle flips visibility and returns the new state
func (p *Panel) Toggle() bool {
	p.open = !p.open
	return p.open
}

// SetOpen shows or hides the panel
func (p *Panel) SetOpen(open bool) {
	p.open = open
}

// Open reports whether the panel is shown
func (p *Panel) Open() bool {
	return p.open
}

// Type appends r to the input line
func (p *Panel) Type(r rune) {
	p.input = append(p.input, r)
}

// Backspace drops the last input rune
func (p *Panel) Backspace() {
	if len(p.input) > 0 {
		p.input = p.input[:len(p.input)-1]
	}
}

// Take returns the input line and clears it
func (p *Panel) Take() string {
	s := string(p.input)
	p.input = p.input[:0]
	return s
}

// Input returns the pending input line
func (p *Panel) Input() string {
	return string(p.input)
}

// Rect returns the panel box anchored to its bottom corner, ok is false when the screen is too small
func (p *Panel) Rect(cols, rows int) (x, y, w, h int, ok bool) {
	m := parameter.ChatPanelMargin
	w = min(p.width, cols-2*m)
	h = min(p.height, rows-2*m)
	if w < panelMinWidth || h < panelMinHeight {
		return 0, 0, 0, 0, false
	}
	if p.left {
		return m, rows - m - h, w, h, true
	}
	return cols - m - w, rows - m - h, w, h, true
}

// DrawChat renders the chat transcript with role labels and the typing indicator
func (p *Panel) DrawChat(sw render.CellWriter, cols, rows int, msgs []chat.Message, typing bool) {
	p.draw(sw, cols, rows, func(width int) []panelLine {
		return p.chatLines(msgs, typing, width)
	})
}

// DrawShell renders shell history, lines are hard wrapped so spacing survives
func (p *Panel) DrawShell(sw render.CellWriter, cols, rows int, lines []shell.Line) {
	p.draw(sw, cols, rows, func(width int) []panelLine {
		return p.shellLines(lines, width)
	})
}

// draw renders the box, the tail of body and the input line
func (p *Panel) draw(sw render.CellWriter, cols, rows int, body func(width int) []panelLine) {
	if !p.open {
		return
	}
	x, y, w, h, ok := p.Rect(cols, rows)
	if !ok {
		return
	}

	p.drawFrame(sw, x, y, w, h)

	inner := w - 4 // Border and one column of padding on each side
	area := h - 3  // Top border, input line, bottom border

	lines := body(inner)
	if len(lines) > area {
		lines = lines[len(lines)-area:]
	}
	for i := 0; i < area; i++ {
		row := y + 1 + i
		if i < len(lines) {
			drawText(sw, x+2, row, inner, lines[i].text, lines[i].style)
		} else {
			drawText(sw, x+2, row, inner, "", p.assistant)
		}
	}

	// Input line: prompt, tail of the input, cursor
	row := y + h - 2
	used := drawText(sw, x+2, row, inner, p.prompt, p.accent)
	visible := tailFit(p.input, inner-used-1)
	used += drawText(sw, x+2+used, row, inner-used, string(visible), p.user)
	if used < inner {
		sw.SetContent(x+2+used, row, p.cursor, nil, p.accent)
	}
}

type panelLine struct {
	text  string
	style tcell.Style
}

// chatLines wraps every message under its role label
func (p *Panel) chatLines(msgs []chat.Message, typing bool, width int) []panelLine {
	var out []panelLine
	add := func(label, text string, style tcell.Style) {
		indent := runewidth.StringWidth(label)
		for i, l := range wrap(text, width-indent) {
			if i == 0 {
				out = append(out, panelLine{label + l, style})
			} else {
				out = append(out, panelLine{runewidth.FillLeft(l, indent+runewidth.StringWidth(l)), style})
			}
		}
	}

	for _, m := range msgs {
		if m.Role == chat.RoleUser {
			add(userPrefix, m.Content, p.user)
		} else {
			add(assistantLabel, m.Content, p.assistant)
		}
	}
	if typing {
		add(assistantLabel, parameter.ChatTypingIndicator, p.accent)
	}
	return out
}

func (p *Panel) shellLines(lines []shell.Line, width int) []panelLine {
	var out []panelLine
	for _, l := range lines {
		style := p.assistant
		switch l.Kind {
		case shell.LineInput:
			style = p.user
		case shell.LineError:
			style = p.failure
		}
		for _, row := range hardWrap(l.Text, width) {
			out = append(out, panelLine{row, style})
		}
	}
	return out
}

func (p *Panel) drawFrame(sw render.CellWriter, x, y, w, h int) {
	right, bottom := x+w-1, y+h-1

	for cx := x + 1; cx < right; cx++ {
		sw.SetContent(cx, y, '─', nil, p.border)
		sw.SetContent(cx, bottom, '─', nil, p.border)
	}
	for cy := y + 1; cy < bottom; cy++ {
		sw.SetContent(x, cy, '│', nil, p.border)
		sw.SetContent(right, cy, '│', nil, p.border)
		sw.SetContent(x+1, cy, ' ', nil, p.border)
		sw.SetContent(right-1, cy, ' ', nil, p.border)
	}
	sw.SetContent(x, y, '┌', nil, p.border)
	sw.SetContent(right, y, '┐', nil, p.border)
	sw.SetContent(x, bottom, '└', nil, p.border)
	sw.SetContent(right, bottom, '┘', nil, p.border)

	drawText(sw, x+2, y, min(runewidth.StringWidth(p.title), w-4), p.title, p.accent)
}

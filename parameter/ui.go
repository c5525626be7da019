package parameter

import "time"

// Chat Panel
const (
	// ChatPanelWidth is the panel width in cells, including border
	ChatPanelWidth = 48
	// ChatPanelHeight is the panel height in cells, including border and input line
	ChatPanelHeight = 16
	// ChatPanelMargin is the gap between panel and screen edge
	ChatPanelMargin = 1

	// ChatThinkMin is the minimum simulated thinking delay before an assistant reply
	ChatThinkMin = 1 * time.Second
	// ChatThinkJitter is the random extra delay added on top of ChatThinkMin
	ChatThinkJitter = 1 * time.Second

	// ChatTypingIndicator is shown while a reply is pending
	ChatTypingIndicator = "thinking..."

	// ChatPrompt prefixes the input line
	ChatPrompt = "> "

	// ChatCursorChar is the input cursor character
	ChatCursorChar = '█'
)

// Surface
const (
	// SurfaceUnitsPerPixel maps half-block pixels to surface units, keeping link distances readable on small terminals
	SurfaceUnitsPerPixel = 8.0

	// HeaderText is the title line drawn over the field
	HeaderText = " visitor@portfolio:~$ ./welcome.sh   [tab] shell/chat  [esc] quit "
)

// Frame driving
const (
	// DefaultFrameRate is the target frames per second for the terminal app
	DefaultFrameRate = 60
)

// Shell Panel
const (
	// ShellPanelWidth is the shell panel width in cells, including border
	ShellPanelWidth = 76
	// ShellPanelHeight is the shell panel height in cells, including border and input line
	ShellPanelHeight = 20
	// ShellHistoryLimit caps retained shell lines, oldest dropped first
	ShellHistoryLimit = 500
	// ShellCursorChar is the shell input cursor
	ShellCursorChar = '_'
)

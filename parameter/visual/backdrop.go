package visual

// HalfUpper is the block used to pack two vertical pixels per cell: fg paints the top, bg the bottom
const HalfUpper = '▀'

// Backdrop gradient stops, top-left to bottom-right (gray-900, blue-900, purple-900)
var BackdropStops = []string{"#111827", "#1e3a8a", "#581c87"}

// Chat panel colors
var (
	ChatBorderHex    = "#3b82f6"
	ChatUserHex      = "#93c5fd"
	ChatAssistantHex = "#d1d5db"
	ChatAccentHex    = "#60a5fa"
	ChatPanelBgHex   = "#05070c"
	HeaderHex        = "#9ca3af"
)

// ShellErrorHex colors unknown-command replies
var ShellErrorHex = "#f87171"

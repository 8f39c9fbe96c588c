package styles

// Nerd Font icons used across CLI output.
const (
	IconSession  = "" // window
	IconTab      = "" // overlapping frames
	IconClock    = "" // clock
	IconPlay     = "" // play
	IconStop     = "" // stop
	IconCursor   = "" // chevron-right
	IconExpand   = "" // chevron-down
	IconCollapse = "" // chevron-up
	IconX        = "" // x
	IconConfig   = "" // config
)

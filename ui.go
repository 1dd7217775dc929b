package veil

// UIOpacity selects which of a UI element's color channels respond to
// opacity. Elements default to UIOpacityNone: border and background stay
// exactly as styled.
type UIOpacity uint8

const (
	UIOpacityNone       UIOpacity = iota // neither channel responds
	UIOpacityBorder                      // opacity controls the border color
	UIOpacityBackground                  // opacity controls the background color
	UIOpacityBoth                        // opacity controls border and background
)

// UIColors is the sink attribute for composite UI elements: a border and a
// background color plus a [UIOpacity] selector choosing which of the two
// the effective opacity drives. Register it with RegisterFader.
type UIColors struct {
	Mode       UIOpacity
	Border     Color
	Background Color
}

// ApplyOpacity fades the channels selected by Mode.
func (u *UIColors) ApplyOpacity(opacity float64) {
	switch u.Mode {
	case UIOpacityBorder:
		u.Border.A = opacity
	case UIOpacityBackground:
		u.Background.A = opacity
	case UIOpacityBoth:
		u.Border.A = opacity
		u.Background.A = opacity
	}
}

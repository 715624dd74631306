package types

// FDS132 panel geometry. The panel is 3 rows of 18 5x7 LED modules; with
// 6 pixel wide characters exactly 15 fit on a line.
const (
	// LineWidth is the number of characters per visible line.
	LineWidth = 15
	// Lines is the number of visible text lines.
	Lines = 3
	// VisibleSlots is the number of visible character slots (45).
	VisibleSlots = LineWidth * Lines
	// BufferSlots includes the lookahead slot written by the left scroller.
	BufferSlots = VisibleSlots + 1
	// LookaheadSlot is the index of the non-visible 46th slot.
	LookaheadSlot = VisibleSlots

	// Line offsets into the text buffer.
	TopLine    = 0
	MiddleLine = LineWidth
	BottomLine = 2 * LineWidth

	// PixelRows is the number of multiplexed LED rows.
	PixelRows = 7
	// PixelsPerChar is the number of shifted bits per character.
	PixelsPerChar = 6
	// PanelColumns is the number of LED columns on one line of the panel.
	PanelColumns = LineWidth * PixelsPerChar
	// ShiftsPerRow is the number of clock pulses per row pass.
	ShiftsPerRow = BufferSlots * PixelsPerChar
)


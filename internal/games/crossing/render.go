package crossing

import (
	"fmt"
	"math"

	"github.com/vovakirdan/tui-crossing/internal/core"
	"github.com/vovakirdan/tui-crossing/internal/games/crossing/engine"
)

// Board geometry in screen cells. One player step is CellW columns wide
// and one row is CellH lines tall.
const (
	CellW       = 6
	CellH       = 2
	BoardWidth  = engine.LayoutRows * CellW
	BoardHeight = engine.LayoutRows * CellH
	hudHeight   = 2
)

// Visual characters for rendering
const (
	WaterChar  = '~'
	BankChar   = '░'
	BushChar   = '♣'
	LogChar    = '='
	TurtleChar = 'o'
	CarChar    = '▆'
	TruckChar  = '█'
	SlotChar   = '◆'
)

var (
	playerTop  = []rune("▗▟██▙▖")
	playerBot  = []rune("▝▜██▛▘")
	splatTop   = []rune("\\ ** /")
	splatBot   = []rune("/ ** \\")
	emptySlot  = []rune("[    ]")
	filledSlot = []rune("[◆◆◆◆]")
)

// Overlay selects the message drawn over the board.
type Overlay struct {
	Title    string
	TooSmall bool
	Paused   bool
	Finished bool // Playback reached the end of its journal
}

// board maps world coordinates onto screen cells.
type board struct {
	dst    *core.Screen
	ox, oy int
	step   float64 // World units per CellW columns
}

// RenderWorld draws a snapshot with its HUD and overlays.
func RenderWorld(dst *core.Screen, cfg engine.Config, w engine.World, ov Overlay) {
	dst.Clear()
	renderHUD(dst, w, ov.Title)

	if ov.TooSmall {
		renderOverlay(dst, "Window too small",
			fmt.Sprintf("Need %dx%d", BoardWidth, BoardHeight+hudHeight))
		return
	}

	b := board{
		dst:  dst,
		ox:   max((dst.Width()-BoardWidth)/2, 0),
		oy:   hudHeight + max((dst.Height()-hudHeight-BoardHeight)/2, 0),
		step: cfg.Step,
	}

	b.drawTerrain(cfg, w)
	for _, body := range w.Platforms {
		b.drawBody(body)
	}
	for _, body := range w.Obstacles {
		b.drawBody(body)
	}
	b.drawPlayer(w.Player, w.GameOver)

	switch {
	case ov.Finished:
		renderOverlay(dst, "Replay finished", fmt.Sprintf("Score: %d  Level: %d", w.Score, w.Level))
	case w.GameOver:
		renderOverlay(dst, "Splat!", "Press R to restart")
	case ov.Paused:
		renderOverlay(dst, "Paused", "Press P to continue")
	}
}

// renderHUD draws the top status bar.
func renderHUD(dst *core.Screen, w engine.World, title string) {
	hud := fmt.Sprintf(" %s  Score: %d  High: %d  Level: %d  Slots: %d/%d",
		title, w.Score, w.HighScore, w.Level, len(w.Filled), engine.SlotCount)
	dst.DrawTextColored(0, 0, hud, core.ColorWhite)
	dst.DrawHLine(0, 1, dst.Width(), '─')
}

// rowTerrain returns the fill rune and colour of a row.
func rowTerrain(row int) (rune, core.Color) {
	switch {
	case row >= engine.RiverTop && row <= engine.RiverBottom:
		return WaterChar, core.ColorBlue
	case row == engine.MedianRow || row == engine.StartRow:
		return BankChar, core.ColorGray
	default:
		return ' ', core.ColorDefault
	}
}

func (b board) drawTerrain(cfg engine.Config, w engine.World) {
	for row := range engine.LayoutRows {
		fill, color := rowTerrain(row)
		b.dst.DrawRect(core.NewRect(b.ox, b.oy+row*CellH, BoardWidth, CellH), fill, color)
	}

	// Goal row: bushes between the slots
	for _, x := range engine.Bushes(cfg) {
		col := b.col(x)
		b.dst.DrawRect(core.NewRect(b.ox+col, b.oy, CellW, CellH), BushChar, core.ColorGreen)
	}
	for _, slot := range w.Targets {
		glyph, color := emptySlot, core.ColorGray
		if w.IsFilled(slot.Slot) {
			glyph, color = filledSlot, core.ColorBrightYellow
		}
		col := b.col(slot.X)
		for line := range CellH {
			b.drawRunes(col, line, glyph, color)
		}
	}
}

func (b board) drawBody(body engine.Body) {
	glyph, color := bodyStyle(body)
	row := int(body.Y / b.step)
	from := max(b.col(body.X), 0)
	to := min(int(math.Ceil(body.Right()*CellW/b.step)), BoardWidth)
	for x := from; x < to; x++ {
		for line := range CellH {
			b.dst.SetColored(b.ox+x, b.oy+row*CellH+line, glyph, color)
		}
	}
}

func bodyStyle(body engine.Body) (rune, core.Color) {
	switch body.Kind {
	case engine.KindCar:
		if body.Rightward {
			return CarChar, core.ColorRed
		}
		return CarChar, core.ColorYellow
	case engine.KindTruck:
		return TruckChar, core.ColorMagenta
	case engine.KindLog:
		return LogChar, core.ColorBrown
	case engine.KindTurtle:
		return TurtleChar, core.ColorGreen
	default:
		return SlotChar, core.ColorBrightYellow
	}
}

func (b board) drawPlayer(p engine.Player, dead bool) {
	col := b.col(p.X)
	row := int(p.Y / b.step)
	top, bot, color := playerTop, playerBot, core.ColorBrightGreen
	if dead {
		top, bot, color = splatTop, splatBot, core.ColorRed
	}
	b.drawRunes(col, row*CellH, top, color)
	b.drawRunes(col, row*CellH+1, bot, color)
}

// drawRunes writes a glyph at board coordinates, clipped to the board.
func (b board) drawRunes(col, line int, glyph []rune, color core.Color) {
	for i, r := range glyph {
		if x := col + i; x >= 0 && x < BoardWidth {
			b.dst.SetColored(b.ox+x, b.oy+line, r, color)
		}
	}
}

// col converts a world x coordinate into a board column.
func (b board) col(x float64) int {
	return int(math.Floor(x * CellW / b.step))
}

// renderOverlay draws a centered boxed message.
func renderOverlay(dst *core.Screen, line1, line2 string) {
	boxW := max(len([]rune(line1)), len([]rune(line2))) + 4
	boxH := 5
	box := core.NewRect((dst.Width()-boxW)/2, (dst.Height()-boxH)/2, boxW, boxH)

	dst.DrawRect(box, ' ', core.ColorDefault)
	dst.DrawBox(box)
	drawCentered(dst, box, line1, 1)
	drawCentered(dst, box, line2, 3)
}

func drawCentered(dst *core.Screen, box core.Rect, text string, dy int) {
	x := box.X + (box.W-len([]rune(text)))/2
	dst.DrawTextColored(x, box.Y+dy, text, core.ColorWhite)
}

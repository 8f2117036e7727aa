package tetris

import (
	"fmt"

	"github.com/vovakirdan/tui-tetris/internal/core"
)

// Layout constants, in terminal characters.
const (
	cellW      = 2 // each grid cell is two characters wide
	hudHeight  = 2
	panelGap   = 2
	panelWidth = 4*cellW + 2
	previewH   = 4 + 2
)

// kindColors maps each kind to its block color.
var kindColors = [KindCount + 1]core.Color{
	KindI: core.ColorPink,
	KindJ: core.ColorSky,
	KindL: core.ColorBrightGreen,
	KindO: core.ColorBrightMagenta,
	KindS: core.ColorOrange,
	KindT: core.ColorBrightYellow,
	KindZ: core.ColorBrightBlue,
}

// KindColor returns the screen color of a kind.
func KindColor(k Kind) core.Color {
	if !k.Valid() {
		return core.ColorDefault
	}
	return kindColors[k]
}

// MinScreenSize returns the smallest terminal that fits the well,
// the side panel and the HUD.
func MinScreenSize(rows, cols int) (w, h int) {
	return cols*cellW + 2 + panelGap + panelWidth, rows + 2 + hudHeight
}

// screenRenderer draws a session into a core.Screen with the well's
// top-left border corner at (x, y).
type screenRenderer struct {
	dst   *core.Screen
	x, y  int
	wellW int
}

func (r screenRenderer) cell(gx, gy int, k Kind) {
	sx := r.x + 1 + gx*cellW
	sy := r.y + 1 + gy
	c := KindColor(k)
	r.dst.SetColor(sx, sy, '█', c)
	r.dst.SetColor(sx+1, sy, '█', c)
}

// DrawBoard draws the well border and every locked block.
func (r screenRenderer) DrawBoard(g *Grid) {
	r.dst.DrawBox(core.NewRect(r.x, r.y, g.Cols()*cellW+2, g.Rows()+2), core.ColorGray)
	for y := range g.Rows() {
		for x := range g.Cols() {
			c := g.At(x, y)
			if c.IsEmpty() {
				r.dst.SetColor(r.x+1+x*cellW, r.y+1+y, '·', core.ColorGray)
				continue
			}
			r.cell(x, y, c.Kind())
		}
	}
}

// DrawPiece draws the falling piece. Blocks above the well are skipped.
func (r screenRenderer) DrawPiece(p *Piece) {
	for _, pt := range p.Blocks() {
		if pt.Y < 0 {
			continue
		}
		r.cell(pt.X, pt.Y, p.Kind)
	}
}

// DrawPreview draws the next piece centered in a 4x4 box to the right
// of the well.
func (r screenRenderer) DrawPreview(p *Piece) {
	px, py := r.panelOrigin()
	r.dst.DrawBox(core.NewRect(px, py, panelWidth, previewH), core.ColorGray)
	r.dst.DrawText(px+2, py, " NEXT ")

	ox := px + 1 + (4 - p.Shape.Width())
	oy := py + 1 + (4-p.Shape.Height())/2
	c := KindColor(p.Kind)
	for y, row := range p.Shape {
		for x, v := range row {
			if v.IsEmpty() {
				continue
			}
			r.dst.SetColor(ox+x*cellW, oy+y, '█', c)
			r.dst.SetColor(ox+x*cellW+1, oy+y, '█', c)
		}
	}
}

// panelOrigin returns the top-left corner of the side panel.
func (r screenRenderer) panelOrigin() (int, int) {
	return r.x + r.wellW + panelGap, r.y
}

// Render draws the whole game into dst.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()
	if g.session == nil {
		return
	}

	grid := g.session.Grid()
	minW, minH := MinScreenSize(grid.Rows(), grid.Cols())
	if dst.Width() < minW || dst.Height() < minH {
		g.renderTooSmall(dst, minW, minH)
		return
	}

	g.renderHUD(dst)

	wellW := grid.Cols()*cellW + 2
	x := (dst.Width() - minW) / 2
	y := hudHeight + (dst.Height()-minH)/2
	r := screenRenderer{dst: dst, x: x, y: y, wellW: wellW}
	g.session.Render(r)
	g.renderStats(dst, r)

	p := g.session.Progress()
	switch g.session.State() {
	case StateReady:
		renderOverlay(dst, "TETRIS", "Press Enter to start")
	case StatePaused:
		renderOverlay(dst, "Paused", "Press P to continue")
	case StateGameOver:
		renderOverlay(dst, "Game Over", fmt.Sprintf("Score: %d  -  Press R to restart", p.Score))
	}
}

// renderHUD draws the top status bar.
func (g *Game) renderHUD(dst *core.Screen) {
	p := g.session.Progress()
	hud := fmt.Sprintf(" Tetris | Score: %d  Level: %d  Lines: %d", p.Score, p.Level, p.Lines)
	dst.DrawText(0, 0, hud)
	for x := range dst.Width() {
		dst.Set(x, 1, '─')
	}
}

// renderStats draws the counters under the preview box.
func (g *Game) renderStats(dst *core.Screen, r screenRenderer) {
	px, py := r.panelOrigin()
	p := g.session.Progress()
	y := py + previewH + 1
	lines := []struct {
		label string
		value int
	}{
		{"SCORE", p.Score},
		{"LEVEL", p.Level},
		{"LINES", p.Lines},
	}
	for _, l := range lines {
		if y+1 >= dst.Height() {
			return
		}
		dst.DrawTextColor(px, y, l.label, core.ColorGray)
		dst.DrawTextColor(px, y+1, fmt.Sprintf("%d", l.value), core.ColorBrightWhite)
		y += 3
	}
}

// renderTooSmall tells the player how big the terminal must be.
func (g *Game) renderTooSmall(dst *core.Screen, minW, minH int) {
	h := dst.Height()
	dst.DrawTextCentered(h/2-1, "Window too small")
	dst.DrawTextCentered(h/2, fmt.Sprintf("Need %dx%d, have %dx%d", minW, minH, dst.Width(), h))
	dst.DrawTextCentered(h/2+1, "Resize to continue")
}

// renderOverlay draws a centered message box.
func renderOverlay(dst *core.Screen, line1, line2 string) {
	maxLen := max(len([]rune(line1)), len([]rune(line2)))
	boxW := maxLen + 4
	boxH := 5
	boxX := (dst.Width() - boxW) / 2
	boxY := (dst.Height() - boxH) / 2

	for y := boxY; y < boxY+boxH; y++ {
		for x := boxX; x < boxX+boxW; x++ {
			isTopOrBottom := y == boxY || y == boxY+boxH-1
			isLeftOrRight := x == boxX || x == boxX+boxW-1
			switch {
			case isTopOrBottom && isLeftOrRight:
				dst.Set(x, y, '+')
			case isTopOrBottom:
				dst.Set(x, y, '-')
			case isLeftOrRight:
				dst.Set(x, y, '|')
			default:
				dst.Set(x, y, ' ')
			}
		}
	}

	dst.DrawTextCentered(boxY+1, line1)
	dst.DrawTextCentered(boxY+3, line2)
}

package render

import (
	"github.com/gdamore/tcell/v2"

	"navmap"
)

var (
	termBorderStyle   = tcell.StyleDefault.Foreground(tcell.ColorWhite)
	termObstacleStyle = tcell.StyleDefault.Foreground(tcell.ColorGray)
	termStartStyle    = tcell.StyleDefault.Foreground(tcell.ColorRed).Bold(true)
	termGoalStyle     = tcell.StyleDefault.Foreground(tcell.ColorAqua).Bold(true)
)

// Terminal renders the map as a cell grid in the terminal and blocks until
// the user presses Escape, q, or Ctrl+C
func Terminal(m *navmap.ObstacleMap, start, goal navmap.Point) error {
	screen, err := tcell.NewScreen()
	if err != nil {
		return err
	}
	if err := screen.Init(); err != nil {
		return err
	}
	defer screen.Fini()

	drawTerminal(screen, m, start, goal)

	for {
		switch ev := screen.PollEvent().(type) {
		case *tcell.EventResize:
			screen.Sync()
			drawTerminal(screen, m, start, goal)
		case *tcell.EventKey:
			if ev.Key() == tcell.KeyEscape || ev.Key() == tcell.KeyCtrlC || ev.Rune() == 'q' {
				return nil
			}
		}
	}
}

func drawTerminal(screen tcell.Screen, m *navmap.ObstacleMap, start, goal navmap.Point) {
	screen.Clear()

	width, height := screen.Size()
	cols, rows := width-2, height-2
	if cols < 2 || rows < 2 {
		screen.Show()
		return
	}

	b := m.Bounds()
	spanX := b.Max.X() - b.Min.X()
	spanY := b.Max.Y() - b.Min.Y()

	// Sample the map at each cell center. Terminal rows grow downward.
	cellPoint := func(col, row int) navmap.Point {
		return navmap.Point{
			X: b.Min.X() + (float64(col)+0.5)*spanX/float64(cols),
			Y: b.Max.Y() - (float64(row)+0.5)*spanY/float64(rows),
		}
	}

	for row := 0; row < rows; row++ {
		for col := 0; col < cols; col++ {
			if _, _, ok := m.ObstacleAt(cellPoint(col, row)); ok {
				screen.SetContent(col+1, row+1, '█', nil, termObstacleStyle)
			}
		}
	}

	drawTermBorder(screen, cols, rows)

	toCell := func(p navmap.Point) (int, int) {
		col := int((p.X - b.Min.X()) / spanX * float64(cols))
		row := int((b.Max.Y() - p.Y) / spanY * float64(rows))
		return clampInt(col, 0, cols-1) + 1, clampInt(row, 0, rows-1) + 1
	}

	sc, sr := toCell(start)
	gc, gr := toCell(goal)
	screen.SetContent(sc, sr, 'S', nil, termStartStyle)
	screen.SetContent(gc, gr, 'G', nil, termGoalStyle)

	screen.Show()
}

func drawTermBorder(screen tcell.Screen, cols, rows int) {
	for col := 0; col <= cols+1; col++ {
		screen.SetContent(col, 0, '─', nil, termBorderStyle)
		screen.SetContent(col, rows+1, '─', nil, termBorderStyle)
	}
	for row := 0; row <= rows+1; row++ {
		screen.SetContent(0, row, '│', nil, termBorderStyle)
		screen.SetContent(cols+1, row, '│', nil, termBorderStyle)
	}
	screen.SetContent(0, 0, '┌', nil, termBorderStyle)
	screen.SetContent(cols+1, 0, '┐', nil, termBorderStyle)
	screen.SetContent(0, rows+1, '└', nil, termBorderStyle)
	screen.SetContent(cols+1, rows+1, '┘', nil, termBorderStyle)
}

func clampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

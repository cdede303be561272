package hill

import (
	"fmt"
	"io"
	"time"

	"github.com/fatih/color"

	"github.com/katalvlaran/hillwalk/geom"
	"github.com/katalvlaran/hillwalk/heightmap"
	"github.com/katalvlaran/hillwalk/worldmap"
)

// clearScreen moves the cursor home and clears the terminal.
const clearScreen = "\x1b[2J\x1b[1;1H"

type tile struct {
	ch      rune
	visited bool
}

// Animator paints BFS layers onto a copy of the input text and writes one
// frame per layer. It only observes: the search result never depends on it.
type Animator struct {
	out     io.Writer
	delay   time.Duration
	board   *worldmap.WorldMap[tile]
	visited *color.Color
	frames  int
	err     error
}

// NewAnimator prepares an animator for hm writing frames to out, sleeping
// delay between frames (0 disables sleeping).
func NewAnimator(hm *heightmap.Heightmap, out io.Writer, delay time.Duration) (*Animator, error) {
	board, err := worldmap.New(hm.Height(), hm.Width(), tile{ch: '.'}, geom.Coord{})
	if err != nil {
		return nil, err
	}
	for y, row := range hm.Rows {
		for x, ch := range row {
			if err := board.Set(geom.C(x, y), tile{ch: ch}); err != nil {
				return nil, err
			}
		}
	}
	visited := color.New(color.FgBlue, color.Bold)
	visited.EnableColor()

	return &Animator{out: out, delay: delay, board: board, visited: visited}, nil
}

// OnLayer marks the layer visited and writes a frame. It satisfies bfs.LayerFunc.
// Write failures are remembered and reported by Err; later frames are skipped.
func (a *Animator) OnLayer(_ int, layer []geom.Coord) {
	if a.err != nil {
		return
	}
	for _, c := range layer {
		t, err := a.board.Get(c)
		if err != nil {
			continue
		}
		t.visited = true
		_ = a.board.Set(c, t)
	}
	if _, err := fmt.Fprintf(a.out, "%s%s\n", clearScreen, a.Frame()); err != nil {
		a.err = err
		return
	}
	a.frames++
	if a.delay > 0 {
		time.Sleep(a.delay)
	}
}

// Frame renders the current board, visited cells highlighted.
func (a *Animator) Frame() string {
	return a.board.RenderFunc(func(_ geom.Coord, t tile) string {
		if t.visited {
			return a.visited.Sprint(string(t.ch))
		}
		return string(t.ch)
	})
}

// Frames returns how many frames were written.
func (a *Animator) Frames() int { return a.frames }

// Err returns the first write error, if any.
func (a *Animator) Err() error { return a.err }

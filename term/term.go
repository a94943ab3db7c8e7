// Package term plays the game in a terminal. Every board cell is two
// columns wide and one row high; row zero holds the score.
package term

import (
	"fmt"
	"time"

	"jedi-snake/game"
	"jedi-snake/game/types"

	"github.com/nsf/termbox-go"
	"go.uber.org/zap"
)

const eventBuffer = 64

// Screen is the termbox backend.
type Screen struct {
	geom   types.Geometry
	events chan termbox.Event
	done   chan struct{}
	frames map[types.Point]termbox.Attribute
	last   time.Time
	log    *zap.SugaredLogger
}

// Open takes over the terminal. It fails when the terminal is smaller
// than the board.
func Open(cfg types.Config, log *zap.SugaredLogger) (*Screen, error) {
	if err := termbox.Init(); err != nil {
		return nil, fmt.Errorf("termbox init: %w", err)
	}
	geom := types.NewGeometry(cfg)
	w, h := termbox.Size()
	if w < geom.Cols*2 || h < geom.Rows+1 {
		termbox.Close()
		return nil, fmt.Errorf("terminal is %dx%d, need at least %dx%d", w, h, geom.Cols*2, geom.Rows+1)
	}

	s := &Screen{
		geom:   geom,
		events: make(chan termbox.Event, eventBuffer),
		done:   make(chan struct{}),
		frames: make(map[types.Point]termbox.Attribute),
		last:   time.Now(),
		log:    log,
	}
	go s.pump()
	log.Infow("terminal opened", "width", w, "height", h)
	return s, nil
}

// pump forwards termbox events until Close interrupts it.
func (s *Screen) pump() {
	for {
		ev := termbox.PollEvent()
		if ev.Type == termbox.EventInterrupt {
			return
		}
		select {
		case s.events <- ev:
		case <-s.done:
			return
		default:
			// Full buffer: the game only reads one move per tick anyway
		}
	}
}

func (s *Screen) Close() {
	close(s.done)
	termbox.Interrupt()
	termbox.Close()
	s.log.Info("terminal closed")
}

// Backend wires the screen into a game backend.
func (s *Screen) Backend(sound game.SoundPlayer) game.Backend {
	return game.Backend{
		Renderer: s,
		Input:    s,
		Clock:    s,
		Sound:    sound,
	}
}

// PollEvents drains the buffered terminal events without blocking.
func (s *Screen) PollEvents() []types.Event {
	var out []types.Event
	for {
		select {
		case ev := <-s.events:
			if e, ok := translateEvent(ev); ok {
				out = append(out, e)
			}
		default:
			return out
		}
	}
}

func translateEvent(ev termbox.Event) (types.Event, bool) {
	if ev.Type != termbox.EventKey {
		return types.Event{}, false
	}
	switch ev.Key {
	case termbox.KeyCtrlC:
		return types.QuitEvent(), true
	case termbox.KeyEsc:
		return types.KeyEvent(types.KeyEscape), true
	case termbox.KeyArrowUp:
		return types.KeyEvent(types.KeyUp), true
	case termbox.KeyArrowDown:
		return types.KeyEvent(types.KeyDown), true
	case termbox.KeyArrowLeft:
		return types.KeyEvent(types.KeyLeft), true
	case termbox.KeyArrowRight:
		return types.KeyEvent(types.KeyRight), true
	}
	switch ev.Ch {
	case 'w', 'W':
		return types.KeyEvent(types.KeyW), true
	case 'a', 'A':
		return types.KeyEvent(types.KeyA), true
	case 'd', 'D':
		return types.KeyEvent(types.KeyD), true
	case 'x', 'X':
		return types.KeyEvent(types.KeyX), true
	case '=', '+':
		return types.KeyEvent(types.KeyEqual), true
	case '-', '_':
		return types.KeyEvent(types.KeyMinus), true
	}
	return types.KeyEvent(types.KeyOther), true
}

// Tick sleeps out the rest of the current frame.
func (s *Screen) Tick(ticksPerSecond int) {
	frame := time.Second / time.Duration(max(1, ticksPerSecond))
	if elapsed := time.Since(s.last); elapsed < frame {
		time.Sleep(frame - elapsed)
	}
	s.last = time.Now()
}

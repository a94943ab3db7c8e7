package sound

import (
	"fmt"
	"io"
	"math"
	"time"

	"jedi-snake/game/types"

	"github.com/hajimehoshi/oto/v2"
	"go.uber.org/zap"
)

const (
	SampleRate   = 44100
	ChannelCount = 2
	volume       = 0.6
)

// Player renders effects ahead of time and plays each on its own oto player.
type Player struct {
	ctx     *oto.Context
	ready   chan struct{}
	effects map[types.Sound][]byte
	log     *zap.SugaredLogger
}

// New opens the audio device. The caller should fall back to silence on error.
func New(log *zap.SugaredLogger) (*Player, error) {
	ctx, ready, err := oto.NewContext(SampleRate, ChannelCount, oto.FormatFloat32LE)
	if err != nil {
		return nil, fmt.Errorf("open audio device: %w", err)
	}
	return &Player{
		ctx:   ctx,
		ready: ready,
		effects: map[types.Sound][]byte{
			types.SoundJedi:     Synthesize(types.SoundJedi),
			types.SoundSith:     Synthesize(types.SoundSith),
			types.SoundGameOver: Synthesize(types.SoundGameOver),
		},
		log: log,
	}, nil
}

// Play starts the effect and returns at once. Effects requested before the
// device is ready are dropped.
func (p *Player) Play(s types.Sound) {
	select {
	case <-p.ready:
	default:
		return
	}
	samples, ok := p.effects[s]
	if !ok || len(samples) == 0 {
		return
	}
	go func() {
		player := p.ctx.NewPlayer(&soundReader{data: samples})
		player.SetVolume(volume)
		player.Play()
		for player.IsPlaying() {
			time.Sleep(10 * time.Millisecond)
		}
		if err := player.Close(); err != nil {
			p.log.Debugw("audio player close failed", "error", err)
		}
	}()
}

type soundReader struct {
	data []byte
	pos  int
}

func (r *soundReader) Read(b []byte) (int, error) {
	if r.pos >= len(r.data) {
		return 0, io.EOF
	}
	n := copy(b, r.data[r.pos:])
	r.pos += n
	return n, nil
}

// Synthesize builds the stereo float32 buffer of an effect.
func Synthesize(s types.Sound) []byte {
	switch s {
	case types.SoundJedi:
		return chirp(0.09, 480, 1200)
	case types.SoundSith:
		return chirp(0.18, 320, 90)
	case types.SoundGameOver:
		return chord(0.75, []float64{329.63, 261.63, 220.00}, 0.14)
	default:
		return nil
	}
}

// chirp sweeps linearly from f0 to f1 under a fast attack, exponential decay.
func chirp(dur, f0, f1 float64) []byte {
	n := int(dur * SampleRate)
	buf := make([]byte, n*8)
	phase := 0.0
	for i := 0; i < n; i++ {
		p := float64(i) / float64(n)
		freq := f0 + (f1-f0)*p
		phase += 2 * math.Pi * freq / SampleRate
		env := math.Min(1, p*50) * math.Exp(-p*4)
		putStereoF32(buf, i, math.Sin(phase)*env*0.5)
	}
	return buf
}

// chord plays notes one after another, each sustaining to the end.
func chord(dur float64, notes []float64, stagger float64) []byte {
	n := int(dur * SampleRate)
	mix := make([]float64, n)
	for k, freq := range notes {
		start := int(float64(k) * stagger * SampleRate)
		for i := start; i < n; i++ {
			t := float64(i-start) / SampleRate
			np := float64(i-start) / float64(n-start)
			env := math.Min(1, np*100) * (1 - np)
			mix[i] += math.Sin(2*math.Pi*freq*t) * env * 0.3
		}
	}
	buf := make([]byte, n*8)
	for i, v := range mix {
		putStereoF32(buf, i, math.Tanh(v))
	}
	return buf
}

// putStereoF32 writes a [-1,1] sample as float32 LE to both channels of frame i.
func putStereoF32(buf []byte, i int, sample float64) {
	v := math.Float32bits(float32(sample))
	for c := 0; c < ChannelCount; c++ {
		o := i*8 + c*4
		buf[o] = byte(v)
		buf[o+1] = byte(v >> 8)
		buf[o+2] = byte(v >> 16)
		buf[o+3] = byte(v >> 24)
	}
}

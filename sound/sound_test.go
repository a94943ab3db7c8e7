package sound

import (
	"encoding/binary"
	"io"
	"math"
	"testing"

	"jedi-snake/game/types"
)

func TestSynthesizeLengths(t *testing.T) {
	cases := []struct {
		sound types.Sound
		dur   float64
	}{
		{types.SoundJedi, 0.09},
		{types.SoundSith, 0.18},
		{types.SoundGameOver, 0.75},
	}
	for _, tc := range cases {
		buf := Synthesize(tc.sound)
		want := int(tc.dur*SampleRate) * 8
		if len(buf) != want {
			t.Errorf("%v: %d bytes, want %d", tc.sound, len(buf), want)
		}
	}
	if Synthesize(types.Sound(99)) != nil {
		t.Error("unknown sound produced samples")
	}
}

func TestSynthesizeInRange(t *testing.T) {
	for _, s := range []types.Sound{types.SoundJedi, types.SoundSith, types.SoundGameOver} {
		buf := Synthesize(s)
		for o := 0; o+8 <= len(buf); o += 8 {
			l := math.Float32frombits(binary.LittleEndian.Uint32(buf[o:]))
			r := math.Float32frombits(binary.LittleEndian.Uint32(buf[o+4:]))
			if l != r {
				t.Fatalf("%v: channels differ at frame %d", s, o/8)
			}
			if l < -1 || l > 1 || math.IsNaN(float64(l)) {
				t.Fatalf("%v: sample %v out of range at frame %d", s, l, o/8)
			}
		}
	}
}

func TestSoundReader(t *testing.T) {
	r := &soundReader{data: []byte{1, 2, 3, 4, 5}}
	got, err := io.ReadAll(r)
	if err != nil {
		t.Fatalf("ReadAll: %v", err)
	}
	if len(got) != 5 || got[4] != 5 {
		t.Errorf("read %v", got)
	}
	if n, err := r.Read(make([]byte, 4)); n != 0 || err != io.EOF {
		t.Errorf("read after end = %d, %v", n, err)
	}
}

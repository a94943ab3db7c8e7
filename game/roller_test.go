package game

import (
	"testing"

	"jedi-snake/game/types"
)

func TestFarewell(t *testing.T) {
	cases := []struct {
		score   int
		verdict string
		points  string
	}{
		{0, "You Are Still A Padawan, You Will Improve Soon!", "You earned 0 points."},
		{1, "You Are Still A Padawan, You Will Improve Soon!", "You earned 1 point."},
		{9, "You Are Still A Padawan, You Will Improve Soon!", "You earned 9 points."},
		{10, "Good Game!", "You earned 10 points."},
		{50, "Well Done!", "You earned 50 points."},
		{299, "Well Done!", "You earned 299 points."},
		{300, "You Seem To Be Force Sensitive...", "You earned 300 points!"},
		{1000, "Wow!! The Force Is Very Strong With You!", "You earned 1000 points!"},
	}
	for _, tc := range cases {
		lines := Farewell(tc.score)
		if len(lines) != 5 {
			t.Fatalf("Farewell(%d) has %d lines", tc.score, len(lines))
		}
		if lines[0] != tc.verdict || lines[2] != tc.points {
			t.Errorf("Farewell(%d) = %q", tc.score, lines)
		}
		if lines[4] != "Press Any Key..." {
			t.Errorf("Farewell(%d) ends with %q", tc.score, lines[4])
		}
	}
}

func TestGreetingTitle(t *testing.T) {
	lines := Greeting()
	if lines[0] != "Gather The Jedi, Avoid The Sith!" || lines[len(lines)-1] != "Press Any Key To Start" {
		t.Errorf("greeting = %q", lines)
	}
}

func TestRollerScrollsOnePixelPerFrame(t *testing.T) {
	geom := types.NewGeometry(types.DefaultConfig())
	r := &recordingRenderer{}
	rl := NewRoller([]string{"ab", "cd"}, geom, r)

	rl.Frame(r)
	if len(r.texts) != 2 {
		t.Fatalf("drew %d lines", len(r.texts))
	}
	// title is 28px tall and 28px wide with the fake metrics
	first := r.texts[0]
	if first.at != (types.Point{X: 616, Y: 689}) || first.size != TitleFontSize {
		t.Errorf("title drawn at %v size %d", first.at, first.size)
	}
	if r.texts[1].size != LineFontSize {
		t.Errorf("line drawn with size %d", r.texts[1].size)
	}

	rl.Frame(r)
	if got := r.texts[0].at.Y; got != 688 {
		t.Errorf("title y = %d after two frames, want 688", got)
	}
}

func TestRollerRewindsAfterLastLineLeaves(t *testing.T) {
	geom := types.NewGeometry(types.DefaultConfig())
	r := &recordingRenderer{}
	rl := NewRoller([]string{"x"}, geom, r)

	// centre starts at 675+28 and the line is gone once its bottom passes 0
	for i := 0; i < 717; i++ {
		rl.Frame(r)
	}
	if got := r.texts[0].at.Y; got != -27 {
		t.Fatalf("last visible frame y = %d, want -27", got)
	}
	rl.Frame(r)
	if got := r.texts[0].at.Y; got != 689 {
		t.Errorf("after rewind y = %d, want 689", got)
	}
}

func TestRoll(t *testing.T) {
	geom := types.NewGeometry(types.DefaultConfig())
	cases := []struct {
		name     string
		batches  [][]types.Event
		want     MenuAction
		presents int
	}{
		{"key continues", [][]types.Event{nil, nil, {types.KeyEvent(types.KeyA)}}, MenuContinue, 2},
		{"escape quits", [][]types.Event{{types.KeyEvent(types.KeyEscape)}}, MenuQuit, 0},
		{"window close quits", [][]types.Event{nil, {types.QuitEvent()}}, MenuQuit, 1},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			r := &recordingRenderer{}
			clock := &countingClock{}
			be := Backend{Renderer: r, Input: &scriptedInput{batches: tc.batches}, Clock: clock}
			if got := Roll(Farewell(3), geom, be); got != tc.want {
				t.Fatalf("Roll = %v, want %v", got, tc.want)
			}
			if r.presents != tc.presents {
				t.Errorf("presented %d frames, want %d", r.presents, tc.presents)
			}
			for _, tps := range clock.rates {
				if tps != RollerFPS {
					t.Errorf("roller ticked at %d", tps)
				}
			}
		})
	}
}

package entity

import (
	"reflect"
	"testing"

	"jedi-snake/game/types"
)

func TestNewSnakeExtendsLeft(t *testing.T) {
	s := NewSnake(types.Point{X: 90, Y: 90}, 3, 45)
	want := []types.Point{{X: 90, Y: 90}, {X: 45, Y: 90}, {X: 0, Y: 90}}
	if !reflect.DeepEqual(s.Body, want) {
		t.Fatalf("body = %v, want %v", s.Body, want)
	}
	if s.Direction != types.Right {
		t.Errorf("direction = %v, want right", s.Direction)
	}
}

func TestMoveAndRemoveTail(t *testing.T) {
	s := NewSnake(types.Point{X: 90, Y: 90}, 3, 45)
	s.Move(s.NextHead(45))
	if s.Len() != 4 || s.GetHead() != (types.Point{X: 135, Y: 90}) {
		t.Fatalf("after Move body = %v", s.Body)
	}
	s.RemoveTail()
	want := []types.Point{{X: 135, Y: 90}, {X: 90, Y: 90}, {X: 45, Y: 90}}
	if !reflect.DeepEqual(s.Body, want) {
		t.Errorf("body = %v, want %v", s.Body, want)
	}
}

func TestTruncate(t *testing.T) {
	s := NewSnake(types.Point{X: 450, Y: 0}, 9, 45)
	s.Truncate(3)
	if s.Len() != 3 || s.GetHead() != (types.Point{X: 450, Y: 0}) {
		t.Errorf("body = %v", s.Body)
	}
	s.Truncate(10)
	if s.Len() != 3 {
		t.Errorf("Truncate beyond length changed the snake: %v", s.Body)
	}
}

func TestSetDirectionIgnoresReversal(t *testing.T) {
	s := NewSnake(types.Point{X: 90, Y: 90}, 3, 45)
	s.SetDirection(types.Left)
	if s.Direction != types.Right {
		t.Errorf("reversal accepted, direction = %v", s.Direction)
	}
	s.SetDirection(types.Up)
	if s.Direction != types.Up {
		t.Errorf("turn rejected, direction = %v", s.Direction)
	}
}

func TestContains(t *testing.T) {
	s := NewSnake(types.Point{X: 90, Y: 90}, 3, 45)
	if !s.Contains(types.Point{X: 0, Y: 90}) {
		t.Error("tail not found")
	}
	if s.Contains(types.Point{X: 135, Y: 90}) {
		t.Error("cell ahead of head reported as body")
	}
}

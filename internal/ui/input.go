package ui

import (
	"github.com/gdamore/tcell/v2"

	"github.com/eevee/flax/internal/geometry"
)

// Раскладка движения: стрелки и vi-клавиши, с диагоналями yubn.
var keyDirections = map[tcell.Key]geometry.Direction{
	tcell.KeyUp:    geometry.Up,
	tcell.KeyDown:  geometry.Down,
	tcell.KeyLeft:  geometry.Left,
	tcell.KeyRight: geometry.Right,
}

var runeDirections = map[rune]geometry.Direction{
	'h': geometry.Left,
	'j': geometry.Down,
	'k': geometry.Up,
	'l': geometry.Right,
	'y': geometry.UpLeft,
	'u': geometry.UpRight,
	'b': geometry.DownLeft,
	'n': geometry.DownRight,
}

// directionFor переводит клавишу в направление движения.
func directionFor(ev *tcell.EventKey) (geometry.Direction, bool) {
	if dir, ok := keyDirections[ev.Key()]; ok {
		return dir, true
	}
	if ev.Key() == tcell.KeyRune {
		dir, ok := runeDirections[ev.Rune()]
		return dir, ok
	}
	return 0, false
}

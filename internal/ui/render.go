package ui

import (
	"fmt"

	"github.com/gdamore/tcell/v2"
	runewidth "github.com/mattn/go-runewidth"

	"github.com/eevee/flax/internal/entity"
	"github.com/eevee/flax/internal/gamemap"
	"github.com/eevee/flax/internal/geometry"
)

func (u *UI) draw() {
	u.screen.Clear()

	width, height := u.screen.Size()
	viewHeight := height - statusRows - messageRows
	if viewHeight < 1 {
		viewHeight = 1
	}

	u.updateViewport(width, viewHeight)
	u.drawMap()
	u.drawStatus(viewHeight, width)
	u.drawMessages(viewHeight+statusRows, width)

	u.screen.Show()
}

// updateViewport двигает окно просмотра за игроком: интервал каждой оси
// масштабируется под экран, подтягивается к игроку с отступом и
// зажимается в границах карты.
func (u *UI) updateViewport(viewWidth, viewHeight int) {
	m := u.world.Map()
	if viewWidth > m.Size().Width {
		viewWidth = m.Size().Width
	}
	if viewHeight > m.Size().Height {
		viewHeight = m.Size().Height
	}

	player := geometry.Origin()
	if tile, err := m.Find(u.world.Player()); err == nil {
		player = tile.Position()
	}

	u.viewX = followSpan(u.viewX, viewWidth, player.X, m.Size().Width)
	u.viewY = followSpan(u.viewY, viewHeight, player.Y, m.Size().Height)
}

// followSpan подгоняет интервал под ширину width, держит target не ближе
// четверти окна к краю и не выпускает окно за пределы [0, limit).
func followSpan(s geometry.Span, width, target, limit int) geometry.Span {
	if width < 1 {
		width = 1
	}
	if s.Width() != width {
		s = s.Scale(width, clamp(target, s.Lo, s.Hi))
	}

	margin := width / 4
	if margin*2 >= width {
		margin = (width - 1) / 2
	}
	s = s.ShiftIntoView(target, margin)

	if s.Lo < 0 {
		s = s.Shift(-s.Lo)
	}
	if s.Hi > limit-1 {
		s = s.Shift(limit - 1 - s.Hi)
	}
	return s
}

func (u *UI) drawMap() {
	for _, row := range u.world.Map().Rows() {
		for _, tile := range row {
			p := tile.Position()
			if !u.viewX.Contains(p.X) || !u.viewY.Contains(p.Y) {
				continue
			}
			sprite, color := topSprite(tile)
			u.screen.SetContent(p.X-u.viewX.Lo, p.Y-u.viewY.Lo, sprite, nil, styleFor(color))
		}
	}
}

// topSprite - спрайт верхней вещи клетки: существо поверх предметов,
// предметы поверх архитектуры.
func topSprite(tile *gamemap.Tile) (rune, string) {
	for _, thing := range tile.Things() {
		if !thing.Has(entity.KindRender) {
			continue
		}
		render := thing.Render()
		return render.Sprite(), render.Color()
	}
	return ' ', "default"
}

func (u *UI) drawStatus(row, width int) {
	player := u.world.Player().Combatant()
	status := fmt.Sprintf("HP %d/%d  Str %d  [%s]",
		player.Health(), player.MaxHealth(), player.Strength(),
		u.world.CurrentFloor())
	u.drawText(0, row, width, status, tcell.StyleDefault.Reverse(true))
}

func (u *UI) drawMessages(top, width int) {
	for i, message := range u.world.Log().Recent(messageRows) {
		u.drawText(0, top+i, width, message, tcell.StyleDefault)
	}
}

// drawText печатает строку с учетом широких рун.
func (u *UI) drawText(x, y, width int, text string, style tcell.Style) {
	for _, r := range text {
		if x >= width {
			return
		}
		u.screen.SetContent(x, y, r, nil, style)
		x += runewidth.RuneWidth(r)
	}
}

func clamp(v, lo, hi int) int {
	if hi < lo {
		hi = lo
	}
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

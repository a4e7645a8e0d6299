// Package ui рисует мир в терминале и переводит клавиши в намерения
// игрока. Вся симуляция живет в world; здесь только стекло и кнопки.
package ui

import (
	"fmt"

	"github.com/gdamore/tcell/v2"

	"github.com/eevee/flax/internal/entity"
	"github.com/eevee/flax/internal/geometry"
	"github.com/eevee/flax/internal/rules"
	"github.com/eevee/flax/internal/world"
	"github.com/eevee/flax/pkg/logger"
)

// Нижние строки экрана: статус и журнал повествования.
const (
	statusRows  = 1
	messageRows = 4
)

// UI владеет терминальным экраном и гоняет цикл ввод-ход-отрисовка.
// Окно просмотра - пара интервалов карты, следующая за игроком.
type UI struct {
	screen tcell.Screen
	world  *world.World

	viewX geometry.Span
	viewY geometry.Span
}

func New(w *world.World) (*UI, error) {
	screen, err := tcell.NewScreen()
	if err != nil {
		return nil, fmt.Errorf("creating a screen: %w", err)
	}
	if err := screen.Init(); err != nil {
		return nil, fmt.Errorf("initializing the screen: %w", err)
	}
	screen.SetStyle(tcell.StyleDefault)
	screen.HideCursor()
	return &UI{
		screen: screen,
		world:  w,
		viewX:  geometry.NewSpan(0, 0),
		viewY:  geometry.NewSpan(0, 0),
	}, nil
}

// Run крутит главный цикл до выхода игрока. Экран освобождается при
// любом исходе.
func (u *UI) Run() error {
	defer u.screen.Fini()

	logger.Log.WithFields(map[string]interface{}{
		"component": "ui",
	}).Info("entering the main loop")

	for {
		u.draw()

		switch ev := u.screen.PollEvent().(type) {
		case *tcell.EventResize:
			u.screen.Sync()
		case *tcell.EventKey:
			if u.quitKey(ev) {
				return nil
			}
			if action := u.actionFor(ev); action != nil {
				u.world.PushPlayerAction(action)
				u.world.Advance()
			}
		}
	}
}

func (u *UI) quitKey(ev *tcell.EventKey) bool {
	if ev.Key() == tcell.KeyEscape || ev.Key() == tcell.KeyCtrlC {
		return true
	}
	return ev.Key() == tcell.KeyRune && ev.Rune() == 'q'
}

// actionFor переводит клавишу в намерение игрока; nil - клавиша ничего
// не значит или намерение невозможно (шаг за край карты).
func (u *UI) actionFor(ev *tcell.EventKey) rules.Event {
	if dir, ok := directionFor(ev); ok {
		return u.world.PlayerActionFromDirection(dir)
	}
	if ev.Key() != tcell.KeyRune {
		return nil
	}

	player := u.world.Player()
	switch ev.Rune() {
	case ',':
		return rules.NewPickUp(player)
	case '>':
		return rules.NewDescend(player)
	case '<':
		return rules.NewAscend(player)
	case 'w':
		if item := u.wearableItem(player); item != nil {
			return rules.NewEquip(player, item)
		}
	case 'W':
		if worn := player.RelatesTo(entity.RelWearing); len(worn) > 0 {
			return rules.NewUnequip(player, worn[0].To())
		}
	}
	return nil
}

// wearableItem - первая еще не надетая экипировка из инвентаря.
func (u *UI) wearableItem(player *entity.Entity) *entity.Entity {
	if !player.Has(entity.KindContainer) {
		return nil
	}
	for _, item := range player.Container().Inventory() {
		if !item.Has(entity.KindEquipment) {
			continue
		}
		if len(item.Equipment().WornBy()) == 0 {
			return item
		}
	}
	return nil
}

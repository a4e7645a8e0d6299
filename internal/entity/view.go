package entity

import "fmt"

// Представления способностей. Представление - дешевая "линза" на одну
// сущность: значимый тип без аллокаций, связывающий сущность с компонентом
// ее типа. Получение представления для неподдерживаемой способности
// паникует (см. adapt).

// --- ФИЗИКА ---

type PhysicsView struct {
	e    *Entity
	impl Impl
}

func (e *Entity) Physics() PhysicsView {
	return PhysicsView{e: e, impl: e.adapt(KindPhysics).Impl()}
}

func (v PhysicsView) Impl() Impl { return v.impl }

// Blocks сообщает, мешает ли сущность встать на ее клетку.
func (v PhysicsView) Blocks() bool {
	switch v.impl {
	case ImplSolid:
		return true
	case ImplEmpty:
		return false
	case ImplDoor:
		return !v.e.Openable().IsOpen()
	default:
		panic(fmt.Sprintf("unknown physics impl %s", v.impl))
	}
}

// --- ОТРИСОВКА ---

type RenderView struct {
	e    *Entity
	tmpl Template
}

func (e *Entity) Render() RenderView {
	return RenderView{e: e, tmpl: e.adapt(KindRender)}
}

// Sprite возвращает текущий глиф. У HealthRender он зависит от доли
// оставшегося здоровья.
func (v RenderView) Sprite() rune {
	sprite, _ := v.rendering()
	return sprite
}

// Color возвращает имя цветовой метки для палитры интерфейса.
func (v RenderView) Color() string {
	_, color := v.rendering()
	return color
}

func (v RenderView) rendering() (rune, string) {
	switch tmpl := v.tmpl.(type) {
	case Render:
		return tmpl.Sprite, tmpl.Color
	case HealthRender:
		com := v.e.Combatant()
		health := float64(com.Health()) / float64(com.MaxHealth())
		choices := tmpl.choices
		for _, c := range choices {
			if health <= c.Weight {
				return c.Sprite, c.Color
			}
			health -= c.Weight
		}
		// Полное здоровье после вычитаний дает крошечный остаток;
		// он принадлежит последнему варианту.
		last := choices[len(choices)-1]
		return last.Sprite, last.Color
	default:
		panic(fmt.Sprintf("unknown render impl %s", v.tmpl.Impl()))
	}
}

// --- ПОРТАЛЫ ---

type PortalView struct {
	e    *Entity
	impl Impl
}

func (e *Entity) Portal() PortalView {
	return PortalView{e: e, impl: e.adapt(KindPortal).Impl()}
}

func (v PortalView) Impl() Impl { return v.impl }

// Destination возвращает имя карты назначения, заданное при генерации.
func (v PortalView) Destination() string {
	return v.e.getStr(KindPortal, attrDestination, "")
}

// --- КОНТЕЙНЕРЫ ---

type ContainerView struct {
	e *Entity
}

func (e *Entity) Container() ContainerView {
	e.adapt(KindContainer)
	return ContainerView{e: e}
}

// Inventory возвращает содержимое в порядке добавления. Слайс принадлежит
// сущности, мутировать его снаружи нельзя.
func (v ContainerView) Inventory() []*Entity {
	return v.e.inventory
}

func (v ContainerView) AddItem(item *Entity) {
	v.e.inventory = append(v.e.inventory, item)
}

// RemoveItem убирает предмет из инвентаря; false, если его там нет.
func (v ContainerView) RemoveItem(item *Entity) bool {
	for i, cand := range v.e.inventory {
		if cand == item {
			v.e.inventory = append(v.e.inventory[:i], v.e.inventory[i+1:]...)
			return true
		}
	}
	return false
}

func (v ContainerView) Contains(item *Entity) bool {
	for _, cand := range v.e.inventory {
		if cand == item {
			return true
		}
	}
	return false
}

// --- БОЙ ---

type CombatantView struct {
	e    *Entity
	tmpl Template
}

func (e *Entity) Combatant() CombatantView {
	return CombatantView{e: e, tmpl: e.adapt(KindCombatant)}
}

func (v CombatantView) Impl() Impl { return v.tmpl.Impl() }

// Health - текущее здоровье. Живет в хранилище экземпляра с момента
// создания сущности.
func (v CombatantView) Health() int {
	return v.e.getInt(KindCombatant, attrHealth, v.declaredMaxHealth())
}

func (v CombatantView) SetHealth(health int) {
	v.e.setInt(KindCombatant, attrHealth, health)
}

// MaxHealth - максимум здоровья с учетом модификаторов экипировки.
func (v CombatantView) MaxHealth() int {
	return v.modified(StatMaxHealth, v.declaredMaxHealth())
}

// Strength - сила с учетом модификаторов экипировки.
func (v CombatantView) Strength() int {
	return v.modified(StatStrength, v.declaredStrength())
}

func (v CombatantView) declaredMaxHealth() int {
	switch tmpl := v.tmpl.(type) {
	case Combatant:
		return tmpl.Health
	case Breakable:
		return tmpl.Health
	default:
		panic(fmt.Sprintf("unknown combatant impl %s", v.tmpl.Impl()))
	}
}

func (v CombatantView) declaredStrength() int {
	if tmpl, ok := v.tmpl.(Combatant); ok {
		return tmpl.Strength
	}
	// У разрушаемой архитектуры силы нет.
	return 0
}

// modified прогоняет сырое значение через модификаторы всего надетого,
// в порядке присоединения отношений.
func (v CombatantView) modified(stat Stat, value int) int {
	for _, rel := range v.e.RelatesTo(RelWearing) {
		worn := rel.To()
		if !worn.Has(KindEquipment) {
			continue
		}
		for _, mod := range worn.Equipment().Modifiers() {
			value = mod.Modify(stat, value)
		}
	}
	return value
}

// --- РАЗУМ ---

type ActorView struct {
	e    *Entity
	impl Impl
}

func (e *Entity) Actor() ActorView {
	return ActorView{e: e, impl: e.adapt(KindActor).Impl()}
}

func (v ActorView) Impl() Impl { return v.impl }

// --- ЭКИПИРОВКА ---

type EquipmentView struct {
	e    *Entity
	tmpl Equipment
}

func (e *Entity) Equipment() EquipmentView {
	tmpl, ok := e.adapt(KindEquipment).(Equipment)
	if !ok {
		panic(fmt.Sprintf("unknown equipment impl %s", e.adapt(KindEquipment).Impl()))
	}
	return EquipmentView{e: e, tmpl: tmpl}
}

func (v EquipmentView) Modifiers() []Modifier { return v.tmpl.Modifiers }

// WornBy возвращает носителей предмета в порядке надевания. Обычный
// предмет носит не больше одной сущности, это следят правила событий.
func (v EquipmentView) WornBy() []*Entity {
	var wearers []*Entity
	for _, rel := range v.e.RelatedTo(RelWearing) {
		wearers = append(wearers, rel.From())
	}
	return wearers
}

// --- ДВЕРИ ---

type OpenableView struct {
	e *Entity
}

func (e *Entity) Openable() OpenableView {
	e.adapt(KindOpenable)
	return OpenableView{e: e}
}

func (v OpenableView) IsOpen() bool {
	return v.e.getInt(KindOpenable, attrOpen, 0) != 0
}

func (v OpenableView) IsLocked() bool {
	return v.e.getInt(KindOpenable, attrLocked, 0) != 0
}

func (v OpenableView) SetOpen(open bool) {
	v.e.setInt(KindOpenable, attrOpen, boolToInt(open))
}

package entity

// Template - компонент в составе типа сущности. Хранит данные уровня типа
// (спрайт, максимальное здоровье, модификаторы) и инициализирует состояние
// экземпляра при создании сущности.
type Template interface {
	// Kind - какую способность закрывает компонент.
	Kind() Kind
	// Impl - конкретная реализация; по ней диспетчеризуются правила.
	Impl() Impl
	// InitEntity записывает стартовое состояние в хранилище экземпляра.
	InitEntity(e *Entity)
}

// --- ФИЗИКА ---

// Solid - непроходимая сущность: стена, дерево, существо.
type Solid struct{}

func (Solid) Kind() Kind         { return KindPhysics }
func (Solid) Impl() Impl         { return ImplSolid }
func (Solid) InitEntity(*Entity) {}

// Empty - проходимая сущность: пол, трава, лестница.
type Empty struct{}

func (Empty) Kind() Kind         { return KindPhysics }
func (Empty) Impl() Impl         { return ImplEmpty }
func (Empty) InitEntity(*Entity) {}

// DoorPhysics - проходимость зависит от состояния Openable той же сущности.
type DoorPhysics struct{}

func (DoorPhysics) Kind() Kind         { return KindPhysics }
func (DoorPhysics) Impl() Impl         { return ImplDoor }
func (DoorPhysics) InitEntity(*Entity) {}

// --- ОТРИСОВКА ---

// Render - постоянный спрайт с цветовой меткой. Сами стили живут в слое
// интерфейса; ядро оперирует только именами.
type Render struct {
	Sprite rune
	Color  string
}

func (Render) Kind() Kind         { return KindRender }
func (Render) Impl() Impl         { return ImplRender }
func (Render) InitEntity(*Entity) {}

// RenderChoice - один вариант отрисовки во взвешенной таблице HealthRender.
type RenderChoice struct {
	Weight float64
	Sprite rune
	Color  string
}

// HealthRender выбирает спрайт по доле оставшегося здоровья: варианты
// перечислены от самого разрушенного к целому, веса нормируются к единице.
type HealthRender struct {
	choices []RenderChoice
}

// NewHealthRender нормализует веса вариантов. Паникует на пустой таблице.
func NewHealthRender(choices ...RenderChoice) HealthRender {
	if len(choices) == 0 {
		panic("health render needs at least one choice")
	}
	var total float64
	for _, c := range choices {
		total += c.Weight
	}
	normalized := make([]RenderChoice, len(choices))
	for i, c := range choices {
		c.Weight /= total
		normalized[i] = c
	}
	return HealthRender{choices: normalized}
}

func (HealthRender) Kind() Kind         { return KindRender }
func (HealthRender) Impl() Impl         { return ImplHealthRender }
func (HealthRender) InitEntity(*Entity) {}

// --- ПОРТАЛЫ ---

// PortalUp - лестница наверх. Destination заполняется при генерации карты
// через переопределение экземпляра; в описании типа оно пустое.
type PortalUp struct {
	Destination string
}

func (PortalUp) Kind() Kind { return KindPortal }
func (PortalUp) Impl() Impl { return ImplPortalUp }

func (p PortalUp) InitEntity(e *Entity) {
	if p.Destination != "" {
		e.setStr(KindPortal, attrDestination, p.Destination)
	}
}

// PortalDown - лестница вниз.
type PortalDown struct {
	Destination string
}

func (PortalDown) Kind() Kind { return KindPortal }
func (PortalDown) Impl() Impl { return ImplPortalDown }

func (p PortalDown) InitEntity(e *Entity) {
	if p.Destination != "" {
		e.setStr(KindPortal, attrDestination, p.Destination)
	}
}

// --- КОНТЕЙНЕРЫ ---

// Container - сущность со своим инвентарем.
type Container struct{}

func (Container) Kind() Kind         { return KindContainer }
func (Container) Impl() Impl         { return ImplContainer }
func (Container) InitEntity(*Entity) {}

// --- БОЙ ---

// Combatant - существо с характеристиками: дерется и получает урон.
type Combatant struct {
	Health   int
	Strength int
}

func (Combatant) Kind() Kind { return KindCombatant }
func (Combatant) Impl() Impl { return ImplCombatant }

func (c Combatant) InitEntity(e *Entity) {
	e.setInt(KindCombatant, attrHealth, c.Health)
}

// Breakable - разрушаемая архитектура. Не дерется (сила всегда ноль), но
// принимает урон. Переопределение экземпляра задает долю оставшегося
// здоровья; максимум берется из компонента, объявленного на типе.
type Breakable struct {
	Health   int
	Fraction float64
}

func (Breakable) Kind() Kind { return KindCombatant }
func (Breakable) Impl() Impl { return ImplBreakable }

func (b Breakable) InitEntity(e *Entity) {
	max := b.Health
	if max == 0 {
		decl, ok := e.Type().Template(KindCombatant).(Breakable)
		if !ok {
			panic("breakable override on a type without a declared breakable")
		}
		max = decl.Health
	}
	health := max
	if b.Fraction > 0 {
		health = int(b.Fraction*float64(max) + 0.5)
		if health < 1 {
			health = 1
		}
	}
	e.setInt(KindCombatant, attrHealth, health)
}

// --- РАЗУМ ---

// GenericAI - монстр. Сама логика хода живет в контроллере мира; компонент
// только помечает сущность как действующую.
type GenericAI struct{}

func (GenericAI) Kind() Kind         { return KindActor }
func (GenericAI) Impl() Impl         { return ImplGenericAI }
func (GenericAI) InitEntity(*Entity) {}

// PlayerBrain - игрок: действия приходят из очереди ввода.
type PlayerBrain struct{}

func (PlayerBrain) Kind() Kind         { return KindActor }
func (PlayerBrain) Impl() Impl         { return ImplPlayerBrain }
func (PlayerBrain) InitEntity(*Entity) {}

// --- ПРЕДМЕТЫ ---

// Portable - предмет можно подобрать и положить в контейнер.
type Portable struct{}

func (Portable) Kind() Kind         { return KindPortable }
func (Portable) Impl() Impl         { return ImplPortable }
func (Portable) InitEntity(*Entity) {}

// Modifier - аддитивная поправка к характеристике от надетой экипировки.
type Modifier struct {
	Stat Stat
	Add  int
}

// Modify применяет поправку, если характеристика совпадает.
func (m Modifier) Modify(stat Stat, value int) int {
	if stat != m.Stat {
		return value
	}
	return value + m.Add
}

// Equipment - надеваемый предмет с модификаторами характеристик.
type Equipment struct {
	Modifiers []Modifier
}

func (Equipment) Kind() Kind         { return KindEquipment }
func (Equipment) Impl() Impl         { return ImplEquipment }
func (Equipment) InitEntity(*Entity) {}

// --- ДВЕРИ ---

// Openable - открываемая и запираемая сущность.
type Openable struct {
	Open   bool
	Locked bool
}

func (Openable) Kind() Kind { return KindOpenable }
func (Openable) Impl() Impl { return ImplOpenable }

func (o Openable) InitEntity(e *Entity) {
	e.setInt(KindOpenable, attrOpen, boolToInt(o.Open))
	e.setInt(KindOpenable, attrLocked, boolToInt(o.Locked))
}

func boolToInt(v bool) int {
	if v {
		return 1
	}
	return 0
}

// Package entity реализует модель "сущность-способность": типы сущностей
// собираются из компонентов, каждый из которых закрывает одну способность
// (физика, отрисовка, бой и так далее). Наследования нет - разные типы
// делят ровно те куски поведения, которые им нужны.
package entity

// --- СЛОЙ ---

// Layer - вертикальная позиция сущности на клетке. На клетке всегда ровно
// одна архитектура, не больше одного существа и сколько угодно предметов.
type Layer uint8

const (
	LayerArchitecture Layer = iota
	LayerItem
	LayerCreature
)

var layerNames = map[Layer]string{
	LayerArchitecture: "architecture",
	LayerItem:         "item",
	LayerCreature:     "creature",
}

func (l Layer) String() string {
	if name, ok := layerNames[l]; ok {
		return name
	}
	return "unknown"
}

// --- СПОСОБНОСТИ ---

// Kind - закрытый набор способностей. У типа сущности не может быть двух
// компонентов одной способности.
type Kind uint8

const (
	KindPhysics Kind = iota
	KindRender
	KindPortal
	KindContainer
	KindCombatant
	KindActor
	KindPortable
	KindEquipment
	KindOpenable
)

var kindNames = map[Kind]string{
	KindPhysics:   "physics",
	KindRender:    "render",
	KindPortal:    "portal",
	KindContainer: "container",
	KindCombatant: "combatant",
	KindActor:     "actor",
	KindPortable:  "portable",
	KindEquipment: "equipment",
	KindOpenable:  "openable",
}

func (k Kind) String() string {
	if name, ok := kindNames[k]; ok {
		return name
	}
	return "unknown"
}

// --- РЕАЛИЗАЦИИ ---

// Impl идентифицирует конкретную реализацию способности. Правила событий
// регистрируются по реализации: Solid и Empty оба закрывают физику, но на
// попытку пройти реагируют противоположно.
type Impl uint8

const (
	ImplSolid Impl = iota
	ImplEmpty
	ImplDoor
	ImplRender
	ImplHealthRender
	ImplPortalUp
	ImplPortalDown
	ImplContainer
	ImplCombatant
	ImplBreakable
	ImplGenericAI
	ImplPlayerBrain
	ImplPortable
	ImplEquipment
	ImplOpenable
)

var implNames = map[Impl]string{
	ImplSolid:        "solid",
	ImplEmpty:        "empty",
	ImplDoor:         "door",
	ImplRender:       "render",
	ImplHealthRender: "health_render",
	ImplPortalUp:     "portal_up",
	ImplPortalDown:   "portal_down",
	ImplContainer:    "container",
	ImplCombatant:    "combatant",
	ImplBreakable:    "breakable",
	ImplGenericAI:    "generic_ai",
	ImplPlayerBrain:  "player_brain",
	ImplPortable:     "portable",
	ImplEquipment:    "equipment",
	ImplOpenable:     "openable",
}

func (i Impl) String() string {
	if name, ok := implNames[i]; ok {
		return name
	}
	return "unknown"
}

// --- ХАРАКТЕРИСТИКИ ---

// Stat - боевая характеристика, на которую могут влиять модификаторы
// экипировки.
type Stat uint8

const (
	StatStrength Stat = iota
	StatMaxHealth
)

var statNames = map[Stat]string{
	StatStrength:  "strength",
	StatMaxHealth: "max_health",
}

func (s Stat) String() string {
	if name, ok := statNames[s]; ok {
		return name
	}
	return "unknown"
}

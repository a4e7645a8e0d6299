package entity

import (
	"fmt"

	"github.com/eevee/flax/pkg/utils"
)

// attr - идентификатор атрибута внутри одной способности.
type attr uint8

const (
	attrHealth attr = iota // combatant: текущее здоровье
	attrOpen               // openable
	attrLocked             // openable
	attrDestination        // portal: имя карты назначения
)

// attrKey - упакованная пара (способность, атрибут). Разным способностям
// не приходится делить пространство имен атрибутов.
type attrKey uint16

func packAttr(kind Kind, a attr) attrKey {
	return attrKey(uint16(kind)<<8 | uint16(a))
}

// Entity - игровой объект: от куска пола до игрока. Хранит только то
// состояние экземпляра, которое отличается от умолчаний типа.
type Entity struct {
	id  string
	typ *Type

	ints map[attrKey]int
	strs map[attrKey]string

	inventory []*Entity

	// Отношения в порядке присоединения; поддерживаются с обоих концов.
	relatesTo []*Relation // исходящие (эта сущность -> другая)
	relatedTo []*Relation // входящие
}

func newEntity(t *Type) *Entity {
	return &Entity{
		id:  utils.GenerateID(),
		typ: t,
	}
}

func (e *Entity) ID() string   { return e.id }
func (e *Entity) Type() *Type  { return e.typ }
func (e *Entity) Name() string { return e.typ.name }
func (e *Entity) Layer() Layer { return e.typ.layer }

// Has сообщает, поддерживает ли сущность способность.
func (e *Entity) Has(kind Kind) bool { return e.typ.Has(kind) }

// IsA проверяет точное совпадение типа.
func (e *Entity) IsA(t *Type) bool { return e.typ == t }

func (e *Entity) String() string {
	return fmt.Sprintf("<Entity: %s %s>", e.typ.name, e.id)
}

// adapt возвращает компонент способности. Запрос способности, которой у
// типа нет - ошибка программиста, тут же и падаем.
func (e *Entity) adapt(kind Kind) Template {
	tmpl := e.typ.Template(kind)
	if tmpl == nil {
		panic(fmt.Sprintf(
			"entity %q does not support capability %s", e.typ.name, kind))
	}
	return tmpl
}

// --- ХРАНИЛИЩЕ ЭКЗЕМПЛЯРА ---
// Чтение сначала смотрит в хранилище экземпляра и только потом в умолчания
// типа; запись всегда идет в экземпляр. Типы никогда не мутируют.

func (e *Entity) getInt(kind Kind, a attr, fallback int) int {
	if v, ok := e.ints[packAttr(kind, a)]; ok {
		return v
	}
	return fallback
}

func (e *Entity) setInt(kind Kind, a attr, v int) {
	if e.ints == nil {
		e.ints = make(map[attrKey]int)
	}
	e.ints[packAttr(kind, a)] = v
}

func (e *Entity) getStr(kind Kind, a attr, fallback string) string {
	if v, ok := e.strs[packAttr(kind, a)]; ok {
		return v
	}
	return fallback
}

func (e *Entity) setStr(kind Kind, a attr, v string) {
	if e.strs == nil {
		e.strs = make(map[attrKey]string)
	}
	e.strs[packAttr(kind, a)] = v
}

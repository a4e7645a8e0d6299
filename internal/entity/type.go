package entity

import "fmt"

// Type - тип сущности: слой, имя и набор компонентов. Неизменяем после
// создания; все типы объявляются декларативно при старте процесса.
type Type struct {
	name      string
	layer     Layer
	templates map[Kind]Template
	// Порядок объявления компонентов; нужен для детерминированной
	// инициализации экземпляров.
	order []Kind
}

// NewType собирает тип из компонентов. Два компонента одной способности -
// ошибка автора контента, паникуем сразу.
func NewType(layer Layer, name string, templates ...Template) *Type {
	t := &Type{
		name:      name,
		layer:     layer,
		templates: make(map[Kind]Template, len(templates)),
	}
	for _, tmpl := range templates {
		kind := tmpl.Kind()
		if prev, ok := t.templates[kind]; ok {
			panic(fmt.Sprintf(
				"type %q got two components for capability %s: %s and %s",
				name, kind, prev.Impl(), tmpl.Impl()))
		}
		t.templates[kind] = tmpl
		t.order = append(t.order, kind)
	}
	return t
}

func (t *Type) Name() string { return t.name }

func (t *Type) Layer() Layer { return t.layer }

// Has сообщает, закрыта ли у типа данная способность.
func (t *Type) Has(kind Kind) bool {
	_, ok := t.templates[kind]
	return ok
}

// Kinds возвращает способности типа в порядке объявления. Слайс
// принадлежит типу, мутировать его нельзя.
func (t *Type) Kinds() []Kind { return t.order }

// Template возвращает компонент способности или nil.
func (t *Type) Template(kind Kind) Template {
	return t.templates[kind]
}

// Impl возвращает реализацию способности; ok=false, если способности нет.
func (t *Type) Impl(kind Kind) (Impl, bool) {
	tmpl, ok := t.templates[kind]
	if !ok {
		return 0, false
	}
	return tmpl.Impl(), true
}

func (t *Type) String() string {
	return fmt.Sprintf("<Type: %s>", t.name)
}

// New создает сущность этого типа. Переопределения подменяют инициализацию
// отдельных компонентов: у ruin-генератора стены получают случайную долю
// здоровья, у лестниц - имя карты назначения. Переопределение обязано
// относиться к объявленной на типе способности и нести ту же реализацию,
// иначе это ошибка автора контента.
func (t *Type) New(overrides ...Template) *Entity {
	e := newEntity(t)

	byKind := make(map[Kind]Template, len(overrides))
	for _, o := range overrides {
		kind := o.Kind()
		if _, ok := byKind[kind]; ok {
			panic(fmt.Sprintf(
				"constructor for %s got two initializers for capability %s",
				t, kind))
		}
		decl, ok := t.templates[kind]
		if !ok {
			panic(fmt.Sprintf(
				"constructor for %s got an initializer for undeclared capability %s",
				t, kind))
		}
		if decl.Impl() != o.Impl() {
			panic(fmt.Sprintf(
				"constructor for %s got a %s initializer for capability %s, declared as %s",
				t, o.Impl(), kind, decl.Impl()))
		}
		byKind[kind] = o
	}

	for _, kind := range t.order {
		tmpl := t.templates[kind]
		if o, ok := byKind[kind]; ok {
			tmpl = o
		}
		tmpl.InitEntity(e)
	}

	return e
}

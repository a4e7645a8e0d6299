package entity

// RelKind - вид направленного отношения между сущностями.
type RelKind uint8

const (
	// RelWearing: носитель -> надетый предмет.
	RelWearing RelKind = iota
)

var relKindNames = map[RelKind]string{
	RelWearing: "wearing",
}

func (k RelKind) String() string {
	if name, ok := relKindNames[k]; ok {
		return name
	}
	return "unknown"
}

// Relation - типизированное ребро между двумя сущностями. Присоединение
// вставляет его в индексы обоих концов, отсоединение убирает из обоих;
// после гибели сущности ни одно отношение не должно на нее ссылаться.
type Relation struct {
	kind RelKind
	from *Entity
	to   *Entity
}

func (r *Relation) Kind() RelKind { return r.kind }
func (r *Relation) From() *Entity { return r.from }
func (r *Relation) To() *Entity   { return r.to }

// Attach создает отношение и регистрирует его на обоих концах. Порядок
// присоединения сохраняется: от него зависит порядок применения
// модификаторов экипировки.
func Attach(kind RelKind, from, to *Entity) *Relation {
	r := &Relation{kind: kind, from: from, to: to}
	from.relatesTo = append(from.relatesTo, r)
	to.relatedTo = append(to.relatedTo, r)
	return r
}

// Detach убирает отношение из индексов обоих концов. Повторный вызов
// безвреден.
func (r *Relation) Detach() {
	r.from.relatesTo = removeRelation(r.from.relatesTo, r)
	r.to.relatedTo = removeRelation(r.to.relatedTo, r)
}

func removeRelation(rs []*Relation, r *Relation) []*Relation {
	for i, cand := range rs {
		if cand == r {
			return append(rs[:i], rs[i+1:]...)
		}
	}
	return rs
}

// RelatesTo возвращает исходящие отношения данного вида в порядке
// присоединения.
func (e *Entity) RelatesTo(kind RelKind) []*Relation {
	return filterRelations(e.relatesTo, kind)
}

// RelatedTo возвращает входящие отношения данного вида.
func (e *Entity) RelatedTo(kind RelKind) []*Relation {
	return filterRelations(e.relatedTo, kind)
}

func filterRelations(rs []*Relation, kind RelKind) []*Relation {
	var out []*Relation
	for _, r := range rs {
		if r.kind == kind {
			out = append(out, r)
		}
	}
	return out
}

// DetachAllRelations рвет все отношения сущности с обоих концов.
// Вызывается при гибели: индексы выживших не должны держать мертвеца.
func (e *Entity) DetachAllRelations() {
	for len(e.relatesTo) > 0 {
		e.relatesTo[0].Detach()
	}
	for len(e.relatedTo) > 0 {
		e.relatedTo[0].Detach()
	}
}

package rules

import (
	"fmt"

	"github.com/eevee/flax/internal/entity"
	"github.com/eevee/flax/pkg/logger"
)

// Phase - стадия разрешения события.
type Phase uint8

const (
	// PhaseCheck - валидация; любое правило может отменить событие.
	PhaseCheck Phase = iota
	// PhasePerform - собственно эффект: мутации состояния и карты,
	// постановка порожденных событий.
	PhasePerform
	// PhaseAnnounce - только наблюдаемое повествование; состояние
	// симуляции не трогать.
	PhaseAnnounce
)

var phaseNames = map[Phase]string{
	PhaseCheck:    "check",
	PhasePerform:  "perform",
	PhaseAnnounce: "announce",
}

func (p Phase) String() string {
	if name, ok := phaseNames[p]; ok {
		return name
	}
	return "unknown"
}

// RuleFunc - одно правило: реакция реализации компонента на событие в
// одной фазе применительно к одной цели.
type RuleFunc func(ctx Context, ev Event, target *entity.Entity)

type ruleKey struct {
	event EventKind
	impl  entity.Impl
	phase Phase
}

// Registry - таблица правил. Заполняется один раз при старте процесса и
// после заморозки неизменна.
type Registry struct {
	rules  map[ruleKey][]RuleFunc
	frozen bool
}

func NewRegistry() *Registry {
	return &Registry{rules: make(map[ruleKey][]RuleFunc)}
}

// Check регистрирует правило фазы проверки.
func (r *Registry) Check(event EventKind, impl entity.Impl, fn RuleFunc) {
	r.register(event, impl, PhaseCheck, fn)
}

// Perform регистрирует правило фазы исполнения.
func (r *Registry) Perform(event EventKind, impl entity.Impl, fn RuleFunc) {
	r.register(event, impl, PhasePerform, fn)
}

// Announce регистрирует правило фазы оглашения.
func (r *Registry) Announce(event EventKind, impl entity.Impl, fn RuleFunc) {
	r.register(event, impl, PhaseAnnounce, fn)
}

func (r *Registry) register(event EventKind, impl entity.Impl, phase Phase, fn RuleFunc) {
	if r.frozen {
		panic(fmt.Sprintf(
			"registering a %s rule for %s/%s on a frozen registry",
			phase, event, impl))
	}
	key := ruleKey{event: event, impl: impl, phase: phase}
	r.rules[key] = append(r.rules[key], fn)
}

// Freeze запрещает дальнейшую регистрацию.
func (r *Registry) Freeze() { r.frozen = true }

// rulesFor собирает правила для вида события с учетом иерархии: сначала
// собственные, затем унаследованные от родителя.
func (r *Registry) rulesFor(event EventKind, impl entity.Impl, phase Phase) []RuleFunc {
	var fns []RuleFunc
	kind := event
	for {
		fns = append(fns, r.rules[ruleKey{event: kind, impl: impl, phase: phase}]...)
		parent, ok := eventParents[kind]
		if !ok {
			return fns
		}
		kind = parent
	}
}

// Fire прогоняет событие через весь конвейер.
//
// Отмена работает как исключение: обрывает все оставшиеся фазы. При этом
// это штатный исход, а не ошибка - событие просто не возымело эффекта,
// и оглашать нечего.
func (r *Registry) Fire(ctx Context, ev Event) {
	targets := ev.FindTargets(ctx)
	if len(targets) == 0 {
		logger.Log.WithFields(map[string]interface{}{
			"component": "rules",
			"event":     ev.Kind().String(),
		}).Debug("event resolved to no targets")
		return
	}

	for _, target := range targets {
		r.runPhase(ctx, ev, target, PhaseCheck)
		if ev.Cancelled() {
			return
		}
	}
	for _, target := range targets {
		r.runPhase(ctx, ev, target, PhasePerform)
	}
	for _, target := range targets {
		r.runPhase(ctx, ev, target, PhaseAnnounce)
	}
}

// runPhase запускает правила фазы для одной цели: по каждой способности
// ее типа в порядке объявления, внутри способности - в порядке
// регистрации.
func (r *Registry) runPhase(ctx Context, ev Event, target *entity.Entity, phase Phase) {
	for _, kind := range target.Type().Kinds() {
		impl, _ := target.Type().Impl(kind)
		for _, fn := range r.rulesFor(ev.Kind(), impl, phase) {
			fn(ctx, ev, target)
			if phase == PhaseCheck && ev.Cancelled() {
				return
			}
		}
	}
}

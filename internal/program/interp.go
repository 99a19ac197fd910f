package program

import (
	"math"

	"github.com/vovakirdan/astro-sim/internal/world"
)

// Quantum is the simulated time, in seconds, consumed by each
// side-effecting primitive (thrust on/off, fire, turn, skip).
const Quantum = 0.2

// quantumEps absorbs float noise when a budget is assembled from many
// slice additions, so a statement that exactly affords its quantum runs.
const quantumEps = 1e-9

// Program couples an AST with its mutable execution state: variable
// bindings, the time accounting for the current slice, the suspension
// checkpoint and the print trace. A Program is attached to one ship and
// driven by the world's event loop through Run.
type Program struct {
	body Statement

	vars     map[string]Value
	consumed float64
	extra    float64
	resumeAt *SourceLocation

	inFunction bool
	printed    []Value
}

// New creates a program around a parsed statement tree.
func New(body Statement) *Program {
	return &Program{body: body, vars: make(map[string]Value)}
}

// Printed returns the values recorded by print statements, in execution
// order.
func (p *Program) Printed() []Value {
	out := make([]Value, len(p.printed))
	copy(out, p.printed)
	return out
}

// Var returns the current binding of a program variable.
func (p *Program) Var(name string) (Value, bool) {
	v, ok := p.vars[name]
	return v, ok
}

// Suspended reports whether the program holds a resumption checkpoint.
func (p *Program) Suspended() bool { return p.resumeAt != nil }

// stepKind is the algebra of statement outcomes. Break and suspension are
// ordinary return values here, not unwinds; sequences and loops propagate
// them explicitly and Run maps whatever reaches the root to the public
// contract.
type stepKind int

const (
	stepContinue stepKind = iota
	stepBreak
	stepSuspend
	stepFailed
)

type stepResult struct {
	kind stepKind
	err  error
}

func cont() stepResult          { return stepResult{kind: stepContinue} }
func brk() stepResult           { return stepResult{kind: stepBreak} }
func suspend() stepResult       { return stepResult{kind: stepSuspend} }
func fail(err error) stepResult { return stepResult{kind: stepFailed, err: err} }

// execState carries the per-slice execution context.
type execState struct {
	prog  *Program
	ship  *world.Ship
	world *world.World

	// budget is dt plus the carry-over from the previous slice.
	budget float64
}

// fastForwarding reports whether execution is replaying toward the
// suspension checkpoint. Side effects and time consumption are
// suppressed until the checkpoint statement is reached.
func (x *execState) fastForwarding() bool { return x.prog.resumeAt != nil }

// entry classifies the top-of-statement protocol outcome.
type entry int

const (
	// enterLive: execute the statement normally.
	enterLive entry = iota
	// enterMuted: still fast-forwarding; suppress the statement.
	enterMuted
	// enterSuspend: the time budget is exhausted; a checkpoint was taken.
	enterSuspend
)

// enter runs the shared top-of-statement protocol: clear the checkpoint
// when this statement is it, then suspend when less than one quantum of
// budget remains.
func (x *execState) enter(loc SourceLocation) entry {
	p := x.prog
	if p.resumeAt != nil {
		if *p.resumeAt == loc {
			p.resumeAt = nil
		} else {
			return enterMuted
		}
	}
	if x.budget-p.consumed < Quantum-quantumEps {
		at := loc
		p.resumeAt = &at
		p.extra = x.budget - p.consumed
		p.consumed = 0
		return enterSuspend
	}
	return enterLive
}

// Run executes the program against (ship, world) for a slice of dt
// simulated seconds. It returns nil both when the walk completed and when
// it suspended; suspension is internal and the next Run resumes at the
// checkpoint. Program errors surface as *ProgramError / *ReturnError.
func (p *Program) Run(ship *world.Ship, w *world.World, dt float64) error {
	if math.IsNaN(dt) || dt < 0 {
		return world.ErrInvalidDuration
	}
	x := &execState{prog: p, ship: ship, world: w, budget: dt + p.extra}

	r := p.body.exec(x)
	switch r.kind {
	case stepBreak:
		return failf(p.body.Loc(), "break outside loop")
	case stepFailed:
		return r.err
	case stepSuspend:
		return nil
	}

	// The walk ran to the end. A checkpoint that was never reached (a
	// condition chose a different branch than last slice) is stale.
	p.resumeAt = nil
	return nil
}

// --- statements ---

func (s *Sequence) exec(x *execState) stepResult {
	if x.enter(s.Location) == enterSuspend {
		return suspend()
	}

	start := 0
	if x.fastForwarding() {
		// Resume inside the child that holds the checkpoint: the last
		// one not after it in source order.
		target := *x.prog.resumeAt
		for i, st := range s.Statements {
			if !target.Before(st.Loc()) {
				start = i
			}
		}
	}

	for _, st := range s.Statements[start:] {
		if r := st.exec(x); r.kind != stepContinue {
			return r
		}
	}
	return cont()
}

func (s *Assignment) exec(x *execState) stepResult {
	switch x.enter(s.Location) {
	case enterMuted:
		return cont()
	case enterSuspend:
		return suspend()
	}

	v, err := s.Value.eval(x)
	if err != nil {
		return fail(err)
	}
	if prev, ok := x.prog.vars[s.Name]; ok && prev.Kind() != v.Kind() {
		return fail(failf(s.Location, "cannot re-bind %s from %s to %s", s.Name, prev.Kind(), v.Kind()))
	}
	x.prog.vars[s.Name] = v
	return cont()
}

func (s *If) exec(x *execState) stepResult {
	if x.enter(s.Location) == enterSuspend {
		return suspend()
	}

	v, err := s.Cond.eval(x)
	if err != nil {
		return fail(err)
	}
	b, ok := v.Bool()
	if !ok {
		return fail(failf(s.Cond.Loc(), "if condition must be boolean, got %s", v.Kind()))
	}

	if b {
		return s.Then.exec(x)
	}
	if s.Else != nil {
		return s.Else.exec(x)
	}
	return cont()
}

func (s *While) exec(x *execState) stepResult {
	if x.enter(s.Location) == enterSuspend {
		return suspend()
	}

	for {
		// When resuming inside the body, re-enter it directly; the
		// condition was already true when the body was entered.
		if !x.fastForwarding() {
			v, err := s.Cond.eval(x)
			if err != nil {
				return fail(err)
			}
			b, ok := v.Bool()
			if !ok {
				return fail(failf(s.Cond.Loc(), "while condition must be boolean, got %s", v.Kind()))
			}
			if !b {
				return cont()
			}
		}

		switch r := s.Body.exec(x); r.kind {
		case stepBreak:
			return cont()
		case stepSuspend, stepFailed:
			return r
		}

		// A full body pass that never reached the checkpoint means the
		// condition picked a different branch than last slice; the
		// checkpoint is stale and must not mute the loop forever.
		if x.fastForwarding() {
			x.prog.resumeAt = nil
		}
	}
}

func (s *Break) exec(x *execState) stepResult {
	switch x.enter(s.Location) {
	case enterMuted:
		return cont()
	case enterSuspend:
		return suspend()
	}
	return brk()
}

func (s *Skip) exec(x *execState) stepResult {
	switch x.enter(s.Location) {
	case enterMuted:
		return cont()
	case enterSuspend:
		return suspend()
	}
	x.prog.consumed += Quantum
	return cont()
}

func (s *ThrustOn) exec(x *execState) stepResult {
	switch x.enter(s.Location) {
	case enterMuted:
		return cont()
	case enterSuspend:
		return suspend()
	}
	x.prog.consumed += Quantum
	x.ship.SetThruster(true)
	return cont()
}

func (s *ThrustOff) exec(x *execState) stepResult {
	switch x.enter(s.Location) {
	case enterMuted:
		return cont()
	case enterSuspend:
		return suspend()
	}
	x.prog.consumed += Quantum
	x.ship.SetThruster(false)
	return cont()
}

func (s *Fire) exec(x *execState) stepResult {
	switch x.enter(s.Location) {
	case enterMuted:
		return cont()
	case enterSuspend:
		return suspend()
	}
	x.prog.consumed += Quantum
	x.ship.Fire()
	return cont()
}

func (s *Turn) exec(x *execState) stepResult {
	switch x.enter(s.Location) {
	case enterMuted:
		return cont()
	case enterSuspend:
		return suspend()
	}

	v, err := s.Angle.eval(x)
	if err != nil {
		return fail(err)
	}
	angle, ok := v.Number()
	if !ok {
		return fail(failf(s.Angle.Loc(), "turn angle must be a number, got %s", v.Kind()))
	}

	x.prog.consumed += Quantum
	theta := math.Mod(x.ship.Orientation()+angle, 2*math.Pi)
	if theta < 0 {
		theta += 2 * math.Pi
	}
	x.ship.SetOrientation(theta)
	return cont()
}

func (s *Print) exec(x *execState) stepResult {
	switch x.enter(s.Location) {
	case enterMuted:
		return cont()
	case enterSuspend:
		return suspend()
	}

	v, err := s.Value.eval(x)
	if err != nil {
		return fail(err)
	}
	x.prog.printed = append(x.prog.printed, v)
	return cont()
}

func (s *Return) exec(x *execState) stepResult {
	switch x.enter(s.Location) {
	case enterMuted:
		return cont()
	case enterSuspend:
		return suspend()
	}
	if !x.prog.inFunction {
		return fail(&ReturnError{Location: s.Location})
	}
	return fail(failf(s.Location, "function bodies are not supported"))
}

// --- expressions ---

func (e *NumberLiteral) eval(_ *execState) (Value, error) {
	return NumberValue(e.V), nil
}

func (e *BooleanLiteral) eval(_ *execState) (Value, error) {
	return BoolValue(e.V), nil
}

func (e *NullLiteral) eval(_ *execState) (Value, error) {
	return EntityValue(nil), nil
}

func (e *VariableRef) eval(x *execState) (Value, error) {
	v, ok := x.prog.vars[e.Name]
	if !ok {
		return Value{}, failf(e.Location, "unknown variable %q", e.Name)
	}
	return v, nil
}

func (e *Binary) eval(x *execState) (Value, error) {
	lhs, err := e.LHS.eval(x)
	if err != nil {
		return Value{}, err
	}
	rhs, err := e.RHS.eval(x)
	if err != nil {
		return Value{}, err
	}

	switch e.Op {
	case OpAdd, OpMul, OpLess:
		a, aok := lhs.Number()
		b, bok := rhs.Number()
		if !aok || !bok {
			return Value{}, failf(e.Location, "arithmetic on %s and %s", lhs.Kind(), rhs.Kind())
		}
		switch e.Op {
		case OpAdd:
			return NumberValue(a + b), nil
		case OpMul:
			return NumberValue(a * b), nil
		default:
			return BoolValue(a < b), nil
		}
	case OpEqual:
		if lhs.Kind() != rhs.Kind() {
			return Value{}, failf(e.Location, "comparing %s with %s", lhs.Kind(), rhs.Kind())
		}
		return BoolValue(lhs.Equal(rhs)), nil
	case OpAnd:
		a, aok := lhs.Bool()
		b, bok := rhs.Bool()
		if !aok || !bok {
			return Value{}, failf(e.Location, "logical and on %s and %s", lhs.Kind(), rhs.Kind())
		}
		return BoolValue(a && b), nil
	}
	return Value{}, failf(e.Location, "unknown binary operator")
}

func (e *Unary) eval(x *execState) (Value, error) {
	v, err := e.Operand.eval(x)
	if err != nil {
		return Value{}, err
	}

	if e.Op == OpNot {
		b, ok := v.Bool()
		if !ok {
			return Value{}, failf(e.Location, "negating %s", v.Kind())
		}
		return BoolValue(!b), nil
	}

	f, ok := v.Number()
	if !ok {
		return Value{}, failf(e.Location, "numeric operator on %s", v.Kind())
	}
	switch e.Op {
	case OpNegate:
		return NumberValue(-f), nil
	case OpSqrt:
		return NumberValue(math.Sqrt(f)), nil
	case OpSin:
		return NumberValue(math.Sin(f)), nil
	case OpCos:
		return NumberValue(math.Cos(f)), nil
	}
	return Value{}, failf(e.Location, "unknown unary operator")
}

func (e *EntityQuery) eval(x *execState) (Value, error) {
	switch e.Q {
	case QuerySelf:
		return EntityValue(x.ship), nil
	case QueryShip:
		return EntityValue(closest(x, func(c world.Entity) bool {
			return c.Kind() == world.KindShip && c != world.Entity(x.ship)
		})), nil
	case QueryAsteroid:
		return EntityValue(closest(x, func(c world.Entity) bool {
			return c.Kind() == world.KindAsteroid
		})), nil
	case QueryPlanetoid:
		return EntityValue(closest(x, func(c world.Entity) bool {
			return c.Kind() == world.KindPlanetoid
		})), nil
	case QueryPlanet:
		return EntityValue(closest(x, func(c world.Entity) bool {
			return c.Kind() == world.KindAsteroid || c.Kind() == world.KindPlanetoid
		})), nil
	case QueryBullet:
		for _, b := range x.world.Bullets() {
			if b.Source() == x.ship {
				return EntityValue(b), nil
			}
		}
		return EntityValue(nil), nil
	case QueryAny:
		for _, c := range x.world.Entities() {
			return EntityValue(c), nil
		}
		return EntityValue(nil), nil
	}
	return Value{}, failf(e.Location, "unknown entity query")
}

// closest returns the nearest world entity accepted by the filter, or
// nil.
func closest(x *execState, accept func(world.Entity) bool) world.Entity {
	var best world.Entity
	bestDist := math.Inf(1)
	for _, c := range x.world.Entities() {
		if !accept(c) {
			continue
		}
		if d := world.Distance(x.ship, c); d < bestDist {
			best, bestDist = c, d
		}
	}
	return best
}

func (e *Attribute) eval(x *execState) (Value, error) {
	ent, err := evalEntity(x, e.Target)
	if err != nil {
		return Value{}, err
	}
	if ent == nil {
		return Value{}, failf(e.Location, "attribute read on null entity")
	}

	switch e.Attr {
	case AttrX:
		return NumberValue(ent.Position().X()), nil
	case AttrY:
		return NumberValue(ent.Position().Y()), nil
	case AttrVX:
		return NumberValue(ent.Velocity().X()), nil
	case AttrVY:
		return NumberValue(ent.Velocity().Y()), nil
	case AttrRadius:
		return NumberValue(ent.Radius()), nil
	case AttrDirection:
		return NumberValue(ent.Orientation()), nil
	}
	return Value{}, failf(e.Location, "unknown attribute")
}

func (e *DistanceTo) eval(x *execState) (Value, error) {
	ent, err := evalEntity(x, e.Target)
	if err != nil {
		return Value{}, err
	}
	if ent == nil {
		return Value{}, failf(e.Location, "distance to null entity")
	}
	return NumberValue(world.Distance(x.ship, ent)), nil
}

func evalEntity(x *execState, target Expression) (world.Entity, error) {
	v, err := target.eval(x)
	if err != nil {
		return nil, err
	}
	ent, ok := v.Entity()
	if !ok {
		return nil, failf(target.Loc(), "expected an entity, got %s", v.Kind())
	}
	return ent, nil
}

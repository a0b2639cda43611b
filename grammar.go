package pmatch

import (
	"fmt"

	"github.com/emirpasic/gods/lists/arraylist"
)

// Grammar is an arena of named rules. Rules are declared first and bound to
// a pattern later, which allows patterns to refer to rules not yet defined
// or to themselves.
//
//	g := NewGrammar()
//	expr := g.Declare("expr")
//	parens := Concat(Literal("("), Optional(expr.Ref()), Literal(")"))
//	err := g.Bind(expr, Must(OneOrMore(parens)))
//
// A grammar is not safe for concurrent binding. Once every rule is bound,
// patterns referring to the grammar may be matched concurrently, subject to
// the rules for captures.
type Grammar struct {
	rules *arraylist.List // of *rule, indexed by Target.index
	names map[string]*Target
}

type rule struct {
	name    string
	pattern *Pattern // nil while unbound
}

// Target is a handle to a rule of a grammar.
type Target struct {
	g     *Grammar
	index int
	node  *Pattern // indirection node, see Ref
}

// NewGrammar creates an empty grammar.
func NewGrammar() *Grammar {
	return &Grammar{
		rules: arraylist.New(),
		names: make(map[string]*Target),
	}
}

// Declare creates a new, unbound rule. Declaring a name a second time
// returns the existing target.
func (g *Grammar) Declare(name string) *Target {
	if t, ok := g.names[name]; ok {
		return t
	}
	t := &Target{g: g, index: g.rules.Size()}
	t.node = &Pattern{kind: TargetKind, target: t}
	g.rules.Add(&rule{name: name})
	g.names[name] = t
	return t
}

// Rule returns the target declared for name, if any.
func (g *Grammar) Rule(name string) (*Target, bool) {
	t, ok := g.names[name]
	return t, ok
}

// Size returns the number of rules declared.
func (g *Grammar) Size() int {
	return g.rules.Size()
}

// Bind binds target t to p. A target may be bound only once.
//
// Binding closes cycles in the grammar and thereby may invalidate checks done
// when patterns have been built: a span over a target, for example, has been
// accepted because an unbound target is never considered to match the empty
// string. Bind therefore re-validates all bound rules and refuses to bind p if
// this results in a span over a pattern which may match the empty string or
// in a rule referring to itself without consuming input. In this case t
// remains unbound.
func (g *Grammar) Bind(t *Target, p *Pattern) error {
	nonNil("bind", p)
	if t == nil || t.g != g {
		panic(&Error{Code: UnboundTarget, Message: "target does not belong to grammar"})
	}
	r := g.rule(t.index)
	if r.pattern != nil {
		return constructionError(TargetBound, t.node, "rule %q is already bound", r.name)
	}
	r.pattern = p
	if err := g.check(t); err != nil {
		r.pattern = nil
		return err
	}
	CT().Debugf("bound rule %s = %s", r.name, p)
	return nil
}

// check validates the grammar after t has been bound.
func (g *Grammar) check(t *Target) error {
	if rec, chain := leftRecursion(t.node); rec != nil {
		return constructionError(LeftRecursion, rec.node,
			"rule %q may refer to itself without consuming input: %s", rec.Name(), chain)
	}
	v := newValidator(false)
	it := g.rules.Iterator()
	for it.Next() {
		if r := it.Value().(*rule); r.pattern != nil {
			if err := v.walk(r.pattern); err != nil {
				return err
			}
		}
	}
	return nil
}

func (g *Grammar) rule(index int) *rule {
	r, ok := g.rules.Get(index)
	if !ok {
		panic(fmt.Sprintf("grammar has no rule #%d", index))
	}
	return r.(*rule)
}

// Name returns the name the target has been declared with.
func (t *Target) Name() string {
	return t.g.rule(t.index).name
}

// Ref returns a pattern referring to the rule t. It may be used like any
// other pattern. Matching it before t has been bound panics with an error of
// code UnboundTarget.
func (t *Target) Ref() *Pattern {
	return t.node
}

// Pattern returns the pattern t is bound to, or nil.
func (t *Target) Pattern() *Pattern {
	return t.g.rule(t.index).pattern
}

// Bound is true if t has been bound to a pattern.
func (t *Target) Bound() bool {
	return t.Pattern() != nil
}

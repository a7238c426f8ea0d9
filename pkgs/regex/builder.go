package regex

// builder accumulates States in an arena, handing back index handles
// instead of pointers — this avoids representing the NFA's back-edges
// (from Star/Plus) as pointer cycles (spec.md §9).
type builder struct {
	states []State
}

func (b *builder) addTransition(cond Condition) StateID {
	id := StateID(len(b.states))
	b.states = append(b.states, State{ID: id, Kind: KindTransition, Condition: cond, Output: InvalidState})
	return id
}

func (b *builder) addSplit(left, right StateID) StateID {
	id := StateID(len(b.states))
	b.states = append(b.states, State{ID: id, Kind: KindSplit, Left: left, Right: right})
	return id
}

func (b *builder) addAccept() StateID {
	id := StateID(len(b.states))
	b.states = append(b.states, State{ID: id, Kind: KindAccept})
	return id
}

// slotField names which output pointer of a state a dangling slot
// refers to.
type slotField int

const (
	fieldOutput slotField = iota
	fieldLeft
	fieldRight
)

type slot struct {
	state StateID
	field slotField
}

func (b *builder) patch(s slot, target StateID) {
	switch s.field {
	case fieldOutput:
		b.states[s.state].Output = target
	case fieldLeft:
		b.states[s.state].Left = target
	case fieldRight:
		b.states[s.state].Right = target
	}
}

// fragment is a partial NFA: a head state plus the dangling output
// slots still waiting to be connected (spec.md §3).
type fragment struct {
	head StateID
	outs []slot
}

// fragStack is the build-time operand stack the postfix fold operates
// over.
type fragStack struct {
	items []fragment
}

func (s *fragStack) push(f fragment) { s.items = append(s.items, f) }

func (s *fragStack) pop() (fragment, bool) {
	if len(s.items) == 0 {
		return fragment{}, false
	}
	last := s.items[len(s.items)-1]
	s.items = s.items[:len(s.items)-1]
	return last, true
}

// Build compiles a pattern string into an NFA, following the postfix
// construction algorithm of spec.md §4.1.
func Build(pattern string) (*NFA, error) {
	items, err := scan(pattern)
	if err != nil {
		return nil, err
	}
	if len(items) == 0 {
		return nil, &CompileError{Pattern: pattern, Reason: "empty pattern"}
	}
	items = insertConcat(items)

	postfix, err := toPostfix(items)
	if err != nil {
		return nil, wrapPattern(pattern, err)
	}

	b := &builder{}
	stack := &fragStack{}

	popOperand := func() (fragment, error) {
		f, ok := stack.pop()
		if !ok {
			return fragment{}, &CompileError{Pattern: pattern, Reason: "operator missing operand"}
		}
		return f, nil
	}

	for _, it := range postfix {
		switch it.kind {
		case itemChar:
			id := b.addTransition(Literal(it.ch))
			stack.push(fragment{head: id, outs: []slot{{id, fieldOutput}}})

		case itemClass:
			id := b.addTransition(it.cls)
			stack.push(fragment{head: id, outs: []slot{{id, fieldOutput}}})

		case itemConcat:
			right, err := popOperand()
			if err != nil {
				return nil, err
			}
			left, err := popOperand()
			if err != nil {
				return nil, err
			}
			for _, s := range left.outs {
				b.patch(s, right.head)
			}
			stack.push(fragment{head: left.head, outs: right.outs})

		case itemAlt:
			right, err := popOperand()
			if err != nil {
				return nil, err
			}
			left, err := popOperand()
			if err != nil {
				return nil, err
			}
			split := b.addSplit(left.head, right.head)
			outs := append(append([]slot{}, left.outs...), right.outs...)
			stack.push(fragment{head: split, outs: outs})

		case itemOpt:
			e, err := popOperand()
			if err != nil {
				return nil, err
			}
			split := b.addSplit(e.head, InvalidState)
			outs := append(append([]slot{}, e.outs...), slot{split, fieldRight})
			stack.push(fragment{head: split, outs: outs})

		case itemStar:
			e, err := popOperand()
			if err != nil {
				return nil, err
			}
			split := b.addSplit(e.head, InvalidState)
			for _, s := range e.outs {
				b.patch(s, split)
			}
			stack.push(fragment{head: split, outs: []slot{{split, fieldRight}}})

		case itemPlus:
			e, err := popOperand()
			if err != nil {
				return nil, err
			}
			split := b.addSplit(e.head, InvalidState)
			for _, s := range e.outs {
				b.patch(s, split)
			}
			stack.push(fragment{head: e.head, outs: []slot{{split, fieldRight}}})
		}
	}

	final, ok := stack.pop()
	if !ok {
		return nil, &CompileError{Pattern: pattern, Reason: "empty pattern"}
	}
	if len(stack.items) != 0 {
		return nil, &CompileError{Pattern: pattern, Reason: "leftover fragments after construction"}
	}

	accept := b.addAccept()
	for _, s := range final.outs {
		b.patch(s, accept)
	}

	nfa := &NFA{States: b.states, Start: final.head}
	nfa.buildClosureCache()
	return nfa, nil
}

func wrapPattern(pattern string, err error) error {
	if ce, ok := err.(*CompileError); ok {
		ce.Pattern = pattern
		return ce
	}
	return err
}

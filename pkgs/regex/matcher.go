package regex

// Matcher is a compiled pattern. It is safe for concurrent use: its
// epsilon-closure cache is computed once at construction and never
// written again (spec.md §5).
type Matcher struct {
	nfa *NFA
}

// Compile builds a Matcher from a pattern string, or returns a
// *CompileError.
func Compile(pattern string) (*Matcher, error) {
	nfa, err := Build(pattern)
	if err != nil {
		return nil, err
	}
	return &Matcher{nfa: nfa}, nil
}

// MustCompile is Compile but panics on error, for package-level token
// spec tables built from string literals.
func MustCompile(pattern string) *Matcher {
	m, err := Compile(pattern)
	if err != nil {
		panic(err)
	}
	return m
}

// Matches reports whether the whole input is consumed by some run of
// the NFA that ends in an Accept state. There is no partial, leftmost,
// or anchored mode — the match is always whole-string.
func (m *Matcher) Matches(input string) bool {
	active := activeSet(m.nfa.closures[m.nfa.Start])

	for _, r := range input {
		next := make(map[StateID]struct{})
		for id := range active {
			st := m.nfa.state(id)
			if st.Kind != KindTransition {
				continue
			}
			if st.Condition.Accepts(r) {
				for _, c := range m.nfa.closures[st.Output] {
					next[c] = struct{}{}
				}
			}
		}
		active = next
	}

	for id := range active {
		if m.nfa.state(id).Kind == KindAccept {
			return true
		}
	}
	return false
}

func activeSet(ids []StateID) map[StateID]struct{} {
	set := make(map[StateID]struct{}, len(ids))
	for _, id := range ids {
		set[id] = struct{}{}
	}
	return set
}

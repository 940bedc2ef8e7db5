package genes

// Group is the complete set of interchangeable names for one gene: the
// primary symbol plus its synonyms from one reference dictionary row.
// The symbol is always a member of its own group.
type Group struct {
	symbol  Name
	members Set
}

// NewGroup creates a Group for the given symbol and synonyms. Empty names
// are dropped; the symbol itself is always included as a member.
func NewGroup(symbol Name, synonyms ...Name) *Group {
	members := make(Set, len(synonyms)+1)
	members.Add(symbol)
	for _, syn := range synonyms {
		if syn == "" {
			continue
		}
		members.Add(syn)
	}
	return &Group{symbol: symbol, members: members}
}

// Symbol returns the primary name of the group.
func (g *Group) Symbol() Name {
	return g.symbol
}

// Contains reports whether the name belongs to the group.
func (g *Group) Contains(n Name) bool {
	return g.members.Contains(n)
}

// Len returns the number of names in the group, symbol included.
func (g *Group) Len() int {
	return g.members.Len()
}

// Names returns every name in the group in lexicographic order.
func (g *Group) Names() []Name {
	return g.members.Names()
}

// Synonyms returns the group members other than the given name, in
// lexicographic order. For a member this is "every other way to write the
// same gene"; for a non-member it is simply all names in the group.
func (g *Group) Synonyms(of Name) []Name {
	names := make([]Name, 0, g.members.Len())
	for _, n := range g.members.Names() {
		if n == of {
			continue
		}
		names = append(names, n)
	}
	return names
}

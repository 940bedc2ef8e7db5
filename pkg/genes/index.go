package genes

// Index maps every known gene name, primary symbol or synonym, to the
// synonym group it belongs to. It is built once from the reference
// dictionary and read-only afterwards.
//
// Registration is first-seen wins: NCBI data occasionally lists one name
// under several symbol rows, and a deterministic tie-break keeps output
// reproducible. Later rows never displace an existing binding.
type Index struct {
	byName map[Name]*Group
	groups int
}

// NewIndex creates an empty Index.
func NewIndex() *Index {
	return &Index{byName: make(map[Name]*Group)}
}

// Register binds every name in the group to the group, skipping names that
// are already bound to an earlier group. It returns the number of names
// newly bound.
func (ix *Index) Register(g *Group) int {
	bound := 0
	for name := range g.members {
		if _, exists := ix.byName[name]; exists {
			continue
		}
		ix.byName[name] = g
		bound++
	}
	if bound > 0 {
		ix.groups++
	}
	return bound
}

// Lookup returns the synonym group a name belongs to.
func (ix *Index) Lookup(n Name) (*Group, bool) {
	g, ok := ix.byName[n]
	return g, ok
}

// Synonyms returns the known synonyms of a name, excluding the name itself,
// in lexicographic order. Unknown names yield nil: a gene absent from the
// dictionary simply has no known synonyms.
func (ix *Index) Synonyms(n Name) []Name {
	g, ok := ix.byName[n]
	if !ok {
		return nil
	}
	return g.Synonyms(n)
}

// Expand returns a new Set holding every member of s plus every name in the
// synonym groups of members known to the index.
func (ix *Index) Expand(s Set) Set {
	expanded := make(Set, len(s))
	for n := range s {
		expanded.Add(n)
		if g, ok := ix.byName[n]; ok {
			for member := range g.members {
				expanded.Add(member)
			}
		}
	}
	return expanded
}

// Len returns the number of distinct names bound in the index.
func (ix *Index) Len() int {
	return len(ix.byName)
}

// Groups returns the number of synonym groups that contributed at least one
// binding.
func (ix *Index) Groups() int {
	return ix.groups
}

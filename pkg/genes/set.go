package genes

import (
	"bufio"
	"os"
	"sort"

	"github.com/genekit/genesyn/pkg/constants"
	"github.com/genekit/genesyn/pkg/errors"
)

// Set is an unordered collection of unique gene names.
type Set map[Name]struct{}

// NewSet creates a Set containing the given names.
func NewSet(names ...Name) Set {
	s := make(Set, len(names))
	for _, n := range names {
		s.Add(n)
	}
	return s
}

// Add inserts a name into the set. Duplicates collapse silently.
func (s Set) Add(n Name) {
	s[n] = struct{}{}
}

// Contains reports whether the set holds the given name.
func (s Set) Contains(n Name) bool {
	_, ok := s[n]
	return ok
}

// Len returns the number of distinct names in the set.
func (s Set) Len() int {
	return len(s)
}

// Names returns the set members in lexicographic order.
func (s Set) Names() []Name {
	names := make([]Name, 0, len(s))
	for n := range s {
		names = append(names, n)
	}
	sort.Slice(names, func(i, j int) bool { return names[i] < names[j] })
	return names
}

// Intersects reports whether the set shares at least one name with other.
func (s Set) Intersects(other Set) bool {
	// Iterate the smaller side
	small, large := s, other
	if len(large) < len(small) {
		small, large = large, small
	}
	for n := range small {
		if large.Contains(n) {
			return true
		}
	}
	return false
}

// LoadSet reads a gene-name list file into a Set. The file holds one name
// per line; lines are normalized, blank lines are dropped, and duplicate
// names (including case variants) collapse to a single member.
func LoadSet(path string) (Set, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.WrapIO("open", path, err)
	}
	defer f.Close()

	set := make(Set)
	scanner := bufio.NewScanner(f)
	scanner.Buffer(make([]byte, constants.InitialLineBuffer), constants.MaxLineBytes)
	for scanner.Scan() {
		name := Normalize(scanner.Text())
		if name == "" {
			continue
		}
		set.Add(name)
	}
	if err := scanner.Err(); err != nil {
		return nil, errors.WrapIO("read", path, err)
	}
	return set, nil
}

package match

import (
	"fmt"

	"tmtidy/internal/faults"
)

// Resolution is the outcome of matching one artifact kind for one meeting:
// either exactly one path, or a typed rejection. There is no tie-break;
// ambiguity is always a rejection, never an arbitrary pick.
type Resolution struct {
	Kind       Kind
	Candidates []string
}

// Path returns the resolved file, valid only when Resolved reports true.
func (r Resolution) Path() string {
	if len(r.Candidates) == 1 {
		return r.Candidates[0]
	}
	return ""
}

// Resolved reports whether exactly one candidate matched.
func (r Resolution) Resolved() bool { return len(r.Candidates) == 1 }

// Reject returns the typed rejection for this resolution, or nil when it
// resolved. Zero candidates is NoMatch; two or more is AmbiguousMatch.
func (r Resolution) Reject() error {
	switch n := len(r.Candidates); {
	case n == 1:
		return nil
	case n == 0:
		return faults.Wrap(faults.ErrNoMatch, "resolving", string(r.Kind), "no file matched", nil)
	default:
		return faults.Wrap(faults.ErrAmbiguousMatch, "resolving", string(r.Kind),
			fmt.Sprintf("%d files matched", n), nil)
	}
}

// Resolve runs the directory matcher for every artifact kind of the pattern
// set and applies the one-match-only rule per kind.
func Resolve(dir string, set PatternSet) (map[Kind]Resolution, error) {
	out := make(map[Kind]Resolution, len(set))
	for _, kind := range Kinds() {
		patterns, ok := set[kind]
		if !ok {
			continue
		}
		candidates, err := Dir(dir, patterns)
		if err != nil {
			return nil, err
		}
		out[kind] = Resolution{Kind: kind, Candidates: candidates}
	}
	return out, nil
}

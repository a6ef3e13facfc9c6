package anno

import (
	"sort"
	"strings"
)

// Features is a morphological feature set (e.g. Case=Nom, Number=Sing).
type Features map[string]string

// String renders the feature set in CoNLL FEATS shape: Key=Value pairs
// sorted by key and joined with "|". The ordering is deterministic so that
// repeated renderings of the same feature set are identical.
func (f Features) String() string {
	if len(f) == 0 {
		return ""
	}
	pairs := make([]string, 0, len(f))
	for name, value := range f {
		pairs = append(pairs, name+"="+value)
	}
	sort.Strings(pairs)
	return strings.Join(pairs, "|")
}

// Get returns the value of a feature, or "" if unset.
func (f Features) Get(name string) string {
	return f[name]
}

// Clone returns an independent copy of the feature set.
func (f Features) Clone() Features {
	if f == nil {
		return nil
	}
	out := make(Features, len(f))
	for name, value := range f {
		out[name] = value
	}
	return out
}

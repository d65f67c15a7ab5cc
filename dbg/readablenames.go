package dbg

import (
	"fmt"
	"strings"

	petname "github.com/dustinkirkland/golang-petname"
)

// This converts arbitrary values into random readable names. Geometric
// points carry their own letter labels, but derived lines do not, and
// coefficient triples are hard to tell apart at a glance when several are
// in play. The memo flagrantly leaks memory, but names are generated
// lazily, so it only matters if you're actually using it.

var memo map[string]string

func init() {
	memo = make(map[string]string)
	// Since the ids are generated in order of demand, we make them
	// nondeterministic to remind the user that the same name doesn't refer to
	// the same thing between runs.
	petname.NonDeterministicMode()
}

func Name(obj interface{}) string {
	if obj == nil {
		return "Ø"
	}
	key := fmt.Sprintf("%T%v", obj, obj)
	if r, ok := memo[key]; ok {
		return r
	}
	r := fmt.Sprintf("%s%s", strings.Title(petname.Adjective()), strings.Title(petname.Name()))
	memo[key] = r
	return r
}

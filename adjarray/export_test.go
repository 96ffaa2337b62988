package adjarray

import "github.com/graphrep/graphrep/core"

// FirstOutForTest exposes the offset array so white-box tests can assert
// the partition invariant directly, without widening the production API.
func FirstOutForTest[N, E any](a *Array[N, E]) []core.EdgeID {
	return a.firstOut
}

package pvec

import "fmt"

// assert panics if cond is false, documenting an invariant the algorithm is
// supposed to guarantee rather than validating caller input.
func assert(cond bool, msg string) {
	if !cond {
		panic("pvec: " + msg)
	}
}

func outOfBoundsMsg(kind string, i, length int) string {
	return fmt.Sprintf("index `%d` out of bounds in %s of length `%d`", i, kind, length)
}

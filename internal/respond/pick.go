package respond

import "math/rand/v2"

// Pick returns a uniformly random element of list. The math/rand/v2 global
// source is safe for concurrent callers, so requests never share explicit
// generator state.
func Pick(list []string) string {
	if len(list) == 0 {
		return DefaultReply
	}
	return list[rand.IntN(len(list))]
}

// Coin returns true with probability 1/2.
func Coin() bool {
	return rand.IntN(2) == 0
}

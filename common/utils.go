package common

// Min and Max are plain integer helpers used by move generation and
// search bounds; small enough that no ecosystem library earns its
// import for them.
func Min(l, r int) int {
	if l < r {
		return l
	}
	return r
}

func Max(l, r int) int {
	if l > r {
		return l
	}
	return r
}

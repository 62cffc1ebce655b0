package pairwise

// Vote records one head-to-head outcome: index 0 beat index 1.
type Vote [2]string

// Pair is an unordered pair of candidates. Its orientation carries no
// voting meaning until it is cast as a Vote.
type Pair = Vote

func (v Vote) Winner() string {
	return v[0]
}

func (v Vote) Loser() string {
	return v[1]
}

func (v Vote) Reversed() Vote {
	return Vote{v[1], v[0]}
}

func (v Vote) Involves(candidate string) bool {
	return v[0] == candidate || v[1] == candidate
}

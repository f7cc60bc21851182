package game

type Player int

const (
	One Player = iota + 1
	Two
)

func (p Player) Other() Player {
	if p == One {
		return Two
	}
	return One
}

// Offset converts a pot on p's side into an absolute position.
func (p Player) Offset(half int) Pos {
	if p == One {
		return 0
	}
	return Pos(half)
}

// Base is the absolute position of p's base.
func (p Player) Base(half int) Pos {
	return p.Offset(half)
}

// Sign turns a margin in favour of One into a margin in favour of p.
func (p Player) Sign() int {
	if p == One {
		return 1
	}
	return -1
}

func (p Player) String() string {
	switch p {
	case One:
		return "one"
	case Two:
		return "two"
	default:
		return "unknown"
	}
}

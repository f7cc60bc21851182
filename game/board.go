package game

import (
	"bytes"
	"fmt"
	"strconv"
	"strings"

	"mancala/utils"
)

// Board holds the beads of both halves in playing order. Index 0 is One's
// base and index Half() is Two's base.
//
// Board should be immutable - operations on Board always return a new copy
type Board struct {
	pits []int
}

// NewBoard copies values into a new board.
func NewBoard(values []int) (Board, error) {
	if len(values) < 4 || len(values)%2 != 0 {
		return Board{}, fmt.Errorf("%w: got length %d", ErrShape, len(values))
	}
	pits := make([]int, len(values))
	for i, v := range values {
		if v < 0 {
			return Board{}, fmt.Errorf("%w: position %d holds %d", ErrNegativeBeads, i, v)
		}
		pits[i] = v
	}
	return Board{pits: pits}, nil
}

// Parse reads the comma-separated form produced by String.
func Parse(s string) (Board, error) {
	parts := strings.Split(strings.TrimSpace(s), ",")
	values := make([]int, 0, len(parts))
	for _, part := range parts {
		n, err := strconv.Atoi(strings.TrimSpace(part))
		if err != nil {
			return Board{}, fmt.Errorf("cannot parse board %q: %w", s, err)
		}
		values = append(values, n)
	}
	return NewBoard(values)
}

// String converts a board into its comma-separated wire form
func (b Board) String() string {
	var buf bytes.Buffer
	for i, n := range b.pits {
		if i > 0 {
			buf.WriteByte(',')
		}
		buf.WriteString(strconv.Itoa(n))
	}
	return buf.String()
}

func (b Board) MarshalText() ([]byte, error) {
	return []byte(b.String()), nil
}

func (b *Board) UnmarshalText(text []byte) error {
	parsed, err := Parse(string(text))
	if err != nil {
		return err
	}
	*b = parsed
	return nil
}

func (b Board) Len() int {
	return len(b.pits)
}

func (b Board) Half() int {
	return len(b.pits) / 2
}

func (b Board) Pit(pos Pos) int {
	return b.pits[pos]
}

// Values returns a copy of the raw sequence in playing order.
func (b Board) Values() []int {
	values := make([]int, len(b.pits))
	copy(values, b.pits)
	return values
}

func (b Board) Total() int {
	return utils.Sum(b.pits)
}

// InRange reports whether pos is one of player's pits (its base excluded).
func (b Board) InRange(player Player, pos Pos) bool {
	half := b.Half()
	if pos < 0 || int(pos) >= len(b.pits) {
		panic(fmt.Sprintf("position %d out of bounds", pos))
	}
	if pos == player.Base(half) {
		return false
	}
	side := (int(pos) / half) % 2
	if player == One {
		return side == 0
	}
	return side == 1
}

// Opposite reflects a pit across the board. Bases have no opposite.
func (b Board) Opposite(pos Pos) (Pos, bool) {
	half := b.Half()
	if pos < 0 || int(pos) >= len(b.pits) {
		panic(fmt.Sprintf("position %d out of bounds", pos))
	}
	if pos == One.Base(half) || pos == Two.Base(half) {
		return 0, false
	}
	return Pos(len(b.pits)) - pos, true
}

// PossibleMoves lists all non-empty pots on player's side, ascending.
func (b Board) PossibleMoves(player Player) []Pot {
	half := b.Half()
	offset := player.Offset(half)
	moves := make([]Pot, 0, max(half-1, 0))
	for pot := Pot(1); int(pot) < half; pot++ {
		if b.pits[offset+Pos(pot)] > 0 {
			moves = append(moves, pot)
		}
	}
	return moves
}

func (b Board) HasMoves(player Player) bool {
	half := b.Half()
	offset := player.Offset(half)
	for pot := 1; pot < half; pot++ {
		if b.pits[offset+Pos(pot)] > 0 {
			return true
		}
	}
	return false
}

// Over reports whether either side has run out of moves.
func (b Board) Over() bool {
	return !b.HasMoves(One) || !b.HasMoves(Two)
}

// Play picks up the beads in pot and sows them one by one towards lower
// positions, skipping the opponent's base. A last bead landing in an empty
// pit on the mover's side claims the beads in the opposite pit.
func (b Board) Play(player Player, pot Pot) (Board, error) {
	half := b.Half()
	if pot < 1 || int(pot) >= half {
		return Board{}, fmt.Errorf("%w: pot %d is not in 1..%d", ErrInvalidMove, pot, half-1)
	}
	pos := player.Offset(half) + Pos(pot)
	beads := b.pits[pos]
	if beads == 0 {
		return Board{}, fmt.Errorf("%w: pot %d of player %s holds no beads", ErrInvalidMove, pot, player)
	}

	pits := b.Values()
	pits[pos] = 0

	size := Pos(len(pits))
	skip := player.Other().Base(half)
	for beads > 0 {
		pos = (pos - 1 + size) % size
		if pos == skip {
			continue
		}
		pits[pos]++
		beads--
	}

	next := Board{pits: pits}
	if pos != One.Base(half) && pos != Two.Base(half) && pits[pos] == 1 && next.InRange(player, pos) {
		opposite, _ := next.Opposite(pos)
		pits[player.Base(half)] += pits[opposite]
		pits[opposite] = 0
	}
	return next, nil
}

// Score totals player's half, base included.
func (b Board) Score(player Player) int {
	half := b.Half()
	if player == One {
		return utils.Sum(b.pits[:half])
	}
	return utils.Sum(b.pits[half:])
}

// Margin is positive when One is ahead and negative when Two is.
func (b Board) Margin() int {
	return b.Score(One) - b.Score(Two)
}

// Pretty renders the board as two rows, each pit above its opposite.
func (b Board) Pretty() string {
	half := b.Half()
	top := make([]int, 0, half)
	bottom := make([]int, 0, half)
	for i := 0; i < half; i++ {
		top = append(top, b.pits[i])
		bottom = append(bottom, b.pits[len(b.pits)-1-i])
	}
	return fmt.Sprintf("%s    \n   %s", displayRow(top), displayRow(bottom))
}

// PotLabels is the pot header for player's row of Pretty.
func (b Board) PotLabels(player Player) string {
	half := b.Half()
	labels := make([]int, 0, half-1)
	for pot := 1; pot < half; pot++ {
		if player == One {
			labels = append(labels, pot)
		} else {
			labels = append(labels, half-pot)
		}
	}
	return strings.ReplaceAll("   "+displayRow(labels)+"    ", " ", "=")
}

func displayRow(ns []int) string {
	cells := make([]string, len(ns))
	for i, n := range ns {
		cells[i] = fmt.Sprintf("%2d", n)
	}
	return strings.Join(cells, " ")
}

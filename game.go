package gammon

import (
	"errors"
	"fmt"
)

var (
	// ErrMustEnterFromBar is returned when a player with checkers on the
	// bar attempts any move that does not enter from the bar.
	ErrMustEnterFromBar = errors.New("checkers on the bar must enter first")
	// ErrNoCheckerAtOrigin is returned when the origin holds no checker
	// belonging to the player.
	ErrNoCheckerAtOrigin = errors.New("no checker at origin")
	// ErrIllegalDistance is returned when no available die value, and no
	// chain of available die values over open points, matches the move.
	ErrIllegalDistance = errors.New("illegal move distance")
	// ErrBlockedDestination is returned when the destination holds two or
	// more opposing checkers.
	ErrBlockedDestination = errors.New("destination is blocked")
	// ErrIllegalBearOff is returned when bearing off before all of the
	// player's checkers are in their home board.
	ErrIllegalBearOff = errors.New("all checkers must be home to bear off")
	// ErrIncompleteTurn is returned when a submission consumes fewer dice
	// than some legal sequence of moves could.
	ErrIncompleteTurn = errors.New("turn must use as many dice as possible")
	// ErrGameOver is returned when acting on a finished game.
	ErrGameOver = errors.New("game is over")
	// ErrAlreadyRolled is returned when rolling while dice are pending.
	ErrAlreadyRolled = errors.New("dice were already rolled this turn")
	// ErrNoRoll is returned when submitting moves before rolling.
	ErrNoRoll = errors.New("dice have not been rolled")
)

// Game holds the complete state of a backgammon game. The board is only
// mutated by applying validated moves, so a rejected submission always
// leaves the game unchanged.
type Game struct {
	Board   []int8
	Player1 Player
	Player2 Player
	Turn    int8 // 0 until the opening roll decides who moves first.
	Roll1   int8
	Roll2   int8
	Moves   [][]int8 // Expanded moves applied during the current turn.
	Winner  int8

	rolls *Roll // Dice values remaining to be consumed this turn.
}

// NewGame returns a game with the standard starting layout, awaiting the
// opening roll.
func NewGame() *Game {
	return &Game{
		Board:   NewBoard(),
		Player1: NewPlayer(1),
		Player2: NewPlayer(2),
	}
}

// Copy returns a deep copy of the game.
func (g *Game) Copy() *Game {
	newGame := *g
	newGame.Board = append([]int8(nil), g.Board...)
	newGame.Moves = append([][]int8(nil), g.Moves...)
	if g.rolls != nil {
		newGame.rolls = g.rolls.Copy()
	}
	return &newGame
}

// Reset replaces the board with the starting layout and awaits a new
// opening roll. Player identities are retained.
func (g *Game) Reset() {
	g.Board = NewBoard()
	g.Turn, g.Roll1, g.Roll2, g.Winner = 0, 0, 0, 0
	g.Moves = nil
	g.rolls = nil
}

// Roll sets the dice for the current turn. The game begins with an
// opening roll: each player contributes one die, the higher die's owner
// moves first and plays both values. An equal opening roll assigns no
// player and must be rerolled.
func (g *Game) Roll(r1 int8, r2 int8) error {
	if g.Winner != 0 {
		return ErrGameOver
	}
	if r1 < 1 || r1 > 6 || r2 < 1 || r2 > 6 {
		return ErrInvalidDieValue
	}
	if g.Turn == 0 {
		if r1 == r2 {
			return nil
		}
		if r1 > r2 {
			g.Turn = 1
		} else {
			g.Turn = 2
		}
	} else if g.Roll1 != 0 {
		return ErrAlreadyRolled
	}
	g.Roll1, g.Roll2 = r1, r2
	g.rolls = NewRoll(r1, r2)
	g.Moves = nil
	return nil
}

// DiceRolls returns the dice values remaining to be consumed this turn.
func (g *Game) DiceRolls() []int8 {
	if g.rolls == nil {
		return nil
	}
	return g.rolls.Values()
}

// LegalMoves returns every legal elementary move for the current player
// with the remaining dice.
func (g *Game) LegalMoves() [][]int8 {
	if g.Winner != 0 || g.rolls == nil {
		return nil
	}
	return legalMovesOn(g.Board, g.rolls, g.Turn)
}

// AddMoves validates a complete turn submission for the current player and
// applies it. A move whose distance does not match a single die is
// expanded into a chain of single-die hops; the applied hops are returned.
// A submission that consumes fewer dice than some legal sequence could is
// rejected with ErrIncompleteTurn, and an empty submission is accepted
// only when no legal move exists, forfeiting the turn. Acceptance
// consumes the dice, applies the moves and passes the turn, or ends the
// game when the player's fifteenth checker is borne off. The game is
// never modified when a submission is rejected.
func (g *Game) AddMoves(moves [][]int8) ([][]int8, error) {
	if g.Winner != 0 {
		return nil, ErrGameOver
	}
	if g.Turn == 0 || g.rolls == nil {
		return nil, ErrNoRoll
	}

	board := append([]int8(nil), g.Board...)
	rolls := g.rolls.Copy()
	var expanded [][]int8
	for _, move := range moves {
		from, to := move[0], move[1]
		_, err := checkMove(board, rolls, g.Turn, from, to)
		if err != nil {
			if errors.Is(err, ErrIllegalDistance) {
				if hops, ok := expandMove(board, rolls, g.Turn, from, to); ok {
					for _, hop := range hops {
						applyMove(board, rolls, g.Turn, hop[0], hop[1])
						expanded = append(expanded, hop)
					}
					continue
				}
			}
			return nil, err
		}
		applyMove(board, rolls, g.Turn, from, to)
		expanded = append(expanded, []int8{from, to})
	}

	if !rolls.Empty() {
		memo := make(map[string]int8)
		max := maxUsableDice(g.Board, g.rolls.Copy(), g.Turn, memo)
		if int8(len(expanded)) < max {
			return nil, ErrIncompleteTurn
		}
	}

	before1, before2 := checkerTotals(g.Board)
	copy(g.Board, board)
	g.rolls = rolls
	g.Moves = append(g.Moves, expanded...)
	if after1, after2 := checkerTotals(g.Board); after1 != before1 || after2 != before2 {
		panic(fmt.Sprintf("gammon: checker count changed from %d/%d to %d/%d", before1, before2, after1, after2))
	}

	if PlayerCheckers(g.Board[homeSpace(g.Turn)], g.Turn) == CheckerCount {
		g.Winner = g.Turn
		return expanded, nil
	}
	g.nextTurn()
	return expanded, nil
}

func (g *Game) nextTurn() {
	if g.Turn == 1 {
		g.Turn = 2
	} else {
		g.Turn = 1
	}
	g.Roll1, g.Roll2 = 0, 0
	g.rolls = nil
}

// checkMove validates a single hop against the board and remaining dice,
// returning the die value the hop consumes. A bear-off may consume a die
// larger than the exact distance only when no checker sits farther from
// home than the origin, in which case the highest remaining die is used.
func checkMove(board []int8, rolls *Roll, player int8, from int8, to int8) (int8, error) {
	bar := barSpace(player)
	if PlayerCheckers(board[bar], player) != 0 && from != bar {
		return 0, ErrMustEnterFromBar
	}
	if from != bar && (from < 1 || from > 24) {
		return 0, ErrNoCheckerAtOrigin
	}
	if PlayerCheckers(board[from], player) == 0 {
		return 0, ErrNoCheckerAtOrigin
	}
	home := homeSpace(player)
	if to != home && (to < 1 || to > 24) {
		return 0, fmt.Errorf("%w: no die moves to that space", ErrIllegalDistance)
	}

	dist := normPos(from, player) - normPos(to, player)
	if dist < 1 {
		return 0, fmt.Errorf("%w: %d", ErrIllegalDistance, dist)
	}
	if to == home {
		if !CanBearOff(board, player) {
			return 0, ErrIllegalBearOff
		}
	} else if !SpaceOpen(board, to, player) {
		return 0, ErrBlockedDestination
	}

	if rolls.Have(dist) {
		return dist, nil
	}
	if to == home && rolls.Max() > dist && !anyBehind(board, player, from) {
		return rolls.Max(), nil
	}
	return 0, fmt.Errorf("%w: %d", ErrIllegalDistance, dist)
}

// applyMove applies a validated hop, consuming its die value and sending a
// hit checker to the opponent's bar.
func applyMove(board []int8, rolls *Roll, player int8, from int8, to int8) {
	die := normPos(from, player) - normPos(to, player)
	if !rolls.Have(die) {
		die = rolls.Max() // Bear-off with a larger die than necessary.
	}
	if err := rolls.Use(die); err != nil {
		panic(fmt.Sprintf("gammon: applied unchecked move %d/%d: %s", from, to, err))
	}

	if to >= 1 && to <= 24 && OpponentCheckers(board[to], player) == 1 {
		board[to] = 0
		if player == 1 {
			board[SpaceBarOpponent]--
		} else {
			board[SpaceBarPlayer]++
		}
	}

	delta := int8(1)
	if player == 2 {
		delta = -1
	}
	board[from] -= delta
	board[to] += delta
}

// anyBehind reports whether the player has a checker farther from home
// than the given point.
func anyBehind(board []int8, player int8, space int8) bool {
	if player == 2 {
		for p := space - 1; p >= 1; p-- {
			if PlayerCheckers(board[p], player) != 0 {
				return true
			}
		}
		return false
	}
	for p := space + 1; p <= 24; p++ {
		if PlayerCheckers(board[p], player) != 0 {
			return true
		}
	}
	return false
}

// targetSpace returns the space a checker lands on when moved the given
// distance, or -1 when the move runs off the board without bearing off.
func targetSpace(player int8, from int8, die int8) int8 {
	pos := normPos(from, player) - die
	if pos >= 1 && pos <= 24 {
		if player == 2 {
			return 25 - pos
		}
		return pos
	}
	if pos <= 0 && from != barSpace(player) {
		return homeSpace(player) // Exact or overshoot bear-off.
	}
	return -1
}

// legalMovesOn enumerates every legal elementary move for the player.
func legalMovesOn(board []int8, rolls *Roll, player int8) [][]int8 {
	if rolls == nil || rolls.Empty() {
		return nil
	}
	var origins []int8
	if PlayerCheckers(board[barSpace(player)], player) != 0 {
		origins = []int8{barSpace(player)}
	} else {
		for p := int8(1); p <= 24; p++ {
			if PlayerCheckers(board[p], player) != 0 {
				origins = append(origins, p)
			}
		}
	}
	var moves [][]int8
	for _, from := range origins {
		seen := make(map[int8]bool)
		for _, die := range rolls.Values() {
			to := targetSpace(player, from, die)
			if to == -1 || seen[to] {
				continue
			}
			seen[to] = true
			if _, err := checkMove(board, rolls, player, from, to); err == nil {
				moves = append(moves, []int8{from, to})
			}
		}
	}
	return moves
}

// expandMove attempts to express a move whose distance does not match a
// single die as a chain of single-die hops by the same checker, each
// landing on an open point. Hits on intermediate points are applied while
// searching, so the returned hops replay exactly.
func expandMove(board []int8, rolls *Roll, player int8, from int8, to int8) ([][]int8, bool) {
	var search func(b []int8, r *Roll, cur int8, path [][]int8) ([][]int8, bool)
	search = func(b []int8, r *Roll, cur int8, path [][]int8) ([][]int8, bool) {
		if len(path) == 4 {
			return nil, false
		}
		seen := make(map[int8]bool)
		for _, die := range r.Values() {
			next := targetSpace(player, cur, die)
			if next == -1 || seen[next] {
				continue
			}
			seen[next] = true
			if next != to && (next < 1 || next > 24) {
				continue // Only the final hop may bear off.
			}
			if _, err := checkMove(b, r, player, cur, next); err != nil {
				continue
			}
			nb := append([]int8(nil), b...)
			nr := r.Copy()
			applyMove(nb, nr, player, cur, next)
			np := append(append([][]int8(nil), path...), []int8{cur, next})
			if next == to {
				return np, true
			}
			if hops, ok := search(nb, nr, next, np); ok {
				return hops, true
			}
		}
		return nil, false
	}
	return search(board, rolls, from, nil)
}

// maxUsableDice returns the highest number of dice any legal sequence of
// moves can consume from the given position. The search is bounded by the
// four dice of a double and memoized on the board and remaining dice.
func maxUsableDice(board []int8, rolls *Roll, player int8, memo map[string]int8) int8 {
	if rolls.Empty() {
		return 0
	}
	key := searchKey(board, rolls)
	if v, ok := memo[key]; ok {
		return v
	}
	var best int8
	remaining := int8(len(rolls.Values()))
	for _, move := range legalMovesOn(board, rolls, player) {
		b := append([]int8(nil), board...)
		r := rolls.Copy()
		applyMove(b, r, player, move[0], move[1])
		if v := 1 + maxUsableDice(b, r, player, memo); v > best {
			best = v
			if best == remaining {
				break
			}
		}
	}
	memo[key] = best
	return best
}

func searchKey(board []int8, rolls *Roll) string {
	key := make([]byte, 0, BoardSpaces+4)
	for _, v := range board {
		key = append(key, byte(v))
	}
	for _, v := range rolls.Values() {
		key = append(key, byte(v))
	}
	return string(key)
}

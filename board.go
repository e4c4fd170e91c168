package gammon

// The board is stored from player 1's perspective: positive counts are
// player 1's checkers and negative counts are player 2's. All state shown
// to player 2, and all input received from player 2, is translated at the
// boundary with FlipSpace rather than each time spaces are used.

// 1-24 for the 24 points, plus two bar spaces and two bear-off spaces.
const (
	SpaceHomePlayer   int8 = 0  // Player 1 bear-off area.
	SpaceBarPlayer    int8 = 25 // Player 1 bar.
	SpaceBarOpponent  int8 = 26 // Player 2 bar.
	SpaceHomeOpponent int8 = 27 // Player 2 bear-off area.
)

// BoardSpaces is the total number of spaces: 24 points, two bars and two
// bear-off areas.
const BoardSpaces = 28

// CheckerCount is the number of checkers each player starts with.
const CheckerCount = 15

// NewBoard returns a board with the standard starting layout. Player 1
// moves from 24 toward 1 and bears off at 0, player 2 the reverse.
func NewBoard() []int8 {
	board := make([]int8, BoardSpaces)
	board[24], board[13], board[8], board[6] = 2, 5, 3, 5
	board[1], board[12], board[17], board[19] = -2, -5, -3, -5
	return board
}

// PlayerCheckers returns how many checkers of the given space count belong
// to the specified player.
func PlayerCheckers(checkers int8, player int8) int8 {
	if player == 2 {
		if checkers < 0 {
			return -checkers
		}
		return 0
	}
	if checkers > 0 {
		return checkers
	}
	return 0
}

// OpponentCheckers returns how many checkers of the given space count
// belong to the specified player's opponent.
func OpponentCheckers(checkers int8, player int8) int8 {
	if player == 2 {
		return PlayerCheckers(checkers, 1)
	}
	return PlayerCheckers(checkers, 2)
}

// SpaceColor returns which player's checkers occupy the given space count,
// or 0 when the space is empty.
func SpaceColor(checkers int8) int8 {
	switch {
	case checkers > 0:
		return 1
	case checkers < 0:
		return 2
	}
	return 0
}

// SpaceOpen reports whether the player may land on the space: it is empty,
// holds only the player's checkers, or holds a single opposing checker
// which would be hit.
func SpaceOpen(board []int8, space int8, player int8) bool {
	return OpponentCheckers(board[space], player) <= 1
}

// HomeRange returns the nearest and farthest points of the player's home
// board.
func HomeRange(player int8) (from int8, to int8) {
	if player == 2 {
		return 24, 19
	}
	return 1, 6
}

// CanBearOff reports whether all of the player's checkers are in their
// home board or already borne off.
func CanBearOff(board []int8, player int8) bool {
	if PlayerCheckers(board[barSpace(player)], player) != 0 {
		return false
	}
	for space := int8(1); space <= 24; space++ {
		if normPos(space, player) > 6 && PlayerCheckers(board[space], player) != 0 {
			return false
		}
	}
	return true
}

// FlipSpace translates a space between the board's stored perspective and
// player 2's numbering. Player 1's numbering is the stored one, so the
// translation is self-inverse.
func FlipSpace(space int8, player int8) int8 {
	if player != 2 {
		return space
	}
	switch space {
	case SpaceHomePlayer:
		return SpaceHomeOpponent
	case SpaceHomeOpponent:
		return SpaceHomePlayer
	case SpaceBarPlayer:
		return SpaceBarOpponent
	case SpaceBarOpponent:
		return SpaceBarPlayer
	}
	return 25 - space
}

// FlipMoves translates the spaces of each move via FlipSpace.
func FlipMoves(moves [][]int8, player int8) [][]int8 {
	flipped := make([][]int8, len(moves))
	for i := range moves {
		flipped[i] = []int8{FlipSpace(moves[i][0], player), FlipSpace(moves[i][1], player)}
	}
	return flipped
}

func barSpace(player int8) int8 {
	if player == 2 {
		return SpaceBarOpponent
	}
	return SpaceBarPlayer
}

func homeSpace(player int8) int8 {
	if player == 2 {
		return SpaceHomeOpponent
	}
	return SpaceHomePlayer
}

// normPos normalizes a space to the player's direction of travel: the bar
// is 25, the bear-off area is 0, and points count down toward home.
func normPos(space int8, player int8) int8 {
	if player == 2 {
		switch space {
		case SpaceBarOpponent:
			return 25
		case SpaceHomeOpponent:
			return 0
		}
		return 25 - space
	}
	switch space {
	case SpaceBarPlayer:
		return 25
	case SpaceHomePlayer:
		return 0
	}
	return space
}

// checkerTotals returns the number of checkers on the board belonging to
// each player, including the bars and bear-off areas.
func checkerTotals(board []int8) (player1 int8, player2 int8) {
	for _, checkers := range board {
		player1 += PlayerCheckers(checkers, 1)
		player2 += PlayerCheckers(checkers, 2)
	}
	return player1, player2
}

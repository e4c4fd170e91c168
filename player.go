package gammon

// Player represents one of the two players in a game. Player 1 plays the
// black checkers, stored as positive counts, and player 2 plays the white
// checkers, stored as negative counts.
type Player struct {
	Number int8
	Name   string
}

// NewPlayer returns a player with the given number.
func NewPlayer(number int8) Player {
	return Player{Number: number}
}

package gammon

// GameState is a game as seen by one player, along with the legal moves
// available with the remaining dice.
type GameState struct {
	*Game
	PlayerNumber int8
	Available    [][]int8
}

// LocalPlayer returns the player this state belongs to.
func (g *GameState) LocalPlayer() Player {
	if g.PlayerNumber == 2 {
		return g.Player2
	}
	return g.Player1
}

// OpponentPlayer returns the opponent of the player this state belongs to.
func (g *GameState) OpponentPlayer() Player {
	if g.PlayerNumber == 2 {
		return g.Player1
	}
	return g.Player2
}

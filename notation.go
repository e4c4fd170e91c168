package gammon

import (
	"bytes"
	"errors"
	"fmt"
	"sort"
	"strconv"
	"strings"
)

var (
	// ErrMalformedNotation is returned when a move token cannot be parsed.
	ErrMalformedNotation = errors.New("malformed move notation")
	// ErrInvalidPoint is returned when a point is outside of 1-24.
	ErrInvalidPoint = errors.New("point out of range")
	// ErrInvalidKeyword is returned when bar or off appears anywhere other
	// than the start or end of a move.
	ErrInvalidKeyword = errors.New("misplaced keyword")
)

// DecodeMoves parses moves written in standard notation into from/to pairs
// using the acting player's numbering. Moves are separated by whitespace.
// A move lists two or more stops separated by "/": the stops of a chain
// describe a single checker's journey and decode into one pair per hop, so
// "8/3/1" decodes into 8/3 followed by 3/1. The first stop of a move may
// be "bar" and the last may be "off".
func DecodeMoves(input string) ([][]int8, error) {
	var moves [][]int8
	for _, group := range strings.Fields(input) {
		stops := strings.Split(group, "/")
		if len(stops) < 2 {
			return nil, fmt.Errorf("%w: %q", ErrMalformedNotation, group)
		}
		spaces := make([]int8, len(stops))
		for i, stop := range stops {
			switch strings.ToLower(stop) {
			case "bar", "b":
				if i != 0 {
					return nil, fmt.Errorf("%w: bar may only begin a move", ErrInvalidKeyword)
				}
				spaces[i] = SpaceBarPlayer
			case "off", "o", "home", "h":
				if i != len(stops)-1 {
					return nil, fmt.Errorf("%w: off may only end a move", ErrInvalidKeyword)
				}
				spaces[i] = SpaceHomePlayer
			default:
				v, err := strconv.Atoi(stop)
				if err != nil {
					return nil, fmt.Errorf("%w: %q", ErrMalformedNotation, stop)
				}
				if v < 1 || v > 24 {
					return nil, fmt.Errorf("%w: %d", ErrInvalidPoint, v)
				}
				spaces[i] = int8(v)
			}
		}
		for i := 0; i < len(spaces)-1; i++ {
			moves = append(moves, []int8{spaces[i], spaces[i+1]})
		}
	}
	return moves, nil
}

// FormatSpace returns the notation label for a space in the acting
// player's numbering.
func FormatSpace(space int8) []byte {
	switch space {
	case SpaceBarPlayer, SpaceBarOpponent:
		return []byte("bar")
	case SpaceHomePlayer, SpaceHomeOpponent:
		return []byte("off")
	}
	return []byte(strconv.Itoa(int(space)))
}

// FormatMoves formats moves as space-separated from/to pairs.
func FormatMoves(moves [][]int8) []byte {
	var out bytes.Buffer
	for i := range moves {
		if i > 0 {
			out.WriteByte(' ')
		}
		out.Write(FormatSpace(moves[i][0]))
		out.WriteByte('/')
		out.Write(FormatSpace(moves[i][1]))
	}
	return out.Bytes()
}

// SortMoves sorts moves by origin and then by destination, the farthest
// from home first.
func SortMoves(moves [][]int8) {
	sort.Slice(moves, func(i, j int) bool {
		if moves[i][0] != moves[j][0] {
			return moves[i][0] > moves[j][0]
		}
		return moves[i][1] > moves[j][1]
	})
}

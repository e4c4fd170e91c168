package main

import (
	"bufio"
	"crypto/rand"
	"flag"
	"fmt"
	"log"
	"math/big"
	"os"
	"strconv"
	"strings"

	"codeberg.org/tslocum/gotext"
	"github.com/caarlos0/env/v11"
	"github.com/gammonlabs/gammon"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

type appConfig struct {
	Player1 string `env:"GAMMON_PLAYER1" envDefault:"Player 1"`
	Player2 string `env:"GAMMON_PLAYER2" envDefault:"Player 2"`
	Verbose bool   `env:"GAMMON_VERBOSE"`
}

func main() {
	cfg := appConfig{}
	if err := env.Parse(&cfg); err != nil {
		log.Fatalf("failed to parse environment: %s", err)
	}

	var rollStatistics bool
	flag.StringVar(&cfg.Player1, "name1", cfg.Player1, "Name of the first player")
	flag.StringVar(&cfg.Player2, "name2", cfg.Player2, "Name of the second player")
	flag.BoolVar(&cfg.Verbose, "verbose", cfg.Verbose, "Echo applied moves after each turn")
	flag.BoolVar(&rollStatistics, "statistics", false, "print dice roll statistics and exit")
	flag.Parse()

	if rollStatistics {
		printRollStatistics()
		return
	}

	gotext.SetDomain("gammon-en")

	g := gammon.NewGame()
	g.Player1.Name = cfg.Player1
	g.Player2.Name = cfg.Player2

	for {
		r1, r2 := rollDie(), rollDie()
		fmt.Println(gotext.Get("%s rolls %d, %s rolls %d.", g.Player1.Name, r1, g.Player2.Name, r2))
		if err := g.Roll(r1, r2); err != nil {
			log.Fatalf("failed to make opening roll: %s", err)
		}
		if g.Turn != 0 {
			break
		}
		fmt.Println(gotext.Get("The opening roll is a tie. Rolling again."))
	}

	in := bufio.NewScanner(os.Stdin)
	for g.Winner == 0 {
		if g.Roll1 == 0 {
			if err := g.Roll(rollDie(), rollDie()); err != nil {
				log.Fatalf("failed to roll: %s", err)
			}
		}
		state := &gammon.GameState{Game: g, PlayerNumber: g.Turn, Available: g.LegalMoves()}
		os.Stdout.Write(state.BoardState(state.PlayerNumber))

		if len(state.Available) == 0 {
			fmt.Println(gotext.Get("%s cannot move and forfeits the turn.", state.LocalPlayer().Name))
			if _, err := g.AddMoves(nil); err != nil {
				log.Fatalf("failed to forfeit turn: %s", err)
			}
			continue
		}

		mover := g.Turn
		fmt.Print(gotext.Get("%s to play (dice: %s): ", state.LocalPlayer().Name, diceLabel(g.DiceRolls())))
		if !in.Scan() {
			return
		}
		input := strings.TrimSpace(in.Text())
		switch strings.ToLower(input) {
		case "":
			continue
		case "quit", "q":
			return
		case "moves", "?":
			available := gammon.FlipMoves(state.Available, mover)
			gammon.SortMoves(available)
			fmt.Printf("%s\n", gammon.FormatMoves(available))
			continue
		}

		moves, err := gammon.DecodeMoves(input)
		if err != nil {
			fmt.Println(gotext.Get("Invalid move: %s", err))
			continue
		}
		expanded, err := g.AddMoves(gammon.FlipMoves(moves, mover))
		if err != nil {
			fmt.Println(gotext.Get("Illegal play: %s", err))
			continue
		}
		if cfg.Verbose {
			fmt.Printf("%s\n", gammon.FormatMoves(gammon.FlipMoves(expanded, mover)))
		}
	}

	winner := g.Player1
	if g.Winner == 2 {
		winner = g.Player2
	}
	os.Stdout.Write(g.BoardState(g.Winner))
	fmt.Println(gotext.Get("%s wins!", winner.Name))
}

func diceLabel(values []int8) string {
	labels := make([]string, len(values))
	for i, v := range values {
		labels[i] = strconv.Itoa(int(v))
	}
	return strings.Join(labels, " ")
}

// RandInt returns a random integer in [0, max) from a cryptographic
// source.
func RandInt(max int) int {
	i, err := rand.Int(rand.Reader, big.NewInt(int64(max)))
	if err != nil {
		log.Fatal(err)
	}
	return int(i.Int64())
}

func rollDie() int8 {
	return int8(RandInt(6) + 1)
}

func printRollStatistics() {
	var oneSame, doubles int
	var lastroll1, lastroll2 int
	var rolls [6]int

	const total = 10000000
	for i := 0; i < total; i++ {
		roll1 := RandInt(6) + 1
		roll2 := RandInt(6) + 1

		rolls[roll1-1]++
		rolls[roll2-1]++

		if roll1 == lastroll1 || roll1 == lastroll2 || roll2 == lastroll1 || roll2 == lastroll2 {
			oneSame++
		}

		if roll1 == roll2 {
			doubles++
		}

		lastroll1, lastroll2 = roll1, roll2
	}

	p := message.NewPrinter(language.English)
	p.Printf("Rolled %d pairs of dice.\nDoubles: %d (%.0f%%). One same as last: %d (%.0f%%).\n1s: %d (%.0f%%), 2s: %d (%.0f%%), 3s: %d (%.0f%%), 4s: %d (%.0f%%), 5s: %d (%.0f%%), 6s: %d (%.0f%%).\n", total, doubles, float64(doubles)/float64(total)*100, oneSame, float64(oneSame)/float64(total)*100, rolls[0], float64(rolls[0])/float64(total*2)*100, rolls[1], float64(rolls[1])/float64(total*2)*100, rolls[2], float64(rolls[2])/float64(total*2)*100, rolls[3], float64(rolls[3])/float64(total*2)*100, rolls[4], float64(rolls[4])/float64(total*2)*100, rolls[5], float64(rolls[5])/float64(total*2)*100)
}

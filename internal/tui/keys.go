package tui

import (
	"math"

	"github.com/san-kum/votesim/internal/config"
	"github.com/san-kum/votesim/internal/voting"
)

const (
	positionStep = 0.05
	spreadStep   = 0.02
	minSpread    = 0.02
	weightStep   = 0.1
)

// keyUpdate maps a key to a parameter change. cursor is the selected
// candidate; ok is false for keys that change nothing.
func keyUpdate(p config.Parameters, cursor int, key string) (u config.Update, next int, ok bool) {
	next = cursor
	switch key {
	case "1", "2", "3", "4":
		system := voting.Systems[key[0]-'1']
		if system == p.System {
			return u, next, false
		}
		u.System = &system
	case "tab", "right", "l":
		next = (cursor + 1) % len(p.Candidates)
		return u, next, false
	case "shift+tab", "left", "h":
		next = (cursor + len(p.Candidates) - 1) % len(p.Candidates)
		return u, next, false
	case "+", "=", "up", "k":
		u.Candidates = moved(p.Candidates, cursor, positionStep)
	case "-", "_", "down", "j":
		u.Candidates = moved(p.Candidates, cursor, -positionStep)
	case "v":
		u.Variance0 = ptr(math.Max(minSpread, p.Variance0-spreadStep))
	case "V":
		u.Variance0 = ptr(p.Variance0 + spreadStep)
	case "b":
		u.Variance1 = ptr(math.Max(minSpread, p.Variance1-spreadStep))
	case "B":
		u.Variance1 = ptr(p.Variance1 + spreadStep)
	case "w":
		u.Weight1 = ptr(math.Max(0, p.Weight1-weightStep))
	case "W":
		u.Weight1 = ptr(p.Weight1 + weightStep)
	case "r":
		u = config.UpdateFrom(config.DefaultParameters())
		next = 0
	default:
		return u, next, false
	}
	return u, next, true
}

func moved(candidates []float64, i int, delta float64) []float64 {
	out := append([]float64(nil), candidates...)
	out[i] = math.Round((out[i]+delta)*1000) / 1000
	return out
}

func ptr(v float64) *float64 { return &v }

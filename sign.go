package bananatree

import "math"

// Sign selects which of the two dual trees is being built: Up for
// sublevel-set (minima-rooted) persistence, Down for superlevel-set
// (maxima-rooted) persistence. Go has no value-generic type parameters, so
// where the original C++ carries sign as a non-type template parameter,
// this module carries it as a small runtime value with capability methods
// -- the "sign_ops" trait the design notes call for.
type Sign int8

const (
	Up   Sign = 1
	Down Sign = -1
)

func (s Sign) String() string {
	if s == Up {
		return "up"
	}
	return "down"
}

// Opposite returns the other sign.
func (s Sign) Opposite() Sign {
	return -s
}

// Oriented returns v as seen from this sign's direction: for Up this is v
// itself, for Down it is -v. Every comparison in the construction
// algorithm and node predicates is expressed in oriented terms, so that a
// single piece of code serves both trees.
func (s Sign) Oriented(v float64) float64 {
	return float64(s) * v
}

// Infinity returns the oriented value that compares greater than every
// finite oriented value under this sign.
func (s Sign) Infinity() float64 {
	return math.Inf(1)
}

// TinyOffset returns the raw value nudged by the smallest representable
// step away from this sign's direction -- used to place a hook just
// outside the endpoint it substitutes for, so it never collides with a
// genuine sample value.
func (s Sign) TinyOffset(raw float64) float64 {
	if s == Up {
		return math.Nextafter(raw, math.Inf(-1))
	}
	return math.Nextafter(raw, math.Inf(1))
}

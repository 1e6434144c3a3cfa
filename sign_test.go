package bananatree

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSignOpposite(t *testing.T) {
	assert.Equal(t, Down, Up.Opposite())
	assert.Equal(t, Up, Down.Opposite())
}

func TestSignOriented(t *testing.T) {
	assert.Equal(t, 3.0, Up.Oriented(3.0))
	assert.Equal(t, -3.0, Down.Oriented(3.0))
}

func TestSignString(t *testing.T) {
	assert.Equal(t, "up", Up.String())
	assert.Equal(t, "down", Down.String())
}

func TestSignTinyOffsetMovesAwayFromDirection(t *testing.T) {
	assert.Less(t, Up.TinyOffset(3.0), 3.0)
	assert.Greater(t, Down.TinyOffset(3.0), 3.0)
}

package entity

import (
	"errors"
	"fmt"
	"math/rand"
)

var ErrUnknownSide = errors.New("unknown side")

// Side - one of the two participants. First always places MarkA and maximizes, Second places MarkB and minimizes.
type Side uint8

const (
	SideFirst Side = iota
	SideSecond
)

const (
	SideFirstName  = "first"
	SideSecondName = "second"
	SideRandomName = "random"
)

func (that Side) IsValid() bool {
	return that == SideFirst || that == SideSecond
}

// Mark - returns the mark this side places on the board.
func (that Side) Mark() Cell {
	if that == SideSecond {
		return CellB
	}

	return CellA
}

// Other - returns the opponent.
func (that Side) Other() Side {
	if that == SideFirst {
		return SideSecond
	}

	return SideFirst
}

// Sign - +1 for the maximizer, -1 for the minimizer.
func (that Side) Sign() int {
	if that == SideSecond {
		return -1
	}

	return 1
}

func (that Side) String() string {
	if that == SideSecond {
		return SideSecondName
	}

	return SideFirstName
}

// ParseSide - converts a configuration value into a Side. "random" flips a coin.
func ParseSide(value string) (Side, error) {
	switch value {
	case SideFirstName:
		return SideFirst, nil
	case SideSecondName:
		return SideSecond, nil
	case SideRandomName:
		return RandomSide(), nil
	default:
		return SideFirst, fmt.Errorf("%w: %q", ErrUnknownSide, value)
	}
}

func RandomSide() Side {
	if rand.Intn(2) == 0 { //nolint: gosec // it's ok
		return SideFirst
	}
	return SideSecond
}

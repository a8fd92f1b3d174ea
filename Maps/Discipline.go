package Maps

import (
	"strings"

	"github.com/pkg/errors"
)

// Discipline selects how OpenMap places and finds entries along a probe sequence.
type Discipline byte

const (
	// FirstFit takes the first empty slot at or after the ideal index.
	FirstFit Discipline = iota
	// RobinHood lets an incoming entry take the slot of any resident that sits closer to its own ideal index.
	RobinHood
)

func (d Discipline) Valid() bool {
	return d == FirstFit || d == RobinHood
}

func (d Discipline) String() string {
	switch d {
	case FirstFit:
		return "first-fit"
	case RobinHood:
		return "robin-hood"
	}
	return "unknown"
}

func ParseDiscipline(s string) (Discipline, error) {
	switch strings.ToLower(s) {
	case "first-fit", "firstfit", "linear":
		return FirstFit, nil
	case "robin-hood", "robinhood", "robin":
		return RobinHood, nil
	}
	return FirstFit, errors.Errorf("unknown probing discipline: '%s'", s)
}

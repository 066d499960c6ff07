package placement

import (
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"
)

// Side is one wing of the pair. Its value is the mirroring sign.
type Side int8

const (
	Left  Side = -1
	Right Side = 1
)

// BothSides returns the default side order.
func BothSides() []Side {
	return []Side{Left, Right}
}

// Sign returns -1 for the left wing and +1 for the right wing.
func (s Side) Sign() float64 {
	return float64(s)
}

func (s Side) String() string {
	switch s {
	case Left:
		return "left"
	case Right:
		return "right"
	}
	return fmt.Sprintf("side(%d)", int8(s))
}

// ParseSide parses "left" or "right".
func ParseSide(str string) (Side, error) {
	switch strings.ToLower(strings.TrimSpace(str)) {
	case "left", "l":
		return Left, nil
	case "right", "r":
		return Right, nil
	}
	return 0, fmt.Errorf("unknown side %q", str)
}

// MarshalYAML writes the side by name.
func (s Side) MarshalYAML() (any, error) {
	return s.String(), nil
}

// UnmarshalYAML reads the side by name.
func (s *Side) UnmarshalYAML(node *yaml.Node) error {
	var str string
	if err := node.Decode(&str); err != nil {
		return err
	}
	parsed, err := ParseSide(str)
	if err != nil {
		return err
	}
	*s = parsed
	return nil
}

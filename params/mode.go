package params

import (
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"
)

// Mode selects how parameter edits reach the instance set.
type Mode uint8

const (
	// ModeRebuild destroys and recreates every instance on the frame after
	// any parameter edit, then animates the new set.
	ModeRebuild Mode = iota
	// ModeContinuous plans the slot set once and re-poses the same
	// instances every frame from the live parameter values.
	ModeContinuous
)

func (m Mode) String() string {
	switch m {
	case ModeRebuild:
		return "rebuild"
	case ModeContinuous:
		return "continuous"
	}
	return fmt.Sprintf("mode(%d)", uint8(m))
}

// ParseMode parses "rebuild" or "continuous".
func ParseMode(s string) (Mode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "rebuild", "":
		return ModeRebuild, nil
	case "continuous", "incremental":
		return ModeContinuous, nil
	}
	return 0, fmt.Errorf("unknown mode %q (want rebuild or continuous)", s)
}

// MarshalYAML writes the mode by name.
func (m Mode) MarshalYAML() (any, error) {
	return m.String(), nil
}

// UnmarshalYAML reads the mode by name.
func (m *Mode) UnmarshalYAML(node *yaml.Node) error {
	var s string
	if err := node.Decode(&s); err != nil {
		return err
	}
	parsed, err := ParseMode(s)
	if err != nil {
		return err
	}
	*m = parsed
	return nil
}

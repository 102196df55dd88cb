package config

// StateID identifies an entity mode for logic and animation selection.
type StateID int

const (
	StateNone StateID = iota - 1

	Idle
	Move
	Attack
	Transition
	Knockback
	Dead
)

var stateNames = map[StateID]string{
	StateNone:  "none",
	Idle:       "idle",
	Move:       "move",
	Attack:     "attack",
	Transition: "transition",
	Knockback:  "knockback",
	Dead:       "dead",
}

func (s StateID) String() string {
	if name, ok := stateNames[s]; ok {
		return name
	}
	return "unknown"
}

// ParseState is the inverse of StateID.String. Unknown names map to StateNone.
func ParseState(name string) StateID {
	for id, n := range stateNames {
		if n == name {
			return id
		}
	}
	return StateNone
}

// MarshalText lets snapshots store modes by name.
func (s StateID) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

func (s *StateID) UnmarshalText(text []byte) error {
	*s = ParseState(string(text))
	return nil
}

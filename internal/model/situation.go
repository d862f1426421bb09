package model

import (
	"encoding/json"
	"fmt"
)

// Situation is the coarse lifecycle status of a record. It is a closed
// enumeration; values outside the three constants below are rejected at the
// parsing boundary so illegal states never reach the store.
type Situation int

const (
	SituationPending Situation = iota + 1
	SituationRunning
	SituationFinished
)

var situationNames = map[Situation]string{
	SituationPending:  "pending",
	SituationRunning:  "running",
	SituationFinished: "finished",
}

// ParseSituation converts the wire/database representation into a Situation.
func ParseSituation(s string) (Situation, error) {
	for sit, name := range situationNames {
		if name == s {
			return sit, nil
		}
	}
	return 0, fmt.Errorf("invalid situation %q", s)
}

// Valid reports whether s is one of the three known situations.
func (s Situation) Valid() bool {
	_, ok := situationNames[s]
	return ok
}

func (s Situation) String() string {
	if name, ok := situationNames[s]; ok {
		return name
	}
	return fmt.Sprintf("Situation(%d)", int(s))
}

func (s Situation) MarshalJSON() ([]byte, error) {
	name, ok := situationNames[s]
	if !ok {
		return nil, fmt.Errorf("invalid situation %d", int(s))
	}
	return json.Marshal(name)
}

func (s *Situation) UnmarshalJSON(b []byte) error {
	var name string
	if err := json.Unmarshal(b, &name); err != nil {
		return err
	}
	parsed, err := ParseSituation(name)
	if err != nil {
		return err
	}
	*s = parsed
	return nil
}

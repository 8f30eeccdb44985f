package packet

import (
	"fmt"
	"strings"
)

// State is the connection state a packet id is scoped to.
type State uint8

const (
	Handshaking State = iota
	Status
	Login
	Play
)

var stateNames = [...]string{
	Handshaking: "Handshaking",
	Status:      "Status",
	Login:       "Login",
	Play:        "Play",
}

func (s State) String() string {
	if int(s) >= len(stateNames) {
		return fmt.Sprintf("State(%d)", uint8(s))
	}
	return stateNames[s]
}

func ParseState(s string) (State, error) {
	for i, name := range stateNames {
		if strings.EqualFold(s, name) {
			return State(i), nil
		}
	}
	return 0, fmt.Errorf("unknown state %q", s)
}

func (s State) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

type Direction uint8

const (
	ServerBound Direction = iota
	ClientBound
)

func (d Direction) String() string {
	switch d {
	case ServerBound:
		return "ServerBound"
	case ClientBound:
		return "ClientBound"
	}
	return fmt.Sprintf("Direction(%d)", uint8(d))
}

func (d Direction) Opposite() Direction {
	if d == ServerBound {
		return ClientBound
	}
	return ServerBound
}

func ParseDirection(s string) (Direction, error) {
	switch strings.ToLower(s) {
	case "serverbound", "server", "sb":
		return ServerBound, nil
	case "clientbound", "client", "cb":
		return ClientBound, nil
	}
	return 0, fmt.Errorf("unknown direction %q", s)
}

func (d Direction) MarshalText() ([]byte, error) {
	return []byte(d.String()), nil
}

// Identity is what a packet id means: the id alone is only unique within one
// state and direction.
type Identity struct {
	ID        int32
	State     State
	Direction Direction
}

func (i Identity) String() string {
	return fmt.Sprintf("%s/%s/0x%02X", i.State, i.Direction, i.ID)
}

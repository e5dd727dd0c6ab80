package protocol

import (
	"fmt"
	"strings"
)

// Cmd represents a command sent over the websocket
type Cmd int

const (
	Null Cmd = iota
	// Simulate asks the server to run a simulation
	Simulate
	// Accepted acknowledges a simulation and carries its run id
	Accepted
	Result
	Error
)

var cmdNames = []string{
	"null",
	"simulate",
	"accepted",
	"result",
	"error",
}

func (c Cmd) String() string {
	if c < 0 || int(c) >= len(cmdNames) {
		return fmt.Sprintf("Cmd(%d)", int(c))
	}
	return cmdNames[c]
}

func (c Cmd) MarshalText() ([]byte, error) {
	return []byte(c.String()), nil
}

func (c *Cmd) UnmarshalText(text []byte) error {
	name := strings.ToLower(string(text))
	for i, n := range cmdNames {
		if n == name {
			*c = Cmd(i)
			return nil
		}
	}
	return fmt.Errorf("unknown command %q", text)
}

package protocol

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCmd(t *testing.T) {
	t.Run("commands travel by name", func(t *testing.T) {
		data, err := json.Marshal(OutboundMessage{Command: Accepted, RunID: "abc"})
		require.NoError(t, err)
		assert.JSONEq(t, `{"command":"accepted","run_id":"abc"}`, string(data))
	})

	t.Run("decodes a simulate message", func(t *testing.T) {
		raw := `{"command":"Simulate","request":{"players":[{"name":"a","strategy":"naive"}],"games":5}}`

		var msg InboundMessage
		require.NoError(t, json.Unmarshal([]byte(raw), &msg))
		assert.Equal(t, Simulate, msg.Command)
		require.NotNil(t, msg.Request)
		assert.Equal(t, 5, msg.Request.Games)
		assert.Equal(t, []PlayerSpec{{Name: "a", Strategy: "naive"}}, msg.Request.Players)
	})

	t.Run("rejects unknown commands", func(t *testing.T) {
		var msg InboundMessage
		assert.Error(t, json.Unmarshal([]byte(`{"command":"shuffle"}`), &msg))
	})

	t.Run("out of range commands still print", func(t *testing.T) {
		assert.Equal(t, "Cmd(99)", Cmd(99).String())
	})
}

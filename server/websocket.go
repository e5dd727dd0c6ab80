package server

import (
	"errors"
	"net/http"

	"github.com/gorilla/websocket"
	"github.com/minaorangina/uno/protocol"
)

var errNotSimulate = errors.New("expected a simulate command with a request")

// HandleWS upgrades the connection and answers simulate commands until the client leaves.
// Every simulation is acknowledged with its run id before it starts.
func (s *SimulationServer) HandleWS(w http.ResponseWriter, r *http.Request) {
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		// the upgrader has already replied
		s.logger.Warn("could not upgrade to websocket", "err", err)
		return
	}
	defer conn.Close()

	for {
		var msg protocol.InboundMessage
		if err := conn.ReadJSON(&msg); err != nil {
			if !websocket.IsCloseError(err, websocket.CloseNormalClosure, websocket.CloseGoingAway) {
				s.logger.Debug("websocket read failed", "err", err)
			}
			return
		}

		replies := s.handleMessage(msg)
		for out := range replies {
			if err := conn.WriteJSON(out); err != nil {
				s.logger.Debug("websocket write failed", "err", err)
				go drain(replies)
				return
			}
		}
	}
}

// handleMessage returns the replies to one inbound message, in order.
// Replies are produced lazily so the acknowledgement can be sent before the run.
func (s *SimulationServer) handleMessage(msg protocol.InboundMessage) <-chan protocol.OutboundMessage {
	out := make(chan protocol.OutboundMessage, 1)

	go func() {
		defer close(out)

		if msg.Command != protocol.Simulate || msg.Request == nil {
			out <- errorMessage("", errNotSimulate)
			return
		}

		req := *msg.Request
		gm, err := s.newGameMaster(req)
		if err != nil {
			out <- errorMessage("", err)
			return
		}

		runID := NewID()
		out <- protocol.OutboundMessage{Command: protocol.Accepted, RunID: runID}

		result, err := s.run(runID, req, gm)
		if err != nil {
			s.logger.Error("simulation failed", "id", runID, "err", err)
			out <- errorMessage(runID, err)
			return
		}
		out <- protocol.OutboundMessage{Command: protocol.Result, RunID: runID, Result: &result}
	}()

	return out
}

func drain(replies <-chan protocol.OutboundMessage) {
	for range replies {
	}
}

func errorMessage(runID string, err error) protocol.OutboundMessage {
	return protocol.OutboundMessage{Command: protocol.Error, RunID: runID, Error: err.Error()}
}

package server

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gorilla/websocket"
	"github.com/minaorangina/uno/protocol"
	"github.com/minaorangina/uno/store"
	"github.com/stretchr/testify/require"
)

func newTestSimulationServer() (*SimulationServer, *store.InMemoryRunStore) {
	runStore := store.NewInMemoryRunStore()
	return NewServer(runStore, ServerOpts{MaxGames: 500, Threads: 2}), runStore
}

func twoPlayerRequest(games int) protocol.SimulateRequest {
	return protocol.SimulateRequest{
		Players: []protocol.PlayerSpec{
			{Name: "alice", Strategy: "naive"},
			{Name: "bob", Strategy: "greedy"},
		},
		Games: games,
		Seed:  11,
	}
}

func mustMakeJson(t *testing.T, input interface{}) []byte {
	t.Helper()

	data, err := json.Marshal(input)
	require.NoError(t, err)

	return data
}

func newSimulateRequest(data []byte) *http.Request {
	request, _ := http.NewRequest(http.MethodPost, "/simulate", bytes.NewBuffer(data))
	return request
}

func newFindRunRequest(runID string) *http.Request {
	request, _ := http.NewRequest(http.MethodGet, "/runs/"+runID, nil)
	return request
}

func mustDecodeResult(t *testing.T, body io.Reader) protocol.RunResult {
	t.Helper()

	var got protocol.RunResult
	require.NoError(t, json.NewDecoder(body).Decode(&got))
	return got
}

func mustDialWS(t *testing.T, url string) *websocket.Conn {
	t.Helper()

	ws, resp, err := websocket.DefaultDialer.Dial(url, nil)
	if err != nil {
		var body []byte
		code := 0
		if resp != nil {
			body, _ = io.ReadAll(resp.Body)
			code = resp.StatusCode
		}
		t.Fatalf("could not open a ws connection on %s, code %d: %s, %v", url, code, body, err)
	}
	if ws == nil {
		t.Fatal("unexpected nil websocket conn")
	}

	return ws
}

func makeWSUrl(server *httptest.Server) string {
	return "ws" + strings.TrimPrefix(server.URL, "http") + "/ws"
}

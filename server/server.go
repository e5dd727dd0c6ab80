package server

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/charmbracelet/log"
	"github.com/gorilla/handlers"
	"github.com/gorilla/websocket"
	"github.com/minaorangina/uno"
	"github.com/minaorangina/uno/internal/logging"
	"github.com/minaorangina/uno/protocol"
	"github.com/minaorangina/uno/rules"
	"github.com/minaorangina/uno/store"
	uuid "github.com/satori/go.uuid"
)

const (
	DefaultMaxGames = 100000
	greeting        = "Hello, uno!"
)

var (
	ErrInvalidGames   = errors.New("invalid number of games")
	ErrInvalidThreads = errors.New("invalid number of threads")
	ErrNoRunID        = errors.New("missing run ID")
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin: func(r *http.Request) bool {
		return true
	},
}

type ServerOpts struct {
	MaxGames int
	// Threads is used when a request does not ask for a thread count
	Threads int
	// MaxThreads caps the thread count a request may ask for.
	// It defaults to Threads.
	MaxThreads int
	Logger     *log.Logger
	AccessLog  io.Writer
}

// SimulationServer runs simulations on request and remembers their results
type SimulationServer struct {
	store      store.RunStore
	maxGames   int
	threads    int
	maxThreads int
	logger     *log.Logger
	http.Server
}

func NewID() string {
	return uuid.NewV4().String()
}

func unknownRunIDMsg(unknownID string) string {
	return fmt.Sprintf("unknown run ID '%s'", unknownID)
}

// NewServer creates a new SimulationServer
func NewServer(runStore store.RunStore, opts ServerOpts) *SimulationServer {
	s := &SimulationServer{
		store:      runStore,
		maxGames:   opts.MaxGames,
		threads:    opts.Threads,
		maxThreads: opts.MaxThreads,
		logger:     opts.Logger,
	}
	if s.maxGames < 1 {
		s.maxGames = DefaultMaxGames
	}
	if s.threads < 1 {
		s.threads = uno.DefaultThreads
	}
	if s.maxThreads < s.threads {
		s.maxThreads = s.threads
	}
	if s.logger == nil {
		s.logger = logging.Discard()
	}
	accessLog := opts.AccessLog
	if accessLog == nil {
		accessLog = io.Discard
	}

	router := http.NewServeMux()

	router.Handle("/", http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/" {
			w.WriteHeader(http.StatusNotFound)
			return
		}
		w.Header().Add("Content-Type", "text/plain")
		w.Write([]byte(greeting))
	}))
	router.Handle("/simulate", http.HandlerFunc(s.HandleSimulate))
	router.Handle("/runs/", http.HandlerFunc(s.HandleFindRun))
	router.Handle("/ws", http.HandlerFunc(s.HandleWS))

	cors := handlers.CORS(
		handlers.AllowedOrigins([]string{"*"}),
		handlers.AllowedMethods([]string{http.MethodGet, http.MethodPost, http.MethodOptions}),
		handlers.AllowedHeaders([]string{"Content-Type"}),
	)
	s.Handler = cors(handlers.CombinedLoggingHandler(accessLog, router))

	return s
}

// ServeHTTP serves http
func (s *SimulationServer) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.Handler.ServeHTTP(w, r)
}

// HandleSimulate runs the requested simulation and responds with its result
func (s *SimulationServer) HandleSimulate(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		w.WriteHeader(http.StatusNotFound)
		return
	}

	var req protocol.SimulateRequest
	err := json.NewDecoder(r.Body).Decode(&req)
	defer r.Body.Close()
	if err != nil {
		writeParseError(err, w)
		return
	}

	gm, err := s.newGameMaster(req)
	if err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}

	result, err := s.run(NewID(), req, gm)
	if err != nil {
		s.logger.Error("simulation failed", "err", err)
		writeError(w, http.StatusInternalServerError, err)
		return
	}

	bytes, err := json.Marshal(result)
	if err != nil {
		s.logger.Error("could not encode result", "err", err)
		w.WriteHeader(http.StatusInternalServerError)
		return
	}

	w.Header().Add("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	w.Write(bytes)
}

// HandleFindRun responds with a stored result
func (s *SimulationServer) HandleFindRun(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		w.WriteHeader(http.StatusNotFound)
		return
	}

	runID := strings.TrimPrefix(r.URL.Path, "/runs/")
	if runID == "" {
		writeError(w, http.StatusBadRequest, ErrNoRunID)
		return
	}

	result, ok := s.store.FindRun(runID)
	if !ok {
		w.WriteHeader(http.StatusNotFound)
		w.Write([]byte(unknownRunIDMsg(runID)))
		return
	}

	bytes, err := json.Marshal(result)
	if err != nil {
		s.logger.Error("could not encode result", "err", err)
		w.WriteHeader(http.StatusInternalServerError)
		return
	}

	w.Header().Add("Content-Type", "application/json")
	w.Write(bytes)
}

// newGameMaster checks a request and turns it into a GameMaster
func (s *SimulationServer) newGameMaster(req protocol.SimulateRequest) (*uno.GameMaster, error) {
	if req.Games < 1 || req.Games > s.maxGames {
		return nil, fmt.Errorf("%w: must be between 1 and %d, got %d", ErrInvalidGames, s.maxGames, req.Games)
	}

	stacking, err := rules.ParsePlusStacking(req.PlusStacking)
	if err != nil {
		return nil, err
	}

	threads := req.Threads
	if threads < 1 {
		threads = s.threads
	}
	if threads > s.maxThreads {
		return nil, fmt.Errorf("%w: at most %d allowed, got %d", ErrInvalidThreads, s.maxThreads, threads)
	}

	b := uno.NewBuilder().
		WithRules(rules.Rules{PlusStacking: stacking}).
		WithOptions(uno.Options{Threads: threads, Seed: req.Seed, Logger: s.logger})
	for _, p := range req.Players {
		b.AddPlayer(p.Name, p.Strategy)
	}

	return b.Build()
}

// run plays every game of the request and stores the result under runID
func (s *SimulationServer) run(runID string, req protocol.SimulateRequest, gm *uno.GameMaster) (protocol.RunResult, error) {
	board, err := gm.Run(req.Games)
	if err != nil {
		return protocol.RunResult{}, err
	}

	result := protocol.RunResult{
		ID:         runID,
		Request:    req,
		Scoreboard: board.Summary(),
		FinishedAt: time.Now().UTC(),
	}
	if err := s.store.AddRun(result); err != nil {
		return protocol.RunResult{}, err
	}

	s.logger.Info("run stored", "id", runID, "games", req.Games)
	return result, nil
}

func writeParseError(err error, w http.ResponseWriter) {
	if err == io.EOF {
		writeError(w, http.StatusBadRequest, errors.New("missing body"))
		return
	}
	writeError(w, http.StatusBadRequest, fmt.Errorf("malformed body: %w", err))
}

func writeError(w http.ResponseWriter, status int, err error) {
	w.Header().Add("Content-Type", "text/plain")
	w.WriteHeader(status)
	w.Write([]byte(err.Error()))
}

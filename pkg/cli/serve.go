package cli

import (
	"encoding/json"
	"errors"
	"net"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"
	"github.com/rs/zerolog"

	"github.com/jakobknauer/gotrie/pkg/dictionary"
	"github.com/jakobknauer/gotrie/pkg/trie"
)

// ServeCmd loads word lists and serves read-only lookups over HTTP.
// The dictionary is never mutated after loading, so the handlers can
// share it without locking.
type ServeCmd struct {
	Files []string `arg:"" type:"existingfile" help:"Word lists to load (text, JSON, or CSV)."`
	Addr  string   `help:"Listen address (host:port). Defaults to the configured address."`
}

// Run executes the serve command.
func (cmd *ServeCmd) Run(ctx *Context) error {
	dict := dictionary.New(ctx.Cfg.Dictionary.Alphabet)
	if err := loadFiles(ctx, dict, cmd.Files); err != nil {
		return err
	}

	addr := cmd.Addr
	if addr == "" {
		addr = ctx.Cfg.Server.Addr
	}
	return NewServer(ctx, addr, dict).Start()
}

// Server is the HTTP lookup service over a loaded dictionary.
type Server struct {
	dict   *dictionary.Dictionary
	log    zerolog.Logger
	limit  int
	server *http.Server
}

// NewServer wires the routes for a dictionary.
func NewServer(ctx *Context, addr string, dict *dictionary.Dictionary) *Server {
	s := &Server{
		dict:  dict,
		log:   ctx.Log,
		limit: ctx.Cfg.Query.SuggestionLimit,
	}

	r := mux.NewRouter()
	r.Use(func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
			s.log.Debug().Str("method", req.Method).Str("path", req.URL.Path).Msg("request")
			next.ServeHTTP(w, req)
		})
	})

	r.HandleFunc("/stats", s.getStats).Methods("GET")
	r.HandleFunc("/words", s.listWords).Methods("GET")
	r.HandleFunc("/words/{word}", s.getWord).Methods("GET")
	r.HandleFunc("/complete/{prefix}", s.completePrefix).Methods("GET")

	// a bare port is accepted and bound on all interfaces
	if _, _, err := net.SplitHostPort(addr); err != nil {
		addr = "0.0.0.0:" + addr
	}
	s.server = &http.Server{Addr: addr, Handler: r}
	return s
}

// Handler returns the HTTP handler, for tests.
func (s *Server) Handler() http.Handler {
	return s.server.Handler
}

// Start blocks serving requests until the listener fails or the server
// is shut down.
func (s *Server) Start() error {
	s.log.Info().Str("addr", s.server.Addr).Int("words", s.dict.Len()).Msg("serving dictionary")
	if err := s.server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

func (s *Server) getStats(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, s.dict.Stats())
}

func (s *Server) listWords(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, s.dict.Complete("", s.queryLimit(r)))
}

func (s *Server) getWord(w http.ResponseWriter, r *http.Request) {
	word := mux.Vars(r)["word"]
	definition, err := s.dict.Define(word)
	if errors.Is(err, trie.ErrKeyNotFound) {
		writeJSON(w, http.StatusNotFound, map[string]string{"error": "word not found"})
		return
	}
	writeJSON(w, http.StatusOK, dictionary.Entry{Word: word, Definition: definition})
}

func (s *Server) completePrefix(w http.ResponseWriter, r *http.Request) {
	prefix := mux.Vars(r)["prefix"]
	entries := s.dict.Complete(prefix, s.queryLimit(r))
	writeJSON(w, http.StatusOK, map[string]any{
		"prefix":  prefix,
		"count":   len(entries),
		"entries": entries,
	})
}

// queryLimit reads the optional ?limit= parameter, falling back to the
// configured suggestion limit.
func (s *Server) queryLimit(r *http.Request) int {
	if raw := r.URL.Query().Get("limit"); raw != "" {
		if limit, err := strconv.Atoi(raw); err == nil && limit > 0 {
			return limit
		}
	}
	return s.limit
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

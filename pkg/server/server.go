package server

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/bastiangx/pawn/internal/logger"
	"github.com/bastiangx/pawn/internal/utils"
	"github.com/bastiangx/pawn/pkg/config"
	"github.com/bastiangx/pawn/pkg/lang"
	"github.com/bastiangx/pawn/pkg/lexerr"
	"github.com/bastiangx/pawn/pkg/resource"
	"github.com/bastiangx/pawn/pkg/suggest"
	"github.com/bastiangx/pawn/pkg/wordnet"
	"github.com/charmbracelet/log"
	"github.com/dustin/go-humanize"
	"github.com/vmihailenco/msgpack/v5"
)

const (
	defaultLimit    = 10
	maxPrefixLength = 60
)

// Lexicon is the query surface the server exposes. *wordnet.WordNet implements it.
type Lexicon interface {
	SetLanguage(code, analyzer string) error
	Language() lang.Code
	Analyzer() string
	Synsets(token, pos string) ([]*wordnet.Synset, error)
	Synset(name string) (*wordnet.Synset, error)
	Lemma(qualified string) (*wordnet.Lemma, error)
	Lemmas(token, pos string) ([]*wordnet.Lemma, error)
	Morphy(token string) (string, bool)
	Complete(prefix string, limit int) []suggest.Suggestion
}

// Server handles msgpack IPC for lexical queries
type Server struct {
	lex      Lexicon
	cfg      config.ServerConfig
	dec      *msgpack.Decoder
	out      *bufio.Writer
	enc      *msgpack.Encoder
	logger   *log.Logger
	requests int
}

// NewServer creates a server reading requests from r and writing responses to w.
func NewServer(lex Lexicon, cfg config.ServerConfig, r io.Reader, w io.Writer) *Server {
	if cfg.MaxLimit < 1 {
		cfg.MaxLimit = config.DefaultConfig().Server.MaxLimit
	}
	if cfg.DefaultPOS == "" {
		cfg.DefaultPOS = resource.AllPOS
	}
	out := bufio.NewWriter(w)
	return &Server{
		lex:    lex,
		cfg:    cfg,
		dec:    msgpack.NewDecoder(bufio.NewReader(r)),
		out:    out,
		enc:    msgpack.NewEncoder(out),
		logger: logger.New("server"),
	}
}

// Start signals readiness and serves requests until the input stream ends.
func (s *Server) Start() error {
	s.logger.Debug("Starting Server.")
	s.sendResponse(StatusResponse{Status: "ready"})

	for {
		var raw msgpack.RawMessage
		if err := s.dec.Decode(&raw); err != nil {
			if errors.Is(err, io.EOF) {
				s.logger.Debugf("Input closed after %s requests", humanize.Comma(int64(s.requests)))
				return nil
			}
			s.logger.Errorf("Reading request: %v", err)
			return err
		}
		s.requests++

		var req Request
		if err := msgpack.Unmarshal(raw, &req); err != nil {
			s.logger.Errorf("Unmarshaling request: %v", err)
			s.sendError("", "Invalid msgpack request", 400)
			continue
		}
		s.handleRequest(req)
	}
}

// handleRequest dispatches a decoded request on its op
func (s *Server) handleRequest(req Request) {
	op := req.Op
	if op == "" && req.Prefix != "" {
		op = OpComplete
	}
	s.logger.Debug("Processing request", "id", req.ID, "op", op)

	start := time.Now()
	var err error
	switch op {
	case OpHealth:
		s.sendResponse(StatusResponse{ID: req.ID, Status: "ok"})
	case OpSetLanguage:
		err = s.handleSetLanguage(req, start)
	case OpLanguage:
		s.sendLanguage(req.ID, start)
	case OpSynsets:
		err = s.handleSynsets(req, start)
	case OpSynset:
		err = s.handleSynset(req, start)
	case OpLemmas:
		err = s.handleLemmas(req, start)
	case OpLemma:
		err = s.handleLemma(req, start)
	case OpMorphy:
		err = s.handleMorphy(req, start)
	case OpComplete:
		err = s.handleComplete(req, start)
	default:
		err = invalid("Unknown op: %q", op)
	}
	if err != nil {
		s.logger.Debugf("Request %s failed: %v", req.ID, err)
		s.sendError(req.ID, err.Error(), errorCode(err))
	}
}

// sendResponse encodes response and flushes it to the client.
func (s *Server) sendResponse(response any) {
	if err := s.enc.Encode(response); err != nil {
		s.logger.Errorf("Marshaling response: %v", err)
		return
	}
	if err := s.out.Flush(); err != nil {
		s.logger.Errorf("Writing response: %v", err)
	}
}

// sendError sends an error response
func (s *Server) sendError(id, message string, code int) {
	s.sendResponse(ErrorResponse{ID: id, Error: message, Code: code})
}

// requestError is a malformed request, reported with code 400.
type requestError struct{ msg string }

func (e *requestError) Error() string { return e.msg }

func invalid(format string, args ...any) error {
	return &requestError{msg: fmt.Sprintf(format, args...)}
}

// errorCode maps error kinds to response codes.
func errorCode(err error) int {
	var reqErr *requestError
	switch {
	case errors.As(err, &reqErr):
		return 400
	case errors.Is(err, lexerr.ErrNotFound):
		return 404
	case errors.Is(err, lexerr.ErrConfiguration):
		return 400
	case errors.Is(err, lexerr.ErrBackendUnavailable):
		return 503
	default:
		return 500
	}
}

func elapsed(start time.Time) int64 {
	return time.Since(start).Microseconds()
}

func (s *Server) handleSetLanguage(req Request, start time.Time) error {
	if req.Lang == "" {
		return invalid("Missing 'lang' parameter")
	}
	if err := s.lex.SetLanguage(req.Lang, req.Analyzer); err != nil {
		return err
	}
	s.sendLanguage(req.ID, start)
	return nil
}

func (s *Server) sendLanguage(id string, start time.Time) {
	s.sendResponse(LanguageResponse{
		ID:        id,
		Lang:      s.lex.Language().String(),
		Analyzer:  s.lex.Analyzer(),
		TimeTaken: elapsed(start),
	})
}

// token validates the token of a lookup request.
func (s *Server) token(req Request) (string, error) {
	token := strings.TrimSpace(req.Token)
	if token == "" {
		return "", invalid("Missing 'token' parameter")
	}
	if !utils.IsValidToken(token) {
		return "", invalid("Invalid token: %q", token)
	}
	return token, nil
}

// pos validates the part-of-speech filter of a lookup request.
func (s *Server) pos(req Request) (string, error) {
	if req.POS == "" {
		return s.cfg.DefaultPOS, nil
	}
	if strings.Trim(req.POS, resource.AllPOS) != "" {
		return "", invalid("Invalid part of speech: %q", req.POS)
	}
	return req.POS, nil
}

func (s *Server) handleSynsets(req Request, start time.Time) error {
	token, err := s.token(req)
	if err != nil {
		return err
	}
	pos, err := s.pos(req)
	if err != nil {
		return err
	}
	synsets, err := s.lex.Synsets(token, pos)
	if err != nil {
		return err
	}
	s.sendSynsets(req.ID, synsets, start)
	return nil
}

func (s *Server) handleSynset(req Request, start time.Time) error {
	if req.Name == "" {
		return invalid("Missing 'name' parameter")
	}
	synset, err := s.lex.Synset(req.Name)
	if err != nil {
		return err
	}
	s.sendSynsets(req.ID, []*wordnet.Synset{synset}, start)
	return nil
}

func (s *Server) sendSynsets(id string, synsets []*wordnet.Synset, start time.Time) {
	infos := make([]SynsetInfo, len(synsets))
	for i, ss := range synsets {
		infos[i] = SynsetInfo{
			Name:       ss.Name(),
			ID:         ss.ID(),
			POS:        ss.POS(),
			Definition: ss.Definition(),
			Lemmas:     ss.LemmaNames(),
		}
	}
	s.sendResponse(SynsetsResponse{ID: id, Synsets: infos, Count: len(infos), TimeTaken: elapsed(start)})
}

func (s *Server) handleLemmas(req Request, start time.Time) error {
	token, err := s.token(req)
	if err != nil {
		return err
	}
	pos, err := s.pos(req)
	if err != nil {
		return err
	}
	lemmas, err := s.lex.Lemmas(token, pos)
	if err != nil {
		return err
	}
	s.sendLemmas(req.ID, lemmas, start)
	return nil
}

func (s *Server) handleLemma(req Request, start time.Time) error {
	if req.Name == "" {
		return invalid("Missing 'name' parameter")
	}
	lemma, err := s.lex.Lemma(req.Name)
	if err != nil {
		return err
	}
	s.sendLemmas(req.ID, []*wordnet.Lemma{lemma}, start)
	return nil
}

func (s *Server) sendLemmas(id string, lemmas []*wordnet.Lemma, start time.Time) {
	infos := make([]LemmaInfo, len(lemmas))
	for i, l := range lemmas {
		infos[i] = LemmaInfo{
			Name:   l.QualifiedName(),
			Word:   l.Name(),
			Synset: l.Synset().Name(),
			Count:  l.Count(),
		}
	}
	s.sendResponse(LemmasResponse{ID: id, Lemmas: infos, Count: len(infos), TimeTaken: elapsed(start)})
}

func (s *Server) handleMorphy(req Request, start time.Time) error {
	token, err := s.token(req)
	if err != nil {
		return err
	}
	form, ok := s.lex.Morphy(token)
	s.sendResponse(MorphyResponse{ID: req.ID, Form: form, Found: ok, TimeTaken: elapsed(start)})
	return nil
}

// handleComplete validates the prefix, clamps the limit to the configured
// maximum and ranks suggestions from 1.
func (s *Server) handleComplete(req Request, start time.Time) error {
	prefix := req.Prefix
	if prefix == "" {
		return invalid("Missing 'prefix' parameter")
	}
	if len(prefix) > maxPrefixLength {
		return invalid("Prefix exceeds maximum length of %d characters", maxPrefixLength)
	}

	limit := req.Limit
	if limit < 1 {
		limit = defaultLimit
	}
	limit = min(limit, s.cfg.MaxLimit)

	suggestions := s.lex.Complete(prefix, limit)
	out := make([]CompletionSuggestion, len(suggestions))
	for i, sg := range suggestions {
		out[i] = CompletionSuggestion{Word: sg.Word, Rank: uint16(i + 1), Frequency: sg.Frequency}
	}
	s.sendResponse(CompletionResponse{
		ID:          req.ID,
		Suggestions: out,
		Count:       len(out),
		TimeTaken:   elapsed(start),
	})
	return nil
}

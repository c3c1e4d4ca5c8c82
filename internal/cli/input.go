// Package cli is the interactive REPL for exploring the lexicon in real time.
//
// A plain line is looked up as a token in the active language. A line ending
// in '*' is completed as a prefix. Lines starting with ':' are commands:
//
//	:lang fr [auto]     switch language, optionally with an analyzer mode
//	:mode snowball      switch the analyzer of the active language
//	:pos nv             restrict lookups to these parts of speech
//	:synset chien.n.01  show one synset by name
//	:lemma chien.n.01.chien
//	:morphy chiens
//	:quit
package cli

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/bastiangx/pawn/internal/utils"
	"github.com/bastiangx/pawn/pkg/lang"
	"github.com/bastiangx/pawn/pkg/resource"
	"github.com/bastiangx/pawn/pkg/suggest"
	"github.com/bastiangx/pawn/pkg/wordnet"
	"github.com/charmbracelet/log"
)

// errQuit ends the input loop without error.
var errQuit = errors.New("quit")

// Lexicon is what the REPL queries. *wordnet.WordNet implements it.
type Lexicon interface {
	SetLanguage(code, analyzer string) error
	Language() lang.Code
	Analyzer() string
	Synsets(token, pos string) ([]*wordnet.Synset, error)
	Synset(name string) (*wordnet.Synset, error)
	Lemma(qualified string) (*wordnet.Lemma, error)
	Morphy(token string) (string, bool)
	Complete(prefix string, limit int) []suggest.Suggestion
}

// InputHandler reads lines from in and prints query results to out.
type InputHandler struct {
	lex          Lexicon
	in           io.Reader
	out          io.Writer
	suggestLimit int
	pos          string
	analyzer     string
	requestCount int
}

// NewInputHandler creates a REPL over lex. limit caps completion results.
func NewInputHandler(lex Lexicon, in io.Reader, out io.Writer, limit int) *InputHandler {
	if limit < 1 {
		limit = 10
	}
	return &InputHandler{
		lex:          lex,
		in:           in,
		out:          out,
		suggestLimit: limit,
		pos:          resource.AllPOS,
	}
}

// SetAnalyzer sets the analyzer mode used by :lang when none is given.
func (h *InputHandler) SetAnalyzer(mode string) {
	h.analyzer = mode
}

// Start runs the loop until the input ends or :quit is entered.
func (h *InputHandler) Start() error {
	fmt.Fprintln(h.out, titleStyle.Render("pawn REPL"))
	fmt.Fprintln(h.out, dimStyle.Render("type a word, a prefix ending in '*', or :help (Ctrl+D to exit)"))

	reader := bufio.NewReader(h.in)
	for {
		fmt.Fprintf(h.out, "%s> ", h.lex.Language())
		line, err := reader.ReadString('\n')
		line = strings.TrimSpace(line)
		if line != "" {
			if herr := h.handleInput(line); errors.Is(herr, errQuit) {
				return nil
			}
		}
		if err != nil {
			if errors.Is(err, io.EOF) {
				fmt.Fprintln(h.out)
				return nil
			}
			return err
		}
	}
}

// handleInput runs one line. Query errors are printed, not returned.
func (h *InputHandler) handleInput(line string) error {
	h.requestCount++
	start := time.Now()
	defer func() {
		log.Debugf("#%d took [ %v ] for %q", h.requestCount, time.Since(start), line)
	}()

	if cmd, ok := strings.CutPrefix(line, ":"); ok {
		return h.handleCommand(strings.Fields(cmd))
	}
	if prefix, ok := strings.CutSuffix(line, "*"); ok {
		h.complete(prefix)
		return nil
	}
	if !utils.IsValidToken(line) {
		h.printError(fmt.Errorf("not a word: %q", line))
		return nil
	}
	synsets, err := h.lex.Synsets(line, h.pos)
	if err != nil {
		h.printError(err)
		return nil
	}
	if form, ok := h.lex.Morphy(line); ok && form != line {
		fmt.Fprintln(h.out, dimStyle.Render("dictionary form: "+form))
	}
	h.printSynsets(line, synsets)
	return nil
}

func (h *InputHandler) handleCommand(args []string) error {
	if len(args) == 0 {
		h.printHelp()
		return nil
	}
	arg := func(i int) string {
		if i < len(args) {
			return args[i]
		}
		return ""
	}

	switch args[0] {
	case "q", "quit", "exit":
		return errQuit
	case "h", "help":
		h.printHelp()
	case "lang":
		if arg(1) == "" {
			h.printLanguage()
			return nil
		}
		analyzer := arg(2)
		if analyzer == "" {
			analyzer = h.analyzer
		}
		h.setLanguage(arg(1), analyzer)
	case "mode":
		if arg(1) == "" {
			h.printLanguage()
			return nil
		}
		h.setLanguage(h.lex.Language().String(), arg(1))
	case "pos":
		pos := arg(1)
		if pos == "" {
			pos = resource.AllPOS
		}
		if strings.Trim(pos, resource.AllPOS) != "" {
			h.printError(fmt.Errorf("invalid part of speech %q, expected letters of %q", pos, resource.AllPOS))
			return nil
		}
		h.pos = pos
		fmt.Fprintln(h.out, dimStyle.Render("pos: "+pos))
	case "synset":
		s, err := h.lex.Synset(arg(1))
		if err != nil {
			h.printError(err)
			return nil
		}
		h.printSynsets(arg(1), []*wordnet.Synset{s})
	case "lemma":
		l, err := h.lex.Lemma(arg(1))
		if err != nil {
			h.printError(err)
			return nil
		}
		h.printLemma(l)
	case "morphy":
		form, ok := h.lex.Morphy(strings.Join(args[1:], " "))
		if !ok {
			fmt.Fprintln(h.out, dimStyle.Render("no dictionary form"))
			return nil
		}
		fmt.Fprintln(h.out, wordStyle.Render(form))
	default:
		h.printError(fmt.Errorf("unknown command :%s", args[0]))
	}
	return nil
}

func (h *InputHandler) setLanguage(code, analyzer string) {
	if err := h.lex.SetLanguage(code, analyzer); err != nil {
		h.printError(err)
		return
	}
	h.analyzer = analyzer
	h.printLanguage()
}

func (h *InputHandler) complete(prefix string) {
	suggestions := h.lex.Complete(prefix, h.suggestLimit)
	if len(suggestions) == 0 {
		log.Warnf("No suggestions found for prefix: '%s'", prefix)
		fmt.Fprintln(h.out, dimStyle.Render("no suggestions"))
		return
	}
	h.printSuggestions(prefix, suggestions)
}

package cli

import (
	"fmt"
	"strings"

	"github.com/bastiangx/pawn/pkg/suggest"
	"github.com/bastiangx/pawn/pkg/wordnet"
	"github.com/charmbracelet/lipgloss"
	"github.com/dustin/go-humanize"
)

var (
	titleStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("75"))
	wordStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("75"))
	nameStyle  = lipgloss.NewStyle().Bold(true)
	dimStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("245"))
	errorStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("203"))
)

func (h *InputHandler) printHelp() {
	fmt.Fprintln(h.out, strings.Join([]string{
		"word            synsets of word in the active language",
		"prefix*         completions of prefix",
		":lang <code> [analyzer]",
		":mode <auto|morphy|snowball|treetagger>",
		":pos <anrsv>",
		":synset <name>  :lemma <name>  :morphy <word>",
		":quit",
	}, "\n"))
}

func (h *InputHandler) printLanguage() {
	fmt.Fprintf(h.out, "%s %s\n", nameStyle.Render(h.lex.Language().Name()), dimStyle.Render("("+h.lex.Analyzer()+")"))
}

func (h *InputHandler) printError(err error) {
	fmt.Fprintln(h.out, errorStyle.Render(err.Error()))
}

func (h *InputHandler) printSynsets(query string, synsets []*wordnet.Synset) {
	if len(synsets) == 0 {
		fmt.Fprintln(h.out, dimStyle.Render(fmt.Sprintf("no synsets for '%s'", query)))
		return
	}
	fmt.Fprintf(h.out, "Found %d synsets for '%s':\n", len(synsets), query)
	for i, s := range synsets {
		fmt.Fprintf(h.out, "%2d. %s %s\n", i+1, nameStyle.Render(s.Name()), dimStyle.Render(s.Definition()))
		if names := s.LemmaNames(); len(names) > 0 {
			fmt.Fprintf(h.out, "    %s\n", wordStyle.Render(strings.Join(names, ", ")))
		}
	}
}

func (h *InputHandler) printLemma(l *wordnet.Lemma) {
	fmt.Fprintf(h.out, "%s %s\n", nameStyle.Render(l.String()), dimStyle.Render("count: "+humanize.Comma(int64(l.Count()))))
	for _, a := range l.Antonyms() {
		fmt.Fprintf(h.out, "    antonym    %s\n", wordStyle.Render(a.QualifiedName()))
	}
	for _, p := range l.Pertainyms() {
		fmt.Fprintf(h.out, "    pertainym  %s\n", wordStyle.Render(p.QualifiedName()))
	}
}

func (h *InputHandler) printSuggestions(prefix string, suggestions []suggest.Suggestion) {
	fmt.Fprintf(h.out, "Found %d suggestions for prefix '%s':\n", len(suggestions), prefix)
	for i, s := range suggestions {
		fmt.Fprintf(h.out, "%2d. %-40s (freq: %8s)\n", i+1, wordStyle.Render(s.Word), humanize.Comma(int64(s.Frequency)))
	}
}

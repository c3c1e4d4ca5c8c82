/*
Package server implements msgpack IPC for lexical queries.

The server reads a stream of msgpack-encoded requests from stdin and writes one
msgpack-encoded response per request to stdout. Requests are handled
synchronously, in order, with timing info included in responses.

# IPC

Every request carries an ID, echoed back in the response, and an op naming the
query. Fields not used by an op are ignored.

	{"id": "q1", "op": "set_language", "lang": "fr", "analyzer": "auto"}
	{"id": "q2", "op": "synsets", "token": "chiens", "pos": "n"}
	{"id": "q3", "op": "lemma", "name": "chien.n.01.chien"}
	{"id": "q4", "op": "complete", "p": "chi", "l": 10}

A request without an op but with a prefix is a completion request, so plain
completion clients only need the short form:

	{"id": "c1", "p": "chi", "l": 10}

Responses for synset queries carry the display name of each synset in the
active language:

	{"id": "q2", "s": [{"n": "chien.n.01", "id": "dog.n.01", "pos": "n", "d": "...", "l": [...]}], "c": 1, "t": 87}

Failed ops answer with an error message and a code:

	{"id": "q3", "e": "wordnet.Lemma: \"x\" not found", "c": 404}

Codes are 404 for names that do not resolve, 400 for invalid requests and
unknown languages or analyzers, 503 when a morphology backend cannot start, and
500 otherwise.

# Message Types

Request is the single inbound message. LanguageResponse, SynsetsResponse,
LemmasResponse, MorphyResponse and CompletionResponse are the op results;
StatusResponse answers health checks and signals readiness at startup;
ErrorResponse reports failures.
*/
package server

// Ops understood by the server.
const (
	OpSetLanguage = "set_language"
	OpLanguage    = "language"
	OpSynsets     = "synsets"
	OpSynset      = "synset"
	OpLemma       = "lemma"
	OpLemmas      = "lemmas"
	OpMorphy      = "morphy"
	OpComplete    = "complete"
	OpHealth      = "health"
)

// Request is a query from the client
type Request struct {
	ID       string `msgpack:"id"`
	Op       string `msgpack:"op,omitempty"`
	Lang     string `msgpack:"lang,omitempty"`
	Analyzer string `msgpack:"analyzer,omitempty"`
	Token    string `msgpack:"token,omitempty"`
	POS      string `msgpack:"pos,omitempty"`
	Name     string `msgpack:"name,omitempty"`
	Prefix   string `msgpack:"p,omitempty"`
	Limit    int    `msgpack:"l,omitempty"`
}

// StatusResponse - ready signal and health answer
type StatusResponse struct {
	ID     string `msgpack:"id,omitempty"`
	Status string `msgpack:"status"`
}

// LanguageResponse - active language and analyser
type LanguageResponse struct {
	ID        string `msgpack:"id"`
	Lang      string `msgpack:"lang"`
	Analyzer  string `msgpack:"analyzer"`
	TimeTaken int64  `msgpack:"t"`
}

// SynsetInfo - minimal synset description
type SynsetInfo struct {
	Name       string   `msgpack:"n"`
	ID         string   `msgpack:"id"`
	POS        string   `msgpack:"pos"`
	Definition string   `msgpack:"d,omitempty"`
	Lemmas     []string `msgpack:"l"`
}

// SynsetsResponse - result of synsets and synset ops
type SynsetsResponse struct {
	ID        string       `msgpack:"id"`
	Synsets   []SynsetInfo `msgpack:"s"`
	Count     int          `msgpack:"c"`
	TimeTaken int64        `msgpack:"t"`
}

// LemmaInfo - minimal lemma description
type LemmaInfo struct {
	Name   string `msgpack:"n"`
	Word   string `msgpack:"w"`
	Synset string `msgpack:"s"`
	Count  int    `msgpack:"f"`
}

// LemmasResponse - result of lemma and lemmas ops
type LemmasResponse struct {
	ID        string      `msgpack:"id"`
	Lemmas    []LemmaInfo `msgpack:"l"`
	Count     int         `msgpack:"c"`
	TimeTaken int64       `msgpack:"t"`
}

// MorphyResponse - dictionary form of a token
type MorphyResponse struct {
	ID        string `msgpack:"id"`
	Form      string `msgpack:"w"`
	Found     bool   `msgpack:"ok"`
	TimeTaken int64  `msgpack:"t"`
}

// CompletionSuggestion - minimal suggestion response
type CompletionSuggestion struct {
	Word      string `msgpack:"w"`
	Rank      uint16 `msgpack:"r"`
	Frequency int    `msgpack:"f,omitempty"`
}

// CompletionResponse - completion response
type CompletionResponse struct {
	ID          string                 `msgpack:"id"`
	Suggestions []CompletionSuggestion `msgpack:"s"`
	Count       int                    `msgpack:"c"`
	TimeTaken   int64                  `msgpack:"t"`
}

// ErrorResponse holds basic error information for a failed op
type ErrorResponse struct {
	ID    string `msgpack:"id"`
	Error string `msgpack:"e"`
	Code  int    `msgpack:"c"`
}

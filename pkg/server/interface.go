/*
Package server exposes the teny engine over msgpack IPC and HTTP.

Both transports share one dispatcher, so an operation returns the same payload
whichever way it was asked for.

# IPC

The IPC server reads a stream of msgpack maps from stdin and writes one
msgpack map per request to stdout. Requests are processed in order.

	{"id": "req_001", "op": "check", "q": "tranoo"}
	{"id": "req_002", "op": "predict", "q": "manao ahoana", "l": 3}
	{"id": "req_003", "op": "translate", "q": "merci", "dir": "fr_to_mg"}

Each response echoes the id and op, carries the payload under "r" and the
time taken in microseconds under "t":

	{"id": "req_002", "op": "predict", "r": {"suggestions": ["ianao", "ry", "hianareo"], "level": "trigram", "context": "manao ahoana"}, "t": 41}

A request without an id is given one. Failures come back as

	{"id": "req_004", "e": "unknown op \"foo\"", "c": 400}

Supported ops: check, suggest, predict, complete, translate, sentiment,
lemmatize, entities, phonetics, native, health, stats and reload.

# HTTP

The HTTP server accepts JSON bodies on the /api routes, for example

	POST /api/check-spelling   {"word": "tranoo"}
	POST /api/autocomplete     {"context": "ny"}
	POST /api/extract-entities {"text": "Tonga soa eto Antananarivo"}

plus GET /healthz, GET /api/stats and GET /metrics for Prometheus.
*/
package server

// Request is one IPC message. Text holds the word, context or sentence the
// op works on.
type Request struct {
	ID        string `msgpack:"id" validate:"max=128"`
	Op        Op     `msgpack:"op" validate:"required,op"`
	Text      string `msgpack:"q" validate:"maxinput"`
	Limit     int    `msgpack:"l,omitempty" validate:"gte=0"`
	Direction string `msgpack:"dir,omitempty" validate:"omitempty,direction"`
}

// Response wraps the payload of a successful op.
type Response struct {
	ID        string `msgpack:"id"`
	Op        Op     `msgpack:"op"`
	Result    any    `msgpack:"r"`
	TimeTaken int64  `msgpack:"t"`
}

// ErrorResponse holds basic error information for failed requests
type ErrorResponse struct {
	ID    string `msgpack:"id" json:"id,omitempty"`
	Error string `msgpack:"e" json:"error"`
	Code  int    `msgpack:"c" json:"code"`
}

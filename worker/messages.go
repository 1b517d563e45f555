// Package worker runs pathfinding queries on a dedicated goroutine so the
// game loop never blocks on a search. Requests and responses travel as
// JSON envelopes correlated by request ID, and each request carries its
// own grid snapshot so in-flight searches are isolated from later map
// edits.
package worker

import (
	"encoding/json"

	"github.com/google/uuid"

	"github.com/bradleyschulz88/Epochs-of-Empires-sub001/model"
)

// Message types routed by the worker loop.
const (
	TypeFindPath   = "find_path"
	TypePathResult = "path_result"
	TypeError      = "error"
)

// Envelope frames every message: a type for handler dispatch, a unique
// request ID echoed on the response for correlation, and the type-specific
// payload left raw until a handler decodes it.
type Envelope struct {
	Type      string          `json:"type"`
	RequestID string          `json:"request_id"`
	Data      json.RawMessage `json:"data"`
}

// NewEnvelope wraps a payload in an envelope with a fresh request ID.
func NewEnvelope(msgType string, payload any) (Envelope, error) {
	data, err := json.Marshal(payload)
	if err != nil {
		return Envelope{}, err
	}
	return Envelope{
		Type:      msgType,
		RequestID: uuid.NewString(),
		Data:      data,
	}, nil
}

// reply builds the response envelope for a request, reusing its ID.
func reply(req Envelope, msgType string, payload any) (Envelope, error) {
	data, err := json.Marshal(payload)
	if err != nil {
		return Envelope{}, err
	}
	return Envelope{Type: msgType, RequestID: req.RequestID, Data: data}, nil
}

// ErrorResponse is the payload of a TypeError envelope: the request could
// not be dispatched or its handler failed.
type ErrorResponse struct {
	Error string `json:"error"`
}

// errorEnvelope builds the failure response for a request. A string
// payload cannot fail to marshal, so the envelope always carries data.
func errorEnvelope(req Envelope, msg string) Envelope {
	env, err := reply(req, TypeError, ErrorResponse{Error: msg})
	if err != nil {
		return Envelope{Type: TypeError, RequestID: req.RequestID}
	}
	return env
}

// FindPathRequest asks for the cheapest path between two tiles. The grid
// travels by value as a serialized snapshot.
type FindPathRequest struct {
	Start model.Coord `json:"start"`
	End   model.Coord `json:"end"`
	Grid  *model.Grid `json:"grid"`
	Unit  *model.Unit `json:"unit"`
}

// FindPathResponse carries the result. Path is null when no path exists;
// Error is set only for invalid input.
type FindPathResponse struct {
	Path  model.Path `json:"path"`
	Error string     `json:"error,omitempty"`
}

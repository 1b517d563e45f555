package worker

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"sync"

	"github.com/bradleyschulz88/Epochs-of-Empires-sub001/model"
	"github.com/bradleyschulz88/Epochs-of-Empires-sub001/pathfind"
)

// ErrWorkerClosed is returned by Submit after Close.
var ErrWorkerClosed = errors.New("worker is closed")

// Handler processes one request envelope and produces its response.
type Handler func(Envelope) (Envelope, error)

// Worker owns a single goroutine that drains requests in FIFO order.
// Responses are matched back to their callers by request ID, so any number
// of goroutines may Submit concurrently.
type Worker struct {
	requests chan Envelope
	logger   *slog.Logger

	mu       sync.Mutex
	pending  map[string]chan Envelope
	handlers map[string]Handler

	// closeMu serializes enqueueing against Close so a request accepted by
	// Submit is always in the channel before it is closed — the loop drains
	// the channel to exhaustion, so every accepted request gets a response.
	closeMu sync.Mutex
	closed  bool
}

// New starts a worker with the pathfinding handlers registered.
func New() *Worker {
	w := &Worker{
		requests: make(chan Envelope, 16),
		handlers: map[string]Handler{TypeFindPath: handleFindPath},
		pending:  make(map[string]chan Envelope),
		logger:   slog.Default().With("component", "worker"),
	}
	go w.loop()
	return w
}

// Register installs a handler for a message type, replacing any existing
// one. Safe to call while the worker is running; requests already queued
// dispatch to whichever handler is installed when they are handled.
func (w *Worker) Register(msgType string, h Handler) {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.handlers[msgType] = h
}

func (w *Worker) loop() {
	for req := range w.requests {
		w.handle(req)
	}
}

func (w *Worker) handle(req Envelope) {
	w.mu.Lock()
	h, ok := w.handlers[req.Type]
	w.mu.Unlock()
	if !ok {
		w.logger.Warn("no handler for message type", "type", req.Type)
		w.deliver(req.RequestID, errorEnvelope(req, fmt.Sprintf("no handler for message type %q", req.Type)))
		return
	}
	resp, err := h(req)
	if err != nil {
		w.logger.Error("handler failed", "type", req.Type, "error", err)
		resp = errorEnvelope(req, err.Error())
	}
	w.deliver(req.RequestID, resp)
}

// deliver hands the response to the waiting caller. A missing pending
// entry means the caller gave up (context cancelled); the response is
// dropped.
func (w *Worker) deliver(requestID string, resp Envelope) {
	w.mu.Lock()
	ch, ok := w.pending[requestID]
	delete(w.pending, requestID)
	w.mu.Unlock()
	if !ok {
		w.logger.Debug("dropping stale response", "request_id", requestID)
		return
	}
	ch <- resp
}

// Submit enqueues a request and blocks until its response arrives or the
// context is done. Requests are processed strictly in submission order.
// Every accepted request is handled, even if Close runs concurrently.
func (w *Worker) Submit(ctx context.Context, req Envelope) (Envelope, error) {
	ch := make(chan Envelope, 1)
	w.mu.Lock()
	w.pending[req.RequestID] = ch
	w.mu.Unlock()

	w.closeMu.Lock()
	if w.closed {
		w.closeMu.Unlock()
		w.abandon(req.RequestID)
		return Envelope{}, ErrWorkerClosed
	}
	select {
	case w.requests <- req:
		w.closeMu.Unlock()
	case <-ctx.Done():
		w.closeMu.Unlock()
		w.abandon(req.RequestID)
		return Envelope{}, ctx.Err()
	}

	select {
	case resp := <-ch:
		return resp, nil
	case <-ctx.Done():
		w.abandon(req.RequestID)
		return Envelope{}, ctx.Err()
	}
}

func (w *Worker) abandon(requestID string) {
	w.mu.Lock()
	delete(w.pending, requestID)
	w.mu.Unlock()
}

// Close stops accepting requests; the loop drains what was already queued
// before exiting. Safe to call more than once.
func (w *Worker) Close() {
	w.closeMu.Lock()
	defer w.closeMu.Unlock()
	if w.closed {
		return
	}
	w.closed = true
	close(w.requests)
}

// FindPath runs a path query on the worker goroutine. The grid is cloned
// and serialized into the request, so the search sees a consistent
// snapshot no matter what the caller does to the live grid afterwards. A
// nil path with a nil error means the goal is unreachable, matching the
// synchronous API.
func (w *Worker) FindPath(ctx context.Context, g *model.Grid, u *model.Unit, start, end model.Coord) (model.Path, error) {
	req, err := NewEnvelope(TypeFindPath, FindPathRequest{
		Start: start,
		End:   end,
		Grid:  g.Clone(),
		Unit:  u,
	})
	if err != nil {
		return nil, fmt.Errorf("encode request: %w", err)
	}

	resp, err := w.Submit(ctx, req)
	if err != nil {
		return nil, err
	}
	if resp.Type == TypeError {
		var fail ErrorResponse
		if err := json.Unmarshal(resp.Data, &fail); err != nil {
			return nil, fmt.Errorf("decode error response: %w", err)
		}
		return nil, errors.New(fail.Error)
	}

	var result FindPathResponse
	if err := json.Unmarshal(resp.Data, &result); err != nil {
		return nil, fmt.Errorf("decode response: %w", err)
	}
	if result.Error != "" {
		return nil, errors.New(result.Error)
	}
	return result.Path, nil
}

func handleFindPath(req Envelope) (Envelope, error) {
	var q FindPathRequest
	if err := json.Unmarshal(req.Data, &q); err != nil {
		return Envelope{}, fmt.Errorf("decode request: %w", err)
	}

	path, err := pathfind.NewFinder(q.Grid).FindPath(q.Start, q.End, q.Unit)
	result := FindPathResponse{Path: path}
	if err != nil {
		result.Error = err.Error()
	}
	return reply(req, TypePathResult, result)
}

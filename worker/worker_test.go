package worker

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/bradleyschulz88/Epochs-of-Empires-sub001/model"
)

func TestFindPathRoundTrip(t *testing.T) {
	w := New()
	defer w.Close()

	g := model.NewGrid(model.Rectangular, 5)
	u := &model.Unit{ID: 1, Owner: "red", Domain: model.DomainLand, MovePoints: 5, MaxMovePoints: 5}

	path, err := w.FindPath(context.Background(), g, u, model.Coord{Q: 0, R: 0}, model.Coord{Q: 3, R: 0})
	if err != nil {
		t.Fatalf("FindPath: %v", err)
	}
	if len(path) != 4 {
		t.Errorf("path length = %d, want 4", len(path))
	}
	if path[0] != (model.Coord{Q: 0, R: 0}) || path[3] != (model.Coord{Q: 3, R: 0}) {
		t.Errorf("path endpoints = %v .. %v", path[0], path[3])
	}
}

func TestFindPathNoPathIsNil(t *testing.T) {
	w := New()
	defer w.Close()

	g := model.NewGrid(model.Rectangular, 3)
	for r := 0; r < 3; r++ {
		if err := g.SetTerrain(model.Coord{Q: 1, R: r}, model.Water); err != nil {
			t.Fatalf("SetTerrain: %v", err)
		}
	}
	u := &model.Unit{ID: 1, Owner: "red", Domain: model.DomainLand, MovePoints: 5}

	path, err := w.FindPath(context.Background(), g, u, model.Coord{Q: 0, R: 0}, model.Coord{Q: 2, R: 0})
	if err != nil {
		t.Fatalf("FindPath: %v", err)
	}
	if path != nil {
		t.Errorf("path = %v, want nil for an unreachable goal", path)
	}
}

func TestFindPathInvalidInputSurfacesError(t *testing.T) {
	w := New()
	defer w.Close()

	g := model.NewGrid(model.Rectangular, 3)
	u := &model.Unit{ID: 1, Owner: "red", Domain: model.DomainLand, MovePoints: 5}

	_, err := w.FindPath(context.Background(), g, u, model.Coord{Q: 0, R: 0}, model.Coord{Q: 9, R: 9})
	if err == nil {
		t.Fatal("expected an error for an out-of-bounds goal")
	}
}

func TestFindPathUsesSnapshot(t *testing.T) {
	w := New()
	defer w.Close()

	g := model.NewGrid(model.Rectangular, 5)
	u := &model.Unit{ID: 1, Owner: "red", Domain: model.DomainLand, MovePoints: 10}

	// The request clones the grid, so edits to the live grid after the
	// call never affect the original map the caller still holds.
	if _, err := w.FindPath(context.Background(), g, u, model.Coord{Q: 0, R: 0}, model.Coord{Q: 4, R: 0}); err != nil {
		t.Fatalf("FindPath: %v", err)
	}
	tile, ok := g.At(model.Coord{Q: 2, R: 0})
	if !ok || tile.Terrain != model.Plains {
		t.Error("live grid was mutated by the worker")
	}
}

func TestConcurrentCallersGetOwnResults(t *testing.T) {
	w := New()
	defer w.Close()

	g := model.NewGrid(model.Rectangular, 8)
	var wg sync.WaitGroup
	for i := 0; i < 16; i++ {
		wg.Add(1)
		go func(goal int) {
			defer wg.Done()
			u := &model.Unit{ID: goal, Owner: "red", Domain: model.DomainLand, MovePoints: 20}
			path, err := w.FindPath(context.Background(), g, u, model.Coord{Q: 0, R: 0}, model.Coord{Q: goal, R: 0})
			if err != nil {
				t.Errorf("goal %d: %v", goal, err)
				return
			}
			if len(path) != goal+1 {
				t.Errorf("goal %d: path length %d, want %d", goal, len(path), goal+1)
			}
		}(i % 8)
	}
	wg.Wait()
}

func TestSubmitFIFOOrdering(t *testing.T) {
	w := New()
	defer w.Close()

	var mu sync.Mutex
	var order []int
	w.Register("mark", func(req Envelope) (Envelope, error) {
		var n int
		if err := json.Unmarshal(req.Data, &n); err != nil {
			return Envelope{}, err
		}
		mu.Lock()
		order = append(order, n)
		mu.Unlock()
		return reply(req, "mark_done", n)
	})

	// Submit from one goroutine so enqueue order is deterministic; the
	// worker must process in that same order.
	var wg sync.WaitGroup
	for i := 0; i < 10; i++ {
		env, err := NewEnvelope("mark", i)
		if err != nil {
			t.Fatalf("NewEnvelope: %v", err)
		}
		wg.Add(1)
		go func() {
			defer wg.Done()
			if _, err := w.Submit(context.Background(), env); err != nil {
				t.Errorf("Submit: %v", err)
			}
		}()
		// The request channel is buffered well past 10 entries, so a brief
		// pause guarantees this submission lands before the next.
		time.Sleep(5 * time.Millisecond)
	}
	wg.Wait()

	for i, n := range order {
		if n != i {
			t.Fatalf("processed order %v, want ascending", order)
		}
	}
}

func TestSubmitContextCancelled(t *testing.T) {
	w := New()
	defer w.Close()

	release := make(chan struct{})
	w.Register("slow", func(req Envelope) (Envelope, error) {
		<-release
		return reply(req, "slow_done", nil)
	})

	blocker, err := NewEnvelope("slow", nil)
	if err != nil {
		t.Fatalf("NewEnvelope: %v", err)
	}
	go w.Submit(context.Background(), blocker)

	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()
	env, err := NewEnvelope("slow", nil)
	if err != nil {
		t.Fatalf("NewEnvelope: %v", err)
	}
	if _, err := w.Submit(ctx, env); !errors.Is(err, context.DeadlineExceeded) {
		t.Errorf("err = %v, want context.DeadlineExceeded", err)
	}
	close(release)
}

func TestSubmitAfterClose(t *testing.T) {
	w := New()
	w.Close()
	w.Close() // idempotent

	env, err := NewEnvelope("anything", nil)
	if err != nil {
		t.Fatalf("NewEnvelope: %v", err)
	}
	if _, err := w.Submit(context.Background(), env); !errors.Is(err, ErrWorkerClosed) {
		t.Errorf("err = %v, want ErrWorkerClosed", err)
	}
}

func TestCloseDoesNotLoseAcceptedRequests(t *testing.T) {
	// Submitters race Close. Every Submit must either be refused with
	// ErrWorkerClosed or get its response — an accepted request that no
	// one handles would block a caller without a deadline forever.
	for round := 0; round < 50; round++ {
		w := New()
		w.Register("echo", func(req Envelope) (Envelope, error) {
			return reply(req, "echo_done", nil)
		})

		var wg sync.WaitGroup
		for i := 0; i < 8; i++ {
			i := i
			wg.Add(1)
			go func() {
				defer wg.Done()
				env, err := NewEnvelope("echo", i)
				if err != nil {
					t.Errorf("NewEnvelope: %v", err)
					return
				}
				resp, err := w.Submit(context.Background(), env)
				if errors.Is(err, ErrWorkerClosed) {
					return
				}
				if err != nil {
					t.Errorf("Submit: %v", err)
					return
				}
				if resp.RequestID != env.RequestID {
					t.Errorf("response for %q answered request %q", env.RequestID, resp.RequestID)
				}
			}()
		}
		w.Close()
		wg.Wait()
	}
}

func TestUnknownTypeGetsErrorResponse(t *testing.T) {
	w := New()
	defer w.Close()

	env, err := NewEnvelope("no_such_type", nil)
	if err != nil {
		t.Fatalf("NewEnvelope: %v", err)
	}
	resp, err := w.Submit(context.Background(), env)
	if err != nil {
		t.Fatalf("Submit: %v", err)
	}
	if resp.Type != TypeError {
		t.Errorf("response type = %q, want %q", resp.Type, TypeError)
	}
	if resp.RequestID != env.RequestID {
		t.Errorf("response request ID = %q, want %q", resp.RequestID, env.RequestID)
	}
	var fail ErrorResponse
	if err := json.Unmarshal(resp.Data, &fail); err != nil {
		t.Fatalf("decode error payload: %v", err)
	}
	if fail.Error == "" {
		t.Error("error payload should name the unhandled type")
	}
}

func TestRegisterWhileRunning(t *testing.T) {
	w := New()
	defer w.Close()

	var wg sync.WaitGroup
	for i := 0; i < 4; i++ {
		wg.Add(1)
		go func(n int) {
			defer wg.Done()
			msgType := fmt.Sprintf("job_%d", n)
			w.Register(msgType, func(req Envelope) (Envelope, error) {
				return reply(req, msgType+"_done", n)
			})
			env, err := NewEnvelope(msgType, nil)
			if err != nil {
				t.Errorf("NewEnvelope: %v", err)
				return
			}
			resp, err := w.Submit(context.Background(), env)
			if err != nil {
				t.Errorf("Submit %s: %v", msgType, err)
				return
			}
			if resp.Type != msgType+"_done" {
				t.Errorf("response type = %q, want %q", resp.Type, msgType+"_done")
			}
		}(i)
	}
	wg.Wait()
}

func TestEnvelopeIDsUnique(t *testing.T) {
	seen := make(map[string]bool)
	for i := 0; i < 100; i++ {
		env, err := NewEnvelope(TypeFindPath, fmt.Sprintf("payload-%d", i))
		if err != nil {
			t.Fatalf("NewEnvelope: %v", err)
		}
		if env.RequestID == "" {
			t.Fatal("empty request ID")
		}
		if seen[env.RequestID] {
			t.Fatalf("duplicate request ID %q", env.RequestID)
		}
		seen[env.RequestID] = true
	}
}

func TestGridSurvivesEnvelopeRoundTrip(t *testing.T) {
	g := model.NewGrid(model.Hexagonal, 3)
	if err := g.SetTerrain(model.Coord{Q: 1, R: 1}, model.Forest); err != nil {
		t.Fatalf("SetTerrain: %v", err)
	}
	if err := g.PlaceOccupant(model.Coord{Q: 2, R: 0}, 4, "blue"); err != nil {
		t.Fatalf("PlaceOccupant: %v", err)
	}

	env, err := NewEnvelope(TypeFindPath, FindPathRequest{
		Start: model.Coord{Q: 0, R: 0},
		End:   model.Coord{Q: 2, R: 2},
		Grid:  g,
		Unit:  &model.Unit{ID: 1, Owner: "red", Domain: model.DomainLand, MovePoints: 5},
	})
	if err != nil {
		t.Fatalf("NewEnvelope: %v", err)
	}

	raw, err := json.Marshal(env)
	if err != nil {
		t.Fatalf("Marshal: %v", err)
	}
	var back Envelope
	if err := json.Unmarshal(raw, &back); err != nil {
		t.Fatalf("Unmarshal: %v", err)
	}
	var q FindPathRequest
	if err := json.Unmarshal(back.Data, &q); err != nil {
		t.Fatalf("decode payload: %v", err)
	}

	if q.Grid.Shape != model.Hexagonal || len(q.Grid.Tiles) != len(g.Tiles) {
		t.Fatalf("decoded grid shape=%v tiles=%d, want hexagonal with %d tiles", q.Grid.Shape, len(q.Grid.Tiles), len(g.Tiles))
	}
	tile, ok := q.Grid.At(model.Coord{Q: 2, R: 0})
	if !ok || tile.Occupant == nil || tile.Occupant.Owner != "blue" {
		t.Error("occupant lost in transit")
	}
}

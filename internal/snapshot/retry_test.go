package snapshot

import (
	"context"
	"errors"
	"testing"
	"time"

	"lanwatch/internal/domain"
)

func emptySnap(t *testing.T) *domain.NetworkSnapshot {
	t.Helper()
	return &domain.NetworkSnapshot{
		Interfaces: []domain.Interface{{Name: name(t, "eth0"), Kind: domain.KindEthernet, State: domain.OperUp}},
		Neighbors:  map[domain.InterfaceName][]domain.NeighborEntry{},
		Failed:     map[domain.InterfaceName]string{},
	}
}

func populatedSnap(t *testing.T) *domain.NetworkSnapshot {
	t.Helper()
	snap := emptySnap(t)
	snap.Neighbors[name(t, "eth0")] = []domain.NeighborEntry{
		entry(t, "eth0", "192.168.1.1", domain.NeighborReachable),
	}
	return snap
}

func TestCollectWithRetry(t *testing.T) {
	noDelays := []time.Duration{0, 0, 0}

	t.Run("stops on first non-empty snapshot", func(t *testing.T) {
		calls := 0
		snap, err := CollectWithRetry(context.Background(), func(context.Context) (*domain.NetworkSnapshot, error) {
			calls++
			return populatedSnap(t), nil
		}, noDelays)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if calls != 1 {
			t.Errorf("expected 1 attempt, got %d", calls)
		}
		if snap.TotalNeighbors() != 1 {
			t.Errorf("expected the populated snapshot, got %d neighbors", snap.TotalNeighbors())
		}
	})

	t.Run("retries while empty, returns first non-empty", func(t *testing.T) {
		calls := 0
		snap, err := CollectWithRetry(context.Background(), func(context.Context) (*domain.NetworkSnapshot, error) {
			calls++
			if calls < 3 {
				return emptySnap(t), nil
			}
			return populatedSnap(t), nil
		}, noDelays)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if calls != 3 {
			t.Errorf("expected 3 attempts, got %d", calls)
		}
		if snap.TotalNeighbors() != 1 {
			t.Errorf("expected the populated snapshot, got %d neighbors", snap.TotalNeighbors())
		}
	})

	t.Run("collection error aborts immediately", func(t *testing.T) {
		wantErr := errors.New("interface table unreadable")
		calls := 0
		snap, err := CollectWithRetry(context.Background(), func(context.Context) (*domain.NetworkSnapshot, error) {
			calls++
			if calls == 2 {
				return nil, wantErr
			}
			return emptySnap(t), nil
		}, noDelays)
		if !errors.Is(err, wantErr) {
			t.Fatalf("expected collection error, got %v", err)
		}
		if snap != nil {
			t.Errorf("expected nil snapshot on error, got %v", snap)
		}
		if calls != 2 {
			t.Errorf("expected abort on attempt 2, got %d attempts", calls)
		}
	})

	t.Run("all attempts empty returns last snapshot", func(t *testing.T) {
		calls := 0
		snap, err := CollectWithRetry(context.Background(), func(context.Context) (*domain.NetworkSnapshot, error) {
			calls++
			return emptySnap(t), nil
		}, noDelays)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if calls != len(noDelays)+1 {
			t.Errorf("expected %d attempts, got %d", len(noDelays)+1, calls)
		}
		if snap == nil || snap.TotalNeighbors() != 0 {
			t.Errorf("expected the last empty snapshot, got %v", snap)
		}
	})

	t.Run("no delays means a single attempt", func(t *testing.T) {
		calls := 0
		_, err := CollectWithRetry(context.Background(), func(context.Context) (*domain.NetworkSnapshot, error) {
			calls++
			return emptySnap(t), nil
		}, nil)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if calls != 1 {
			t.Errorf("expected 1 attempt, got %d", calls)
		}
	})

	t.Run("cancellation during backoff returns current snapshot", func(t *testing.T) {
		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		calls := 0
		snap, err := CollectWithRetry(ctx, func(context.Context) (*domain.NetworkSnapshot, error) {
			calls++
			return emptySnap(t), nil
		}, []time.Duration{time.Hour})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if calls != 1 {
			t.Errorf("expected 1 attempt before cancellation, got %d", calls)
		}
		if snap == nil {
			t.Fatal("expected the last snapshot, got nil")
		}
	})
}

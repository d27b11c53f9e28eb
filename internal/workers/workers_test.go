// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package workers

import (
	"testing"
	"time"

	"github.com/MKhiriev/go-stock-keeper/internal/config"
	"github.com/MKhiriev/go-stock-keeper/internal/logger"
	"github.com/MKhiriev/go-stock-keeper/internal/service"
)

// mockWorker is a test implementation of the Worker interface
// that tracks how many times Run was called.
type mockWorker struct {
	runCount int
}

func (m *mockWorker) Run() {
	m.runCount++
}

func TestWorkers_Run_AllWorkersAreCalled(t *testing.T) {
	w1 := &mockWorker{}
	w2 := &mockWorker{}
	w3 := &mockWorker{}

	ws := &Workers{workers: []Worker{w1, w2, w3}}
	ws.Run()

	for i, w := range []*mockWorker{w1, w2, w3} {
		if w.runCount != 1 {
			t.Errorf("worker[%d]: expected runCount=1, got %d", i, w.runCount)
		}
	}
}

func TestWorkers_Run_Empty(t *testing.T) {
	ws := &Workers{workers: []Worker{}}

	// Should not panic on empty workers list
	ws.Run()
}

func TestWorkers_Run_Nil(t *testing.T) {
	ws := &Workers{}

	// Should not panic when workers field is nil
	ws.Run()
}

func TestNewWorkers_SnapshotDisabled(t *testing.T) {
	ws := NewWorkers(&service.Services{}, config.Workers{}, logger.Nop())

	if len(ws.workers) != 0 {
		t.Errorf("expected no workers with zero snapshot interval, got %d", len(ws.workers))
	}
}

func TestNewWorkers_SnapshotEnabled(t *testing.T) {
	cfg := config.Workers{SnapshotInterval: time.Minute}
	ws := NewWorkers(&service.Services{}, cfg, logger.Nop())

	if len(ws.workers) != 1 {
		t.Fatalf("expected one worker, got %d", len(ws.workers))
	}
	if _, ok := ws.workers[0].(*stockSnapshotWorker); !ok {
		t.Errorf("expected a stock snapshot worker, got %T", ws.workers[0])
	}
}

package store

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"openskies/airfield/internal/logging"
	"openskies/airfield/internal/metrics"
	"openskies/airfield/internal/models"
)

// FilePersister re-serializes the full collection to the backing JSON
// document in the background. Pending snapshots coalesce: if a new
// mutation lands before the previous snapshot was written, only the
// newest one is persisted. Writes are serialized through a single
// worker goroutine, so concurrent mutations never race on the file.
//
// Write failures are logged and counted, never propagated; the next
// mutation enqueues a fresh full snapshot, which doubles as the retry.
type FilePersister struct {
	path string
	reg  *metrics.MetricsRegistry

	mu      sync.Mutex
	cond    *sync.Cond
	pending []models.Airport
	queued  bool
	writing bool
	closed  bool
	done    chan struct{}
}

// NewFilePersister starts the background writer for path. reg may be nil.
func NewFilePersister(path string, reg *metrics.MetricsRegistry) *FilePersister {
	p := &FilePersister{
		path: path,
		reg:  reg,
		done: make(chan struct{}),
	}
	p.cond = sync.NewCond(&p.mu)
	go p.run()
	return p
}

// Enqueue schedules a snapshot for persistence. Never blocks on disk I/O.
func (p *FilePersister) Enqueue(snapshot []models.Airport) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.closed {
		return
	}
	p.pending = snapshot
	p.queued = true
	p.cond.Broadcast()
}

// Flush blocks until every queued snapshot has been written (or failed).
func (p *FilePersister) Flush() {
	p.mu.Lock()
	defer p.mu.Unlock()

	for p.queued || p.writing {
		p.cond.Wait()
	}
}

// Close drains the queue and stops the worker.
func (p *FilePersister) Close() {
	p.mu.Lock()
	for p.queued || p.writing {
		p.cond.Wait()
	}
	p.closed = true
	p.cond.Broadcast()
	p.mu.Unlock()

	<-p.done
}

func (p *FilePersister) run() {
	defer close(p.done)

	for {
		p.mu.Lock()
		for !p.queued && !p.closed {
			p.cond.Wait()
		}
		if !p.queued && p.closed {
			p.mu.Unlock()
			return
		}
		snapshot := p.pending
		p.pending = nil
		p.queued = false
		p.writing = true
		p.mu.Unlock()

		if err := p.write(snapshot); err != nil {
			if p.reg != nil {
				p.reg.PersistFailuresTotal.Inc()
			}
			logging.Error("Failed to persist airports file",
				"path", p.path,
				"error", err.Error(),
			)
		} else {
			if p.reg != nil {
				p.reg.PersistWritesTotal.Inc()
			}
			logging.Debug("Persisted airports file",
				"path", p.path,
				"records", len(snapshot),
			)
		}

		p.mu.Lock()
		p.writing = false
		p.cond.Broadcast()
		p.mu.Unlock()
	}
}

// write replaces the backing document atomically so a crash mid-write
// never leaves a truncated file behind.
func (p *FilePersister) write(snapshot []models.Airport) error {
	data, err := json.MarshalIndent(snapshot, "", "\t")
	if err != nil {
		return fmt.Errorf("failed to marshal airports: %w", err)
	}

	dir := filepath.Dir(p.path)
	tmp, err := os.CreateTemp(dir, ".airports-*.json")
	if err != nil {
		return fmt.Errorf("failed to create temp file: %w", err)
	}

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmp.Name())
		return fmt.Errorf("failed to write temp file: %w", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmp.Name())
		return fmt.Errorf("failed to close temp file: %w", err)
	}

	if err := os.Rename(tmp.Name(), p.path); err != nil {
		os.Remove(tmp.Name())
		return fmt.Errorf("failed to replace airports file: %w", err)
	}
	return nil
}

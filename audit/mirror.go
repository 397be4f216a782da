// Package audit mirrors calculations and cart additions into the backend
// audit tables (calculos, carrinho). Writes are a best-effort side channel:
// enqueue never blocks the user-facing action and failures are logged and
// dropped.
package audit

import (
	"log"
	"sync"
	"time"

	"gorm.io/gorm"

	entity "obracalc.GO/model/entity"
	auditRepo "obracalc.GO/model/repository/audit"
)

const queueDepth = 256

// Mirror owns the outbound queue and its single worker goroutine.
type Mirror struct {
	repo   *auditRepo.AuditRepository // nil when no backend DB
	queue  chan func()
	done   chan struct{}
	closed sync.Once
}

// NewMirror starts the worker. db may be nil; enqueues are then no-ops.
func NewMirror(db *gorm.DB) *Mirror {
	m := &Mirror{
		queue: make(chan func(), queueDepth),
		done:  make(chan struct{}),
	}
	if db != nil {
		m.repo = auditRepo.NewAuditRepository(db)
	}
	go m.run()
	return m
}

func (m *Mirror) run() {
	defer close(m.done)
	for job := range m.queue {
		job()
	}
}

// Calculation mirrors one computed quantity into calculos.
func (m *Mirror) Calculation(row entity.CalculationLog) {
	m.enqueue(func() {
		if err := m.repo.InsertCalculation(&row); err != nil {
			log.Printf("audit: calculo insert failed: %v", err)
		}
	})
}

// CartAdd mirrors one add-to-cart into carrinho.
func (m *Mirror) CartAdd(row entity.CartLog) {
	m.enqueue(func() {
		if err := m.repo.InsertCartAdd(&row); err != nil {
			log.Printf("audit: carrinho insert failed: %v", err)
		}
	})
}

func (m *Mirror) enqueue(job func()) {
	if m.repo == nil {
		return
	}
	select {
	case m.queue <- job:
	default:
		log.Println("audit: queue full, dropping row")
	}
}

// Close stops accepting rows and waits briefly for the queue to drain.
func (m *Mirror) Close() {
	m.closed.Do(func() {
		close(m.queue)
		select {
		case <-m.done:
		case <-time.After(2 * time.Second):
			log.Println("audit: drain timed out, remaining rows dropped")
		}
	})
}

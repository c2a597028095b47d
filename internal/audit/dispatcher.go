package audit

import (
	"context"
	"sync"

	"go.uber.org/zap"
)

const (
	ActionCompanyRegistered  = "empresa_cadastrada"
	ActionEmployeeRegistered = "funcionario_cadastrado"
	ActionEmployeeUpdated    = "funcionario_atualizado"
	ActionTimeEntryRemoved   = "lancamento_removido"
)

type Event struct {
	CompanyID  *uint
	EmployeeID *uint
	Action     string
	Entity     string
	EntityID   *uint
	Metadata   any
}

type Dispatcher struct {
	logger *Logger
	log    *zap.Logger
	queue  chan Event

	mu     sync.RWMutex
	closed bool
	done   chan struct{}
}

func NewDispatcher(logger *Logger, log *zap.Logger) *Dispatcher {
	d := &Dispatcher{
		logger: logger,
		log:    log.Named("audit"),
		queue:  make(chan Event, 100), // buffer seguro
		done:   make(chan struct{}),
	}

	go d.worker()
	return d
}

func (d *Dispatcher) worker() {
	defer close(d.done)
	for ev := range d.queue {
		if err := d.logger.Log(context.Background(), ev); err != nil {
			d.log.Error("audit error", zap.String("action", ev.Action), zap.Error(err))
		}
	}
}

func (d *Dispatcher) Dispatch(ev Event) {
	d.mu.RLock()
	defer d.mu.RUnlock()
	if d.closed {
		return
	}

	select {
	case d.queue <- ev:
		// enviado
	default:
		// fila cheia → descartamos audit (nunca quebrar API)
		d.log.Warn("audit queue full, dropping event", zap.String("action", ev.Action))
	}
}

// Close para de aceitar eventos e espera a fila esvaziar.
func (d *Dispatcher) Close() {
	d.mu.Lock()
	if !d.closed {
		d.closed = true
		close(d.queue)
	}
	d.mu.Unlock()
	<-d.done
}

package terminal

import (
	"log"
	"os"
	"os/signal"
	"sync"
)

// SignalWatch restores a terminal when a termination signal arrives
type SignalWatch struct {
	sigCh  chan os.Signal
	doneCh chan struct{}
	once   sync.Once

	mu  sync.Mutex
	sig os.Signal
}

// RestoreOnSignal restores t on the first termination signal
// The signal is recorded before Restore runs, so a loop woken by the restore
// always observes it through Signal
func RestoreOnSignal(t Terminal) *SignalWatch {
	w := &SignalWatch{
		sigCh:  make(chan os.Signal, 1),
		doneCh: make(chan struct{}),
	}
	signal.Notify(w.sigCh, restoreSignals...)
	go w.watch(t)
	return w
}

func (w *SignalWatch) watch(t Terminal) {
	select {
	case sig := <-w.sigCh:
		w.mu.Lock()
		w.sig = sig
		w.mu.Unlock()

		if err := t.Restore(); err != nil {
			log.Printf("terminal: restore on %v failed: %v", sig, err)
			return
		}
		log.Printf("terminal: restored on signal %v", sig)
	case <-w.doneCh:
	}
}

// Signal returns the signal that triggered the restore, nil if none arrived
func (w *SignalWatch) Signal() os.Signal {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.sig
}

// Stop unregisters the handler; safe to call more than once
func (w *SignalWatch) Stop() {
	w.once.Do(func() {
		signal.Stop(w.sigCh)
		close(w.doneCh)
	})
}

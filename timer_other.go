//go:build !unix

package gtthread

import (
	"sync"
	"time"
)

// portableTimer approximates the preemption signal with a one-shot
// time.Timer re-armed after every dispatch, for hosts without a POSIX
// interval timer and SIGVTALRM (see timer_unix.go for that realization).
type portableTimer struct {
	tick func()

	mu     sync.Mutex
	period time.Duration
	timer  *time.Timer
}

func newPreemptTimer(period time.Duration, tick func()) preemptTimer {
	return &portableTimer{tick: tick, period: period}
}

func (p *portableTimer) Start() error {
	if p.period <= 0 {
		return nil
	}
	p.mu.Lock()
	defer p.mu.Unlock()
	p.timer = time.AfterFunc(p.period, p.tick)
	return nil
}

func (p *portableTimer) Reset(d time.Duration) {
	p.mu.Lock()
	defer p.mu.Unlock()

	p.period = d
	if p.timer == nil {
		if d > 0 {
			p.timer = time.AfterFunc(d, p.tick)
		}
		return
	}
	if d <= 0 {
		p.timer.Stop()
		return
	}
	p.timer.Reset(d)
}

func (p *portableTimer) Stop() {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.timer != nil {
		p.timer.Stop()
	}
}

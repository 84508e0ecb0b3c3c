//go:build unix

package gtthread

import (
	"log"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"

	"golang.org/x/sys/unix"
)

// unixTimer delivers the preemption signal with a real ITIMER_VIRTUAL
// interval timer and SIGVTALRM, exactly mirroring set_up_alarm and
// alarm_handler in the original source: the timer fires once, and is
// re-armed explicitly after each dispatch rather than auto-repeating.
type unixTimer struct {
	tick func()

	mu     sync.Mutex
	period time.Duration
	sigCh  chan os.Signal
	stopCh chan struct{}
}

func newPreemptTimer(period time.Duration, tick func()) preemptTimer {
	return &unixTimer{tick: tick, period: period}
}

func (u *unixTimer) Start() error {
	if u.period <= 0 {
		return nil
	}

	u.mu.Lock()
	u.sigCh = make(chan os.Signal, 1)
	u.stopCh = make(chan struct{})
	u.mu.Unlock()

	signal.Notify(u.sigCh, syscall.SIGVTALRM)
	go u.loop()

	return u.arm(u.period)
}

func (u *unixTimer) loop() {
	for {
		select {
		case <-u.sigCh:
			u.tick()
		case <-u.stopCh:
			return
		}
	}
}

func (u *unixTimer) arm(d time.Duration) error {
	it := unix.Itimerval{Value: unix.NsecToTimeval(d.Nanoseconds())}
	return unix.Setitimer(unix.ITIMER_VIRTUAL, &it, nil)
}

func (u *unixTimer) Reset(d time.Duration) {
	u.mu.Lock()
	defer u.mu.Unlock()

	u.period = d
	if u.sigCh == nil {
		return
	}
	if d <= 0 {
		_ = u.arm(0)
		return
	}
	if err := u.arm(d); err != nil {
		log.Printf("gtthread: re-arming preemption timer: %v", err)
	}
}

func (u *unixTimer) Stop() {
	u.mu.Lock()
	defer u.mu.Unlock()

	if u.stopCh != nil {
		close(u.stopCh)
		u.stopCh = nil
	}
	if u.sigCh != nil {
		signal.Stop(u.sigCh)
		u.sigCh = nil
	}
	_ = u.arm(0)
}

package gtthread

// joinState tracks where a thread sits with respect to a join in progress,
// mirroring gtthread_s.is_joined in the original source (there a plain
// bool; widened here to also say whether the waiter's wakeup has already
// been delivered, since the "joininator" sweep needs to tell those apart).
type joinState int

const (
	joinNone joinState = iota
	joinWaiting
	joinCompleted
)

// noTarget is the "not waiting on anyone" sentinel for waitTarget, standing
// in for the original's wait_tid = -1.
const noTarget = ^uint64(0)

// record is the internal thread record: gtthread_s translated field for
// field. Unlike the original, it holds no machine context of its own - its
// goroutine stack plays that role - so record carries only the scheduling
// bookkeeping the run queue and join subsystem need; "whose turn it is" is
// read straight off the scheduler's run queue rather than off any token
// owned by the record itself (see awaitTurnLocked in dispatch.go).
type record struct {
	id       uint64
	finished bool
	retval   any

	join       joinState
	waitTarget uint64  // id this record is waiting to join, or noTarget
	joinee     *record // record waiting to join this one, or nil
}

func newRecord(id uint64) *record {
	return &record{
		id:         id,
		waitTarget: noTarget,
	}
}

func (r *record) handle() Thread {
	return Thread{id: r.id}
}

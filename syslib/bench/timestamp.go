// Doost!

package bench

import (
	"fmt"
	"io"
	"time"
)

// Timestamp marks elapsed time between calls to Mark/MarkN.
type Timestamp struct {
	t0 time.Time
	w  io.Writer // may be nil
}

// NewTimestamp returns a Timestamp that reports marks to w.
func NewTimestamp(w io.Writer) *Timestamp { return &Timestamp{t0: time.Now(), w: w} }

func (t *Timestamp) mark() time.Duration {
	var now = time.Now()
	var dt = now.Sub(t.t0)
	t.t0 = now
	return dt
}

func (t *Timestamp) Mark(s string) time.Duration {
	dt := t.mark()
	t.emit("time-mark: %s - dt:%s\n", s, dt)
	return dt
}

// MarkN reports the elapsed time and the time per op for ops operations.
func (t *Timestamp) MarkN(s string, ops int) (dt, dtpo time.Duration) {
	dt = t.mark()
	if ops > 0 {
		dtpo = dt / time.Duration(ops)
	}
	t.emit("time-mark: %s - dt:%s t/op:%s\n", s, dt, dtpo)
	return
}

func (t *Timestamp) emit(fmtstr string, a ...interface{}) {
	if t.w != nil {
		fmt.Fprintf(t.w, fmtstr, a...)
	}
}

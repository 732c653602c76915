package utils

import (
	"sync/atomic"
	"time"
)

var lastMillis atomic.Int64

// NowMillis returns the current wall-clock time in Unix milliseconds.
//
// Values returned within one process never decrease, even if the wall clock
// is stepped backwards: in that case the previously returned value is
// repeated until the clock catches up.
func NowMillis() int64 {
	now := time.Now().UnixMilli()
	for {
		last := lastMillis.Load()
		if now <= last {
			return last
		}
		if lastMillis.CompareAndSwap(last, now) {
			return now
		}
	}
}

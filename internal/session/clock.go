package session

import "time"

// Clock supplies the monotonic millisecond timestamps fed to the pet's decay.
type Clock interface {
	NowMs() int64
}

type systemClock struct {
	start time.Time
}

// NewSystemClock returns a Clock counting milliseconds since its creation.
// time.Since reads the monotonic clock, so wall-clock jumps never reach the pet.
func NewSystemClock() Clock {
	return &systemClock{start: time.Now()}
}

func (c *systemClock) NowMs() int64 {
	return time.Since(c.start).Milliseconds()
}

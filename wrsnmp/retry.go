package wrsnmp

import (
	"errors"
	"fmt"
	"time"

	"github.com/pb1dft/check-white-rabbit/logger"
)

// Retry runs an operation until it succeeds, the attempt count is used up
// or the time budget is spent. Waits between attempts grow following the
// fibonacci sequence.
type Retry struct {
	currentCount      int
	maxCount          int
	retryStarted      bool
	maxDuration       time.Duration
	retryDuration     time.Duration
	prevRetryDuration time.Duration
	logger            logger.Logger
}

const defaultMaxDuration = 30 * time.Second

var errRetryStarted = errors.New("retry already started")

func NewRetryModule(retryStartDuration time.Duration, lg logger.Logger) *Retry {
	if lg == nil {
		lg = logger.Discard
	}
	return &Retry{
		maxCount:          -1,
		maxDuration:       defaultMaxDuration,
		retryDuration:     retryStartDuration,
		prevRetryDuration: retryStartDuration,
		logger:            lg,
	}
}

func (r *Retry) SetMaxDuration(maxDuration time.Duration) error {
	if r.retryStarted {
		return errRetryStarted
	}
	r.maxDuration = maxDuration
	return nil
}

func (r *Retry) SetMaxCount(maxCount int) error {
	if r.retryStarted {
		return errRetryStarted
	}
	r.maxCount = maxCount
	return nil
}

// Attempts reports how many times the operation has been run.
func (r *Retry) Attempts() int {
	return r.currentCount
}

// Execute calls fn until it returns nil. The last error is returned once
// the count or duration limit is reached.
func (r *Retry) Execute(fn func() error) error {
	r.retryStarted = true
	deadline := time.Now().Add(r.maxDuration)
	var err error
	for {
		r.currentCount++
		if err = fn(); err == nil {
			return nil
		}
		if r.maxCount >= 0 && r.currentCount >= r.maxCount {
			break
		}
		if !time.Now().Add(r.retryDuration).Before(deadline) {
			break
		}
		r.logger.Debug(fmt.Sprintf("attempt %d failed (%v), retrying in %v", r.currentCount, err, r.retryDuration))
		time.Sleep(r.retryDuration)
		r.computeNextRetryTime()
	}
	return fmt.Errorf("giving up after %d attempts: %w", r.currentCount, err)
}

// using fibonacci algorithm to compute the next run time
func (r *Retry) computeNextRetryTime() {
	nextDuration := r.retryDuration + r.prevRetryDuration
	r.prevRetryDuration = r.retryDuration
	r.retryDuration = nextDuration
}

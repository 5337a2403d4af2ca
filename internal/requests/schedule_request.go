package requests

import (
	"errors"
	"fmt"
)

var (
	ErrNoJobs             = errors.New("at least one job is required")
	ErrEmptyProcessId     = errors.New("process id must not be empty")
	ErrDuplicateProcessId = errors.New("duplicate process id")
	ErrNegativeArrival    = errors.New("arrival time must not be negative")
	ErrNonPositiveBurst   = errors.New("burst time must be positive")
	ErrNonPositiveQuantum = errors.New("time quantum must be positive")
	ErrExceedsMaxTime     = errors.New("schedule exceeds the maximum simulated time")
)

// DefaultMaxTime bounds the simulated clock when no other limit is set.
const DefaultMaxTime = 100000

type Job struct {
	ProcessId   string `json:"process_id"`
	ArrivalTime int    `json:"arrival_time"`
	BurstTime   int    `json:"burst_time"`
}
type ScheduleRequests struct {
	Jobs        []Job `json:"jobs"`
	TimeQuantum int   `json:"time_quantum,omitempty"`
	// MaxTime is set by the server, never by the client. Zero means
	// DefaultMaxTime.
	MaxTime int `json:"-"`
}

// Validate checks everything the schedulers take for granted: a non-empty
// job list, unique non-empty ids, arrival >= 0 and burst >= 1. The latest
// arrival plus all bursts, an upper bound of the completion time, must not
// pass MaxTime.
func (r ScheduleRequests) Validate() error {
	if len(r.Jobs) == 0 {
		return ErrNoJobs
	}
	seen := make(map[string]struct{}, len(r.Jobs))
	for i, job := range r.Jobs {
		if job.ProcessId == "" {
			return fmt.Errorf("%w: job #%d", ErrEmptyProcessId, i+1)
		}
		if _, ok := seen[job.ProcessId]; ok {
			return fmt.Errorf("%w: %s", ErrDuplicateProcessId, job.ProcessId)
		}
		seen[job.ProcessId] = struct{}{}
		if job.ArrivalTime < 0 {
			return fmt.Errorf("%w: %s has arrival time %d", ErrNegativeArrival, job.ProcessId, job.ArrivalTime)
		}
		if job.BurstTime < 1 {
			return fmt.Errorf("%w: %s has burst time %d", ErrNonPositiveBurst, job.ProcessId, job.BurstTime)
		}
	}
	return r.checkMaxTime()
}

func (r ScheduleRequests) checkMaxTime() error {
	maxTime := r.MaxTime
	if maxTime <= 0 {
		maxTime = DefaultMaxTime
	}
	// compared by subtraction so that no sum can overflow
	latestArrival, totalBurst := 0, 0
	for _, job := range r.Jobs {
		if job.ArrivalTime > maxTime {
			return fmt.Errorf("%w: %s arrives after %d", ErrExceedsMaxTime, job.ProcessId, maxTime)
		}
		if job.BurstTime > maxTime-totalBurst {
			return fmt.Errorf("%w: total burst time is over %d", ErrExceedsMaxTime, maxTime)
		}
		latestArrival = max(latestArrival, job.ArrivalTime)
		totalBurst += job.BurstTime
	}
	if latestArrival > maxTime-totalBurst {
		return fmt.Errorf("%w: may finish after %d", ErrExceedsMaxTime, maxTime)
	}
	return nil
}

// ResolveTimeQuantum prefers the quantum sent with the request and falls back
// to defaultTimeQuantum.
func (r ScheduleRequests) ResolveTimeQuantum(defaultTimeQuantum int) (int, error) {
	timeQuantum := r.TimeQuantum
	if timeQuantum == 0 {
		timeQuantum = defaultTimeQuantum
	}
	if timeQuantum < 1 {
		return 0, fmt.Errorf("%w: got %d", ErrNonPositiveQuantum, timeQuantum)
	}
	return timeQuantum, nil
}

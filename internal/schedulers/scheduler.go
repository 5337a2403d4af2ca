package schedulers

import (
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"sync"

	"github.com/Tsn168/Operating-System-CPU-scheduling/internal/core"
	"github.com/Tsn168/Operating-System-CPU-scheduling/internal/requests"
	"github.com/Tsn168/Operating-System-CPU-scheduling/internal/responses"
)

var ErrUnknownAlgorithm = errors.New("unknown scheduling algorithm")

type Algorithm int

const (
	AlgorithmFCFS Algorithm = iota
	AlgorithmSJF
	AlgorithmSRT
	AlgorithmRR
)

// Algorithms lists every policy in the order ScheduleAll reports them.
var Algorithms = []Algorithm{AlgorithmFCFS, AlgorithmSJF, AlgorithmSRT, AlgorithmRR}

func (a Algorithm) String() string {
	switch a {
	case AlgorithmFCFS:
		return "First Come First Serve (FCFS)"
	case AlgorithmSJF:
		return "Shortest Job First (SJF)"
	case AlgorithmSRT:
		return "Shortest Remaining Time (SRT)"
	case AlgorithmRR:
		return "Round Robin (RR)"
	}
	return fmt.Sprintf("Algorithm(%d)", int(a))
}

func (a Algorithm) Preemptive() bool {
	return a == AlgorithmSRT || a == AlgorithmRR
}

func ParseAlgorithm(name string) (Algorithm, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "fcfs":
		return AlgorithmFCFS, nil
	case "sjf":
		return AlgorithmSJF, nil
	case "srt":
		return AlgorithmSRT, nil
	case "rr":
		return AlgorithmRR, nil
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownAlgorithm, name)
}

func ScheduleFirstComeFirstServe(request requests.ScheduleRequests) (responses.ScheduleResponse, error) {
	return Schedule(request, AlgorithmFCFS, 0)
}

func ScheduleShortestJobFirst(request requests.ScheduleRequests) (responses.ScheduleResponse, error) {
	return Schedule(request, AlgorithmSJF, 0)
}

func ScheduleShortestRemainingTime(request requests.ScheduleRequests) (responses.ScheduleResponse, error) {
	return Schedule(request, AlgorithmSRT, 0)
}

func ScheduleRoundRobin(request requests.ScheduleRequests, timeQuantum int) (responses.ScheduleResponse, error) {
	return Schedule(request, AlgorithmRR, timeQuantum)
}

// Schedule validates request, runs algorithm on a fresh set of processes and
// summarizes the run. defaultTimeQuantum is only consulted for round robin
// when the request carries no quantum of its own.
func Schedule(request requests.ScheduleRequests, algorithm Algorithm, defaultTimeQuantum int) (responses.ScheduleResponse, error) {
	if err := request.Validate(); err != nil {
		return responses.ScheduleResponse{}, err
	}
	timeQuantum := 0
	if algorithm == AlgorithmRR {
		var err error
		if timeQuantum, err = request.ResolveTimeQuantum(defaultTimeQuantum); err != nil {
			return responses.ScheduleResponse{}, err
		}
	}
	return execute(algorithm, newProcesses(request.Jobs), timeQuantum)
}

// ScheduleAll runs every algorithm against its own copy of the jobs. The runs
// share nothing, so they execute concurrently.
func ScheduleAll(request requests.ScheduleRequests, defaultTimeQuantum int) ([]responses.ScheduleResponse, error) {
	if err := request.Validate(); err != nil {
		return nil, err
	}
	timeQuantum, err := request.ResolveTimeQuantum(defaultTimeQuantum)
	if err != nil {
		return nil, err
	}
	processes := newProcesses(request.Jobs)

	results := make([]responses.ScheduleResponse, len(Algorithms))
	errs := make([]error, len(Algorithms))

	var wg sync.WaitGroup
	wg.Add(len(Algorithms))
	for i, algorithm := range Algorithms {
		go func(i int, algorithm Algorithm, processes []*core.Process) {
			defer wg.Done()
			q := 0
			if algorithm == AlgorithmRR {
				q = timeQuantum
			}
			results[i], errs[i] = execute(algorithm, processes, q)
		}(i, algorithm, core.CloneAll(processes))
	}
	wg.Wait()

	if err := errors.Join(errs...); err != nil {
		return nil, err
	}
	return results, nil
}

func execute(algorithm Algorithm, processes []*core.Process, timeQuantum int) (responses.ScheduleResponse, error) {
	timeline, err := run(algorithm, processes, timeQuantum)
	if err != nil {
		return responses.ScheduleResponse{}, err
	}
	slog.Debug("schedule completed",
		slog.String("algorithm", algorithm.String()),
		slog.Int("processes", len(processes)),
		slog.Int("time_quantum", timeQuantum),
		slog.Int("completion_time", timeline.CompletionTime),
	)
	return generateResponse(algorithm, timeQuantum, processes, timeline), nil
}

func run(algorithm Algorithm, processes []*core.Process, timeQuantum int) (*core.Timeline, error) {
	switch algorithm {
	case AlgorithmFCFS:
		return FirstComeFirstServe(processes), nil
	case AlgorithmSJF:
		return ShortestJobFirst(processes), nil
	case AlgorithmSRT:
		return ShortestRemainingTime(processes), nil
	case AlgorithmRR:
		return RoundRobin(processes, timeQuantum), nil
	}
	return nil, fmt.Errorf("%w: %s", ErrUnknownAlgorithm, algorithm)
}

func newProcesses(jobs []requests.Job) []*core.Process {
	processes := make([]*core.Process, 0, len(jobs))
	for _, job := range jobs {
		processes = append(processes, core.NewProcess(job.ProcessId, job.ArrivalTime, job.BurstTime))
	}
	return processes
}

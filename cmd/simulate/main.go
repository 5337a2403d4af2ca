// Command simulate reads processes from a csv file (id,arrival,burst) and
// prints the schedule produced by one or all algorithms.
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/Tsn168/Operating-System-CPU-scheduling/config"
	"github.com/Tsn168/Operating-System-CPU-scheduling/internal/logger"
	"github.com/Tsn168/Operating-System-CPU-scheduling/internal/report"
	"github.com/Tsn168/Operating-System-CPU-scheduling/internal/requests"
	"github.com/Tsn168/Operating-System-CPU-scheduling/internal/responses"
	"github.com/Tsn168/Operating-System-CPU-scheduling/internal/schedulers"
)

var ErrInvalidArgs = errors.New("invalid args")

func main() {
	algorithm := flag.String("algorithm", "all", "fcfs, sjf, srt, rr or all")
	timeQuantum := flag.Int("quantum", 0, "round robin time quantum, defaults to the configured one")
	configPath := flag.String("config", "", "path to a config file")
	flag.Parse()

	schedulerConfig, err := config.LoadSchedulerConfig(*configPath)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	log := logger.BuildLogger(schedulerConfig.LogLevel)
	slog.SetDefault(log)

	if err := simulate(os.Stdout, flag.Args(), *algorithm, *timeQuantum, schedulerConfig); err != nil {
		log.Error("simulation failed", logger.ErrAttr(err))
		os.Exit(1)
	}
}

func simulate(w io.Writer, args []string, algorithm string, timeQuantum int, schedulerConfig *config.SchedulerConfig) error {
	if len(args) != 1 {
		return fmt.Errorf("%w: must give a scheduling file to process", ErrInvalidArgs)
	}
	f, err := os.Open(args[0])
	if err != nil {
		return fmt.Errorf("opening scheduling file: %w", err)
	}
	defer func() {
		_ = f.Close()
	}()

	jobs, err := requests.LoadJobs(f)
	if err != nil {
		return err
	}
	request := requests.ScheduleRequests{
		Jobs:        jobs,
		TimeQuantum: timeQuantum,
		MaxTime:     schedulerConfig.MaxTime,
	}
	defaultTimeQuantum := schedulerConfig.RoundRobinTimeQuantum

	var schedules []responses.ScheduleResponse
	if algorithm == "all" {
		if schedules, err = schedulers.ScheduleAll(request, defaultTimeQuantum); err != nil {
			return err
		}
	} else {
		selected, err := schedulers.ParseAlgorithm(algorithm)
		if err != nil {
			return fmt.Errorf("%w: %v", ErrInvalidArgs, err)
		}
		schedule, err := schedulers.Schedule(request, selected, defaultTimeQuantum)
		if err != nil {
			return err
		}
		schedules = append(schedules, schedule)
	}

	for _, schedule := range schedules {
		report.Render(w, schedule)
	}
	return nil
}

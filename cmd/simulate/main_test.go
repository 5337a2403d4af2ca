package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Tsn168/Operating-System-CPU-scheduling/config"
	"github.com/Tsn168/Operating-System-CPU-scheduling/internal/requests"
)

var testConfig = &config.SchedulerConfig{RoundRobinTimeQuantum: 2, MaxTime: 100}

func writeJobs(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "jobs.csv")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestSimulate(t *testing.T) {
	path := writeJobs(t, "id,arrival,burst\nP1,0,5\nP2,1,3\n")

	var buf bytes.Buffer
	require.NoError(t, simulate(&buf, []string{path}, "fcfs", 0, testConfig))
	assert.Contains(t, buf.String(), "First Come First Serve (FCFS)")
	assert.NotContains(t, buf.String(), "Round Robin")

	buf.Reset()
	require.NoError(t, simulate(&buf, []string{path}, "all", 3, testConfig))
	out := buf.String()
	for _, title := range []string{"FCFS", "SJF", "SRT", "Round Robin (RR), time quantum 3"} {
		assert.Contains(t, out, title)
	}
}

func TestSimulate_Errors(t *testing.T) {
	path := writeJobs(t, "P1,0,5\n")

	assert.ErrorIs(t, simulate(&bytes.Buffer{}, nil, "fcfs", 0, testConfig), ErrInvalidArgs)
	assert.ErrorIs(t, simulate(&bytes.Buffer{}, []string{path}, "lottery", 0, testConfig), ErrInvalidArgs)
	assert.Error(t, simulate(&bytes.Buffer{}, []string{filepath.Join(t.TempDir(), "missing.csv")}, "fcfs", 0, testConfig))

	bad := writeJobs(t, "P1,0,0\n")
	assert.ErrorIs(t, simulate(&bytes.Buffer{}, []string{bad}, "sjf", 0, testConfig), requests.ErrNonPositiveBurst)

	late := writeJobs(t, "P1,99,5\n")
	assert.ErrorIs(t, simulate(&bytes.Buffer{}, []string{late}, "srt", 0, testConfig), requests.ErrExceedsMaxTime)
}

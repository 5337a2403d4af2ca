// Package report renders schedule results as plain text: a gantt chart
// followed by a per-process table.
package report

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/olekukonko/tablewriter"

	"github.com/Tsn168/Operating-System-CPU-scheduling/internal/responses"
)

func Render(w io.Writer, response responses.ScheduleResponse) {
	title := response.Algorithm
	if response.TimeQuantum > 0 {
		title = fmt.Sprintf("%s, time quantum %d", title, response.TimeQuantum)
	}
	RenderTitle(w, title)
	RenderGantt(w, response.Gantt, response.TotalTime)
	RenderSchedule(w, response)
}

func RenderTitle(w io.Writer, title string) {
	_, _ = fmt.Fprintln(w, strings.Repeat("-", len(title)*2))
	_, _ = fmt.Fprintln(w, strings.Repeat(" ", len(title)/2), title)
	_, _ = fmt.Fprintln(w, strings.Repeat("-", len(title)*2))
}

// RenderGantt prints one cell per dispatch and, below it, each dispatch's
// start time followed by the completion time.
func RenderGantt(w io.Writer, gantt []responses.GanttEntry, completionTime int) {
	_, _ = fmt.Fprintln(w, "Gantt schedule")
	_, _ = fmt.Fprint(w, "|")
	for i := range gantt {
		pid := gantt[i].ProcessId
		padding := strings.Repeat(" ", max(0, (8-len(pid))/2))
		_, _ = fmt.Fprint(w, padding, pid, padding, "|")
	}
	_, _ = fmt.Fprintln(w)
	for i := range gantt {
		_, _ = fmt.Fprint(w, strconv.Itoa(gantt[i].Start), "\t")
	}
	_, _ = fmt.Fprintln(w, strconv.Itoa(completionTime))
	_, _ = fmt.Fprintln(w)
}

func RenderSchedule(w io.Writer, response responses.ScheduleResponse) {
	rows := make([][]string, 0, len(response.Details))
	for _, d := range response.Details {
		rows = append(rows, []string{
			d.ProcessId,
			strconv.Itoa(d.ArrivalTime),
			strconv.Itoa(d.BurstTime),
			strconv.Itoa(d.WaitingTime),
			strconv.Itoa(d.TurnAroundTime),
			strconv.Itoa(d.ResponseTime),
			strconv.Itoa(d.CompletionTime),
		})
	}

	_, _ = fmt.Fprintln(w, "Schedule table")
	table := tablewriter.NewWriter(w)
	table.SetHeader([]string{"ID", "Arrival", "Burst", "Wait", "Turnaround", "Response", "Exit"})
	table.AppendBulk(rows)
	table.SetFooter([]string{"", "", "",
		fmt.Sprintf("Average\n%.2f", response.AverageWaitingTime),
		fmt.Sprintf("Average\n%.2f", response.AverageTurnAroundTime),
		fmt.Sprintf("Average\n%.2f", response.AverageResponseTime),
		fmt.Sprintf("Throughput\n%.2f/t", response.CpuThroughput)})
	table.Render()
}

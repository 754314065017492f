package metrics

import (
	"bytes"
	"fmt"
	"net/http"
	"strconv"
	"sync"
	"sync/atomic"

	"github.com/gin-gonic/gin"
)

var (
	analysisRunsTotal         atomic.Uint64
	analysisDegradedTotal     atomic.Uint64
	analysisUnanalyzableTotal atomic.Uint64
	attendanceImportsTotal    atomic.Uint64
	attendanceRowErrorsTotal  atomic.Uint64

	analysisDuration = newHistogram([]float64{0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10, 25})
)

// IncAnalysisRun increments the analysis-run counter.
func IncAnalysisRun() {
	analysisRunsTotal.Add(1)
}

// IncAnalysisDegraded increments the degraded-analysis counter (unknown type code).
func IncAnalysisDegraded() {
	analysisDegradedTotal.Add(1)
}

// IncAnalysisUnanalyzable increments the counter for inputs with no analyzable data.
func IncAnalysisUnanalyzable() {
	analysisUnanalyzableTotal.Add(1)
}

// IncAttendanceImport increments the attendance-import counter.
func IncAttendanceImport() {
	attendanceImportsTotal.Add(1)
}

// AddAttendanceRowErrors adds rejected attendance rows to the counter.
func AddAttendanceRowErrors(n int) {
	if n <= 0 {
		return
	}
	attendanceRowErrorsTotal.Add(uint64(n))
}

// ObserveAnalysisDurationMs records an analysis duration in milliseconds.
func ObserveAnalysisDurationMs(value float64) {
	if value < 0 {
		value = 0
	}
	analysisDuration.Observe(value)
}

// Handler exposes metrics in Prometheus text format.
func Handler() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Header("Content-Type", "text/plain; version=0.0.4")
		c.String(http.StatusOK, Render())
	}
}

// Render renders metrics in Prometheus text format.
func Render() string {
	var buf bytes.Buffer
	writeCounter(&buf, "analysis_runs_total", "Total analysis runs", analysisRunsTotal.Load())
	writeCounter(&buf, "analysis_degraded_total", "Total degraded analysis runs", analysisDegradedTotal.Load())
	writeCounter(&buf, "analysis_unanalyzable_total", "Total unanalyzable analysis requests", analysisUnanalyzableTotal.Load())
	writeCounter(&buf, "attendance_imports_total", "Total attendance CSV imports", attendanceImportsTotal.Load())
	writeCounter(&buf, "attendance_row_errors_total", "Total rejected attendance CSV rows", attendanceRowErrorsTotal.Load())
	writeHistogram(&buf, "analysis_duration_ms", "Analysis duration in milliseconds", analysisDuration.Snapshot())
	return buf.String()
}

type histogram struct {
	mu      sync.Mutex
	buckets []float64
	counts  []uint64
	sum     float64
	count   uint64
}

type histogramSnapshot struct {
	buckets []float64
	counts  []uint64
	sum     float64
	count   uint64
}

func newHistogram(buckets []float64) *histogram {
	return &histogram{
		buckets: buckets,
		counts:  make([]uint64, len(buckets)),
	}
}

func (h *histogram) Observe(value float64) {
	h.mu.Lock()
	defer h.mu.Unlock()
	for i, bound := range h.buckets {
		if value <= bound {
			h.counts[i]++
		}
	}
	h.sum += value
	h.count++
}

func (h *histogram) Snapshot() histogramSnapshot {
	h.mu.Lock()
	defer h.mu.Unlock()
	counts := make([]uint64, len(h.counts))
	copy(counts, h.counts)
	buckets := make([]float64, len(h.buckets))
	copy(buckets, h.buckets)
	return histogramSnapshot{
		buckets: buckets,
		counts:  counts,
		sum:     h.sum,
		count:   h.count,
	}
}

func writeCounter(buf *bytes.Buffer, name, help string, value uint64) {
	fmt.Fprintf(buf, "# HELP %s %s\n", name, help)
	fmt.Fprintf(buf, "# TYPE %s counter\n", name)
	fmt.Fprintf(buf, "%s %d\n", name, value)
}

func writeHistogram(buf *bytes.Buffer, name, help string, snap histogramSnapshot) {
	fmt.Fprintf(buf, "# HELP %s %s\n", name, help)
	fmt.Fprintf(buf, "# TYPE %s histogram\n", name)
	for i, bound := range snap.buckets {
		fmt.Fprintf(buf, "%s_bucket{le=%q} %d\n", name, strconv.FormatFloat(bound, 'f', -1, 64), snap.counts[i])
	}
	fmt.Fprintf(buf, "%s_bucket{le=\"+Inf\"} %d\n", name, snap.count)
	fmt.Fprintf(buf, "%s_sum %g\n", name, snap.sum)
	fmt.Fprintf(buf, "%s_count %d\n", name, snap.count)
}

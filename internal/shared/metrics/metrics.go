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
	documentUploadsTotal      atomic.Uint64
	documentUploadFailedTotal atomic.Uint64
	questionsAskedTotal       atomic.Uint64
	questionAskFailedTotal    atomic.Uint64

	uploadSizeBytes = newHistogram([]float64{10 << 10, 100 << 10, 512 << 10, 1 << 20, 5 << 20, 10 << 20})
)

// IncDocumentUploaded increments the successful upload counter.
func IncDocumentUploaded() {
	documentUploadsTotal.Add(1)
}

// IncDocumentUploadFailed increments the failed upload counter.
func IncDocumentUploadFailed() {
	documentUploadFailedTotal.Add(1)
}

// IncQuestionAsked increments the posted question counter.
func IncQuestionAsked() {
	questionsAskedTotal.Add(1)
}

// IncQuestionAskFailed increments the failed question counter.
func IncQuestionAskFailed() {
	questionAskFailedTotal.Add(1)
}

// ObserveUploadSizeBytes records the size of a stored object.
func ObserveUploadSizeBytes(value float64) {
	if value < 0 {
		value = 0
	}
	uploadSizeBytes.Observe(value)
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
	writeCounter(&buf, "document_uploads_total", "Total documents uploaded", documentUploadsTotal.Load())
	writeCounter(&buf, "document_upload_failed_total", "Total document uploads failed", documentUploadFailedTotal.Load())
	writeCounter(&buf, "questions_asked_total", "Total questions posted", questionsAskedTotal.Load())
	writeCounter(&buf, "question_ask_failed_total", "Total question posts failed", questionAskFailedTotal.Load())
	writeHistogram(&buf, "upload_size_bytes", "Stored object size in bytes", uploadSizeBytes.Snapshot())
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
	h.count++
	h.sum += value
	for i, bound := range h.buckets {
		if value <= bound {
			h.counts[i]++
		}
	}
}

func (h *histogram) Snapshot() histogramSnapshot {
	h.mu.Lock()
	defer h.mu.Unlock()
	return histogramSnapshot{
		buckets: append([]float64(nil), h.buckets...),
		counts:  append([]uint64(nil), h.counts...),
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
	var cumulative uint64
	for i, bound := range snap.buckets {
		cumulative += snap.counts[i]
		fmt.Fprintf(buf, "%s_bucket{le=\"%s\"} %d\n", name, formatFloat(bound), cumulative)
	}
	fmt.Fprintf(buf, "%s_bucket{le=\"+Inf\"} %d\n", name, snap.count)
	fmt.Fprintf(buf, "%s_sum %s\n", name, formatFloat(snap.sum))
	fmt.Fprintf(buf, "%s_count %d\n", name, snap.count)
}

func formatFloat(value float64) string {
	if value == float64(int64(value)) {
		return strconv.FormatInt(int64(value), 10)
	}
	return strconv.FormatFloat(value, 'f', -1, 64)
}

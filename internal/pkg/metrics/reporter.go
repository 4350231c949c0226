package metrics

import (
	"encoding/json"
	"fmt"
	"io"
	"sync"
	"time"
)

// Reporter buffers categorized entries and writes them as one indented JSON
// document per Flush.
type Reporter struct {
	mu      sync.Mutex
	out     io.Writer
	metrics map[string][]interface{}
	now     func() time.Time
}

func NewReporter(out io.Writer) *Reporter {
	return &Reporter{
		out:     out,
		metrics: make(map[string][]interface{}),
		now:     time.Now,
	}
}

func (r *Reporter) Record(category string, data interface{}) {
	r.mu.Lock()
	defer r.mu.Unlock()

	entry := map[string]interface{}{
		"timestamp": r.now().UTC(),
		"data":      data,
	}

	r.metrics[category] = append(r.metrics[category], entry)
}

func (r *Reporter) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	n := 0
	for _, entries := range r.metrics {
		n += len(entries)
	}
	return n
}

func (r *Reporter) Flush() error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if len(r.metrics) == 0 {
		return nil
	}

	data, err := json.MarshalIndent(r.metrics, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode metrics: %w", err)
	}

	if _, err := r.out.Write(append(data, '\n')); err != nil {
		return fmt.Errorf("failed to write metrics: %w", err)
	}

	r.metrics = make(map[string][]interface{})
	return nil
}

// Close flushes and closes the writer when it is closable.
func (r *Reporter) Close() error {
	if err := r.Flush(); err != nil {
		return fmt.Errorf("failed to flush metrics: %w", err)
	}
	if c, ok := r.out.(io.Closer); ok {
		return c.Close()
	}
	return nil
}

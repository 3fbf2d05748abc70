package catalog_test

import (
	"sync"
	"testing"
	"time"

	"zentwear/internal/catalog"
)

type recorder struct {
	mu     sync.Mutex
	values []string
}

func (r *recorder) commit(v string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.values = append(r.values, v)
}

func (r *recorder) snapshot() []string {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]string, len(r.values))
	copy(out, r.values)
	return out
}

func TestDebouncerCommitsOnlyLastValue(t *testing.T) {
	rec := &recorder{}
	d := catalog.NewDebouncer(20*time.Millisecond, rec.commit)

	d.Set("á")
	d.Set("áo")
	d.Set("áo thun")

	time.Sleep(100 * time.Millisecond)

	got := rec.snapshot()
	if len(got) != 1 || got[0] != "áo thun" {
		t.Fatalf("want single commit of last value, got %v", got)
	}
}

func TestDebouncerCommitsEachQuietPeriod(t *testing.T) {
	rec := &recorder{}
	d := catalog.NewDebouncer(20*time.Millisecond, rec.commit)

	d.Set("áo")
	time.Sleep(80 * time.Millisecond)
	d.Set("quần")
	time.Sleep(80 * time.Millisecond)

	got := rec.snapshot()
	if len(got) != 2 || got[0] != "áo" || got[1] != "quần" {
		t.Fatalf("want [áo quần], got %v", got)
	}
}

func TestDebouncerStopDropsPending(t *testing.T) {
	rec := &recorder{}
	d := catalog.NewDebouncer(20*time.Millisecond, rec.commit)

	d.Set("áo")
	d.Stop()
	time.Sleep(80 * time.Millisecond)

	if got := rec.snapshot(); len(got) != 0 {
		t.Fatalf("stopped debouncer must not commit, got %v", got)
	}
}

package compositor

import (
	"errors"
	"testing"
)

// spyContext3D records every forwarded call so tests can verify the
// graphics context neither drops, batches, nor duplicates work.
type spyContext3D struct {
	flushCalls   int
	releaseCalls int
	flushErr     error
}

func (s *spyContext3D) Flush() error {
	s.flushCalls++
	return s.flushErr
}

func (s *spyContext3D) Release() {
	s.releaseCalls++
}

func TestSoftwareContextHasNoContext3D(t *testing.T) {
	ctx := NewSoftwareContext()

	for range 3 {
		if got := ctx.Context3D(); got != nil {
			t.Fatalf("Context3D() = %v, want nil", got)
		}
	}
	if ctx.Accelerated() {
		t.Error("Accelerated() = true, want false")
	}
}

func TestSoftwareContextFlushIsNoOp(t *testing.T) {
	ctx := NewSoftwareContext()

	for range 3 {
		if err := ctx.Flush(); err != nil {
			t.Fatalf("Flush() error = %v, want nil", err)
		}
	}
}

func TestSoftwareContextClose(t *testing.T) {
	ctx := NewSoftwareContext()

	if err := ctx.Close(); err != nil {
		t.Errorf("Close() error = %v, want nil", err)
	}
	if err := ctx.Close(); err != nil {
		t.Errorf("second Close() error = %v, want nil", err)
	}
}

func TestAcceleratedContextRejectsNil(t *testing.T) {
	ctx, err := NewAcceleratedContext(nil)
	if !errors.Is(err, ErrNilContext3D) {
		t.Errorf("NewAcceleratedContext(nil) error = %v, want ErrNilContext3D", err)
	}
	if ctx != nil {
		t.Errorf("NewAcceleratedContext(nil) context = %v, want nil", ctx)
	}
}

func TestAcceleratedContextReferentialStability(t *testing.T) {
	spy := &spyContext3D{}
	ctx, err := NewAcceleratedContext(spy)
	if err != nil {
		t.Fatalf("NewAcceleratedContext() error = %v", err)
	}

	for range 3 {
		if got := ctx.Context3D(); got != Context3D(spy) {
			t.Fatalf("Context3D() = %v, want the sub-context passed at construction", got)
		}
	}
	if !ctx.Accelerated() {
		t.Error("Accelerated() = false, want true")
	}
}

func TestAcceleratedContextFlushForwardsOneToOne(t *testing.T) {
	spy := &spyContext3D{}
	ctx, err := NewAcceleratedContext(spy)
	if err != nil {
		t.Fatalf("NewAcceleratedContext() error = %v", err)
	}

	for i := 1; i <= 5; i++ {
		if err := ctx.Flush(); err != nil {
			t.Fatalf("Flush() error = %v", err)
		}
		if spy.flushCalls != i {
			t.Fatalf("after %d flushes, sub-context saw %d, want %d", i, spy.flushCalls, i)
		}
	}
}

func TestFlushErrorPassesThroughUnmodified(t *testing.T) {
	flushErr := errors.New("device lost")
	spy := &spyContext3D{flushErr: flushErr}
	ctx, err := NewAcceleratedContext(spy)
	if err != nil {
		t.Fatalf("NewAcceleratedContext() error = %v", err)
	}

	// The error must be the sub-context's error, not a wrapped copy.
	if got := ctx.Flush(); got != flushErr {
		t.Errorf("Flush() error = %v, want the sub-context error unmodified", got)
	}
}

func TestCloseReleasesExactlyOnce(t *testing.T) {
	spy := &spyContext3D{}
	ctx, err := NewAcceleratedContext(spy)
	if err != nil {
		t.Fatalf("NewAcceleratedContext() error = %v", err)
	}

	if err := ctx.Close(); err != nil {
		t.Fatalf("Close() error = %v", err)
	}
	if spy.releaseCalls != 1 {
		t.Fatalf("after Close, releaseCalls = %d, want 1", spy.releaseCalls)
	}

	// Idempotent: a second Close must not release again.
	if err := ctx.Close(); err != nil {
		t.Fatalf("second Close() error = %v", err)
	}
	if spy.releaseCalls != 1 {
		t.Errorf("after second Close, releaseCalls = %d, want 1", spy.releaseCalls)
	}
}

func TestFlushAfterClose(t *testing.T) {
	spy := &spyContext3D{}
	ctx, err := NewAcceleratedContext(spy)
	if err != nil {
		t.Fatalf("NewAcceleratedContext() error = %v", err)
	}
	if err := ctx.Close(); err != nil {
		t.Fatalf("Close() error = %v", err)
	}

	if err := ctx.Flush(); !errors.Is(err, ErrContextClosed) {
		t.Errorf("Flush() after Close error = %v, want ErrContextClosed", err)
	}
	if spy.flushCalls != 0 {
		t.Errorf("Flush() after Close reached the released sub-context (%d calls)", spy.flushCalls)
	}
}

func TestAcceleratedFrameLifecycle(t *testing.T) {
	// One frame, start to finish: construct, flush, destroy.
	spy := &spyContext3D{}
	ctx, err := NewAcceleratedContext(spy)
	if err != nil {
		t.Fatalf("NewAcceleratedContext() error = %v", err)
	}

	if err := ctx.Flush(); err != nil {
		t.Fatalf("Flush() error = %v", err)
	}
	if err := ctx.Close(); err != nil {
		t.Fatalf("Close() error = %v", err)
	}

	if spy.flushCalls != 1 {
		t.Errorf("flushCalls = %d, want 1", spy.flushCalls)
	}
	if spy.releaseCalls != 1 {
		t.Errorf("releaseCalls = %d, want 1", spy.releaseCalls)
	}
}

func BenchmarkSoftwareContextFlush(b *testing.B) {
	ctx := NewSoftwareContext()
	b.ReportAllocs()
	for b.Loop() {
		_ = ctx.Flush()
	}
}

func BenchmarkAcceleratedContextFlush(b *testing.B) {
	ctx, err := NewAcceleratedContext(&spyContext3D{})
	if err != nil {
		b.Fatal(err)
	}
	b.ReportAllocs()
	for b.Loop() {
		_ = ctx.Flush()
	}
}

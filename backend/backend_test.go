package backend

import (
	"errors"
	"testing"

	"github.com/gogpu/compositor"
)

func TestSoftwareBackendName(t *testing.T) {
	b := NewSoftwareBackend()
	if b.Name() != BackendSoftware {
		t.Errorf("Name() = %q, want %q", b.Name(), BackendSoftware)
	}
}

func TestSoftwareBackendInit(t *testing.T) {
	b := NewSoftwareBackend()
	if err := b.Init(); err != nil {
		t.Fatalf("Init() error = %v", err)
	}
	b.Close()
}

func TestSoftwareBackendNewGraphicsContext(t *testing.T) {
	b := NewSoftwareBackend()
	if err := b.Init(); err != nil {
		t.Fatalf("Init() error = %v", err)
	}
	defer b.Close()

	ctx, err := b.NewGraphicsContext()
	if err != nil {
		t.Fatalf("NewGraphicsContext() error = %v", err)
	}
	defer ctx.Close()

	if ctx.Accelerated() {
		t.Error("software back-end produced an accelerated context")
	}
	if ctx.Context3D() != nil {
		t.Error("software context should have no Context3D")
	}
	if err := ctx.Flush(); err != nil {
		t.Errorf("Flush() error = %v, want nil", err)
	}
}

func TestSoftwareBackendUninitialized(t *testing.T) {
	b := NewSoftwareBackend()

	if _, err := b.NewGraphicsContext(); !errors.Is(err, ErrNotInitialized) {
		t.Errorf("NewGraphicsContext() before Init error = %v, want ErrNotInitialized", err)
	}
}

func TestRegistryRegisterAndGet(t *testing.T) {
	// Software back-end is auto-registered via init().
	if !IsRegistered(BackendSoftware) {
		t.Error("software back-end should be auto-registered")
	}

	b := Get(BackendSoftware)
	if b == nil {
		t.Fatal("Get(software) returned nil")
	}
	if b.Name() != BackendSoftware {
		t.Errorf("Get(software).Name() = %q, want %q", b.Name(), BackendSoftware)
	}
}

func TestRegistryGetUnregistered(t *testing.T) {
	if b := Get("nonexistent"); b != nil {
		t.Error("Get(nonexistent) should return nil")
	}
}

func TestRegistryAvailable(t *testing.T) {
	available := Available()
	found := false
	for _, name := range available {
		if name == BackendSoftware {
			found = true
			break
		}
	}
	if !found {
		t.Error("Available() should include 'software'")
	}
}

func TestRegistryUnregister(t *testing.T) {
	Register("test-backend", func() Backend {
		return &SoftwareBackend{}
	})

	if !IsRegistered("test-backend") {
		t.Error("test-backend should be registered")
	}

	Unregister("test-backend")

	if IsRegistered("test-backend") {
		t.Error("test-backend should be unregistered")
	}
}

func TestRegistryDefault(t *testing.T) {
	b := Default()
	if b == nil {
		t.Fatal("Default() returned nil")
	}
	// Software is the default unless a GPU back-end is registered.
	if b.Name() != BackendSoftware {
		t.Logf("Default() returned %q (a GPU back-end is registered)", b.Name())
	}
}

func TestRegistryDefaultPrefersGPU(t *testing.T) {
	// A registered GPU back-end must win the priority ordering.
	Register(BackendGPU, func() Backend {
		return &fakeGPUBackend{}
	})
	t.Cleanup(func() { Unregister(BackendGPU) })

	b := Default()
	if b == nil {
		t.Fatal("Default() returned nil")
	}
	if b.Name() != BackendGPU {
		t.Errorf("Default().Name() = %q, want %q", b.Name(), BackendGPU)
	}
}

func TestRegistryMustDefault(t *testing.T) {
	defer func() {
		if r := recover(); r != nil {
			t.Errorf("MustDefault() panicked: %v", r)
		}
	}()
	if b := MustDefault(); b == nil {
		t.Error("MustDefault() returned nil")
	}
}

func TestRegistryInitDefault(t *testing.T) {
	b, err := InitDefault()
	if err != nil {
		t.Fatalf("InitDefault() error = %v", err)
	}
	if b == nil {
		t.Fatal("InitDefault() returned nil back-end")
	}
	defer b.Close()

	ctx, err := b.NewGraphicsContext()
	if err != nil {
		t.Fatalf("back-end from InitDefault() should be usable: %v", err)
	}
	ctx.Close()
}

func TestRegistryInitDefaultFallsBack(t *testing.T) {
	// A GPU back-end that fails Init must not mask the software fallback.
	Register(BackendGPU, func() Backend {
		return &fakeGPUBackend{initErr: errors.New("no adapter")}
	})
	t.Cleanup(func() { Unregister(BackendGPU) })

	b, err := InitDefault()
	if err != nil {
		t.Fatalf("InitDefault() error = %v, want software fallback", err)
	}
	defer b.Close()

	if b.Name() != BackendSoftware {
		t.Errorf("InitDefault().Name() = %q, want %q", b.Name(), BackendSoftware)
	}
}

// fakeGPUBackend stands in for the gpu3d back-end in registry tests,
// avoiding a real device dependency.
type fakeGPUBackend struct {
	initErr error
}

func (f *fakeGPUBackend) Name() string { return BackendGPU }
func (f *fakeGPUBackend) Init() error  { return f.initErr }
func (f *fakeGPUBackend) Close()       {}

func (f *fakeGPUBackend) NewGraphicsContext() (*compositor.GraphicsContext, error) {
	return compositor.NewAcceleratedContext(fakeContext3D{})
}

// fakeContext3D is an inert GPU sub-context.
type fakeContext3D struct{}

func (fakeContext3D) Flush() error { return nil }
func (fakeContext3D) Release()     {}

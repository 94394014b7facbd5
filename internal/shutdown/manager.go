package shutdown

import (
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"

	"calendar-gui/internal/logger"
)

const componentTimeout = 10 * time.Second

// Shutdownable is anything the manager can stop
type Shutdownable interface {
	Shutdown()
}

// Func adapts a plain function to Shutdownable.
type Func func()

// Shutdown calls f
func (f Func) Shutdown() {
	f()
}

// Manager runs registered components' Shutdown once, in reverse
// registration order, on request or on SIGINT/SIGTERM.
type Manager struct {
	components []Shutdownable
	logger     logger.Logger
	mu         sync.Mutex
	done       chan struct{}
	timeout    time.Duration
}

// NewManager creates a manager with no registered components
func NewManager(log logger.Logger) *Manager {
	return &Manager{
		components: make([]Shutdownable, 0),
		logger:     log,
		done:       make(chan struct{}),
		timeout:    componentTimeout,
	}
}

// Register adds a component; components shut down in reverse order of registration
func (m *Manager) Register(component Shutdownable) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.components = append(m.components, component)
}

// Listen starts a goroutine that shuts down on the first signal. It stops
// listening once the manager has shut down.
func (m *Manager) Listen() {
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)

	go func() {
		defer signal.Stop(sigChan)

		select {
		case sig := <-sigChan:
			m.logger.Info("ShutdownManager", "shutdown signal received", map[string]interface{}{
				"signal": sig.String(),
			})
			m.Shutdown()
		case <-m.done:
		}
	}()
}

// Shutdown runs every component's Shutdown once, giving each at most the
// manager timeout. Later calls return immediately.
func (m *Manager) Shutdown() {
	m.mu.Lock()
	defer m.mu.Unlock()

	select {
	case <-m.done:
		return // Already shutting down
	default:
		close(m.done)
	}

	m.logger.Info("ShutdownManager", "shutdown sequence initiated", map[string]interface{}{
		"components": len(m.components),
	})

	for i := len(m.components) - 1; i >= 0; i-- {
		component := m.components[i]

		done := make(chan struct{})
		go func() {
			defer close(done)
			component.Shutdown()
		}()

		select {
		case <-done:
		case <-time.After(m.timeout):
			m.logger.Warning("ShutdownManager", "component shutdown timeout", map[string]interface{}{
				"component_index": i,
			})
		}
	}

	m.logger.Info("ShutdownManager", "shutdown sequence completed", nil)
}

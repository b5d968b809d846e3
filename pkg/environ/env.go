package environ

import (
	"os"
	"strings"
	"sync"

	"github.com/arthur-debert/stepkit/pkg/types"
)

type osEnv struct{}

// OS returns a types.Env backed by the process environment.
func OS() types.Env {
	return osEnv{}
}

func (osEnv) Lookup(name string) (string, bool) { return os.LookupEnv(name) }
func (osEnv) Get(name string) string            { return os.Getenv(name) }
func (osEnv) Set(name, value string) error      { return os.Setenv(name, value) }
func (osEnv) Unset(name string) error           { return os.Unsetenv(name) }

func (osEnv) Environ() map[string]string {
	vars := make(map[string]string)
	for _, kv := range os.Environ() {
		name, value, ok := strings.Cut(kv, "=")
		if !ok || name == "" {
			continue
		}
		vars[name] = value
	}
	return vars
}

// Map is an in-memory types.Env.
type Map struct {
	mu   sync.RWMutex
	vars map[string]string
}

// NewMap returns a Map seeded with a copy of vars.
func NewMap(vars map[string]string) *Map {
	m := &Map{vars: make(map[string]string, len(vars))}
	for k, v := range vars {
		m.vars[k] = v
	}
	return m
}

func (m *Map) Lookup(name string) (string, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	v, ok := m.vars[name]
	return v, ok
}

func (m *Map) Get(name string) string {
	v, _ := m.Lookup(name)
	return v
}

func (m *Map) Set(name, value string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.vars[name] = value
	return nil
}

func (m *Map) Unset(name string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.vars, name)
	return nil
}

func (m *Map) Environ() map[string]string {
	m.mu.RLock()
	defer m.mu.RUnlock()
	out := make(map[string]string, len(m.vars))
	for k, v := range m.vars {
		out[k] = v
	}
	return out
}

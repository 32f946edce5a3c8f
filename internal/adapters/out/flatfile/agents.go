package flatfile

import (
	"fmt"
	"os"
	"strings"

	"go.uber.org/zap"
)

// AgentsManager keeps the list of delivery agents in a plain text file, one
// name per line. The list is small and edited rarely, so every mutation
// rewrites the whole file.
type AgentsManager struct {
	log      *zap.Logger
	path     string
	defaults []string

	agents []string
}

// NewAgentsManager creates a manager persisting to path. When the file does
// not exist yet the manager starts from defaults; the file is created on the
// first mutation.
func NewAgentsManager(log *zap.Logger, path string, defaults []string) *AgentsManager {
	return &AgentsManager{log: log, path: path, defaults: defaults}
}

// Load reads the agent list from disk. A missing file is not an error; the
// configured defaults are used instead. Blank lines are skipped.
func (m *AgentsManager) Load() error {
	content, err := os.ReadFile(m.path)
	if err != nil {
		if !os.IsNotExist(err) {
			return fmt.Errorf("cannot load agents from %q: %w", m.path, err)
		}
		m.agents = append([]string(nil), m.defaults...)
		m.log.Info("agents file absent, using defaults",
			zap.String("path", m.path),
			zap.Int("count", len(m.agents)))
		return nil
	}

	m.agents = m.agents[:0]
	for _, line := range strings.Split(string(content), "\n") {
		if line = strings.TrimSpace(line); line != "" {
			m.agents = append(m.agents, line)
		}
	}
	return nil
}

// Add appends a new agent and persists. Adding a name already on the list is
// a no-op: nothing is written and no error is returned.
func (m *AgentsManager) Add(name string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return fmt.Errorf("agent name cannot be empty")
	}
	if m.contains(name) {
		return nil
	}

	m.agents = append(m.agents, name)
	return m.persist()
}

// Remove deletes an agent from the list and persists. Removing a name that
// is not on the list is a no-op.
func (m *AgentsManager) Remove(name string) error {
	name = strings.TrimSpace(name)
	if !m.contains(name) {
		return nil
	}

	kept := m.agents[:0]
	for _, a := range m.agents {
		if !strings.EqualFold(a, name) {
			kept = append(kept, a)
		}
	}
	m.agents = kept
	return m.persist()
}

// List returns a snapshot of the agent names in list order.
func (m *AgentsManager) List() []string {
	return append([]string(nil), m.agents...)
}

func (m *AgentsManager) contains(name string) bool {
	for _, a := range m.agents {
		if strings.EqualFold(a, name) {
			return true
		}
	}
	return false
}

func (m *AgentsManager) persist() error {
	content := strings.Join(m.agents, "\n")
	if content != "" {
		content += "\n"
	}
	if err := os.WriteFile(m.path, []byte(content), 0o644); err != nil {
		return fmt.Errorf("cannot save agents to %q: %w", m.path, err)
	}
	return nil
}

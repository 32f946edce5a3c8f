package flatfile

import (
	"fmt"
	"os"
	"strings"

	"go.uber.org/zap"
)

// DefaultMaxAddressHistory caps the address history when no limit is
// configured.
const DefaultMaxAddressHistory = 200

// AddressHistory remembers recently used delivery addresses in a plain text
// file, one address per line, most recent first. The history backs address
// autocompletion, so ordering is most-recently-used and the list is capped.
type AddressHistory struct {
	log  *zap.Logger
	path string
	max  int

	addresses []string
}

// NewAddressHistory creates a history persisting to path, keeping at most
// max entries. A max below one falls back to DefaultMaxAddressHistory.
func NewAddressHistory(log *zap.Logger, path string, max int) *AddressHistory {
	if max < 1 {
		max = DefaultMaxAddressHistory
	}
	return &AddressHistory{log: log, path: path, max: max}
}

// Load reads the history from disk. A missing file means an empty history,
// not an error. Entries beyond the cap are dropped.
func (h *AddressHistory) Load() error {
	content, err := os.ReadFile(h.path)
	if err != nil {
		if !os.IsNotExist(err) {
			return fmt.Errorf("cannot load address history from %q: %w", h.path, err)
		}
		h.addresses = nil
		return nil
	}

	h.addresses = h.addresses[:0]
	for _, line := range strings.Split(string(content), "\n") {
		if line = strings.TrimSpace(line); line != "" {
			h.addresses = append(h.addresses, line)
		}
	}
	if len(h.addresses) > h.max {
		h.addresses = h.addresses[:h.max]
	}
	return nil
}

// Record puts an address at the front of the history and persists. A blank
// address is silently ignored. An address already in the history is promoted
// to the front rather than duplicated; when the cap is reached the oldest
// entry falls off.
func (h *AddressHistory) Record(address string) error {
	address = strings.TrimSpace(address)
	if address == "" {
		return nil
	}

	kept := make([]string, 0, len(h.addresses)+1)
	kept = append(kept, address)
	for _, a := range h.addresses {
		if !strings.EqualFold(a, address) {
			kept = append(kept, a)
		}
	}
	if len(kept) > h.max {
		kept = kept[:h.max]
	}
	h.addresses = kept

	return h.persist()
}

// List returns a snapshot of the history, most recent first.
func (h *AddressHistory) List() []string {
	return append([]string(nil), h.addresses...)
}

func (h *AddressHistory) persist() error {
	content := strings.Join(h.addresses, "\n")
	if content != "" {
		content += "\n"
	}
	if err := os.WriteFile(h.path, []byte(content), 0o644); err != nil {
		return fmt.Errorf("cannot save address history to %q: %w", h.path, err)
	}
	return nil
}

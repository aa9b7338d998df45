package mfe

import (
	"fmt"
	"sort"
)

// CheckPorts verifies every app has a positive port that no other app claims.
// Apps are visited in name order so the reported conflict is stable.
func CheckPorts(apps Apps) error {
	names := make([]string, 0, len(apps))
	for name := range apps {
		names = append(names, name)
	}
	sort.Strings(names)

	claimed := make(map[int]string, len(apps))
	for _, name := range names {
		port := apps[name].Port
		if port <= 0 {
			return fmt.Errorf("%s: %w (got %d)", name, ErrInvalidPort, port)
		}
		if owner, ok := claimed[port]; ok {
			return fmt.Errorf("%s and %s on %d: %w", owner, name, port, ErrPortConflict)
		}
		claimed[port] = name
	}
	return nil
}

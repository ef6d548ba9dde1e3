package slurm

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// ParseMemory converts a SLURM-style memory string such as "64G", "4000M",
// "1.5G" or "2GB" into a byte count. A bare number is taken as bytes.
func ParseMemory(s string) (int64, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, errors.New("empty memory string")
	}

	orig := s
	s = strings.TrimSuffix(strings.ToUpper(s), "B")

	mult := int64(1)
	switch {
	case strings.HasSuffix(s, "K"):
		mult = 1 << 10
		s = strings.TrimSuffix(s, "K")
	case strings.HasSuffix(s, "M"):
		mult = 1 << 20
		s = strings.TrimSuffix(s, "M")
	case strings.HasSuffix(s, "G"):
		mult = 1 << 30
		s = strings.TrimSuffix(s, "G")
	case strings.HasSuffix(s, "T"):
		mult = 1 << 40
		s = strings.TrimSuffix(s, "T")
	}

	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid memory string %q: %w", orig, err)
	}
	if f <= 0 {
		return 0, fmt.Errorf("memory string %q must be positive", orig)
	}
	return int64(f * float64(mult)), nil
}

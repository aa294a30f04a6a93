package sizer

import (
	"fmt"
	"strconv"
	"strings"
)

var unitFactors = map[byte]int64{
	'B': 1,
	'K': 1 << 10,
	'M': 1 << 20,
	'G': 1 << 30,
	'T': 1 << 40,
}

// ParseSize converts a human size string like "1G" or "500M" to bytes.
// A bare number is taken as bytes.
func ParseSize(s string) (int64, error) {
	s = strings.ToUpper(strings.TrimSpace(s))
	if s == "" {
		return 0, fmt.Errorf("invalid size format: %q", s)
	}

	if factor, ok := unitFactors[s[len(s)-1]]; ok {
		n, err := strconv.ParseFloat(s[:len(s)-1], 64)
		if err != nil {
			return 0, fmt.Errorf("invalid size format: %q", s)
		}
		return int64(n * float64(factor)), nil
	}

	n, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid size format: %q", s)
	}
	return int64(n), nil
}

// FormatSize renders a byte count with one decimal and the largest unit
// that keeps the number below 1024, e.g. 1234567 -> "1.2M".
func FormatSize(bytes int64) string {
	units := []string{"B", "K", "M", "G", "T", "P"}
	size := float64(bytes)
	i := 0
	for size >= 1024 && i < len(units)-1 {
		size /= 1024
		i++
	}
	return fmt.Sprintf("%.1f%s", size, units[i])
}

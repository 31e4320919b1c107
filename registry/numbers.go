// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package registry

import (
	"fmt"
	"strconv"
	"strings"
)

// ParseNumbers splits a comma-separated list into non-negative integers.
// Tokens are trimmed; tokens that are not plain digits, or that overflow an
// int, are dropped. Order and duplicates are preserved.
func ParseNumbers(raw string) []int {
	var numbers []int
	for _, token := range strings.Split(raw, ",") {
		token = strings.TrimSpace(token)
		if !isDigits(token) {
			continue
		}
		n, err := strconv.Atoi(token)
		if err != nil {
			continue
		}
		numbers = append(numbers, n)
	}
	return numbers
}

func isDigits(s string) bool {
	if s == "" {
		return false
	}
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return true
}

// JoinNumbers returns the canonical stored form, e.g. "1,2,3"
func JoinNumbers(numbers []int) string {
	parts := make([]string, len(numbers))
	for i, n := range numbers {
		parts[i] = strconv.Itoa(n)
	}
	return strings.Join(parts, ",")
}

// splitStored reads back a value written by JoinNumbers
func splitStored(stored string) ([]int, error) {
	if stored == "" {
		return []int{}, nil
	}
	parts := strings.Split(stored, ",")
	numbers := make([]int, 0, len(parts))
	for _, p := range parts {
		n, err := strconv.Atoi(strings.TrimSpace(p))
		if err != nil {
			return nil, fmt.Errorf("malformed stored numbers %q: %w", stored, err)
		}
		numbers = append(numbers, n)
	}
	return numbers, nil
}

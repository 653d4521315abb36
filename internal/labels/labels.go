package labels

import (
	"bufio"
	"bytes"
	"fmt"
	"strings"
)

// Table is the immutable, 1-indexed label list for the deployed model.
// Line i of the source file names the model's class i.
type Table struct {
	entries []string
}

// Parse builds a Table from a newline-delimited label file
func Parse(data []byte) (*Table, error) {
	var entries []string
	scanner := bufio.NewScanner(bytes.NewReader(data))
	for scanner.Scan() {
		entries = append(entries, strings.TrimRight(scanner.Text(), "\r"))
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("failed to scan label list: %w", err)
	}
	if len(entries) == 0 {
		return nil, fmt.Errorf("label list is empty")
	}
	return &Table{entries: entries}, nil
}

// Len returns the number of labels
func (t *Table) Len() int {
	return len(t.entries)
}

// Lookup returns the label for a 1-based class index
func (t *Table) Lookup(class int) (string, error) {
	if class < 1 || class > len(t.entries) {
		return "", fmt.Errorf("class %d out of range (table has %d labels)", class, len(t.entries))
	}
	return t.entries[class-1], nil
}

// All returns a copy of the label list in class order
func (t *Table) All() []string {
	out := make([]string, len(t.entries))
	copy(out, t.entries)
	return out
}

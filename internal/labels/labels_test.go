package labels

import (
	"testing"
)

func TestParse(t *testing.T) {
	table, err := Parse([]byte("tench\ngoldfish\ngreat white shark\n"))
	if err != nil {
		t.Fatalf("Failed to parse labels: %v", err)
	}
	if table.Len() != 3 {
		t.Errorf("Expected 3 labels, got %d", table.Len())
	}
}

func TestParse_CRLF(t *testing.T) {
	table, err := Parse([]byte("tench\r\ngoldfish\r\n"))
	if err != nil {
		t.Fatalf("Failed to parse labels: %v", err)
	}

	label, err := table.Lookup(1)
	if err != nil {
		t.Fatalf("Lookup failed: %v", err)
	}
	if label != "tench" {
		t.Errorf("Expected carriage return stripped, got %q", label)
	}
}

func TestParse_NoTrailingNewline(t *testing.T) {
	table, err := Parse([]byte("tench\ngoldfish"))
	if err != nil {
		t.Fatalf("Failed to parse labels: %v", err)
	}
	if table.Len() != 2 {
		t.Errorf("Expected 2 labels, got %d", table.Len())
	}
}

func TestParse_Empty(t *testing.T) {
	if _, err := Parse(nil); err == nil {
		t.Error("Expected error for empty label list")
	}
}

func TestLookup_OneBased(t *testing.T) {
	table, err := Parse([]byte("tench\ngoldfish\n"))
	if err != nil {
		t.Fatalf("Failed to parse labels: %v", err)
	}

	// Class 1 is line 1, not element 1
	label, err := table.Lookup(1)
	if err != nil {
		t.Fatalf("Lookup failed: %v", err)
	}
	if label != "tench" {
		t.Errorf("Expected class 1 to be tench, got %q", label)
	}

	label, err = table.Lookup(2)
	if err != nil {
		t.Fatalf("Lookup failed: %v", err)
	}
	if label != "goldfish" {
		t.Errorf("Expected class 2 to be goldfish, got %q", label)
	}
}

func TestLookup_OutOfRange(t *testing.T) {
	table, err := Parse([]byte("tench\ngoldfish\n"))
	if err != nil {
		t.Fatalf("Failed to parse labels: %v", err)
	}

	if _, err := table.Lookup(0); err == nil {
		t.Error("Expected error for class 0")
	}
	if _, err := table.Lookup(3); err == nil {
		t.Error("Expected error for class past table end")
	}
}

func TestAll_ReturnsCopy(t *testing.T) {
	table, err := Parse([]byte("tench\ngoldfish\n"))
	if err != nil {
		t.Fatalf("Failed to parse labels: %v", err)
	}

	all := table.All()
	all[0] = "mutated"

	label, err := table.Lookup(1)
	if err != nil {
		t.Fatalf("Lookup failed: %v", err)
	}
	if label != "tench" {
		t.Error("Expected table to be unaffected by mutating All() result")
	}
}

// Mr_Evra | 2025
// entity_test.go

package content

import (
	"testing"
)

func TestStringListValueNilIsEmptyArray(t *testing.T) {
	var list StringList

	value, err := list.Value()
	if err != nil {
		t.Fatalf("value: %v", err)
	}
	if value != "[]" {
		t.Errorf("value = %v, want []", value)
	}
}

func TestStringListScan(t *testing.T) {
	var list StringList
	if err := list.Scan([]byte(`["Go","PostgreSQL"]`)); err != nil {
		t.Fatalf("scan bytes: %v", err)
	}
	if len(list) != 2 || list[0] != "Go" || list[1] != "PostgreSQL" {
		t.Errorf("list = %v", list)
	}

	if err := list.Scan(`["Redis"]`); err != nil {
		t.Fatalf("scan string: %v", err)
	}
	if len(list) != 1 || list[0] != "Redis" {
		t.Errorf("list = %v", list)
	}

	if err := list.Scan(nil); err != nil {
		t.Fatalf("scan nil: %v", err)
	}
	if list == nil || len(list) != 0 {
		t.Errorf("nil scan should yield empty list, got %v", list)
	}

	if err := list.Scan(42); err == nil {
		t.Error("expected error for unsupported source type")
	}
}

package response

import (
	"reflect"
	"testing"
)

func TestCombine(t *testing.T) {
	a := Metadata{Success: true, Warnings: []string{"w1"}, OriginalLength: 10}
	b := Metadata{Success: false, Errors: []string{"e1"}, OriginalLength: 5}
	c := Metadata{Success: true, Errors: []string{"e2"}, OriginalLength: 1}

	combined := Combine(a, b, c)

	if combined.Success {
		t.Error("Success should be the AND of all parts")
	}
	if !reflect.DeepEqual(combined.Errors, []string{"e1", "e2"}) {
		t.Errorf("Errors = %v", combined.Errors)
	}
	if !reflect.DeepEqual(combined.Warnings, []string{"w1"}) {
		t.Errorf("Warnings = %v", combined.Warnings)
	}
	if combined.OriginalLength != 16 {
		t.Errorf("OriginalLength = %d, want 16", combined.OriginalLength)
	}
}

func TestCombineAssociative(t *testing.T) {
	a := Metadata{Success: true, Errors: []string{"a"}, OriginalLength: 1}
	b := Metadata{Success: false, Warnings: []string{"b"}, OriginalLength: 2}
	c := Metadata{Success: true, Errors: []string{"c"}, OriginalLength: 4}

	flat := Combine(a, b, c)
	nested := Combine(Combine(a, b), c)

	if flat.Success != nested.Success {
		t.Error("Success is not associative")
	}
	if flat.OriginalLength != nested.OriginalLength {
		t.Error("OriginalLength is not associative")
	}
	if !reflect.DeepEqual(flat.Errors, nested.Errors) {
		t.Errorf("Errors differ: %v vs %v", flat.Errors, nested.Errors)
	}
}

func TestCombineEmpty(t *testing.T) {
	combined := Combine()
	if !combined.Success {
		t.Error("combining nothing should succeed")
	}
	if combined.OriginalLength != 0 {
		t.Errorf("OriginalLength = %d, want 0", combined.OriginalLength)
	}
}

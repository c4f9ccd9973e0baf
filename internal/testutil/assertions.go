package testutil

import (
	"strings"
	"testing"
)

// AssertRowCount checks if a frame has the expected number of rows
func AssertRowCount(t *testing.T, actual, expected int, context string) {
	t.Helper()
	if actual != expected {
		t.Errorf("%s: expected %d rows, got %d", context, expected, actual)
	}
}

// AssertColumnCount checks if a frame has the expected number of columns
func AssertColumnCount(t *testing.T, actual, expected int, context string) {
	t.Helper()
	if actual != expected {
		t.Errorf("%s: expected %d columns, got %d", context, expected, actual)
	}
}

// AssertNoError checks that an error is nil
func AssertNoError(t *testing.T, err error, context string) {
	t.Helper()
	if err != nil {
		t.Fatalf("%s: expected no error, got: %v", context, err)
	}
}

// AssertError checks that an error is not nil
func AssertError(t *testing.T, err error, context string) {
	t.Helper()
	if err == nil {
		t.Fatalf("%s: expected an error, got nil", context)
	}
}

// AssertContains checks that output contains the given text
func AssertContains(t *testing.T, output, want, context string) {
	t.Helper()
	if !strings.Contains(output, want) {
		t.Errorf("%s: expected output to contain %q, got:\n%s", context, want, output)
	}
}

// AssertNotContains checks that output does not contain the given text
func AssertNotContains(t *testing.T, output, unwanted, context string) {
	t.Helper()
	if strings.Contains(output, unwanted) {
		t.Errorf("%s: did not expect output to contain %q, got:\n%s", context, unwanted, output)
	}
}

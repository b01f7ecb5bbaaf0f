package testutil

import (
	"context"
	"errors"
	"fmt"
	"io"
	"testing"
	"time"
)

func TestWithTimeout(t *testing.T) {
	ctx, cancel := WithTimeout(t)
	defer cancel()

	if ctx == nil {
		t.Fatal("context should not be nil")
	}

	deadline, ok := ctx.Deadline()
	if !ok {
		t.Fatal("context should have a deadline")
	}

	if time.Until(deadline) > TestTimeout {
		t.Errorf("deadline is too far in the future")
	}
}

func TestAssertNoError(t *testing.T) {
	AssertNoError(t, nil)
}

func TestAssertError(t *testing.T) {
	AssertError(t, context.Canceled)
}

func TestAssertErrorIs(t *testing.T) {
	AssertErrorIs(t, fmt.Errorf("wrapped: %w", context.Canceled), context.Canceled)
}

func TestAssertEqual(t *testing.T) {
	AssertEqual(t, 42, 42)
	AssertEqual(t, "hello", "hello")
	AssertEqual(t, true, true)
}

func TestAssertNotEqual(t *testing.T) {
	AssertNotEqual(t, 1, 2)
	AssertNotEqual(t, "a", "b")
	AssertNotEqual(t, true, false)
}

func TestAssertDeepEqual(t *testing.T) {
	AssertDeepEqual(t, []int{1, 2}, []int{1, 2})
	AssertDeepEqual(t, map[string]int{"a": 1}, map[string]int{"a": 1})
}

func TestMockReader(t *testing.T) {
	t.Run("reads in chunks", func(t *testing.T) {
		r := NewMockReader("hello world", 4)
		data, err := io.ReadAll(r)
		AssertNoError(t, err)
		AssertEqual(t, string(data), "hello world")
		if r.ReadCount() < 3 {
			t.Errorf("ReadCount() = %d, want at least 3", r.ReadCount())
		}
	})

	t.Run("fails on nth read", func(t *testing.T) {
		r := NewMockReader("hello world", 4)
		r.SetErrorOnNth(2, nil)
		_, err := io.ReadAll(r)
		AssertErrorIs(t, err, ErrSimulated)
		AssertEqual(t, r.ReadCount(), 2)
	})

	t.Run("custom error", func(t *testing.T) {
		custom := errors.New("disk gone")
		r := NewMockReader("x", 0)
		r.SetErrorOnNth(1, custom)
		_, err := io.ReadAll(r)
		AssertErrorIs(t, err, custom)
	})
}

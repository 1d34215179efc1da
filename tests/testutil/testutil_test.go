package testutil

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestNewTestUUID(t *testing.T) {
	a := NewTestUUID("seed-a")
	b := NewTestUUID("seed-a")
	c := NewTestUUID("seed-b")

	assert.Equal(t, a, b)
	assert.NotEqual(t, a, c)
}

func TestContextWithTimeout(t *testing.T) {
	ctx, cancel := ContextWithTimeout(t, 50*time.Millisecond)
	defer cancel()

	deadline, ok := ctx.Deadline()
	assert.True(t, ok)
	assert.WithinDuration(t, time.Now().Add(50*time.Millisecond), deadline, 20*time.Millisecond)
}

func TestAssertEventually(t *testing.T) {
	done := make(chan struct{})
	go func() {
		time.Sleep(20 * time.Millisecond)
		close(done)
	}()

	AssertEventually(t, func() bool {
		select {
		case <-done:
			return true
		default:
			return false
		}
	}, 200*time.Millisecond, 10*time.Millisecond, "goroutine should finish")
}

func TestAssertNever(t *testing.T) {
	AssertNever(t, func() bool {
		return false
	}, 50*time.Millisecond, 10*time.Millisecond, "must stay false")
}

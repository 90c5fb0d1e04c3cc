package cron

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRunWithRetryGivesUpWithoutExiting(t *testing.T) {
	old := startRetryBackoff
	startRetryBackoff = 0
	defer func() { startRetryBackoff = old }()

	calls := 0
	runWithRetry(func() error {
		calls++
		return errors.New("dial tcp 127.0.0.1:6379: connect: connection refused")
	})

	// Five attempts, then the worker disables itself and returns. A
	// persistent Redis outage must never terminate the booking server.
	assert.Equal(t, 5, calls)
}

func TestRunWithRetryStopsOnSuccess(t *testing.T) {
	old := startRetryBackoff
	startRetryBackoff = 0
	defer func() { startRetryBackoff = old }()

	calls := 0
	runWithRetry(func() error {
		calls++
		if calls == 1 {
			return errors.New("connection reset")
		}
		return nil
	})

	assert.Equal(t, 2, calls)
}

package retry

import (
	"context"
	"errors"
	"testing"
	"time"
)

func testConfig() Config {
	return Config{
		MaxRetries: 3,
		BaseDelay:  10 * time.Millisecond,
		MaxDelay:   100 * time.Millisecond,
		Timeout:    1 * time.Second,
	}
}

func TestWithRetrySuccess(t *testing.T) {
	callCount := 0
	operation := func(ctx context.Context) (string, error) {
		callCount++
		return "success", nil
	}

	result, err := WithRetry(context.Background(), testConfig(), operation)
	if err != nil {
		t.Errorf("Expected no error, got %v", err)
	}
	if result != "success" {
		t.Errorf("Expected 'success', got %s", result)
	}
	if callCount != 1 {
		t.Errorf("Expected 1 call, got %d", callCount)
	}
}

func TestWithRetrySuccessAfterRetries(t *testing.T) {
	callCount := 0
	operation := func(ctx context.Context) (string, error) {
		callCount++
		if callCount < 3 {
			return "", errors.New("temporary failure")
		}
		return "success", nil
	}

	result, err := WithRetry(context.Background(), testConfig(), operation)
	if err != nil {
		t.Errorf("Expected no error, got %v", err)
	}
	if result != "success" {
		t.Errorf("Expected 'success', got %s", result)
	}
	if callCount != 3 {
		t.Errorf("Expected 3 calls, got %d", callCount)
	}
}

func TestWithRetryFailureAfterMaxRetries(t *testing.T) {
	config := testConfig()
	config.MaxRetries = 2

	callCount := 0
	permanent := errors.New("permanent failure")
	operation := func(ctx context.Context) (int, error) {
		callCount++
		return 0, permanent
	}

	_, err := WithRetry(context.Background(), config, operation)
	if err == nil {
		t.Fatal("Expected an error after exhausting retries")
	}
	if !errors.Is(err, permanent) {
		t.Errorf("Expected wrapped permanent error, got %v", err)
	}
	if callCount != 3 {
		t.Errorf("Expected 3 calls (1 + 2 retries), got %d", callCount)
	}
}

func TestWithRetryContextCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	operation := func(ctx context.Context) (string, error) {
		return "", errors.New("should not matter")
	}

	_, err := WithRetry(ctx, testConfig(), operation)
	if !errors.Is(err, context.Canceled) {
		t.Errorf("Expected context.Canceled, got %v", err)
	}
}

func TestWithRetryCancelledDuringBackoff(t *testing.T) {
	config := testConfig()
	config.BaseDelay = 5 * time.Second
	config.MaxDelay = 10 * time.Second

	ctx, cancel := context.WithCancel(context.Background())
	operation := func(ctx context.Context) (string, error) {
		cancel()
		return "", errors.New("fail once")
	}

	start := time.Now()
	_, err := WithRetry(ctx, config, operation)
	if !errors.Is(err, context.Canceled) {
		t.Errorf("Expected context.Canceled, got %v", err)
	}
	if time.Since(start) > time.Second {
		t.Error("Cancellation did not interrupt the backoff wait")
	}
}

func TestBackoffDelayBounds(t *testing.T) {
	base := 10 * time.Millisecond
	max := 100 * time.Millisecond

	for attempt := 0; attempt < 40; attempt++ {
		delay := backoffDelay(attempt, base, max)
		if delay > max {
			t.Errorf("attempt %d: delay %v exceeds max %v", attempt, delay, max)
		}
		if delay < 0 {
			t.Errorf("attempt %d: negative delay %v", attempt, delay)
		}
	}
}

package httputil_test

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/relaxicons/relaxicons/pkg/httputil"
)

func ExampleRetry() {
	attempts := 0
	err := httputil.Retry(context.Background(), 3, time.Millisecond, func() error {
		attempts++
		if attempts < 3 {
			return &httputil.RetryableError{Err: errors.New("503 Service Unavailable")}
		}
		return nil
	})
	fmt.Println("attempts:", attempts)
	fmt.Println("error:", err)
	// Output:
	// attempts: 3
	// error: <nil>
}

func ExampleRetryDelays() {
	attempts := 0
	delays := []time.Duration{time.Millisecond, 2 * time.Millisecond}
	err := httputil.RetryDelays(context.Background(), delays, func() error {
		attempts++
		return httputil.Retryable(errors.New("connection refused"))
	})
	fmt.Println("attempts:", attempts)
	fmt.Println("error:", err)
	// Output:
	// attempts: 3
	// error: connection refused
}

// Package httputil provides retry helpers for the icon registry client.
//
// # Retry
//
// Two schedules guard every registry request:
//
//   - transport failures (connection refused, DNS, timeouts) are retried on a
//     fixed escalating schedule with [RetryDelays]
//   - 429 and 5xx responses are retried with exponential backoff with [Retry]
//
// Only errors wrapped in [RetryableError] are retried; anything else returns
// immediately. [Policy] bundles both schedules and [DefaultPolicy] holds the
// production values. Tests shrink the delays to keep runs fast:
//
//	policy := httputil.Policy{
//	    NetworkDelays: []time.Duration{time.Millisecond},
//	    StatusRetries: 2,
//	    StatusDelay:   time.Millisecond,
//	}
//	err := policy.RetryStatus(ctx, func() error {
//	    resp, err := client.Do(req)
//	    ...
//	})
package httputil

// Package integrations provides the HTTP layer behind the icon registry
// client.
//
// # Overview
//
// [Client] wraps net/http with the caching contract every registry call
// shares:
//
//   - entries are stored per resource as {timestamp, etag, payload}
//   - a fresh entry without an ETag is served without a request
//   - otherwise a conditional GET revalidates it; 304 refreshes the timestamp
//   - any failure except 404 falls back to the stored payload
//
// Requests carry the relaxicons User-Agent and run under the retry schedules
// of [httputil.Policy].
//
// The Iconify registry itself lives in the [iconify] subpackage:
//
//	client, err := iconify.NewClient(iconify.Options{Cache: c})
//	names, err := client.ListIcons(ctx, "lucide")
//
// [iconify]: github.com/relaxicons/relaxicons/pkg/integrations/iconify
// [httputil.Policy]: github.com/relaxicons/relaxicons/pkg/httputil.Policy
package integrations

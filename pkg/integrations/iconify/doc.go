// Package iconify provides a client for the Iconify icon API.
//
// # Overview
//
// This package lists icon collections, lists the icons inside a collection
// and fetches individual icons as SVG documents from
// https://api.iconify.design (or any compatible mirror).
//
// # Usage
//
//	client, err := iconify.NewClient(iconify.Options{Cache: c})
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	names, err := client.ListIcons(ctx, "lucide")
//	svg, err := client.FetchIconSource(ctx, icon.ID{Collection: "lucide", Name: "home"})
//
// All calls go through the shared caching and retry layer of
// [integrations.Client].
//
// # Errors
//
//   - COLLECTION_NOT_FOUND: the registry answered 404 for a collection
//   - ICON_NOT_FOUND: the registry answered 404 for an icon
//   - FETCH_FAILED: any other failure, with the HTTP status when known
//   - UNEXPECTED_PAYLOAD: an icon body that is not an SVG document
//
// # Offline Mode
//
// With [Options].Offline set the client never touches the network or the
// cache. It serves one collection, "lucide", containing home, star and bell;
// only lucide:home has a document.
//
// [integrations.Client]: github.com/relaxicons/relaxicons/pkg/integrations.Client
package iconify

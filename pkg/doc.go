// Package pkg provides the libraries behind the relaxicons CLI.
//
// # Overview
//
// Relaxicons fetches SVG icons from the Iconify registry and writes them into
// a project as framework components. The pkg directory is organized by stage:
//
//  1. [icon], [naming] - identifiers and the names derived from them
//  2. [integrations/iconify] - the registry client (cache, retry, ETags)
//  3. [vector] - SVG normalization and optional minification
//  4. [render] - per-framework generators and override templates
//  5. [output], [pipeline] - file writes, barrels and batch orchestration
//
// # Architecture
//
// The data flow for one icon:
//
//	"lucide:home"
//	     ↓
//	[icon] Parse
//	     ↓
//	[integrations/iconify] FetchIconSource (cached in [cache])
//	     ↓
//	[vector] Optimize + Transform
//	     ↓
//	[render] Renderer.Render
//	     ↓
//	[output] Writer.WriteFile + UpdateBarrel
//
// [pipeline] runs this for a batch on a bounded worker pool and collects one
// result per icon.
//
// # Quick Start
//
//	import (
//	    "github.com/relaxicons/relaxicons/pkg/integrations/iconify"
//	    "github.com/relaxicons/relaxicons/pkg/pipeline"
//	    "github.com/relaxicons/relaxicons/pkg/render"
//	)
//
//	client, _ := iconify.NewClient(iconify.Options{Cache: cache.NewNullCache()})
//	runner := pipeline.NewRunner(client, nil, nil)
//	res := runner.Add(ctx, icon.ID{Collection: "lucide", Name: "home"}, pipeline.Options{
//	    Framework: render.React,
//	    IconDir:   "src/icons",
//	})
//
// # Supporting Packages
//
// [config] reads relaxicons.config.json (or .toml) and the RELAXICONS_*
// environment. [cache] holds the file, Redis and no-op stores behind the
// registry client. [manifest] reads icon lists for batch commands. [fuzzy] ranks
// "did you mean" suggestions. [httputil] holds the retry schedules and
// [observability] the hooks the CLI uses for debug logging. [errors] defines
// the error codes that map to exit codes.
//
// [icon]: https://pkg.go.dev/github.com/relaxicons/relaxicons/pkg/icon
// [naming]: https://pkg.go.dev/github.com/relaxicons/relaxicons/pkg/naming
// [integrations/iconify]: https://pkg.go.dev/github.com/relaxicons/relaxicons/pkg/integrations/iconify
// [cache]: https://pkg.go.dev/github.com/relaxicons/relaxicons/pkg/cache
// [vector]: https://pkg.go.dev/github.com/relaxicons/relaxicons/pkg/vector
// [render]: https://pkg.go.dev/github.com/relaxicons/relaxicons/pkg/render
// [output]: https://pkg.go.dev/github.com/relaxicons/relaxicons/pkg/output
// [pipeline]: https://pkg.go.dev/github.com/relaxicons/relaxicons/pkg/pipeline
// [config]: https://pkg.go.dev/github.com/relaxicons/relaxicons/pkg/config
// [manifest]: https://pkg.go.dev/github.com/relaxicons/relaxicons/pkg/manifest
// [fuzzy]: https://pkg.go.dev/github.com/relaxicons/relaxicons/pkg/fuzzy
// [httputil]: https://pkg.go.dev/github.com/relaxicons/relaxicons/pkg/httputil
// [observability]: https://pkg.go.dev/github.com/relaxicons/relaxicons/pkg/observability
// [errors]: https://pkg.go.dev/github.com/relaxicons/relaxicons/pkg/errors
package pkg

package pipeline

import (
	"context"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/charmbracelet/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/relaxicons/relaxicons/pkg/errors"
	"github.com/relaxicons/relaxicons/pkg/httputil"
	"github.com/relaxicons/relaxicons/pkg/icon"
	"github.com/relaxicons/relaxicons/pkg/integrations/iconify"
	"github.com/relaxicons/relaxicons/pkg/integrations/iconify/iconifytest"
	"github.com/relaxicons/relaxicons/pkg/render"
	"github.com/relaxicons/relaxicons/pkg/vector"
)

const starSVG = `<svg width="24" height="24" viewBox="0 0 24 24"><polygon points="12 2 15 9 22 9"/></svg>`

func quietLogger() *log.Logger {
	return log.New(io.Discard)
}

func offlineRunner(t *testing.T) *Runner {
	t.Helper()
	client, err := iconify.NewClient(iconify.Options{Offline: true, Logger: quietLogger()})
	require.NoError(t, err)
	return NewRunner(client, nil, quietLogger())
}

func serverRunner(t *testing.T, srv *iconifytest.Server) *Runner {
	t.Helper()
	client, err := iconify.NewClient(iconify.Options{
		BaseURL: srv.URL,
		Retry:   &httputil.Policy{NetworkDelays: []time.Duration{time.Millisecond}, StatusRetries: 1, StatusDelay: time.Millisecond},
		Logger:  quietLogger(),
	})
	require.NoError(t, err)
	return NewRunner(client, nil, quietLogger())
}

func mustParse(t *testing.T, ids ...string) []icon.ID {
	t.Helper()
	out, err := icon.ParseAll(ids)
	require.NoError(t, err)
	return out
}

func readFile(t *testing.T, path string) string {
	t.Helper()
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	return string(data)
}

func TestAddReact(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "icons")
	r := offlineRunner(t)

	res := r.Add(context.Background(), mustParse(t, "lucide:home")[0], Options{
		Framework:  render.React,
		TypeScript: true,
		IconDir:    dir,
	})
	require.NoError(t, res.Err)
	assert.Equal(t, filepath.Join(dir, "HomeIcon.tsx"), res.File)
	assert.Equal(t, "HomeIcon", res.Names.Component())

	src := readFile(t, res.File)
	assert.Contains(t, src, "export function HomeIcon(")
	assert.Contains(t, src, "export default HomeIcon;")
	for _, prop := range []string{"size", "color", "strokeWidth", "className"} {
		assert.Contains(t, src, prop)
	}
	assert.Contains(t, src, `viewBox="0 0 10 10"`)

	assert.Equal(t, filepath.Join(dir, "index.ts"), res.Barrel)
	assert.Equal(t, "export * from './HomeIcon';\n", readFile(t, res.Barrel))
}

func TestAddDuplicateKeepsOneExport(t *testing.T) {
	dir := t.TempDir()
	r := offlineRunner(t)
	id := mustParse(t, "lucide:home")[0]
	opts := Options{Framework: render.Vue, IconDir: dir}

	require.NoError(t, r.Add(context.Background(), id, opts).Err)
	second := r.Add(context.Background(), id, opts)
	assert.True(t, errors.Is(second.Err, errors.ErrCodeDestinationExists), "err = %v", second.Err)

	barrel := readFile(t, filepath.Join(dir, "index.js"))
	assert.Equal(t, 1, strings.Count(barrel, "export "))

	opts.Force = true
	assert.NoError(t, r.Add(context.Background(), id, opts).Err)
	assert.Equal(t, barrel, readFile(t, filepath.Join(dir, "index.js")))
}

func TestAddDryRun(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "nested", "icons")
	r := offlineRunner(t)

	res := r.Add(context.Background(), mustParse(t, "lucide:home")[0], Options{
		Framework: render.React,
		IconDir:   dir,
		DryRun:    true,
	})
	require.NoError(t, res.Err)

	info, err := os.Stat(dir)
	require.NoError(t, err)
	assert.True(t, info.IsDir())
	assert.NoFileExists(t, filepath.Join(dir, "HomeIcon.jsx"))
	assert.NoFileExists(t, filepath.Join(dir, "index.js"))
}

func TestAddRawAndBoth(t *testing.T) {
	dir := t.TempDir()
	r := offlineRunner(t)
	id := mustParse(t, "lucide:home")[0]

	res := r.Add(context.Background(), id, Options{Framework: render.Svelte, IconDir: dir, Raw: true})
	require.NoError(t, res.Err)
	assert.Equal(t, filepath.Join(dir, "home.svg"), res.File)
	assert.Empty(t, res.Barrel)
	assert.Equal(t, iconify.FixtureSVG, readFile(t, res.File))

	require.NoError(t, os.Remove(res.File))
	res = r.Add(context.Background(), id, Options{Framework: render.Svelte, IconDir: dir, Both: true})
	require.NoError(t, res.Err)
	assert.Equal(t, filepath.Join(dir, "HomeIcon.svelte"), res.File)
	assert.Equal(t, filepath.Join(dir, "home.svg"), res.Companion)
	assert.Contains(t, readFile(t, res.Companion), `fill="currentColor"`)
}

func TestAddBothKeepsExistingCompanion(t *testing.T) {
	dir := t.TempDir()
	companion := filepath.Join(dir, "home.svg")
	require.NoError(t, os.WriteFile(companion, []byte("mine"), 0644))

	res := offlineRunner(t).Add(context.Background(), mustParse(t, "lucide:home")[0], Options{
		Framework: render.Laravel,
		IconDir:   dir,
		Both:      true,
	})
	require.NoError(t, res.Err)
	assert.Equal(t, filepath.Join(dir, "home.blade.php"), res.File)
	assert.Empty(t, res.Companion)
	assert.Equal(t, "mine", readFile(t, companion))
}

func TestAddOptimizes(t *testing.T) {
	srv := iconifytest.NewServer()
	t.Cleanup(srv.Close)
	srv.AddIcon("lucide", "star", strings.Replace(starSVG, "<polygon", "<!-- star --><polygon", 1))

	dir := t.TempDir()
	res := serverRunner(t, srv).Add(context.Background(), mustParse(t, "lucide:star")[0], Options{
		Framework: render.Svelte,
		IconDir:   dir,
		Both:      true,
		Optimize:  &vector.OptimizeOptions{},
	})
	require.NoError(t, res.Err)
	assert.NotContains(t, readFile(t, res.File), "<!--")
	assert.NotContains(t, readFile(t, res.Companion), "<!--")
}

func TestAddRawWritesFetchedDocument(t *testing.T) {
	src := strings.Replace(starSVG, "<polygon", "<!-- star --><polygon", 1)
	srv := iconifytest.NewServer()
	t.Cleanup(srv.Close)
	srv.AddIcon("lucide", "star", src)

	dir := t.TempDir()
	res := serverRunner(t, srv).Add(context.Background(), mustParse(t, "lucide:star")[0], Options{
		Framework: render.React,
		IconDir:   dir,
		Raw:       true,
		Optimize:  &vector.OptimizeOptions{},
	})
	require.NoError(t, res.Err)
	assert.Equal(t, filepath.Join(dir, "star.svg"), res.File)
	assert.Equal(t, src, readFile(t, res.File))
}

func TestUnknownFrameworkWritesSVG(t *testing.T) {
	tests := []struct {
		name string
		opts Options
	}{
		{"unknown", Options{Framework: render.Unknown}},
		{"empty", Options{Framework: ""}},
		{"unknown raw", Options{Framework: render.Unknown, Raw: true}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dir := t.TempDir()
			opts := tt.opts
			opts.IconDir = dir
			r := offlineRunner(t)
			ids := mustParse(t, "lucide:home", "lucide:star")

			for _, res := range r.AddBatch(context.Background(), ids, opts) {
				require.NoError(t, res.Err)
				assert.Empty(t, res.Barrel)
			}
			assert.Equal(t, iconify.FixtureSVG, readFile(t, filepath.Join(dir, "home.svg")))
			assert.FileExists(t, filepath.Join(dir, "star.svg"))
			assert.NoFileExists(t, filepath.Join(dir, "index.js"))
			assert.NoFileExists(t, filepath.Join(dir, "index.ts"))

			res, err := r.Remove(context.Background(), ids[0], opts)
			require.NoError(t, err)
			assert.True(t, res.Removed)
			assert.False(t, res.Pruned)
			assert.NoFileExists(t, filepath.Join(dir, "home.svg"))
			assert.FileExists(t, filepath.Join(dir, "star.svg"))
		})
	}
}

func TestAddBatchIsolatesFailures(t *testing.T) {
	srv := iconifytest.NewServer()
	t.Cleanup(srv.Close)
	srv.AddIcon("lucide", "home", starSVG)
	srv.AddIcon("lucide", "house", starSVG)
	srv.AddIcon("lucide", "star", starSVG)

	dir := t.TempDir()
	results := serverRunner(t, srv).AddBatch(context.Background(),
		mustParse(t, "lucide:home", "lucide:hme", "lucide:star"),
		Options{Framework: render.React, TypeScript: true, IconDir: dir, Workers: 2})
	require.Len(t, results, 3)

	assert.NoError(t, results[0].Err)
	assert.NoError(t, results[2].Err)
	assert.FileExists(t, filepath.Join(dir, "HomeIcon.tsx"))
	assert.FileExists(t, filepath.Join(dir, "StarIcon.tsx"))

	missing := results[1]
	assert.True(t, errors.Is(missing.Err, errors.ErrCodeIconNotFound), "err = %v", missing.Err)
	assert.Contains(t, missing.Suggestions.Names, "home")
	assert.Empty(t, missing.Suggestions.Elsewhere)

	assert.Equal(t,
		"export * from './HomeIcon';\nexport * from './StarIcon';\n",
		readFile(t, filepath.Join(dir, "index.ts")))

	err := BatchError(results)
	assert.Equal(t, errors.ErrCodeInternal, errors.GetCode(err))
}

func TestAddBatchCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	results := offlineRunner(t).AddBatch(ctx, mustParse(t, "lucide:home", "lucide:star"), Options{
		Framework: render.React,
		IconDir:   t.TempDir(),
	})
	for _, res := range results {
		assert.ErrorIs(t, res.Err, context.Canceled)
		assert.Empty(t, res.File)
	}
}

func TestAddInvalidOptions(t *testing.T) {
	r := offlineRunner(t)
	ids := mustParse(t, "lucide:home")

	res := r.Add(context.Background(), ids[0], Options{Framework: render.React})
	assert.True(t, errors.Is(res.Err, errors.ErrCodeInvalidInput))

	res = r.Add(context.Background(), ids[0], Options{Framework: "ember", IconDir: t.TempDir()})
	assert.True(t, errors.Is(res.Err, errors.ErrCodeConfigInvalid))
}

func TestAddWithOverride(t *testing.T) {
	dir := t.TempDir()
	overrides := render.StaticOverrides{
		render.React: func(ctx render.Context) (string, error) {
			return "// " + ctx["pascal"].(string) + "\n", nil
		},
	}
	client, err := iconify.NewClient(iconify.Options{Offline: true})
	require.NoError(t, err)
	r := NewRunner(client, render.NewRenderer(overrides, quietLogger()), quietLogger())

	res := r.Add(context.Background(), mustParse(t, "lucide:home")[0], Options{Framework: render.React, IconDir: dir})
	require.NoError(t, res.Err)
	assert.Equal(t, "// Home\n", readFile(t, res.File))
}

func TestRemove(t *testing.T) {
	dir := t.TempDir()
	r := offlineRunner(t)
	id := mustParse(t, "lucide:home")[0]
	opts := Options{Framework: render.React, TypeScript: true, IconDir: dir}

	barrel := filepath.Join(dir, "index.ts")
	require.NoError(t, os.WriteFile(barrel, []byte("// generated\nexport * from './BellIcon';\n"), 0644))
	require.NoError(t, r.Add(context.Background(), id, opts).Err)

	res, err := r.Remove(context.Background(), id, opts)
	require.NoError(t, err)
	assert.True(t, res.Removed)
	assert.True(t, res.Pruned)
	assert.NoFileExists(t, filepath.Join(dir, "HomeIcon.tsx"))
	assert.Equal(t, "// generated\nexport * from './BellIcon';\n", readFile(t, barrel))

	res, err = r.Remove(context.Background(), id, opts)
	require.NoError(t, err)
	assert.False(t, res.Removed)
	assert.False(t, res.Pruned)
}

func TestSuggestElsewhere(t *testing.T) {
	srv := iconifytest.NewServer()
	t.Cleanup(srv.Close)
	srv.AddIcon("lucide", "bell", starSVG)
	srv.AddIcon("mdi", "account", starSVG)
	srv.AddIcon("mdi", "home", starSVG)
	srv.AddIcon("tabler", "house", starSVG)

	s := serverRunner(t, srv).Suggest(context.Background(), icon.ID{Collection: "lucide", Name: "home"})
	assert.Empty(t, s.Names)
	assert.Equal(t, "mdi:home", s.Elsewhere)
	assert.False(t, s.Empty())
}

func TestSuggestUnknownCollection(t *testing.T) {
	s := offlineRunner(t).Suggest(context.Background(), icon.ID{Collection: "nope", Name: "home"})
	assert.True(t, s.Empty())
	assert.True(t, errors.Is(s.Err, errors.ErrCodeCollectionNotFound))
}

func TestBatchError(t *testing.T) {
	ok := Result{}
	dup := Result{Err: errors.New(errors.ErrCodeDestinationExists, "exists")}
	missing := Result{Err: errors.New(errors.ErrCodeIconNotFound, "missing")}

	tests := []struct {
		name    string
		results []Result
		want    errors.Code
	}{
		{"all ok", []Result{ok, ok}, ""},
		{"single failure keeps its code", []Result{missing}, errors.ErrCodeIconNotFound},
		{"only duplicates", []Result{ok, dup, dup}, errors.ErrCodeDestinationExists},
		{"mixed", []Result{dup, missing, ok}, errors.ErrCodeInternal},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := BatchError(tt.results)
			if tt.want == "" {
				assert.NoError(t, err)
				return
			}
			assert.Equal(t, tt.want, errors.GetCode(err))
		})
	}
}

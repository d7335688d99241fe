package iconify_test

import (
	"context"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/relaxicons/relaxicons/pkg/cache"
	"github.com/relaxicons/relaxicons/pkg/errors"
	"github.com/relaxicons/relaxicons/pkg/httputil"
	"github.com/relaxicons/relaxicons/pkg/icon"
	"github.com/relaxicons/relaxicons/pkg/integrations/iconify"
	"github.com/relaxicons/relaxicons/pkg/integrations/iconify/iconifytest"
)

const homeSVG = `<svg width="24" height="24" viewBox="0 0 24 24"><path d="M3 9l9-7 9 7"/></svg>`

func newRegistry(t *testing.T) *iconifytest.Server {
	t.Helper()
	srv := iconifytest.NewServer()
	t.Cleanup(srv.Close)
	srv.AddIcon("lucide", "home", homeSVG)
	srv.AddIcon("lucide", "house", homeSVG)
	srv.AddIcon("lucide", "bell", homeSVG)
	srv.SetTitle("lucide", "Lucide")
	srv.AddIcon("mdi", "account", homeSVG)
	return srv
}

func newClient(t *testing.T, srv *iconifytest.Server, c cache.Cache) *iconify.Client {
	t.Helper()
	client, err := iconify.NewClient(iconify.Options{
		BaseURL: srv.URL,
		Cache:   c,
		Retry: &httputil.Policy{
			NetworkDelays: []time.Duration{time.Millisecond},
			StatusRetries: 3,
			StatusDelay:   time.Millisecond,
		},
	})
	require.NoError(t, err)
	return client
}

func TestCollections(t *testing.T) {
	srv := newRegistry(t)
	client := newClient(t, srv, nil)

	cols, err := client.Collections(context.Background())
	require.NoError(t, err)
	require.Len(t, cols, 2)

	assert.Equal(t, "lucide", cols[0].Name)
	assert.Equal(t, "Lucide", cols[0].Title)
	require.NotNil(t, cols[0].Count)
	assert.Equal(t, 3, *cols[0].Count)
	assert.Equal(t, "mdi", cols[1].Name)

	prefixes, err := client.Prefixes(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []string{"lucide", "mdi"}, prefixes)
}

func TestListIcons(t *testing.T) {
	srv := newRegistry(t)
	client := newClient(t, srv, nil)
	ctx := context.Background()

	names, err := client.ListIcons(ctx, "lucide")
	require.NoError(t, err)
	assert.Equal(t, []string{"home", "house", "bell"}, names)

	// served from the in-process memo the second time
	_, err = client.ListIcons(ctx, "lucide")
	require.NoError(t, err)
	assert.Equal(t, 1, srv.Requests("/collection"))
}

func TestListIconsUnknownCollection(t *testing.T) {
	srv := newRegistry(t)
	client := newClient(t, srv, nil)

	_, err := client.ListIcons(context.Background(), "nope")
	assert.True(t, errors.Is(err, errors.ErrCodeCollectionNotFound), "err = %v", err)
}

func TestListIconsServerError(t *testing.T) {
	srv := newRegistry(t)
	srv.FailNext("/collection", http.StatusServiceUnavailable, 10)
	client := newClient(t, srv, nil)

	_, err := client.ListIcons(context.Background(), "lucide")
	require.Error(t, err)
	assert.True(t, errors.Is(err, errors.ErrCodeFetchFailed), "err = %v", err)
	assert.Equal(t, http.StatusServiceUnavailable, errors.StatusOf(err))
	assert.Equal(t, 4, srv.Requests("/collection"))
}

func TestFetchIconSource(t *testing.T) {
	srv := newRegistry(t)
	client := newClient(t, srv, nil)

	svg, err := client.FetchIconSource(context.Background(), icon.ID{Collection: "lucide", Name: "home"})
	require.NoError(t, err)
	assert.Equal(t, homeSVG, svg)
}

func TestFetchIconSourceNotFound(t *testing.T) {
	srv := newRegistry(t)
	client := newClient(t, srv, nil)

	_, err := client.FetchIconSource(context.Background(), icon.ID{Collection: "lucide", Name: "hme"})
	assert.True(t, errors.Is(err, errors.ErrCodeIconNotFound), "err = %v", err)
}

func TestFetchIconSourceUnexpectedPayload(t *testing.T) {
	srv := newRegistry(t)
	srv.AddIcon("lucide", "broken", "<html>oops</html>")
	client := newClient(t, srv, nil)

	_, err := client.FetchIconSource(context.Background(), icon.ID{Collection: "lucide", Name: "broken"})
	assert.True(t, errors.Is(err, errors.ErrCodeUnexpectedPayload), "err = %v", err)
}

func TestFetchIconSourceRecoversFromThrottling(t *testing.T) {
	srv := newRegistry(t)
	srv.FailNext("/lucide/home.svg", http.StatusTooManyRequests, 2)
	client := newClient(t, srv, nil)

	svg, err := client.FetchIconSource(context.Background(), icon.ID{Collection: "lucide", Name: "home"})
	require.NoError(t, err)
	assert.Equal(t, homeSVG, svg)
	assert.Equal(t, 3, srv.Requests("/lucide/home.svg"))
}

func TestFetchIconSourceServesStaleWhenRegistryFails(t *testing.T) {
	srv := newRegistry(t)
	fc, err := cache.NewFileCache(t.TempDir())
	require.NoError(t, err)
	client := newClient(t, srv, fc)
	id := icon.ID{Collection: "lucide", Name: "home"}
	ctx := context.Background()

	_, err = client.FetchIconSource(ctx, id)
	require.NoError(t, err)

	srv.FailNext("/lucide/home.svg", http.StatusInternalServerError, 10)
	svg, err := client.FetchIconSource(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, homeSVG, svg)
}

func TestCacheRevalidationUsesETag(t *testing.T) {
	srv := newRegistry(t)
	fc, err := cache.NewFileCache(t.TempDir())
	require.NoError(t, err)
	ctx := context.Background()
	id := icon.ID{Collection: "lucide", Name: "home"}

	_, err = newClient(t, srv, fc).FetchIconSource(ctx, id)
	require.NoError(t, err)

	// a second process shares the cache; the registry answers 304
	svg, err := newClient(t, srv, fc).FetchIconSource(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, homeSVG, svg)
	assert.Equal(t, 2, srv.Requests("/lucide/home.svg"))
}

func TestNewClientRejectsBadBaseURL(t *testing.T) {
	_, err := iconify.NewClient(iconify.Options{BaseURL: "ftp://example.com"})
	assert.Error(t, err)
}

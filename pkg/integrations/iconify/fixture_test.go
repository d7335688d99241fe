package iconify

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/relaxicons/relaxicons/pkg/errors"
	"github.com/relaxicons/relaxicons/pkg/icon"
)

func TestOfflineNeverTouchesNetwork(t *testing.T) {
	hits := 0
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hits++
	}))
	defer srv.Close()

	client, err := NewClient(Options{BaseURL: srv.URL, Offline: true})
	require.NoError(t, err)
	ctx := context.Background()

	cols, err := client.Collections(ctx)
	require.NoError(t, err)
	require.Len(t, cols, 1)
	assert.Equal(t, "lucide", cols[0].Name)
	assert.Equal(t, "Lucide", cols[0].Title)
	assert.Equal(t, 3, *cols[0].Count)

	prefixes, err := client.Prefixes(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"lucide"}, prefixes)

	names, err := client.ListIcons(ctx, "lucide")
	require.NoError(t, err)
	assert.Equal(t, []string{"home", "star", "bell"}, names)

	svg, err := client.FetchIconSource(ctx, icon.ID{Collection: "lucide", Name: "home"})
	require.NoError(t, err)
	assert.Equal(t, `<svg viewBox="0 0 10 10"><path d="M0"/></svg>`, svg)

	assert.Zero(t, hits)
}

func TestOfflineNotFound(t *testing.T) {
	client, err := NewClient(Options{Offline: true})
	require.NoError(t, err)
	ctx := context.Background()

	_, err = client.ListIcons(ctx, "mdi")
	assert.True(t, errors.Is(err, errors.ErrCodeCollectionNotFound))

	_, err = client.FetchIconSource(ctx, icon.ID{Collection: "lucide", Name: "star"})
	assert.True(t, errors.Is(err, errors.ErrCodeIconNotFound))

	_, err = client.FetchIconSource(ctx, icon.ID{Collection: "mdi", Name: "home"})
	assert.True(t, errors.Is(err, errors.ErrCodeIconNotFound))
}

func TestOfflineListIsCopy(t *testing.T) {
	client, _ := NewClient(Options{Offline: true})
	names, _ := client.ListIcons(context.Background(), "lucide")
	names[0] = "mutated"

	again, _ := client.ListIcons(context.Background(), "lucide")
	assert.Equal(t, "home", again[0])
}

func TestCollectionResponseNames(t *testing.T) {
	tests := []struct {
		name string
		body collectionResponse
		want []string
	}{
		{
			name: "icons map",
			body: collectionResponse{Icons: []byte(`{"star":{},"bell":{}}`)},
			want: []string{"bell", "star"},
		},
		{
			name: "icons list",
			body: collectionResponse{Icons: []byte(`["star","bell","star"]`)},
			want: []string{"star", "bell"},
		},
		{
			name: "categories",
			body: collectionResponse{
				Uncategorized: []string{"x"},
				Categories:    map[string][]string{"B": {"b1", "x"}, "A": {"a1"}},
			},
			want: []string{"x", "a1", "b1"},
		},
		{
			name: "empty",
			body: collectionResponse{},
			want: []string{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.body.names())
		})
	}
}

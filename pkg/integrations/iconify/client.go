package iconify

import (
	"context"
	stderrors "errors"
	"fmt"
	"net/http"
	"slices"
	"strings"
	"time"

	"github.com/charmbracelet/log"
	lru "github.com/hashicorp/golang-lru/v2"

	"github.com/relaxicons/relaxicons/pkg/cache"
	"github.com/relaxicons/relaxicons/pkg/errors"
	"github.com/relaxicons/relaxicons/pkg/httputil"
	"github.com/relaxicons/relaxicons/pkg/icon"
	"github.com/relaxicons/relaxicons/pkg/integrations"
)

// DefaultBaseURL is the public Iconify API.
const DefaultBaseURL = "https://api.iconify.design"

// memoSize bounds the per-process icon list memo.
const memoSize = 256

// Collection describes one icon set.
type Collection struct {
	Name  string `json:"name"`
	Title string `json:"title,omitempty"`
	Count *int   `json:"count,omitempty"`
}

// Options configures a Client. Zero values select defaults.
type Options struct {
	BaseURL    string
	Offline    bool // serve the built-in fixture instead of the network
	Cache      cache.Cache
	TTL        time.Duration
	HTTPClient *http.Client
	Retry      *httputil.Policy
	Logger     *log.Logger
}

// Client talks to the Iconify API.
type Client struct {
	*integrations.Client
	baseURL string
	offline bool
	keys    cache.Keyer
	icons   *lru.Cache[string, []string]
}

// NewClient creates a Client. With Offline set, every call is answered from
// the fixture before any cache or network logic runs.
func NewClient(opts Options) (*Client, error) {
	base := strings.TrimRight(opts.BaseURL, "/")
	if base == "" {
		base = DefaultBaseURL
	}
	if err := errors.ValidateURL(base); err != nil {
		return nil, err
	}

	memo, err := lru.New[string, []string](memoSize)
	if err != nil {
		return nil, err
	}

	return &Client{
		Client: integrations.NewClient(integrations.Options{
			HTTPClient: opts.HTTPClient,
			Cache:      opts.Cache,
			TTL:        opts.TTL,
			Retry:      opts.Retry,
			Logger:     opts.Logger,
		}),
		baseURL: base,
		offline: opts.Offline,
		keys:    cache.NewScopedKeyer(cache.NewDefaultKeyer(), integrations.HostScope(base)),
		icons:   memo,
	}, nil
}

// BaseURL returns the API root requests are sent to.
func (c *Client) BaseURL() string {
	return c.baseURL
}

// Offline reports whether the client serves the fixture.
func (c *Client) Offline() bool {
	return c.offline
}

// Prefixes lists every collection prefix, sorted.
func (c *Client) Prefixes(ctx context.Context) ([]string, error) {
	cols, err := c.Collections(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]string, len(cols))
	for i, col := range cols {
		out[i] = col.Name
	}
	return out, nil
}

// Collections lists every collection with its title and icon count, sorted
// by prefix.
func (c *Client) Collections(ctx context.Context) ([]Collection, error) {
	if c.offline {
		return fixtureCollections(), nil
	}

	var data collectionsResponse
	url := c.baseURL + "/collections"
	if err := c.GetJSON(ctx, "collections", c.keys.CollectionsKey(), url, &data); err != nil {
		return nil, fetchError(err, errors.ErrCodeFetchFailed, "collections")
	}

	out := make([]Collection, 0, len(data))
	for prefix, info := range data {
		out = append(out, info.toCollection(prefix))
	}
	slices.SortFunc(out, func(a, b Collection) int { return strings.Compare(a.Name, b.Name) })
	return out, nil
}

// ListIcons lists the icon names of one collection. Unknown collections fail
// with COLLECTION_NOT_FOUND.
func (c *Client) ListIcons(ctx context.Context, prefix string) ([]string, error) {
	if c.offline {
		return fixtureIcons(prefix)
	}
	if err := errors.ValidateCollectionPrefix(prefix); err != nil {
		return nil, errors.Wrap(errors.ErrCodeCollectionNotFound, err, "collection %q not found", prefix)
	}
	if names, ok := c.icons.Get(prefix); ok {
		return slices.Clone(names), nil
	}

	var data collectionResponse
	url := fmt.Sprintf("%s/collection?prefix=%s", c.baseURL, integrations.URLEncode(prefix))
	if err := c.GetJSON(ctx, "collection", c.keys.CollectionKey(prefix), url, &data); err != nil {
		return nil, fetchError(err, errors.ErrCodeCollectionNotFound, "collection %q", prefix)
	}

	names := data.names()
	c.icons.Add(prefix, names)
	return slices.Clone(names), nil
}

// FetchIconSource returns the raw SVG document of one icon. Unknown icons
// fail with ICON_NOT_FOUND; a body that is not an SVG document fails with
// UNEXPECTED_PAYLOAD.
func (c *Client) FetchIconSource(ctx context.Context, id icon.ID) (string, error) {
	if c.offline {
		return fixtureIcon(id)
	}

	url := fmt.Sprintf("%s/%s/%s.svg", c.baseURL,
		integrations.URLEncode(id.Collection), integrations.URLEncode(id.Name))
	text, err := c.GetText(ctx, "icon", c.keys.IconKey(id.Collection, id.Name), url)
	if err != nil {
		return "", fetchError(err, errors.ErrCodeIconNotFound, "icon %s", id)
	}

	if !strings.HasPrefix(strings.TrimSpace(text), "<svg") {
		return "", errors.New(errors.ErrCodeUnexpectedPayload, "unexpected response for icon %s: not an SVG document", id)
	}
	return text, nil
}

// fetchError maps transport errors onto error codes. A 404 becomes
// notFound; everything else is FETCH_FAILED carrying the status when there
// was one.
func fetchError(err error, notFound errors.Code, format string, args ...any) error {
	what := fmt.Sprintf(format, args...)

	if stderrors.Is(err, context.Canceled) || stderrors.Is(err, context.DeadlineExceeded) {
		return err
	}
	if stderrors.Is(err, integrations.ErrNotFound) {
		if notFound == errors.ErrCodeFetchFailed {
			return errors.WithStatus(notFound, http.StatusNotFound, "fetch %s", what)
		}
		return errors.Wrap(notFound, err, "%s not found", what)
	}

	var se *integrations.StatusError
	if stderrors.As(err, &se) {
		e := errors.WithStatus(errors.ErrCodeFetchFailed, se.Status, "fetch %s", what)
		e.Cause = err
		return e
	}
	return errors.Wrap(errors.ErrCodeFetchFailed, err, "fetch %s", what)
}

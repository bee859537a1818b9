package groupsync

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vido/mediatag/internal/keyword"
)

type fakeStore struct {
	entries map[string]keyword.Entry
}

func newFakeStore(names ...string) *fakeStore {
	entries := make(map[string]keyword.Entry)
	for _, n := range names {
		entries[n] = keyword.Entry{Kind: keyword.ReleaseGroup}
	}
	return &fakeStore{entries: entries}
}

func (f *fakeStore) LoadOverlayKeywords(ctx context.Context) (map[string]keyword.Entry, error) {
	return f.entries, nil
}

func (f *fakeStore) AddOverlayKeyword(ctx context.Context, value string, kind keyword.Kind, ambiguous bool) error {
	f.entries[value] = keyword.Entry{Kind: kind, Ambiguous: ambiguous}
	return nil
}

func TestSync_AddsNewGroupsOnly(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(listingHTML))
	}))
	defer server.Close()

	client := NewClient(time.Millisecond, "", "")
	scraper, err := NewScraper()
	require.NoError(t, err)

	store := newFakeStore("Erai-raws")

	result, err := Sync(context.Background(), client, scraper, store, server.URL, 1)
	require.NoError(t, err)

	assert.Equal(t, 2, result.Scraped)
	assert.Equal(t, []string{"SubsPlease"}, result.Accepted)
	assert.Equal(t, 1, result.AlreadyKnown)

	_, ok := store.entries["SubsPlease"]
	assert.True(t, ok)
}

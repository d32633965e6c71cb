package gallery_test

import (
	"context"
	"testing"

	"gallery-app/internal/gallery"
)

func TestOwnerFeedIsScopedToRequester(t *testing.T) {
	env := newTestEnv(t)
	env.mustCreate(t, alice, gallery.ImageInput{Caption: "a1", AlbumID: 1}, upload("a1.png", "x"))
	env.mustCreate(t, bob, gallery.ImageInput{Caption: "b1", AlbumID: 1}, upload("b1.png", "x"))
	env.mustCreate(t, alice, gallery.ImageInput{Caption: "a2", AlbumID: 2}, upload("a2.png", "x"))

	feed, err := env.queries.OwnerFeed(context.Background(), alice)
	if err != nil {
		t.Fatalf("OwnerFeed returned error: %v", err)
	}
	if len(feed) != 2 {
		t.Fatalf("owner feed has %d records, want 2", len(feed))
	}
	for _, img := range feed {
		if img.UserID != alice.UserID {
			t.Fatalf("owner feed leaked record of %q", img.UserID)
		}
	}
}

func TestPublicFeedWithoutFilterReturnsAllNewestFirst(t *testing.T) {
	env := newTestEnv(t)
	env.mustCreate(t, alice, gallery.ImageInput{Caption: "oldest", AlbumID: 1}, upload("1.png", "x"))
	env.mustCreate(t, bob, gallery.ImageInput{Caption: "middle", AlbumID: 2}, upload("2.png", "x"))
	env.mustCreate(t, alice, gallery.ImageInput{Caption: "newest", AlbumID: 1}, upload("3.png", "x"))

	feed, err := env.queries.PublicFeed(context.Background(), gallery.NoAlbumFilter)
	if err != nil {
		t.Fatalf("PublicFeed returned error: %v", err)
	}
	if len(feed) != 3 {
		t.Fatalf("public feed has %d records, want 3", len(feed))
	}
	for i := 1; i < len(feed); i++ {
		if feed[i-1].ID <= feed[i].ID {
			t.Fatalf("feed not newest-first: ids %d, %d", feed[i-1].ID, feed[i].ID)
		}
	}
	if feed[0].Caption != "newest" {
		t.Fatalf("first record = %q, want the newest", feed[0].Caption)
	}
}

func TestPublicFeedFiltersByAlbum(t *testing.T) {
	env := newTestEnv(t)
	env.mustCreate(t, alice, gallery.ImageInput{Caption: "travel1", AlbumID: 1}, upload("1.png", "x"))
	env.mustCreate(t, bob, gallery.ImageInput{Caption: "food", AlbumID: 2}, upload("2.png", "x"))
	env.mustCreate(t, alice, gallery.ImageInput{Caption: "travel2", AlbumID: 1}, upload("3.png", "x"))

	feed, err := env.queries.PublicFeed(context.Background(), 1)
	if err != nil {
		t.Fatalf("PublicFeed returned error: %v", err)
	}
	if len(feed) != 2 {
		t.Fatalf("filtered feed has %d records, want 2", len(feed))
	}
	for _, img := range feed {
		if img.AlbumID != 1 {
			t.Fatalf("filtered feed contains album %d", img.AlbumID)
		}
	}
	if feed[0].Caption != "travel2" || feed[1].Caption != "travel1" {
		t.Fatalf("filtered feed out of order: %q, %q", feed[0].Caption, feed[1].Caption)
	}
}

func TestDetailResolvesAlbum(t *testing.T) {
	env := newTestEnv(t)
	img := env.mustCreate(t, alice, gallery.ImageInput{Caption: "c", AlbumID: 2}, upload("a.png", "x"))

	got, err := env.queries.Detail(context.Background(), img.ID)
	if err != nil {
		t.Fatalf("Detail returned error: %v", err)
	}
	if got.Album == nil || got.Album.Title != "Food" {
		t.Fatalf("album not resolved: %+v", got.Album)
	}
}

func TestAlbumsListsSeededAlbums(t *testing.T) {
	env := newTestEnv(t)

	albums, err := env.queries.Albums(context.Background())
	if err != nil {
		t.Fatalf("Albums returned error: %v", err)
	}
	if len(albums) != 3 {
		t.Fatalf("album list has %d entries, want 3", len(albums))
	}
	if albums[0].Title != "Food" {
		t.Fatalf("expected title ordering, got %q first", albums[0].Title)
	}
}

package gallery

import (
	"context"

	domain "gallery-app/internal/domain/gallery"
)

// NoAlbumFilter is the sentinel meaning "all albums" in PublicFeed.
const NoAlbumFilter uint = 0

// QueryService serves the read-only listings. It never mutates stored
// state.
type QueryService struct {
	images *ImageRepository
	albums *AlbumRepository
}

func NewQueryService(images *ImageRepository, albums *AlbumRepository) *QueryService {
	return &QueryService{images: images, albums: albums}
}

// OwnerFeed lists the requester's own images, newest first.
func (s *QueryService) OwnerFeed(ctx context.Context, ident Identity) ([]domain.Image, error) {
	return s.images.ListByOwner(ctx, ident.UserID)
}

// PublicFeed lists all images, or only those in one album, newest first.
func (s *QueryService) PublicFeed(ctx context.Context, albumID uint) ([]domain.Image, error) {
	if albumID == NoAlbumFilter {
		return s.images.ListAll(ctx)
	}
	return s.images.ListByAlbum(ctx, albumID)
}

// Detail resolves a single image with its album.
func (s *QueryService) Detail(ctx context.Context, id uint) (*domain.Image, error) {
	return s.images.Get(ctx, id)
}

// Albums lists the albums available for the public feed filter.
func (s *QueryService) Albums(ctx context.Context) ([]domain.Album, error) {
	return s.albums.List(ctx)
}

package gallery

import (
	"context"
	"errors"

	domain "gallery-app/internal/domain/gallery"

	"gorm.io/gorm"
)

// ImageRepository is the persisted collection of Image records. All
// listings return newest-id-first, a recency feed rather than store
// iteration order.
type ImageRepository struct {
	db *gorm.DB
}

func NewImageRepository(db *gorm.DB) *ImageRepository {
	return &ImageRepository{db: db}
}

func (r *ImageRepository) Get(ctx context.Context, id uint) (*domain.Image, error) {
	var img domain.Image
	err := r.db.WithContext(ctx).Preload("Album").First(&img, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &img, nil
}

func (r *ImageRepository) ListByOwner(ctx context.Context, userID string) ([]domain.Image, error) {
	var images []domain.Image
	err := r.db.WithContext(ctx).Preload("Album").
		Where("user_id = ?", userID).
		Order("id DESC").
		Find(&images).Error
	return images, err
}

func (r *ImageRepository) ListAll(ctx context.Context) ([]domain.Image, error) {
	var images []domain.Image
	err := r.db.WithContext(ctx).Preload("Album").
		Order("id DESC").
		Find(&images).Error
	return images, err
}

func (r *ImageRepository) ListByAlbum(ctx context.Context, albumID uint) ([]domain.Image, error) {
	var images []domain.Image
	err := r.db.WithContext(ctx).Preload("Album").
		Where("album_id = ?", albumID).
		Order("id DESC").
		Find(&images).Error
	return images, err
}

// Insert persists a new record and assigns its id.
func (r *ImageRepository) Insert(ctx context.Context, img *domain.Image) error {
	return r.db.WithContext(ctx).Create(img).Error
}

// Update commits img keyed on the version the caller read. A stale
// version matches no row and surfaces as ErrConflict; the caller decides
// whether the record vanished or was concurrently modified.
func (r *ImageRepository) Update(ctx context.Context, img *domain.Image) error {
	res := r.db.WithContext(ctx).Model(&domain.Image{}).
		Where("id = ? AND version = ?", img.ID, img.Version).
		Updates(map[string]interface{}{
			"caption":   img.Caption,
			"location":  img.Location,
			"filter":    img.Filter,
			"file_name": img.FileName,
			"album_id":  img.AlbumID,
			"version":   img.Version + 1,
		})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrConflict
	}
	img.Version++
	return nil
}

func (r *ImageRepository) Delete(ctx context.Context, id uint) error {
	res := r.db.WithContext(ctx).Delete(&domain.Image{}, "id = ?", id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

// AlbumRepository is read-only in this core; album management lives
// elsewhere.
type AlbumRepository struct {
	db *gorm.DB
}

func NewAlbumRepository(db *gorm.DB) *AlbumRepository {
	return &AlbumRepository{db: db}
}

func (r *AlbumRepository) List(ctx context.Context) ([]domain.Album, error) {
	var albums []domain.Album
	err := r.db.WithContext(ctx).Order("title ASC").Find(&albums).Error
	return albums, err
}

func (r *AlbumRepository) Get(ctx context.Context, id uint) (*domain.Album, error) {
	var album domain.Album
	err := r.db.WithContext(ctx).First(&album, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &album, nil
}

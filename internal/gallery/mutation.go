package gallery

import (
	"context"
	"errors"
	"fmt"
	"io"
	"time"

	"gallery-app/internal/blobstore"
	domain "gallery-app/internal/domain/gallery"

	"github.com/go-playground/validator/v10"
	"gorm.io/gorm"
)

// ImageInput is the structured metadata accompanying a create or edit.
type ImageInput struct {
	Caption  string `validate:"max=500"`
	Location string `validate:"max=255"`
	Filter   string `validate:"max=100"`
	AlbumID  uint   `validate:"required"`
}

// EditInput adds the identity and the version the editor read.
type EditInput struct {
	ImageID uint
	Version int
	ImageInput
}

// Upload is one incoming file stream.
type Upload struct {
	Name   string
	Size   int64
	Reader io.Reader
}

// MutationService orchestrates Create, Edit and Delete: it validates
// input, writes blobs, enforces ownership and classifies commit
// conflicts. It never logs; every outcome is returned to the caller.
type MutationService struct {
	db       *gorm.DB
	images   *ImageRepository
	blobs    blobstore.Store
	validate *validator.Validate
	now      func() time.Time
}

func NewMutationService(db *gorm.DB, images *ImageRepository, blobs blobstore.Store) *MutationService {
	return &MutationService{
		db:       db,
		images:   images,
		blobs:    blobs,
		validate: validator.New(),
		now:      time.Now,
	}
}

// Create validates the input, inserts the record to obtain its id,
// writes the blob under the id-derived key and commits. A record is
// never persisted without a stored file: the blob write happens inside
// the insert transaction, so a failed upload rolls the record back.
func (s *MutationService) Create(ctx context.Context, ident Identity, in ImageInput, file *Upload) (*domain.Image, error) {
	fields := s.structuralErrors(in)
	if file == nil || file.Size == 0 {
		fields["File"] = "an image file is required"
	}
	if len(fields) > 0 {
		return nil, &ValidationError{Fields: fields}
	}

	img := &domain.Image{
		Caption:  in.Caption,
		Location: in.Location,
		Filter:   in.Filter,
		AlbumID:  in.AlbumID,
		UserID:   ident.UserID,
		UserName: ident.UserName,
		Created:  s.now(),
		Version:  1,
	}

	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(img).Error; err != nil {
			return err
		}

		key := blobstore.Key(img.ID, file.Name)
		if _, err := s.blobs.Put(ctx, key, file.Reader); err != nil {
			return fmt.Errorf("store upload: %w", err)
		}
		img.FileName = key

		return tx.Model(&domain.Image{}).
			Where("id = ?", img.ID).
			Update("file_name", key).Error
	})
	if err != nil {
		return nil, err
	}
	return img, nil
}

// Edit merges the submitted metadata into the stored record and commits
// with conflict detection. Both the file and the no-file branch run the
// same validation; the only difference is whether a new blob is written.
// Owner fields and the creation timestamp are never overwritten.
func (s *MutationService) Edit(ctx context.Context, ident Identity, id uint, in EditInput, file *Upload) (*domain.Image, error) {
	if id != in.ImageID {
		return nil, ErrIdentityMismatch
	}

	img, err := s.images.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if !CanMutate(img, ident) {
		return nil, ErrForbidden
	}

	if fields := s.structuralErrors(in.ImageInput); len(fields) > 0 {
		return nil, &ValidationError{Fields: fields}
	}

	img.Caption = in.Caption
	img.Location = in.Location
	img.Filter = in.Filter
	img.AlbumID = in.AlbumID
	img.Version = in.Version

	if file != nil && file.Size > 0 {
		key := blobstore.Key(img.ID, file.Name)
		if _, err := s.blobs.Put(ctx, key, file.Reader); err != nil {
			return nil, fmt.Errorf("store upload: %w", err)
		}
		img.FileName = key
	}

	if err := s.images.Update(ctx, img); err != nil {
		if !errors.Is(err, ErrConflict) {
			return nil, err
		}
		// The commit lost the race. If the record is gone the caller
		// sees NotFound; otherwise the conflict surfaces unrecovered.
		if _, getErr := s.images.Get(ctx, id); errors.Is(getErr, ErrNotFound) {
			return nil, ErrNotFound
		}
		return nil, ErrConflict
	}
	return img, nil
}

// Delete removes exactly one record. The blob is left behind; keys are
// id-scoped so it can never be claimed by another record.
func (s *MutationService) Delete(ctx context.Context, ident Identity, id uint) error {
	img, err := s.images.Get(ctx, id)
	if err != nil {
		return err
	}
	if !CanMutate(img, ident) {
		return ErrForbidden
	}
	return s.images.Delete(ctx, id)
}

func (s *MutationService) structuralErrors(in ImageInput) map[string]string {
	fields := map[string]string{}
	if err := s.validate.Struct(in); err != nil {
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) {
			for _, fe := range verrs {
				fields[fe.Field()] = fmt.Sprintf("failed %q validation", fe.Tag())
			}
		} else {
			fields["input"] = err.Error()
		}
	}
	return fields
}

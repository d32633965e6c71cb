package gallery

import "time"

// Image is one gallery asset: the persisted metadata row plus a reference
// to its uploaded blob via FileName.
type Image struct {
	ID       uint   `gorm:"primaryKey" json:"id"`
	Caption  string `json:"caption"`
	Location string `json:"location"`
	Filter   string `json:"filter"`

	// FileName is the blob-store key. Derived from the record id plus the
	// sanitized original upload name, so two uploads never share a blob.
	FileName string `json:"file_name"`

	// Owner fields are set at creation and never overwritten by edits.
	UserID   string `gorm:"index" json:"user_id"`
	UserName string `json:"user_name"`

	Created time.Time `json:"created"`

	AlbumID uint   `gorm:"not null;index" json:"album_id"`
	Album   *Album `gorm:"foreignKey:AlbumID" json:"album,omitempty"`

	// Version is the optimistic-concurrency token. Every successful update
	// bumps it; a commit carrying a stale version is rejected.
	Version int `gorm:"not null;default:1" json:"version"`
}

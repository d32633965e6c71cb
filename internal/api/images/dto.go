package images

// ---------- requests (multipart form fields)

type ImageForm struct {
	Caption  string `form:"caption" json:"caption"`
	Location string `form:"location" json:"location"`
	Filter   string `form:"filter" json:"filter"`
	AlbumID  uint   `form:"album_id" json:"album_id"`
}

type EditForm struct {
	ImageID uint `form:"image_id" json:"image_id"`
	Version int  `form:"version" json:"version"`
	ImageForm
}

package gallery

import domain "gallery-app/internal/domain/gallery"

// Identity is the acting user for one request, derived from the
// authentication context by the transport layer and passed explicitly
// into every service call.
type Identity struct {
	UserID   string
	UserName string
}

// CanMutate reports whether ident may edit or delete img. Only the
// recorded owner may mutate; creation is open to any authenticated
// identity.
func CanMutate(img *domain.Image, ident Identity) bool {
	return img.UserID == ident.UserID
}

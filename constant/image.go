package constant

// ImageScope namespaces stored image filenames.
type ImageScope string

const (
	ImageScopeAds   ImageScope = "ads"
	ImageScopeUsers ImageScope = "users"
)

const (
	AdImageURLPrefix   = "/ads/image/"
	UserImageURLPrefix = "/users/image/"

	// ImageContentType is served for every stored image regardless of its bytes.
	ImageContentType = "image/png"
)

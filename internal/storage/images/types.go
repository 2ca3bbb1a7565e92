package images

// SaveInput contains parameters for saving an uploaded image
type SaveInput struct {
	// Filename is the client's original filename; only its extension
	// is kept
	Filename string

	// Data is the raw file content
	Data []byte
}

// SaveOutput contains the stored image's public location
type SaveOutput struct {
	// URL is the path the image is served under, e.g. /images/<name>
	URL string
}

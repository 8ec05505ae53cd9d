package models

import "io"

// FileUpload carries one uploaded file from the transport layer to the
// media store. Content is streamed, not buffered, so video files do not
// have to fit in memory.
type FileUpload struct {
	// Name is the original file name as submitted by the client.
	// Only its extension is preserved when the file is stored.
	Name string

	// Content is the file payload. The producer owns closing the
	// underlying source once the upload has been consumed.
	Content io.Reader
}

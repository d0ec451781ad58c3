package ocr

import "errors"

// ErrNoText is returned when every OCR pass comes back empty, typically a
// logo or graphic rather than a confirmation screen.
var ErrNoText = errors.New("no text recognized")

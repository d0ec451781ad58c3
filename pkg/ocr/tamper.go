package ocr

import (
	"bytes"
	"io"
	"os"
)

// Editing-software markers looked for in the encoded file. JPEG EXIF/XMP and
// PNG text chunks carry the producing tool's name as a plain string, so a
// byte scan finds them without a metadata parser.
var editingToolMarkers = []string{
	"adobe photoshop",
	"photoshop",
	"lightroom",
	"gimp",
	"snapseed",
	"picsart",
	"pixlr",
	"canva",
	"photopea",
}

// Metadata sits before the pixel data; scanning more than this from the head
// of the file buys nothing.
const tamperScanLimit = 2 << 20

// DetectEditingTool scans the file for editing-software metadata and returns
// the marker that matched. A read error is reported as no signal: a missing
// tamper flag must degrade to false, never break the pipeline.
func DetectEditingTool(path string) (bool, string) {
	f, err := os.Open(path)
	if err != nil {
		return false, ""
	}
	defer f.Close()

	head, err := io.ReadAll(io.LimitReader(f, tamperScanLimit))
	if err != nil {
		return false, ""
	}
	return DetectEditingToolBytes(head)
}

// DetectEditingToolBytes is the in-memory variant for callers that already
// hold the encoded image.
func DetectEditingToolBytes(data []byte) (bool, string) {
	if len(data) > tamperScanLimit {
		data = data[:tamperScanLimit]
	}
	low := bytes.ToLower(data)
	for _, marker := range editingToolMarkers {
		if bytes.Contains(low, []byte(marker)) {
			return true, marker
		}
	}
	return false, ""
}

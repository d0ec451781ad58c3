// Package ocr is the image-side collaborator boundary: it turns a screenshot
// into raw text for the extractor and computes the binary image signals
// (editing-tool metadata, blur) consumed by the scorer. Text quality is best
// effort; downstream treats it as untrusted noise.
package ocr

import (
	"fmt"
	"image"
	"log"
	"os"
	"strings"

	"github.com/disintegration/imaging"
	"github.com/otiai10/gosseract/v2"
)

type namedVariant struct {
	name string
	img  image.Image
}

// RecognizeText runs multi-pass Tesseract OCR over preprocessed variants of
// the image and returns the concatenated text. Newlines are preserved so the
// extractor keeps per-line context. An unreadable image is an error; an image
// that yields no text at all is ErrNoText.
func RecognizeText(path string) (string, error) {
	img, err := imaging.Open(path)
	if err != nil {
		return "", fmt.Errorf("open image: %w", err)
	}

	gray := imaging.Grayscale(img)
	gray = imaging.AdjustContrast(gray, 15)
	gray = imaging.Sharpen(gray, 0.7)
	if gray.Bounds().Dy() < 900 {
		gray = imaging.Resize(gray, 0, 1300, imaging.Lanczos)
	}
	bin := binarize(gray, 210)
	adv := dilate(adaptiveThreshold(gray, 15, 7), 1)

	var texts []string

	// Original image first: preprocessing can destroy anti-aliased fonts.
	if t, err := runPass(path); err == nil && strings.TrimSpace(t) != "" {
		texts = append(texts, t)
	}

	for _, v := range []namedVariant{{"gray", gray}, {"bin", bin}, {"adv", adv}} {
		tmp, err := os.CreateTemp("", "ocr-"+v.name+"-*.png")
		if err != nil {
			continue
		}
		_ = tmp.Close()
		if err := imaging.Save(v.img, tmp.Name()); err != nil {
			_ = os.Remove(tmp.Name())
			continue
		}
		if t, err := runPass(tmp.Name()); err == nil && strings.TrimSpace(t) != "" {
			texts = append(texts, t)
		}
		_ = os.Remove(tmp.Name())
	}

	if len(texts) == 0 {
		return "", ErrNoText
	}
	joined := strings.Join(texts, "\n")
	log.Printf("OCR %s passes=%d snippet=%q", path, len(texts), snippet(flattenText(joined), 160))
	return joined, nil
}

func runPass(path string) (string, error) {
	client := gosseract.NewClient()
	defer client.Close()
	_ = client.SetLanguage("eng")
	client.SetImage(path)
	text, err := client.Text()
	if err != nil {
		return "", fmt.Errorf("ocr pass: %w", err)
	}
	return text, nil
}

package ocr

import (
	"image"

	"github.com/disintegration/imaging"
)

// blurVarianceThreshold: Laplacian variance below this means the screenshot
// is too soft to trust — usually a photo of a screen or a heavy re-encode.
const blurVarianceThreshold = 100.0

// IsBlurry reports whether the image fails the sharpness check.
func IsBlurry(img image.Image) bool {
	return LaplacianVariance(img) < blurVarianceThreshold
}

// LaplacianVariance computes the variance of the 4-neighbor Laplacian over
// the grayscale image. Sharp edges produce high variance; blur flattens it.
func LaplacianVariance(img image.Image) float64 {
	gray := imaging.Grayscale(img)
	w := gray.Bounds().Dx()
	h := gray.Bounds().Dy()
	if w < 3 || h < 3 {
		return 0
	}

	lap := make([]float64, 0, (w-2)*(h-2))
	var sum float64
	for y := 1; y < h-1; y++ {
		for x := 1; x < w-1; x++ {
			v := float64(4*grayAt(gray, x, y) -
				grayAt(gray, x-1, y) - grayAt(gray, x+1, y) -
				grayAt(gray, x, y-1) - grayAt(gray, x, y+1))
			lap = append(lap, v)
			sum += v
		}
	}
	mean := sum / float64(len(lap))
	var variance float64
	for _, v := range lap {
		d := v - mean
		variance += d * d
	}
	return variance / float64(len(lap))
}

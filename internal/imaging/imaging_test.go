package imaging

import (
	"bytes"
	"image"
	"image/color"
	"image/jpeg"
	"image/png"
	"testing"
)

func testImage(w, h int, c color.RGBA) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for x := 0; x < w; x++ {
		for y := 0; y < h; y++ {
			img.Set(x, y, c)
		}
	}
	return img
}

func testJPEG(w, h int) []byte {
	var buf bytes.Buffer
	jpeg.Encode(&buf, testImage(w, h, color.RGBA{R: 255, A: 255}), &jpeg.Options{Quality: 90})
	return buf.Bytes()
}

func testPNG(w, h int) []byte {
	var buf bytes.Buffer
	png.Encode(&buf, testImage(w, h, color.RGBA{B: 255, A: 255}))
	return buf.Bytes()
}

func TestNormalizeJPEG(t *testing.T) {
	data, mime, err := Normalize(bytes.NewReader(testJPEG(100, 100)))
	if err != nil {
		t.Fatalf("Normalize JPEG: %v", err)
	}
	if mime != "image/jpeg" {
		t.Errorf("expected image/jpeg, got %s", mime)
	}
	if len(data) == 0 {
		t.Error("expected non-empty data")
	}
}

func TestNormalizePNGBecomesJPEG(t *testing.T) {
	_, mime, err := Normalize(bytes.NewReader(testPNG(100, 100)))
	if err != nil {
		t.Fatalf("Normalize PNG: %v", err)
	}
	if mime != "image/jpeg" {
		t.Errorf("expected image/jpeg (always outputs JPEG), got %s", mime)
	}
}

func TestNormalizeDownscales(t *testing.T) {
	data, _, err := Normalize(bytes.NewReader(testJPEG(2048, 1024)))
	if err != nil {
		t.Fatalf("Normalize large image: %v", err)
	}

	img, _, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		t.Fatalf("decoding result: %v", err)
	}
	bounds := img.Bounds()
	if bounds.Dx() > MaxDimension || bounds.Dy() > MaxDimension {
		t.Errorf("expected max %dx%d, got %dx%d", MaxDimension, MaxDimension, bounds.Dx(), bounds.Dy())
	}
	if bounds.Dx() != MaxDimension || bounds.Dy() != MaxDimension/2 {
		t.Errorf("expected aspect ratio preserved, got %dx%d", bounds.Dx(), bounds.Dy())
	}
}

func TestNormalizeDoesNotUpscale(t *testing.T) {
	data, _, err := Normalize(bytes.NewReader(testJPEG(50, 50)))
	if err != nil {
		t.Fatalf("Normalize small image: %v", err)
	}

	img, _, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		t.Fatalf("decoding result: %v", err)
	}
	bounds := img.Bounds()
	if bounds.Dx() != 50 || bounds.Dy() != 50 {
		t.Errorf("small image should not be resized: got %dx%d", bounds.Dx(), bounds.Dy())
	}
}

func TestNormalizeRejectsNonImages(t *testing.T) {
	if _, _, err := Normalize(bytes.NewReader([]byte("not an image"))); err == nil {
		t.Error("expected error for invalid format")
	}
	// GIF magic bytes.
	if _, _, err := Normalize(bytes.NewReader([]byte("GIF89a..."))); err == nil {
		t.Error("expected error for GIF")
	}
}

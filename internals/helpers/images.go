package helper

import (
	"bytes"
	"fmt"
	"image"
	"image/jpeg"
	"image/png"
	"net/http"
	"path/filepath"
	"strings"

	"github.com/chai2010/webp"
	"github.com/disintegration/imaging"
)

// Banner/header event dikonversi ke WebP sebelum disimpan supaya ukurannya
// kecil saat dirender kiosk.

const (
	bannerMaxWidth  = 1600
	bannerMaxHeight = 900
	webpQuality     = 85
)

// DecodeUploadedImage mendeteksi format dari isi file (fallback ekstensi)
// lalu decode ke image.Image.
func DecodeUploadedImage(all []byte, filename string) (image.Image, error) {
	if len(all) == 0 {
		return nil, fmt.Errorf("empty file")
	}
	head := all
	if len(head) > 512 {
		head = head[:512]
	}
	ct := http.DetectContentType(head)

	var (
		img image.Image
		err error
	)

	switch {
	case strings.Contains(ct, "jpeg"):
		img, err = jpeg.Decode(bytes.NewReader(all))
	case strings.Contains(ct, "png"):
		img, err = png.Decode(bytes.NewReader(all))
	case strings.Contains(ct, "webp"):
		img, err = webp.Decode(bytes.NewReader(all))
	default:
		// fallback by extension
		ext := strings.ToLower(filepath.Ext(filename))
		switch ext {
		case ".jpg", ".jpeg":
			img, err = jpeg.Decode(bytes.NewReader(all))
		case ".png":
			img, err = png.Decode(bytes.NewReader(all))
		case ".webp":
			img, err = webp.Decode(bytes.NewReader(all))
		default:
			return nil, fmt.Errorf("format tidak didukung: %s / %s", ct, ext)
		}
	}
	return img, err
}

// ConvertToWebP downscale (keep aspect, Lanczos) lalu encode lossy WebP.
func ConvertToWebP(img image.Image) ([]byte, error) {
	b := img.Bounds()
	if b.Dx() > bannerMaxWidth || b.Dy() > bannerMaxHeight {
		img = imaging.Fit(img, bannerMaxWidth, bannerMaxHeight, imaging.Lanczos)
	}

	buf := new(bytes.Buffer)
	if err := webp.Encode(buf, img, &webp.Options{Lossless: false, Quality: webpQuality}); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

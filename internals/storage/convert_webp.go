// file: internals/storage/convert_webp.go
package storage

import (
	"bytes"
	"fmt"
	"image"
	"image/jpeg"
	"image/png"
	"net/http"
	"strings"

	"github.com/chai2010/webp"
	"github.com/disintegration/imaging"
	"golang.org/x/image/draw"
)

const (
	webpMaxDimension = 1600
	webpQuality      = 80
	thumbSize        = 320
)

func decodeImage(all []byte) (image.Image, error) {
	if len(all) == 0 {
		return nil, fmt.Errorf("empty file")
	}
	head := all
	if len(head) > 512 {
		head = head[:512]
	}
	ct := http.DetectContentType(head)

	switch {
	case strings.Contains(ct, "jpeg"):
		return jpeg.Decode(bytes.NewReader(all))
	case strings.Contains(ct, "png"):
		return png.Decode(bytes.NewReader(all))
	case strings.Contains(ct, "webp"):
		return webp.Decode(bytes.NewReader(all))
	default:
		return nil, fmt.Errorf("format gambar tidak didukung: %s", ct)
	}
}

// reencodeToWebP: decode jpeg/png/webp (sniff MIME dari isi), resize
// keep-aspect ke maksimal 1600px, encode ulang sebagai WebP lossy q80.
// Semua gambar yang masuk OSS seragam .webp — hemat bandwidth halaman publik.
func reencodeToWebP(all []byte) ([]byte, error) {
	img, err := decodeImage(all)
	if err != nil {
		return nil, fmt.Errorf("decode: %w", err)
	}

	b := img.Bounds()
	w, h := b.Dx(), b.Dy()
	if w > webpMaxDimension || h > webpMaxDimension {
		scale := float64(webpMaxDimension) / float64(w)
		if h > w {
			scale = float64(webpMaxDimension) / float64(h)
		}
		nw, nh := int(float64(w)*scale), int(float64(h)*scale)
		dst := image.NewRGBA(image.Rect(0, 0, nw, nh))
		draw.CatmullRom.Scale(dst, dst.Bounds(), img, b, draw.Over, nil)
		img = dst
	}

	var out bytes.Buffer
	if err := webp.Encode(&out, img, &webp.Options{Quality: webpQuality}); err != nil {
		return nil, fmt.Errorf("encode webp: %w", err)
	}
	return out.Bytes(), nil
}

// makeThumbnailWebP: thumbnail persegi untuk grid galeri.
func makeThumbnailWebP(all []byte) ([]byte, error) {
	img, err := decodeImage(all)
	if err != nil {
		return nil, fmt.Errorf("decode: %w", err)
	}
	thumb := imaging.Thumbnail(img, thumbSize, thumbSize, imaging.Lanczos)

	var out bytes.Buffer
	if err := webp.Encode(&out, thumb, &webp.Options{Quality: webpQuality}); err != nil {
		return nil, fmt.Errorf("encode webp: %w", err)
	}
	return out.Bytes(), nil
}

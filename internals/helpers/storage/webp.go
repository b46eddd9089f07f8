package storage

import (
	"bytes"
	"fmt"
	"image"
	_ "image/jpeg"
	_ "image/png"
	"os"
	"strconv"

	"github.com/chai2010/webp"
	"github.com/disintegration/imaging"
)

/* =======================================================================
   Konfigurasi WebP (ENV-Driven)
======================================================================= */

type WebPOptions struct {
	MaxW    int     // batas lebar (resize keep-aspect)
	MaxH    int     // batas tinggi
	Quality float32 // 0..100, lossy
}

func envInt(key string, def int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			return n
		}
	}
	return def
}

func DefaultWebPOptions() WebPOptions {
	q := float32(80)
	if v := os.Getenv("WEBP_QUALITY"); v != "" {
		if f, err := strconv.ParseFloat(v, 32); err == nil && f > 0 && f <= 100 {
			q = float32(f)
		}
	}
	return WebPOptions{
		MaxW:    envInt("WEBP_MAX_WIDTH", 1024),
		MaxH:    envInt("WEBP_MAX_HEIGHT", 1536),
		Quality: q,
	}
}

// ConvertToWebP decode JPEG/PNG, resize ke dalam batas MaxW×MaxH (keep aspect),
// lalu encode lossy WebP.
func ConvertToWebP(raw []byte, opt WebPOptions) (*bytes.Buffer, error) {
	img, _, err := image.Decode(bytes.NewReader(raw))
	if err != nil {
		return nil, fmt.Errorf("format gambar tidak dikenali: %w", err)
	}

	b := img.Bounds()
	if b.Dx() > opt.MaxW || b.Dy() > opt.MaxH {
		img = imaging.Fit(img, opt.MaxW, opt.MaxH, imaging.Lanczos)
	}

	out := new(bytes.Buffer)
	if err := webp.Encode(out, img, &webp.Options{Lossless: false, Quality: opt.Quality}); err != nil {
		return nil, fmt.Errorf("encode webp gagal: %w", err)
	}
	return out, nil
}

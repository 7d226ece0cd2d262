package upload

import (
	"image"
	"image/jpeg"
	"image/png"
	"os"
	"path/filepath"
	"strings"

	"github.com/chai2010/webp"
	"golang.org/x/image/draw"
	xwebp "golang.org/x/image/webp"
)

// thumbMaxEdge bounds the longer edge of generated thumbnails.
const thumbMaxEdge = 480

// ThumbName returns the thumbnail filename for a stored original.
func ThumbName(name string) string {
	ext := filepath.Ext(name)
	return strings.TrimSuffix(name, ext) + "_thumb.webp"
}

// makeThumbnail renders a WebP thumbnail next to the original. Best-effort:
// undecodable files (AVIF has no decoder here) are left without one.
func (s *Store) makeThumbnail(name string) {
	img, err := s.decode(name)
	if err != nil {
		s.log.Debugw("skipping thumbnail", "file", name, "err", err)
		return
	}

	bounds := img.Bounds()
	w, h := bounds.Dx(), bounds.Dy()
	if w > thumbMaxEdge || h > thumbMaxEdge {
		if w >= h {
			h = h * thumbMaxEdge / w
			w = thumbMaxEdge
		} else {
			w = w * thumbMaxEdge / h
			h = thumbMaxEdge
		}
		if w < 1 {
			w = 1
		}
		if h < 1 {
			h = 1
		}
		dst := image.NewRGBA(image.Rect(0, 0, w, h))
		draw.ApproxBiLinear.Scale(dst, dst.Bounds(), img, bounds, draw.Src, nil)
		img = dst
	}

	out, err := os.Create(filepath.Join(s.dir, ThumbName(name)))
	if err != nil {
		s.log.Warnw("failed to create thumbnail", "file", name, "err", err)
		return
	}
	defer out.Close()

	if err := webp.Encode(out, img, &webp.Options{Quality: 80}); err != nil {
		s.log.Warnw("failed to encode thumbnail", "file", name, "err", err)
		os.Remove(filepath.Join(s.dir, ThumbName(name)))
	}
}

func (s *Store) decode(name string) (image.Image, error) {
	f, err := os.Open(filepath.Join(s.dir, name))
	if err != nil {
		return nil, err
	}
	defer f.Close()

	switch strings.ToLower(filepath.Ext(name)) {
	case ".jpg", ".jpeg":
		return jpeg.Decode(f)
	case ".png":
		return png.Decode(f)
	case ".webp":
		return xwebp.Decode(f)
	default:
		return nil, image.ErrFormat
	}
}

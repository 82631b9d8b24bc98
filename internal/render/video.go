package render

import (
	"bytes"
	"fmt"
	"image"
	"image/jpeg"

	"github.com/icza/mjpeg"
)

// VideoWriter appends JPEG-encoded frames to an MJPEG AVI file.
type VideoWriter struct {
	aw     mjpeg.AviWriter
	buf    bytes.Buffer
	opts   jpeg.Options
	frames int
}

// NewVideoWriter creates path and prepares a w×h stream at fps frames per
// second.
func NewVideoWriter(path string, w, h, fps int) (*VideoWriter, error) {
	if fps <= 0 {
		fps = 30
	}
	aw, err := mjpeg.New(path, int32(w), int32(h), int32(fps))
	if err != nil {
		return nil, fmt.Errorf("create video %s: %w", path, err)
	}
	return &VideoWriter{aw: aw, opts: jpeg.Options{Quality: 90}}, nil
}

// WriteFrame encodes img and appends it to the stream.
func (v *VideoWriter) WriteFrame(img image.Image) error {
	v.buf.Reset()
	if err := jpeg.Encode(&v.buf, img, &v.opts); err != nil {
		return fmt.Errorf("encode frame %d: %w", v.frames, err)
	}
	if err := v.aw.AddFrame(v.buf.Bytes()); err != nil {
		return fmt.Errorf("add frame %d: %w", v.frames, err)
	}
	v.frames++
	return nil
}

// Frames returns the number of frames written so far.
func (v *VideoWriter) Frames() int { return v.frames }

// Close finalizes the AVI index.
func (v *VideoWriter) Close() error {
	return v.aw.Close()
}

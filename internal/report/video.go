package report

import (
	"bytes"
	"errors"
	"fmt"
	"image"
	"image/jpeg"

	"github.com/icza/mjpeg"
)

// ErrRecorderClosed is returned when frames are added after Close.
var ErrRecorderClosed = errors.New("report: recorder closed")

const jpegQuality = 90

// Recorder appends frames to an MJPEG AVI file.
type Recorder struct {
	aw     mjpeg.AviWriter
	buf    bytes.Buffer
	frames int
	closed bool
}

// NewRecorder creates path and prepares a w×h stream at fps frames per second.
func NewRecorder(path string, w, h, fps int) (*Recorder, error) {
	if w <= 0 || h <= 0 || fps <= 0 {
		return nil, fmt.Errorf("report: invalid video geometry %dx%d@%d", w, h, fps)
	}
	aw, err := mjpeg.New(path, int32(w), int32(h), int32(fps))
	if err != nil {
		return nil, fmt.Errorf("create video %s: %w", path, err)
	}
	return &Recorder{aw: aw}, nil
}

// AddFrame encodes img as JPEG and appends it to the stream.
func (r *Recorder) AddFrame(img image.Image) error {
	if r.closed {
		return ErrRecorderClosed
	}
	r.buf.Reset()
	if err := jpeg.Encode(&r.buf, img, &jpeg.Options{Quality: jpegQuality}); err != nil {
		return fmt.Errorf("encode frame %d: %w", r.frames, err)
	}
	if err := r.aw.AddFrame(r.buf.Bytes()); err != nil {
		return fmt.Errorf("add frame %d: %w", r.frames, err)
	}
	r.frames++
	return nil
}

// Frames reports how many frames have been written.
func (r *Recorder) Frames() int { return r.frames }

// Close finalises the AVI index. Calling it twice is a no-op.
func (r *Recorder) Close() error {
	if r.closed {
		return nil
	}
	r.closed = true
	return r.aw.Close()
}

package ratingbar

import (
	"fmt"
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
)

// Screenshot asks the host to save the next drawn frame as a PNG named after
// label. Labels queued in the same frame share one capture.
func (h *Host) Screenshot(label string) {
	h.screenshotQueue = append(h.screenshotQueue, label)
}

// flushScreenshots saves the finished frame once per queued label under
// ScreenshotDir. Problems go to the debug log; a failed capture never stops
// the game.
func (h *Host) flushScreenshots(screen *ebiten.Image) {
	labels := h.screenshotQueue
	if len(labels) == 0 {
		return
	}
	h.screenshotQueue = h.screenshotQueue[:0]

	if err := os.MkdirAll(h.ScreenshotDir, 0o755); err != nil {
		debugf("screenshot: mkdir %s: %v", h.ScreenshotDir, err)
		return
	}
	img := captureFrame(screen)
	stamp := time.Now().Format("20060102_150405")
	for _, label := range labels {
		path := filepath.Join(h.ScreenshotDir, screenshotName(stamp, label))
		if err := writePNG(path, img); err != nil {
			debugf("screenshot: %v", err)
		}
	}
}

// captureFrame copies the screen into a straight-alpha image.
func captureFrame(screen *ebiten.Image) *image.NRGBA {
	b := screen.Bounds()
	pix := make([]byte, 4*b.Dx()*b.Dy())
	screen.ReadPixels(pix)
	return unpremultiply(pix, b.Dx(), b.Dy())
}

func screenshotName(stamp, label string) string {
	return fmt.Sprintf("%s_%s.png", stamp, sanitizeLabel(label))
}

// unpremultiply turns ebiten's premultiplied RGBA bytes into an NRGBA image,
// which is what PNG stores.
func unpremultiply(pix []byte, w, h int) *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, w, h))
	n := min(len(pix), len(img.Pix)) &^ 3
	for i := 0; i < n; i += 4 {
		c := color.NRGBAModel.Convert(color.RGBA{pix[i], pix[i+1], pix[i+2], pix[i+3]}).(color.NRGBA)
		img.Pix[i], img.Pix[i+1], img.Pix[i+2], img.Pix[i+3] = c.R, c.G, c.B, c.A
	}
	return img
}

func writePNG(path string, img image.Image) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	if err := png.Encode(f, img); err != nil {
		f.Close()
		return fmt.Errorf("encode %s: %w", path, err)
	}
	return f.Close()
}

// sanitizeLabel keeps letters, digits, '-' and '.' and turns everything else
// into '_'. A blank label becomes "unlabeled".
func sanitizeLabel(label string) string {
	label = strings.TrimSpace(label)
	if label == "" {
		return "unlabeled"
	}
	return strings.Map(func(r rune) rune {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9', r == '-', r == '.':
			return r
		}
		return '_'
	}, label)
}

package scene

import (
	"fmt"
	"image"
	"image/png"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
)

// Screenshot asks for the next drawn frame to be saved as
// <ScreenshotDir>/<timestamp>_<label>.png.
func (s *Scene) Screenshot(label string) {
	s.screenshotQueue = append(s.screenshotQueue, label)
}

// flushScreenshots saves the frame once per pending label. Errors are logged;
// the game loop keeps running.
func (s *Scene) flushScreenshots(screen *ebiten.Image) {
	labels := s.screenshotQueue
	if len(labels) == 0 {
		return
	}
	s.screenshotQueue = s.screenshotQueue[:0]

	if err := os.MkdirAll(s.ScreenshotDir, 0o755); err != nil {
		s.logger.Error("screenshot: create directory", "dir", s.ScreenshotDir, "error", err)
		return
	}
	frame := straightAlpha(screen)
	prefix := time.Now().Format("20060102_150405") + "_"
	for _, label := range labels {
		path := filepath.Join(s.ScreenshotDir, prefix+sanitizeLabel(label)+".png")
		if err := writePNG(path, frame); err != nil {
			s.logger.Error("screenshot: write", "path", path, "error", err)
			continue
		}
		s.logger.Info("screenshot saved", "path", path)
	}
}

// straightAlpha copies screen into an NRGBA image, undoing Ebitengine's
// premultiplied alpha.
func straightAlpha(screen *ebiten.Image) *image.NRGBA {
	b := screen.Bounds()
	out := image.NewNRGBA(image.Rect(0, 0, b.Dx(), b.Dy()))
	screen.ReadPixels(out.Pix)
	for px := out.Pix; len(px) >= 4; px = px[4:] {
		a := int(px[3])
		if a == 0 || a == 0xff {
			continue
		}
		px[0] = uint8(min(int(px[0])*0xff/a, 0xff))
		px[1] = uint8(min(int(px[1])*0xff/a, 0xff))
		px[2] = uint8(min(int(px[2])*0xff/a, 0xff))
	}
	return out
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

// sanitizeLabel keeps ASCII letters, digits, '-' and '.', turning anything
// else into '_'. Blank labels become "unlabeled".
func sanitizeLabel(label string) string {
	label = strings.TrimSpace(label)
	if label == "" {
		return "unlabeled"
	}
	var b strings.Builder
	b.Grow(len(label))
	for _, r := range label {
		switch {
		case 'a' <= r && r <= 'z', 'A' <= r && r <= 'Z', '0' <= r && r <= '9', r == '-', r == '.':
			b.WriteRune(r)
		default:
			b.WriteByte('_')
		}
	}
	return b.String()
}

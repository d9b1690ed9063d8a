package debug

import (
	"image/png"
	"os"
	"path/filepath"
	"testing"
)

func TestCaptureFromPixels(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "shots")
	sc := NewScreenshotCapture(dir, "view")

	// 2x2 image: red, green / blue, white
	pixels := []byte{
		255, 0, 0, 255, 0, 255, 0, 255,
		0, 0, 255, 255, 255, 255, 255, 255,
	}
	path, err := sc.CaptureFromPixels(pixels, 2, 2, "0123456789abcdef", 42)
	if err != nil {
		t.Fatalf("CaptureFromPixels: %v", err)
	}
	if want := filepath.Join(dir, "view_01234567_000042.png"); path != want {
		t.Errorf("path = %s, want %s", path, want)
	}

	f, err := os.Open(path)
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()
	img, err := png.Decode(f)
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	// Rows are stored top-down, unflipped.
	r, _, b, _ := img.At(0, 1).RGBA()
	if r != 0 || b != 0xffff {
		t.Errorf("pixel (0,1) = r%d b%d, want blue", r, b)
	}
}

func TestCaptureSizeMismatch(t *testing.T) {
	sc := NewScreenshotCapture(t.TempDir(), "view")
	if _, err := sc.CaptureFromPixels(make([]byte, 10), 2, 2, "", 0); err == nil {
		t.Error("expected size mismatch error")
	}
}

func TestFilenameWithoutEpisode(t *testing.T) {
	sc := NewScreenshotCapture("", "view")
	if got := sc.Filename("", 7); got != "view_none_000007.png" {
		t.Errorf("Filename = %s", got)
	}
}

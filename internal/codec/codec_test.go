package codec

import (
	"bytes"
	"errors"
	"image"
	"image/color"
	"image/gif"
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"github.com/davesmith10/anaglyph/internal/ir"
	"github.com/google/go-cmp/cmp"
)

func gradient(w, h int) *ir.RGBImage {
	img := ir.NewRGBImage(w, h)
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			i := (y*w + x) * 3
			img.Pixels[i] = byte(x * 20)
			img.Pixels[i+1] = byte(y * 30)
			img.Pixels[i+2] = byte(x*y + 7)
		}
	}
	return img
}

func TestFormatFromPath(t *testing.T) {
	tests := []struct {
		path string
		want Format
	}{
		{"out.png", PNG},
		{"OUT.PNG", PNG},
		{"a/b/c.jpg", JPEG},
		{"c.jpeg", JPEG},
		{"c.bmp", BMP},
		{"c.tif", TIFF},
		{"c.tiff", TIFF},
	}
	for _, tt := range tests {
		got, err := FormatFromPath(tt.path)
		if err != nil || got != tt.want {
			t.Errorf("FormatFromPath(%q) = %q, %v; want %q", tt.path, got, err, tt.want)
		}
	}
	for _, bad := range []string{"out.gif", "out.webp", "noext"} {
		if _, err := FormatFromPath(bad); err == nil {
			t.Errorf("FormatFromPath(%q): expected error", bad)
		}
	}
	if f, err := ParseFormat("jpg"); err != nil || f != JPEG {
		t.Errorf("ParseFormat(jpg) = %q, %v", f, err)
	}
}

func TestLosslessRoundTrip(t *testing.T) {
	src := gradient(7, 5)
	for _, f := range []Format{PNG, BMP, TIFF} {
		t.Run(string(f), func(t *testing.T) {
			var buf bytes.Buffer
			if err := Encode(&buf, src, f, Options{}); err != nil {
				t.Fatalf("Encode: %v", err)
			}
			got, format, err := Decode(&buf)
			if err != nil {
				t.Fatalf("Decode: %v", err)
			}
			if format != string(f) {
				t.Errorf("format %q, want %q", format, f)
			}
			if diff := cmp.Diff(src, got); diff != "" {
				t.Errorf("round trip mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestJPEGRoundTripDimensions(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.jpg")
	if err := EncodeFile(path, gradient(16, 9), Options{Quality: 75}); err != nil {
		t.Fatalf("EncodeFile: %v", err)
	}
	got, format, err := DecodeFile(path)
	if err != nil {
		t.Fatalf("DecodeFile: %v", err)
	}
	if format != "jpeg" || got.Width != 16 || got.Height != 9 {
		t.Errorf("decoded %s %dx%d, want jpeg 16x9", format, got.Width, got.Height)
	}
}

func TestDecodeDropsAlpha(t *testing.T) {
	m := image.NewNRGBA(image.Rect(0, 0, 2, 1))
	m.SetNRGBA(0, 0, color.NRGBA{R: 200, G: 100, B: 50, A: 128})
	m.SetNRGBA(1, 0, color.NRGBA{R: 1, G: 2, B: 3, A: 255})
	var buf bytes.Buffer
	if err := png.Encode(&buf, m); err != nil {
		t.Fatal(err)
	}
	got, _, err := Decode(&buf)
	if err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff([]byte{200, 100, 50, 1, 2, 3}, got.Pixels); diff != "" {
		t.Errorf("pixels (-want +got):\n%s", diff)
	}
}

func TestDecodePaletted(t *testing.T) {
	pal := color.Palette{color.RGBA{0, 0, 0, 255}, color.RGBA{10, 20, 30, 255}}
	m := image.NewPaletted(image.Rect(0, 0, 3, 2), pal)
	m.SetColorIndex(1, 1, 1)
	var buf bytes.Buffer
	if err := gif.Encode(&buf, m, nil); err != nil {
		t.Fatal(err)
	}
	got, format, err := Decode(bytes.NewReader(buf.Bytes()))
	if err != nil {
		t.Fatal(err)
	}
	if format != "gif" || got.Width != 3 || got.Height != 2 {
		t.Fatalf("decoded %s %dx%d", format, got.Width, got.Height)
	}
	i := (1*3 + 1) * 3
	if diff := cmp.Diff([]byte{10, 20, 30}, got.Pixels[i:i+3]); diff != "" {
		t.Errorf("pixel (1,1) (-want +got):\n%s", diff)
	}

	info, err := GetInfo(buf.Bytes())
	if err != nil {
		t.Fatal(err)
	}
	if info.Format != "gif" || info.ColorModel != "Paletted (2 colors)" {
		t.Errorf("info = %+v", info)
	}
}

func TestDecodeErrors(t *testing.T) {
	_, _, err := DecodeFile(filepath.Join(t.TempDir(), "missing.png"))
	var derr *DecodeError
	if !errors.As(err, &derr) {
		t.Fatalf("missing file: expected *DecodeError, got %v", err)
	}
	if !errors.Is(err, os.ErrNotExist) {
		t.Errorf("missing file: expected os.ErrNotExist in chain, got %v", err)
	}

	garbage := filepath.Join(t.TempDir(), "garbage.png")
	if err := os.WriteFile(garbage, []byte("not an image"), 0644); err != nil {
		t.Fatal(err)
	}
	_, _, err = DecodeFile(garbage)
	if !errors.As(err, &derr) || derr.Path != garbage {
		t.Fatalf("garbage: expected *DecodeError for %s, got %v", garbage, err)
	}

	if _, err := GetInfo([]byte{0xFF}); !errors.As(err, &derr) {
		t.Errorf("GetInfo: expected *DecodeError, got %v", err)
	}
}

func TestEncodeErrors(t *testing.T) {
	dir := t.TempDir()
	var eerr *EncodeError

	err := EncodeFile(filepath.Join(dir, "out.gif"), gradient(2, 2), Options{})
	if !errors.As(err, &eerr) {
		t.Errorf("unsupported extension: expected *EncodeError, got %v", err)
	}

	err = EncodeFile(filepath.Join(dir, "no", "such", "dir", "out.png"), gradient(2, 2), Options{})
	if !errors.As(err, &eerr) {
		t.Errorf("unwritable path: expected *EncodeError, got %v", err)
	}

	bad := &ir.RGBImage{Width: 3, Height: 3, Pixels: make([]byte, 5)}
	err = EncodeFile(filepath.Join(dir, "bad.png"), bad, Options{})
	if !errors.As(err, &eerr) || eerr.Path == "" {
		t.Errorf("bad geometry: expected *EncodeError with path, got %v", err)
	}

	empty := &ir.RGBImage{}
	if err := Encode(&bytes.Buffer{}, empty, PNG, Options{}); !errors.As(err, &eerr) {
		t.Errorf("empty image: expected *EncodeError, got %v", err)
	}
}

func TestGetInfo(t *testing.T) {
	var buf bytes.Buffer
	if err := Encode(&buf, gradient(12, 4), PNG, Options{}); err != nil {
		t.Fatal(err)
	}
	info, err := GetInfo(buf.Bytes())
	if err != nil {
		t.Fatal(err)
	}
	if info.Format != "png" || info.Width != 12 || info.Height != 4 {
		t.Errorf("info = %+v", info)
	}
	if info.ColorModel != "RGBA" && info.ColorModel != "NRGBA" {
		t.Errorf("color model %q", info.ColorModel)
	}
}

func TestQualityClamp(t *testing.T) {
	tests := []struct{ in, want int }{{0, DefaultQuality}, {-5, DefaultQuality}, {50, 50}, {101, 100}}
	for _, tt := range tests {
		if got := (Options{Quality: tt.in}).quality(); got != tt.want {
			t.Errorf("quality(%d) = %d, want %d", tt.in, got, tt.want)
		}
	}
}

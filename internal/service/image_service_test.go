package service

import (
	"bytes"
	"context"
	"errors"
	"image"
	"image/color"
	"image/png"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

func pngBytes(t *testing.T, width, height int) []byte {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, width, height))
	for x := 0; x < width; x++ {
		for y := 0; y < height; y++ {
			img.Set(x, y, color.RGBA{R: 200, G: 120, B: 40, A: 255})
		}
	}
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		t.Fatalf("failed to encode png: %v", err)
	}
	return buf.Bytes()
}

func TestImageServiceFromReader(t *testing.T) {
	svc := NewImageService()

	data, err := svc.FromReader(bytes.NewReader(pngBytes(t, 4, 3)), "image/png")
	if err != nil {
		t.Fatalf("from reader failed: %v", err)
	}
	if !strings.HasPrefix(data.DataURI, "data:image/png;base64,") {
		t.Fatalf("expected png data uri, got %q", data.DataURI[:32])
	}
	if data.Width != 4 || data.Height != 3 {
		t.Fatalf("expected 4x3 dimensions, got %dx%d", data.Width, data.Height)
	}
}

func TestImageServiceFromReaderSniffsContentType(t *testing.T) {
	svc := NewImageService()

	data, err := svc.FromReader(bytes.NewReader(pngBytes(t, 2, 2)), "")
	if err != nil {
		t.Fatalf("from reader failed: %v", err)
	}
	if !strings.HasPrefix(data.DataURI, "data:image/png;base64,") {
		t.Fatalf("expected sniffed png data uri, got %q", data.DataURI[:32])
	}
}

func TestImageServiceFromReaderRejectsNonImage(t *testing.T) {
	svc := NewImageService()

	if _, err := svc.FromReader(strings.NewReader("plain text"), "text/plain"); !errors.Is(err, ErrImageNotImage) {
		t.Fatalf("expected ErrImageNotImage, got %v", err)
	}
}

func TestImageServiceFromReaderUndecodableKeepsZeroDimensions(t *testing.T) {
	svc := NewImageService()

	// 声明是图片但内容无法解码：仍然编码，尺寸保持 0
	data, err := svc.FromReader(strings.NewReader("not really a png"), "image/png")
	if err != nil {
		t.Fatalf("expected undecodable image to still encode, got %v", err)
	}
	if data.Width != 0 || data.Height != 0 {
		t.Fatalf("expected zero dimensions, got %dx%d", data.Width, data.Height)
	}
}

func TestImageServiceFromRemoteURL(t *testing.T) {
	raw := pngBytes(t, 5, 5)
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "image/png")
		w.Write(raw)
	}))
	defer server.Close()

	svc := NewImageService()
	data, err := svc.FromRemoteURL(context.Background(), server.URL)
	if err != nil {
		t.Fatalf("from remote url failed: %v", err)
	}
	if !strings.HasPrefix(data.DataURI, "data:image/png;base64,") {
		t.Fatalf("expected png data uri, got %q", data.DataURI[:32])
	}
	if data.Width != 5 || data.Height != 5 {
		t.Fatalf("expected 5x5 dimensions, got %dx%d", data.Width, data.Height)
	}
}

func TestImageServiceFromRemoteURLStatusFailure(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.NotFound(w, r)
	}))
	defer server.Close()

	svc := NewImageService()
	if _, err := svc.FromRemoteURL(context.Background(), server.URL); !errors.Is(err, ErrImageFetchFailed) {
		t.Fatalf("expected ErrImageFetchFailed, got %v", err)
	}
}

func TestImageServiceFromRemoteURLEmptyURL(t *testing.T) {
	svc := NewImageService()
	if _, err := svc.FromRemoteURL(context.Background(), "  "); !errors.Is(err, ErrImageFetchFailed) {
		t.Fatalf("expected ErrImageFetchFailed, got %v", err)
	}
}

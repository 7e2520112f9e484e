// Package background loads the canvas background image. Sources are local
// file paths or http(s) URLs; PNG, JPEG, WebP and BMP are accepted. Loading
// is the one asynchronous boundary in the program: the UI keeps accepting
// pointer input while the decode runs and paints the accumulated state once
// the single completion result arrives.
package background

import (
	"context"
	"fmt"
	"image"
	"image/draw"
	"net/http"
	"os"
	"strings"
	"time"

	_ "image/jpeg"
	_ "image/png"

	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/webp"
)

const fetchTimeout = 30 * time.Second

// Result is delivered exactly once per Fetch.
type Result struct {
	Source string
	Image  *image.RGBA
	Err    error
}

// Load decodes the background from source synchronously.
func Load(ctx context.Context, source string) (*image.RGBA, error) {
	if strings.HasPrefix(source, "http://") || strings.HasPrefix(source, "https://") {
		return loadURL(ctx, source)
	}
	return loadFile(source)
}

// Fetch runs Load on its own goroutine and calls deliver with the single
// result. deliver runs on the fetch goroutine; callers hand the result back
// to their event loop rather than mutating shared state in it.
func Fetch(ctx context.Context, source string, deliver func(Result)) {
	go func() {
		img, err := Load(ctx, source)
		deliver(Result{Source: source, Image: img, Err: err})
	}()
}

func loadFile(path string) (*image.RGBA, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open background %s: %w", path, err)
	}
	defer f.Close()
	img, _, err := image.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("decode background %s: %w", path, err)
	}
	return toRGBA(img), nil
}

func loadURL(ctx context.Context, url string) (*image.RGBA, error) {
	ctx, cancel := context.WithTimeout(ctx, fetchTimeout)
	defer cancel()
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("fetch background %s: %w", url, err)
	}
	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetch background %s: %w", url, err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("fetch background %s: unexpected status %s", url, resp.Status)
	}
	img, _, err := image.Decode(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("decode background %s: %w", url, err)
	}
	return toRGBA(img), nil
}

func toRGBA(img image.Image) *image.RGBA {
	if rgba, ok := img.(*image.RGBA); ok {
		return rgba
	}
	out := image.NewRGBA(image.Rect(0, 0, img.Bounds().Dx(), img.Bounds().Dy()))
	draw.Draw(out, out.Bounds(), img, img.Bounds().Min, draw.Src)
	return out
}

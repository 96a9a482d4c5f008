package assets

import (
	"bytes"
	"context"
	"fmt"
	"image"

	// Decoders for the formats the upload server hosts.
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"

	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/tiff"
)

// Size is the pixel size of an image.
type Size struct {
	Width  int
	Height int
}

// Measure decodes the image header in data and returns its dimensions.
func Measure(data []byte) (Size, error) {
	cfg, _, err := image.DecodeConfig(bytes.NewReader(data))
	if err != nil {
		return Size{}, fmt.Errorf("decoding image header: %w", err)
	}

	return Size{Width: cfg.Width, Height: cfg.Height}, nil
}

// Prober fetches remote images and measures them.
type Prober struct {
	fetcher Fetcher
}

// NewProber creates a Prober backed by fetcher.
func NewProber(fetcher Fetcher) *Prober {
	return &Prober{fetcher: fetcher}
}

// Probe downloads the image at url and returns its dimensions.
func (p *Prober) Probe(ctx context.Context, url string) (Size, error) {
	if p == nil || p.fetcher == nil {
		return Size{}, fmt.Errorf("probing %s: image fetching is disabled", url)
	}

	data, err := p.fetcher.Fetch(ctx, url)
	if err != nil {
		return Size{}, err
	}

	size, err := Measure(data)
	if err != nil {
		return Size{}, fmt.Errorf("measuring %s: %w", url, err)
	}

	return size, nil
}

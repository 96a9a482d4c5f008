package convert

import (
	"context"
	"fmt"
	"strings"

	"go.uber.org/zap"

	"wise-migrator/internal/assets"
	"wise-migrator/internal/legacy"
	"wise-migrator/internal/wise4"
)

const (
	svgDrawNodeType = "SVGDrawNode"
	svgDrawClass    = "quickdraw"
	svgDrawExt      = "sd"

	drawPromptPath  = "parameters/html"
	stampsPath      = "parameters/stamps"
	stampURLPath    = "XML_Serializer_Tag"
	backgroundsPath = "parameters/backgrounds"

	backgroundOffset = 2
)

// svgDraw converts drawing steps. Stamps and the background image are
// measured remotely; images that cannot be measured are dropped.
type svgDraw struct {
	prober Prober
	logger *zap.Logger
}

func (c *svgDraw) Convert(ctx context.Context, step *legacy.Node, counter int) (*Output, error) {
	title, err := stepTitle(step)
	if err != nil {
		return nil, err
	}

	prompt, err := requireText(step, drawPromptPath)
	if err != nil {
		return nil, err
	}

	payload := wise4.SVGDraw{
		DescriptionActive:  true,
		DescriptionDefault: "",
		Prompt:             prompt,
		SnapshotsActive:    false,
		Stamps:             c.stamps(ctx, step),
		SVGBackground:      c.background(ctx, step),
		Type:               wise4.TypeSVGDraw,
	}

	return jsonOutput(svgDrawNodeType, svgDrawClass, svgDrawExt, title, counter, payload)
}

func (c *svgDraw) stamps(ctx context.Context, step *legacy.Node) []wise4.Stamp {
	out := []wise4.Stamp{}

	for _, node := range step.SelectNodes(stampsPath) {
		tag := node.SelectSingleNode(stampURLPath)
		if tag == nil {
			continue
		}

		uri := tag.Text()

		size, ok := c.measure(ctx, uri)
		if !ok {
			continue
		}

		var title string
		if i := strings.LastIndex(uri, "/"); i >= 0 {
			title = uri[i+1:]
		}

		out = append(out, wise4.Stamp{
			Title:  title,
			URI:    uri,
			Width:  size.Width,
			Height: size.Height,
		})
	}

	return out
}

// background renders the last image listed under the step's backgrounds
// as an SVG layer, or returns "" when there is none.
func (c *svgDraw) background(ctx context.Context, step *legacy.Node) string {
	backgrounds := step.SelectSingleNode(backgroundsPath)
	if backgrounds == nil {
		return ""
	}

	var uri string
	for _, el := range backgrounds.SelectNodes(".//*") {
		if text := strings.TrimSpace(el.Text()); text != "" {
			uri = text
		}
	}

	if uri == "" {
		return ""
	}

	size, ok := c.measure(ctx, uri)
	if !ok {
		return ""
	}

	return fmt.Sprintf("<svg xmlns:xlink='http://www.w3.org/1999/xlink' xmlns='http://www.w3.org/2000/svg' "+
		"viewBox='0 0 600 450'><g><title>teacher</title><image xlink:href='%s' id='svg_1' "+
		"height='%d' width='%d' y='%d' x='%d'/></g></svg>",
		uri, size.Height, size.Width, backgroundOffset, backgroundOffset)
}

func (c *svgDraw) measure(ctx context.Context, uri string) (assets.Size, bool) {
	if c.prober == nil {
		c.logger.Debug("image measuring disabled", zap.String("url", uri))
		return assets.Size{}, false
	}

	size, err := c.prober.Probe(ctx, uri)
	if err != nil {
		c.logger.Warn("could not measure image", zap.String("url", uri), zap.Error(err))
		return assets.Size{}, false
	}

	return size, true
}

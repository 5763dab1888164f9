package handlers

import (
	"image/color"
	"net/url"

	"github.com/gofiber/fiber/v2"

	"github.com/akamhy/thumbnail-generator/internal/render"
	u "github.com/akamhy/thumbnail-generator/internal/utils"
)

// ThumbnailParams holds normalized input parameters.
type ThumbnailParams struct {
	Width   int
	Height  int
	Top     color.RGBA
	Bottom  color.RGBA
	Text    string
	RawText string
}

// ThumbnailService bundles configuration and the renderer.
type ThumbnailService struct {
	Config   *u.Config
	Renderer *render.Renderer
}

// NewThumbnailService creates a new ThumbnailService instance.
func NewThumbnailService(cfg u.Config, r *render.Renderer) *ThumbnailService {
	return &ThumbnailService{
		Config:   &cfg, // convert value to pointer
		Renderer: r,
	}
}

// HandleThumbnail renders a gradient thumbnail PNG for the requested text.
// Invalid input never fails the request: dimensions are clamped and bad
// colors fall back to random ones.
func (svc *ThumbnailService) HandleThumbnail(c *fiber.Ctx) error {
	params := extractThumbnailParams(c, *svc.Config)

	png, err := svc.Renderer.Render(params.Width, params.Height, params.Top, params.Bottom, params.Text)
	if err != nil {
		u.Error("Thumbnail generation failed", "text", params.RawText, "error", err.Error())
		return fiber.NewError(fiber.StatusInternalServerError, "Thumbnail generation failed")
	}

	requestID := c.Get("X-Request-ID")
	if requestID == "" {
		requestID = c.GetRespHeader("X-Request-ID")
	}
	u.Info("Thumbnail generated",
		"text", params.RawText,
		"width", params.Width,
		"height", params.Height,
		"request_id", requestID,
	)

	c.Set("Content-Type", "image/png")
	return c.Send(png)
}

// extractThumbnailParams applies defaults, dimension clamping, color
// fallbacks and text sanitization to the incoming request.
func extractThumbnailParams(c *fiber.Ctx, cfg u.Config) *ThumbnailParams {
	t := cfg.Thumbnail

	width := render.Normalize(c.QueryInt("width", t.DefaultWidth), t.MinWidth, t.MaxWidth)
	height := render.Normalize(c.QueryInt("height", t.DefaultHeight), t.MinHeight, t.MaxHeight)

	raw := c.Params("text")
	if unescaped, err := url.PathUnescape(raw); err == nil {
		raw = unescaped
	}

	return &ThumbnailParams{
		Width:   width,
		Height:  height,
		Top:     render.ResolveColor(c.Query("top_color")),
		Bottom:  render.ResolveColor(c.Query("bottom_color")),
		Text:    render.SanitizeText(raw),
		RawText: raw,
	}
}

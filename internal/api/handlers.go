package api

import (
	"fmt"
	"log/slog"
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	qrcode "github.com/skip2/go-qrcode"

	"github.com/youruser/stampcard/internal/card"
)

// Handlers bundles the route dependencies: the renderer, the external
// base URL for share links, and a logger.
type Handlers struct {
	renderer *card.Renderer
	hostURL  string
	log      *slog.Logger
}

func New(renderer *card.Renderer, hostURL string, log *slog.Logger) *Handlers {
	if log == nil {
		log = slog.Default()
	}
	return &Handlers{
		renderer: renderer,
		hostURL:  strings.TrimRight(hostURL, "/"),
		log:      log,
	}
}

func (h *Handlers) health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

// cardPNG serves GET /card/:visits, where the parameter is the visit
// count with an optional .png suffix. A malformed count renders the
// empty card rather than erroring: the renderer always has an answer.
func (h *Handlers) cardPNG(c *gin.Context) {
	raw := strings.TrimSuffix(c.Param("visits"), ".png")
	visits, err := strconv.Atoi(raw)
	if err != nil {
		visits = 0
	}
	c.Header("Cache-Control", "public, max-age=300")
	c.Data(http.StatusOK, card.ContentType, h.renderer.Render(visits))
}

// cardLegacy serves the old GET /card?n=<visits> form by redirecting to
// the canonical PNG route.
func (h *Handlers) cardLegacy(c *gin.Context) {
	visits, err := strconv.Atoi(c.DefaultQuery("n", "0"))
	if err != nil {
		visits = 0
	}
	c.Redirect(http.StatusFound, fmt.Sprintf("/card/%d.png", card.Clamp(visits)))
}

// qr serves GET /api/qr?visits=&size=, a QR code of the card share URL
// so the card can be pulled up by scanning in-store.
func (h *Handlers) qr(c *gin.Context) {
	visits, err := strconv.Atoi(c.DefaultQuery("visits", "0"))
	if err != nil {
		visits = 0
	}
	size := 400
	if s := c.Query("size"); s != "" {
		if v, err := strconv.Atoi(s); err == nil && v > 0 {
			size = v
		}
	}
	b, err := qrcode.Encode(h.CardURL(visits), qrcode.Medium, size)
	if err != nil {
		h.log.Error("qr encode failed", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.Data(http.StatusOK, "image/png", b)
}

// CardURL builds the externally reachable URL of the card image for a
// visit count.
func (h *Handlers) CardURL(visits int) string {
	return fmt.Sprintf("%s/card/%d.png", h.hostURL, card.Clamp(visits))
}

package api

import (
	"bytes"
	"context"
	"image"
	"image/png"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/golang/glog"
	"github.com/pkg/errors"

	"github.com/youruser/deckcodes/internal/cards"
	"github.com/youruser/deckcodes/internal/deck"
	"github.com/youruser/deckcodes/internal/deckcode"
	imagepkg "github.com/youruser/deckcodes/internal/image"
	"github.com/youruser/deckcodes/internal/store"
)

const maxQRSize = 2048

// DeckStore saves deck codes under share ids.
type DeckStore interface {
	Save(ctx context.Context, code string) (string, error)
	Load(ctx context.Context, id string) (string, error)
}

type Handler struct {
	catalog cards.Catalog
	store   DeckStore
	qrSize  int

	// Swapped out in tests.
	downloadImage func(url string) (image.Image, error)
}

// NewHandler returns a Handler. shares may be nil, which disables sharing.
func NewHandler(catalog cards.Catalog, shares DeckStore, qrSize int) *Handler {
	return &Handler{
		catalog:       catalog,
		store:         shares,
		qrSize:        qrSize,
		downloadImage: imagepkg.DownloadImage,
	}
}

// statusFor maps an error to the HTTP status it should be reported with.
func statusFor(err error) int {
	switch errors.Cause(err) {
	case cards.ErrInvalidCardCode, cards.ErrUnknownFaction,
		deckcode.ErrInvalidCode, deckcode.ErrInvalidCount,
		deckcode.ErrUnknownFormat, deckcode.ErrUnknownVersion:
		return http.StatusBadRequest
	case store.ErrNotFound:
		return http.StatusNotFound
	}
	return http.StatusInternalServerError
}

func fail(c *gin.Context, err error) {
	status := statusFor(err)
	if status == http.StatusInternalServerError {
		_ = c.Error(err)
	}
	c.JSON(status, gin.H{"error": err.Error()})
}

func (h *Handler) health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok", "catalog": h.catalog.Len()})
}

func (h *Handler) encode(c *gin.Context) {
	var req struct {
		Cards []cards.CardCodeAndCount `json:"cards" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	code, err := deckcode.Encode(deck.FromSlice(req.Cards))
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"code": code})
}

func (h *Handler) decode(c *gin.Context) {
	d, err := deckcode.Decode(c.Query("code"))
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"count": d.Len(), "cards": d})
}

func (h *Handler) text(c *gin.Context) {
	d, err := deckcode.Decode(c.Query("code"))
	if err != nil {
		fail(c, err)
		return
	}
	c.String(http.StatusOK, deck.ExportText(c.Query("name"), d, h.catalog))
}

// qr returns a PNG of a QR code for the "text" query param.
func (h *Handler) qr(c *gin.Context) {
	text := c.Query("text")
	if text == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "missing text"})
		return
	}
	size := h.qrSize
	if sizeStr := c.Query("size"); sizeStr != "" {
		v, err := strconv.Atoi(sizeStr)
		if err != nil || v <= 0 || v > maxQRSize {
			c.JSON(http.StatusBadRequest, gin.H{"error": "bad size"})
			return
		}
		size = v
	}
	b, err := imagepkg.GenerateQRPNG(text, size)
	if err != nil {
		fail(c, err)
		return
	}
	c.Data(http.StatusOK, "image/png", b)
}

// deckImage renders the deck's card art in deck order, optionally with a QR
// of the code. Art that is missing from the catalog or fails to download is
// drawn as a placeholder.
func (h *Handler) deckImage(c *gin.Context) {
	var req struct {
		Code string `json:"code" binding:"required"`
		QR   bool   `json:"qr"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	d, err := deckcode.Decode(req.Code)
	if err != nil {
		fail(c, err)
		return
	}

	cardImgs := make([]image.Image, 0, d.Len())
	counts := make([]int, 0, d.Len())
	for _, e := range d.All() {
		counts = append(counts, e.Count)
		info, ok := h.catalog.Lookup(e.Card)
		if !ok || info.ImageURL == "" {
			glog.V(1).Infof("no art for %s", e.Card)
			cardImgs = append(cardImgs, nil)
			continue
		}
		img, err := h.downloadImage(info.ImageURL)
		if err != nil {
			glog.Warningf("card art download for %s: %v", e.Card, err)
		}
		cardImgs = append(cardImgs, img)
	}

	var qrImg image.Image
	if req.QR {
		qrImg, err = imagepkg.GenerateQRImage(req.Code, h.qrSize)
		if err != nil {
			fail(c, err)
			return
		}
	}

	out := imagepkg.ComposeDeckImage(cardImgs, counts, qrImg)
	buf := new(bytes.Buffer)
	if err := png.Encode(buf, out); err != nil {
		fail(c, err)
		return
	}
	c.Data(http.StatusOK, "image/png", buf.Bytes())
}

func (h *Handler) filter(c *gin.Context) {
	var opt cards.FilterOptions
	if err := c.ShouldBindJSON(&opt); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	out := cards.Filter(h.catalog.All(), opt)
	c.JSON(http.StatusOK, gin.H{"count": len(out), "cards": out})
}

func (h *Handler) share(c *gin.Context) {
	var req struct {
		Code string `json:"code" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if _, err := deckcode.Decode(req.Code); err != nil {
		fail(c, err)
		return
	}
	id, err := h.store.Save(c.Request.Context(), req.Code)
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"id": id})
}

func (h *Handler) loadShare(c *gin.Context) {
	code, err := h.store.Load(c.Request.Context(), c.Param("id"))
	if err != nil {
		fail(c, err)
		return
	}
	d, err := deckcode.Decode(code)
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"code": code, "cards": d})
}

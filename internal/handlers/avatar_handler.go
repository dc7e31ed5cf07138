package handlers

import (
	"bytes"
	"image"
	_ "image/jpeg"
	_ "image/png"
	"net/http"

	"github.com/chai2010/webp"
	"github.com/gin-gonic/gin"
	"golang.org/x/image/draw"
	"gorm.io/gorm"

	"github.com/navalha-app/booking-api/internal/audit"
	"github.com/navalha-app/booking-api/internal/cache"
	"github.com/navalha-app/booking-api/internal/httperr"
	"github.com/navalha-app/booking-api/internal/infra/storage"
	"github.com/navalha-app/booking-api/internal/middleware"
	"github.com/navalha-app/booking-api/internal/models"
)

const (
	avatarMaxUploadBytes = 5 << 20
	avatarMaxSize        = 512
	avatarWebpQuality    = 80
)

type AvatarHandler struct {
	db       *gorm.DB
	uploader *storage.S3Uploader
	catalog  *cache.Catalog
	audit    *audit.Dispatcher
}

func NewAvatarHandler(
	db *gorm.DB,
	uploader *storage.S3Uploader,
	catalog *cache.Catalog,
	audit *audit.Dispatcher,
) *AvatarHandler {
	return &AvatarHandler{
		db:       db,
		uploader: uploader,
		catalog:  catalog,
		audit:    audit,
	}
}

// Upload recebe a foto do barbeiro, reduz para no máximo 512px,
// converte para webp e sobe para o bucket.
func (h *AvatarHandler) Upload(c *gin.Context) {
	barberID := c.MustGet(middleware.ContextBarberID).(string)

	file, err := c.FormFile("avatar")
	if err != nil {
		httperr.BadRequest(c, "missing_file", "Arquivo de imagem obrigatório.")
		return
	}
	if file.Size > avatarMaxUploadBytes {
		httperr.BadRequest(c, "file_too_large", "Imagem acima de 5MB.")
		return
	}

	src, err := file.Open()
	if err != nil {
		httperr.Internal(c, "failed_to_read_file", "Erro ao ler imagem.")
		return
	}
	defer src.Close()

	img, _, err := image.Decode(src)
	if err != nil {
		httperr.BadRequest(c, "invalid_image", "Imagem inválida (use JPEG ou PNG).")
		return
	}

	img = shrink(img, avatarMaxSize)

	var buf bytes.Buffer
	if err := webp.Encode(&buf, img, &webp.Options{Quality: avatarWebpQuality}); err != nil {
		httperr.Internal(c, "failed_to_encode", "Erro ao converter imagem.")
		return
	}

	key := "avatars/" + barberID + ".webp"
	url, err := h.uploader.Put(c.Request.Context(), key, "image/webp", &buf)
	if err != nil {
		httperr.Internal(c, "failed_to_upload", "Erro ao enviar imagem.")
		return
	}

	if err := h.db.
		Model(&models.Barber{}).
		Where("id = ?", barberID).
		Update("avatar", url).Error; err != nil {
		httperr.Internal(c, "failed_to_save_avatar", "Erro ao salvar avatar.")
		return
	}

	h.catalog.Invalidate(c.Request.Context())

	h.audit.Dispatch(audit.Event{
		BarberID: &barberID,
		Action:   "avatar_updated",
		Entity:   "barber",
		EntityID: &barberID,
	})

	c.JSON(http.StatusOK, gin.H{"avatar": url})
}

func shrink(img image.Image, max int) image.Image {
	b := img.Bounds()
	w, h := b.Dx(), b.Dy()
	if w <= max && h <= max {
		return img
	}

	if w > h {
		h = h * max / w
		w = max
	} else {
		w = w * max / h
		h = max
	}

	dst := image.NewRGBA(image.Rect(0, 0, w, h))
	draw.CatmullRom.Scale(dst, dst.Bounds(), img, b, draw.Over, nil)
	return dst
}

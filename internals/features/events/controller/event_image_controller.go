package controller

import (
	"bytes"
	"io"
	"log"
	"strconv"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	helper "eventku_backend/internals/helpers"

	"eventku_backend/internals/features/events/model"
)

// EventImageController: upload banner/header (multipart) → konversi WebP →
// simpan di event_images, lalu dilayani kembali per id.
type EventImageController struct {
	DB *gorm.DB
}

func NewEventImageController(db *gorm.DB) *EventImageController {
	return &EventImageController{DB: db}
}

// 🟢 POST /api/events/images  (multipart field "image")
func (ctrl *EventImageController) UploadImage(c *fiber.Ctx) error {
	fileHeader, err := c.FormFile("image")
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "File gambar wajib dikirim di field 'image'")
	}

	src, err := fileHeader.Open()
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Gagal membuka file gambar")
	}
	defer src.Close()

	buf := new(bytes.Buffer)
	if _, err := io.Copy(buf, src); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Gagal membaca file gambar")
	}

	img, err := helper.DecodeUploadedImage(buf.Bytes(), fileHeader.Filename)
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Format gambar tidak didukung")
	}

	webpBytes, err := helper.ConvertToWebP(img)
	if err != nil {
		log.Printf("[ERROR] Konversi WebP gagal: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengonversi gambar")
	}

	record := &model.EventImageModel{
		EventImageFilename: fileHeader.Filename,
		EventImageData:     webpBytes,
	}
	if err := ctrl.DB.Create(record).Error; err != nil {
		log.Printf("[ERROR] Gagal menyimpan gambar: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menyimpan gambar")
	}

	return helper.JsonCreated(c, "Gambar berhasil diupload", fiber.Map{
		"event_image_id": record.EventImageID,
		"url":            "/api/events/images/" + strconv.FormatUint(uint64(record.EventImageID), 10),
	})
}

// 🟢 GET /api/events/images/:id — serve WebP langsung dari DB
func (ctrl *EventImageController) GetImage(c *fiber.Ctx) error {
	id := c.Params("id")

	var record model.EventImageModel
	if err := ctrl.DB.First(&record, "event_image_id = ?", id).Error; err != nil {
		return helper.JsonError(c, fiber.StatusNotFound, "Gambar tidak ditemukan")
	}

	c.Set(fiber.HeaderContentType, "image/webp")
	c.Set(fiber.HeaderCacheControl, "public, max-age=86400")
	return c.Send(record.EventImageData)
}

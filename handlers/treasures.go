package handlers

import (
	"context"
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"findly-api/logger"
	"findly-api/services"
	"findly-api/utils"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

const maxImageSize = 10 << 20

// ImageStore puts an object in the bucket and returns its public URL.
type ImageStore interface {
	Upload(ctx context.Context, key string, body io.Reader, size int64, contentType string) (string, error)
}

type treasureRequest struct {
	Name        string `json:"name" validate:"required,max=40"`
	Description string `json:"desc" validate:"required"`
	URL         string `json:"url" validate:"required,url"`
}

func (r *treasureRequest) input() services.TreasureInput {
	return services.TreasureInput{Name: r.Name, Description: r.Description, URL: r.URL}
}

func SetupTreasureRoutes(router fiber.Router, treasures *services.TreasureService, images ImageStore) {
	r := router.Group("/treasures")
	r.Get("/", listHandler(treasures.ListAll))
	r.Get("/:id", getHandler(treasures.GetByID))
	r.Post("/", createHandler(treasures.Create, (*treasureRequest).input))
	r.Put("/:id", updateHandler("treasure", treasures.Update, (*treasureRequest).input))
	r.Delete("/:id", deleteHandler("treasure", treasures.Delete))

	if images != nil {
		r.Post("/:id/image", uploadTreasureImage(treasures, images))
	}
}

func uploadTreasureImage(treasures *services.TreasureService, images ImageStore) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, err := paramID(c)
		if err != nil {
			return err
		}
		ctx := c.UserContext()

		treasure, err := treasures.GetByID(ctx, id)
		if err != nil {
			return err
		}

		file, err := c.FormFile("image")
		if err != nil {
			return fieldError("image", "image file is required")
		}
		if file.Size > maxImageSize {
			return fieldError("image", fmt.Sprintf("image must not exceed %d MB", maxImageSize>>20))
		}
		contentType := file.Header.Get("Content-Type")
		if !strings.HasPrefix(contentType, "image/") {
			return fieldError("image", "file must be an image")
		}

		src, err := file.Open()
		if err != nil {
			return fmt.Errorf("open upload: %w", err)
		}
		defer src.Close()

		key := utils.ObjectKey("treasures", treasure.Name, filepath.Ext(file.Filename))
		url, err := images.Upload(ctx, key, src, file.Size, contentType)
		if err != nil {
			return fmt.Errorf("upload treasure %d image: %w", id, err)
		}

		ok, err := treasures.SetURL(ctx, id, url)
		if err != nil {
			return err
		}
		if !ok {
			// Deleted between the lookup and the write; the object is orphaned.
			logger.L().Warn("treasure vanished during image upload", zap.Int64("treasure_id", id), zap.String("key", key))
			return sendMessage(c, fiber.StatusNotFound, "Treasure not found")
		}

		updated, err := treasures.GetByID(ctx, id)
		if err != nil {
			return err
		}
		return c.JSON(updated)
	}
}

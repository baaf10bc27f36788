package imagenes

import (
	"io"
	"net/http"
	"slices"

	"github.com/gofiber/fiber/v2"
)

// TamanoMaximo límite de subida para imágenes de sedes.
const TamanoMaximo = 5 * 1024 * 1024 // 5MB

var tiposPermitidos = []string{
	"image/jpeg",
	"image/png",
	"image/gif",
	"image/webp",
}

// ValidarImagen valida el archivo del campo multipart indicado antes de que
// la petición llegue al handler. El tipo se detecta leyendo los primeros
// bytes del contenido, no por la extensión ni el Content-Type declarado.
// Si el campo no viene, la petición sigue su curso: la imagen es opcional.
func ValidarImagen(campo string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		fileHeader, err := c.FormFile(campo)
		if err != nil {
			return c.Next()
		}

		if fileHeader.Size > TamanoMaximo {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"message": "El archivo es demasiado grande. Tamaño máximo: 5MB",
				"codigo":  "LIMIT_FILE_SIZE",
			})
		}

		f, err := fileHeader.Open()
		if err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "No se pudo leer el archivo")
		}
		defer f.Close()

		buf := make([]byte, 512)
		n, err := f.Read(buf)
		if err != nil && err != io.EOF {
			return fiber.NewError(fiber.StatusBadRequest, "No se pudo leer el archivo")
		}

		tipo := http.DetectContentType(buf[:n])
		if !slices.Contains(tiposPermitidos, tipo) {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"message":         "Tipo de archivo no permitido: " + tipo + ". Solo se aceptan: JPG, PNG, GIF, WebP",
				"codigo":          "INVALID_FILE_TYPE",
				"tiposPermitidos": tiposPermitidos,
			})
		}

		return c.Next()
	}
}

package sede

import (
	"fmt"
	"strings"

	"deliciasoft-backend/internal/database"
	"deliciasoft-backend/internal/imagenes"
	"deliciasoft-backend/internal/models"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog/log"
)

type SedeResponse struct {
	ID        uint    `json:"idsede"`
	Nombre    string  `json:"nombre"`
	Telefono  string  `json:"telefono"`
	Direccion string  `json:"direccion"`
	Estado    bool    `json:"estado"`
	ImagenURL *string `json:"imagenUrl"`
}

func toResponse(s models.Sede) SedeResponse {
	return SedeResponse{
		ID:        s.ID,
		Nombre:    s.Nombre,
		Telefono:  s.Telefono,
		Direccion: s.Direccion,
		Estado:    s.Estado,
		ImagenURL: s.ImagenURL,
	}
}

func ListSedesHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var sedes []models.Sede
		if err := database.DB.Order("id DESC").Find(&sedes).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "No se pudieron obtener las sedes")
		}

		res := make([]SedeResponse, 0, len(sedes))
		for _, s := range sedes {
			res = append(res, toResponse(s))
		}
		return c.JSON(res)
	}
}

func GetSedeHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, err := c.ParamsInt("id")
		if err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "ID inválido. Debe ser un número.")
		}

		var sede models.Sede
		if err := database.DB.First(&sede, id).Error; err != nil {
			return fiber.NewError(fiber.StatusNotFound, fmt.Sprintf("Sede no encontrada con ID: %d", id))
		}
		return c.JSON(toResponse(sede))
	}
}

func CreateSedeHandler(up imagenes.Uploader) fiber.Handler {
	return func(c *fiber.Ctx) error {
		input := SedeInput{
			Nombre:    strings.TrimSpace(c.FormValue("nombre")),
			Telefono:  LimpiarTelefono(c.FormValue("telefono")),
			Direccion: strings.TrimSpace(c.FormValue("direccion")),
		}
		if err := Validar(input); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, err.Error())
		}

		sede := models.Sede{
			Nombre:    input.Nombre,
			Telefono:  input.Telefono,
			Direccion: input.Direccion,
			Estado:    parseEstado(c.FormValue("estado")),
			ImagenURL: subirImagen(c, up),
		}

		if err := database.DB.Create(&sede).Error; err != nil {
			if database.EsDuplicado(err) {
				return fiber.NewError(fiber.StatusBadRequest, "Ya existe una sede con estos datos")
			}
			return fiber.NewError(fiber.StatusInternalServerError, "No se pudo crear la sede: "+err.Error())
		}

		return c.Status(fiber.StatusCreated).JSON(toResponse(sede))
	}
}

func UpdateSedeHandler(up imagenes.Uploader) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, err := c.ParamsInt("id")
		if err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "ID inválido. Debe ser un número.")
		}

		var sede models.Sede
		if err := database.DB.First(&sede, id).Error; err != nil {
			return fiber.NewError(fiber.StatusNotFound, fmt.Sprintf("Sede no encontrada con ID: %d", id))
		}

		input := SedeInput{
			Nombre:    strings.TrimSpace(c.FormValue("nombre")),
			Telefono:  LimpiarTelefono(c.FormValue("telefono")),
			Direccion: strings.TrimSpace(c.FormValue("direccion")),
		}
		if err := Validar(input); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, err.Error())
		}

		sede.Nombre = input.Nombre
		sede.Telefono = input.Telefono
		sede.Direccion = input.Direccion
		sede.Estado = parseEstado(c.FormValue("estado"))

		// Si no llega imagen nueva se conserva la URL anterior.
		if url := subirImagen(c, up); url != nil {
			sede.ImagenURL = url
		}

		if err := database.DB.Save(&sede).Error; err != nil {
			if database.EsDuplicado(err) {
				return fiber.NewError(fiber.StatusBadRequest, "Ya existe una sede con estos datos")
			}
			return fiber.NewError(fiber.StatusInternalServerError, "No se pudo actualizar la sede: "+err.Error())
		}

		return c.JSON(toResponse(sede))
	}
}

func DeleteSedeHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, err := c.ParamsInt("id")
		if err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "ID inválido. Debe ser un número.")
		}

		var sede models.Sede
		if err := database.DB.First(&sede, id).Error; err != nil {
			return fiber.NewError(fiber.StatusNotFound, fmt.Sprintf("Sede no encontrada con ID: %d", id))
		}

		var inventarios, ventas int64
		database.DB.Model(&models.InventarioSede{}).Where("sede_id = ?", sede.ID).Count(&inventarios)
		database.DB.Model(&models.Venta{}).Where("sede_id = ?", sede.ID).Count(&ventas)
		if inventarios+ventas > 0 {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"message": "No se puede eliminar la sede porque tiene registros asociados (inventarios o ventas)",
				"codigo":  "REGISTROS_ASOCIADOS",
			})
		}

		if err := database.DB.Delete(&sede).Error; err != nil {
			if database.EsClaveForanea(err) {
				return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
					"message": "No se puede eliminar la sede porque tiene registros asociados (inventarios o ventas)",
					"codigo":  "REGISTROS_ASOCIADOS",
				})
			}
			return fiber.NewError(fiber.StatusInternalServerError, "No se pudo eliminar la sede: "+err.Error())
		}

		return c.JSON(fiber.Map{
			"message": "Sede eliminada correctamente",
			"sedeEliminada": fiber.Map{
				"id":     sede.ID,
				"nombre": sede.Nombre,
			},
		})
	}
}

func parseEstado(v string) bool {
	return v == "true" || v == "1"
}

// subirImagen sube el archivo del campo "imagen" si viene en la petición.
// Un fallo de subida no aborta la operación: la sede se guarda sin imagen
// nueva y el error queda en el log.
func subirImagen(c *fiber.Ctx, up imagenes.Uploader) *string {
	fileHeader, err := c.FormFile("imagen")
	if err != nil {
		return nil
	}
	if up == nil {
		log.Warn().Msg("subida de imagen omitida: Cloudinary no está configurado")
		return nil
	}

	f, err := fileHeader.Open()
	if err != nil {
		log.Warn().Err(err).Msg("no se pudo abrir la imagen recibida")
		return nil
	}
	defer f.Close()

	url, err := up.Subir(c.UserContext(), f)
	if err != nil {
		log.Warn().Err(err).Msg("fallo la subida a Cloudinary, la operación continúa sin imagen nueva")
		return nil
	}
	return &url
}

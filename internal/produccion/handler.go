package produccion

import (
	"fmt"
	"strings"
	"time"

	"deliciasoft-backend/internal/database"
	"deliciasoft-backend/internal/models"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"
)

type ProduccionResponse struct {
	ID               uint               `json:"idproduccion"`
	TipoProduccion   string             `json:"tipoproduccion"`
	NombreProduccion string             `json:"nombreproduccion"`
	FechaPedido      time.Time          `json:"fechapedido"`
	FechaEntrega     *time.Time         `json:"fechaentrega"`
	NumeroPedido     string             `json:"numeropedido"`
	EstadoProduccion int                `json:"estadoproduccion"`
	EstadoPedido     *int               `json:"estadopedido"`
	Detalles         []ProductoAgrupado `json:"detalleproduccion"`
	SedesDisponibles []string           `json:"sedesDisponibles,omitempty"`
}

type ProductoRequest struct {
	ID                uint               `json:"id"`
	Cantidad          *float64           `json:"cantidad"`
	Sede              *string            `json:"sede"`
	CantidadesPorSede map[string]float64 `json:"cantidadesPorSede"`
}

type CreateProduccionRequest struct {
	TipoProduccion   string            `json:"tipoproduccion"`
	NombreProduccion string            `json:"nombreproduccion"`
	FechaPedido      string            `json:"fechapedido"`
	FechaEntrega     string            `json:"fechaentrega"`
	Productos        []ProductoRequest `json:"productos"`
}

func toResponse(p models.Produccion, sedesDisponibles []string) ProduccionResponse {
	return ProduccionResponse{
		ID:               p.ID,
		TipoProduccion:   p.TipoProduccion,
		NombreProduccion: p.NombreProduccion,
		FechaPedido:      p.FechaPedido,
		FechaEntrega:     p.FechaEntrega,
		NumeroPedido:     p.NumeroPedido,
		EstadoProduccion: p.EstadoProduccion,
		EstadoPedido:     p.EstadoPedido,
		Detalles:         AgruparDetalles(p.Detalles),
		SedesDisponibles: sedesDisponibles,
	}
}

// conDetallesCompletos arma el join profundo: producción → detalles →
// producto → imagen y receta → detalles de receta → insumo y unidad.
func conDetallesCompletos(db *gorm.DB) *gorm.DB {
	return db.
		Preload("Detalles.Producto.Imagen").
		Preload("Detalles.Producto.Receta.Detalles.Insumo").
		Preload("Detalles.Producto.Receta.Detalles.Unidad")
}

func ListProduccionesHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var producciones []models.Produccion
		if err := conDetallesCompletos(database.DB).Order("id DESC").Find(&producciones).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "No se pudieron obtener las producciones")
		}

		sedes := nombresSedesActivas(database.DB)
		res := make([]ProduccionResponse, 0, len(producciones))
		for _, p := range producciones {
			res = append(res, toResponse(p, sedes))
		}
		return c.JSON(res)
	}
}

func GetProduccionHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, err := c.ParamsInt("id")
		if err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "ID inválido. Debe ser un número.")
		}

		var produccion models.Produccion
		if err := database.DB.First(&produccion, id).Error; err != nil {
			return fiber.NewError(fiber.StatusNotFound, "Producción no encontrada")
		}
		return c.JSON(toResponse(produccion, nil))
	}
}

func CreateProduccionHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var body CreateProduccionRequest
		if err := c.BodyParser(&body); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "Cuerpo de la petición inválido")
		}

		tipo := strings.ToLower(strings.TrimSpace(body.TipoProduccion))
		nombre := strings.TrimSpace(body.NombreProduccion)

		if tipo == "" || nombre == "" {
			return fiber.NewError(fiber.StatusBadRequest, "Datos incompletos: tipo y nombre de producción son obligatorios")
		}
		if tipo != models.TipoFabrica && tipo != models.TipoPedido {
			return fiber.NewError(fiber.StatusBadRequest, "Tipo de producción inválido. Debe ser 'fabrica' o 'pedido'")
		}

		fechaPedido, err := parseFecha(body.FechaPedido)
		if err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "Fecha de pedido inválida")
		}
		fechaEntrega, err := parseFecha(body.FechaEntrega)
		if err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "Fecha de entrega inválida")
		}

		sedesConocidas := conjuntoSedesActivas(database.DB)

		detalles, err := armarDetalles(tipo, body.Productos, sedesConocidas)
		if err != nil {
			return fiber.NewError(fiber.StatusBadRequest, err.Error())
		}

		produccion := models.Produccion{
			TipoProduccion:   tipo,
			NombreProduccion: nombre,
			FechaPedido:      time.Now(),
			EstadoProduccion: 2,
		}
		if fechaPedido != nil {
			produccion.FechaPedido = *fechaPedido
		}
		if tipo == models.TipoFabrica {
			produccion.EstadoProduccion = 1
		}
		if tipo == models.TipoPedido {
			estado := 1
			produccion.EstadoPedido = &estado
			produccion.FechaEntrega = fechaEntrega
			produccion.NumeroPedido = SiguienteNumeroPedido(database.DB)
		}

		// Producción y detalles se insertan en una sola transacción: o queda
		// todo visible o no queda nada.
		err = database.DB.Transaction(func(tx *gorm.DB) error {
			if err := tx.Create(&produccion).Error; err != nil {
				return err
			}
			if len(detalles) > 0 {
				for i := range detalles {
					detalles[i].ProduccionID = produccion.ID
				}
				if err := tx.Create(&detalles).Error; err != nil {
					return err
				}
			}
			return nil
		})
		if err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "No se pudo crear la producción: "+err.Error())
		}

		var creada models.Produccion
		if err := conDetallesCompletos(database.DB).First(&creada, produccion.ID).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "No se pudo leer la producción creada")
		}

		return c.Status(fiber.StatusCreated).JSON(toResponse(creada, nombresSedesActivas(database.DB)))
	}
}

func DeleteProduccionHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, err := c.ParamsInt("id")
		if err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "ID inválido. Debe ser un número.")
		}

		var produccion models.Produccion
		if err := database.DB.First(&produccion, id).Error; err != nil {
			return fiber.NewError(fiber.StatusNotFound, "Producción no encontrada")
		}

		err = database.DB.Transaction(func(tx *gorm.DB) error {
			if err := tx.Where("produccion_id = ?", produccion.ID).Delete(&models.DetalleProduccion{}).Error; err != nil {
				return err
			}
			return tx.Delete(&produccion).Error
		})
		if err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "No se pudo eliminar la producción: "+err.Error())
		}

		return c.JSON(fiber.Map{"message": "Producción eliminada correctamente"})
	}
}

// armarDetalles convierte la lista de productos del request en líneas de
// detalle. Para fábrica se crea una línea por cada sede con cantidad
// positiva; para pedido una sola línea con cantidad por defecto 1. Las sedes
// nombradas deben existir y estar activas.
func armarDetalles(tipo string, productos []ProductoRequest, sedesConocidas map[string]bool) ([]models.DetalleProduccion, error) {
	detalles := make([]models.DetalleProduccion, 0, len(productos))

	for _, p := range productos {
		if tipo == models.TipoFabrica && len(p.CantidadesPorSede) > 0 {
			for nombreSede, cantidad := range p.CantidadesPorSede {
				if cantidad <= 0 {
					continue
				}
				if sedesConocidas != nil && !sedesConocidas[nombreSede] {
					return nil, fmt.Errorf("Sede desconocida o inactiva: %s", nombreSede)
				}
				cant := cantidad
				sede := nombreSede
				detalles = append(detalles, models.DetalleProduccion{
					ProductoID: p.ID,
					Cantidad:   &cant,
					Sede:       &sede,
				})
			}
			continue
		}

		cant := 1.0
		if p.Cantidad != nil {
			cant = *p.Cantidad
		}
		detalle := models.DetalleProduccion{ProductoID: p.ID, Cantidad: &cant}
		if p.Sede != nil && *p.Sede != "" {
			if sedesConocidas != nil && !sedesConocidas[*p.Sede] {
				return nil, fmt.Errorf("Sede desconocida o inactiva: %s", *p.Sede)
			}
			detalle.Sede = p.Sede
		}
		detalles = append(detalles, detalle)
	}

	return detalles, nil
}

func parseFecha(s string) (*time.Time, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil, nil
	}
	for _, layout := range []string{time.RFC3339, "2006-01-02"} {
		if t, err := time.Parse(layout, s); err == nil {
			return &t, nil
		}
	}
	return nil, fmt.Errorf("fecha inválida: %s", s)
}

// nombresSedesActivas lista los nombres de sedes activas para el selector
// del frontend. Un fallo de consulta degrada a lista vacía.
func nombresSedesActivas(db *gorm.DB) []string {
	var sedes []models.Sede
	if err := db.Where("estado = ?", true).Order("nombre ASC").Find(&sedes).Error; err != nil {
		log.Warn().Err(err).Msg("no se pudieron consultar las sedes activas")
		return []string{}
	}

	nombres := make([]string, 0, len(sedes))
	for _, s := range sedes {
		nombres = append(nombres, s.Nombre)
	}
	return nombres
}

// conjuntoSedesActivas devuelve el set de sedes activas para validar las
// sedes nombradas en un request. Si la consulta falla devuelve nil y la
// validación se omite en lugar de bloquear la creación.
func conjuntoSedesActivas(db *gorm.DB) map[string]bool {
	var sedes []models.Sede
	if err := db.Where("estado = ?", true).Find(&sedes).Error; err != nil {
		log.Warn().Err(err).Msg("no se pudieron consultar las sedes activas, se omite la validación de sedes")
		return nil
	}

	conjunto := make(map[string]bool, len(sedes))
	for _, s := range sedes {
		conjunto[s.Nombre] = true
	}
	return conjunto
}

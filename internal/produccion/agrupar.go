package produccion

import "deliciasoft-backend/internal/models"

type InsumoAgrupado struct {
	ID       uint    `json:"id"`
	Nombre   string  `json:"nombre"`
	Cantidad float64 `json:"cantidad"`
	Unidad   string  `json:"unidad"`
}

type RecetaAgrupada struct {
	ID               uint             `json:"id"`
	Nombre           string           `json:"nombre"`
	Especificaciones string           `json:"especificaciones"`
	Insumos          []InsumoAgrupado `json:"insumos"`
}

// ProductoAgrupado es la vista por producto que consume el frontend: total
// de unidades, desglose por sede y la receta asociada.
type ProductoAgrupado struct {
	ID                uint               `json:"id"`
	Nombre            string             `json:"nombre"`
	Imagen            *string            `json:"imagen"`
	CantidadTotal     float64            `json:"cantidadTotal"`
	CantidadesPorSede map[string]float64 `json:"cantidadesPorSede"`
	Receta            *RecetaAgrupada    `json:"receta"`
	Insumos           []InsumoAgrupado   `json:"insumos"`
}

// AgruparDetalles colapsa las líneas planas de una producción en una vista
// por producto. Se recorre la lista una sola vez: la primera aparición de un
// producto fija su nombre, imagen y receta (todas las líneas de un producto
// comparten el mismo registro), y cada aparición suma su cantidad al total y
// al balde de su sede. Cantidades nulas cuentan como cero. Una línea sin
// sede suma al total pero a ningún balde, así que el total puede superar la
// suma de los baldes. El orden de salida sigue la primera aparición.
func AgruparDetalles(detalles []models.DetalleProduccion) []ProductoAgrupado {
	porProducto := make(map[uint]*ProductoAgrupado)
	orden := make([]uint, 0, len(detalles))

	for _, d := range detalles {
		prod, ok := porProducto[d.ProductoID]
		if !ok {
			prod = &ProductoAgrupado{
				ID:                d.ProductoID,
				CantidadesPorSede: make(map[string]float64),
				Insumos:           []InsumoAgrupado{},
			}
			if d.Producto != nil {
				prod.Nombre = d.Producto.Nombre
				if d.Producto.Imagen != nil {
					url := d.Producto.Imagen.URL
					prod.Imagen = &url
				}
				if d.Producto.Receta != nil {
					insumos := agruparInsumos(d.Producto.Receta.Detalles)
					prod.Receta = &RecetaAgrupada{
						ID:               d.Producto.Receta.ID,
						Nombre:           d.Producto.Receta.Nombre,
						Especificaciones: d.Producto.Receta.Especificaciones,
						Insumos:          insumos,
					}
					prod.Insumos = insumos
				}
			}
			porProducto[d.ProductoID] = prod
			orden = append(orden, d.ProductoID)
		}

		var cantidad float64
		if d.Cantidad != nil {
			cantidad = *d.Cantidad
		}
		prod.CantidadTotal += cantidad

		if d.Sede != nil && *d.Sede != "" {
			prod.CantidadesPorSede[*d.Sede] += cantidad
		}
	}

	res := make([]ProductoAgrupado, 0, len(orden))
	for _, id := range orden {
		res = append(res, *porProducto[id])
	}
	return res
}

func agruparInsumos(detalles []models.DetalleReceta) []InsumoAgrupado {
	insumos := make([]InsumoAgrupado, 0, len(detalles))
	for _, dr := range detalles {
		ins := InsumoAgrupado{
			ID:     dr.InsumoID,
			Nombre: "Sin nombre",
			Unidad: "unidad",
		}
		if dr.Insumo != nil {
			ins.Nombre = dr.Insumo.Nombre
		}
		if dr.Cantidad != nil {
			ins.Cantidad = *dr.Cantidad
		}
		if dr.Unidad != nil {
			ins.Unidad = dr.Unidad.Unidad
		}
		insumos = append(insumos, ins)
	}
	return insumos
}

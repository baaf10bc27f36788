package produccion

import (
	"fmt"
	"regexp"
	"strconv"
	"time"

	"deliciasoft-backend/internal/database"
	"deliciasoft-backend/internal/models"

	"github.com/rs/zerolog/log"
	"gorm.io/gorm"
)

var numeroPedidoRe = regexp.MustCompile(`P-(\d+)`)

// SiguienteNumeroPedido genera el siguiente consecutivo P-NNN a partir del
// último pedido registrado. Si la consulta falla devuelve un número de
// respaldo derivado del reloj; no bloquea la creación del pedido.
//
// La lectura y la escritura posterior no son atómicas: dos creaciones
// concurrentes pueden obtener el mismo consecutivo. Se conserva el
// comportamiento observado en producción.
func SiguienteNumeroPedido(db *gorm.DB) string {
	var ultimo models.Produccion
	err := db.
		Where("numero_pedido IS NOT NULL AND numero_pedido <> ''").
		Order("id DESC").
		First(&ultimo).Error

	if err != nil {
		if database.EsRegistroNoEncontrado(err) {
			return formatearNumeroPedido(1)
		}
		log.Warn().Err(err).Msg("no se pudo consultar el último número de pedido, usando respaldo")
		return numeroPedidoRespaldo(time.Now())
	}

	return siguienteDesde(ultimo.NumeroPedido)
}

// siguienteDesde calcula el consecutivo que sigue a un número P-NNN. Si el
// número no tiene el formato esperado arranca de nuevo en P-001.
func siguienteDesde(ultimoNumero string) string {
	n := 1
	if m := numeroPedidoRe.FindStringSubmatch(ultimoNumero); m != nil {
		if v, err := strconv.Atoi(m[1]); err == nil {
			n = v + 1
		}
	}
	return formatearNumeroPedido(n)
}

func formatearNumeroPedido(n int) string {
	return fmt.Sprintf("P-%03d", n)
}

// numeroPedidoRespaldo deriva un número de los últimos tres dígitos del
// reloj. No garantiza unicidad; solo evita abortar la creación.
func numeroPedidoRespaldo(t time.Time) string {
	return fmt.Sprintf("P-%03d", t.UnixMilli()%1000)
}

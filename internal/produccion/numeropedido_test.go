package produccion

import (
	"testing"
	"time"

	"deliciasoft-backend/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSiguienteDesde(t *testing.T) {
	casos := []struct {
		ultimo   string
		esperado string
	}{
		{"P-001", "P-002"},
		{"P-002", "P-003"},
		{"P-099", "P-100"},
		{"P-999", "P-1000"},
		{"sin formato", "P-001"},
		{"", "P-001"},
	}

	for _, c := range casos {
		assert.Equal(t, c.esperado, siguienteDesde(c.ultimo), "último: %q", c.ultimo)
	}
}

func TestNumeroPedidoRespaldo(t *testing.T) {
	instante := time.UnixMilli(1724971234567)
	assert.Equal(t, "P-567", numeroPedidoRespaldo(instante))
}

func TestSiguienteNumeroPedido_BaseVacia(t *testing.T) {
	db := setupDB(t)
	assert.Equal(t, "P-001", SiguienteNumeroPedido(db))
}

func TestSiguienteNumeroPedido_Consecutivo(t *testing.T) {
	db := setupDB(t)

	require.NoError(t, db.Create(&models.Produccion{
		TipoProduccion: models.TipoPedido, NombreProduccion: "uno",
		FechaPedido: time.Now(), NumeroPedido: "P-001", EstadoProduccion: 2,
	}).Error)
	require.NoError(t, db.Create(&models.Produccion{
		TipoProduccion: models.TipoPedido, NombreProduccion: "dos",
		FechaPedido: time.Now(), NumeroPedido: "P-002", EstadoProduccion: 2,
	}).Error)

	assert.Equal(t, "P-003", SiguienteNumeroPedido(db))
}

func TestSiguienteNumeroPedido_IgnoraProduccionesSinNumero(t *testing.T) {
	db := setupDB(t)

	require.NoError(t, db.Create(&models.Produccion{
		TipoProduccion: models.TipoPedido, NombreProduccion: "pedido",
		FechaPedido: time.Now(), NumeroPedido: "P-007", EstadoProduccion: 2,
	}).Error)
	// Una fábrica posterior sin número no debe romper el consecutivo.
	require.NoError(t, db.Create(&models.Produccion{
		TipoProduccion: models.TipoFabrica, NombreProduccion: "fabrica",
		FechaPedido: time.Now(), EstadoProduccion: 1,
	}).Error)

	assert.Equal(t, "P-008", SiguienteNumeroPedido(db))
}

package models

import "time"

// Tipos de producción soportados.
const (
	TipoFabrica = "fabrica"
	TipoPedido  = "pedido"
)

type Produccion struct {
	ID               uint   `gorm:"primaryKey"`
	TipoProduccion   string `gorm:"size:20;not null"`
	NombreProduccion string `gorm:"size:100;not null"`
	FechaPedido      time.Time
	FechaEntrega     *time.Time // solo para pedidos
	NumeroPedido     string     `gorm:"size:20"` // P-001, P-002... solo para pedidos
	EstadoProduccion int        `gorm:"not null"`
	EstadoPedido     *int
	CreatedAt        time.Time
	UpdatedAt        time.Time

	Detalles []DetalleProduccion `gorm:"foreignKey:ProduccionID;constraint:OnDelete:CASCADE"`
}

// DetalleProduccion es una línea de producción: producto, cantidad y sede
// destino. La sede puede ser nula (pedidos sin sede asignada).
type DetalleProduccion struct {
	ID           uint `gorm:"primaryKey"`
	ProduccionID uint `gorm:"not null;index"`
	ProductoID   uint `gorm:"not null"`
	Producto     *ProductoGeneral
	Cantidad     *float64
	Sede         *string `gorm:"size:50"`
	CreatedAt    time.Time
}

package models

import "time"

// InventarioSede y Venta referencian sedes; su existencia bloquea el
// borrado de la sede asociada.

type InventarioSede struct {
	ID         uint `gorm:"primaryKey"`
	SedeID     uint `gorm:"not null;index"`
	Sede       *Sede
	ProductoID uint `gorm:"not null"`
	Cantidad   float64
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

type Venta struct {
	ID        uint `gorm:"primaryKey"`
	SedeID    uint `gorm:"not null;index"`
	Sede      *Sede
	Fecha     time.Time
	Total     float64
	CreatedAt time.Time
}

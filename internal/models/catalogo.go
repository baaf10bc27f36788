package models

import "time"

// Catálogo de referencia: productos, recetas e insumos. Estas tablas se
// consultan para armar las respuestas de producción, este módulo no las muta.

type ProductoGeneral struct {
	ID        uint   `gorm:"primaryKey"`
	Nombre    string `gorm:"size:100;not null"`
	ImagenID  *uint
	Imagen    *Imagen
	RecetaID  *uint
	Receta    *Receta
	CreatedAt time.Time
	UpdatedAt time.Time
}

type Imagen struct {
	ID  uint   `gorm:"primaryKey"`
	URL string `gorm:"size:255;not null"`
}

type Receta struct {
	ID               uint   `gorm:"primaryKey"`
	Nombre           string `gorm:"size:100;not null"`
	Especificaciones string `gorm:"size:255"`

	Detalles []DetalleReceta `gorm:"foreignKey:RecetaID"`
}

type DetalleReceta struct {
	ID       uint `gorm:"primaryKey"`
	RecetaID uint `gorm:"not null;index"`
	InsumoID uint `gorm:"not null"`
	Insumo   *Insumo
	Cantidad *float64
	UnidadID *uint
	Unidad   *UnidadMedida
}

type Insumo struct {
	ID     uint   `gorm:"primaryKey"`
	Nombre string `gorm:"size:100;not null"`
}

type UnidadMedida struct {
	ID     uint   `gorm:"primaryKey"`
	Unidad string `gorm:"size:30;not null"`
}

package models

import "time"

// Sede representa una sucursal física del negocio.
type Sede struct {
	ID        uint    `gorm:"primaryKey"`
	Nombre    string  `gorm:"size:50;not null"`
	Telefono  string  `gorm:"size:20;not null"`
	Direccion string  `gorm:"size:100;not null"`
	Estado    bool    `gorm:"not null;default:true"`
	ImagenURL *string `gorm:"size:255"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

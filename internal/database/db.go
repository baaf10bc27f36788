package database

import (
	"deliciasoft-backend/internal/config"
	"deliciasoft-backend/internal/models"

	"github.com/rs/zerolog/log"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

var DB *gorm.DB

func Init(cfg *config.Config) {
	var err error

	DB, err = gorm.Open(postgres.Open(cfg.DatabaseDSN), &gorm.Config{})
	if err != nil {
		log.Fatal().Err(err).Msg("no se pudo conectar a la base de datos")
	}

	if err := Migrar(DB); err != nil {
		log.Fatal().Err(err).Msg("error en AutoMigrate")
	}

	log.Info().Msg("conexión a la base de datos lista, migración completada")
}

// Migrar ejecuta AutoMigrate sobre todos los modelos. Separado de Init para
// que los tests puedan migrar una base en memoria.
func Migrar(db *gorm.DB) error {
	return db.AutoMigrate(
		&models.Usuario{},
		&models.Sede{},
		&models.Imagen{},
		&models.Insumo{},
		&models.UnidadMedida{},
		&models.Receta{},
		&models.DetalleReceta{},
		&models.ProductoGeneral{},
		&models.Produccion{},
		&models.DetalleProduccion{},
		&models.InventarioSede{},
		&models.Venta{},
	)
}

package main

import (
	"strings"

	"deliciasoft-backend/internal/auth"
	"deliciasoft-backend/internal/config"
	"deliciasoft-backend/internal/database"
	"deliciasoft-backend/internal/imagenes"
	"deliciasoft-backend/internal/logger"
	"deliciasoft-backend/internal/models"
	"deliciasoft-backend/internal/produccion"
	"deliciasoft-backend/internal/sede"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/rs/zerolog/log"
)

func main() {
	cfg := config.Load()
	logger.Init(cfg.AppEnv)

	if cfg.JWTSecret == "" {
		log.Fatal().Msg("JWT_SECRET no está definido, es obligatorio")
	}
	if len(cfg.JWTSecret) < 32 {
		log.Fatal().Msg("JWT_SECRET debe tener al menos 32 caracteres")
	}

	database.Init(cfg)

	var uploader imagenes.Uploader
	if cfg.Cloudinary.Habilitado() {
		up, err := imagenes.NewCloudinaryUploader(cfg.Cloudinary)
		if err != nil {
			log.Fatal().Err(err).Msg("no se pudo inicializar Cloudinary")
		}
		uploader = up
	} else {
		log.Warn().Msg("Cloudinary sin configurar: las sedes se guardarán sin imagen")
	}

	app := fiber.New(fiber.Config{
		BodyLimit: imagenes.TamanoMaximo + 1024*1024,
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			if e, ok := err.(*fiber.Error); ok {
				return c.Status(e.Code).JSON(fiber.Map{
					"message": e.Message,
				})
			}
			log.Error().Err(err).Str("ruta", c.Path()).Msg("error inesperado")
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
				"message": "Error interno del servidor",
				"error":   err.Error(),
			})
		},
	})

	app.Use(recover.New())

	corsOrigins := strings.Split(cfg.CORSOrigins, ",")
	for i := range corsOrigins {
		corsOrigins[i] = strings.TrimSpace(corsOrigins[i])
	}
	app.Use(cors.New(cors.Config{
		AllowOrigins: strings.Join(corsOrigins, ","),
		AllowHeaders: "Origin, Content-Type, Accept, Authorization",
		AllowMethods: "GET,POST,PUT,DELETE,OPTIONS",
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok"})
	})

	api := app.Group("/api")

	// Público
	api.Post("/auth/register-admin", auth.RegisterAdminHandler(cfg))
	api.Post("/auth/login", auth.LoginHandler(cfg))

	protected := api.Group("")
	protected.Use(auth.JWTMiddleware(cfg))

	protected.Get("/auth/me", auth.MeHandler())

	// Sedes
	sedes := protected.Group("/sedes")
	sedes.Get("/", sede.ListSedesHandler())
	sedes.Get("/:id", sede.GetSedeHandler())
	sedes.Post("/", imagenes.ValidarImagen("imagen"), sede.CreateSedeHandler(uploader))
	sedes.Put("/:id", imagenes.ValidarImagen("imagen"), sede.UpdateSedeHandler(uploader))
	sedes.Delete("/:id", auth.RequireRol(models.RolAdmin), sede.DeleteSedeHandler())

	// Producciones
	producciones := protected.Group("/producciones")
	producciones.Get("/", produccion.ListProduccionesHandler())
	producciones.Get("/:id", produccion.GetProduccionHandler())
	producciones.Post("/", produccion.CreateProduccionHandler())
	producciones.Delete("/:id", auth.RequireRol(models.RolAdmin), produccion.DeleteProduccionHandler())

	log.Info().Str("puerto", cfg.HTTPPort).Msg("servidor escuchando")
	if err := app.Listen(":" + cfg.HTTPPort); err != nil {
		log.Fatal().Err(err).Msg("el servidor se detuvo")
	}
}

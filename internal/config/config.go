package config

import (
	"strings"

	"github.com/spf13/viper"
)

// Config agrupa la configuración de la aplicación. Se lee vía Viper desde
// variables de entorno y, opcionalmente, desde un archivo .env local.
type Config struct {
	AppEnv      string // development | production
	HTTPPort    string
	DatabaseDSN string
	JWTSecret   string
	CORSOrigins string

	Cloudinary CloudinaryConfig
}

// CloudinaryConfig credenciales del host de imágenes. Si faltan, la app
// arranca igual y las sedes se guardan sin imagen.
type CloudinaryConfig struct {
	CloudName string
	APIKey    string
	APISecret string
	Carpeta   string
}

// Habilitado indica si hay credenciales suficientes para subir imágenes.
func (c CloudinaryConfig) Habilitado() bool {
	return c.CloudName != "" && c.APIKey != "" && c.APISecret != ""
}

func Load() *Config {
	v := viper.New()

	v.SetConfigName(".env")
	v.SetConfigType("env")
	v.AddConfigPath(".")
	_ = v.ReadInConfig() // el archivo es opcional

	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	v.SetDefault("APP_ENV", "development")
	v.SetDefault("HTTP_PORT", "8080")
	v.SetDefault("DATABASE_DSN", "host=localhost user=postgres password=postgres dbname=deliciasoft port=5432 sslmode=disable")
	v.SetDefault("CORS_ALLOWED_ORIGINS", "http://localhost:5173")
	v.SetDefault("CLOUDINARY_FOLDER", "deliciasoft/sedes")

	return &Config{
		AppEnv:      v.GetString("APP_ENV"),
		HTTPPort:    v.GetString("HTTP_PORT"),
		DatabaseDSN: v.GetString("DATABASE_DSN"),
		JWTSecret:   v.GetString("JWT_SECRET"),
		CORSOrigins: v.GetString("CORS_ALLOWED_ORIGINS"),
		Cloudinary: CloudinaryConfig{
			CloudName: v.GetString("CLOUDINARY_CLOUD_NAME"),
			APIKey:    v.GetString("CLOUDINARY_API_KEY"),
			APISecret: v.GetString("CLOUDINARY_API_SECRET"),
			Carpeta:   v.GetString("CLOUDINARY_FOLDER"),
		},
	}
}

package imagenes

import (
	"context"
	"errors"
	"io"

	"deliciasoft-backend/internal/config"

	"github.com/cloudinary/cloudinary-go/v2"
	"github.com/cloudinary/cloudinary-go/v2/api/uploader"
	"github.com/google/uuid"
)

// Uploader sube una imagen y devuelve la URL pública resultante. La interfaz
// permite reemplazar Cloudinary por un fake en los tests.
type Uploader interface {
	Subir(ctx context.Context, contenido io.Reader) (string, error)
}

// CloudinaryUploader implementa Uploader contra Cloudinary. Las imágenes se
// limitan a 800x600 con calidad automática para no inflar el frontend.
type CloudinaryUploader struct {
	cld     *cloudinary.Cloudinary
	carpeta string
}

func NewCloudinaryUploader(cfg config.CloudinaryConfig) (*CloudinaryUploader, error) {
	if !cfg.Habilitado() {
		return nil, errors.New("configuración de Cloudinary incompleta")
	}

	cld, err := cloudinary.NewFromParams(cfg.CloudName, cfg.APIKey, cfg.APISecret)
	if err != nil {
		return nil, err
	}

	return &CloudinaryUploader{cld: cld, carpeta: cfg.Carpeta}, nil
}

func (u *CloudinaryUploader) Subir(ctx context.Context, contenido io.Reader) (string, error) {
	resp, err := u.cld.Upload.Upload(ctx, contenido, uploader.UploadParams{
		Folder:         u.carpeta,
		PublicID:       uuid.NewString(),
		Transformation: "c_limit,w_800,h_600,q_auto:good",
	})
	if err != nil {
		return "", err
	}
	if resp.Error.Message != "" {
		return "", errors.New(resp.Error.Message)
	}
	return resp.SecureURL, nil
}

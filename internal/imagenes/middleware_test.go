package imagenes

import (
	"bytes"
	"encoding/json"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var pngBytes = []byte{0x89, 'P', 'N', 'G', 0x0D, 0x0A, 0x1A, 0x0A}

func appConValidacion() *fiber.App {
	app := fiber.New(fiber.Config{
		BodyLimit: TamanoMaximo + 1024*1024,
	})
	app.Post("/subir", ValidarImagen("imagen"), func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"ok": true})
	})
	return app
}

func enviarArchivo(t *testing.T, app *fiber.App, nombreCampo string, contenido []byte) *http.Response {
	t.Helper()

	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)
	if contenido != nil {
		fw, err := w.CreateFormFile(nombreCampo, "archivo.bin")
		require.NoError(t, err)
		_, err = fw.Write(contenido)
		require.NoError(t, err)
	}
	require.NoError(t, w.Close())

	req := httptest.NewRequest(http.MethodPost, "/subir", &buf)
	req.Header.Set("Content-Type", w.FormDataContentType())
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	return resp
}

func TestValidarImagen_AceptaPNG(t *testing.T) {
	app := appConValidacion()

	resp := enviarArchivo(t, app, "imagen", pngBytes)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode)
}

func TestValidarImagen_RechazaTipoNoPermitido(t *testing.T) {
	app := appConValidacion()

	resp := enviarArchivo(t, app, "imagen", []byte("%PDF-1.4 esto no es una imagen"))
	defer resp.Body.Close()
	require.Equal(t, http.StatusBadRequest, resp.StatusCode)

	var body map[string]any
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, "INVALID_FILE_TYPE", body["codigo"])
}

func TestValidarImagen_RechazaArchivoGrande(t *testing.T) {
	app := appConValidacion()

	grande := append(append([]byte{}, pngBytes...), bytes.Repeat([]byte{0}, TamanoMaximo)...)
	resp := enviarArchivo(t, app, "imagen", grande)
	defer resp.Body.Close()
	require.Equal(t, http.StatusBadRequest, resp.StatusCode)

	var body map[string]any
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, "LIMIT_FILE_SIZE", body["codigo"])
}

func TestValidarImagen_SinArchivoSigueDeLargo(t *testing.T) {
	app := appConValidacion()

	resp := enviarArchivo(t, app, "imagen", nil)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode)
}

func TestValidarImagen_OtroCampoNoSeValida(t *testing.T) {
	app := appConValidacion()

	// Un archivo en un campo distinto no pasa por la validación de imagen.
	resp := enviarArchivo(t, app, "archivo", []byte("texto plano"))
	defer resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode)
}

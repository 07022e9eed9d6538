package handler

import (
	"fmt"
	"mime/multipart"
	"net/http"
	"path/filepath"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"

	"github.com/WHSBrasil/IS-PAT/internal/apierror"
	"github.com/WHSBrasil/IS-PAT/internal/model"
)

var validate = validator.New()

// bindAndValidate binds the request body (JSON or form, by content type)
// and runs go-playground/validator tags. Returns false and writes the error
// response if binding or validation fails — the caller should return
// immediately without writing another response.
func bindAndValidate(c *gin.Context, req interface{}) bool {
	if err := c.ShouldBind(req); err != nil {
		c.JSON(http.StatusBadRequest, apierror.New("corpo da requisição inválido: "+err.Error()))
		return false
	}
	if err := validate.Struct(req); err != nil {
		fields := make(map[string]string)
		for _, fe := range err.(validator.ValidationErrors) {
			fields[fe.Field()] = fe.Tag()
		}
		c.JSON(http.StatusBadRequest, apierror.NewValidation(fields))
		return false
	}
	return true
}

// respondError maps a typed domain error to its HTTP status and envelope.
func respondError(c *gin.Context, err error) {
	status := apierror.Status(err)
	if status == http.StatusInternalServerError {
		// surface the cause to the logging middleware, never to the client
		_ = c.Error(err)
	}
	c.JSON(status, apierror.Envelope(err))
}

// parseID parses the :id route param. Writes the 400 response itself.
func parseID(c *gin.Context) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, apierror.New("id inválido"))
		return uuid.Nil, false
	}
	return id, true
}

const maxFotoSize = 10 << 20 // 10 MB per file

var allowedFotoTypes = map[string]string{
	"image/jpeg": ".jpg",
	"image/png":  ".png",
	"image/webp": ".webp",
}

func fotoMimeType(fh *multipart.FileHeader) string {
	ct := fh.Header.Get("Content-Type")
	if _, ok := allowedFotoTypes[ct]; ok {
		return ct
	}
	switch strings.ToLower(filepath.Ext(fh.Filename)) {
	case ".jpg", ".jpeg":
		return "image/jpeg"
	case ".png":
		return "image/png"
	case ".webp":
		return "image/webp"
	}
	return ""
}

// salvarFotos stores the "fotos" files of a multipart request under
// uploadDir and returns their metadata. Requests without a multipart body
// return an empty list without error.
func salvarFotos(c *gin.Context, uploadDir string) (model.Fotos, error) {
	form, err := c.MultipartForm()
	if err != nil {
		return nil, nil
	}

	var fotos model.Fotos
	for _, fh := range form.File["fotos"] {
		mime := fotoMimeType(fh)
		if mime == "" {
			return nil, apierror.Validationf("formato de imagem não suportado: %s", fh.Filename)
		}
		if fh.Size > maxFotoSize {
			return nil, apierror.Validationf("imagem excede o limite de 10MB: %s", fh.Filename)
		}

		stored := fmt.Sprintf("%s%s", uuid.New(), allowedFotoTypes[mime])
		if err := c.SaveUploadedFile(fh, filepath.Join(uploadDir, stored)); err != nil {
			return nil, apierror.Storage(err)
		}
		fotos = append(fotos, model.Foto{
			OriginalName: fh.Filename,
			StoredName:   stored,
			MimeType:     mime,
			Size:         fh.Size,
		})
	}
	return fotos, nil
}

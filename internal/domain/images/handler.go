package images

import (
	"errors"
	"net/http"

	"animal-id-card/internal/platform/logger"
	"animal-id-card/internal/platform/respond"

	"github.com/go-chi/chi/v5"
)

// MaxMemory es lo que ParseMultipartForm guarda en memoria antes de ir a disco.
const MaxMemory = 32 << 20

func RegisterRoutes(r chi.Router, store Store, log logger.Logger) {
	r.Post("/api/upload", uploadHandler(store, log))
	r.Get("/images/{filename}", serveHandler(store, log))
}

// uploadHandler godoc
// @Summary Subir imagen
// @Description Guarda el archivo como <timestamp><nombre original> y devuelve el nombre guardado.
// @Tags images
// @Accept multipart/form-data
// @Produce json
// @Param image formData file true "Imagen"
// @Success 200 {object} map[string]any "results=true, message, imageUrl"
// @Failure 400 {object} respond.Failure
// @Failure 500 {object} respond.Failure
// @Router /api/upload [post]
func uploadHandler(store Store, log logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		up, cleanup, err := FormUpload(r, "image")
		if err != nil {
			respond.Fail(w, http.StatusBadRequest, "Invalid request body", err)
			return
		}
		defer cleanup()

		if up == nil {
			respond.Fail(w, http.StatusBadRequest, "No file uploaded", nil)
			return
		}

		name, err := store.Save(r.Context(), up.Filename, up.Body, up.Size, up.ContentType)
		if err != nil {
			log.Error("image upload failed", map[string]any{"error": err.Error(), "filename": up.Filename})
			respond.Fail(w, http.StatusInternalServerError, "Failed to upload file", err)
			return
		}

		respond.OK(w, http.StatusOK, respond.Fields{
			"message":  "File uploaded successfully",
			"imageUrl": name,
		})
	}
}

// serveHandler godoc
// @Summary Descargar imagen
// @Tags images
// @Produce octet-stream
// @Param filename path string true "Nombre guardado"
// @Success 200 {file} file
// @Failure 404 {string} string "404 page not found"
// @Router /images/{filename} [get]
func serveHandler(store Store, log logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		name := chi.URLParam(r, "filename")
		if !ValidName(name) {
			http.NotFound(w, r)
			return
		}

		rc, info, err := store.Open(r.Context(), name)
		if err != nil {
			if errors.Is(err, ErrNotFound) {
				http.NotFound(w, r)
				return
			}
			log.Error("image open failed", map[string]any{"error": err.Error(), "image": name})
			http.Error(w, "internal error", http.StatusInternalServerError)
			return
		}
		defer rc.Close()

		if info.ContentType != "" {
			w.Header().Set("Content-Type", info.ContentType)
		}
		http.ServeContent(w, r, info.Name, info.ModTime, rc)
	}
}

// FormUpload parsea el body (multipart o urlencoded) y devuelve el archivo del campo
// indicado, o nil si no vino. cleanup libera el archivo y los temporales del multipart.
func FormUpload(r *http.Request, field string) (*Upload, func(), error) {
	noop := func() {}

	if err := r.ParseMultipartForm(MaxMemory); err != nil {
		if !errors.Is(err, http.ErrNotMultipart) {
			return nil, noop, err
		}
		if err := r.ParseForm(); err != nil {
			return nil, noop, err
		}
		return nil, noop, nil
	}

	removeAll := func() {
		if r.MultipartForm != nil {
			_ = r.MultipartForm.RemoveAll()
		}
	}

	f, hdr, err := r.FormFile(field)
	if errors.Is(err, http.ErrMissingFile) {
		return nil, removeAll, nil
	}
	if err != nil {
		removeAll()
		return nil, noop, err
	}

	up := &Upload{
		Filename:    hdr.Filename,
		ContentType: hdr.Header.Get("Content-Type"),
		Size:        hdr.Size,
		Body:        f,
	}
	return up, func() {
		_ = f.Close()
		removeAll()
	}, nil
}

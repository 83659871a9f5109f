package profiles

import (
	"encoding/json"
	"errors"
	"fmt"
	"mime"
	"net/http"
	"strconv"
	"strings"

	"animal-id-card/internal/domain/images"
	"animal-id-card/internal/platform/logger"
	"animal-id-card/internal/platform/respond"

	"github.com/go-chi/chi/v5"
)

func RegisterRoutes(r chi.Router, svc *Service, log logger.Logger) {
	r.Route("/api", func(ar chi.Router) {
		ar.Get("/profile", listProfilesHandler(svc, log))
		ar.Get("/profile/{id}", getProfileHandler(svc, log))
		ar.Post("/addProfile", createProfileHandler(svc, log))
		ar.Put("/editProfile/{id}", updateProfileHandler(svc, log))
		ar.Delete("/deleteProfile/{id}", deleteProfileHandler(svc, log))
	})
}

// profileResponse es la ficha tal como la devuelve la API.
type profileResponse struct {
	ID          int64   `json:"id"`
	Image       *string `json:"image"`
	Name        string  `json:"name"`
	Lastname    *string `json:"lastname"`
	Description *string `json:"description"`
	Birthday    string  `json:"birthday" example:"2021-04-03"`
	Gender      string  `json:"gender" enums:"Male,Female"`
	Birthmark   int     `json:"birthmark"`
	AnimalType  string  `json:"animal_type" enums:"Mammals,Birds,Reptiles,Amphibians,Fish,Insects,Arachnids,Mollusks,Crustaceans"`
	AddressID   *int64  `json:"address_id"`
	OwnerID     *int64  `json:"owner_id"`
}

// listProfilesHandler godoc
// @Summary Listar fichas
// @Description Devuelve todas las fichas sin filtro ni paginación; la UI filtra y pagina del lado cliente.
// @Tags profiles
// @Produce json
// @Success 200 {object} map[string]any "results=true, data=[profile]"
// @Failure 500 {object} respond.Failure
// @Router /api/profile [get]
func listProfilesHandler(svc *Service, log logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		items, err := svc.List(r.Context())
		if err != nil {
			writeError(w, log, err, "Failed to fetch profiles")
			return
		}

		out := make([]profileResponse, 0, len(items))
		for _, p := range items {
			out = append(out, toProfileResponse(p))
		}
		respond.OK(w, http.StatusOK, respond.Fields{"data": out})
	}
}

// getProfileHandler godoc
// @Summary Obtener ficha
// @Tags profiles
// @Produce json
// @Param id path int true "ID de la ficha"
// @Success 200 {object} map[string]any "results=true, data=profile"
// @Failure 404 {object} respond.Failure
// @Failure 500 {object} respond.Failure
// @Router /api/profile/{id} [get]
func getProfileHandler(svc *Service, log logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := profileID(r)
		if !ok {
			respond.Fail(w, http.StatusNotFound, "Profile not found", nil)
			return
		}

		p, err := svc.GetByID(r.Context(), id)
		if err != nil {
			writeError(w, log, err, "Error fetching profile")
			return
		}
		respond.OK(w, http.StatusOK, respond.Fields{"data": toProfileResponse(p)})
	}
}

// createProfileHandler godoc
// @Summary Crear ficha
// @Description Multipart con los campos de la ficha y un archivo opcional `image`. También acepta `uploadedImage` con un nombre devuelto por /api/upload.
// @Tags profiles
// @Accept multipart/form-data
// @Produce json
// @Param name formData string true "Nombre"
// @Param lastname formData string false "Apellido"
// @Param description formData string false "Descripción"
// @Param birthday formData string true "YYYY-MM-DD"
// @Param gender formData string true "Male o Female"
// @Param birthmark formData int true "Cantidad de marcas"
// @Param animal_type formData string true "Grupo del animal"
// @Param address_id formData int false "ID de dirección"
// @Param owner_id formData int false "ID de dueño"
// @Param uploadedImage formData string false "Imagen ya subida"
// @Param image formData file false "Imagen"
// @Success 200 {object} map[string]any "results=true, message, image"
// @Failure 400 {object} respond.Failure
// @Failure 500 {object} respond.Failure
// @Router /api/addProfile [post]
func createProfileHandler(svc *Service, log logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		in, img, cleanup, err := readProfileForm(r)
		if err != nil {
			respond.Fail(w, http.StatusBadRequest, "Invalid request body", err)
			return
		}
		defer cleanup()

		p, err := svc.Create(r.Context(), in, img)
		if err != nil {
			writeError(w, log, err, "Failed to add profile")
			return
		}

		log.Info("profile created", map[string]any{"profile_id": p.ID, "image": deref(p.Image)})
		respond.OK(w, http.StatusOK, respond.Fields{
			"message": "Profile added successfully",
			"image":   p.Image,
		})
	}
}

// updateProfileHandler godoc
// @Summary Editar ficha
// @Description Reemplaza todos los campos. Sin archivo nuevo se conserva la imagen guardada; `existingImage` se acepta por compatibilidad pero se ignora.
// @Tags profiles
// @Accept multipart/form-data
// @Produce json
// @Param id path int true "ID de la ficha"
// @Param name formData string true "Nombre"
// @Param birthday formData string true "YYYY-MM-DD"
// @Param gender formData string true "Male o Female"
// @Param birthmark formData int true "Cantidad de marcas"
// @Param animal_type formData string true "Grupo del animal"
// @Param existingImage formData string false "Ignorado"
// @Param image formData file false "Imagen nueva"
// @Success 200 {object} map[string]any "results=true, message, image"
// @Failure 400 {object} respond.Failure
// @Failure 404 {object} respond.Failure
// @Failure 500 {object} respond.Failure
// @Router /api/editProfile/{id} [put]
func updateProfileHandler(svc *Service, log logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := profileID(r)
		if !ok {
			respond.Fail(w, http.StatusNotFound, "Profile not found", nil)
			return
		}

		in, img, cleanup, err := readProfileForm(r)
		if err != nil {
			respond.Fail(w, http.StatusBadRequest, "Invalid request body", err)
			return
		}
		defer cleanup()

		p, err := svc.Update(r.Context(), id, in, img)
		if err != nil {
			writeError(w, log, err, "Failed to update profile")
			return
		}

		log.Info("profile updated", map[string]any{"profile_id": p.ID, "image": deref(p.Image)})
		respond.OK(w, http.StatusOK, respond.Fields{
			"message": "Profile updated successfully",
			"image":   p.Image,
		})
	}
}

// deleteProfileHandler godoc
// @Summary Borrar ficha
// @Description Borrado físico. La imagen queda en el store hasta el próximo barrido.
// @Tags profiles
// @Produce json
// @Param id path int true "ID de la ficha"
// @Success 200 {object} map[string]any "results=true, message"
// @Failure 404 {object} respond.Failure
// @Failure 500 {object} respond.Failure
// @Router /api/deleteProfile/{id} [delete]
func deleteProfileHandler(svc *Service, log logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := profileID(r)
		if !ok {
			respond.Fail(w, http.StatusNotFound, "Profile not found", nil)
			return
		}

		if err := svc.Delete(r.Context(), id); err != nil {
			writeError(w, log, err, "Failed to delete profile")
			return
		}

		log.Info("profile deleted", map[string]any{"profile_id": id})
		respond.OK(w, http.StatusOK, respond.Fields{"message": "Profile deleted successfully"})
	}
}

func writeError(w http.ResponseWriter, log logger.Logger, err error, fallback string) {
	switch {
	case errors.Is(err, ErrMissingFields):
		respond.Fail(w, http.StatusBadRequest, "Missing required fields", err)
	case errors.Is(err, ErrInvalidInput):
		respond.Fail(w, http.StatusBadRequest, "Invalid profile fields", err)
	case errors.Is(err, images.ErrUnknownUpload):
		respond.Fail(w, http.StatusBadRequest, "Unknown uploaded image", nil)
	case errors.Is(err, ErrNotFound):
		respond.Fail(w, http.StatusNotFound, "Profile not found", nil)
	default:
		log.Error(fallback, map[string]any{"error": err.Error()})
		respond.Fail(w, http.StatusInternalServerError, fallback, err)
	}
}

func profileID(r *http.Request) (int64, bool) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil || id <= 0 {
		return 0, false
	}
	return id, true
}

// readProfileForm acepta multipart (con archivo opcional "image"), urlencoded o JSON.
func readProfileForm(r *http.Request) (Input, *images.Upload, func(), error) {
	noop := func() {}

	ct, _, _ := mime.ParseMediaType(r.Header.Get("Content-Type"))
	if ct == "application/json" {
		in, err := decodeJSONInput(r)
		return in, nil, noop, err
	}

	img, cleanup, err := images.FormUpload(r, "image")
	if err != nil {
		return Input{}, nil, noop, err
	}

	in := Input{
		Name:          r.PostFormValue("name"),
		Lastname:      r.PostFormValue("lastname"),
		Description:   r.PostFormValue("description"),
		Birthday:      r.PostFormValue("birthday"),
		Gender:        r.PostFormValue("gender"),
		Birthmark:     r.PostFormValue("birthmark"),
		AnimalType:    r.PostFormValue("animal_type"),
		AddressID:     r.PostFormValue("address_id"),
		OwnerID:       r.PostFormValue("owner_id"),
		UploadedImage: r.PostFormValue("uploadedImage"),
	}
	return in, img, cleanup, nil
}

func decodeJSONInput(r *http.Request) (Input, error) {
	var raw map[string]any
	if err := json.NewDecoder(r.Body).Decode(&raw); err != nil {
		return Input{}, fmt.Errorf("invalid json: %w", err)
	}

	field := func(k string) string {
		switch v := raw[k].(type) {
		case nil:
			return ""
		case string:
			return v
		case float64:
			return strconv.FormatFloat(v, 'f', -1, 64)
		case bool:
			return strconv.FormatBool(v)
		default:
			return strings.TrimSpace(fmt.Sprint(v))
		}
	}

	return Input{
		Name:          field("name"),
		Lastname:      field("lastname"),
		Description:   field("description"),
		Birthday:      field("birthday"),
		Gender:        field("gender"),
		Birthmark:     field("birthmark"),
		AnimalType:    field("animal_type"),
		AddressID:     field("address_id"),
		OwnerID:       field("owner_id"),
		UploadedImage: field("uploadedImage"),
	}, nil
}

func toProfileResponse(p Profile) profileResponse {
	return profileResponse{
		ID:          p.ID,
		Image:       p.Image,
		Name:        p.Name,
		Lastname:    p.Lastname,
		Description: p.Description,
		Birthday:    p.Birthday.Format(DateLayout),
		Gender:      string(p.Gender),
		Birthmark:   p.Birthmark,
		AnimalType:  string(p.AnimalType),
		AddressID:   p.AddressID,
		OwnerID:     p.OwnerID,
	}
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

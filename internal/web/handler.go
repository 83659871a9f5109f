// Package web es la UI server-side: tabla de fichas y wizards de alta/edición.
// Todo lo lee y escribe a través de la API REST (APIClient).
package web

import (
	"embed"
	"errors"
	"html/template"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"animal-id-card/internal/domain/drafts"
	"animal-id-card/internal/domain/images"
	"animal-id-card/internal/domain/profiles"
	"animal-id-card/internal/domain/reference"
	"animal-id-card/internal/platform/logger"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
)

const (
	draftCookie = "draft_id"
	flashCookie = "flash"
)

//go:embed templates/*.html
var templateFS embed.FS

var pages = template.Must(template.New("pages").Funcs(template.FuncMap{
	"deref": func(s *string) string {
		if s == nil {
			return ""
		}
		return *s
	},
}).ParseFS(templateFS, "templates/*.html"))

type Deps struct {
	API    *APIClient
	Drafts drafts.Store
	Log    logger.Logger
}

func RegisterRoutes(r chi.Router, d Deps) {
	r.Get("/", listHandler(d))
	r.Post("/profiles/{id}/delete", deleteHandler(d))
	r.Get("/profiles/new", newFormHandler(d))
	r.Post("/profiles/new", newSubmitHandler(d))
	r.Get("/profiles/{id}/edit", editFormHandler(d))
	r.Post("/profiles/{id}/edit", editSubmitHandler(d))
}

type listView struct {
	Title     string
	Flash     string
	Error     string
	Query     string
	Page      Page
	PageSizes []int
}

func listHandler(d Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		q := r.URL.Query()
		page, _ := strconv.Atoi(q.Get("page"))
		size, _ := strconv.Atoi(q.Get("size"))

		view := listView{
			Title:     "Profiles",
			Flash:     popFlash(w, r),
			Query:     q.Get("q"),
			PageSizes: PageSizes,
		}

		items, err := d.API.ListProfiles(r.Context())
		if err != nil {
			d.Log.Warn("web: list profiles failed", map[string]any{"error": err.Error()})
			view.Error = apiMessage(err, "Failed to fetch data")
		}

		view.Page = Paginate(Filter(items, view.Query), page, size)
		render(w, d.Log, http.StatusOK, "list", view)
	}
}

func deleteHandler(d Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := pathID(r)
		if !ok {
			setFlash(w, "Failed to delete profile: Profile not found")
			http.Redirect(w, r, "/", http.StatusSeeOther)
			return
		}

		msg, err := d.API.DeleteProfile(r.Context(), id)
		var apiErr *APIError
		switch {
		case err == nil:
			setFlash(w, msg)
		case errors.As(err, &apiErr):
			setFlash(w, "Failed to delete profile: "+apiErr.Message)
		default:
			d.Log.Warn("web: delete profile failed", map[string]any{"error": err.Error(), "profile_id": id})
			setFlash(w, "An error occurred. Please try again.")
		}
		http.Redirect(w, r, "/", http.StatusSeeOther)
	}
}

type wizardView struct {
	Title       string
	Action      string
	Wizard      *Wizard
	Errors      map[string]string
	Message     string
	Genders     []string
	AnimalTypes []string
	Owners      []reference.Owner
	Addresses   []reference.Address
}

func newWizardView(r *http.Request, d Deps, title, action string, wz *Wizard) wizardView {
	v := wizardView{
		Title:   title,
		Action:  action,
		Wizard:  wz,
		Genders: []string{string(profiles.GenderMale), string(profiles.GenderFemale)},
	}
	for _, t := range profiles.AnimalTypes() {
		v.AnimalTypes = append(v.AnimalTypes, string(t))
	}

	// dueños y direcciones son opcionales: si fallan el wizard sigue sin opciones
	if wz != nil && wz.Step == 3 {
		owners, err := d.API.ListOwners(r.Context())
		if err != nil {
			d.Log.Warn("web: list owners failed", map[string]any{"error": err.Error()})
		}
		addresses, err := d.API.ListAddresses(r.Context())
		if err != nil {
			d.Log.Warn("web: list addresses failed", map[string]any{"error": err.Error()})
		}
		v.Owners, v.Addresses = owners, addresses
	}
	return v
}

func newFormHandler(d Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var f Fields
		if c, err := r.Cookie(draftCookie); err == nil {
			dr, err := d.Drafts.Load(r.Context(), c.Value)
			switch {
			case err == nil:
				f = FieldsFromDraft(dr)
			case !errors.Is(err, drafts.ErrNotFound):
				d.Log.Warn("web: load draft failed", map[string]any{"error": err.Error()})
			}
		}

		wz := NewWizard(ModeCreate, f)
		render(w, d.Log, http.StatusOK, "wizard", newWizardView(r, d, "Add profile", "/profiles/new", wz))
	}
}

func newSubmitHandler(d Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		up, cleanup, err := images.FormUpload(r, "image")
		if err != nil {
			http.Error(w, "invalid form", http.StatusBadRequest)
			return
		}
		defer cleanup()

		wz := readWizard(r, ModeCreate)
		var message string
		if up != nil {
			message = uploadImage(r, d, wz, up)
		}

		draftID := ensureDraftID(w, r)
		if err := d.Drafts.Save(r.Context(), draftID, wz.Fields.Draft()); err != nil {
			d.Log.Warn("web: save draft failed", map[string]any{"error": err.Error()})
		}

		var errs map[string]string
		switch r.PostFormValue("action") {
		case "back":
			wz.Back()
		case "submit":
			if errs = wz.ValidateSubmit(); errs != nil {
				break
			}
			msg, err := d.API.CreateProfile(r.Context(), wz.Fields)
			if err != nil {
				message = apiMessage(err, "Failed to submit. Please try again.")
				break
			}
			if err := d.Drafts.Delete(r.Context(), draftID); err != nil {
				d.Log.Warn("web: delete draft failed", map[string]any{"error": err.Error()})
			}
			clearCookie(w, draftCookie)
			setFlash(w, msg)
			http.Redirect(w, r, "/", http.StatusSeeOther)
			return
		default:
			errs = wz.Next()
		}

		view := newWizardView(r, d, "Add profile", "/profiles/new", wz)
		view.Errors, view.Message = errs, message
		render(w, d.Log, http.StatusOK, "wizard", view)
	}
}

func editFormHandler(d Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := pathID(r)
		if !ok {
			view := newWizardView(r, d, "Edit profile", "", nil)
			view.Message = "Profile not found."
			render(w, d.Log, http.StatusNotFound, "wizard", view)
			return
		}

		p, err := d.API.GetProfile(r.Context(), id)
		if err != nil {
			status, msg := http.StatusBadGateway, "Failed to load profile data."
			var apiErr *APIError
			if errors.As(err, &apiErr) && apiErr.Status == http.StatusNotFound {
				status, msg = http.StatusNotFound, "Profile not found."
			} else {
				d.Log.Warn("web: load profile failed", map[string]any{"error": err.Error(), "profile_id": id})
			}
			view := newWizardView(r, d, "Edit profile", "", nil)
			view.Message = msg
			render(w, d.Log, status, "wizard", view)
			return
		}

		wz := NewWizard(ModeEdit, FieldsFromProfile(p))
		render(w, d.Log, http.StatusOK, "wizard", newWizardView(r, d, "Edit profile", editAction(id), wz))
	}
}

func editSubmitHandler(d Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := pathID(r)
		if !ok {
			http.NotFound(w, r)
			return
		}

		up, cleanup, err := images.FormUpload(r, "image")
		if err != nil {
			http.Error(w, "invalid form", http.StatusBadRequest)
			return
		}
		defer cleanup()

		wz := readWizard(r, ModeEdit)
		var message string
		if up != nil {
			message = uploadImage(r, d, wz, up)
		}

		var errs map[string]string
		switch r.PostFormValue("action") {
		case "back":
			wz.Back()
		case "submit":
			if errs = wz.ValidateSubmit(); errs != nil {
				break
			}
			msg, err := d.API.UpdateProfile(r.Context(), id, wz.Fields)
			if err != nil {
				message = apiMessage(err, "Failed to update profile. Please try again.")
				break
			}
			setFlash(w, msg)
			http.Redirect(w, r, "/", http.StatusSeeOther)
			return
		default:
			errs = wz.Next()
		}

		view := newWizardView(r, d, "Edit profile", editAction(id), wz)
		view.Errors, view.Message = errs, message
		render(w, d.Log, http.StatusOK, "wizard", view)
	}
}

// uploadImage sube el archivo elegido en el paso 3 y guarda el nombre en el wizard.
// Devuelve el mensaje a mostrar si falló.
func uploadImage(r *http.Request, d Deps, wz *Wizard, up *images.Upload) string {
	name, err := d.API.Upload(r.Context(), up.Filename, up.ContentType, up.Body)
	if err != nil {
		d.Log.Warn("web: image upload failed", map[string]any{"error": err.Error(), "filename": up.Filename})
		return apiMessage(err, "Failed to upload image. Please try again.")
	}
	wz.Fields.UploadedImage = name
	return ""
}

func readWizard(r *http.Request, mode Mode) *Wizard {
	wz := NewWizard(mode, Fields{
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
		Image:         r.PostFormValue("current_image"),
	})

	step, _ := strconv.Atoi(r.PostFormValue("step"))
	if step >= FirstStep && step <= LastStep {
		wz.Step = step
	}
	return wz
}

// apiMessage arma el texto para el usuario: el mensaje de la API si respondió,
// fallback si ni siquiera hubo respuesta.
func apiMessage(err error, fallback string) string {
	var apiErr *APIError
	if errors.As(err, &apiErr) && apiErr.Message != "" {
		return "Error: " + apiErr.Message
	}
	return fallback
}

func editAction(id int64) string {
	return "/profiles/" + strconv.FormatInt(id, 10) + "/edit"
}

func pathID(r *http.Request) (int64, bool) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil || id <= 0 {
		return 0, false
	}
	return id, true
}

func ensureDraftID(w http.ResponseWriter, r *http.Request) string {
	if c, err := r.Cookie(draftCookie); err == nil {
		if _, err := uuid.Parse(c.Value); err == nil {
			return c.Value
		}
	}

	id := uuid.NewString()
	http.SetCookie(w, &http.Cookie{
		Name:     draftCookie,
		Value:    id,
		Path:     "/",
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
	return id
}

func setFlash(w http.ResponseWriter, msg string) {
	if strings.TrimSpace(msg) == "" {
		return
	}
	http.SetCookie(w, &http.Cookie{
		Name:     flashCookie,
		Value:    url.QueryEscape(msg),
		Path:     "/",
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
}

// popFlash lee el mensaje pendiente y lo borra.
func popFlash(w http.ResponseWriter, r *http.Request) string {
	c, err := r.Cookie(flashCookie)
	if err != nil {
		return ""
	}
	clearCookie(w, flashCookie)

	msg, err := url.QueryUnescape(c.Value)
	if err != nil {
		return ""
	}
	return msg
}

func clearCookie(w http.ResponseWriter, name string) {
	http.SetCookie(w, &http.Cookie{Name: name, Value: "", Path: "/", MaxAge: -1})
}

func render(w http.ResponseWriter, log logger.Logger, status int, name string, data any) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	if err := pages.ExecuteTemplate(w, name, data); err != nil {
		log.Error("web: render failed", map[string]any{"error": err.Error(), "template": name})
	}
}

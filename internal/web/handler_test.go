package web_test

import (
	"bytes"
	"context"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"

	"animal-id-card/internal/adapters/blob/filesystem"
	"animal-id-card/internal/adapters/storage/memory"
	"animal-id-card/internal/domain/images"
	"animal-id-card/internal/domain/profiles"
	"animal-id-card/internal/domain/reference"
	"animal-id-card/internal/platform/httpclient"
	"animal-id-card/internal/platform/logger"
	"animal-id-card/internal/web"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fixture struct {
	ui   http.Handler
	repo profiles.Repository
	svc  *profiles.Service
}

func newFixture(t *testing.T) fixture {
	t.Helper()
	log := logger.Nop()

	store, err := filesystem.New(t.TempDir())
	require.NoError(t, err)

	repo := memory.NewProfilesRepo()
	svc := profiles.NewService(repo, store)
	refs := memory.NewReferenceRepo(
		[]reference.Owner{{ID: 1, FirstName: "Ana", LastName: "Lopez"}},
		[]reference.Address{{ID: 1, Line: "1 Main St"}},
	)

	api := chi.NewRouter()
	profiles.RegisterRoutes(api, svc, log)
	reference.RegisterRoutes(api, refs, log)
	images.RegisterRoutes(api, store, log)
	apiSrv := httptest.NewServer(api)
	t.Cleanup(apiSrv.Close)

	client, err := httpclient.NewWithBaseURL(apiSrv.URL, 2*time.Second)
	require.NoError(t, err)

	ui := chi.NewRouter()
	web.RegisterRoutes(ui, web.Deps{
		API:    web.NewAPIClient(client),
		Drafts: memory.NewDraftsRepo(0),
		Log:    log,
	})

	return fixture{ui: ui, repo: repo, svc: svc}
}

func (f fixture) seed(t *testing.T, name, gender, animal string) int64 {
	t.Helper()
	p, err := f.svc.Create(context.Background(), profiles.Input{
		Name:       name,
		Birthday:   "2020-05-01",
		Gender:     gender,
		Birthmark:  "1",
		AnimalType: animal,
	}, nil)
	require.NoError(t, err)
	return p.ID
}

func postForm(h http.Handler, path string, form url.Values, cookies ...*http.Cookie) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	for _, c := range cookies {
		req.AddCookie(c)
	}
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

func get(h http.Handler, path string, cookies ...*http.Cookie) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, path, nil)
	for _, c := range cookies {
		req.AddCookie(c)
	}
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

func cookie(rec *httptest.ResponseRecorder, name string) *http.Cookie {
	for _, c := range rec.Result().Cookies() {
		if c.Name == name {
			return c
		}
	}
	return nil
}

func TestList_FiltersAndShowsFlash(t *testing.T) {
	f := newFixture(t)
	f.seed(t, "Rex", "Male", "Mammals")
	f.seed(t, "Mia", "Female", "Birds")

	rec := get(f.ui, "/?q=fe")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "Mia")
	assert.NotContains(t, rec.Body.String(), "Rex")

	rec = get(f.ui, "/", &http.Cookie{Name: "flash", Value: url.QueryEscape("Profile added successfully")})
	assert.Contains(t, rec.Body.String(), "Profile added successfully")
	assert.Contains(t, rec.Body.String(), "Rex")
}

func TestDelete_RemovesAndRedirects(t *testing.T) {
	f := newFixture(t)
	id := f.seed(t, "Rex", "Male", "Mammals")
	keep := f.seed(t, "Mia", "Female", "Birds")

	rec := postForm(f.ui, "/profiles/1/delete", nil)
	require.Equal(t, http.StatusSeeOther, rec.Code)
	assert.Equal(t, "/", rec.Header().Get("Location"))

	flash := cookie(rec, "flash")
	require.NotNil(t, flash)
	msg, _ := url.QueryUnescape(flash.Value)
	assert.Equal(t, "Profile deleted successfully", msg)

	_, err := f.repo.GetByID(context.Background(), id)
	assert.ErrorIs(t, err, profiles.ErrNotFound)
	_, err = f.repo.GetByID(context.Background(), keep)
	assert.NoError(t, err)

	rec = postForm(f.ui, "/profiles/1/delete", nil)
	msg, _ = url.QueryUnescape(cookie(rec, "flash").Value)
	assert.Equal(t, "Failed to delete profile: Profile not found", msg)
}

func TestCreateWizard_DraftAndSubmit(t *testing.T) {
	f := newFixture(t)

	rec := postForm(f.ui, "/profiles/new", url.Values{"step": {"1"}, "action": {"next"}, "name": {"Bella"}})
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "Step 2 of 4")

	draft := cookie(rec, "draft_id")
	require.NotNil(t, draft)

	// al reabrir el formulario vuelve el borrador
	rec = get(f.ui, "/profiles/new", draft)
	assert.Contains(t, rec.Body.String(), `value="Bella"`)

	rec = postForm(f.ui, "/profiles/new", url.Values{
		"step":        {"4"},
		"action":      {"submit"},
		"name":        {"Bella"},
		"birthday":    {"2021-04-03"},
		"gender":      {"Female"},
		"birthmark":   {"3"},
		"animal_type": {"Mammals"},
		"owner_id":    {"1"},
	}, draft)
	require.Equal(t, http.StatusSeeOther, rec.Code)

	all, err := f.repo.List(context.Background())
	require.NoError(t, err)
	require.Len(t, all, 1)
	assert.Equal(t, "Bella", all[0].Name)
	assert.Equal(t, 3, all[0].Birthmark)
	require.NotNil(t, all[0].OwnerID)
	assert.Equal(t, int64(1), *all[0].OwnerID)

	// borrador limpio después del alta
	rec = get(f.ui, "/profiles/new", draft)
	assert.NotContains(t, rec.Body.String(), `value="Bella"`)
}

func TestCreateWizard_NegativeBirthmarkBlocksSubmit(t *testing.T) {
	f := newFixture(t)

	rec := postForm(f.ui, "/profiles/new", url.Values{
		"step":        {"4"},
		"action":      {"submit"},
		"name":        {"Rex"},
		"birthday":    {"2021-04-03"},
		"gender":      {"Male"},
		"birthmark":   {"-2"},
		"animal_type": {"Fish"},
	})
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "Birthmark must be a positive number")

	all, _ := f.repo.List(context.Background())
	assert.Empty(t, all)
}

func TestCreateWizard_ServerMessageOnValidationError(t *testing.T) {
	f := newFixture(t)

	rec := postForm(f.ui, "/profiles/new", url.Values{
		"step":   {"4"},
		"action": {"submit"},
		"name":   {"Rex"},
	})
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "Error: Missing required fields")
}

func TestCreateWizard_UploadsImageOnStepThree(t *testing.T) {
	f := newFixture(t)

	var body bytes.Buffer
	mw := multipart.NewWriter(&body)
	_ = mw.WriteField("step", "3")
	_ = mw.WriteField("action", "next")
	_ = mw.WriteField("name", "Rex")
	_ = mw.WriteField("animal_type", "Birds")
	fw, err := mw.CreateFormFile("image", "rex.png")
	require.NoError(t, err)
	_, _ = fw.Write([]byte("png"))
	require.NoError(t, mw.Close())

	req := httptest.NewRequest(http.MethodPost, "/profiles/new", &body)
	req.Header.Set("Content-Type", mw.FormDataContentType())
	rec := httptest.NewRecorder()
	f.ui.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	out := rec.Body.String()
	assert.Contains(t, out, "Step 4 of 4")
	assert.Regexp(t, `name="uploadedImage" value="\d+rex\.png"`, out)
}

func TestEditWizard_EmptyNameShowsError(t *testing.T) {
	f := newFixture(t)
	f.seed(t, "Rex", "Male", "Mammals")

	rec := get(f.ui, "/profiles/1/edit")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `value="Rex"`)

	rec = postForm(f.ui, "/profiles/1/edit", url.Values{"step": {"1"}, "action": {"next"}, "name": {""}})
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "Name is required")
	assert.Contains(t, rec.Body.String(), "Step 1 of 4")
}

func TestEditWizard_SubmitUpdates(t *testing.T) {
	f := newFixture(t)
	id := f.seed(t, "Rex", "Male", "Mammals")

	rec := postForm(f.ui, "/profiles/1/edit", url.Values{
		"step":        {"4"},
		"action":      {"submit"},
		"name":        {"Rexy"},
		"birthday":    {"2020-05-01"},
		"gender":      {"Male"},
		"birthmark":   {"4"},
		"animal_type": {"Mammals"},
	})
	require.Equal(t, http.StatusSeeOther, rec.Code)

	p, err := f.repo.GetByID(context.Background(), id)
	require.NoError(t, err)
	assert.Equal(t, "Rexy", p.Name)
	assert.Equal(t, 4, p.Birthmark)
}

func TestEditWizard_NotFound(t *testing.T) {
	f := newFixture(t)

	rec := get(f.ui, "/profiles/99/edit")
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Contains(t, rec.Body.String(), "Profile not found.")

	rec = get(f.ui, "/profiles/abc/edit")
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestCreateWizard_NetworkFailure(t *testing.T) {
	dead := httptest.NewServer(http.NotFoundHandler())
	base := dead.URL
	dead.Close()

	client, err := httpclient.NewWithBaseURL(base, time.Second)
	require.NoError(t, err)

	ui := chi.NewRouter()
	web.RegisterRoutes(ui, web.Deps{
		API:    web.NewAPIClient(client),
		Drafts: memory.NewDraftsRepo(0),
		Log:    logger.Nop(),
	})

	rec := postForm(ui, "/profiles/new", url.Values{
		"step":        {"4"},
		"action":      {"submit"},
		"name":        {"Rex"},
		"birthday":    {"2021-04-03"},
		"gender":      {"Male"},
		"birthmark":   {"1"},
		"animal_type": {"Fish"},
	})
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "Failed to submit. Please try again.")
}

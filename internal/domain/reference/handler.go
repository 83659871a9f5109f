package reference

import (
	"net/http"

	"animal-id-card/internal/platform/logger"
	"animal-id-card/internal/platform/respond"

	"github.com/go-chi/chi/v5"
)

func RegisterRoutes(r chi.Router, repo Repository, log logger.Logger) {
	r.Get("/api/owner", listOwnersHandler(repo, log))
	r.Get("/api/address", listAddressesHandler(repo, log))
}

// listOwnersHandler godoc
// @Summary Listar dueños
// @Tags reference
// @Produce json
// @Success 200 {object} map[string]any "results=true, data=[owner]"
// @Failure 500 {object} respond.Failure
// @Router /api/owner [get]
func listOwnersHandler(repo Repository, log logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		items, err := repo.ListOwners(r.Context())
		if err != nil {
			log.Error("list owners failed", map[string]any{"error": err.Error()})
			respond.Fail(w, http.StatusInternalServerError, "Failed to fetch owners", err)
			return
		}
		if items == nil {
			items = []Owner{}
		}
		respond.OK(w, http.StatusOK, respond.Fields{"data": items})
	}
}

// listAddressesHandler godoc
// @Summary Listar direcciones
// @Tags reference
// @Produce json
// @Success 200 {object} map[string]any "results=true, data=[address]"
// @Failure 500 {object} respond.Failure
// @Router /api/address [get]
func listAddressesHandler(repo Repository, log logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		items, err := repo.ListAddresses(r.Context())
		if err != nil {
			log.Error("list addresses failed", map[string]any{"error": err.Error()})
			respond.Fail(w, http.StatusInternalServerError, "Failed to fetch addresses", err)
			return
		}
		if items == nil {
			items = []Address{}
		}
		respond.OK(w, http.StatusOK, respond.Fields{"data": items})
	}
}

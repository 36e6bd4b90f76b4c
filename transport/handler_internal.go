package transport

import (
	"net/http"

	"github.com/gorilla/mux"
)

// PurgeImage handler
// @Summary Purge an orphaned image
// @Description Deletes the file unless an ad or a user still references it
// @Tags Internal
// @Security InternalKey
// @Param name path string true "Stored image name"
// @Success 204
// @Failure 404
// @Failure 409 "image still referenced"
// @Router /internal/images/{name} [delete]
func (s *RestHandler) PurgeImage(w http.ResponseWriter, r *http.Request) {
	if err := s.ImageApp.PurgeOrphan(r.Context(), mux.Vars(r)["name"]); err != nil {
		writeError(w, err)
		return
	}
	writeStatus(w, http.StatusNoContent)
}

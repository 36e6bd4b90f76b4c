package transport

import (
	"encoding/json"
	"net/http"

	"github.com/muhammadheryan/classifieds/constant"
	"github.com/muhammadheryan/classifieds/model"
	utilsContext "github.com/muhammadheryan/classifieds/utils/context"
	"github.com/muhammadheryan/classifieds/utils/errors"
	"github.com/muhammadheryan/classifieds/utils/logger"
	"go.uber.org/zap"
)

func writeSuccess(w http.ResponseWriter, data interface{}) {
	writeJSON(w, http.StatusOK, data)
}

func writeJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		logger.Warn("[writeJSON] encode response", zap.String("error", err.Error()))
	}
}

// writeStatus answers with a bare status code.
func writeStatus(w http.ResponseWriter, status int) {
	w.WriteHeader(status)
}

// writeError maps err to its status code. Error responses carry no body.
func writeError(w http.ResponseWriter, err error) {
	writeStatus(w, errors.HTTPCode(err))
}

func writeImage(w http.ResponseWriter, data []byte) {
	w.Header().Set("Content-Type", constant.ImageContentType)
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write(data); err != nil {
		logger.Warn("[writeImage] write response", zap.String("error", err.Error()))
	}
}

// requirePrincipal answers 401 when the request carries no principal.
func requirePrincipal(w http.ResponseWriter, r *http.Request) (*model.Principal, bool) {
	principal, ok := utilsContext.GetPrincipal(r.Context())
	if !ok {
		writeError(w, errors.SetCustomError(constant.ErrUnauthorize))
		return nil, false
	}
	return principal, true
}

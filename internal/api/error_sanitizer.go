package api

import (
	"net/http"

	"github.com/thansohoc/numerology-api/internal/pkg/logger"
)

// Internal errors (database details, connection strings, stack traces) must
// never leak to API consumers. 5xx responses carry a generic Vietnamese
// message while the full error is logged server-side.

const internalErrorMessage = "Lỗi máy chủ nội bộ. Vui lòng thử lại sau."

// respondInternalError logs the internal error and sends the sanitized
// 500 response.
func respondInternalError(w http.ResponseWriter, internalErr error) {
	if internalErr != nil {
		logger.Error("internal server error", "error", internalErr.Error())
	}
	respondError(w, http.StatusInternalServerError, "INTERNAL_SERVER_ERROR", internalErrorMessage)
}

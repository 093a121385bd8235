package handler

import (
	"net/http"

	"github.com/felixcirebea/medicalsys-sub000/pkg/apperror"
	"github.com/felixcirebea/medicalsys-sub000/pkg/response"
)

// writeError maps business error kinds to status codes. Anything unclassified
// is reported as a 500 with the fallback message so internals do not leak.
func writeError(w http.ResponseWriter, err error, fallback string) {
	switch apperror.KindOf(err) {
	case apperror.KindNotFound:
		response.NotFound(w, err.Error())
	case apperror.KindConcurrency:
		response.Conflict(w, err.Error())
	case apperror.KindMismatch:
		response.BadRequest(w, err.Error())
	default:
		response.InternalServerError(w, fallback)
	}
}

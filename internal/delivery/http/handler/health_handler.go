package handler

import (
	"net/http"

	"visus-api/pkg/response"
)

func Health(w http.ResponseWriter, r *http.Request) {
	response.JSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// Preflight answers OPTIONS requests that reach the router without CORS
// preflight headers.
func Preflight(w http.ResponseWriter, r *http.Request) {
	response.NoContent(w)
}

package handler

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"visus-api/pkg/response"

	"github.com/gorilla/mux"
)

// decodeJSON reads the request body into dst. A body that is not JSON at all
// is a bad request; a field of the wrong type is reported like any other
// field validation failure.
func decodeJSON(w http.ResponseWriter, r *http.Request, dst interface{}) bool {
	err := json.NewDecoder(r.Body).Decode(dst)
	if err == nil {
		return true
	}

	var typeErr *json.UnmarshalTypeError
	if errors.As(err, &typeErr) && typeErr.Field != "" {
		response.ValidationError(w, map[string]string{
			typeErr.Field: typeErr.Field + " must be a " + typeErr.Type.String(),
		})
		return false
	}

	response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
	return false
}

// pathID parses the {id} route variable.
func pathID(w http.ResponseWriter, r *http.Request) (int64, bool) {
	id, err := strconv.ParseInt(mux.Vars(r)["id"], 10, 64)
	if err != nil {
		response.ValidationError(w, map[string]string{"id": "id must be an integer"})
		return 0, false
	}
	return id, true
}

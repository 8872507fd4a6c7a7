package http

import (
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/jwtauth/v5"

	"github.com/cuidaemprego/ponto-backend-go/internal/domain/auth"
	"github.com/cuidaemprego/ponto-backend-go/internal/domain/employee"
	"github.com/cuidaemprego/ponto-backend-go/internal/pkg/jwt"
)

// callerUserID extracts the authenticated user's id from the access token.
func callerUserID(r *http.Request) (int64, error) {
	_, claims, err := jwtauth.FromContext(r.Context())
	if err != nil {
		return 0, auth.ErrInvalidToken
	}
	userID, err := jwt.UserIDClaim(claims)
	if err != nil {
		return 0, auth.ErrInvalidToken
	}
	return userID, nil
}

// callerEmployeeID extracts the employee id bound to the access token. Users
// without a linked employee record cannot use employee endpoints.
func callerEmployeeID(r *http.Request) (int64, error) {
	_, claims, err := jwtauth.FromContext(r.Context())
	if err != nil {
		return 0, auth.ErrInvalidToken
	}
	employeeID := jwt.EmployeeIDClaim(claims)
	if employeeID == nil {
		return 0, employee.ErrEmployeeHasNoLinkedAccount
	}
	return *employeeID, nil
}

// pathID parses the {id} URL parameter.
func pathID(r *http.Request) (int64, bool) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	return id, err == nil && id > 0
}

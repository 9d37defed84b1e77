package middlewares

//go:generate mockgen -source=auth.go -destination=auth_mock.go -package=middlewares

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/sbilibin2017/gw-journal/internal/jwt"
	"github.com/sbilibin2017/gw-journal/internal/logger"
	"github.com/sbilibin2017/gw-journal/internal/models"
)

// Tokener extracts and verifies the bearer token of a request.
type Tokener interface {
	GetTokenFromRequest(ctx context.Context, r *http.Request) (string, error)
	GetClaims(ctx context.Context, tokenString string) (*jwt.Claims, error)
}

// UserGetter resolves a token subject to a stored user.
type UserGetter interface {
	GetByID(ctx context.Context, id int64) (*models.UserDB, error)
}

// RejectReason tells why a request was not authenticated.
type RejectReason int

const (
	ReasonMissingHeader RejectReason = iota + 1
	ReasonInvalidScheme
	ReasonInvalidToken
	ReasonUnknownUser
	ReasonLookupFailed
)

func (r RejectReason) String() string {
	switch r {
	case ReasonMissingHeader:
		return "missing authorization header"
	case ReasonInvalidScheme:
		return "invalid authorization scheme"
	case ReasonInvalidToken:
		return "invalid token"
	case ReasonUnknownUser:
		return "unknown user"
	case ReasonLookupFailed:
		return "user lookup failed"
	default:
		return "unknown"
	}
}

// AuthResult is either Authenticated with a user or Rejected with a reason.
type AuthResult struct {
	User   *models.UserDB
	Reason RejectReason
}

func Authenticated(user *models.UserDB) AuthResult {
	return AuthResult{User: user}
}

func Rejected(reason RejectReason) AuthResult {
	return AuthResult{Reason: reason}
}

// OK reports whether the result carries an authenticated user.
func (a AuthResult) OK() bool {
	return a.Reason == 0 && a.User != nil
}

// AuthErrorResponse is the body of a rejected request.
// swagger:model AuthErrorResponse
type AuthErrorResponse struct {
	// Rejection message
	// default: Forbidden
	Message string `json:"message"`
}

// Authenticate checks header presence, scheme, token and user existence, in that order.
func Authenticate(tokener Tokener, users UserGetter, r *http.Request) AuthResult {
	ctx := r.Context()

	tokenString, err := tokener.GetTokenFromRequest(ctx, r)
	switch {
	case errors.Is(err, jwt.ErrMissingAuthHeader):
		return Rejected(ReasonMissingHeader)
	case err != nil:
		return Rejected(ReasonInvalidScheme)
	}

	claims, err := tokener.GetClaims(ctx, tokenString)
	if err != nil {
		return Rejected(ReasonInvalidToken)
	}

	user, err := users.GetByID(ctx, claims.UserID)
	if err != nil {
		logger.Log.Errorw("failed to look up token user", "userID", claims.UserID, "err", err)
		return Rejected(ReasonLookupFailed)
	}
	if user == nil {
		return Rejected(ReasonUnknownUser)
	}

	return Authenticated(user)
}

// AuthMiddleware lets pre-flight requests through and otherwise requires an authenticated user,
// which is stored in the request context.
func AuthMiddleware(tokener Tokener, users UserGetter) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if r.Method == http.MethodOptions {
				next.ServeHTTP(w, r)
				return
			}

			result := Authenticate(tokener, users, r)
			if !result.OK() {
				reject(w, result.Reason)
				return
			}

			next.ServeHTTP(w, r.WithContext(WithUser(r.Context(), result.User)))
		})
	}
}

func reject(w http.ResponseWriter, reason RejectReason) {
	var (
		status  int
		message string
	)
	switch reason {
	case ReasonMissingHeader, ReasonInvalidScheme:
		status, message = http.StatusForbidden, "Forbidden"
	case ReasonInvalidToken:
		status, message = http.StatusUnauthorized, "Invalid token"
	case ReasonUnknownUser:
		status, message = http.StatusBadRequest, "Not Authorized"
	default:
		writeInternalError(w)
		return
	}

	logger.Log.Infow("authorization rejected", "reason", reason.String(), "status", status)

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(AuthErrorResponse{Message: message})
}

type userKey struct{}

// WithUser returns a copy of ctx carrying user.
func WithUser(ctx context.Context, user *models.UserDB) context.Context {
	return context.WithValue(ctx, userKey{}, user)
}

// GetUserFromContext returns the authenticated user, or nil outside AuthMiddleware.
func GetUserFromContext(ctx context.Context) *models.UserDB {
	user, _ := ctx.Value(userKey{}).(*models.UserDB)
	return user
}

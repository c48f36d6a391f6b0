package ws

import (
	"catering/infras/jwt"
	"catering/infras/otel"
	"catering/infras/websocket"
	"catering/shared/constant"
	gDto "catering/shared/dto"
	"catering/shared/failure"
	"catering/transport/http/response"
	"context"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"
)

// Authenticator resolves an access token into its principal.
type Authenticator interface {
	Authenticate(ctx context.Context, token string) (gDto.Principal, error)
}

type Handler struct {
	hub  websocket.Hub
	auth Authenticator
	otel otel.Otel
}

func New(hub websocket.Hub, auth Authenticator, otel otel.Otel) Handler {
	return Handler{
		hub:  hub,
		auth: auth,
		otel: otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Get("/ws", handler.Connect)
}

// Connect
// @Summary Open the notification socket
// @Description The access token is read from the Authorization header or the token query parameter.
// @Description Send {"event":"join-room","data":"admins"} to receive booking events.
// @Tags Notification
// @Param token query string false "access token"
// @Success 101
// @Failure 401 {object} response.Error
// @Router /v1/ws [get]
func (handler *Handler) Connect(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".ws.Connect")
	defer scope.End()

	token := r.URL.Query().Get(constant.RequestParamToken)

	if header := r.Header.Get(constant.RequestHeaderAuthorization); header != "" {
		extracted, err := jwt.ExtractTokenFromHeader(header)
		if err != nil {
			scope.TraceError(err)

			response.WithError(w, failure.Unauthorized("Invalid authorization header format"))

			return
		}

		token = extracted
	}

	if token == "" {
		response.WithError(w, failure.Unauthorized("Missing access token"))

		return
	}

	principal, err := handler.auth.Authenticate(ctx, token)
	if err != nil {
		scope.TraceError(err)

		response.WithError(w, err)

		return
	}

	if err := handler.hub.Serve(w, r, principal); err != nil {
		scope.TraceError(err)
		log.Warn().Err(err).Str("user_id", principal.ID).Msg("failed to open websocket")

		return
	}

	log.Debug().Str("user_id", principal.ID).Str("role", principal.Role.String()).Msg("websocket connected")
}

package handlers

import (
	"errors"
	"net/http"
	"strings"

	"github.com/labstack/echo-contrib/session"
	"github.com/labstack/echo/v4"
	"github.com/nfrund/remora/internal/domain"
	"github.com/nfrund/remora/internal/homeview"
	"github.com/nfrund/remora/internal/middleware"
	"github.com/nfrund/remora/internal/models"
)

// promptForInvitesThreshold is the realm size below which new members are
// nudged to invite others.
const promptForInvitesThreshold = 6

// HomeHandler serves the initial application-state snapshot for the main
// view.
type HomeHandler struct {
	builder *homeview.Builder
	realms  domain.RealmStore
	streams domain.StreamStore
}

// NewHomeHandler creates a new HomeHandler.
func NewHomeHandler(builder *homeview.Builder, realms domain.RealmStore, streams domain.StreamStore) *HomeHandler {
	return &HomeHandler{
		builder: builder,
		realms:  realms,
		streams: streams,
	}
}

// HomeGet handles GET / and GET /:lang/. It composes the snapshot request
// from the session, realm and query parameters and returns the completed
// snapshot as JSON.
func (h *HomeHandler) HomeGet(c echo.Context) error {
	ctx := c.Request().Context()
	log := middleware.FromContext(ctx)

	var params HomeRequest
	if err := c.Bind(&params); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "malformed query parameters")
	}
	if err := c.Validate(&params); err != nil {
		return err
	}

	realm, err := h.realms.FindBySubdomain(ctx, subdomain(c.Request().Host))
	if err != nil {
		if errors.Is(err, domain.ErrRealmNotFound) {
			return echo.NewHTTPError(http.StatusNotFound, "realm not found")
		}
		return err
	}

	user := middleware.UserFromContext(c)

	req := &homeview.Request{
		User:               user,
		Realm:              realm,
		Client:             clientName(c),
		InsecureDesktopApp: insecureDesktopApp(c),
		PathLanguage:       c.Param("lang"),
		SetLanguage: func(language string) {
			sess, err := session.Get("session", c)
			if err != nil {
				return
			}
			sess.Values["language"] = language
			_ = sess.Save(c.Request(), c.Response())
		},
	}

	if user != nil {
		req.NeedsTutorial = user.TutorialStatus == models.TutorialWaiting

		count, err := h.realms.UserCount(ctx, realm)
		if err != nil {
			return err
		}
		req.FirstInRealm = count == 1
		req.PromptForInvites = count < promptForInvitesThreshold && !user.IsGuest
	}

	if params.Stream != "" {
		stream, err := h.streams.FindByName(ctx, realm, params.Stream)
		switch {
		case errors.Is(err, domain.ErrStreamNotFound):
			// An unknown stream in the narrow is ignored; the client gets
			// the un-narrowed view.
			log.Debug("Ignoring narrow to unknown stream", "stream", params.Stream)
		case err != nil:
			return err
		default:
			req.NarrowStream = stream
			req.NarrowTopic = params.Topic
			req.Narrow = narrowTerms(params)
		}
	}

	queueID, snapshot, err := h.builder.BuildPageParams(ctx, req)
	if err != nil {
		log.Error("Failed to build home snapshot", "error", err)
		return echo.NewHTTPError(http.StatusInternalServerError, "failed to build initial state")
	}

	log.Info("Served home snapshot",
		"queue_id", queueID,
		"is_spectator", user == nil,
		"fields", snapshot.Len())

	return c.JSON(http.StatusOK, snapshot)
}

// narrowTerms re-encodes the query parameters as ordered narrow terms.
func narrowTerms(params HomeRequest) []models.NarrowTerm {
	terms := []models.NarrowTerm{{Operator: "stream", Operand: params.Stream}}
	if params.Topic != "" {
		terms = append(terms, models.NarrowTerm{Operator: "topic", Operand: params.Topic})
	}
	return terms
}

// subdomain extracts the realm subdomain from the request host.
func subdomain(host string) string {
	if i := strings.IndexByte(host, ':'); i >= 0 {
		host = host[:i]
	}
	if i := strings.IndexByte(host, '.'); i >= 0 {
		return host[:i]
	}
	return host
}

// clientName identifies the calling client from its user agent.
func clientName(c echo.Context) string {
	ua := c.Request().UserAgent()
	switch {
	case strings.Contains(ua, "RemoraDesktop"):
		return "desktop"
	case strings.Contains(ua, "RemoraMobile"):
		return "mobile"
	default:
		return "website"
	}
}

// insecureDesktopApp reports whether the caller is a desktop build old
// enough to have known security problems.
func insecureDesktopApp(c echo.Context) bool {
	ua := c.Request().UserAgent()
	return strings.Contains(ua, "RemoraDesktop/0.")
}

package httpadapter

import (
	"context"
	"errors"
	"slices"
	"strconv"
	"strings"

	"github.com/cloudwego/hertz/pkg/app"
	"github.com/cloudwego/hertz/pkg/app/server"
	"github.com/cloudwego/hertz/pkg/protocol/consts"

	"artifactsbot/internal/app/action"
	"artifactsbot/internal/app/ports"
	"artifactsbot/internal/app/replay"
	"artifactsbot/internal/app/status"
)

var ErrUnknownCharacter = errors.New("character is not configured")

// Handler serves the read-only operations surface.
type Handler struct {
	StatusUC   status.UseCase
	ReplayUC   replay.UseCase
	KPI        kpiSnapshotProvider
	Characters []string
}

func (h Handler) RegisterRoutes(s *server.Hertz) {
	s.Use(corsMiddleware())
	ops := s.Group("/ops")
	ops.GET("/kpi", h.kpi)
	ops.GET("/characters", h.characters)
	ops.GET("/characters/:name/replay", h.replay)
	ops.GET("/characters/:name/status", h.status)
}

func (h Handler) characters(_ context.Context, ctx *app.RequestContext) {
	names := append([]string{}, h.Characters...)
	ctx.JSON(consts.StatusOK, map[string]any{"characters": names})
}

func (h Handler) status(c context.Context, ctx *app.RequestContext) {
	name, err := h.requireCharacter(ctx)
	if err != nil {
		writeError(ctx, err)
		return
	}
	resp, err := h.StatusUC.Execute(c, status.Request{Character: name})
	if err != nil {
		writeError(ctx, err)
		return
	}
	ctx.JSON(consts.StatusOK, resp)
}

func (h Handler) replay(c context.Context, ctx *app.RequestContext) {
	name, err := h.requireCharacter(ctx)
	if err != nil {
		writeError(ctx, err)
		return
	}
	limit, _ := strconv.Atoi(string(ctx.Query("limit")))
	occurredFrom, _ := strconv.ParseInt(string(ctx.Query("occurred_from")), 10, 64)
	occurredTo, _ := strconv.ParseInt(string(ctx.Query("occurred_to")), 10, 64)
	resp, err := h.ReplayUC.Execute(c, replay.Request{
		Character:    name,
		Limit:        limit,
		OccurredFrom: occurredFrom,
		OccurredTo:   occurredTo,
	})
	if err != nil {
		writeError(ctx, err)
		return
	}
	ctx.JSON(consts.StatusOK, resp)
}

type kpiSnapshotProvider interface {
	SnapshotAny() any
}

func (h Handler) kpi(_ context.Context, ctx *app.RequestContext) {
	if h.KPI == nil {
		writeErrorBody(ctx, consts.StatusNotFound, "not_configured", "kpi provider not configured")
		return
	}
	ctx.JSON(consts.StatusOK, h.KPI.SnapshotAny())
}

func (h Handler) requireCharacter(ctx *app.RequestContext) (string, error) {
	name := strings.TrimSpace(ctx.Param("name"))
	if name == "" || !slices.Contains(h.Characters, name) {
		return "", ErrUnknownCharacter
	}
	return name, nil
}

func writeError(ctx *app.RequestContext, err error) {
	var apiErr *action.APIError
	switch {
	case errors.Is(err, ErrUnknownCharacter):
		writeErrorBody(ctx, consts.StatusNotFound, "unknown_character", err.Error())
	case errors.Is(err, replay.ErrInvalidRequest),
		errors.Is(err, status.ErrInvalidRequest):
		writeErrorBody(ctx, consts.StatusBadRequest, "bad_request", err.Error())
	case errors.Is(err, ports.ErrNotFound):
		writeErrorBody(ctx, consts.StatusNotFound, "not_found", err.Error())
	case errors.Is(err, action.ErrCooldownRejected):
		writeErrorBody(ctx, consts.StatusConflict, "character_on_cooldown", err.Error())
	case errors.As(err, &apiErr):
		writeErrorBody(ctx, consts.StatusBadGateway, "upstream_error_"+strconv.Itoa(apiErr.Code), apiErr.Message)
	case errors.Is(err, action.ErrProtocolViolation):
		writeErrorBody(ctx, consts.StatusBadGateway, "upstream_protocol_violation", err.Error())
	case errors.Is(err, action.ErrTransport):
		writeErrorBody(ctx, consts.StatusBadGateway, "upstream_unavailable", err.Error())
	default:
		writeErrorBody(ctx, consts.StatusInternalServerError, "internal_error", "internal error")
	}
}

func writeErrorBody(ctx *app.RequestContext, status int, code, message string) {
	ctx.JSON(status, map[string]any{
		"error": map[string]string{
			"code":    code,
			"message": message,
		},
	})
}

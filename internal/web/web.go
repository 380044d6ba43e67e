package web

import (
	"errors"
	"fmt"
	"io/fs"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/template/html"
	"github.com/samber/lo"
	"github.com/sirupsen/logrus"

	embedded "github.com/goserg/bzstats"
	"github.com/goserg/bzstats/internal/chart"
	"github.com/goserg/bzstats/internal/config"
	"github.com/goserg/bzstats/internal/domain"
	"github.com/goserg/bzstats/internal/ranking"
	"github.com/goserg/bzstats/internal/service"
	"github.com/goserg/bzstats/internal/source"
	"github.com/goserg/bzstats/internal/web/webpath"
)

type Server struct {
	service *service.Service
	app     *fiber.App
	cfg     config.Server
	log     logrus.FieldLogger
}

func New(svc *service.Service, cfg config.Server, log logrus.FieldLogger) (*Server, error) {
	server := Server{
		service: svc,
		cfg:     cfg,
		log:     log.WithField("name", "web"),
	}

	fsFS, err := fs.Sub(embedded.Views, "views")
	if err != nil {
		return nil, err
	}
	engine := html.NewFileSystem(http.FS(fsFS), ".html")
	engine.Reload(cfg.Debug)
	engine.Debug(cfg.Debug)
	engine.AddFunc("FormatDate", formatDate)

	app := fiber.New(fiber.Config{
		Views:                 engine,
		DisableStartupMessage: true,
	})
	app.Get(webpath.Home, server.handleMain)
	app.Get(webpath.ApiDashboard, server.handleDashboard)
	app.Get(webpath.ApiRankings, server.handleRankings)
	app.Get(webpath.ApiPlayer, server.handlePlayer)
	app.Get(webpath.ApiOptions, server.handleOptions)
	app.Post(webpath.ApiReload, server.handleReload)
	server.app = app
	return &server, nil
}

func (s *Server) Serve() error {
	addr := s.cfg.Host + ":" + strconv.Itoa(s.cfg.Port)
	s.log.WithField("addr", addr).Info("listening")
	return s.app.Listen(addr)
}

func (s *Server) Shutdown() error {
	return s.app.Shutdown()
}

func (s *Server) handleMain(ctx *fiber.Ctx) error {
	d := newData("Match statistics").With("Methods", ranking.Methods())
	snapshot, err := s.service.Snapshot()
	if err != nil {
		d = d.WithErrors(err)
	} else {
		d = d.With("LastUpdated", snapshot.LastUpdated).With("LoadedAt", snapshot.LoadedAt)
	}
	return ctx.Render("index", d, "layouts/main")
}

func (s *Server) handleDashboard(ctx *fiber.Ctx) error {
	q, req, err := parseQuery(ctx, s.service.Query())
	if err != nil {
		return s.fail(ctx, err)
	}
	surface := chart.NewCollector(req.targets()...)
	summary, err := s.service.Dashboard(q, surface)
	if err != nil {
		return s.fail(ctx, err)
	}
	return ctx.JSON(dashboardResponse{Summary: summary, Charts: surface.Charts()})
}

func (s *Server) handleRankings(ctx *fiber.Ctx) error {
	q, _, err := parseQuery(ctx, s.service.Query())
	if err != nil {
		return s.fail(ctx, err)
	}
	stats, err := s.service.Rankings(q)
	if err != nil {
		return s.fail(ctx, err)
	}
	return ctx.JSON(rankingsResponse{
		Method:   string(q.Method),
		MinGames: q.MinGames.String(),
		Period:   q.Period(),
		Bounded:  q.Method.Bounded(),
		Stats:    lo.Map(stats, func(st domain.CommanderStat, _ int) commanderDTO { return newCommanderDTO(st) }),
	})
}

func (s *Server) handlePlayer(ctx *fiber.Ctx) error {
	q, _, err := parseQuery(ctx, s.service.Query())
	if err != nil {
		return s.fail(ctx, err)
	}
	name, err := url.PathUnescape(ctx.Params("name"))
	if err != nil {
		return s.fail(ctx, fmt.Errorf("%w: %w", service.ErrInvalidQuery, err))
	}
	report, err := s.service.Player(q, name)
	if err != nil {
		return s.fail(ctx, err)
	}
	return ctx.JSON(newPlayerResponse(report))
}

func (s *Server) handleOptions(ctx *fiber.Ctx) error {
	opts, err := s.service.Options()
	if err != nil {
		return s.fail(ctx, err)
	}
	return ctx.JSON(opts)
}

func (s *Server) handleReload(ctx *fiber.Ctx) error {
	snapshot, err := s.service.Reload(ctx.UserContext())
	if err != nil {
		return s.fail(ctx, err)
	}
	return ctx.JSON(reloadResponse{
		SnapshotID:  snapshot.ID.String(),
		LastUpdated: snapshot.LastUpdated,
		Games:       len(snapshot.Games),
		Skipped:     len(snapshot.Warnings),
	})
}

func statusOf(err error) int {
	switch {
	case errors.Is(err, service.ErrInvalidQuery):
		return fiber.StatusBadRequest
	case errors.Is(err, service.ErrPlayerNotFound):
		return fiber.StatusNotFound
	case errors.Is(err, source.ErrLoad), errors.Is(err, service.ErrNotLoaded):
		return fiber.StatusServiceUnavailable
	default:
		return fiber.StatusInternalServerError
	}
}

func (s *Server) fail(ctx *fiber.Ctx, err error) error {
	status := statusOf(err)
	log := s.log.WithFields(logrus.Fields{
		"path":   ctx.Path(),
		"status": status,
	}).WithError(err)
	if status == fiber.StatusInternalServerError {
		log.Error("request failed")
	} else {
		log.Debug("request rejected")
	}
	resp := errorResponse{Error: err.Error()}
	if status == fiber.StatusBadRequest {
		for _, e := range unwrap(err) {
			if !errors.Is(e, service.ErrInvalidQuery) {
				resp.Details = append(resp.Details, e.Error())
			}
		}
	}
	return ctx.Status(status).JSON(resp)
}

func formatDate(t time.Time) string {
	return t.Format("02.01.2006 15:04")
}

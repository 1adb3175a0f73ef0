package service

import (
	"log/slog"
	"net/http"

	"github.com/Depado/ginprom"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/leighmacdonald/cslogstats/internal/log"
	"github.com/leighmacdonald/cslogstats/internal/stats"
	"github.com/leighmacdonald/cslogstats/pkg/logparse"
	sloggin "github.com/samber/slog-gin"
)

// RouterOpts controls the middleware stack of the API router.
type RouterOpts struct {
	Mode           string
	LogEnabled     bool
	LogLevel       log.Level
	CORSEnabled    bool
	CORSOrigins    []string
	MetricsEnabled bool
}

// Service exposes the read models of one parsed match log over HTTP.
type Service struct {
	provider *Provider
}

func New(provider *Provider) *Service {
	return &Service{provider: provider}
}

// CreateRouter constructs the gin engine with the configured middleware and
// the API routes attached.
func (s *Service) CreateRouter(opts RouterOpts) *gin.Engine {
	if opts.Mode != "" {
		gin.SetMode(opts.Mode)
	} else {
		gin.SetMode(gin.ReleaseMode)
	}

	engine := gin.New()
	engine.Use(gin.Recovery())

	if opts.LogEnabled {
		engine.Use(sloggin.NewWithConfig(slog.Default(), sloggin.Config{
			DefaultLevel: log.ToSlogLevel(opts.LogLevel),
		}))
	}

	if opts.CORSEnabled {
		useCors(engine, opts.CORSOrigins)
	}

	if opts.MetricsEnabled {
		usePrometheus(engine)
	}

	s.routes(engine)

	return engine
}

func (s *Service) routes(engine *gin.Engine) {
	api := engine.Group("/api")
	api.GET("/match", s.withResult(func(result *logparse.Result) any {
		return stats.ComputeMatch(result)
	}))
	api.GET("/scoreboard", s.withResult(func(result *logparse.Result) any {
		return stats.ComputeScoreboard(result)
	}))
	api.GET("/progression", s.withResult(func(result *logparse.Result) any {
		return stats.ComputeProgression(result)
	}))
	api.GET("/rounds", s.withResult(func(result *logparse.Result) any {
		return stats.ComputeRounds(result)
	}))
	api.GET("/parser/stats", s.withResult(func(result *logparse.Result) any {
		return parserStats{
			Counters:      result.Counters,
			StartIndex:    result.StartIndex,
			OfficialStart: result.OfficialStart,
		}
	}))
}

type parserStats struct {
	Counters      logparse.Counters `json:"counters"`
	StartIndex    int               `json:"start_index"`
	OfficialStart bool              `json:"official_start"`
}

func (s *Service) withResult(model func(result *logparse.Result) any) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		result, errResult := s.provider.Result()
		if errResult != nil {
			slog.Error("Failed to load match log", slog.String("error", errResult.Error()))
			ctx.JSON(http.StatusInternalServerError, gin.H{"error": "failed to load match log"})

			return
		}

		ctx.JSON(http.StatusOK, model(result))
	}
}

func useCors(engine *gin.Engine, origins []string) {
	if len(origins) == 0 {
		slog.Warn("No cors origins defined, disabling")

		return
	}

	corsConfig := cors.DefaultConfig()
	corsConfig.AllowOrigins = origins
	corsConfig.AllowWildcard = true

	engine.Use(cors.New(corsConfig))
}

func usePrometheus(engine *gin.Engine) {
	prom := ginprom.New(func(prom *ginprom.Prometheus) {
		prom.Namespace = "cslogstats"
		prom.Subsystem = "http"
	})
	engine.Use(prom.Instrument())
}

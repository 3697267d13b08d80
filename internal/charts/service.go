package charts

import (
	"context"
	"strings"
	"time"

	gocache "github.com/patrickmn/go-cache"

	"github.com/kevincorvallis/AI-ATC/pkg/logger"
)

const defaultCacheTTL = time.Hour

// Service resolves chart bundles, consulting the fetcher first and caching
// results per airport. Fetcher failures degrade to static links.
type Service struct {
	fetcher Fetcher // nil means static links only
	cache   *gocache.Cache
	logger  *logger.Logger
	now     func() time.Time
}

// NewService creates a chart service. fetcher may be nil; a zero cacheTTL
// uses the default.
func NewService(fetcher Fetcher, cacheTTL time.Duration, log *logger.Logger) *Service {
	if cacheTTL <= 0 {
		cacheTTL = defaultCacheTTL
	}
	return &Service{
		fetcher: fetcher,
		cache:   gocache.New(cacheTTL, cacheTTL/2),
		logger:  log.Named("charts"),
		now:     time.Now,
	}
}

// Get returns the chart bundle for an airport. It never returns an error for
// provider trouble; the static links are always available.
func (s *Service) Get(ctx context.Context, airport string) *Bundle {
	airport = strings.ToUpper(strings.TrimSpace(airport))
	if cached, ok := s.cache.Get(airport); ok {
		return cached.(*Bundle)
	}

	bundle := s.static(airport)
	if s.fetcher != nil {
		fetched, err := s.fetcher.GetCharts(ctx, airport)
		switch {
		case err != nil:
			s.logger.Debug("Chart provider failed, serving static links",
				logger.String("airport", airport), logger.Error(err))
		case fetched != nil:
			bundle.Charts = fetched.Charts
			if fetched.DiagramURL != "" {
				bundle.DiagramURL = fetched.DiagramURL
			}
		}
	}

	s.cache.Set(airport, bundle, gocache.DefaultExpiration)
	return bundle
}

func (s *Service) static(airport string) *Bundle {
	cycle := CurrentCycle(s.now())
	return &Bundle{
		Airport:      airport,
		Cycle:        cycle,
		DiagramURL:   DiagramURL(cycle, airport),
		AirNavURL:    AirNavURL(airport),
		SkyVectorURL: SkyVectorURL(airport),
		ChartFoxURL:  ChartFoxURL(airport),
		FetchedAt:    s.now(),
	}
}

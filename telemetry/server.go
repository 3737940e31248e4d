package telemetry

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/disintegration/imaging"
	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"card-garden/flower"
	"card-garden/logger"
)

const maxPreviewSize = 4096

// NewHandler serves flower previews and the metrics endpoint:
//
//	GET /flowers               kind names, one per line
//	GET /flowers/{kind}.svg    the generated document
//	GET /flowers/{kind}.png    rasterized, ?size=N (default defaultSize)
//	GET /metrics               prometheus exposition
//
// Unknown kinds get the lotus, the same as the generator.
func NewHandler(m *Metrics, defaultSize int, log *logger.Logger) http.Handler {
	s := &previewServer{metrics: m, size: defaultSize, log: log.With("component", "preview")}

	r := chi.NewRouter()
	r.Get("/flowers", s.kinds)
	r.Get("/flowers/{kind}.svg", s.svg)
	r.Get("/flowers/{kind}.png", s.png)
	r.Handle("/metrics", promhttp.HandlerFor(m.Registry(), promhttp.HandlerOpts{}))
	return r
}

type previewServer struct {
	metrics *Metrics
	size    int
	log     *logger.Logger
}

func (s *previewServer) kinds(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	for _, k := range flower.Kinds() {
		fmt.Fprintln(w, k.String())
	}
}

func (s *previewServer) kind(r *http.Request) flower.Kind {
	name := chi.URLParam(r, "kind")
	kind, ok := flower.ParseKind(name)
	if !ok {
		s.log.With("kind", name).Debug("unknown flower kind, serving lotus")
	}
	return kind
}

func (s *previewServer) svg(w http.ResponseWriter, r *http.Request) {
	start := time.Now()
	kind := s.kind(r)
	body := flower.Generate(kind).SVG()

	w.Header().Set("Content-Type", "image/svg+xml")
	w.Write(body)
	s.observe(kind, "svg", start)
}

func (s *previewServer) png(w http.ResponseWriter, r *http.Request) {
	start := time.Now()
	kind := s.kind(r)

	size := s.size
	if q := r.URL.Query().Get("size"); q != "" {
		n, err := strconv.Atoi(q)
		if err != nil || n < 1 || n > maxPreviewSize {
			http.Error(w, "size must be between 1 and 4096", http.StatusBadRequest)
			return
		}
		size = n
	}

	img, err := flower.Rasterize(flower.Generate(kind), size)
	if err != nil {
		http.Error(w, "render failed", http.StatusInternalServerError)
		s.log.With("kind", kind.String()).Error(err, "rasterize preview")
		return
	}
	w.Header().Set("Content-Type", "image/png")
	if err := imaging.Encode(w, img, imaging.PNG); err != nil {
		s.log.With("kind", kind.String()).Error(err, "encode preview")
		return
	}
	s.observe(kind, "png", start)
}

func (s *previewServer) observe(kind flower.Kind, format string, start time.Time) {
	s.metrics.renders.WithLabelValues(kind.String(), format).Inc()
	s.metrics.renderDur.WithLabelValues(format).Observe(time.Since(start).Seconds())
}

// Serve runs handler on addr until ctx is cancelled.
func Serve(ctx context.Context, addr string, handler http.Handler, log *logger.Logger) error {
	srv := &http.Server{
		Addr:              addr,
		Handler:           handler,
		ReadHeaderTimeout: 5 * time.Second,
	}

	errc := make(chan error, 1)
	go func() {
		log.With("addr", addr).Info("preview server listening")
		errc <- srv.ListenAndServe()
	}()

	select {
	case err := <-errc:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return fmt.Errorf("telemetry: serve %s: %w", addr, err)
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("telemetry: shutdown: %w", err)
		}
		return nil
	}
}

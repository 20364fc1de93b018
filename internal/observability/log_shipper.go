package observability

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"strings"
	"sync"
	"sync/atomic"
	"time"

	"github.com/riskibarqy/football-data/internal/config"
	"github.com/riskibarqy/football-data/internal/platform/logging"
	"github.com/valyala/fasthttp"
	"go.uber.org/zap/zapcore"
)

const (
	logShipQueueSize    = 1024
	logShipDrainTimeout = 5 * time.Second
)

// InitLogShipper tees entries at or above LOG_SHIP_MIN_LEVEL to an HTTP log
// ingest endpoint. Shipping is asynchronous; a full queue drops entries.
func InitLogShipper(cfg config.Config, base *logging.Logger) (*logging.Logger, func(context.Context) error, error) {
	if base == nil {
		base = logging.Default()
	}
	noop := func(context.Context) error { return nil }

	if !cfg.LogShipEnabled {
		base.Info("log shipping disabled", "reason", "LOG_SHIP_ENABLED=false")
		return base, noop, nil
	}

	endpoint := normalizeLogShipEndpoint(cfg.LogShipEndpoint)
	if endpoint == "" {
		return nil, nil, fmt.Errorf("log ship endpoint cannot be empty")
	}

	shipper := newLogShipper(endpoint, cfg.LogShipToken, cfg.LogShipTimeout)
	core := zapcore.NewCore(
		zapcore.NewJSONEncoder(zapcore.EncoderConfig{
			TimeKey:        "dt",
			LevelKey:       "level",
			NameKey:        "logger",
			MessageKey:     "message",
			StacktraceKey:  "stacktrace",
			LineEnding:     zapcore.DefaultLineEnding,
			EncodeLevel:    zapcore.LowercaseLevelEncoder,
			EncodeTime:     zapcore.RFC3339NanoTimeEncoder,
			EncodeDuration: zapcore.StringDurationEncoder,
		}),
		zapcore.AddSync(shipper),
		cfg.LogShipMinLevel,
	)

	logger := base.Tee(core)
	logger.Info("log shipping enabled",
		"endpoint", endpoint,
		"min_level", cfg.LogShipMinLevel.String(),
	)

	return logger, func(ctx context.Context) error {
		if ctx == nil {
			ctx = context.Background()
		}
		if _, ok := ctx.Deadline(); !ok {
			var cancel context.CancelFunc
			ctx, cancel = context.WithTimeout(ctx, logShipDrainTimeout)
			defer cancel()
		}
		if err := shipper.Close(ctx); err != nil {
			return fmt.Errorf("drain log ship queue: %w", err)
		}
		return nil
	}, nil
}

func normalizeLogShipEndpoint(raw string) string {
	value := strings.TrimSpace(raw)
	if value == "" {
		return ""
	}
	if strings.HasPrefix(value, "http://") || strings.HasPrefix(value, "https://") {
		return value
	}
	return "https://" + value
}

type logShipper struct {
	endpoint string
	token    string
	timeout  time.Duration
	client   *fasthttp.Client

	queue     chan []byte
	queueMu   sync.RWMutex
	closeOnce sync.Once
	closed    atomic.Bool
	wg        sync.WaitGroup
	dropped   atomic.Uint64
}

func newLogShipper(endpoint, token string, timeout time.Duration) *logShipper {
	if timeout <= 0 {
		timeout = 3 * time.Second
	}

	s := &logShipper{
		endpoint: endpoint,
		token:    strings.TrimSpace(token),
		timeout:  timeout,
		client: &fasthttp.Client{
			Name:         "football-data-log-shipper",
			ReadTimeout:  timeout,
			WriteTimeout: timeout,
		},
		queue: make(chan []byte, logShipQueueSize),
	}
	s.wg.Add(1)
	go s.run()

	return s
}

func (s *logShipper) Write(p []byte) (int, error) {
	payload := bytes.TrimSpace(p)
	if len(payload) == 0 {
		return len(p), nil
	}

	s.queueMu.RLock()
	defer s.queueMu.RUnlock()
	if s.closed.Load() {
		return len(p), nil
	}

	// zap reuses its buffer once Write returns.
	copied := append([]byte(nil), payload...)

	select {
	case s.queue <- copied:
	default:
		dropped := s.dropped.Add(1)
		if dropped == 1 || dropped%100 == 0 {
			fmt.Fprintf(os.Stderr, "log ship queue full; dropped=%d\n", dropped)
		}
	}

	return len(p), nil
}

func (s *logShipper) Sync() error {
	return nil
}

func (s *logShipper) run() {
	defer s.wg.Done()

	for payload := range s.queue {
		if err := s.send(payload); err != nil {
			fmt.Fprintf(os.Stderr, "log ship failed: %v\n", err)
		}
	}
}

func (s *logShipper) send(payload []byte) error {
	req := fasthttp.AcquireRequest()
	resp := fasthttp.AcquireResponse()
	defer fasthttp.ReleaseRequest(req)
	defer fasthttp.ReleaseResponse(resp)

	req.SetRequestURI(s.endpoint)
	req.Header.SetMethod(fasthttp.MethodPost)
	req.Header.SetContentType("application/json")
	if s.token != "" {
		req.Header.Set("Authorization", "Bearer "+s.token)
	}
	req.SetBodyRaw(payload)

	if err := s.client.DoTimeout(req, resp, s.timeout); err != nil {
		return err
	}
	if status := resp.StatusCode(); status >= fasthttp.StatusMultipleChoices {
		return fmt.Errorf("non-2xx status=%d", status)
	}
	return nil
}

func (s *logShipper) Close(ctx context.Context) error {
	s.closeOnce.Do(func() {
		s.queueMu.Lock()
		s.closed.Store(true)
		close(s.queue)
		s.queueMu.Unlock()
	})

	done := make(chan struct{})
	go func() {
		s.wg.Wait()
		close(done)
	}()

	select {
	case <-done:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

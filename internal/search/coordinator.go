package search

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/mariusjb/holidaze-gateway/internal/domain"
)

var (
	// ErrSuperseded возвращается, когда результат запроса устарел:
	// пока он выполнялся, по тому же потоку ввода был выпущен более новый
	ErrSuperseded = errors.New("search: query superseded by a newer one")

	// ErrSearchFailed возвращается при сетевой ошибке или ошибке API
	ErrSearchFailed = errors.New("search: request failed")
)

// VenueSearcher интерфейс клиента поиска venues
type VenueSearcher interface {
	SearchVenues(ctx context.Context, q string, limit, page int) ([]domain.Venue, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
}

// MetricsRecorder интерфейс для записи метрик вытесненных запросов
type MetricsRecorder interface {
	ObserveSearchSuperseded()
}

// Coordinator реализует политику "last request wins" для search-as-you-type:
// каждый новый запрос отменяет незавершенный предыдущий через его
// context.CancelFunc, а результат отмененного запроса отбрасывается, даже
// если он успел прийти. Сравнение идет по поколению запроса, не по времени.
type Coordinator struct {
	searcher VenueSearcher
	log      Logger
	metrics  MetricsRecorder

	mu     sync.Mutex
	cancel context.CancelFunc
	gen    uint64
}

// NewCoordinator создает координатор поиска
func NewCoordinator(searcher VenueSearcher, log Logger) *Coordinator {
	return &Coordinator{
		searcher: searcher,
		log:      log,
	}
}

// WithMetrics включает запись метрик вытесненных запросов
func (c *Coordinator) WithMetrics(rec MetricsRecorder) *Coordinator {
	c.metrics = rec
	return c
}

// Search выполняет поиск, отменяя незавершенный предыдущий запрос.
// Возвращает ErrSuperseded, если за время выполнения появился более новый
// запрос - результат в этом случае никогда не показывается.
func (c *Coordinator) Search(ctx context.Context, q string, limit, page int) ([]domain.Venue, error) {
	c.mu.Lock()
	if c.cancel != nil {
		c.cancel()
	}
	ctx, cancel := context.WithCancel(ctx)
	c.cancel = cancel
	c.gen++
	gen := c.gen
	c.mu.Unlock()

	venues, err := c.searcher.SearchVenues(ctx, q, limit, page)

	c.mu.Lock()
	current := gen == c.gen
	if current {
		// Запрос остался последним - освобождаем его cancel
		cancel()
		c.cancel = nil
	}
	c.mu.Unlock()

	if !current {
		c.log.Info("Search: query %q superseded, result discarded", q)
		c.observeSuperseded()
		return nil, ErrSuperseded
	}
	if err != nil {
		if errors.Is(err, context.Canceled) {
			c.observeSuperseded()
			return nil, ErrSuperseded
		}
		c.log.Warn("Search: query %q failed: %v", q, err)
		return nil, fmt.Errorf("%w: %v", ErrSearchFailed, err)
	}

	c.log.Info("Search: query %q returned %d venues", q, len(venues))
	return venues, nil
}

func (c *Coordinator) observeSuperseded() {
	if c.metrics != nil {
		c.metrics.ObserveSearchSuperseded()
	}
}

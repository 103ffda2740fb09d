package counter

import (
	"time"

	kitmetrics "github.com/go-kit/kit/metrics"
	"github.com/prometheus/client_golang/prometheus"

	"github.com/hitbadge/hitbadge/platform/metrics"
)

const serviceName = "counter"

type instrumentService struct {
	component string
	errCount  kitmetrics.Counter
	next      Service
	opCount   kitmetrics.Counter
	opLatency *prometheus.HistogramVec
	store     string
}

// InstrumentServiceMiddleware observes key aspects of Service operations and
// exposes Prometheus metrics.
func InstrumentServiceMiddleware(
	component, store string,
	errCount kitmetrics.Counter,
	opCount kitmetrics.Counter,
	opLatency *prometheus.HistogramVec,
) ServiceMiddleware {
	return func(next Service) Service {
		return &instrumentService{
			component: component,
			errCount:  errCount,
			next:      next,
			opCount:   opCount,
			opLatency: opLatency,
			store:     store,
		}
	}
}

func (s *instrumentService) Increment(key string) (count uint64, err error) {
	defer func(begin time.Time) {
		s.track("Increment", begin, err)
	}(time.Now())

	return s.next.Increment(key)
}

func (s *instrumentService) Peek(key string) (count uint64, err error) {
	defer func(begin time.Time) {
		s.track("Peek", begin, err)
	}(time.Now())

	return s.next.Peek(key)
}

func (s *instrumentService) Flush() (err error) {
	defer func(begin time.Time) {
		s.track("Flush", begin, err)
	}(time.Now())

	return s.next.Flush()
}

func (s *instrumentService) Close() (err error) {
	defer func(begin time.Time) {
		s.track("Close", begin, err)
	}(time.Now())

	return s.next.Close()
}

func (s *instrumentService) track(method string, begin time.Time, err error) {
	if err != nil {
		s.errCount.With(
			metrics.FieldComponent, s.component,
			metrics.FieldMethod, method,
			metrics.FieldService, serviceName,
			metrics.FieldStore, s.store,
		).Add(1)

		return
	}

	s.opCount.With(
		metrics.FieldComponent, s.component,
		metrics.FieldMethod, method,
		metrics.FieldService, serviceName,
		metrics.FieldStore, s.store,
	).Add(1)

	s.opLatency.With(prometheus.Labels{
		metrics.FieldComponent: s.component,
		metrics.FieldMethod:    method,
		metrics.FieldService:   serviceName,
		metrics.FieldStore:     s.store,
	}).Observe(time.Since(begin).Seconds())
}

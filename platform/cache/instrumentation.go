package cache

import (
	"time"

	kitmetrics "github.com/go-kit/kit/metrics"
	"github.com/prometheus/client_golang/prometheus"

	"github.com/hitbadge/hitbadge/platform/metrics"
)

type instrumentByteService struct {
	component string
	errCount  kitmetrics.Counter
	hitCount  kitmetrics.Counter
	next      ByteService
	opCount   kitmetrics.Counter
	opLatency *prometheus.HistogramVec
	service   string
	store     string
}

// InstrumentByteServiceMiddleware observes key aspects of ByteService
// operations and exposes Prometheus metrics.
func InstrumentByteServiceMiddleware(
	component, service, store string,
	errCount kitmetrics.Counter,
	hitCount kitmetrics.Counter,
	opCount kitmetrics.Counter,
	opLatency *prometheus.HistogramVec,
) ByteServiceMiddleware {
	return func(next ByteService) ByteService {
		return &instrumentByteService{
			component: component,
			errCount:  errCount,
			hitCount:  hitCount,
			next:      next,
			opCount:   opCount,
			opLatency: opLatency,
			service:   service,
			store:     store,
		}
	}
}

func (s *instrumentByteService) Get(ns, key string) (data []byte, err error) {
	defer func(begin time.Time) {
		if err == nil {
			s.trackHit("Get")
		}
		if IsKeyNotFound(err) {
			s.track("Get", begin, nil)
			return
		}

		s.track("Get", begin, err)
	}(time.Now())

	return s.next.Get(ns, key)
}

func (s *instrumentByteService) Set(ns, key string, data []byte) (err error) {
	defer func(begin time.Time) {
		s.track("Set", begin, err)
	}(time.Now())

	return s.next.Set(ns, key, data)
}

func (s *instrumentByteService) track(method string, begin time.Time, err error) {
	if err != nil {
		s.errCount.With(
			metrics.FieldComponent, s.component,
			metrics.FieldMethod, method,
			metrics.FieldService, s.service,
			metrics.FieldStore, s.store,
		).Add(1)

		return
	}

	s.opCount.With(
		metrics.FieldComponent, s.component,
		metrics.FieldMethod, method,
		metrics.FieldService, s.service,
		metrics.FieldStore, s.store,
	).Add(1)

	s.opLatency.With(prometheus.Labels{
		metrics.FieldComponent: s.component,
		metrics.FieldMethod:    method,
		metrics.FieldService:   s.service,
		metrics.FieldStore:     s.store,
	}).Observe(time.Since(begin).Seconds())
}

func (s *instrumentByteService) trackHit(method string) {
	s.hitCount.With(
		metrics.FieldComponent, s.component,
		metrics.FieldMethod, method,
		metrics.FieldService, s.service,
		metrics.FieldStore, s.store,
	).Add(1)
}

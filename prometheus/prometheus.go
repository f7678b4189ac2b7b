// Singleton so that it's easier to use in other packages
package prometheus

import (
	"strings"
	"sync"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/relistan/go-director"
	"github.com/sirupsen/logrus"
)

const (
	FramesPublished     = "nativebus_frames_published"
	DeliveriesForwarded = "nativebus_deliveries_forwarded"
	RelayErrors         = "nativebus_relay_errors"

	DefaultReportInterval = 10 * time.Second
)

var (
	mutex    = &sync.RWMutex{}
	counters = make(map[string]float64, 0)

	prometheusMutex       = &sync.RWMutex{}
	prometheusCounters    = make(map[string]prometheus.Counter)
	prometheusVecCounters = make(map[string]*prometheus.CounterVec)

	initOnce = &sync.Once{}

	looperMutex = &sync.Mutex{}
	looper      director.Looper
)

// Start launches a reporter that logs, and then resets, every Incr counter
// once per interval.
func Start(interval time.Duration) {
	if interval <= 0 {
		interval = DefaultReportInterval
	}

	looperMutex.Lock()
	defer looperMutex.Unlock()

	if looper != nil {
		return
	}

	looper = director.NewTimedLooper(director.FOREVER, interval, make(chan error, 1))

	logrus.Debugf("Launching stats reporter ('%s' interval)", interval)

	go looper.Loop(func() error {
		report(interval)
		return nil
	})
}

// Stop stops the reporter launched by Start
func Stop() {
	looperMutex.Lock()
	defer looperMutex.Unlock()

	if looper == nil {
		return
	}

	looper.Quit()
	looper = nil
}

func report(interval time.Duration) {
	mutex.Lock()
	defer mutex.Unlock()

	for counterName, counterValue := range counters {
		perSecond := counterValue / interval.Seconds()

		logrus.Infof("STATS [%s]: %.2f / %s (%.2f/s)", counterName, counterValue,
			interval, perSecond)

		// Reset it
		counters[counterName] = 0
	}
}

// InitPrometheusMetrics sets up prometheus counters. Safe to call more than once.
func InitPrometheusMetrics() {
	initOnce.Do(func() {
		prometheusMutex.Lock()
		defer prometheusMutex.Unlock()

		prometheusCounters[FramesPublished] = promauto.NewCounter(prometheus.CounterOpts{
			Name: FramesPublished,
			Help: "Total number of local frames published to the bus",
		})

		prometheusCounters[DeliveriesForwarded] = promauto.NewCounter(prometheus.CounterOpts{
			Name: DeliveriesForwarded,
			Help: "Total number of bus deliveries written to the local side",
		})

		prometheusVecCounters[RelayErrors] = promauto.NewCounterVec(prometheus.CounterOpts{
			Name: RelayErrors,
			Help: "Number of errors that terminated the relay, by side",
		}, []string{"side"})
	})
}

// GetCounter returns a counter created by InitPrometheusMetrics or IncrPromCounter
func GetCounter(key string) prometheus.Counter {
	prometheusMutex.RLock()
	defer prometheusMutex.RUnlock()

	return prometheusCounters[normalize(key)]
}

// GetVecCounter returns a vec counter created by InitPrometheusMetrics
func GetVecCounter(key string) *prometheus.CounterVec {
	prometheusMutex.RLock()
	defer prometheusMutex.RUnlock()

	return prometheusVecCounters[key]
}

// IncrPromCounter increments a prometheus counter by the given amount
func IncrPromCounter(key string, amount float64) {
	InitPrometheusMetrics()

	key = normalize(key)

	prometheusMutex.Lock()
	defer prometheusMutex.Unlock()

	c, ok := prometheusCounters[key]
	if !ok {
		c = promauto.NewCounter(prometheus.CounterOpts{
			Name: key,
			Help: "Auto-created counter",
		})

		prometheusCounters[key] = c
	}

	c.Add(amount)
}

// IncrPromErrorCounter increments the relay error counter for the given side
func IncrPromErrorCounter(side string) {
	InitPrometheusMetrics()

	if c := GetVecCounter(RelayErrors); c != nil {
		c.WithLabelValues(side).Inc()
	}
}

// Incr increments a reporter counter by the given amount
func Incr(name string, value float64) {
	mutex.Lock()
	defer mutex.Unlock()

	counters[name] += value
}

// Value returns the current (not yet reported) value of a reporter counter
func Value(name string) float64 {
	mutex.RLock()
	defer mutex.RUnlock()

	return counters[name]
}

func normalize(key string) string {
	return strings.Replace(key, "-", "_", -1)
}

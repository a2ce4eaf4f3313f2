package email

import (
	"context"
	"sync"
	"time"

	"go.uber.org/zap"

	"exeat_backend/internals/configs"
	"exeat_backend/internals/metrics"
)

type Job struct {
	To      string
	Subject string
	HTML    string
}

// Dispatcher sends mail on background workers. Enqueue never blocks:
// when the queue is full the job is dropped and logged.
type Dispatcher struct {
	mailer      Mailer
	jobs        chan Job
	sendTimeout time.Duration

	mu     sync.RWMutex
	closed bool
	wg     sync.WaitGroup
}

func NewDispatcher(m Mailer, workers, queueSize int) *Dispatcher {
	if workers < 1 {
		workers = 1
	}
	if queueSize < 1 {
		queueSize = 1
	}
	d := &Dispatcher{
		mailer:      m,
		jobs:        make(chan Job, queueSize),
		sendTimeout: 30 * time.Second,
	}
	for i := 0; i < workers; i++ {
		d.wg.Add(1)
		go d.worker(i)
	}
	return d
}

func (d *Dispatcher) Enqueue(to, subject, html string) bool {
	d.mu.RLock()
	defer d.mu.RUnlock()
	if d.closed {
		configs.Log().Warn("email dropped, dispatcher closed", zap.String("to", to), zap.String("subject", subject))
		metrics.EmailsProcessed.WithLabelValues("dropped").Inc()
		return false
	}
	select {
	case d.jobs <- Job{To: to, Subject: subject, HTML: html}:
		return true
	default:
		configs.Log().Warn("email dropped, queue full", zap.String("to", to), zap.String("subject", subject))
		metrics.EmailsProcessed.WithLabelValues("dropped").Inc()
		return false
	}
}

// Close stops accepting jobs and waits until the queue is drained.
func (d *Dispatcher) Close() {
	d.mu.Lock()
	if d.closed {
		d.mu.Unlock()
		return
	}
	d.closed = true
	close(d.jobs)
	d.mu.Unlock()
	d.wg.Wait()
}

func (d *Dispatcher) worker(id int) {
	defer d.wg.Done()
	for job := range d.jobs {
		d.send(id, job)
	}
}

func (d *Dispatcher) send(worker int, job Job) {
	defer func() {
		if r := recover(); r != nil {
			configs.Log().Error("email worker panic", zap.Int("worker", worker), zap.Any("panic", r))
			metrics.EmailsProcessed.WithLabelValues("failed").Inc()
		}
	}()

	ctx, cancel := context.WithTimeout(context.Background(), d.sendTimeout)
	defer cancel()

	start := time.Now()
	err := d.mailer.Send(ctx, job.To, job.Subject, job.HTML)
	metrics.EmailSendDuration.Observe(time.Since(start).Seconds())
	if err != nil {
		configs.Log().Error("failed to send email",
			zap.Int("worker", worker),
			zap.String("to", job.To),
			zap.String("subject", job.Subject),
			zap.Error(err),
		)
		metrics.EmailsProcessed.WithLabelValues("failed").Inc()
		return
	}
	configs.Log().Info("email sent", zap.String("to", job.To), zap.String("subject", job.Subject))
	metrics.EmailsProcessed.WithLabelValues("sent").Inc()
}

// Package notify delivers outbound emails through the external notification
// service. Delivery is fire and forget: at most once, best effort, no retry.
package notify

import (
	"log"
	"net/http"
	"net/url"
	"time"
)

// Mensaje is a single outbound email.
type Mensaje struct {
	Destino   string
	Asunto    string
	Contenido string
}

// Notifier accepts messages for background delivery.
type Notifier interface {
	Enqueue(m Mensaje)
}

// EmailDispatcher queues messages and drains them with a single worker
// goroutine. Enqueue never blocks the caller; when the queue is full the
// message is dropped. Contenido may carry a plaintext clave so it is never
// written to the log.
type EmailDispatcher struct {
	baseURL string
	client  *http.Client
	queue   chan Mensaje
	done    chan struct{}
}

const queueSize = 64

// NewEmailDispatcher starts a dispatcher delivering to the notification
// service at baseURL.
func NewEmailDispatcher(baseURL string) *EmailDispatcher {
	d := &EmailDispatcher{
		baseURL: baseURL,
		client:  &http.Client{Timeout: 10 * time.Second},
		queue:   make(chan Mensaje, queueSize),
		done:    make(chan struct{}),
	}
	go d.run()
	return d
}

// Enqueue submits a message for delivery without waiting for the outcome.
func (d *EmailDispatcher) Enqueue(m Mensaje) {
	select {
	case d.queue <- m:
	default:
		log.Printf("notify: queue full, dropping email to %s", m.Destino)
	}
}

// Close stops the worker after draining queued messages.
func (d *EmailDispatcher) Close() {
	close(d.queue)
	<-d.done
}

func (d *EmailDispatcher) run() {
	defer close(d.done)
	for m := range d.queue {
		d.send(m)
	}
}

func (d *EmailDispatcher) send(m Mensaje) {
	params := url.Values{}
	params.Set("correo_destino", m.Destino)
	params.Set("asunto", m.Asunto)
	params.Set("contenido", m.Contenido)

	resp, err := d.client.Get(d.baseURL + "/email?" + params.Encode())
	if err != nil {
		log.Printf("notify: email to %s failed: %v", m.Destino, err)
		return
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		log.Printf("notify: email to %s returned status %d", m.Destino, resp.StatusCode)
	}
}

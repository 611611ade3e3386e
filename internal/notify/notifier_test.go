package notify

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEmailDispatcher_Send(t *testing.T) {
	received := make(chan *http.Request, 1)
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		received <- r
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	d := NewEmailDispatcher(srv.URL)
	d.Enqueue(Mensaje{
		Destino:   "ana@x.com",
		Asunto:    "credenciales de acceso al sistema",
		Contenido: "Hola Ana",
	})
	d.Close()

	select {
	case r := <-received:
		assert.Equal(t, "/email", r.URL.Path)
		q := r.URL.Query()
		assert.Equal(t, "ana@x.com", q.Get("correo_destino"))
		assert.Equal(t, "credenciales de acceso al sistema", q.Get("asunto"))
		assert.Equal(t, "Hola Ana", q.Get("contenido"))
	default:
		t.Fatal("no notification request received")
	}
}

func TestEmailDispatcher_DeliveryFailureIsSwallowed(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer srv.Close()

	d := NewEmailDispatcher(srv.URL)
	// Must not panic or block the caller regardless of the outcome.
	d.Enqueue(Mensaje{Destino: "ana@x.com", Asunto: "x", Contenido: "y"})
	d.Close()
}

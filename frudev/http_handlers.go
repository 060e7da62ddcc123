package frudev

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// NewRouter wires the admin HTTP API. It is a thin operator surface
// over the same manager the bus objects use; it introduces no second
// inventory source.
func (m *Manager) NewRouter() *mux.Router {
	router := mux.NewRouter()

	router.Methods("GET").Path("/fru").HandlerFunc(m.fruHandler)
	router.Methods("PUT").Path("/fru/rescan").HandlerFunc(m.rescanHandler)
	router.Methods("GET").Path("/healthz").HandlerFunc(m.healthzHandler)
	router.Path("/metrics").Handler(promhttp.Handler())

	return router
}

func (m *Manager) fruHandler(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")

	err := json.NewEncoder(w).Encode(m.Inventory())
	if err != nil {
		m.logger.Log("level", "error", "msg", "encoding inventory record failed", "stack", fmt.Sprintf("%#v", err))
	}
}

func (m *Manager) rescanHandler(w http.ResponseWriter, r *http.Request) {
	err := m.Rescan()
	if err != nil {
		m.logger.Log("level", "error", "msg", "rescan failed", "stack", fmt.Sprintf("%#v", err))
		w.WriteHeader(http.StatusInternalServerError)
		w.Write([]byte("rescan failed"))
		return
	}

	w.WriteHeader(http.StatusOK)
	w.Write([]byte("ok"))
}

func (m *Manager) healthzHandler(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusOK)
	w.Write([]byte("ok"))
}

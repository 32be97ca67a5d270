package api

import (
	"fmt"
	"net/http"
)

type healthStatus struct {
	Status string `json:"status"`
}

func (a *API) live(w http.ResponseWriter, _ *http.Request) {
	respondData(w, healthStatus{Status: "alive"})
}

// ready runs the readiness checks in order and fails on the first error.
func (a *API) ready(w http.ResponseWriter, r *http.Request) {
	for i, check := range a.checks {
		if err := check(r.Context()); err != nil {
			respondError(w, r, a.logger, ErrNotReady.WithMessage(fmt.Sprintf("check %d: %v", i, err)))
			return
		}
	}
	respondData(w, healthStatus{Status: "ready"})
}

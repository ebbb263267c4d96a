// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"

	"github.com/MKhiriev/slot-validation-service/internal/app"
	"github.com/MKhiriev/slot-validation-service/internal/utils"
	"github.com/go-chi/chi/v5"
)

// CheckHTTPMethod is meant to be registered with [chi.Mux.MethodNotAllowed].
//
// Instead of chi's 405 it answers 404 when the matched route does not serve
// the requested method, so a wrong method looks the same as a wrong path.
// Routes are matched by exact pattern; parameterised patterns are not
// expanded.
func CheckHTTPMethod(router *chi.Mux) func(w http.ResponseWriter, r *http.Request) {
	return func(w http.ResponseWriter, r *http.Request) {
		var foundRoute chi.Route
		for _, route := range router.Routes() {
			if route.Pattern == r.URL.Path {
				foundRoute = route
				break
			}
		}

		if _, ok := foundRoute.Handlers[r.Method]; !ok {
			utils.WriteError(w, app.MsgNotFound, http.StatusNotFound)
			return
		}

		router.ServeHTTP(w, r)
	}
}

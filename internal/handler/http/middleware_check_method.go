// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"context"
	"net/http"

	"github.com/go-chi/chi/v5"
)

// CheckHTTPMethod is registered as the router's MethodNotAllowed handler.
// A request whose method has no handler for the resolved route gets 404,
// the same answer as an unknown path, instead of chi's 405.
//
// The path is resolved with [chi.Mux.Match], so parameterised routes such
// as /api/feedback/{key} are found the same way the router finds them. When
// a handler does exist for the method, the request is routed again from a
// fresh route context.
//
//	router.MethodNotAllowed(CheckHTTPMethod(router))
func CheckHTTPMethod(router *chi.Mux) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		rctx := chi.NewRouteContext()
		if !router.Match(rctx, r.Method, r.URL.Path) {
			w.WriteHeader(http.StatusNotFound)
			return
		}

		rctx.Reset()
		rctx.Routes = router
		router.ServeHTTP(w, r.WithContext(context.WithValue(r.Context(), chi.RouteCtxKey, rctx)))
	}
}

// Package middleware provides HTTP middleware for the Aisle API.
//
// Middlewares compose via Chain, which applies them in order around a final
// handler:
//
//	handler := middleware.Chain(mux,
//	    middleware.RequestID,
//	    middleware.Logger,
//	    middleware.Recovery,
//	    middleware.CORS(origins),
//	    middleware.Compress,
//	)
//
// Auth and AdminAuth wrap individual routes rather than the whole mux, since
// most read endpoints are public.
package middleware

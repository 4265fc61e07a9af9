package middleware

import "net/http"

// Chain folds middlewares into one. The first argument wraps outermost, so it
// sees the request first and the response last:
//
//	Chain(Recovery, RequestID, Logging)(handler)
//
// behaves like:
//
//	Recovery(RequestID(Logging(handler)))
func Chain(middlewares ...func(http.Handler) http.Handler) func(http.Handler) http.Handler {
	return func(handler http.Handler) http.Handler {
		wrapped := handler
		for i := len(middlewares) - 1; i >= 0; i-- {
			wrapped = middlewares[i](wrapped)
		}
		return wrapped
	}
}

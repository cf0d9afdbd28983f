package http

import (
	"net/http"

	"github.com/MKhiriev/go-room-chat/internal/utils"
)

// withTraceID reuses the X-Trace-ID request header or generates a new id,
// echoes it in the reply and attaches a logger carrying it to the request
// context.
func (h *Handler) withTraceID(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		traceID := r.Header.Get(utils.TraceIDHeader)
		if traceID == "" {
			traceID = h.traceIDs.Generate()
		}

		ctx := utils.WithTraceID(r.Context(), traceID)
		ctx = h.logger.WithTraceID(traceID).WithContext(ctx)

		w.Header().Set(utils.TraceIDHeader, traceID)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

package http

import (
	"bytes"
	"io"
	"net/http"

	"github.com/MKhiriev/zero-vault/internal/app"
	"github.com/MKhiriev/zero-vault/internal/logger"
	"github.com/MKhiriev/zero-vault/internal/utils"
)

// withHashing checks the HashSHA256 header of every request with a body
// against the HMAC of that body. A missing header counts as a mismatch.
// Without a hash key the middleware is a no-op.
func (h *Handler) withHashing(next http.Handler) http.Handler {
	if h.hasher == nil {
		return next
	}

	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromRequest(r)

		if r.Body == nil || r.Body == http.NoBody {
			next.ServeHTTP(w, r)
			return
		}

		body, err := io.ReadAll(io.LimitReader(r.Body, maxBodySize+1))
		if err != nil {
			log.Err(err).Str("func", "*Handler.withHashing").Msg("failed to read request body")
			http.Error(w, app.MsgInvalidDataProvided, http.StatusBadRequest)
			return
		}
		r.Body = io.NopCloser(bytes.NewReader(body))

		if len(body) == 0 {
			next.ServeHTTP(w, r)
			return
		}

		if !h.hasher.Verify(body, r.Header.Get(utils.HashHeader)) {
			log.Warn().Str("func", "*Handler.withHashing").
				Bool("header_present", r.Header.Get(utils.HashHeader) != "").
				Msg("hashes are not equal")
			http.Error(w, app.MsgRequestHashMismatch, http.StatusBadRequest)
			return
		}

		next.ServeHTTP(w, r)
	})
}

package server

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"verify_gateway/pkg/httpx/reply"
	"verify_gateway/pkg/logx"
	"verify_gateway/pkg/middlewarex"
)

// RegisterRoutes группирует маршруты по конверту ответа: ошибки и паники
// каждой группы отдаются в её формате.
func (s Server) RegisterRoutes(r chi.Router) {
	r.Group(func(r chi.Router) {
		r.Use(middlewarex.Recovery(verificationError))

		r.Post("/send-code", handler(s.postSendCode, verificationError))
		r.Post("/check-code", handler(s.postCheckCode, verificationError))
	})

	r.Group(func(r chi.Router) {
		r.Use(middlewarex.Recovery(pricesError))

		r.Post("/update-prices", handler(s.postUpdatePrices, pricesError))
		r.Get("/prices", handler(s.getPrices, pricesError))
	})
}

// NewRouter собирает chi роутер со стандартным набором middleware.
func NewRouter(s Server, logFieldMaxLen int) http.Handler {
	masker := logx.NewSensitiveDataMasker()

	r := chi.NewRouter()

	r.Use(
		middlewarex.TraceID,
		middlewarex.Logger,
		middlewarex.RequestLogging(masker, logFieldMaxLen),
		middlewarex.ResponseLogging(masker, logFieldMaxLen),
	)

	s.RegisterRoutes(r)

	return r
}

func handler(f func(http.ResponseWriter, *http.Request) error, render reply.Renderer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := f(w, r); err != nil {
			reply.Error(r.Context(), w, err, render)
		}
	}
}

package jobposting

import (
	"net/http"

	"github.com/go-chi/chi/v5"
)

// Mountable is a set of routes that can be mounted under a prefix.
type Mountable interface {
	Handle() http.Handler
}

// Router mounts the job posting routes under /job-postings.
//
//	svc := jobposting.NewService(jobposting.NewMongoStorage(db))
//	r.Mount("/", jobpostingmod.Router(jobpostingmod.NewHandlers(svc, log)))
func Router(postings Mountable) chi.Router {
	r := chi.NewRouter()
	if postings != nil {
		r.Mount("/job-postings", postings.Handle())
	}
	return r
}

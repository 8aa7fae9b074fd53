// Package swaggerkit serves the OpenAPI document and the Swagger UI
package swaggerkit

import (
	"net/http"

	phttp "interventions/internal/platform/net/http"

	httpSwagger "github.com/swaggo/http-swagger"
)

const (
	docsRoot = "/api/docs"
	docJSON  = docsRoot + "/doc.json"
)

// Mount serves the UI under /api/docs/ and the document at /api/docs/doc.json.
// Disabled mounts nothing
func Mount(r phttp.Router, enabled bool, mutators ...SpecMutator) {
	if !enabled {
		return
	}
	ui := httpSwagger.Handler(httpSwagger.InstanceName("api"), httpSwagger.URL(docJSON))

	r.Get(docsRoot, http.RedirectHandler(docsRoot+"/", http.StatusPermanentRedirect).ServeHTTP)
	r.Get(docJSON, serveDocJSON(mutators))
	r.Handle(docsRoot+"/*", ui)
}

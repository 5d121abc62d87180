package http

import (
	"context"
	_ "embed"
	"fmt"
	"net/http"

	"github.com/getkin/kin-openapi/openapi3"
	"github.com/getkin/kin-openapi/openapi3filter"
	"github.com/getkin/kin-openapi/routers"
	"github.com/getkin/kin-openapi/routers/legacy"
	"github.com/go-chi/chi/v5"
	"github.com/oapi-codegen/runtime"
)

//go:embed openapi.yaml
var rawSpec []byte

// ServerInterface lists the operations of openapi.yaml.
type ServerInterface interface {
	// (POST /v1/notations/validate)
	ValidateNotation(w http.ResponseWriter, r *http.Request, params ValidateNotationParams)
	// (POST /v1/notations/graph)
	RenderGraph(w http.ResponseWriter, r *http.Request, params RenderGraphParams)
	// (GET /v1/fields)
	ListFieldKinds(w http.ResponseWriter, r *http.Request)
	// (POST /v1/fields/{kind}/validate)
	ValidateField(w http.ResponseWriter, r *http.Request, kind string)
}

// ValidateNotationParams defines parameters for ValidateNotation.
type ValidateNotationParams struct {
	IncludeWarnings *bool `form:"include_warnings,omitempty" json:"include_warnings,omitempty"`
}

// RenderGraphParams defines parameters for RenderGraph.
type RenderGraphParams struct {
	Machine *string `form:"machine,omitempty" json:"machine,omitempty"`
}

// DocumentRequest is the JSON form of a notation request body.
type DocumentRequest struct {
	Document string `json:"document"`
}

// GraphResponse carries a rendered flowchart.
type GraphResponse struct {
	Machine string `json:"machine"`
	Mermaid string `json:"mermaid"`
}

// FieldKinds lists the registered JSON field kinds.
type FieldKinds struct {
	Kinds []string `json:"kinds"`
}

// ErrorResponse is returned for every request error.
type ErrorResponse struct {
	Error string `json:"error"`
}

// ErrorHandlerFunc writes a request error.
type ErrorHandlerFunc func(w http.ResponseWriter, r *http.Request, status int, err error)

// loadSpec parses the embedded OpenAPI document.
func loadSpec(ctx context.Context) (*openapi3.T, error) {
	loader := openapi3.NewLoader()
	doc, err := loader.LoadFromData(rawSpec)
	if err != nil {
		return nil, fmt.Errorf("failed to load OpenAPI spec: %w", err)
	}
	if err := doc.Validate(ctx); err != nil {
		return nil, fmt.Errorf("invalid OpenAPI spec: %w", err)
	}
	return doc, nil
}

// requestValidator rejects requests whose parameters do not match the OpenAPI
// document. Bodies are checked by the handlers.
func requestValidator(router routers.Router, onError ErrorHandlerFunc) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			route, pathParams, err := router.FindRoute(r)
			if err != nil {
				onError(w, r, http.StatusNotFound, err)
				return
			}

			input := &openapi3filter.RequestValidationInput{
				Request:    r,
				PathParams: pathParams,
				Route:      route,
				Options: &openapi3filter.Options{
					ExcludeRequestBody: true,
					AuthenticationFunc: openapi3filter.NoopAuthenticationFunc,
				},
			}
			if err := openapi3filter.ValidateRequest(r.Context(), input); err != nil {
				onError(w, r, http.StatusBadRequest, err)
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

// newRouter builds the chi routes for the operations of si.
func newRouter(si ServerInterface, r chi.Router, onError ErrorHandlerFunc) {
	r.Post("/notations/validate", func(w http.ResponseWriter, req *http.Request) {
		var params ValidateNotationParams
		if err := runtime.BindQueryParameter("form", true, false, "include_warnings", req.URL.Query(), &params.IncludeWarnings); err != nil {
			onError(w, req, http.StatusBadRequest, fmt.Errorf("invalid format for parameter include_warnings: %w", err))
			return
		}
		si.ValidateNotation(w, req, params)
	})

	r.Post("/notations/graph", func(w http.ResponseWriter, req *http.Request) {
		var params RenderGraphParams
		if err := runtime.BindQueryParameter("form", true, false, "machine", req.URL.Query(), &params.Machine); err != nil {
			onError(w, req, http.StatusBadRequest, fmt.Errorf("invalid format for parameter machine: %w", err))
			return
		}
		si.RenderGraph(w, req, params)
	})

	r.Get("/fields", si.ListFieldKinds)

	r.Post("/fields/{kind}/validate", func(w http.ResponseWriter, req *http.Request) {
		var kind string
		err := runtime.BindStyledParameterWithOptions("simple", "kind", chi.URLParam(req, "kind"), &kind,
			runtime.BindStyledParameterOptions{ParamLocation: runtime.ParamLocationPath, Explode: false, Required: true})
		if err != nil {
			onError(w, req, http.StatusBadRequest, fmt.Errorf("invalid format for parameter kind: %w", err))
			return
		}
		si.ValidateField(w, req, kind)
	})
}

// newSpecRouter builds the kin-openapi router used for request validation.
func newSpecRouter(ctx context.Context) (routers.Router, error) {
	doc, err := loadSpec(ctx)
	if err != nil {
		return nil, err
	}
	// Match on path only; the API is served from whatever host it is mounted on.
	doc.Servers = nil
	return legacy.NewRouter(doc)
}

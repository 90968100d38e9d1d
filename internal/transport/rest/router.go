package rest

import (
	"net/http"

	"github.com/heartmarshall/nutrigym-backend/internal/transport/middleware"
)

// Routes groups the handlers served by the bridge.
type Routes struct {
	Health  *HealthHandler
	Auth    *AuthHandler
	Day     *DayHandler
	Profile *ProfileHandler
	AI      *AIHandler
	Staging *StagingHandler
}

// Guards are the per-route middlewares. A nil guard is skipped.
type Guards struct {
	Session    middleware.Middleware
	AILimit    middleware.Middleware
	LoginLimit middleware.Middleware
}

// NewRouter registers every endpoint. Journal, profile, staging and AI
// routes require an authorized session.
func NewRouter(rt Routes, g Guards) *http.ServeMux {
	mux := http.NewServeMux()

	open := func(pattern string, h http.HandlerFunc, mws ...middleware.Middleware) {
		mux.Handle(pattern, middleware.Chain(mws...)(h))
	}
	gated := func(pattern string, h http.HandlerFunc, mws ...middleware.Middleware) {
		mux.Handle(pattern, middleware.Chain(append([]middleware.Middleware{g.Session}, mws...)...)(h))
	}

	open("GET /live", rt.Health.Live)
	open("GET /ready", rt.Health.Ready)
	open("GET /health", rt.Health.Health)

	open("POST /auth/login", rt.Auth.Login, g.LoginLimit)
	open("POST /auth/logout", rt.Auth.Logout)
	open("GET /auth/state", rt.Auth.State)

	gated("GET /day", rt.Day.Get)
	gated("PUT /day", rt.Day.Select)
	gated("POST /day/{slot}/items", rt.Day.AddItems)
	gated("POST /day/{slot}/manual", rt.Day.AddManual)
	gated("PUT /day/{slot}/items/{id}", rt.Day.UpdateItem)
	gated("DELETE /day/{slot}/items/{id}", rt.Day.DeleteItem)

	gated("GET /profile", rt.Profile.Get)
	gated("PATCH /profile", rt.Profile.Patch)
	gated("POST /profile/setup", rt.Profile.Setup)

	gated("POST /analyze/image", rt.AI.AnalyzeImage, g.AILimit)
	gated("POST /analyze/text", rt.AI.AnalyzeText, g.AILimit)
	gated("POST /plan", rt.AI.Plan, g.AILimit)

	gated("GET /staging", rt.Staging.List)
	gated("DELETE /staging", rt.Staging.Discard)
	gated("POST /staging/blank", rt.Staging.AddBlank)
	gated("POST /staging/commit", rt.Staging.Commit)
	gated("PATCH /staging/{id}", rt.Staging.Edit)
	gated("PUT /staging/{id}/grams", rt.Staging.SetGrams)
	gated("DELETE /staging/{id}", rt.Staging.Remove)

	return mux
}

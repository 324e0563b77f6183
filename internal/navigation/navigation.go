// Package navigation names the screens a client can be sent to and records navigation requests.
package navigation

import (
	"context"
	"fmt"
	"sync"

	"github.com/osse101/BabyBank_Go/internal/domain"
)

// Route identifies a screen
type Route string

const (
	RouteWelcome       Route = "welcome"
	RouteRoleSelection Route = "role-selection"
	RouteLogin         Route = "login"
	RouteRegister      Route = "register"
	RouteTabs          Route = "tabs"
	RouteHome          Route = "home"
	RouteSearch        Route = "search"
	RoutePost          Route = "post"
	RouteMessages      Route = "messages"
	RouteProfile       Route = "profile"
)

// Route parameter keys
const (
	ParamRole = "role"
)

var knownRoutes = map[Route]bool{
	RouteWelcome:       true,
	RouteRoleSelection: true,
	RouteLogin:         true,
	RouteRegister:      true,
	RouteTabs:          true,
	RouteHome:          true,
	RouteSearch:        true,
	RoutePost:          true,
	RouteMessages:      true,
	RouteProfile:       true,
}

// Valid reports whether r is a known route
func (r Route) Valid() bool {
	return knownRoutes[r]
}

// Params are string parameters passed along with a route
type Params map[string]string

// Request is one navigation requested by a form
type Request struct {
	Route  Route  `json:"route"`
	Params Params `json:"params,omitempty"`
}

// Navigator moves the client to another screen
type Navigator interface {
	Navigate(ctx context.Context, route Route, params Params) error
}

// Recorder is a Navigator that remembers requests so they can be returned to the client
type Recorder struct {
	mu       sync.Mutex
	requests []Request
}

// NewRecorder returns an empty recorder
func NewRecorder() *Recorder {
	return &Recorder{}
}

func (r *Recorder) Navigate(ctx context.Context, route Route, params Params) error {
	if !route.Valid() {
		return fmt.Errorf("%w: unknown route %q", domain.ErrInvalidInput, route)
	}

	var copied Params
	if len(params) > 0 {
		copied = make(Params, len(params))
		for k, v := range params {
			copied[k] = v
		}
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	r.requests = append(r.requests, Request{Route: route, Params: copied})
	return nil
}

// Last returns the most recent request
func (r *Recorder) Last() (Request, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if len(r.requests) == 0 {
		return Request{}, false
	}
	return r.requests[len(r.requests)-1], true
}

// Requests returns every recorded request in order
func (r *Recorder) Requests() []Request {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]Request(nil), r.requests...)
}

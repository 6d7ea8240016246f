// Package router é uma casca fina sobre o httprouter: os grupos de rotas da
// API são declarados como opções de configuração e registrados na construção.
// Middlewares transversais (log, métricas, CORS) ficam na cadeia do servidor,
// não por rota.
package router

import (
	"net/http"

	"github.com/julienschmidt/httprouter"
)

// Route associa um método e um caminho a um handler
type Route struct {
	Path    string
	Method  string
	Handler http.Handler
}

// Router encapsula o httprouter por trás de um http.Handler
type Router struct {
	router *httprouter.Router
}

// ConfigRouter configura o router durante a construção
type ConfigRouter func(router *Router)

// WithRoutes registra um grupo de rotas
func WithRoutes(routes ...Route) ConfigRouter {
	return func(router *Router) {
		router.AddRoutes(routes...)
	}
}

// New cria o router e aplica as configurações na ordem informada
func New(configs ...ConfigRouter) Router {
	router := &Router{
		router: httprouter.New(),
	}

	for _, config := range configs {
		config(router)
	}

	return *router
}

func (r Router) ServeHTTP(w http.ResponseWriter, req *http.Request) {
	r.router.ServeHTTP(w, req)
}

// AddRoutes registra as rotas no httprouter subjacente
func (r Router) AddRoutes(routes ...Route) {
	for _, route := range routes {
		r.router.Handler(route.Method, route.Path, route.Handler)
	}
}

package main

import (
	"github.com/matryer/way"
	"github.com/zucenko/patchwork/server"
)

func (s *Server) routes() {
	s.router = way.NewRouter()
	s.router.HandleFunc("GET", server.URI_WATCH, s.Hub.HandleWatch())
}

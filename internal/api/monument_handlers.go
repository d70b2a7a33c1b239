package api

import (
	"net/http"

	"smarak/internal/monuments"

	"github.com/gorilla/mux"
)

type MonumentHandler struct{}

func NewMonumentHandler() *MonumentHandler {
	return &MonumentHandler{}
}

func (h *MonumentHandler) List(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, monuments.List())
}

func (h *MonumentHandler) Get(w http.ResponseWriter, r *http.Request) {
	name := mux.Vars(r)["name"]
	monument, ok := monuments.Get(name)
	if !ok {
		http.Error(w, "Monument not found", http.StatusNotFound)
		return
	}
	writeJSON(w, http.StatusOK, monument)
}

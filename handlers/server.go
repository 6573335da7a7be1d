// Package handlers — ServerHandler: sunucu listesi HTTP endpoint'i.
//
// Thin handler prensibi: Parse → Service → Response.
// Endpoint public'tir; AuthMiddleware.Optional ile sarılır, geçerli token
// varsa kullanıcı context'te olur, yoksa istek anonimdir.
package handlers

import (
	"net/http"

	"github.com/akinalp/djchat/models"
	"github.com/akinalp/djchat/pkg"
	"github.com/akinalp/djchat/services"
)

// ServerHandler, sunucu endpoint'lerini yönetir.
type ServerHandler struct {
	serverService services.ServerService
}

// NewServerHandler, constructor.
func NewServerHandler(serverService services.ServerService) *ServerHandler {
	return &ServerHandler{serverService: serverService}
}

// List godoc
// GET /api/server/select?category=&qty=&by_user=&by_serverid=&with_num_members=
func (h *ServerHandler) List(w http.ResponseWriter, r *http.Request) {
	params := models.ParseServerListParams(r.URL.Query())

	servers, err := h.serverService.List(r.Context(), params, UserFromContext(r.Context()))
	if err != nil {
		pkg.Error(w, err)
		return
	}

	pkg.JSON(w, http.StatusOK, servers)
}

package controllers

import (
	"net/http"

	"github.com/franciscosanchezn/gin-pizza-orders/internal/middleware"
	"github.com/franciscosanchezn/gin-pizza-orders/internal/services"
	"github.com/gin-gonic/gin"
)

type ClientController struct {
	clientService services.ClientService
}

func NewClientController(clientService services.ClientService) *ClientController {
	return &ClientController{clientService: clientService}
}

// CreateClientRequest is the body of POST /clients
type CreateClientRequest struct {
	Name   string `json:"name" binding:"required"`
	Scopes string `json:"scopes"`
}

// CreateClient godoc
// @Summary Create OAuth2 client
// @Description Register a back-office client for the authenticated staff member
// @Tags OAuth2 Clients
// @Accept json
// @Produce json
// @Param client body CreateClientRequest true "Client details"
// @Success 201 {object} map[string]interface{} "Client created with client_id and client_secret"
// @Failure 400 {object} models.APIError
// @Failure 500 {object} models.APIError
// @Security BearerAuth
// @Router /api/v1/protected/clients [post]
func (cc *ClientController) CreateClient(c *gin.Context) {
	var req CreateClientRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}

	client, secret, err := cc.clientService.CreateClient(c.Request.Context(), c.GetUint(middleware.StaffIDKey), req.Name, req.Scopes)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"client_id":     client.ID,
		"client_secret": secret, // only returned once
		"name":          client.Name,
		"scopes":        client.Scopes,
	})
}

// ListClients godoc
// @Summary List OAuth2 clients
// @Description Get all OAuth2 clients owned by the authenticated staff member
// @Tags OAuth2 Clients
// @Produce json
// @Success 200 {array} object "List of clients"
// @Failure 500 {object} models.APIError
// @Security BearerAuth
// @Router /api/v1/protected/clients [get]
func (cc *ClientController) ListClients(c *gin.Context) {
	clients, err := cc.clientService.GetClientsByStaffID(c.Request.Context(), c.GetUint(middleware.StaffIDKey))
	if err != nil {
		respondError(c, err)
		return
	}

	resp := make([]gin.H, 0, len(clients))
	for _, client := range clients {
		resp = append(resp, gin.H{
			"client_id":  client.ID,
			"name":       client.Name,
			"scopes":     client.Scopes,
			"created_at": client.CreatedAt,
		})
	}
	c.JSON(http.StatusOK, resp)
}

// DeleteClient godoc
// @Summary Delete OAuth2 client
// @Description Delete an OAuth2 client owned by the authenticated staff member
// @Tags OAuth2 Clients
// @Param id path string true "Client ID"
// @Success 204 "Client deleted successfully"
// @Failure 404 {object} models.APIError
// @Security BearerAuth
// @Router /api/v1/protected/clients/{id} [delete]
func (cc *ClientController) DeleteClient(c *gin.Context) {
	if err := cc.clientService.DeleteClient(c.Request.Context(), c.Param("id"), c.GetUint(middleware.StaffIDKey)); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

package handler

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/maxviazov/swapi-mock/internal/model"
	"github.com/maxviazov/swapi-mock/internal/service"
	"github.com/maxviazov/swapi-mock/pkg/response"
)

// ResourceHandler serves one mocked resource: the SWAPI list and a lookup by seed index.
type ResourceHandler[T model.Resource] struct {
	svc service.ResourceService[T]
}

func NewResourceHandler[T model.Resource](svc service.ResourceService[T]) *ResourceHandler[T] {
	return &ResourceHandler[T]{svc: svc}
}

func (h *ResourceHandler[T]) Register(r gin.IRouter) {
	g := r.Group("/" + h.svc.Endpoint())
	{
		g.GET("", h.list)
		g.GET("/:id", h.getByID)
	}
}

// list never rejects its parameters: a bad page silently becomes page 1.
func (h *ResourceHandler[T]) list(c *gin.Context) {
	q := service.DefaultQuery()
	if raw, ok := c.GetQuery("page"); ok {
		q.Page = service.ParsePage(raw)
	}
	if search, ok := c.GetQuery("search"); ok {
		q.Search = &search
	}

	env, err := h.svc.List(c.Request.Context(), q)
	if err != nil {
		response.WriteError(c, err)
		return
	}
	response.WriteData(c, http.StatusOK, env)
}

func (h *ResourceHandler[T]) getByID(c *gin.Context) {
	id, err := strconv.Atoi(strings.TrimSpace(c.Param("id")))
	if err != nil {
		response.WriteError(c, service.NewInvalidInputError([]service.FieldError{{Field: "id", Message: "must be a valid integer"}}))
		return
	}
	rec, err := h.svc.Get(c.Request.Context(), id)
	if err != nil {
		response.WriteError(c, err)
		return
	}
	response.WriteData(c, http.StatusOK, rec)
}

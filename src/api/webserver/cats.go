package webserver

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/whiskerworks/spycat/src/api/registry"
)

type Cats struct {
	registry *registry.Registry
}

func NewCats(r *registry.Registry) Cats {
	return Cats{registry: r}
}

func (h Cats) Create(c *gin.Context) {
	var req struct {
		Name              string   `json:"name" binding:"required"`
		YearsOfExperience int      `json:"years_of_experience" binding:"min=0"`
		Breed             string   `json:"breed" binding:"required"`
		Salary            *float64 `json:"salary" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"err": err.Error()})
		return
	}

	cat, err := h.registry.Create(c.Request.Context(), req.Name, req.YearsOfExperience, req.Breed, *req.Salary)
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusCreated, cat)
}

func (h Cats) List(c *gin.Context) {
	cats, err := h.registry.List(c.Request.Context())
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, cats)
}

func (h Cats) Get(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	cat, err := h.registry.Get(c.Request.Context(), id)
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, cat)
}

func (h Cats) UpdateSalary(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	var req struct {
		Salary *float64 `json:"salary" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"err": err.Error()})
		return
	}

	cat, err := h.registry.UpdateSalary(c.Request.Context(), id, *req.Salary)
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, cat)
}

func (h Cats) Delete(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	if err := h.registry.Delete(c.Request.Context(), id); err != nil {
		fail(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

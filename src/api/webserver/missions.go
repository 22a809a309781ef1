package webserver

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/whiskerworks/spycat/src/api/missions"
)

type Missions struct {
	engine *missions.Engine
}

func NewMissions(e *missions.Engine) Missions {
	return Missions{engine: e}
}

func (h Missions) Create(c *gin.Context) {
	var req struct {
		Targets []struct {
			Name      string `json:"name" binding:"required"`
			Country   string `json:"country" binding:"required"`
			Notes     string `json:"notes"`
			Completed bool   `json:"completed"`
		} `json:"targets" binding:"dive"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"err": err.Error()})
		return
	}

	inputs := make([]missions.TargetInput, 0, len(req.Targets))
	for _, t := range req.Targets {
		inputs = append(inputs, missions.TargetInput{
			Name:      t.Name,
			Country:   t.Country,
			Notes:     t.Notes,
			Completed: t.Completed,
		})
	}

	mission, err := h.engine.Create(c.Request.Context(), inputs)
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusCreated, mission)
}

func (h Missions) List(c *gin.Context) {
	list, err := h.engine.List(c.Request.Context())
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, list)
}

func (h Missions) Get(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	mission, err := h.engine.Get(c.Request.Context(), id)
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, mission)
}

func (h Missions) Delete(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	if err := h.engine.Delete(c.Request.Context(), id); err != nil {
		fail(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (h Missions) Assign(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	var req struct {
		CatID uint `json:"cat_id" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"err": err.Error()})
		return
	}

	mission, err := h.engine.Assign(c.Request.Context(), id, req.CatID)
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, mission)
}

func (h Missions) SetTargetCompleted(c *gin.Context) {
	missionID, ok := pathID(c, "id")
	if !ok {
		return
	}
	targetID, ok := pathID(c, "target_id")
	if !ok {
		return
	}
	var req struct {
		Completed *bool `json:"completed" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"err": err.Error()})
		return
	}

	target, err := h.engine.SetTargetCompleted(c.Request.Context(), missionID, targetID, *req.Completed)
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, target)
}

func (h Missions) UpdateTargetNotes(c *gin.Context) {
	missionID, ok := pathID(c, "id")
	if !ok {
		return
	}
	targetID, ok := pathID(c, "target_id")
	if !ok {
		return
	}
	var req struct {
		Notes string `json:"notes" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"err": err.Error()})
		return
	}

	target, err := h.engine.UpdateTargetNotes(c.Request.Context(), missionID, targetID, req.Notes)
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, target)
}

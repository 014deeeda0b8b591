package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/mkravets/devfolio/internal/services"
	"github.com/mkravets/devfolio/internal/utils"
	"github.com/mkravets/devfolio/internal/validation"
)

type ProfileHandler struct {
	svc services.ProfileService
}

func NewProfileHandler(svc services.ProfileService) *ProfileHandler {
	return &ProfileHandler{svc: svc}
}

func (h *ProfileHandler) Test(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"msg": "Profile works"})
}

func (h *ProfileHandler) Mine(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}

	p, err := h.svc.GetMine(c.Request.Context(), userID)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, p)
}

func (h *ProfileHandler) All(c *gin.Context) {
	list, err := h.svc.GetAll(c.Request.Context())
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, list)
}

func (h *ProfileHandler) ByHandle(c *gin.Context) {
	p, err := h.svc.GetByHandle(c.Request.Context(), c.Param("handle"))
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, p)
}

func (h *ProfileHandler) ByUserID(c *gin.Context) {
	p, err := h.svc.GetByUserID(c.Request.Context(), c.Param("user_id"))
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, p)
}

// Save creates the caller's profile on first submission and patches it on
// every later one.
func (h *ProfileHandler) Save(c *gin.Context) {
	const op = "ProfileHandler.Save"

	userID, ok := requireUserID(c)
	if !ok {
		return
	}

	var in validation.ProfileInput
	if err := c.ShouldBindJSON(&in); err != nil {
		writeError(c, utils.E(utils.CodeInvalidArgument, op, "invalid request body", err))
		return
	}
	if res := validation.ValidateProfile(in); !res.IsValid {
		writeError(c, utils.EFields(utils.CodeInvalidArgument, op, res.Errors))
		return
	}

	p, err := h.svc.Save(c.Request.Context(), userID, in)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, p)
}

func (h *ProfileHandler) AddExperience(c *gin.Context) {
	const op = "ProfileHandler.AddExperience"

	userID, ok := requireUserID(c)
	if !ok {
		return
	}

	var in validation.ExperienceInput
	if err := c.ShouldBindJSON(&in); err != nil {
		writeError(c, utils.E(utils.CodeInvalidArgument, op, "invalid request body", err))
		return
	}
	if res := validation.ValidateExperience(in); !res.IsValid {
		writeError(c, utils.EFields(utils.CodeInvalidArgument, op, res.Errors))
		return
	}

	p, err := h.svc.AddExperience(c.Request.Context(), userID, in)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, p)
}

func (h *ProfileHandler) AddEducation(c *gin.Context) {
	const op = "ProfileHandler.AddEducation"

	userID, ok := requireUserID(c)
	if !ok {
		return
	}

	var in validation.EducationInput
	if err := c.ShouldBindJSON(&in); err != nil {
		writeError(c, utils.E(utils.CodeInvalidArgument, op, "invalid request body", err))
		return
	}
	if res := validation.ValidateEducation(in); !res.IsValid {
		writeError(c, utils.EFields(utils.CodeInvalidArgument, op, res.Errors))
		return
	}

	p, err := h.svc.AddEducation(c.Request.Context(), userID, in)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, p)
}

func (h *ProfileHandler) DeleteExperience(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}

	p, err := h.svc.RemoveExperience(c.Request.Context(), userID, c.Param("exp_id"))
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, p)
}

func (h *ProfileHandler) DeleteEducation(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}

	p, err := h.svc.RemoveEducation(c.Request.Context(), userID, c.Param("edu_id"))
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, p)
}

// DeleteAccount removes the profile and then the credential itself.
func (h *ProfileHandler) DeleteAccount(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}

	if err := h.svc.DeleteAccount(c.Request.Context(), userID); err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true})
}

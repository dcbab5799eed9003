package controller

import (
	"career_path_backend/internal/model"
	"career_path_backend/internal/service"
	"career_path_backend/internal/util"

	"github.com/gin-gonic/gin"
)

type LearningPlanController struct {
	Plans *service.LearningPlanService
}

func NewLearningPlanController(plans *service.LearningPlanService) *LearningPlanController {
	return &LearningPlanController{Plans: plans}
}

func (ctl *LearningPlanController) Get(c *gin.Context) {
	claims := util.GetUserFromContext(c)
	if claims == nil {
		util.Unauthorized(c)
		return
	}

	plan, err := ctl.Plans.GetPlan(claims.UserID)
	if err != nil {
		writeServiceError(c, err)
		return
	}
	util.Success(c, plan)
}

// Generate godoc
// @Summary Rebuild the caller's learning plan from their result history
// @Tags learning-plan
// @Produce json
// @Success 200 {object} util.Response
// @Failure 400 {object} util.Response
// @Router /users/learning-plan/generate [post]
func (ctl *LearningPlanController) Generate(c *gin.Context) {
	claims := util.GetUserFromContext(c)
	if claims == nil {
		util.Unauthorized(c)
		return
	}

	plan, err := ctl.Plans.GeneratePlan(claims.UserID)
	if err != nil {
		writeServiceError(c, err)
		return
	}
	util.Success(c, plan)
}

type planUpdateRequest struct {
	Strengths       []model.CategoryScore  `json:"strengths"`
	Improvements    []model.CategoryScore  `json:"improvements"`
	Recommendations []model.Recommendation `json:"recommendations"`
	Status          model.PlanStatus       `json:"status" binding:"omitempty,oneof=active completed paused"`
}

func (ctl *LearningPlanController) Update(c *gin.Context) {
	claims := util.GetUserFromContext(c)
	if claims == nil {
		util.Unauthorized(c)
		return
	}

	var req planUpdateRequest
	if !util.BindJSON(c, &req) {
		return
	}

	plan, err := ctl.Plans.UpdatePlan(&model.LearningPlan{
		UserID:          claims.UserID,
		Strengths:       req.Strengths,
		Improvements:    req.Improvements,
		Recommendations: req.Recommendations,
		Status:          req.Status,
	})
	if err != nil {
		writeServiceError(c, err)
		return
	}
	util.Success(c, plan)
}

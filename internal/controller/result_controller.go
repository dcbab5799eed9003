package controller

import (
	"strconv"

	"career_path_backend/internal/service"
	"career_path_backend/internal/util"

	"github.com/gin-gonic/gin"
)

type ResultController struct {
	Results *service.ResultService
}

func NewResultController(results *service.ResultService) *ResultController {
	return &ResultController{Results: results}
}

// Submit godoc
// @Summary Submit answers for scoring
// @Tags results
// @Accept json
// @Produce json
// @Param id path string true "test id"
// @Param body body service.SubmitRequest true "answers"
// @Success 201 {object} util.Response
// @Failure 400 {object} util.Response
// @Failure 404 {object} util.Response
// @Router /tests/{id}/submit [post]
func (ctl *ResultController) Submit(c *gin.Context) {
	claims := util.GetUserFromContext(c)
	if claims == nil {
		util.Unauthorized(c)
		return
	}

	var req service.SubmitRequest
	if !util.BindJSON(c, &req) {
		return
	}

	result, err := ctl.Results.Submit(claims.UserID, c.Param("id"), &req)
	if err != nil {
		writeServiceError(c, err)
		return
	}
	util.Created(c, result)
}

func (ctl *ResultController) MyResults(c *gin.Context) {
	claims := util.GetUserFromContext(c)
	if claims == nil {
		util.Unauthorized(c)
		return
	}
	limit, _ := strconv.Atoi(c.Query("limit"))

	results, err := ctl.Results.UserResults(claims.UserID, limit)
	if err != nil {
		util.LogInternalError(c, err)
		return
	}
	util.Success(c, gin.H{"results": results})
}

// MyResult is owner-scoped; a foreign result id reads as not found.
func (ctl *ResultController) MyResult(c *gin.Context) {
	claims := util.GetUserFromContext(c)
	if claims == nil {
		util.Unauthorized(c)
		return
	}

	result, err := ctl.Results.UserResult(c.Param("id"), claims.UserID)
	if err != nil {
		writeServiceError(c, err)
		return
	}
	util.Success(c, result)
}

func (ctl *ResultController) Delete(c *gin.Context) {
	claims := util.GetUserFromContext(c)
	if claims == nil {
		util.Unauthorized(c)
		return
	}

	if err := ctl.Results.DeleteResult(c.Param("id"), claims.UserID); err != nil {
		writeServiceError(c, err)
		return
	}
	util.Success(c, gin.H{"message": "result deleted"})
}

type shareRequest struct {
	Shared *bool `json:"shared" binding:"required"`
}

// Share toggles public visibility of one of the caller's results.
func (ctl *ResultController) Share(c *gin.Context) {
	claims := util.GetUserFromContext(c)
	if claims == nil {
		util.Unauthorized(c)
		return
	}

	var req shareRequest
	if !util.BindJSON(c, &req) {
		return
	}

	result, shareURL, err := ctl.Results.Share(c.Param("id"), claims.UserID, *req.Shared)
	if err != nil {
		writeServiceError(c, err)
		return
	}
	util.Success(c, gin.H{"result": result, "share_url": shareURL})
}

// SharedResult serves a publicly shared result to anyone, no token needed.
func (ctl *ResultController) SharedResult(c *gin.Context) {
	result, err := ctl.Results.SharedResult(c.Param("id"))
	if err != nil {
		writeServiceError(c, err)
		return
	}
	util.Success(c, result)
}

func (ctl *ResultController) Leaderboard(c *gin.Context) {
	limit, _ := strconv.Atoi(c.Query("limit"))

	board, err := ctl.Results.Leaderboard(c.Param("testId"), limit)
	if err != nil {
		writeServiceError(c, err)
		return
	}
	util.Success(c, board)
}

func (ctl *ResultController) Compare(c *gin.Context) {
	claims := util.GetUserFromContext(c)
	if claims == nil {
		util.Unauthorized(c)
		return
	}

	report, err := ctl.Results.Compare(claims.UserID, c.Param("testId"))
	if err != nil {
		writeServiceError(c, err)
		return
	}
	util.Success(c, report)
}

func (ctl *ResultController) CategoryAnalytics(c *gin.Context) {
	analytics, err := ctl.Results.CategoryAnalytics(c.Param("category"))
	if err != nil {
		writeServiceError(c, err)
		return
	}
	util.Success(c, analytics)
}

func (ctl *ResultController) Feedback(c *gin.Context) {
	claims := util.GetUserFromContext(c)
	if claims == nil {
		util.Unauthorized(c)
		return
	}

	var req service.FeedbackRequest
	if !util.BindJSON(c, &req) {
		return
	}

	fb, err := ctl.Results.SaveFeedback(c.Param("id"), claims.UserID, &req)
	if err != nil {
		writeServiceError(c, err)
		return
	}
	util.Success(c, fb)
}

func (ctl *ResultController) Stats(c *gin.Context) {
	claims := util.GetUserFromContext(c)
	if claims == nil {
		util.Unauthorized(c)
		return
	}

	stats, err := ctl.Results.UserStats(claims.UserID)
	if err != nil {
		util.LogInternalError(c, err)
		return
	}
	util.Success(c, stats)
}

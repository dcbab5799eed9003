package controller

import (
	"strconv"

	"career_path_backend/internal/model"
	"career_path_backend/internal/service"
	"career_path_backend/internal/util"

	"github.com/gin-gonic/gin"
)

type TestController struct {
	Tests *service.TestService
}

func NewTestController(tests *service.TestService) *TestController {
	return &TestController{Tests: tests}
}

// List godoc
// @Summary List active tests
// @Tags tests
// @Produce json
// @Param category query string false "filter by category"
// @Param difficulty query string false "filter by difficulty"
// @Param limit query int false "page size"
// @Param offset query int false "page offset"
// @Success 200 {object} util.Response
// @Router /tests [get]
func (ctl *TestController) List(c *gin.Context) {
	limit, _ := strconv.Atoi(c.Query("limit"))
	offset, _ := strconv.Atoi(c.Query("offset"))

	page, err := ctl.Tests.ListTests(c.Query("category"), c.Query("difficulty"), limit, offset)
	if err != nil {
		util.LogInternalError(c, err)
		return
	}
	util.Success(c, page)
}

func (ctl *TestController) Categories(c *gin.Context) {
	categories, err := ctl.Tests.Categories()
	if err != nil {
		util.LogInternalError(c, err)
		return
	}
	util.Success(c, gin.H{"categories": categories})
}

func (ctl *TestController) Stats(c *gin.Context) {
	stats, err := ctl.Tests.CatalogStats()
	if err != nil {
		util.LogInternalError(c, err)
		return
	}
	util.Success(c, stats)
}

// Get godoc
// @Summary Fetch one test with its full question set
// @Tags tests
// @Produce json
// @Param id path string true "test id"
// @Success 200 {object} util.Response
// @Failure 404 {object} util.Response
// @Router /tests/{id} [get]
func (ctl *TestController) Get(c *gin.Context) {
	test, err := ctl.Tests.GetTest(c.Param("id"), util.GetUserFromContext(c))
	if err != nil {
		writeServiceError(c, err)
		return
	}
	util.Success(c, test)
}

// Admin catalog management.

func (ctl *TestController) Create(c *gin.Context) {
	var test model.Test
	if !util.BindJSON(c, &test) {
		return
	}
	if test.ID == "" || test.Title == "" || test.Category == "" {
		util.BadRequest(c, "id, title and category are required")
		return
	}

	created, err := ctl.Tests.CreateTest(&test)
	if err != nil {
		writeServiceError(c, err)
		return
	}
	util.Created(c, created)
}

func (ctl *TestController) Update(c *gin.Context) {
	var test model.Test
	if !util.BindJSON(c, &test) {
		return
	}
	test.ID = c.Param("id")

	updated, err := ctl.Tests.UpdateTest(&test)
	if err != nil {
		writeServiceError(c, err)
		return
	}
	util.Success(c, updated)
}

// Delete retires a test from the catalog; recorded results stay intact.
func (ctl *TestController) Delete(c *gin.Context) {
	test, err := ctl.Tests.DeactivateTest(c.Param("id"))
	if err != nil {
		writeServiceError(c, err)
		return
	}
	util.Success(c, gin.H{"message": "test deactivated", "test": test})
}

func (ctl *TestController) Results(c *gin.Context) {
	limit, _ := strconv.Atoi(c.Query("limit"))
	offset, _ := strconv.Atoi(c.Query("offset"))

	results, pagination, err := ctl.Tests.TestResults(c.Param("id"), limit, offset)
	if err != nil {
		writeServiceError(c, err)
		return
	}
	util.Success(c, gin.H{"results": results, "pagination": pagination})
}

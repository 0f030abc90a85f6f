package controllers

import (
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/ampro/academy-manager/internal/app/models/dto"
	"github.com/ampro/academy-manager/internal/app/services"
	"github.com/ampro/academy-manager/internal/middleware"
	"github.com/ampro/academy-manager/internal/pkg/export"
)

// StudentController handles student CRUD and the tabular export
type StudentController struct {
	studentService services.StudentService
}

// NewStudentController creates a new StudentController
func NewStudentController(studentService services.StudentService) *StudentController {
	return &StudentController{studentService: studentService}
}

// ListStudents returns the (optionally filtered) collection
// @Summary List students
// @Description Returns students in stored order, optionally filtered by class and name search
// @Tags students
// @Produce json
// @Security BearerAuth
// @Param standard query string false "Exact class label"
// @Param search query string false "Case-insensitive name substring"
// @Success 200 {object} dto.APIResponse{data=[]models.Student}
// @Failure 401 {object} dto.ErrorResponse "Unauthorized"
// @Router /students [get]
func (c *StudentController) ListStudents(ctx *gin.Context) {
	students, err := c.studentService.List(ctx, services.StudentFilter{
		Standard: ctx.Query("standard"),
		Search:   ctx.Query("search"),
	})
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.NewAPIResponse(students))
}

// CreateStudent adds a student
// @Summary Add a student
// @Description Creates a student record; id and creation timestamp are assigned server-side
// @Tags students
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.CreateStudentRequest true "Student fields"
// @Success 201 {object} dto.APIResponse{data=models.Student} "Student created"
// @Failure 400 {object} dto.ErrorResponse "Invalid request data"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized"
// @Failure 507 {object} dto.ErrorResponse "Storage full"
// @Router /students [post]
func (c *StudentController) CreateStudent(ctx *gin.Context) {
	var req dto.CreateStudentRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid student data")
		errorDetail = errorDetail.WithDetails(err.Error())
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return
	}

	student, err := c.studentService.Create(ctx, req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusCreated, dto.NewAPIResponse(student))
}

// UpdateStudent replaces a student record
// @Summary Update a student
// @Description Replaces the record with the given id wholesale
// @Tags students
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Student ID"
// @Param request body dto.UpdateStudentRequest true "Student fields"
// @Success 200 {object} dto.APIResponse{data=models.Student} "Student updated"
// @Failure 400 {object} dto.ErrorResponse "Invalid request data"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized"
// @Failure 404 {object} dto.ErrorResponse "Student not found"
// @Router /students/{id} [put]
func (c *StudentController) UpdateStudent(ctx *gin.Context) {
	var req dto.UpdateStudentRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid student data")
		errorDetail = errorDetail.WithDetails(err.Error())
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return
	}

	student, err := c.studentService.Update(ctx, ctx.Param("id"), req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.NewAPIResponse(student))
}

// DeleteStudent removes a student
// @Summary Delete a student
// @Description Removes the record with the given id
// @Tags students
// @Produce json
// @Security BearerAuth
// @Param id path string true "Student ID"
// @Success 200 {object} dto.APIResponse{data=dto.SuccessResponse} "Student deleted"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized"
// @Failure 404 {object} dto.ErrorResponse "Student not found"
// @Router /students/{id} [delete]
func (c *StudentController) DeleteStudent(ctx *gin.Context) {
	if err := c.studentService.Delete(ctx, ctx.Param("id")); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.NewAPIResponse(dto.SuccessResponse{Message: "student deleted"}))
}

// DeleteClass removes every student of a class
// @Summary Delete a whole class
// @Description Removes every student whose class label equals the given value exactly
// @Tags students
// @Produce json
// @Security BearerAuth
// @Param standard path string true "Class label"
// @Success 200 {object} dto.APIResponse{data=dto.DeleteByClassResponse}
// @Failure 401 {object} dto.ErrorResponse "Unauthorized"
// @Router /students/classes/{standard} [delete]
func (c *StudentController) DeleteClass(ctx *gin.Context) {
	removed, err := c.studentService.DeleteByClass(ctx, ctx.Param("standard"))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.NewAPIResponse(dto.DeleteByClassResponse{Removed: removed}))
}

// ExportStudents downloads the filtered listing as CSV
// @Summary Export students as CSV
// @Description Downloads the filtered student list with name, contact, class and fee columns
// @Tags students
// @Produce text/csv
// @Security BearerAuth
// @Param standard query string false "Exact class label"
// @Param search query string false "Case-insensitive name substring"
// @Success 200 {string} string "CSV file"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized"
// @Router /students/export [get]
func (c *StudentController) ExportStudents(ctx *gin.Context) {
	students, err := c.studentService.List(ctx, services.StudentFilter{
		Standard: ctx.Query("standard"),
		Search:   ctx.Query("search"),
	})
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	data, err := export.StudentsCSV(students)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	fileName := export.FileName(time.Now())
	ctx.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", fileName))
	ctx.Data(http.StatusOK, "text/csv; charset=utf-8", data)
}

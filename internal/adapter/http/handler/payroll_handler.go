package handler

import (
	"banking-core/internal/adapter/http/dto"
	"banking-core/internal/core/ports"
	"banking-core/pkg/response"

	"github.com/gin-gonic/gin"
)

// PayrollHandler handles salary and payroll endpoints.
type PayrollHandler struct {
	payrollSvc ports.PayrollService
}

// NewPayrollHandler creates a new PayrollHandler.
func NewPayrollHandler(payrollSvc ports.PayrollService) *PayrollHandler {
	return &PayrollHandler{payrollSvc: payrollSvc}
}

// UpdateSalary handles PUT /api/v1/employees/:id/salary.
func (h *PayrollHandler) UpdateSalary(c *gin.Context) {
	employeeID, ok := pathID(c, "id")
	if !ok {
		return
	}
	var req dto.SalaryRequest
	if !bindJSON(c, &req) {
		return
	}

	salary, err := h.payrollSvc.Update(c.Request.Context(), employeeID, req.Amount)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, salary)
}

// CurrentSalary handles GET /api/v1/employees/:id/salary.
func (h *PayrollHandler) CurrentSalary(c *gin.Context) {
	employeeID, ok := pathID(c, "id")
	if !ok {
		return
	}

	salary, err := h.payrollSvc.Current(c.Request.Context(), employeeID)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, salary)
}

// SalaryHistory handles GET /api/v1/employees/:id/salary/history.
func (h *PayrollHandler) SalaryHistory(c *gin.Context) {
	employeeID, ok := pathID(c, "id")
	if !ok {
		return
	}
	var q dto.PageQuery
	if !bindQuery(c, &q) {
		return
	}
	page := q.Page()

	salaries, total, err := h.payrollSvc.History(c.Request.Context(), employeeID, page)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Page(c, salaries, total, page.Offset, page.Limit)
}

// Wages handles GET /api/v1/wages, every current salary.
func (h *PayrollHandler) Wages(c *gin.Context) {
	var q dto.PageQuery
	if !bindQuery(c, &q) {
		return
	}
	page := q.Page()

	salaries, total, err := h.payrollSvc.CurrentWages(c.Request.Context(), page)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Page(c, salaries, total, page.Offset, page.Limit)
}

// Run handles POST /api/v1/payroll/runs. A run with failures still returns
// the payments that went through, with PAYROLL_001.
func (h *PayrollHandler) Run(c *gin.Context) {
	var req dto.PayrollRunRequest
	if c.Request.ContentLength != 0 && !bindJSON(c, &req) {
		return
	}

	run, err := h.payrollSvc.PayEmployees(c.Request.Context(), req.EmployeeIDs)
	if err != nil {
		if run != nil {
			response.Partial(c, err, run)
			return
		}
		response.Error(c, err)
		return
	}
	response.Created(c, run)
}

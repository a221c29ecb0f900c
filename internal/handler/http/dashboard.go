package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/emscore/ems-backend-go/internal/domain/dashboard"
	"github.com/emscore/ems-backend-go/internal/handler/http/response"
)

type DashboardHandler interface {
	Admin(w http.ResponseWriter, r *http.Request)
	Employee(w http.ResponseWriter, r *http.Request)
}

type dashboardHandlerImpl struct {
	dashboardService dashboard.DashboardService
}

func NewDashboardHandler(dashboardService dashboard.DashboardService) DashboardHandler {
	return &dashboardHandlerImpl{
		dashboardService: dashboardService,
	}
}

// Admin implements DashboardHandler.
func (h *dashboardHandlerImpl) Admin(w http.ResponseWriter, r *http.Request) {
	result, err := h.dashboardService.GetAdminDashboard(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// Employee implements DashboardHandler.
func (h *dashboardHandlerImpl) Employee(w http.ResponseWriter, r *http.Request) {
	employeeID := chi.URLParam(r, "employeeId")
	month := r.URL.Query().Get("month")

	result, err := h.dashboardService.GetEmployeeDashboard(r.Context(), employeeID, month)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

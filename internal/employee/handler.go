package employee

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/frahmantamala/employee-management/internal"
	"github.com/frahmantamala/employee-management/internal/transport"
	"github.com/frahmantamala/employee-management/pkg/logger"
	"github.com/go-chi/chi"
)

type ServiceAPI interface {
	CreateEmployee(ownerID int64, dto EmployeeDTO) (*Employee, error)
	ListEmployees(ownerID int64) ([]*Employee, error)
	UpdateEmployee(id, ownerID int64, dto EmployeeDTO) (*Employee, error)
	DeleteEmployee(id, ownerID int64) error
}

type Handler struct {
	*transport.BaseHandler
	Service ServiceAPI
}

func NewHandler(service ServiceAPI) *Handler {
	lg := logger.LoggerWrapper()
	if lg == nil {
		lg = slog.Default()
	}
	return &Handler{
		BaseHandler: transport.NewBaseHandler(lg),
		Service:     service,
	}
}

func (h *Handler) CreateEmployee(w http.ResponseWriter, r *http.Request) {
	ownerID := internal.UserIDFromContext(r.Context())
	if ownerID == 0 {
		h.Logger.Error("CreateEmployee: user not found in context")
		h.WriteError(w, http.StatusUnauthorized, "unauthorized")
		return
	}

	var dto EmployeeDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		h.Logger.Error("CreateEmployee: invalid request body", "error", err)
		h.WriteError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	emp, err := h.Service.CreateEmployee(ownerID, dto)
	if err != nil {
		h.Logger.Error("CreateEmployee: service error", "error", err, "owner_id", ownerID)
		h.HandleServiceError(w, err)
		return
	}

	h.WriteJSON(w, http.StatusCreated, emp)
}

func (h *Handler) ListEmployees(w http.ResponseWriter, r *http.Request) {
	ownerID := internal.UserIDFromContext(r.Context())
	if ownerID == 0 {
		h.Logger.Error("ListEmployees: user not found in context")
		h.WriteError(w, http.StatusUnauthorized, "unauthorized")
		return
	}

	employees, err := h.Service.ListEmployees(ownerID)
	if err != nil {
		h.Logger.Error("ListEmployees: service error", "error", err, "owner_id", ownerID)
		h.HandleServiceError(w, err)
		return
	}

	if employees == nil {
		employees = []*Employee{}
	}

	h.WriteJSON(w, http.StatusOK, employees)
}

func (h *Handler) UpdateEmployee(w http.ResponseWriter, r *http.Request) {
	ownerID := internal.UserIDFromContext(r.Context())
	if ownerID == 0 {
		h.Logger.Error("UpdateEmployee: user not found in context")
		h.WriteError(w, http.StatusUnauthorized, "unauthorized")
		return
	}

	id, err := employeeIDParam(r)
	if err != nil {
		h.WriteError(w, http.StatusBadRequest, "invalid employee ID")
		return
	}

	var dto EmployeeDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		h.Logger.Error("UpdateEmployee: invalid request body", "error", err)
		h.WriteError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	emp, err := h.Service.UpdateEmployee(id, ownerID, dto)
	if err != nil {
		h.Logger.Error("UpdateEmployee: service error", "error", err, "employee_id", id, "owner_id", ownerID)
		h.HandleServiceError(w, err)
		return
	}

	h.WriteJSON(w, http.StatusOK, emp)
}

func (h *Handler) DeleteEmployee(w http.ResponseWriter, r *http.Request) {
	ownerID := internal.UserIDFromContext(r.Context())
	if ownerID == 0 {
		h.Logger.Error("DeleteEmployee: user not found in context")
		h.WriteError(w, http.StatusUnauthorized, "unauthorized")
		return
	}

	id, err := employeeIDParam(r)
	if err != nil {
		h.WriteError(w, http.StatusBadRequest, "invalid employee ID")
		return
	}

	if err := h.Service.DeleteEmployee(id, ownerID); err != nil {
		h.Logger.Error("DeleteEmployee: service error", "error", err, "employee_id", id, "owner_id", ownerID)
		h.HandleServiceError(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func employeeIDParam(r *http.Request) (int64, error) {
	return strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
}

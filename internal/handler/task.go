package handler

import (
	"net/http"

	"github.com/juneandco/aisle/internal/middleware"
	"github.com/juneandco/aisle/internal/model"
	"github.com/juneandco/aisle/internal/service"
)

// TaskHandler handles task board endpoints
type TaskHandler struct {
	taskService *service.TaskService
}

// NewTaskHandler creates a new task handler
func NewTaskHandler(taskService *service.TaskService) *TaskHandler {
	return &TaskHandler{
		taskService: taskService,
	}
}

// Add handles POST /v1/weddings/{weddingId}/tasks
func (h *TaskHandler) Add(w http.ResponseWriter, r *http.Request) {
	userID := middleware.GetUserID(r.Context())
	if userID == "" {
		WriteError(w, model.NewUnauthorizedError("authentication required"))
		return
	}

	weddingID := r.PathValue("weddingId")
	if weddingID == "" {
		WriteError(w, model.NewBadRequestError("wedding ID required"))
		return
	}

	var req model.AddTaskRequest
	if err := DecodeJSON(r, &req); err != nil {
		WriteError(w, model.NewBadRequestError("invalid request body"))
		return
	}
	if req.Title == "" {
		WriteError(w, model.NewBadRequestError("title required"))
		return
	}

	wedding, err := h.taskService.Add(r.Context(), weddingID, req)
	if err != nil {
		WriteError(w, MapServiceError(err))
		return
	}

	WriteData(w, http.StatusCreated, wedding, map[string]string{
		"self": "/v1/weddings/" + wedding.ID + "/tasks",
	})
}

// UpdateStatus handles PATCH /v1/weddings/{weddingId}/tasks/{taskId}
func (h *TaskHandler) UpdateStatus(w http.ResponseWriter, r *http.Request) {
	userID := middleware.GetUserID(r.Context())
	if userID == "" {
		WriteError(w, model.NewUnauthorizedError("authentication required"))
		return
	}

	weddingID := r.PathValue("weddingId")
	taskID := r.PathValue("taskId")
	if weddingID == "" || taskID == "" {
		WriteError(w, model.NewBadRequestError("wedding ID and task ID required"))
		return
	}

	var req model.UpdateTaskStatusRequest
	if err := DecodeJSON(r, &req); err != nil {
		WriteError(w, model.NewBadRequestError("invalid request body"))
		return
	}

	wedding, err := h.taskService.UpdateStatus(r.Context(), weddingID, taskID, req)
	if err != nil {
		WriteError(w, MapServiceError(err))
		return
	}

	WriteData(w, http.StatusOK, wedding, map[string]string{
		"self": "/v1/weddings/" + weddingID + "/tasks/" + taskID,
	})
}

// Delete handles DELETE /v1/weddings/{weddingId}/tasks/{taskId}
func (h *TaskHandler) Delete(w http.ResponseWriter, r *http.Request) {
	userID := middleware.GetUserID(r.Context())
	if userID == "" {
		WriteError(w, model.NewUnauthorizedError("authentication required"))
		return
	}

	weddingID := r.PathValue("weddingId")
	taskID := r.PathValue("taskId")
	if weddingID == "" || taskID == "" {
		WriteError(w, model.NewBadRequestError("wedding ID and task ID required"))
		return
	}

	if _, err := h.taskService.Delete(r.Context(), weddingID, taskID); err != nil {
		WriteError(w, MapServiceError(err))
		return
	}

	WriteNoContent(w)
}

// List handles GET /v1/weddings/{weddingId}/tasks
func (h *TaskHandler) List(w http.ResponseWriter, r *http.Request) {
	weddingID := r.PathValue("weddingId")
	if weddingID == "" {
		WriteError(w, model.NewBadRequestError("wedding ID required"))
		return
	}

	tasks, err := h.taskService.List(r.Context(), weddingID)
	if err != nil {
		WriteError(w, MapServiceError(err))
		return
	}

	WriteCollection(w, http.StatusOK, tasks, len(tasks), map[string]string{
		"self": "/v1/weddings/" + weddingID + "/tasks",
	})
}

// Get handles GET /v1/weddings/{weddingId}/tasks/{taskId}
func (h *TaskHandler) Get(w http.ResponseWriter, r *http.Request) {
	weddingID := r.PathValue("weddingId")
	taskID := r.PathValue("taskId")
	if weddingID == "" || taskID == "" {
		WriteError(w, model.NewBadRequestError("wedding ID and task ID required"))
		return
	}

	task, err := h.taskService.Get(r.Context(), weddingID, taskID)
	if err != nil {
		WriteError(w, MapServiceError(err))
		return
	}

	WriteData(w, http.StatusOK, task, map[string]string{
		"self": "/v1/weddings/" + weddingID + "/tasks/" + taskID,
	})
}

package http

import (
	"github.com/gin-gonic/gin"

	"github.com/JellyPork/bunflow/internal/middleware"
	"github.com/JellyPork/bunflow/pkg/response"
)

// QuickAdd godoc
// @Summary     Quick-add a task
// @Description Parses one free-text line into a task, schedules its reminders and stores it.
// @Tags        Task
// @Accept      json
// @Produce     json
// @Param       body body quickAddReq true "Free text, e.g. 'water plants every day at 9am #home'"
// @Success     200 {object} taskDetailResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/tasks/quick-add [POST]
func (h *handler) QuickAdd(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processQuickAddReq(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	out, err := h.uc.QuickAdd(ctx, middleware.GetScope(c), req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "uc.QuickAdd: %v", err)
		h.respondError(c, err)
		return
	}

	response.OK(c, h.newTaskDetailResp(out))
}

// Create godoc
// @Summary     Create a task
// @Description Stores a task built from structured input.
// @Tags        Task
// @Accept      json
// @Produce     json
// @Param       body body createReq true "Task data"
// @Success     200 {object} taskDetailResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/tasks [POST]
func (h *handler) Create(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processCreateReq(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	out, err := h.uc.Create(ctx, middleware.GetScope(c), req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "uc.Create: %v", err)
		h.respondError(c, err)
		return
	}

	response.OK(c, h.newTaskDetailResp(out))
}

// List godoc
// @Summary     List tasks
// @Description Returns tasks, newest first, with optional tag and done filters.
// @Tags        Task
// @Accept      json
// @Produce     json
// @Param       tag_id query string false "Filter by tag"
// @Param       done   query bool   false "Filter by done flag"
// @Param       limit  query int    false "Page size (default: 50)"
// @Param       offset query int    false "Page offset (default: 0)"
// @Success     200 {object} taskListResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/tasks [GET]
func (h *handler) List(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processListReq(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	input := req.toInput()
	out, err := h.uc.List(ctx, middleware.GetScope(c), input)
	if err != nil {
		h.l.Errorf(ctx, "uc.List: %v", err)
		h.respondError(c, err)
		return
	}

	response.OK(c, h.newTaskListResp(out, input))
}

// Detail godoc
// @Summary     Get task detail
// @Description Returns a single task by its ID.
// @Tags        Task
// @Accept      json
// @Produce     json
// @Param       id path string true "Task ID"
// @Success     200 {object} taskDetailResp
// @Failure     404 {object} response.Resp "Not Found"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/tasks/{id} [GET]
func (h *handler) Detail(c *gin.Context) {
	ctx := c.Request.Context()

	id := c.Param("id")
	if id == "" {
		response.Error(c, errMissingID, nil)
		return
	}

	out, err := h.uc.Get(ctx, middleware.GetScope(c), id)
	if err != nil {
		h.l.Errorf(ctx, "uc.Get: %v", err)
		h.respondError(c, err)
		return
	}

	response.OK(c, h.newTaskDetailResp(out))
}

// Update godoc
// @Summary     Update a task
// @Description Replaces a task's content and reschedules its reminders.
// @Tags        Task
// @Accept      json
// @Produce     json
// @Param       id   path string    true "Task ID"
// @Param       body body createReq true "Replacement content"
// @Success     200 {object} taskDetailResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     404 {object} response.Resp "Not Found"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/tasks/{id} [PUT]
func (h *handler) Update(c *gin.Context) {
	ctx := c.Request.Context()

	id := c.Param("id")
	if id == "" {
		response.Error(c, errMissingID, nil)
		return
	}

	req, err := h.processCreateReq(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	out, err := h.uc.Update(ctx, middleware.GetScope(c), id, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "uc.Update: %v", err)
		h.respondError(c, err)
		return
	}

	response.OK(c, h.newTaskDetailResp(out))
}

// Toggle godoc
// @Summary     Toggle a task's done flag
// @Description Flips the done flag. Reminders are left untouched.
// @Tags        Task
// @Accept      json
// @Produce     json
// @Param       id path string true "Task ID"
// @Success     200 {object} taskDetailResp
// @Failure     404 {object} response.Resp "Not Found"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/tasks/{id}/toggle [POST]
func (h *handler) Toggle(c *gin.Context) {
	ctx := c.Request.Context()

	id := c.Param("id")
	if id == "" {
		response.Error(c, errMissingID, nil)
		return
	}

	out, err := h.uc.Toggle(ctx, middleware.GetScope(c), id)
	if err != nil {
		h.l.Errorf(ctx, "uc.Toggle: %v", err)
		h.respondError(c, err)
		return
	}

	response.OK(c, h.newTaskDetailResp(out))
}

// Delete godoc
// @Summary     Delete a task
// @Description Cancels the task's reminders and removes the record.
// @Tags        Task
// @Accept      json
// @Produce     json
// @Param       id path string true "Task ID"
// @Success     200 {object} response.Resp "OK"
// @Failure     404 {object} response.Resp "Not Found"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/tasks/{id} [DELETE]
func (h *handler) Delete(c *gin.Context) {
	ctx := c.Request.Context()

	id := c.Param("id")
	if id == "" {
		response.Error(c, errMissingID, nil)
		return
	}

	if err := h.uc.Delete(ctx, middleware.GetScope(c), id); err != nil {
		h.l.Errorf(ctx, "uc.Delete: %v", err)
		h.respondError(c, err)
		return
	}

	response.OK(c, nil)
}

// ListTags godoc
// @Summary     List tags
// @Description Returns all tags, most used first.
// @Tags        Tag
// @Accept      json
// @Produce     json
// @Success     200 {object} tagListResp
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/tags [GET]
func (h *handler) ListTags(c *gin.Context) {
	ctx := c.Request.Context()

	out, err := h.uc.ListTags(ctx, middleware.GetScope(c))
	if err != nil {
		h.l.Errorf(ctx, "uc.ListTags: %v", err)
		h.respondError(c, err)
		return
	}

	response.OK(c, h.newTagListResp(out))
}

// RenameTag godoc
// @Summary     Rename a tag
// @Description Renames a tag everywhere it is used.
// @Tags        Tag
// @Accept      json
// @Produce     json
// @Param       id   path string       true "Tag ID"
// @Param       body body renameTagReq true "New name"
// @Success     200 {object} tagResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     404 {object} response.Resp "Not Found"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/tags/{id} [PATCH]
func (h *handler) RenameTag(c *gin.Context) {
	ctx := c.Request.Context()

	id := c.Param("id")
	if id == "" {
		response.Error(c, errMissingID, nil)
		return
	}

	req, err := h.processRenameTagReq(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	out, err := h.uc.RenameTag(ctx, middleware.GetScope(c), id, req.Name)
	if err != nil {
		h.l.Errorf(ctx, "uc.RenameTag: %v", err)
		h.respondError(c, err)
		return
	}

	response.OK(c, newTagResp(out))
}

// DeleteTag godoc
// @Summary     Delete a tag
// @Description Removes a tag and detaches it from every task.
// @Tags        Tag
// @Accept      json
// @Produce     json
// @Param       id path string true "Tag ID"
// @Success     200 {object} response.Resp "OK"
// @Failure     404 {object} response.Resp "Not Found"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/tags/{id} [DELETE]
func (h *handler) DeleteTag(c *gin.Context) {
	ctx := c.Request.Context()

	id := c.Param("id")
	if id == "" {
		response.Error(c, errMissingID, nil)
		return
	}

	if err := h.uc.DeleteTag(ctx, middleware.GetScope(c), id); err != nil {
		h.l.Errorf(ctx, "uc.DeleteTag: %v", err)
		h.respondError(c, err)
		return
	}

	response.OK(c, nil)
}

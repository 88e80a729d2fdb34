package handler

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/micropost/content-api/internal/api/metrics"
	"github.com/micropost/content-api/internal/core/domain"
	"github.com/micropost/content-api/internal/core/ports"
)

// PostHandler handles HTTP requests for post operations. All routes sit
// behind the Auth middleware; ownership scoping happens in the service and
// repository layers.
type PostHandler struct {
	service ports.PostService
}

func NewPostHandler(service ports.PostService) *PostHandler {
	return &PostHandler{service: service}
}

// Create handles POST /posts.
//
// @Summary      Create a post
// @Tags         posts
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      createPostRequest  true  "Post content"
// @Success      200   {object}  createPostResponse
// @Failure      400   {object}  errorResponse
// @Failure      401   {object}  errorResponse
// @Router       /posts [post]
func (h *PostHandler) Create(c echo.Context) error {
	user, err := currentUser(c)
	if err != nil {
		return err
	}

	var req createPostRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	id, err := h.service.Create(c.Request().Context(), user.ID, req.Content)
	if err != nil {
		return err
	}

	metrics.PostsCreatedTotal.Inc()
	return c.JSON(http.StatusOK, createPostResponse{ID: id})
}

// List handles GET /posts — all posts owned by the authenticated user.
//
// @Summary      List own posts
// @Tags         posts
// @Produce      json
// @Security     BearerAuth
// @Success      200  {array}   postResponse
// @Failure      401  {object}  errorResponse
// @Router       /posts [get]
func (h *PostHandler) List(c echo.Context) error {
	user, err := currentUser(c)
	if err != nil {
		return err
	}

	posts, err := h.service.List(c.Request().Context(), user.ID)
	if err != nil {
		return err
	}

	resp := make([]postResponse, 0, len(posts))
	for _, p := range posts {
		resp = append(resp, postResponse{ID: p.ID, Content: p.Content})
	}
	return c.JSON(http.StatusOK, resp)
}

// Delete handles DELETE /posts/:id. A post owned by someone else is
// indistinguishable from a non-existent one: both answer 404.
//
// @Summary      Delete a post
// @Tags         posts
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      int  true  "Post id"
// @Success      200  {object}  messageResponse
// @Failure      401  {object}  errorResponse
// @Failure      404  {object}  errorResponse
// @Router       /posts/{id} [delete]
func (h *PostHandler) Delete(c echo.Context) error {
	user, err := currentUser(c)
	if err != nil {
		return err
	}

	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		return domain.ErrPostNotFound
	}

	if err := h.service.Delete(c.Request().Context(), id, user.ID); err != nil {
		return err
	}

	metrics.PostsDeletedTotal.Inc()
	return c.JSON(http.StatusOK, messageResponse{Message: "post deleted"})
}

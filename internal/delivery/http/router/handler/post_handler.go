package handler

import (
	"log/slog"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"

	"postboard/internal/delivery/http/middleware"
	"postboard/internal/delivery/http/response"
	"postboard/internal/domain/entity"
	"postboard/internal/usecase"
)

// postResponse is the public projection of a post.
type postResponse struct {
	ID      uint64 `json:"id"`
	Text    string `json:"text"`
	OwnerID uint64 `json:"owner_id"`
}

func toPostResponse(post *entity.Post) postResponse {
	return postResponse{ID: post.ID, Text: post.Text, OwnerID: post.OwnerID}
}

func toPostResponses(posts []*entity.Post) []postResponse {
	out := make([]postResponse, 0, len(posts))
	for _, post := range posts {
		out = append(out, toPostResponse(post))
	}
	return out
}

// createPostRequest is the request body for post creation. The size limit is
// enforced in the usecase so it counts bytes of the text itself, not of the
// JSON envelope.
type createPostRequest struct {
	Text string `json:"text" validate:"required"`
}

// PostHandler holds dependencies for the post handlers.
type PostHandler struct {
	uc     usecase.PostUsecase
	logger *slog.Logger
}

// NewPostHandler is the constructor for PostHandler, injected by Fx.
func NewPostHandler(uc usecase.PostUsecase, logger *slog.Logger) *PostHandler {
	return &PostHandler{
		uc:     uc,
		logger: logger,
	}
}

// Create handles post creation for the authenticated user.
func (h *PostHandler) Create(c echo.Context) error {
	user, ok := middleware.CurrentUser(c)
	if !ok {
		return response.Unauthorized(c, "UNAUTHORIZED", "Could not validate credentials")
	}

	var req createPostRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid post input")
	}
	if err := c.Validate(&req); err != nil {
		return errors.WithStack(err)
	}

	post, err := h.uc.Create(c.Request().Context(), &usecase.CreatePostInput{
		OwnerID: user.ID,
		Text:    req.Text,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, toPostResponse(post), "Post created successfully")
}

// List returns every post in the system. The listing is served from the
// per-user cache when a fresh entry exists.
func (h *PostHandler) List(c echo.Context) error {
	user, ok := middleware.CurrentUser(c)
	if !ok {
		return response.Unauthorized(c, "UNAUTHORIZED", "Could not validate credentials")
	}

	posts, err := h.uc.List(c.Request().Context(), user.ID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, toPostResponses(posts), "Posts retrieved successfully")
}

// Delete removes a post owned by the authenticated user. Posts that do not
// exist and posts owned by someone else are indistinguishable to the caller.
func (h *PostHandler) Delete(c echo.Context) error {
	user, ok := middleware.CurrentUser(c)
	if !ok {
		return response.Unauthorized(c, "UNAUTHORIZED", "Could not validate credentials")
	}

	postID, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Post id must be a positive integer")
	}

	deleted, err := h.uc.Delete(c.Request().Context(), &usecase.DeletePostInput{
		PostID:  postID,
		OwnerID: user.ID,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, toPostResponse(deleted), "Post deleted successfully")
}

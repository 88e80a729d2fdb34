package handler

// errorResponse is the standard error envelope returned on all 4xx/5xx responses.
type errorResponse struct {
	Error string `json:"error"`
}

type createPostRequest struct {
	Content string `json:"content" validate:"required"`
}

type createPostResponse struct {
	ID int64 `json:"id"`
}

// postResponse is the list item view. The owner id is implicit: a caller only
// ever sees their own posts.
type postResponse struct {
	ID      int64  `json:"id"`
	Content string `json:"content"`
}

type messageResponse struct {
	Message string `json:"message"`
}

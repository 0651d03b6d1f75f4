package handler

type TopicRequest struct {
	Topic string `json:"topic" binding:"required"`
}

type PostResponse struct {
	Title           string `json:"title"`
	MetaDescription string `json:"meta_description"`
	PostContent     string `json:"post_content"`
}

type ErrorResponse struct {
	Detail string `json:"detail"`
}

type HealthResponse struct {
	Status string `json:"status"`
	Mode   string `json:"mode"`
}

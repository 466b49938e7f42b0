package dto

// CreateCommentDTO is the body of a comment creation request. Fields
// are pointers so presence checks happen explicitly in the handler;
// any extra fields in the request are ignored, including a caller
// supplied votes value.
type CreateCommentDTO struct {
	Username *string `json:"username"`
	Body     *string `json:"body"`
}

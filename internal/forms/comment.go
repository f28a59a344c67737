package forms

import (
	"strings"

	"github.com/mddlabs/mddctl/pkg/api"
)

// CommentForm validates a new comment: content is required.
type CommentForm struct {
	Content Field
}

func NewCommentForm() *CommentForm {
	return &CommentForm{}
}

func (f *CommentForm) Validate() bool {
	errs := structErrors(api.CreateCommentRequest{
		Content: strings.TrimSpace(f.Content.Value()),
	})
	f.Content.setErrors(errs["Content"])
	return len(errs) == 0
}

func (f *CommentForm) Valid() bool {
	return f.Validate()
}

func (f *CommentForm) Submit() (api.CreateCommentRequest, error) {
	f.Content.Touch()
	if !f.Validate() {
		return api.CreateCommentRequest{}, ErrInvalidForm
	}
	return api.CreateCommentRequest{Content: strings.TrimSpace(f.Content.Value())}, nil
}

func (f *CommentForm) Errors() map[string][]string {
	out := make(map[string][]string)
	collectField(out, "comment", &f.Content)
	return out
}

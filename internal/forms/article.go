package forms

import (
	"strings"

	"github.com/mddlabs/mddctl/pkg/api"
)

// ArticleForm validates a new article: title, content, and topic are all
// required.
type ArticleForm struct {
	Title   Field
	Content Field
	TopicID Field
}

func NewArticleForm() *ArticleForm {
	return &ArticleForm{}
}

func (f *ArticleForm) request() api.CreateArticleRequest {
	return api.CreateArticleRequest{
		Title:   strings.TrimSpace(f.Title.Value()),
		Content: strings.TrimSpace(f.Content.Value()),
		TopicID: strings.TrimSpace(f.TopicID.Value()),
	}
}

func (f *ArticleForm) Validate() bool {
	errs := structErrors(f.request())
	f.Title.setErrors(errs["Title"])
	f.Content.setErrors(errs["Content"])
	f.TopicID.setErrors(errs["TopicID"])
	return len(errs) == 0
}

func (f *ArticleForm) Valid() bool {
	return f.Validate()
}

func (f *ArticleForm) Submit() (api.CreateArticleRequest, error) {
	f.Title.Touch()
	f.Content.Touch()
	f.TopicID.Touch()
	if !f.Validate() {
		return api.CreateArticleRequest{}, ErrInvalidForm
	}
	return f.request(), nil
}

func (f *ArticleForm) Errors() map[string][]string {
	out := make(map[string][]string)
	collectField(out, "title", &f.Title)
	collectField(out, "content", &f.Content)
	collectField(out, "topic", &f.TopicID)
	return out
}

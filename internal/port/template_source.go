package port

import "context"

// TemplateSource loads raw template markup by file name.
type TemplateSource interface {
	Load(ctx context.Context, file string) (string, error)
}

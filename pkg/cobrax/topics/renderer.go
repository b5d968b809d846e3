package topics

// Renderer formats topic content for display. format is the topic
// file's extension.
type Renderer interface {
	Render(content string, format string) string
}

// PlainRenderer returns content as-is
type PlainRenderer struct{}

// Render returns the content unchanged
func (r *PlainRenderer) Render(content string, format string) string {
	return content
}

// RendererFunc adapts a function to Renderer
type RendererFunc func(content, format string) string

// Render calls f
func (f RendererFunc) Render(content, format string) string {
	return f(content, format)
}

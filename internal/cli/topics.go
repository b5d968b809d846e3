package cli

import (
	"embed"
	"io/fs"
	"os"

	"github.com/spf13/cobra"

	"github.com/arthur-debert/stepkit/pkg/cobrax/topics"
	"github.com/arthur-debert/stepkit/pkg/logging"
	"github.com/arthur-debert/stepkit/pkg/ui"
)

//go:embed topics/*.md
var topicFiles embed.FS

// initTopics installs help topics on rootCmd. Markdown topics are
// rendered with glamour when stdout is a terminal.
func initTopics(rootCmd *cobra.Command) {
	md := ui.NewMarkdownRenderer()
	renderer := topics.RendererFunc(func(content, format string) string {
		if format != ".md" {
			return content
		}
		return md.Render(content, ui.FormatAuto.Resolve(os.Stdout))
	})

	source, err := fs.Sub(topicFiles, "topics")
	if err == nil {
		_, err = topics.Initialize(rootCmd, source, topics.Options{Renderer: renderer})
	}
	if err != nil {
		logger := logging.GetLogger("cli")
		logger.Warn().Err(err).Msg("help topics unavailable")
	}
}

// Package topics adds topic-based help to a Cobra CLI: "help <topic>"
// renders documents loaded from an fs.FS alongside the regular command
// help.
package topics

import (
	"fmt"
	"io/fs"
	"path"
	"sort"
	"strings"

	"github.com/spf13/cobra"
)

// TopicManager manages help topics for a Cobra application
type TopicManager struct {
	source       fs.FS
	topics       map[string]*Topic
	originalHelp func(*cobra.Command, []string)
	extensions   []string
	renderer     Renderer
}

// Topic represents a help topic
type Topic struct {
	Name     string
	FilePath string
	Content  string
}

// Options configures the TopicManager
type Options struct {
	// Extensions is the list of file extensions to consider as topics.
	// Defaults to [".txt", ".md"].
	Extensions []string

	// Renderer formats topic content; defaults to PlainRenderer
	Renderer Renderer
}

// New creates a TopicManager reading topics from source
func New(source fs.FS, opts Options) *TopicManager {
	tm := &TopicManager{
		source:     source,
		topics:     make(map[string]*Topic),
		extensions: opts.Extensions,
		renderer:   opts.Renderer,
	}
	if len(tm.extensions) == 0 {
		tm.extensions = []string{".txt", ".md"}
	}
	if tm.renderer == nil {
		tm.renderer = &PlainRenderer{}
	}
	return tm
}

func (tm *TopicManager) supported(ext string) bool {
	for _, valid := range tm.extensions {
		if ext == valid {
			return true
		}
	}
	return false
}

// Scan loads every topic file found in the source
func (tm *TopicManager) Scan() error {
	return fs.WalkDir(tm.source, ".", func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		ext := path.Ext(p)
		if d.IsDir() || !tm.supported(ext) {
			return nil
		}

		content, err := fs.ReadFile(tm.source, p)
		if err != nil {
			return err
		}
		name := strings.TrimSuffix(path.Base(p), ext)
		tm.topics[name] = &Topic{Name: name, FilePath: p, Content: string(content)}
		return nil
	})
}

// GetTopic retrieves a topic by name. Flag-style names (--config) also
// match "option-" topics.
func (tm *TopicManager) GetTopic(name string) (*Topic, bool) {
	name = strings.TrimLeft(name, "-")
	if topic, ok := tm.topics[name]; ok {
		return topic, true
	}
	topic, ok := tm.topics["option-"+name]
	return topic, ok
}

// ListTopics returns all topic names, sorted
func (tm *TopicManager) ListTopics() []string {
	names := make([]string, 0, len(tm.topics))
	for name := range tm.topics {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

func (tm *TopicManager) render(cmd *cobra.Command, topic *Topic) {
	_, _ = fmt.Fprint(cmd.OutOrStdout(), tm.renderer.Render(topic.Content, path.Ext(topic.FilePath)))
}

func (tm *TopicManager) printList(cmd *cobra.Command) {
	out := cmd.OutOrStdout()
	names := tm.ListTopics()
	if len(names) == 0 {
		_, _ = fmt.Fprintln(out, "No help topics available.")
		return
	}

	var general, options []string
	for _, name := range names {
		if strings.HasPrefix(name, "option-") {
			options = append(options, strings.TrimPrefix(name, "option-"))
		} else {
			general = append(general, name)
		}
	}

	_, _ = fmt.Fprintln(out, "Available help topics:")
	if len(general) > 0 {
		_, _ = fmt.Fprintln(out, "\nGeneral topics:")
		for _, name := range general {
			_, _ = fmt.Fprintf(out, "  %s\n", name)
		}
	}
	if len(options) > 0 {
		_, _ = fmt.Fprintln(out, "\nOption topics:")
		for _, name := range options {
			_, _ = fmt.Fprintf(out, "  --%s\n", name)
		}
	}
	_, _ = fmt.Fprintf(out, "\nUse '%s help <topic>' to read about a specific topic.\n", cmd.Root().Name())
}

// Initialize scans source and installs the topic-aware help command and
// help function on rootCmd.
func Initialize(rootCmd *cobra.Command, source fs.FS, opts Options) (*TopicManager, error) {
	tm := New(source, opts)
	if err := tm.Scan(); err != nil {
		return nil, fmt.Errorf("failed to scan topics: %w", err)
	}
	tm.originalHelp = rootCmd.HelpFunc()

	helpCmd := &cobra.Command{
		Use:   "help [command or topic]",
		Short: "Help about any command or topic",
		Long: `Help provides help for any command or topic in the application.
Simply type ` + rootCmd.Name() + ` help [path to command or topic] for full details.

To see all available help topics:
  ` + rootCmd.Name() + ` help topics`,
		ValidArgsFunction: func(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
			completions := []string{"topics"}
			for _, c := range rootCmd.Commands() {
				if !c.Hidden {
					completions = append(completions, c.Name())
				}
			}
			completions = append(completions, tm.ListTopics()...)
			return completions, cobra.ShellCompDirectiveNoFileComp
		},
		Run: func(cmd *cobra.Command, args []string) {
			if len(args) == 0 {
				tm.originalHelp(rootCmd, args)
				return
			}
			if args[0] == "topics" {
				tm.printList(cmd)
				return
			}
			if topic, ok := tm.GetTopic(args[0]); ok {
				tm.render(cmd, topic)
				return
			}
			if target, _, err := rootCmd.Find(args); err == nil && target != nil {
				tm.originalHelp(target, nil)
				return
			}
			tm.originalHelp(rootCmd, args)
		},
	}

	for _, c := range rootCmd.Commands() {
		if c.Name() == "help" {
			rootCmd.RemoveCommand(c)
			break
		}
	}
	rootCmd.SetHelpCommand(helpCmd)

	return tm, nil
}

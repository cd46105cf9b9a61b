package cmd

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/abhisek/pathwise/internal/catalog"
	"github.com/abhisek/pathwise/internal/ctxlog"
	"github.com/abhisek/pathwise/internal/store"
	"github.com/abhisek/pathwise/internal/topicgraph"
	"github.com/spf13/cobra"
)

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "pathwise",
		Short: "Plan a study path through prerequisite topics",
		Long: "pathwise finds the topics you still need to learn before a target topic,\n" +
			"in an order that respects their prerequisites.",
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			level, _ := cmd.Flags().GetString("log-level")
			format, _ := cmd.Flags().GetString("log-format")
			logger := ctxlog.New(level, format, cmd.ErrOrStderr())
			cmd.SetContext(ctxlog.WithLogger(cmd.Context(), logger))
			return nil
		},
	}

	pf := root.PersistentFlags()
	pf.String("catalog", "", "Path to a catalog file: .json, .yaml, .cue or .hcl (overrides PATHWISE_CATALOG env var)")
	pf.String("from-db", "", "Load the named catalog from the database instead of a file")
	pf.String("db", "", "Path to SQLite database file (overrides PATHWISE_DB env var)")
	pf.String("log-level", "warn", "Log level: debug, info, warn or error")
	pf.String("log-format", "text", "Log format: text or json")

	root.AddCommand(newTopicsCmd())
	root.AddCommand(newShowCmd())
	root.AddCommand(newPrereqsCmd())
	root.AddCommand(newDependentsCmd())
	root.AddCommand(newOrderCmd())
	root.AddCommand(newPathCmd())
	root.AddCommand(newLevelsCmd())
	root.AddCommand(newCheckCmd())
	root.AddCommand(newCatalogCmd())
	root.AddCommand(newVersionCmd())
	return root
}

func Execute() error {
	return newRootCmd().ExecuteContext(context.Background())
}

// resolveDBPath returns the database path using --db flag (highest priority),
// then PATHWISE_DB env var, then the default XDG path.
func resolveDBPath(cmd *cobra.Command) (string, error) {
	if p, _ := cmd.Flags().GetString("db"); p != "" {
		return p, store.EnsureDir(p)
	}
	return store.DefaultDBPath()
}

func openStore(cmd *cobra.Command) (*store.Store, error) {
	dbPath, err := resolveDBPath(cmd)
	if err != nil {
		return nil, fmt.Errorf("resolve DB path: %w", err)
	}
	st, err := store.Open(dbPath)
	if err != nil {
		return nil, fmt.Errorf("open store: %w", err)
	}
	return st, nil
}

func loggerFor(cmd *cobra.Command) *slog.Logger {
	if ctx := cmd.Context(); ctx != nil {
		return ctxlog.FromContext(ctx)
	}
	return slog.Default()
}

// loadCatalog resolves the catalog in priority order: --from-db, then
// --catalog, then PATHWISE_CATALOG, then the built-in catalog.
func loadCatalog(cmd *cobra.Command) (*catalog.Catalog, error) {
	logger := loggerFor(cmd)

	if name, _ := cmd.Flags().GetString("from-db"); name != "" {
		st, err := openStore(cmd)
		if err != nil {
			return nil, err
		}
		defer st.Close()
		c, err := st.CatalogRepo().Load(cmd.Context(), name)
		if err != nil {
			return nil, fmt.Errorf("load catalog %q: %w", name, err)
		}
		logger.Debug("catalog loaded", "source", "db", "name", name, "fingerprint", c.Fingerprint())
		return c, nil
	}

	path, _ := cmd.Flags().GetString("catalog")
	if path == "" {
		path = os.Getenv("PATHWISE_CATALOG")
	}
	if path == "" {
		c, err := catalog.Default()
		if err != nil {
			return nil, err
		}
		logger.Debug("catalog loaded", "source", "builtin", "fingerprint", c.Fingerprint())
		return c, nil
	}

	c, err := catalog.Load(path)
	if err != nil {
		return nil, err
	}
	logger.Debug("catalog loaded", "source", path, "fingerprint", c.Fingerprint())
	return c, nil
}

// loadEngine loads the catalog and builds the query engine over it.
func loadEngine(cmd *cobra.Command) (*topicgraph.Engine, *catalog.Catalog, error) {
	c, err := loadCatalog(cmd)
	if err != nil {
		return nil, nil, err
	}
	e, err := topicgraph.New(c, topicgraph.WithLogger(loggerFor(cmd)))
	if err != nil {
		return nil, nil, fmt.Errorf("build topic graph: %w", err)
	}
	return e, c, nil
}

func requireTopics(e *topicgraph.Engine, names ...string) error {
	for _, n := range names {
		if !e.Has(n) {
			return fmt.Errorf("%w: %q (see 'pathwise topics')", topicgraph.ErrUnknownTopic, n)
		}
	}
	return nil
}

// completeTopics offers topic names for shell completion.
func completeTopics(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
	c, err := loadCatalog(cmd)
	if err != nil {
		return nil, cobra.ShellCompDirectiveError
	}
	prefix := strings.ToLower(toComplete)
	var out []string
	for _, t := range c.Topics() {
		if strings.HasPrefix(strings.ToLower(t), prefix) {
			out = append(out, t)
		}
	}
	return out, cobra.ShellCompDirectiveNoFileComp
}

package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/abhisek/pathwise/internal/catalog"
)

func newCatalogCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "catalog",
		Short: "Manage catalogs stored in the database",
	}
	cmd.AddCommand(newCatalogImportCmd())
	cmd.AddCommand(newCatalogHistoryCmd())
	cmd.AddCommand(newCatalogListCmd())
	return cmd
}

func newCatalogImportCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "import NAME FILE",
		Short: "Import a catalog file into the database under NAME",
		Long: "Import a catalog file into the database under NAME, replacing any\n" +
			"catalog already stored there. Use --from-db NAME to query it afterwards.",
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			name, file := args[0], args[1]
			c, err := catalog.Load(file)
			if err != nil {
				return err
			}

			st, err := openStore(cmd)
			if err != nil {
				return err
			}
			defer st.Close()

			imp, err := st.CatalogRepo().Save(cmd.Context(), name, c)
			if err != nil {
				return fmt.Errorf("import catalog %q: %w", name, err)
			}
			loggerFor(cmd).Info("catalog imported", "name", name, "import_id", imp.ID, "topics", imp.Topics)
			fmt.Fprintf(cmd.OutOrStdout(), "Imported %d topics into %q (fingerprint %s)\n",
				imp.Topics, name, imp.Fingerprint)
			return nil
		},
	}
}

func newCatalogHistoryCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "history NAME",
		Short: "Show the import history of a stored catalog",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			st, err := openStore(cmd)
			if err != nil {
				return err
			}
			defer st.Close()

			imports, err := st.CatalogRepo().Imports(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			if len(imports) == 0 {
				return fmt.Errorf("no imports for catalog %q", args[0])
			}

			w := cmd.OutOrStdout()
			fmt.Fprintf(w, "%-20s  %-16s  %6s  %s\n", "Imported", "Fingerprint", "Topics", "ID")
			for _, imp := range imports {
				fmt.Fprintf(w, "%-20s  %-16s  %6d  %s\n",
					imp.ImportedAt.Local().Format("2006-01-02 15:04:05"), imp.Fingerprint, imp.Topics, imp.ID)
			}
			return nil
		},
	}
}

func newCatalogListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List the names of stored catalogs",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			st, err := openStore(cmd)
			if err != nil {
				return err
			}
			defer st.Close()

			names, err := st.CatalogRepo().Names(cmd.Context())
			if err != nil {
				return err
			}
			printList(cmd.OutOrStdout(), names)
			return nil
		},
	}
}

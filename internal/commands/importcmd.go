package commands

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/tallybook-dev/tallybook/internal/importer"
	"github.com/tallybook-dev/tallybook/internal/journal"
)

func newImportCommand() *cobra.Command {
	var booksDir, format string

	cmd := &cobra.Command{
		Use:   "import [file]",
		Short: "Import a bank statement CSV as journal entries",
		Long: "Import posts one journal entry per statement line, mapped onto the\n" +
			"accounts named in the import section of tallybook.yaml. Without a file\n" +
			"argument, every CSV in import/ is processed and moved to import/processed/.",
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 1 {
				return runImportFile(booksDir, args[0], format)
			}
			return runImportDir(booksDir, format)
		},
	}

	cmd.Flags().StringVar(&booksDir, "books", ".", "books directory")
	cmd.Flags().StringVar(&format, "format", "generic", "statement format")
	return cmd
}

func runImportFile(dir, path, format string) error {
	env, err := openBooks(dir)
	if err != nil {
		return err
	}
	defer env.close()

	posted, rejected, err := importOne(env, path, format)
	if err != nil {
		return err
	}

	env.logAndCommit("import", "",
		fmt.Sprintf("%s: %d posted, %d rejected", path, posted, rejected),
		fmt.Sprintf("import: %s", path))

	fmt.Printf("Imported %s: %d posted, %d rejected\n", path, posted, rejected)
	return nil
}

func runImportDir(dir, format string) error {
	env, err := openBooks(dir)
	if err != nil {
		return err
	}
	defer env.close()

	files, err := importer.Scan(env.root)
	if err != nil {
		return err
	}
	if len(files) == 0 {
		fmt.Println("Nothing to import")
		return nil
	}

	for _, f := range files {
		posted, rejected, err := importOne(env, f.Path, format)
		if err != nil {
			return fmt.Errorf("importing %s: %w", f.Name, err)
		}
		if err := importer.MarkProcessed(env.root, f.Name); err != nil {
			return err
		}

		env.logAndCommit("import", "",
			fmt.Sprintf("%s: %d posted, %d rejected", f.Name, posted, rejected),
			fmt.Sprintf("import: %s", f.Name))

		fmt.Printf("Imported %s: %d posted, %d rejected\n", f.Name, posted, rejected)
	}
	return nil
}

// importOne parses a statement file and posts each candidate. Lines the
// validator rejects are reported and skipped; they do not abort the batch.
func importOne(env *booksEnv, path, format string) (posted, rejected int, err error) {
	parser := importer.DefaultRegistry().Get(format)
	if parser == nil {
		return 0, 0, fmt.Errorf("unknown statement format %q", format)
	}

	f, err := os.Open(path)
	if err != nil {
		return 0, 0, fmt.Errorf("opening statement: %w", err)
	}
	defer f.Close()

	lines, err := parser.Parse(f)
	if err != nil {
		return 0, 0, err
	}

	for _, c := range importer.Candidates(lines, env.cfg.Import) {
		if _, err := env.book.PostEntry(c); err != nil {
			if verr := journal.AsValidationError(err); verr != nil {
				fmt.Fprintf(os.Stderr, "skipping %s %q: %v\n", c.Date, c.Description, verr)
				rejected++
				continue
			}
			return posted, rejected, err
		}
		posted++
	}
	return posted, rejected, nil
}

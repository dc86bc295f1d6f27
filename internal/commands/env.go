package commands

import (
	"fmt"
	"path/filepath"
	"time"

	"github.com/tallybook-dev/tallybook/internal/accounts"
	"github.com/tallybook-dev/tallybook/internal/book"
	"github.com/tallybook-dev/tallybook/internal/config"
	"github.com/tallybook-dev/tallybook/internal/gitops"
	"github.com/tallybook-dev/tallybook/internal/postlog"
	"github.com/tallybook-dev/tallybook/internal/store"
)

// booksEnv is everything an opened books directory gives a command: the
// config, the account catalog, and the posting gateway over the configured
// store.
type booksEnv struct {
	root    string
	cfg     *config.Config
	catalog *accounts.Service
	book    *book.Book
	closers []func() error
}

// openBooks loads a books directory: config, chart of accounts, and the
// journal store named by the config.
func openBooks(dir string) (*booksEnv, error) {
	root, err := filepath.Abs(dir)
	if err != nil {
		return nil, fmt.Errorf("resolving path: %w", err)
	}

	cfg, err := config.Load(filepath.Join(root, config.FileName))
	if err != nil {
		return nil, err
	}

	catalog, err := accounts.Load(root)
	if err != nil {
		return nil, err
	}

	env := &booksEnv{root: root, cfg: cfg, catalog: catalog}

	var st book.Store
	switch cfg.Storage.Backend {
	case "", "csv":
		st = store.NewCSVFile(root)
	case "sqlite":
		path := cfg.Storage.Path
		if path == "" {
			path = "journal.db"
		}
		if !filepath.IsAbs(path) {
			path = filepath.Join(root, path)
		}
		db, err := store.OpenSQLite(path)
		if err != nil {
			return nil, err
		}
		env.closers = append(env.closers, db.Close)
		st = db
	default:
		return nil, fmt.Errorf("unknown storage backend %q", cfg.Storage.Backend)
	}

	b, err := book.Open(catalog, st)
	if err != nil {
		env.close()
		return nil, err
	}
	env.book = b
	return env, nil
}

func (e *booksEnv) close() {
	for _, c := range e.closers {
		_ = c()
	}
}

// logAndCommit appends one posting-log row and, when auto-commit is on,
// commits the books directory. Both are best-effort; the journal append has
// already succeeded.
func (e *booksEnv) logAndCommit(action, entryID, details, commitMsg string) string {
	hash := ""
	if e.cfg.Git.AutoCommit && gitops.IsRepo(e.root) {
		h, err := gitops.CommitAll(e.root, commitMsg, e.cfg.Git.AuthorName, e.cfg.Git.AuthorEmail)
		if err == nil {
			hash = h
		}
	}

	_ = postlog.Append(e.root, []postlog.Entry{{
		Timestamp:  time.Now().UTC(),
		Action:     action,
		EntryID:    entryID,
		Details:    details,
		CommitHash: hash,
	}})
	return hash
}

// parseRange builds an optional date filter from --from/--to flag values.
func parseRange(from, to string) (*book.DateRange, error) {
	if from == "" && to == "" {
		return nil, nil
	}

	var r book.DateRange
	var err error
	if from != "" {
		r.From, err = time.Parse("2006-01-02", from)
		if err != nil {
			return nil, fmt.Errorf("invalid --from date %q", from)
		}
	}
	if to != "" {
		r.To, err = time.Parse("2006-01-02", to)
		if err != nil {
			return nil, fmt.Errorf("invalid --to date %q", to)
		}
	}
	return &r, nil
}

package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/avasseur/atelier/internal/catalog"
	"github.com/avasseur/atelier/internal/config"
	"github.com/avasseur/atelier/internal/content"
	"github.com/avasseur/atelier/internal/session"
	"github.com/avasseur/atelier/internal/store"
)

// openSession wires the catalog, content store and database into a loaded
// session. The caller must Close the returned store.
func openSession(cmd *cobra.Command) (*session.Session, *store.Store, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, nil, err
	}

	cat, err := catalog.Default()
	if err != nil {
		return nil, nil, fmt.Errorf("load catalog: %w", err)
	}
	cnt, err := content.Default()
	if err != nil {
		return nil, nil, fmt.Errorf("load content: %w", err)
	}

	dbPath, err := resolveDBPath(cmd, cfg.DBPath)
	if err != nil {
		return nil, nil, fmt.Errorf("resolve DB path: %w", err)
	}
	st, err := store.Open(dbPath)
	if err != nil {
		return nil, nil, fmt.Errorf("open store: %w", err)
	}

	s, err := session.Load(cmd.Context(), session.Deps{
		Catalog:      cat,
		Content:      cnt,
		KV:           st.KV(),
		Events:       st.Events(),
		LearnerName:  cfg.LearnerName,
		LearnerEmail: cfg.LearnerEmail,
	})
	if err != nil {
		st.Close()
		return nil, nil, err
	}
	return s, st, nil
}

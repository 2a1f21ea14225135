package cli

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/custodia-labs/hubsearch/internal/core/domain"
	"github.com/custodia-labs/hubsearch/internal/core/ports/driven"
)

// RecordSeeder writes fixture rows into the backing store.
type RecordSeeder interface {
	SaveTool(ctx context.Context, tool driven.ToolRecord) error
	SaveUser(ctx context.Context, user driven.UserRecord, role domain.Role) error
	SaveActivation(ctx context.Context, activation driven.ActivationRecord, toolID string) error
}

var seedStore RecordSeeder

// SetSeedStore injects the store the seed command writes to.
func SetSeedStore(store RecordSeeder) {
	seedStore = store
}

var seedCmd = &cobra.Command{
	Use:   "seed",
	Short: "Load sample marketplace data",
	Long: `Writes a small set of sample tools, users, and activations into
the local database so search has something to find. Running it again
overwrites the same rows.`,
	RunE: runSeed,
}

func init() {
	rootCmd.AddCommand(seedCmd)
}

func runSeed(cmd *cobra.Command, _ []string) error {
	if seedStore == nil {
		return errors.New("seed store not configured")
	}

	ctx := cmd.Context()

	tools := []driven.ToolRecord{
		{ID: "tool-analytics", Name: "Analytics Dashboard", Description: "Realtime traffic and event analytics", Category: "analytics", Active: true},
		{ID: "tool-storage", Name: "File Storage", Description: "Object storage with signed uploads", Category: "storage", Active: true},
		{ID: "tool-billing", Name: "Billing Engine", Description: "Invoices, plans, and usage metering", Category: "billing", Active: true},
		{ID: "tool-mailer", Name: "Transactional Mailer", Description: "Templated email delivery", Category: "messaging", Active: true},
		{ID: "tool-legacy", Name: "Legacy Importer", Description: "Retired data import pipeline", Category: "data", Active: false},
	}
	for _, tool := range tools {
		if err := seedStore.SaveTool(ctx, tool); err != nil {
			return fmt.Errorf("seeding tool %s: %w", tool.ID, err)
		}
	}

	users := []struct {
		record driven.UserRecord
		role   domain.Role
	}{
		{driven.UserRecord{ID: "local", Name: "Local Admin", Email: "admin@example.com", Plan: "enterprise"}, domain.RoleAdmin},
		{driven.UserRecord{ID: "user-dana", Name: "Dana Okafor", Email: "dana@example.com", Plan: "pro"}, domain.RoleMember},
		{driven.UserRecord{ID: "user-sam", Name: "Sam Lee", Email: "sam@example.com", Plan: "free"}, domain.RoleMember},
	}
	for _, user := range users {
		if err := seedStore.SaveUser(ctx, user.record, user.role); err != nil {
			return fmt.Errorf("seeding user %s: %w", user.record.ID, err)
		}
	}

	activations := []struct {
		userID string
		toolID string
		age    time.Duration
	}{
		{"local", "tool-analytics", 48 * time.Hour},
		{"local", "tool-storage", 24 * time.Hour},
		{"user-dana", "tool-analytics", 72 * time.Hour},
	}
	for _, a := range activations {
		record := driven.ActivationRecord{
			// Deterministic per user+tool so reseeding upserts
			// instead of piling up rows.
			ID:          uuid.NewSHA1(uuid.NameSpaceURL, []byte(a.userID+"/"+a.toolID)).String(),
			UserID:      a.userID,
			Status:      "active",
			ActivatedAt: time.Now().UTC().Add(-a.age),
		}
		if err := seedStore.SaveActivation(ctx, record, a.toolID); err != nil {
			return fmt.Errorf("seeding activation for %s: %w", a.userID, err)
		}
	}

	cmd.Printf("Seeded %d tools, %d users, %d activations.\n", len(tools), len(users), len(activations))
	return nil
}

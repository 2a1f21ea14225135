package memory

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/hubsearch/internal/core/domain"
	"github.com/custodia-labs/hubsearch/internal/core/ports/driven"
)

func TestToolStore_FindActive(t *testing.T) {
	store := NewToolStore()
	store.Add(driven.ToolRecord{ID: "t-1", Name: "Analytics Dashboard", Category: "analytics", Active: true})
	store.Add(driven.ToolRecord{ID: "t-2", Name: "Legacy Importer", Category: "data", Active: false})
	store.Add(driven.ToolRecord{ID: "t-3", Name: "File Storage", Description: "analytics exports", Category: "storage", Active: true})

	records, err := store.FindActive(context.Background(), "ANALYTICS", 10)
	require.NoError(t, err)
	require.Len(t, records, 2)
	assert.Equal(t, "t-1", records[0].ID)
	assert.Equal(t, "t-3", records[1].ID)
}

func TestToolStore_FindActive_Limit(t *testing.T) {
	store := NewToolStore()
	store.Add(driven.ToolRecord{ID: "t-1", Name: "Alpha Tool", Active: true})
	store.Add(driven.ToolRecord{ID: "t-2", Name: "Beta Tool", Active: true})

	records, err := store.FindActive(context.Background(), "tool", 1)
	require.NoError(t, err)
	assert.Len(t, records, 1)
}

func TestActivationStore_ListActiveForUser(t *testing.T) {
	store := NewActivationStore()
	now := time.Now()
	store.Add(driven.ActivationRecord{ID: "a-1", UserID: "u-1", Status: "active", ActivatedAt: now})
	store.Add(driven.ActivationRecord{ID: "a-2", UserID: "u-1", Status: "suspended", ActivatedAt: now})
	store.Add(driven.ActivationRecord{ID: "a-3", UserID: "u-2", Status: "active", ActivatedAt: now})

	records, err := store.ListActiveForUser(context.Background(), "u-1", 10)
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Equal(t, "a-1", records[0].ID)
}

func TestUserStore_Find(t *testing.T) {
	store := NewUserStore()
	store.Add(driven.UserRecord{ID: "u-1", Name: "Dana Okafor", Email: "dana@example.com", Plan: "pro"}, domain.RoleAdmin)
	store.Add(driven.UserRecord{ID: "u-2", Name: "Sam Lee", Email: "sam@example.com", Plan: "free"}, domain.RoleMember)

	byName, err := store.Find(context.Background(), "dana", 10)
	require.NoError(t, err)
	require.Len(t, byName, 1)
	assert.Equal(t, "u-1", byName[0].ID)

	byPlan, err := store.Find(context.Background(), "free", 10)
	require.NoError(t, err)
	require.Len(t, byPlan, 1)
	assert.Equal(t, "u-2", byPlan[0].ID)
}

func TestUserStore_Role(t *testing.T) {
	store := NewUserStore()
	store.Add(driven.UserRecord{ID: "u-1", Name: "Dana Okafor"}, domain.RoleAdmin)

	role, err := store.Role(context.Background(), "u-1")
	require.NoError(t, err)
	assert.Equal(t, domain.RoleAdmin, role)

	// Unknown users default to member.
	role, err = store.Role(context.Background(), "stranger")
	require.NoError(t, err)
	assert.Equal(t, domain.RoleMember, role)
}

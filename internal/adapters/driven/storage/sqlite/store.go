// Package sqlite provides the SQLite-backed record stores for the
// search sources: marketplace tools, user accounts, and per-user tool
// activations. A single Store owns the database handle and hands out
// wrapper types for each store interface.
package sqlite

import (
	"context"
	"database/sql"
	"embed"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	_ "modernc.org/sqlite" // SQLite driver

	"github.com/custodia-labs/hubsearch/internal/adapters/driven/storage/sqlite/migrations"
	"github.com/custodia-labs/hubsearch/internal/core/domain"
	"github.com/custodia-labs/hubsearch/internal/core/ports/driven"
	"github.com/custodia-labs/hubsearch/internal/logger"
)

// Store is a unified SQLite-based storage that provides access to
// all record store interfaces through wrapper types.
type Store struct {
	db   *sql.DB
	path string
}

// NewStore creates a new SQLite store at the specified data directory.
// If dataDir is empty, defaults to ~/.hubsearch/data/records.db.
func NewStore(dataDir string) (*Store, error) {
	if dataDir == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("getting home directory: %w", err)
		}
		dataDir = filepath.Join(home, ".hubsearch", "data")
	}

	// Ensure directory exists
	if err := os.MkdirAll(dataDir, 0700); err != nil {
		return nil, fmt.Errorf("creating data directory: %w", err)
	}

	dbPath := filepath.Join(dataDir, "records.db")

	// Open database with WAL mode for better concurrency
	db, err := sql.Open("sqlite", dbPath+"?_pragma=journal_mode(WAL)&_pragma=busy_timeout(5000)")
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}

	// Enable foreign keys
	if _, err := db.Exec("PRAGMA foreign_keys = ON"); err != nil {
		db.Close()
		return nil, fmt.Errorf("enabling foreign keys: %w", err)
	}

	s := &Store{
		db:   db,
		path: dbPath,
	}

	// Run migrations
	if err := s.migrate(migrations.FS); err != nil {
		db.Close()
		return nil, fmt.Errorf("running migrations: %w", err)
	}

	return s, nil
}

// Close closes the database connection.
func (s *Store) Close() error {
	return s.db.Close()
}

// Path returns the database file path.
func (s *Store) Path() string {
	return s.path
}

// ToolStore returns a ToolStore interface backed by this store.
func (s *Store) ToolStore() driven.ToolStore {
	return &toolStore{store: s}
}

// ActivationStore returns an ActivationStore interface backed by this store.
func (s *Store) ActivationStore() driven.ActivationStore {
	return &activationStore{store: s}
}

// UserStore returns a UserStore interface backed by this store.
func (s *Store) UserStore() driven.UserStore {
	return &userStore{store: s}
}

// IdentityProvider returns an IdentityProvider backed by the users table.
func (s *Store) IdentityProvider() driven.IdentityProvider {
	return &identityProvider{store: s}
}

// migrate runs all pending migrations.
func (s *Store) migrate(fsys embed.FS) error {
	// Ensure schema_migrations table exists
	_, err := s.db.Exec(`
		CREATE TABLE IF NOT EXISTS schema_migrations (
			version INTEGER PRIMARY KEY,
			applied_at DATETIME DEFAULT CURRENT_TIMESTAMP
		)
	`)
	if err != nil {
		return fmt.Errorf("creating schema_migrations table: %w", err)
	}

	// Get current version
	var currentVersion int
	row := s.db.QueryRow("SELECT COALESCE(MAX(version), 0) FROM schema_migrations")
	if err := row.Scan(&currentVersion); err != nil {
		return fmt.Errorf("getting current version: %w", err)
	}

	// Find all up migrations
	entries, err := fs.ReadDir(fsys, ".")
	if err != nil {
		return fmt.Errorf("reading migrations directory: %w", err)
	}

	// Sort and run migrations
	var upFiles []string
	for _, entry := range entries {
		name := entry.Name()
		if strings.HasSuffix(name, ".up.sql") {
			upFiles = append(upFiles, name)
		}
	}
	sort.Strings(upFiles)

	for _, name := range upFiles {
		// Extract version number (e.g., "001_initial.up.sql" -> 1)
		var version int
		if _, err := fmt.Sscanf(name, "%d_", &version); err != nil {
			continue // Skip files that don't match pattern
		}

		if version <= currentVersion {
			continue // Already applied
		}

		// Read and execute migration
		content, err := fs.ReadFile(fsys, name)
		if err != nil {
			return fmt.Errorf("reading migration %s: %w", name, err)
		}

		if _, err := s.db.Exec(string(content)); err != nil {
			return fmt.Errorf("executing migration %s: %w", name, err)
		}

		if _, err := s.db.Exec(
			"INSERT INTO schema_migrations (version) VALUES (?)", version); err != nil {
			return fmt.Errorf("recording migration %s: %w", name, err)
		}
	}

	return nil
}

// SaveTool inserts or updates a marketplace tool row.
func (s *Store) SaveTool(ctx context.Context, tool driven.ToolRecord) error {
	if tool.ID == "" {
		return domain.ErrInvalidInput
	}

	_, err := s.db.ExecContext(ctx, `
		INSERT INTO tools (id, name, description, category, active)
		VALUES (?, ?, ?, ?, ?)
		ON CONFLICT(id) DO UPDATE SET
			name = excluded.name,
			description = excluded.description,
			category = excluded.category,
			active = excluded.active
	`, tool.ID, tool.Name, tool.Description, tool.Category, boolToInt(tool.Active))

	if err != nil {
		return fmt.Errorf("saving tool: %w", err)
	}
	return nil
}

// SaveUser inserts or updates a user account row.
func (s *Store) SaveUser(ctx context.Context, user driven.UserRecord, role domain.Role) error {
	if user.ID == "" {
		return domain.ErrInvalidInput
	}
	if role == "" {
		role = domain.RoleMember
	}
	if user.Status == "" {
		user.Status = "active"
	}

	_, err := s.db.ExecContext(ctx, `
		INSERT INTO users (id, name, email, plan, status, role)
		VALUES (?, ?, ?, ?, ?, ?)
		ON CONFLICT(id) DO UPDATE SET
			name = excluded.name,
			email = excluded.email,
			plan = excluded.plan,
			status = excluded.status,
			role = excluded.role
	`, user.ID, user.Name, user.Email, user.Plan, user.Status, string(role))

	if err != nil {
		return fmt.Errorf("saving user: %w", err)
	}
	return nil
}

// SaveActivation inserts or updates a tool activation row.
func (s *Store) SaveActivation(ctx context.Context, activation driven.ActivationRecord, toolID string) error {
	if activation.ID == "" || activation.UserID == "" || toolID == "" {
		return domain.ErrInvalidInput
	}
	if activation.Status == "" {
		activation.Status = "active"
	}
	if activation.ActivatedAt.IsZero() {
		activation.ActivatedAt = time.Now().UTC()
	}

	_, err := s.db.ExecContext(ctx, `
		INSERT INTO activations (id, user_id, tool_id, status, activated_at)
		VALUES (?, ?, ?, ?, ?)
		ON CONFLICT(id) DO UPDATE SET
			user_id = excluded.user_id,
			tool_id = excluded.tool_id,
			status = excluded.status,
			activated_at = excluded.activated_at
	`, activation.ID, activation.UserID, toolID, activation.Status,
		activation.ActivatedAt.UTC().Format(time.RFC3339))

	if err != nil {
		return fmt.Errorf("saving activation: %w", err)
	}
	return nil
}

// ==================== Tool Store ====================

// toolStore implements driven.ToolStore.
type toolStore struct {
	store *Store
}

var _ driven.ToolStore = (*toolStore)(nil)

// FindActive returns active tools matching term, with the substring
// match pushed down to SQLite.
func (s *toolStore) FindActive(ctx context.Context, term string, limit int) ([]driven.ToolRecord, error) {
	pattern := likePattern(term)
	rows, err := s.store.db.QueryContext(ctx, `
		SELECT id, name, description, category, active
		FROM tools
		WHERE active = 1
		  AND (LOWER(name) LIKE ? ESCAPE '\' OR LOWER(description) LIKE ? ESCAPE '\' OR LOWER(category) LIKE ? ESCAPE '\')
		ORDER BY name
		LIMIT ?
	`, pattern, pattern, pattern, limit)
	if err != nil {
		return nil, fmt.Errorf("querying tools: %w", err)
	}
	defer rows.Close()

	var tools []driven.ToolRecord //nolint:prealloc // size unknown from query
	for rows.Next() {
		var tool driven.ToolRecord
		var active int
		if err := rows.Scan(&tool.ID, &tool.Name, &tool.Description, &tool.Category, &active); err != nil {
			return nil, fmt.Errorf("scanning tool: %w", err)
		}
		tool.Active = active != 0
		tools = append(tools, tool)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating tools: %w", err)
	}

	return tools, nil
}

// ==================== Activation Store ====================

// activationStore implements driven.ActivationStore.
type activationStore struct {
	store *Store
}

var _ driven.ActivationStore = (*activationStore)(nil)

// ListActiveForUser returns the user's active activations joined to
// their tool rows, newest first.
func (s *activationStore) ListActiveForUser(
	ctx context.Context, userID string, limit int,
) ([]driven.ActivationRecord, error) {
	rows, err := s.store.db.QueryContext(ctx, `
		SELECT a.id, a.user_id, a.status, a.activated_at,
		       t.id, t.name, t.description, t.category, t.active
		FROM activations a
		JOIN tools t ON t.id = a.tool_id
		WHERE a.user_id = ? AND a.status = 'active'
		ORDER BY a.activated_at DESC
		LIMIT ?
	`, userID, limit)
	if err != nil {
		return nil, fmt.Errorf("querying activations: %w", err)
	}
	defer rows.Close()

	var activations []driven.ActivationRecord //nolint:prealloc // size unknown from query
	for rows.Next() {
		var activation driven.ActivationRecord
		var activatedAt string
		var active int
		if err := rows.Scan(&activation.ID, &activation.UserID, &activation.Status, &activatedAt,
			&activation.Tool.ID, &activation.Tool.Name, &activation.Tool.Description,
			&activation.Tool.Category, &active); err != nil {
			return nil, fmt.Errorf("scanning activation: %w", err)
		}
		activation.Tool.Active = active != 0

		parsed, err := time.Parse(time.RFC3339, activatedAt)
		if err != nil {
			// Keep the record; a bad timestamp is not worth losing a hit.
			logger.Warn("Activation %s has unparseable activated_at %q", activation.ID, activatedAt)
		} else {
			activation.ActivatedAt = parsed
		}
		activations = append(activations, activation)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating activations: %w", err)
	}

	return activations, nil
}

// ==================== User Store ====================

// userStore implements driven.UserStore.
type userStore struct {
	store *Store
}

var _ driven.UserStore = (*userStore)(nil)

// Find returns users matching term on name, email, or plan.
func (s *userStore) Find(ctx context.Context, term string, limit int) ([]driven.UserRecord, error) {
	pattern := likePattern(term)
	rows, err := s.store.db.QueryContext(ctx, `
		SELECT id, name, email, plan, status
		FROM users
		WHERE LOWER(name) LIKE ? ESCAPE '\' OR LOWER(email) LIKE ? ESCAPE '\' OR LOWER(plan) LIKE ? ESCAPE '\'
		ORDER BY name
		LIMIT ?
	`, pattern, pattern, pattern, limit)
	if err != nil {
		return nil, fmt.Errorf("querying users: %w", err)
	}
	defer rows.Close()

	var users []driven.UserRecord //nolint:prealloc // size unknown from query
	for rows.Next() {
		var user driven.UserRecord
		if err := rows.Scan(&user.ID, &user.Name, &user.Email, &user.Plan, &user.Status); err != nil {
			return nil, fmt.Errorf("scanning user: %w", err)
		}
		users = append(users, user)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating users: %w", err)
	}

	return users, nil
}

// ==================== Identity Provider ====================

// identityProvider implements driven.IdentityProvider from the role
// column of the users table.
type identityProvider struct {
	store *Store
}

var _ driven.IdentityProvider = (*identityProvider)(nil)

// Role returns the stored role for userID. Unknown users are treated
// as members so a missing row never widens visibility.
func (s *identityProvider) Role(ctx context.Context, userID string) (domain.Role, error) {
	var role string
	err := s.store.db.QueryRowContext(ctx,
		"SELECT role FROM users WHERE id = ?", userID).Scan(&role)
	if err == sql.ErrNoRows {
		return domain.RoleMember, nil
	}
	if err != nil {
		return "", fmt.Errorf("querying role: %w", err)
	}
	return domain.Role(role), nil
}

// ==================== Helper Functions ====================

// likeEscaper neutralises LIKE metacharacters so a term is matched
// literally. The queries declare ESCAPE '\'.
var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

// likePattern builds a case-insensitive LIKE pattern for term.
func likePattern(term string) string {
	return "%" + likeEscaper.Replace(strings.ToLower(strings.TrimSpace(term))) + "%"
}

func boolToInt(b bool) int {
	if b {
		return 1
	}
	return 0
}

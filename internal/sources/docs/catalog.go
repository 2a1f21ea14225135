package docs

// DefaultCatalog returns the documentation pages shipped with the
// dashboard.
func DefaultCatalog() []Entry {
	return []Entry{
		{
			ID:          "getting-started",
			Title:       "Getting Started",
			Description: "Set up your workspace and activate your first tool",
			Category:    "guides",
		},
		{
			ID:          "tool-activation",
			Title:       "Activating Tools",
			Description: "How tool activations work and how to manage them",
			Category:    "guides",
		},
		{
			ID:          "billing-plans",
			Title:       "Billing and Plans",
			Description: "Plan tiers, quotas, and upgrading your subscription",
			Category:    "billing",
		},
		{
			ID:          "api-keys",
			Title:       "API Keys",
			Description: "Creating and rotating API keys for integrations",
			Category:    "reference",
		},
		{
			ID:          "team-management",
			Title:       "Team Management",
			Description: "Inviting members and assigning roles",
			Category:    "guides",
		},
		{
			ID:          "search",
			Title:       "Searching the Dashboard",
			Description: "Keyboard shortcuts and filters for the search bar",
			Category:    "reference",
		},
	}
}

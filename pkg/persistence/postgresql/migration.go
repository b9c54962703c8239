package postgresql

// migrations returns the schema migrations keyed by version.
func migrations() map[int]string {
	return map[int]string{
		1: `
			CREATE TABLE IF NOT EXISTS sessions (
				id UUID PRIMARY KEY,
				user_id TEXT NOT NULL,
				workspace_id TEXT NOT NULL,
				template_id TEXT NOT NULL,
				pathway TEXT NOT NULL,
				current_phase_id TEXT NOT NULL DEFAULT '',
				phase_data JSONB NOT NULL DEFAULT '{}',
				analysis_results JSONB,
				completion_percentage INTEGER NOT NULL DEFAULT 0,
				status TEXT NOT NULL,
				initial_context JSONB,
				created_at TIMESTAMP WITH TIME ZONE NOT NULL,
				updated_at TIMESTAMP WITH TIME ZONE NOT NULL,
				completed_at TIMESTAMP WITH TIME ZONE
			);

			CREATE INDEX IF NOT EXISTS idx_sessions_user ON sessions (user_id, workspace_id);
			CREATE INDEX IF NOT EXISTS idx_sessions_status ON sessions (status);
		`,
		2: `
			CREATE TABLE IF NOT EXISTS priority_scorings (
				id UUID PRIMARY KEY,
				session_id UUID,
				impact_score INTEGER NOT NULL CHECK (impact_score BETWEEN 1 AND 10),
				effort_score INTEGER NOT NULL CHECK (effort_score BETWEEN 1 AND 10),
				calculated_priority NUMERIC(5,2) NOT NULL,
				priority_category TEXT NOT NULL,
				quadrant TEXT NOT NULL,
				scored_at TIMESTAMP WITH TIME ZONE NOT NULL
			);

			CREATE INDEX IF NOT EXISTS idx_scorings_session ON priority_scorings (session_id);
		`,
	}
}

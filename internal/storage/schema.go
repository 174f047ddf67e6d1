package storage

const schema = `
-- The 'active_columns' table stores the user's column selection per browser
-- kind ('cards' or 'notes'), one row per column in display order.
CREATE TABLE IF NOT EXISTS active_columns (
    kind TEXT NOT NULL,
    position INTEGER NOT NULL,
    column_key TEXT NOT NULL,

    PRIMARY KEY(kind, position)
);
`

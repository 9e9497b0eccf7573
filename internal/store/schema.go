package store

const schema = `
CREATE TABLE IF NOT EXISTS transactions (
    id INTEGER PRIMARY KEY AUTOINCREMENT
);

CREATE TABLE IF NOT EXISTS transaction_items (
    tx_id INTEGER NOT NULL,
    item INTEGER NOT NULL,
    PRIMARY KEY (tx_id, item),
    FOREIGN KEY (tx_id) REFERENCES transactions(id) ON DELETE CASCADE
);

CREATE TABLE IF NOT EXISTS import_meta (
    id INTEGER PRIMARY KEY CHECK (id = 1),
    source_path TEXT,
    imported_at TIMESTAMP NOT NULL,
    transaction_count INTEGER NOT NULL
);

CREATE INDEX IF NOT EXISTS idx_items_item ON transaction_items(item);
`

package store

const schema = `
CREATE TABLE IF NOT EXISTS basket_items (
    basket_id TEXT NOT NULL,
    item TEXT NOT NULL,
    PRIMARY KEY (basket_id, item)
);

CREATE TABLE IF NOT EXISTS dataset_info (
    id INTEGER PRIMARY KEY CHECK (id = 1),
    source TEXT,
    imported_at TIMESTAMP NOT NULL
);

CREATE INDEX IF NOT EXISTS idx_basket_items_item ON basket_items(item);
`

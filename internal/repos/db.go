package repos

import (
	_ "embed"
	"log"

	"github.com/jmoiron/sqlx"
	"gopkg.in/yaml.v3"
	_ "modernc.org/sqlite"
)

func OpenDB(dsn string) (*sqlx.DB, error) {
	db, err := sqlx.Open("sqlite", dsn)
	if err != nil {
		return nil, err
	}
	if err = db.Ping(); err != nil {
		return nil, err
	}

	if err := ensureSchema(db); err != nil {
		return nil, err
	}
	// Seed catalog and tiers if DB is empty
	if err := seedIfEmpty(db); err != nil {
		return nil, err
	}
	// Demo tracked order for the lookup page (idempotent; safe to run every start)
	if err := seedDemoOrder(db); err != nil {
		return nil, err
	}

	return db, nil
}

func ensureSchema(db *sqlx.DB) error {
	schema := `
PRAGMA foreign_keys = ON;

-- Catalog
CREATE TABLE IF NOT EXISTS products(
  id INTEGER PRIMARY KEY,
  name TEXT NOT NULL,
  brand TEXT NOT NULL,
  kind TEXT NOT NULL CHECK (kind IN ('original','replica')),
  price INTEGER NOT NULL CHECK (price >= 0),
  similarity INTEGER NOT NULL DEFAULT 100 CHECK (similarity BETWEEN 0 AND 100),
  image TEXT,
  created_at TEXT DEFAULT CURRENT_TIMESTAMP
);
CREATE INDEX IF NOT EXISTS idx_products_kind ON products(kind);
CREATE INDEX IF NOT EXISTS idx_products_name ON products(LOWER(name));

-- Loyalty tiers
CREATE TABLE IF NOT EXISTS loyalty_tiers(
  name TEXT PRIMARY KEY,
  threshold INTEGER NOT NULL CHECK (threshold >= 0),
  discount INTEGER NOT NULL CHECK (discount BETWEEN 0 AND 100)
);

-- Carts
CREATE TABLE IF NOT EXISTS carts(
  id TEXT PRIMARY KEY,
  session_id TEXT UNIQUE NOT NULL,
  updated_at TEXT
);

-- One line per (product, size); the key makes merged lines structural.
CREATE TABLE IF NOT EXISTS cart_items(
  cart_id    TEXT NOT NULL REFERENCES carts(id) ON DELETE CASCADE,
  product_id INTEGER NOT NULL REFERENCES products(id) ON DELETE RESTRICT,
  size INTEGER NOT NULL,
  qty INTEGER NOT NULL CHECK (qty >= 1),
  price_at_add INTEGER NOT NULL,
  created_at TEXT,
  updated_at TEXT,
  PRIMARY KEY (cart_id, product_id, size)
);

-- Orders
CREATE TABLE IF NOT EXISTS orders(
  id TEXT PRIMARY KEY,
  session_id TEXT,
  customer_name TEXT,
  customer_phone TEXT,
  customer_email TEXT,
  city TEXT,
  address TEXT,
  delivery TEXT,                 -- courier|pickup|express
  payment TEXT,                  -- card|cash|instant
  items_total INTEGER NOT NULL,
  delivery_fee INTEGER NOT NULL DEFAULT 0,
  total INTEGER NOT NULL,
  status TEXT NOT NULL DEFAULT 'processing',
  tracking_number TEXT,
  estimated_delivery TEXT,
  created_at TEXT DEFAULT CURRENT_TIMESTAMP
);
CREATE INDEX IF NOT EXISTS idx_orders_session ON orders(session_id);
CREATE INDEX IF NOT EXISTS idx_orders_tracking ON orders(tracking_number);

CREATE TABLE IF NOT EXISTS order_items(
  order_id  TEXT NOT NULL REFERENCES orders(id) ON DELETE CASCADE,
  product_id INTEGER NOT NULL REFERENCES products(id),
  size INTEGER NOT NULL,
  qty INTEGER NOT NULL,
  price INTEGER NOT NULL,
  PRIMARY KEY (order_id, product_id, size)
);

-- Favorites
CREATE TABLE IF NOT EXISTS favorites(
  id TEXT PRIMARY KEY,
  session_id TEXT UNIQUE NOT NULL,
  updated_at TEXT
);

CREATE TABLE IF NOT EXISTS favorite_items(
  favorites_id TEXT NOT NULL REFERENCES favorites(id) ON DELETE CASCADE,
  product_id   INTEGER NOT NULL REFERENCES products(id) ON DELETE RESTRICT,
  created_at   TEXT,
  PRIMARY KEY (favorites_id, product_id)
);
`
	_, err := db.Exec(schema)
	return err
}

//go:embed seed.yaml
var seedYAML []byte

type seedFile struct {
	Products []struct {
		ID         int64  `yaml:"id"`
		Name       string `yaml:"name"`
		Brand      string `yaml:"brand"`
		Kind       string `yaml:"kind"`
		Price      int64  `yaml:"price"`
		Similarity int    `yaml:"similarity"`
		Image      string `yaml:"image"`
	} `yaml:"products"`
	Tiers []struct {
		Name      string `yaml:"name"`
		Threshold int64  `yaml:"threshold"`
		Discount  int    `yaml:"discount"`
	} `yaml:"tiers"`
}

func seedIfEmpty(db *sqlx.DB) error {
	var n int
	if err := db.Get(&n, `SELECT COUNT(*) FROM products`); err != nil {
		return err
	}
	if n > 0 {
		return nil
	}

	var seed seedFile
	if err := yaml.Unmarshal(seedYAML, &seed); err != nil {
		return err
	}

	log.Println("[seed] inserting demo catalog and loyalty tiers")

	tx := db.MustBegin()
	defer func() { _ = tx.Rollback() }()

	for _, p := range seed.Products {
		if _, err := tx.Exec(`
			INSERT INTO products(id,name,brand,kind,price,similarity,image)
			VALUES(?,?,?,?,?,?,?)
		`, p.ID, p.Name, p.Brand, p.Kind, p.Price, p.Similarity, p.Image); err != nil {
			return err
		}
	}
	for _, t := range seed.Tiers {
		if _, err := tx.Exec(`
			INSERT INTO loyalty_tiers(name,threshold,discount) VALUES(?,?,?)
			ON CONFLICT(name) DO UPDATE SET threshold=excluded.threshold, discount=excluded.discount
		`, t.Name, t.Threshold, t.Discount); err != nil {
			return err
		}
	}

	return tx.Commit()
}

// seedDemoOrder inserts the canned tracked order the lookup page demos with.
func seedDemoOrder(db *sqlx.DB) error {
	tx := db.MustBegin()
	defer func() { _ = tx.Rollback() }()

	_, _ = tx.Exec(`
		INSERT INTO orders(
			id, session_id, customer_name, customer_phone, customer_email,
			city, address, delivery, payment,
			items_total, delivery_fee, total, status,
			tracking_number, estimated_delivery, created_at
		)
		SELECT
			'ORD-2024-001234', '', 'Ivan Ivanov', '+7 (999) 123-45-67', 'ivan@example.com',
			'Moscow', 'Lenina st. 1, apt. 1', 'courier', 'card',
			45000, 0, 45000, 'in_transit',
			'TR123456789RU', '2024-11-08', '2024-11-05'
		WHERE NOT EXISTS (SELECT 1 FROM orders WHERE id='ORD-2024-001234')
	`)
	_, _ = tx.Exec(`
		INSERT INTO order_items(order_id, product_id, size, qty, price)
		SELECT 'ORD-2024-001234', 1, 42, 1, 45000
		WHERE NOT EXISTS (SELECT 1 FROM order_items WHERE order_id='ORD-2024-001234')
	`)

	return tx.Commit()
}

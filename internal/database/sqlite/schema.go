package sqlite

// schemaStatements mirrors the Postgres schema. The product last-modified
// refresh is an AFTER UPDATE trigger; recursive triggers are off by default
// so the inner UPDATE does not re-fire it.
var schemaStatements = []string{
	`CREATE TABLE IF NOT EXISTS categories (
		category_id INTEGER PRIMARY KEY AUTOINCREMENT,
		name TEXT NOT NULL,
		description TEXT
	)`,
	`CREATE TABLE IF NOT EXISTS customers (
		customer_id INTEGER PRIMARY KEY AUTOINCREMENT,
		name TEXT NOT NULL,
		email TEXT NOT NULL UNIQUE,
		phone TEXT,
		signup_date TIMESTAMP NOT NULL,
		is_deleted INTEGER NOT NULL DEFAULT 0
	)`,
	`CREATE TABLE IF NOT EXISTS products (
		product_id INTEGER PRIMARY KEY AUTOINCREMENT,
		name TEXT NOT NULL,
		description TEXT,
		price NUMERIC NOT NULL CHECK (price > 0),
		stock_quantity INTEGER NOT NULL DEFAULT 0 CHECK (stock_quantity >= 0),
		category_id INTEGER NOT NULL REFERENCES categories(category_id),
		updated_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP
	)`,
	`CREATE TABLE IF NOT EXISTS orders (
		order_id INTEGER PRIMARY KEY AUTOINCREMENT,
		customer_id INTEGER NOT NULL REFERENCES customers(customer_id),
		order_date TIMESTAMP NOT NULL,
		total_amount NUMERIC NOT NULL DEFAULT 0
	)`,
	`CREATE TABLE IF NOT EXISTS order_items (
		order_item_id INTEGER PRIMARY KEY AUTOINCREMENT,
		order_id INTEGER NOT NULL REFERENCES orders(order_id) ON DELETE CASCADE,
		product_id INTEGER NOT NULL REFERENCES products(product_id),
		quantity INTEGER NOT NULL CHECK (quantity > 0),
		unit_price NUMERIC NOT NULL
	)`,
	`CREATE TRIGGER IF NOT EXISTS products_refresh_updated_at
		AFTER UPDATE OF name, description, price, stock_quantity, category_id ON products
		FOR EACH ROW
	BEGIN
		UPDATE products SET updated_at = CURRENT_TIMESTAMP WHERE product_id = NEW.product_id;
	END`,
}

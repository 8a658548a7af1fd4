package postgres

// schemaStatements creates the five generated tables plus the product
// last-modified trigger. The trigger is not used during generation; it keeps
// later product mutations visible to change-capture consumers.
var schemaStatements = []string{
	`CREATE TABLE IF NOT EXISTS categories (
		category_id SERIAL PRIMARY KEY,
		name VARCHAR(100) NOT NULL,
		description TEXT
	)`,
	`CREATE TABLE IF NOT EXISTS customers (
		customer_id SERIAL PRIMARY KEY,
		name VARCHAR(100) NOT NULL,
		email VARCHAR(150) NOT NULL UNIQUE,
		phone VARCHAR(20),
		signup_date TIMESTAMP NOT NULL,
		is_deleted BOOLEAN NOT NULL DEFAULT FALSE
	)`,
	`CREATE TABLE IF NOT EXISTS products (
		product_id SERIAL PRIMARY KEY,
		name VARCHAR(150) NOT NULL,
		description TEXT,
		price NUMERIC(10,2) NOT NULL CHECK (price > 0),
		stock_quantity INTEGER NOT NULL DEFAULT 0 CHECK (stock_quantity >= 0),
		category_id INTEGER NOT NULL REFERENCES categories(category_id),
		updated_at TIMESTAMP NOT NULL DEFAULT NOW()
	)`,
	`CREATE TABLE IF NOT EXISTS orders (
		order_id SERIAL PRIMARY KEY,
		customer_id INTEGER NOT NULL REFERENCES customers(customer_id),
		order_date TIMESTAMP NOT NULL,
		total_amount NUMERIC(12,2) NOT NULL DEFAULT 0
	)`,
	`CREATE TABLE IF NOT EXISTS order_items (
		order_item_id SERIAL PRIMARY KEY,
		order_id INTEGER NOT NULL REFERENCES orders(order_id) ON DELETE CASCADE,
		product_id INTEGER NOT NULL REFERENCES products(product_id),
		quantity INTEGER NOT NULL CHECK (quantity > 0),
		unit_price NUMERIC(10,2) NOT NULL
	)`,
	`CREATE OR REPLACE FUNCTION refresh_product_updated_at() RETURNS trigger AS $$
	BEGIN
		NEW.updated_at = NOW();
		RETURN NEW;
	END;
	$$ LANGUAGE plpgsql`,
	`DROP TRIGGER IF EXISTS products_refresh_updated_at ON products`,
	`CREATE TRIGGER products_refresh_updated_at
		BEFORE UPDATE ON products
		FOR EACH ROW EXECUTE FUNCTION refresh_product_updated_at()`,
}

package mysql

// schemaStatements mirrors the Postgres schema. The product last-modified
// refresh uses ON UPDATE CURRENT_TIMESTAMP instead of a trigger.
var schemaStatements = []string{
	`CREATE TABLE IF NOT EXISTS categories (
		category_id INT AUTO_INCREMENT PRIMARY KEY,
		name VARCHAR(100) NOT NULL,
		description TEXT
	) ENGINE=InnoDB`,
	`CREATE TABLE IF NOT EXISTS customers (
		customer_id INT AUTO_INCREMENT PRIMARY KEY,
		name VARCHAR(100) NOT NULL,
		email VARCHAR(150) NOT NULL UNIQUE,
		phone VARCHAR(20),
		signup_date DATETIME NOT NULL,
		is_deleted BOOLEAN NOT NULL DEFAULT FALSE
	) ENGINE=InnoDB`,
	`CREATE TABLE IF NOT EXISTS products (
		product_id INT AUTO_INCREMENT PRIMARY KEY,
		name VARCHAR(150) NOT NULL,
		description TEXT,
		price DECIMAL(10,2) NOT NULL,
		stock_quantity INT NOT NULL DEFAULT 0,
		category_id INT NOT NULL,
		updated_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP ON UPDATE CURRENT_TIMESTAMP,
		FOREIGN KEY (category_id) REFERENCES categories(category_id)
	) ENGINE=InnoDB`,
	`CREATE TABLE IF NOT EXISTS orders (
		order_id INT AUTO_INCREMENT PRIMARY KEY,
		customer_id INT NOT NULL,
		order_date DATETIME NOT NULL,
		total_amount DECIMAL(12,2) NOT NULL DEFAULT 0,
		FOREIGN KEY (customer_id) REFERENCES customers(customer_id)
	) ENGINE=InnoDB`,
	`CREATE TABLE IF NOT EXISTS order_items (
		order_item_id INT AUTO_INCREMENT PRIMARY KEY,
		order_id INT NOT NULL,
		product_id INT NOT NULL,
		quantity INT NOT NULL,
		unit_price DECIMAL(10,2) NOT NULL,
		FOREIGN KEY (order_id) REFERENCES orders(order_id) ON DELETE CASCADE,
		FOREIGN KEY (product_id) REFERENCES products(product_id)
	) ENGINE=InnoDB`,
}

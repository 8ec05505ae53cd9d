package store

const (
	createUser = `INSERT INTO users (email, password_hash, role)
    VALUES ($1, $2, $3)
    RETURNING user_id, email, password_hash, role, created_at;`

	findUserByEmail = `SELECT user_id, email, password_hash, role, created_at
    FROM users
    WHERE email = $1;`

	listProducts = `SELECT id, name, description, price, images, created_at
		FROM products
		ORDER BY created_at DESC;`

	createProduct = `INSERT INTO products (name, description, price, images)
		VALUES ($1, $2, $3, $4)
		RETURNING id, name, description, price, images, created_at;`

	deleteProduct = `DELETE FROM products WHERE id = $1;`

	listCreations = `SELECT id, name, description, images, created_at
		FROM creations
		ORDER BY created_at DESC;`

	createCreation = `INSERT INTO creations (name, description, images)
		VALUES ($1, $2, $3)
		RETURNING id, name, description, images, created_at;`

	deleteCreation = `DELETE FROM creations WHERE id = $1;`

	listTutorials = `SELECT id, title, description, video_url, thumbnail, created_at
		FROM tutorials
		ORDER BY created_at DESC;`

	createTutorial = `INSERT INTO tutorials (title, description, video_url, thumbnail)
		VALUES ($1, $2, $3, $4)
		RETURNING id, title, description, video_url, thumbnail, created_at;`

	deleteTutorial = `DELETE FROM tutorials WHERE id = $1;`
)

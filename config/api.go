package config

// GetAuthSkipperPaths returns a list of paths to skip session authentication for
func GetAuthSkipperPaths() []string {
	// Public API paths (catalog reads and auth itself need no session)
	return []string{
		"/api/products",
		"/api/products/:id",
		"/api/products/search",
		"/api/categories",
		"/api/consumption",
		"/api/consumption/:productId",
		"/api/calc",
		"/api/cart",
		"/api/cart/items/:id",
		"/api/orders",
		"/api/auth/login",
		"/api/auth/register",
		"/api/auth/me",
		"/graphql",
	}
}

package config

// Default storage location, relative to the working directory
const (
	DefaultDataDir      = "data"
	DefaultDatabaseFile = "ebookstore.db"
)

package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLoad_Defaults(t *testing.T) {
	cfg := Load()
	assert.Equal(t, "3000", cfg.Port)
	assert.Equal(t, "data.json", cfg.DBFile)
	assert.Empty(t, cfg.MongoURI)
	assert.Contains(t, cfg.CORSOrigin, "http://localhost:8080")
}

func TestLoad_Overrides(t *testing.T) {
	t.Setenv("PORT", "9000")
	t.Setenv("DB_FILE", "/var/lib/shuttle/data.json")
	t.Setenv("MONGO_URI", "mongodb://localhost:27017")

	cfg := Load()
	assert.Equal(t, "9000", cfg.Port)
	assert.Equal(t, "/var/lib/shuttle/data.json", cfg.DBFile)
	assert.Equal(t, "mongodb://localhost:27017", cfg.MongoURI)
}

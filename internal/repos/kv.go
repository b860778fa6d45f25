package repos

import (
	"database/sql"
	"encoding/json"

	"github.com/jmoiron/sqlx"
)

// Fixed storage keys. One key holds one whole collection as a JSON document,
// mirroring how the storefront has always laid out its saved state.
const (
	KeyProducts   = "jeancro-products"
	KeyCategories = "jeancro-categories"
	KeyFAQs       = "jeancro-faqs"
	KeyAds        = "jeancro-ads"
	KeySettings   = "jeancro-global-settings"
)

// KVRepo is a pure key→JSON get/set service over the kv table.
type KVRepo struct{ db *sqlx.DB }

func NewKVRepo(db *sqlx.DB) *KVRepo { return &KVRepo{db: db} }

// GetJSON unmarshals the value stored under key into v. The boolean reports
// whether the key existed; a missing key is not an error.
func (r *KVRepo) GetJSON(key string, v any) (bool, error) {
	var raw string
	err := r.db.Get(&raw, `SELECT value FROM kv WHERE key = ?`, key)
	if err == sql.ErrNoRows {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	if err := json.Unmarshal([]byte(raw), v); err != nil {
		return false, err
	}
	return true, nil
}

// SetJSON stores v as JSON under key, replacing any previous value.
func (r *KVRepo) SetJSON(key string, v any) error {
	raw, err := json.Marshal(v)
	if err != nil {
		return err
	}
	_, err = r.db.Exec(`
  INSERT INTO kv(key, value, updated_at) VALUES(?, ?, CURRENT_TIMESTAMP)
  ON CONFLICT(key) DO UPDATE SET value = excluded.value, updated_at = CURRENT_TIMESTAMP
`, key, string(raw))
	return err
}

func (r *KVRepo) Delete(key string) error {
	_, err := r.db.Exec(`DELETE FROM kv WHERE key = ?`, key)
	return err
}

func (r *KVRepo) Exists(key string) (bool, error) {
	var n int
	if err := r.db.Get(&n, `SELECT COUNT(*) FROM kv WHERE key = ?`, key); err != nil {
		return false, err
	}
	return n > 0, nil
}

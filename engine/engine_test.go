package engine

import "testing"

// TestOpenInMemory verifies that we can open an in-memory SQLite database
// using the modernc.org/sqlite driver and store a BLOB, the shape the
// embedding store relies on.
func TestOpenInMemory(t *testing.T) {
	db, err := Open(":memory:")
	if err != nil {
		t.Fatalf("Open(:memory:) failed: %v", err)
	}
	defer db.Close()

	if _, err := db.Exec("CREATE TABLE t(token TEXT, vector BLOB)"); err != nil {
		t.Fatalf("CREATE TABLE failed: %v", err)
	}
	if _, err := db.Exec("INSERT INTO t(token, vector) VALUES (?, ?)", "dog", []byte{0, 0, 128, 63}); err != nil {
		t.Fatalf("INSERT failed: %v", err)
	}

	var blob []byte
	if err := db.QueryRow("SELECT vector FROM t WHERE token = ?", "dog").Scan(&blob); err != nil {
		t.Fatalf("SELECT failed: %v", err)
	}
	if len(blob) != 4 {
		t.Fatalf("blob length = %d, want 4", len(blob))
	}
}

package bigverify

import "testing"

func TestUintIdentitiesHold(t *testing.T) {
	pool := NewPool(4)
	failures := pool.Run(1, 2, 2000, 256, UintChecks)
	for _, f := range failures {
		t.Errorf("%s: %v", f.Check, f.Err)
	}
	checked, failed := pool.Stats()
	if checked != 2000 {
		t.Errorf("checked = %d, want 2000", checked)
	}
	if failed != int64(len(failures)) {
		t.Errorf("failed counter = %d, want %d", failed, len(failures))
	}
}

func TestIntIdentitiesHold(t *testing.T) {
	pool := NewPool(4)
	failures := pool.Run(3, 4, 2000, 256, IntChecks)
	for _, f := range failures {
		t.Errorf("%s: %v", f.Check, f.Err)
	}
}

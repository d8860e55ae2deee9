package state

import "testing"

func TestMemoryManagerStates(t *testing.T) {
	m := NewMemoryManager()

	if got := m.GetState(1); got != StateIdle {
		t.Fatalf("fresh user state = %q, want idle", got)
	}
	if m.InProgress(1) {
		t.Fatal("fresh user should not be in progress")
	}

	m.SetState(1, State("step_one"))
	if got := m.GetState(1); got != State("step_one") {
		t.Fatalf("state = %q, want step_one", got)
	}
	if !m.InProgress(1) {
		t.Fatal("user with state should be in progress")
	}

	m.ClearState(1)
	if got := m.GetState(1); got != StateIdle {
		t.Fatalf("cleared state = %q, want idle", got)
	}
}

func TestMemoryManagerTempData(t *testing.T) {
	m := NewMemoryManager()

	m.SetTemp(1, "key", int64(42))
	v, ok := m.GetTempInt64(1, "key")
	if !ok || v != 42 {
		t.Fatalf("GetTempInt64 = (%d, %v), want (42, true)", v, ok)
	}

	m.SetTemp(1, "other", "text")
	if _, ok := m.GetTempInt64(1, "other"); ok {
		t.Fatal("GetTempInt64 should reject non-int64 values")
	}

	m.ClearTemp(1, "key")
	if _, ok := m.GetTemp(1, "key"); ok {
		t.Fatal("cleared temp key should be gone")
	}
}

func TestMemoryManagerClearRemovesSession(t *testing.T) {
	m := NewMemoryManager()

	m.SetState(1, State("step_one"))
	m.SetTemp(1, "key", "value")
	m.Clear(1)

	if m.InProgress(1) {
		t.Fatal("cleared user should not be in progress")
	}
	if _, ok := m.GetTemp(1, "key"); ok {
		t.Fatal("cleared user temp data should be gone")
	}
}

func TestMemoryManagerIsolatesUsers(t *testing.T) {
	m := NewMemoryManager()

	m.SetState(1, State("step_one"))
	if got := m.GetState(2); got != StateIdle {
		t.Fatalf("user 2 state = %q, want idle", got)
	}
}

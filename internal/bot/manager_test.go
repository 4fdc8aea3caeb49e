package bot

import "testing"

func TestManagerSessionLifecycle(t *testing.T) {
	m := NewManager(&stubCollaborator{})

	if _, ok := m.Peek("u1"); ok {
		t.Fatal("Peek created a session")
	}

	first := m.Session("u1", "Asha")
	if first == nil {
		t.Fatal("Session returned nil")
	}
	if got := m.Session("u1", "SomeoneElse"); got != first {
		t.Fatal("second Session call created a new engine")
	}
	if first.Request().UserName != "Asha" {
		t.Fatalf("userName = %q, want the name from first contact", first.Request().UserName)
	}

	if m.Session("u2", "Ravi") == first {
		t.Fatal("sessions shared across users")
	}

	m.Drop("u1")
	if _, ok := m.Peek("u1"); ok {
		t.Fatal("session survived Drop")
	}
	if fresh := m.Session("u1", "Asha"); fresh == first {
		t.Fatal("Drop did not discard the engine")
	}
	m.Drop("missing") // no-op
}

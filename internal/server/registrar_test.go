package server

import (
	"context"
	"net/http"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/pixil98/go-testutil"
)

func TestRegistrar_Tick(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	if err := f.registrar.Tick(ctx); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	testutil.AssertEqual(t, "not registered", f.registrar.Registered(), false)

	f.registrar.autoURL = f.hubURL
	f.hub.set("/register", http.StatusServiceUnavailable, `{"error": "starting up"}`)
	if err := f.registrar.Tick(ctx); err != nil {
		t.Fatalf("failed registration should not stop the driver: %v", err)
	}
	testutil.AssertEqual(t, "still not registered", f.registrar.Registered(), false)

	f.hub.set("/register", http.StatusOK, `{"id": 7, "secret": "`+testSecret+`", "items": [1, 2, 3, 4, 5, 6]}`)
	if err := f.registrar.Tick(ctx); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	testutil.AssertEqual(t, "registered", f.registrar.Registered(), true)

	if err := f.registrar.Tick(ctx); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if diff := cmp.Diff([]string{"/register", "/register"}, f.hub.paths()); diff != "" {
		t.Errorf("hub calls mismatch (-exp +got):\n%s", diff)
	}
}

func TestRegistrar_AdmitHoldsOffReRegistration(t *testing.T) {
	f := newFixture(t)
	f.register(t)
	f.arrive(t, "alice", "login", "")

	_, ok := f.registrar.Admit("wrong")
	testutil.AssertEqual(t, "bad secret", ok, false)

	release, ok := f.registrar.Admit(testSecret)
	testutil.AssertEqual(t, "admitted", ok, true)

	f.hub.set("/register", http.StatusOK, `{"id": 8, "secret": "n3w", "items": [11, 12, 13, 14, 15, 16]}`)
	done := make(chan error, 1)
	go func() {
		_, err := f.registrar.Register(context.Background(), f.hubURL)
		done <- err
	}()

	deadline := time.Now().Add(2 * time.Second)
	for len(f.hub.paths()) < 2 {
		if time.Now().After(deadline) {
			t.Fatal("hub never saw the second registration")
		}
		time.Sleep(5 * time.Millisecond)
	}

	select {
	case err := <-done:
		t.Fatalf("registration finished while a request was admitted: %v", err)
	case <-time.After(50 * time.Millisecond):
	}
	testutil.AssertEqual(t, "old secret still valid", f.client.Verify(testSecret), true)
	testutil.AssertEqual(t, "player kept", f.store.Len(), 1)

	release()
	if err := <-done; err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	testutil.AssertEqual(t, "new secret", f.client.Verify("n3w"), true)
	testutil.AssertEqual(t, "old secret", f.client.Verify(testSecret), false)
	testutil.AssertEqual(t, "players cleared", f.store.Len(), 0)
	first := f.store.World().Catalog.Items()[0]
	testutil.AssertEqual(t, "new ids", first.ID.String(), "11")
}

func TestRegistrar_BadItemListKeepsCredentials(t *testing.T) {
	f := newFixture(t)
	f.register(t)

	f.hub.set("/register", http.StatusOK, `{"id": 8, "secret": "n3w", "items": [1, 1, 2, 3, 4, 5]}`)
	_, err := f.registrar.Register(context.Background(), f.hubURL)
	if err == nil {
		t.Fatal("expected error")
	}
	testutil.AssertEqual(t, "old secret kept", f.client.Verify(testSecret), true)
	testutil.AssertEqual(t, "new secret unused", f.client.Verify("n3w"), false)
}

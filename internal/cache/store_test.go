package cache

import (
	"sync"
	"testing"
	"time"

	"github.com/bassista/go_unis/internal/university"
)

func strPtr(s string) *string {
	return &s
}

func createTestUniversities() []university.University {
	return []university.University{
		{ID: "u1", AlphaTwoCode: strPtr("AE"), Country: "United Arab Emirates", Domains: []string{"a.ac.ae"}, Name: "Alpha", WebPages: []string{"http://a.ac.ae"}},
		{ID: "u2", Country: "United Arab Emirates", Domains: []string{}, Name: "Beta", StateProvince: strPtr("Dubai")},
	}
}

func newTestStore(t *testing.T) *Store {
	t.Helper()
	s := NewStore()
	s.now = func() time.Time { return time.UnixMilli(1000) }
	return s
}

func TestNewStore(t *testing.T) {
	store := NewStore()

	snap, err := store.Snapshot()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if snap.Universities == nil || len(snap.Universities) != 0 {
		t.Errorf("expected an empty non-nil list, got %#v", snap.Universities)
	}
	if store.GetLastUpdate() != 0 {
		t.Errorf("expected lastUpdate 0, got %d", store.GetLastUpdate())
	}
}

func TestStore_Replace(t *testing.T) {
	store := newTestStore(t)
	store.Fail("boom")

	if err := store.Replace(createTestUniversities()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	snap, _ := store.Snapshot()
	if len(snap.Universities) != 2 {
		t.Fatalf("expected 2 universities, got %d", len(snap.Universities))
	}
	if snap.Error != "" {
		t.Errorf("expected error to be cleared, got %q", snap.Error)
	}
	if snap.LastUpdate != 1000 {
		t.Errorf("expected lastUpdate 1000, got %d", snap.LastUpdate)
	}
}

func TestStore_Replace_Nil(t *testing.T) {
	store := newTestStore(t)
	if err := store.Replace(nil); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	snap, _ := store.Snapshot()
	if snap.Universities == nil {
		t.Error("expected an empty non-nil list")
	}
}

func TestStore_Snapshot_IsDeepCopy(t *testing.T) {
	store := newTestStore(t)
	input := createTestUniversities()
	_ = store.Replace(input)

	// Mutating the input after Replace must not leak in.
	input[0].Domains[0] = "mutated"

	snap, _ := store.Snapshot()
	if snap.Universities[0].Domains[0] != "a.ac.ae" {
		t.Errorf("store shares slices with the caller: %v", snap.Universities[0].Domains)
	}

	snap.Universities[0].Name = "changed"
	*snap.Universities[0].AlphaTwoCode = "XX"

	again, _ := store.Snapshot()
	if again.Universities[0].Name != "Alpha" || *again.Universities[0].AlphaTwoCode != "AE" {
		t.Error("snapshot shares memory with the store")
	}
}

func TestStore_Snapshot_PreservesAbsentAndEmptyLists(t *testing.T) {
	store := newTestStore(t)
	unis := createTestUniversities()
	unis[1].WebPages = nil
	_ = store.Replace(unis)

	snap, _ := store.Snapshot()
	if snap.Universities[1].WebPages != nil {
		t.Errorf("expected absent web pages, got %#v", snap.Universities[1].WebPages)
	}
	if snap.Universities[1].Domains == nil {
		t.Error("expected empty domains to stay non-nil")
	}
}

func TestStore_Fail(t *testing.T) {
	store := newTestStore(t)
	_ = store.Replace(createTestUniversities())
	store.Select("u1")

	store.Fail("No Internet connection, please try again later")

	snap, _ := store.Snapshot()
	if len(snap.Universities) != 0 {
		t.Errorf("expected list to be cleared, got %d", len(snap.Universities))
	}
	if snap.Error != "No Internet connection, please try again later" {
		t.Errorf("unexpected error %q", snap.Error)
	}
	if snap.Selected != nil {
		t.Error("expected selection to be cleared")
	}
	if snap.LastUpdate != 1000 {
		t.Errorf("expected lastUpdate to be kept, got %d", snap.LastUpdate)
	}
}

func TestStore_SelectAndFind(t *testing.T) {
	store := newTestStore(t)
	_ = store.Replace(createTestUniversities())

	if _, ok := store.Select("missing"); ok {
		t.Error("expected select of unknown id to fail")
	}

	u, ok := store.Select("u2")
	if !ok || u.Name != "Beta" {
		t.Fatalf("expected Beta, got %v %v", u, ok)
	}
	snap, _ := store.Snapshot()
	if snap.Selected == nil || snap.Selected.ID != "u2" {
		t.Errorf("expected u2 selected, got %v", snap.Selected)
	}

	found, ok := store.Find("u1")
	if !ok || found.Name != "Alpha" {
		t.Errorf("expected Alpha, got %v %v", found, ok)
	}
	found.Domains[0] = "mutated"
	again, _ := store.Find("u1")
	if again.Domains[0] != "a.ac.ae" {
		t.Error("Find returned shared memory")
	}

	store.ClearSelection()
	snap, _ = store.Snapshot()
	if snap.Selected != nil {
		t.Error("expected selection cleared")
	}
}

func TestStore_Replace_DropsStaleSelection(t *testing.T) {
	store := newTestStore(t)
	_ = store.Replace(createTestUniversities())
	store.Select("u1")

	_ = store.Replace(createTestUniversities()[1:])

	snap, _ := store.Snapshot()
	if snap.Selected != nil {
		t.Errorf("expected stale selection to be dropped, got %v", snap.Selected)
	}
}

func TestStore_Replace_KeepsListedSelection(t *testing.T) {
	store := newTestStore(t)
	_ = store.Replace(createTestUniversities())
	store.Select("u2")

	updated := createTestUniversities()
	updated[1].Name = "Beta Renamed"
	_ = store.Replace(updated)

	snap, _ := store.Snapshot()
	if snap.Selected == nil || snap.Selected.Name != "Beta Renamed" {
		t.Errorf("expected refreshed selection, got %v", snap.Selected)
	}
}

func TestStore_Concurrency(t *testing.T) {
	store := NewStore()

	var wg sync.WaitGroup
	numGoroutines := 100

	for i := 0; i < numGoroutines; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, _ = store.Snapshot()
			_, _ = store.Find("u1")
			_ = store.GetLastUpdate()
		}()
	}

	for i := 0; i < numGoroutines; i++ {
		wg.Add(1)
		go func(idx int) {
			defer wg.Done()
			switch idx % 3 {
			case 0:
				_ = store.Replace(createTestUniversities())
			case 1:
				store.Fail("boom")
			default:
				store.Select("u1")
			}
		}(i)
	}

	wg.Wait()
}

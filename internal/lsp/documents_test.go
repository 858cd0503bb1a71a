package lsp

import (
	"testing"
)

// TestDocumentStore_Update verifies that the document store properly updates content
func TestDocumentStore_Update(t *testing.T) {
	store := NewDocumentStore()

	// Open a document
	store.Open("test://file.ankh", "initial content")

	content, ok := store.Get("test://file.ankh")
	if !ok {
		t.Fatal("Document not found after opening")
	}
	if content != "initial content" {
		t.Errorf("Expected 'initial content', got '%s'", content)
	}

	// Update the document
	store.Update("test://file.ankh", "updated content")

	content, ok = store.Get("test://file.ankh")
	if !ok {
		t.Fatal("Document not found after update")
	}
	if content != "updated content" {
		t.Errorf("Expected 'updated content', got '%s'", content)
	}
}

// TestDocumentStore_MultipleUpdates verifies multiple updates work correctly
func TestDocumentStore_MultipleUpdates(t *testing.T) {
	store := NewDocumentStore()
	store.Open("test://file.ankh", "version 1")

	updates := []string{
		"version 2",
		"version 3",
		"version 4",
	}

	for i, update := range updates {
		store.Update("test://file.ankh", update)
		content, ok := store.Get("test://file.ankh")
		if !ok {
			t.Fatalf("Document not found after update %d", i+2)
		}
		if content != update {
			t.Errorf("Update %d: expected '%s', got '%s'", i+2, update, content)
		}
	}
}

// TestDocumentStore_ConcurrentAccess verifies thread safety
func TestDocumentStore_ConcurrentAccess(t *testing.T) {
	store := NewDocumentStore()
	store.Open("test://file.ankh", "initial")

	// Run concurrent updates
	done := make(chan bool, 10)
	for i := 0; i < 10; i++ {
		go func(n int) {
			store.Update("test://file.ankh", string(rune('0'+n)))
			done <- true
		}(i)
	}

	// Wait for all goroutines
	for i := 0; i < 10; i++ {
		<-done
	}

	// Verify document still exists and has some content
	content, ok := store.Get("test://file.ankh")
	if !ok {
		t.Error("Document not found after concurrent updates")
	}
	if content == "" {
		t.Error("Document content is empty after concurrent updates")
	}
}

func TestDocumentStore_Analyze(t *testing.T) {
	store := NewDocumentStore()

	if store.Analyze("test://missing.ankh") != nil {
		t.Error("expected nil analysis for unknown document")
	}

	store.Open("test://file.ankh", "palette {\n  base = \"#191724\"\n}\n")
	first := store.Analyze("test://file.ankh")
	if first == nil || first.Palette == nil {
		t.Fatal("expected analysis with a palette")
	}
	if again := store.Analyze("test://file.ankh"); again != first {
		t.Error("expected cached analysis for unchanged document")
	}

	store.Update("test://file.ankh", "palette {\n  base = \"#12345\"\n}\n")
	updated := store.Analyze("test://file.ankh")
	if updated == first {
		t.Fatal("expected fresh analysis after update")
	}
	if len(updated.Diagnostics) != 1 {
		t.Errorf("expected 1 diagnostic after update, got %d", len(updated.Diagnostics))
	}

	store.Close("test://file.ankh")
	if store.Analyze("test://file.ankh") != nil {
		t.Error("expected nil analysis after close")
	}
}

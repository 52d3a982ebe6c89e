package store

import (
	"context"
	"testing"

	"github.com/sukrititalwar/rewear/internal/model"
)

func TestCreateAndGetItem(t *testing.T) {
	s, _ := newTestStore(t)
	ctx := context.Background()

	item, err := s.CreateItem(ctx, model.Item{
		Title:    "Denim Jacket",
		Category: "Jackets",
		Size:     "M",
		Type:     model.ItemTypeSwap,
		UserID:   "user-1",
	})
	if err != nil {
		t.Fatalf("CreateItem: %v", err)
	}
	if item.ID == "" {
		t.Error("expected generated id")
	}
	if item.Status != model.ItemStatusPending {
		t.Errorf("expected new item to be pending, got %q", item.Status)
	}
	if !item.CreatedAt.Equal(item.UpdatedAt) {
		t.Error("expected equal timestamps on creation")
	}
	if item.Tags == nil || item.Images == nil {
		t.Error("expected nil slices to be normalized to empty")
	}

	got, err := s.GetItem(ctx, item.ID)
	if err != nil {
		t.Fatalf("GetItem: %v", err)
	}
	if got.Title != "Denim Jacket" {
		t.Errorf("expected title 'Denim Jacket', got %q", got.Title)
	}
}

func TestCreateItemForcesPending(t *testing.T) {
	s, _ := newTestStore(t)
	ctx := context.Background()

	item, err := s.CreateItem(ctx, model.Item{
		Title:  "Sneaky",
		Status: model.ItemStatusApproved,
		UserID: "user-1",
	})
	if err != nil {
		t.Fatalf("CreateItem: %v", err)
	}
	if item.Status != model.ItemStatusPending {
		t.Errorf("expected caller-supplied status to be overridden, got %q", item.Status)
	}
}

func TestUpdateItemPatch(t *testing.T) {
	s, _ := newTestStore(t)
	ctx := context.Background()

	item, _ := s.CreateItem(ctx, model.Item{Title: "Old Title", UserID: "user-1"})

	title := "New Title"
	updated, err := s.UpdateItem(ctx, item.ID, model.ItemPatch{Title: &title})
	if err != nil {
		t.Fatalf("UpdateItem: %v", err)
	}
	if updated.Title != "New Title" {
		t.Errorf("expected patched title, got %q", updated.Title)
	}
	if updated.UserID != "user-1" {
		t.Errorf("expected owner unchanged, got %q", updated.UserID)
	}
	if !updated.UpdatedAt.After(updated.CreatedAt) && !updated.UpdatedAt.Equal(updated.CreatedAt) {
		t.Error("expected UpdatedAt to advance")
	}
	if !updated.CreatedAt.Equal(item.CreatedAt) {
		t.Error("expected CreatedAt to stay intact")
	}
}

func TestUpdateItemStatus(t *testing.T) {
	s, _ := newTestStore(t)
	ctx := context.Background()

	item, _ := s.CreateItem(ctx, model.Item{Title: "Jacket", UserID: "user-1"})

	approved, err := s.UpdateItemStatus(ctx, item.ID, model.ItemStatusApproved)
	if err != nil {
		t.Fatalf("UpdateItemStatus: %v", err)
	}
	if approved.Status != model.ItemStatusApproved {
		t.Errorf("expected approved, got %q", approved.Status)
	}

	if _, err := s.UpdateItemStatus(ctx, item.ID, "bogus"); err == nil {
		t.Error("expected invalid status to be rejected")
	}
}

func TestListApprovedItems(t *testing.T) {
	s, _ := newTestStore(t)
	ctx := context.Background()

	a, _ := s.CreateItem(ctx, model.Item{Title: "A", UserID: "u"})
	s.CreateItem(ctx, model.Item{Title: "B", UserID: "u"})
	s.UpdateItemStatus(ctx, a.ID, model.ItemStatusApproved)

	approved, err := s.ListApprovedItems(ctx)
	if err != nil {
		t.Fatalf("ListApprovedItems: %v", err)
	}
	if len(approved) != 1 || approved[0].Title != "A" {
		t.Errorf("expected only item A approved, got %+v", approved)
	}
}

func TestDeleteItem(t *testing.T) {
	s, _ := newTestStore(t)
	ctx := context.Background()

	item, _ := s.CreateItem(ctx, model.Item{Title: "Gone", UserID: "u"})
	if err := s.DeleteItem(ctx, item.ID); err != nil {
		t.Fatalf("DeleteItem: %v", err)
	}

	if _, err := s.GetItem(ctx, item.ID); !IsNotFound(err) {
		t.Errorf("expected ErrNotFound after delete, got %v", err)
	}
	if err := s.DeleteItem(ctx, item.ID); !IsNotFound(err) {
		t.Errorf("expected ErrNotFound on double delete, got %v", err)
	}
}

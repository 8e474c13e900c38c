package services

import (
	"context"
	"errors"
	"testing"

	"github.com/inkpress/inkpress/internal/common"
)

func TestTagCreate_DerivesSlug(t *testing.T) {
	repo := &fakeTagsRepo{}
	s := NewTagService(nil, &fakeRepoManager{t: repo})

	tag, err := s.Create(context.Background(), "  Modern Go  ")
	if err != nil {
		t.Fatalf("Create error: %v", err)
	}
	if tag.Title != "Modern Go" || tag.Slug != "modern-go" || !tag.Status {
		t.Fatalf("unexpected tag: %+v", tag)
	}
}

func TestTagCreate_Duplicate(t *testing.T) {
	repo := &fakeTagsRepo{createErr: common.ErrorAlreadyExists}
	s := NewTagService(nil, &fakeRepoManager{t: repo})

	_, err := s.Create(context.Background(), "Go")
	if !errors.Is(err, common.ErrorAlreadyExists) {
		t.Fatalf("want common.ErrorAlreadyExists, got %v", err)
	}
}

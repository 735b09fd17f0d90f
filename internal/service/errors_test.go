package service_test

import (
	"errors"
	"fmt"
	"testing"

	"github.com/alpine-labs/my-pace/internal/service"
)

func TestErrorClassification(t *testing.T) {
	t.Parallel()

	base := errors.New("disk full")
	storage := &service.StorageError{Op: "insert food log", Err: base}
	if !service.IsStorageError(storage) {
		t.Fatalf("expected StorageError to classify as storage")
	}
	if !service.IsStorageError(fmt.Errorf("saving entry: %w", storage)) {
		t.Fatalf("expected wrapped StorageError to classify as storage")
	}
	if !errors.Is(storage, base) {
		t.Fatalf("expected StorageError to unwrap to its cause")
	}
	if service.IsExternalServiceError(storage) {
		t.Fatalf("storage error must not classify as external")
	}

	external := &service.ExternalServiceError{Service: "usda", Err: errors.New("status 503")}
	if !service.IsExternalServiceError(external) {
		t.Fatalf("expected ExternalServiceError to classify as external")
	}
	if service.IsStorageError(external) {
		t.Fatalf("external error must not classify as storage")
	}

	plain := errors.New("food name is required")
	if service.IsStorageError(plain) || service.IsExternalServiceError(plain) {
		t.Fatalf("validation errors must stay unclassified")
	}
}

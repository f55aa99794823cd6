// ABOUTME: Function-field mocks for handler dependencies
// ABOUTME: Each mock delegates to an optional func field, nil means zero values

package handlers

import (
	"context"

	"scripture-app-api/core/domain"
	"scripture-app-api/core/scripture"
)

type mockScriptureService struct {
	byReference func(ctx context.Context, reference string, opts scripture.Options) (*domain.ContentBundle, error)
}

func (m *mockScriptureService) ByReference(ctx context.Context, reference string, opts scripture.Options) (*domain.ContentBundle, error) {
	if m.byReference != nil {
		return m.byReference(ctx, reference, opts)
	}
	return &domain.ContentBundle{Media: map[string]domain.MediaContent{}}, nil
}

type mockVideoHydrator struct {
	hydrateContent func(ctx context.Context, bundle *domain.ContentBundle)
}

func (m *mockVideoHydrator) HydrateContent(ctx context.Context, bundle *domain.ContentBundle) {
	if m.hydrateContent != nil {
		m.hydrateContent(ctx, bundle)
	}
}

type mockBibleCatalog struct {
	forLanguage func(ctx context.Context, code string) ([]domain.Bible, error)
	search      func(ctx context.Context, name string) ([]domain.Bible, error)
}

func (m *mockBibleCatalog) ForLanguage(ctx context.Context, code string) ([]domain.Bible, error) {
	if m.forLanguage != nil {
		return m.forLanguage(ctx, code)
	}
	return nil, nil
}

func (m *mockBibleCatalog) Search(ctx context.Context, name string) ([]domain.Bible, error) {
	if m.search != nil {
		return m.search(ctx, name)
	}
	return nil, nil
}

type mockLanguageStore struct {
	languages func(ctx context.Context) ([]domain.Language, error)
}

func (m *mockLanguageStore) Languages(ctx context.Context) ([]domain.Language, error) {
	if m.languages != nil {
		return m.languages(ctx)
	}
	return nil, nil
}

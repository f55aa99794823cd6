package scripture

import (
	"context"

	"scripture-app-api/core/domain"
)

// mockBibleAPI is a mock implementation of the BibleAPI interface
type mockBibleAPI struct {
	findFunc               func(ctx context.Context, id string) (*domain.Bible, error)
	defaultForLanguageFunc func(ctx context.Context, code string) (*domain.Bible, error)
	contentFunc            func(ctx context.Context, fs domain.Fileset, book domain.Book, ref domain.Reference) ([]map[string]interface{}, error)
}

func (m *mockBibleAPI) Find(ctx context.Context, id string) (*domain.Bible, error) {
	if m.findFunc != nil {
		return m.findFunc(ctx, id)
	}
	return nil, nil
}

func (m *mockBibleAPI) DefaultForLanguage(ctx context.Context, code string) (*domain.Bible, error) {
	if m.defaultForLanguageFunc != nil {
		return m.defaultForLanguageFunc(ctx, code)
	}
	return nil, nil
}

func (m *mockBibleAPI) Content(ctx context.Context, fs domain.Fileset, book domain.Book, ref domain.Reference) ([]map[string]interface{}, error) {
	if m.contentFunc != nil {
		return m.contentFunc(ctx, fs, book, ref)
	}
	return nil, nil
}

// mockLanguageResolver is a mock implementation of the LanguageResolver interface
type mockLanguageResolver struct {
	resolveFunc func(ctx context.Context, explicitCode, acceptLanguage string) domain.Language
}

func (m *mockLanguageResolver) Resolve(ctx context.Context, explicitCode, acceptLanguage string) domain.Language {
	if m.resolveFunc != nil {
		return m.resolveFunc(ctx, explicitCode, acceptLanguage)
	}
	return domain.Language{}
}

package usecase_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alexsagar/teantea-api/internal/application/dto"
	"github.com/alexsagar/teantea-api/internal/application/usecase"
	"github.com/alexsagar/teantea-api/internal/domain"
	"github.com/alexsagar/teantea-api/internal/domain/entity"
)

// fakeSettingRepo keeps one settings document per shop and applies the same
// shallow-merge semantics as the JSONB implementation.
type fakeSettingRepo struct {
	docs map[string]*entity.Setting
}

func newFakeSettingRepo() *fakeSettingRepo {
	return &fakeSettingRepo{docs: map[string]*entity.Setting{}}
}

func (r *fakeSettingRepo) GetOrCreate(_ context.Context, shopID string) (*entity.Setting, error) {
	if s, ok := r.docs[shopID]; ok {
		return s, nil
	}
	s := entity.DefaultSetting(shopID)
	r.docs[shopID] = s
	return s, nil
}

func (r *fakeSettingRepo) PatchSection(ctx context.Context, shopID, section string, patch map[string]any) (*entity.Setting, error) {
	s, err := r.GetOrCreate(ctx, shopID)
	if err != nil {
		return nil, err
	}
	target := s.Section(section)
	for k, v := range patch {
		target[k] = v
	}
	s.UpdatedAt = time.Now()
	return s, nil
}

type fakeTemplateRepo struct {
	docs map[string]*entity.NotificationTemplate
}

func newFakeTemplateRepo() *fakeTemplateRepo {
	return &fakeTemplateRepo{docs: map[string]*entity.NotificationTemplate{}}
}

func (r *fakeTemplateRepo) GetOrCreate(_ context.Context, shopID string) (*entity.NotificationTemplate, error) {
	if t, ok := r.docs[shopID]; ok {
		return t, nil
	}
	t := entity.DefaultNotificationTemplate(shopID)
	r.docs[shopID] = t
	return t, nil
}

func (r *fakeTemplateRepo) Patch(ctx context.Context, shopID string, templates map[string]string) (*entity.NotificationTemplate, error) {
	t, err := r.GetOrCreate(ctx, shopID)
	if err != nil {
		return nil, err
	}
	for k, v := range templates {
		t.Templates[k] = v
	}
	t.UpdatedAt = time.Now()
	return t, nil
}

func newSettingUseCase() *usecase.SettingUseCase {
	return usecase.NewSettingUseCase(newFakeSettingRepo(), newFakeTemplateRepo())
}

func TestSettingGet_SeedsDefaults(t *testing.T) {
	uc := newSettingUseCase()

	res, err := uc.Get(context.Background(), testShop)
	require.NoError(t, err)
	assert.Equal(t, testShop, res.ShopID)
	assert.NotNil(t, res.Shop)
	assert.NotNil(t, res.System)
}

func TestPatchSection_ShallowMerge(t *testing.T) {
	uc := newSettingUseCase()

	res, err := uc.PatchSection(context.Background(), testShop, entity.SectionTax, dto.PatchSectionRequest{
		"rate": 13,
	})
	require.NoError(t, err)
	assert.Equal(t, 13, res.Tax["rate"])

	// A second patch touches only its own keys.
	res, err = uc.PatchSection(context.Background(), testShop, entity.SectionTax, dto.PatchSectionRequest{
		"inclusive": true,
	})
	require.NoError(t, err)
	assert.Equal(t, 13, res.Tax["rate"])
	assert.Equal(t, true, res.Tax["inclusive"])
}

func TestPatchSection_UnknownSection(t *testing.T) {
	uc := newSettingUseCase()

	_, err := uc.PatchSection(context.Background(), testShop, "secrets", dto.PatchSectionRequest{"x": 1})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestPatchSection_EmptyPatch(t *testing.T) {
	uc := newSettingUseCase()

	_, err := uc.PatchSection(context.Background(), testShop, entity.SectionTax, dto.PatchSectionRequest{})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestPatchTemplates_MergesOverDefaults(t *testing.T) {
	uc := newSettingUseCase()

	res, err := uc.PatchTemplates(context.Background(), testShop, dto.PatchTemplatesRequest{
		Templates: map[string]string{"order-ready": "Your order {{orderNumber}} is ready"},
	})
	require.NoError(t, err)
	assert.Equal(t, "Your order {{orderNumber}} is ready", res.Templates["order-ready"])
}

package services

import (
	"errors"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/linskybing/naming-go/apperrors"
	"github.com/linskybing/naming-go/dto"
	"github.com/linskybing/naming-go/models"
	"github.com/linskybing/naming-go/repositories"
	"github.com/linskybing/naming-go/repositories/mock_repositories"
	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"
)

// --------------------- Setup ---------------------
func setupFormConfigServiceMocks(t *testing.T) (*FormConfigService, *mock_repositories.MockFormConfigRepo, *mock_repositories.MockRequestRepo) {
	ctrl := gomock.NewController(t)
	t.Cleanup(func() { ctrl.Finish() })

	mockConfig := mock_repositories.NewMockFormConfigRepo(ctrl)
	mockRequest := mock_repositories.NewMockRequestRepo(ctrl)
	repos := &repositories.Repos{
		FormConfig: mockConfig,
		Request:    mockRequest,
	}
	svc := NewFormConfigService(repos)
	return svc, mockConfig, mockRequest
}

func textField(name string) models.FieldDefinition {
	return models.FieldDefinition{Name: name, Label: name, Type: models.FieldTypeText}
}

// --------------------- Create ---------------------
func TestCreateFormConfiguration_Success(t *testing.T) {
	svc, mockConfig, _ := setupFormConfigServiceMocks(t)

	mockConfig.EXPECT().Create(gomock.Any()).DoAndReturn(func(c *models.FormConfiguration) error {
		c.ID = 7
		return nil
	})

	config, err := svc.Create(dto.CreateFormConfigurationDTO{
		Name:   "standard intake",
		Fields: []models.FieldDefinition{textField("requested_name")},
	})
	assert.NoError(t, err)
	assert.Equal(t, uint(7), config.ID)
	assert.False(t, config.IsActive)
}

func TestCreateFormConfiguration_ActivateOnCreate(t *testing.T) {
	svc, mockConfig, _ := setupFormConfigServiceMocks(t)

	mockConfig.EXPECT().Create(gomock.Any()).DoAndReturn(func(c *models.FormConfiguration) error {
		c.ID = 3
		return nil
	})
	mockConfig.EXPECT().Activate(uint(3)).Return(nil)

	config, err := svc.Create(dto.CreateFormConfigurationDTO{
		Name:     "launch form",
		Fields:   []models.FieldDefinition{textField("requested_name")},
		Activate: true,
	})
	assert.NoError(t, err)
	assert.True(t, config.IsActive)
}

func TestCreateFormConfiguration_NoFields(t *testing.T) {
	svc, _, _ := setupFormConfigServiceMocks(t)

	_, err := svc.Create(dto.CreateFormConfigurationDTO{Name: "empty"})

	var verr *apperrors.ValidationError
	assert.ErrorAs(t, err, &verr)
	assert.Equal(t, "fields", verr.Fields[0].Field)
}

func TestCreateFormConfiguration_FieldNameWithWhitespace(t *testing.T) {
	svc, _, _ := setupFormConfigServiceMocks(t)

	_, err := svc.Create(dto.CreateFormConfigurationDTO{
		Name:   "bad",
		Fields: []models.FieldDefinition{textField("requested name")},
	})

	var verr *apperrors.ValidationError
	assert.ErrorAs(t, err, &verr)
	assert.Equal(t, "requested name", verr.Fields[0].Field)
}

func TestCreateFormConfiguration_DuplicateFieldName(t *testing.T) {
	svc, _, _ := setupFormConfigServiceMocks(t)

	_, err := svc.Create(dto.CreateFormConfigurationDTO{
		Name:   "bad",
		Fields: []models.FieldDefinition{textField("purpose"), textField("purpose")},
	})

	var verr *apperrors.ValidationError
	assert.ErrorAs(t, err, &verr)
}

func TestCreateFormConfiguration_UnknownFieldType(t *testing.T) {
	svc, _, _ := setupFormConfigServiceMocks(t)

	_, err := svc.Create(dto.CreateFormConfigurationDTO{
		Name: "bad",
		Fields: []models.FieldDefinition{
			{Name: "rating", Type: models.FieldType("slider")},
		},
	})

	var verr *apperrors.ValidationError
	assert.ErrorAs(t, err, &verr)
}

func TestCreateFormConfiguration_SelectWithoutOptions(t *testing.T) {
	svc, _, _ := setupFormConfigServiceMocks(t)

	_, err := svc.Create(dto.CreateFormConfigurationDTO{
		Name: "bad",
		Fields: []models.FieldDefinition{
			{Name: "service_line", Type: models.FieldTypeSelect},
		},
	})

	var verr *apperrors.ValidationError
	assert.ErrorAs(t, err, &verr)
	assert.Equal(t, "service_line", verr.Fields[0].Field)
}

// --------------------- Activate ---------------------
func TestActivateFormConfiguration_Success(t *testing.T) {
	svc, mockConfig, _ := setupFormConfigServiceMocks(t)
	mockConfig.EXPECT().Activate(uint(5)).Return(nil)

	err := svc.Activate(5)
	assert.NoError(t, err)
}

func TestActivateFormConfiguration_NotFound(t *testing.T) {
	svc, mockConfig, _ := setupFormConfigServiceMocks(t)
	mockConfig.EXPECT().Activate(uint(99)).Return(gorm.ErrRecordNotFound)

	err := svc.Activate(99)
	var nf *apperrors.NotFoundError
	assert.ErrorAs(t, err, &nf)
	assert.Equal(t, uint(99), nf.ID)
}

// --------------------- GetActive ---------------------
func TestGetActiveFormConfiguration_None(t *testing.T) {
	svc, mockConfig, _ := setupFormConfigServiceMocks(t)
	mockConfig.EXPECT().GetActive().Return(nil, nil)

	config, err := svc.GetActive()
	assert.NoError(t, err)
	assert.Nil(t, config)
}

func TestGetActiveFormConfiguration_Found(t *testing.T) {
	svc, mockConfig, _ := setupFormConfigServiceMocks(t)
	active := &models.FormConfiguration{ID: 2, IsActive: true}
	mockConfig.EXPECT().GetActive().Return(active, nil)

	config, err := svc.GetActive()
	assert.NoError(t, err)
	assert.Equal(t, uint(2), config.ID)
}

// --------------------- Delete ---------------------
func TestDeleteFormConfiguration_ActiveRejected(t *testing.T) {
	svc, mockConfig, _ := setupFormConfigServiceMocks(t)
	mockConfig.EXPECT().GetByID(uint(4)).Return(models.FormConfiguration{ID: 4, IsActive: true}, nil)

	err := svc.Delete(4)
	var conflict *apperrors.ConflictError
	assert.ErrorAs(t, err, &conflict)
}

func TestDeleteFormConfiguration_ReferencedSoftDeletes(t *testing.T) {
	svc, mockConfig, mockRequest := setupFormConfigServiceMocks(t)
	mockConfig.EXPECT().GetByID(uint(4)).Return(models.FormConfiguration{ID: 4}, nil)
	mockRequest.EXPECT().CountByFormConfiguration(uint(4)).Return(int64(3), nil)
	mockConfig.EXPECT().SoftDelete(uint(4)).Return(nil)

	err := svc.Delete(4)
	assert.NoError(t, err)
}

func TestDeleteFormConfiguration_UnreferencedHardDeletes(t *testing.T) {
	svc, mockConfig, mockRequest := setupFormConfigServiceMocks(t)
	mockConfig.EXPECT().GetByID(uint(4)).Return(models.FormConfiguration{ID: 4}, nil)
	mockRequest.EXPECT().CountByFormConfiguration(uint(4)).Return(int64(0), nil)
	mockConfig.EXPECT().Delete(uint(4)).Return(nil)

	err := svc.Delete(4)
	assert.NoError(t, err)
}

func TestDeleteFormConfiguration_NotFound(t *testing.T) {
	svc, mockConfig, _ := setupFormConfigServiceMocks(t)
	mockConfig.EXPECT().GetByID(uint(404)).Return(models.FormConfiguration{}, gorm.ErrRecordNotFound)

	err := svc.Delete(404)
	assert.True(t, apperrors.IsNotFound(err))
}

// --------------------- Update ---------------------
func TestUpdateFormConfiguration_InvalidFieldsRejected(t *testing.T) {
	svc, mockConfig, _ := setupFormConfigServiceMocks(t)
	mockConfig.EXPECT().GetByID(uint(1)).Return(models.FormConfiguration{ID: 1}, nil)

	bad := []models.FieldDefinition{{Name: "", Type: models.FieldTypeText}}
	_, err := svc.Update(1, dto.UpdateFormConfigurationDTO{Fields: &bad})

	var verr *apperrors.ValidationError
	assert.ErrorAs(t, err, &verr)
}

func TestUpdateFormConfiguration_StorageFailure(t *testing.T) {
	svc, mockConfig, _ := setupFormConfigServiceMocks(t)
	mockConfig.EXPECT().GetByID(uint(1)).Return(models.FormConfiguration{ID: 1}, nil)
	mockConfig.EXPECT().Update(gomock.Any()).Return(errors.New("db down"))

	name := "renamed"
	_, err := svc.Update(1, dto.UpdateFormConfigurationDTO{Name: &name})

	var serr *apperrors.StorageError
	assert.ErrorAs(t, err, &serr)
}

package mapper

import (
	"encoding/json"

	"gorm.io/datatypes"

	"yolcu-backend/internal/entity"
	"yolcu-backend/internal/model"
)

type CVMapper struct{}

func NewCVMapper() *CVMapper {
	return &CVMapper{}
}

func (m *CVMapper) ToEntity(c *model.CV) (*entity.CV, error) {
	if c == nil {
		return nil, nil
	}

	found, err := unmarshalStrings(c.FoundKeywords)
	if err != nil {
		return nil, err
	}
	missing, err := unmarshalStrings(c.MissingKeywords)
	if err != nil {
		return nil, err
	}
	tips, err := unmarshalStrings(c.Tips)
	if err != nil {
		return nil, err
	}

	return &entity.CV{
		Id:              c.Id,
		UserId:          c.UserId,
		FileName:        c.FileName,
		Content:         c.Content,
		BasicScore:      c.BasicScore,
		AdvancedScore:   c.AdvancedScore,
		FinalScore:      c.FinalScore,
		FoundKeywords:   found,
		MissingKeywords: missing,
		Feedback:        c.Feedback,
		Tips:            tips,
		Language:        c.Language,
		CreatedAt:       c.CreatedAt,
		UpdatedAt:       c.UpdatedAt,
	}, nil
}

func (m *CVMapper) ToModel(c *entity.CV) (*model.CV, error) {
	if c == nil {
		return nil, nil
	}

	found, err := marshalStrings(c.FoundKeywords)
	if err != nil {
		return nil, err
	}
	missing, err := marshalStrings(c.MissingKeywords)
	if err != nil {
		return nil, err
	}
	tips, err := marshalStrings(c.Tips)
	if err != nil {
		return nil, err
	}

	return &model.CV{
		Id:              c.Id,
		UserId:          c.UserId,
		FileName:        c.FileName,
		Content:         c.Content,
		BasicScore:      c.BasicScore,
		AdvancedScore:   c.AdvancedScore,
		FinalScore:      c.FinalScore,
		FoundKeywords:   found,
		MissingKeywords: missing,
		Feedback:        c.Feedback,
		Tips:            tips,
		Language:        c.Language,
		CreatedAt:       c.CreatedAt,
		UpdatedAt:       c.UpdatedAt,
	}, nil
}

func unmarshalStrings(raw datatypes.JSON) ([]string, error) {
	if len(raw) == 0 {
		return nil, nil
	}
	var out []string
	if err := json.Unmarshal(raw, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func marshalStrings(values []string) (datatypes.JSON, error) {
	if values == nil {
		values = []string{}
	}
	raw, err := json.Marshal(values)
	if err != nil {
		return nil, err
	}
	return datatypes.JSON(raw), nil
}
